package main

import (
	"os"
	"path/filepath"
)

// lockboxHome returns the path to the lockbox home directory (~/.lockbox),
// creating it if necessary.
func lockboxHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".lockbox")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}
