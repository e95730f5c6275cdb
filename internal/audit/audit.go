// Package audit provides append-only structured logging for credential
// operations.
//
// Every credential access (add, read, remove, clear) is recorded to an
// audit log at ~/.lockbox/audit.log as newline-delimited JSON. The logger
// also keeps the most recent entries in memory for quick inspection.
package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Action describes what happened.
type Action string

const (
	ActionCredentialAdd    Action = "credential_add"
	ActionCredentialRead   Action = "credential_read"
	ActionCredentialRemove Action = "credential_remove"
	ActionCredentialClear  Action = "credential_clear"
)

// Entry is a single audit log record.
type Entry struct {
	Timestamp time.Time `json:"ts"`
	Action    Action    `json:"action"`
	Tag       string    `json:"tag,omitempty"`
	Label     string    `json:"label,omitempty"`
	Actor     string    `json:"actor,omitempty"` // "cli" or embedding app
	Count     int       `json:"count,omitempty"` // identities swept by a clear
	Error     string    `json:"error,omitempty"`
}

// Logger writes audit entries to an append-only file and retains the
// last few entries in memory.
type Logger struct {
	mu     sync.Mutex
	file   *os.File
	path   string
	recent *ring
}

// NewLogger creates or opens an audit log file for appending. keep sets
// how many recent entries stay available in memory; values below one
// default to 100.
func NewLogger(path string, keep int) (*Logger, error) {
	if keep < 1 {
		keep = 100
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("opening audit log: %w", err)
	}
	return &Logger{file: f, path: path, recent: newRing(keep)}, nil
}

// Log writes an audit entry.
func (l *Logger) Log(entry Entry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling audit entry: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.recent.add(entry)
	if _, err := l.file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing audit entry: %w", err)
	}
	return nil
}

// Recent returns up to n of the most recent entries logged through this
// logger, oldest first.
func (l *Logger) Recent(n int) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.recent.last(n)
}

// Close closes the audit log file.
func (l *Logger) Close() error {
	return l.file.Close()
}

// Tail reads the audit log at path and returns up to n of its most
// recent entries, oldest first. Malformed lines are skipped.
func Tail(path string, n int) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	r := newRing(n)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			continue
		}
		r.add(e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}
	return r.last(n), nil
}
