package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/benaskins/lockbox/internal/keychain"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Manage credentials in the OS keychain",
}

var secretAddCmd = &cobra.Command{
	Use:   "add <tag> <label> [value]",
	Short: "Store a credential",
	Long:  "Store a credential. If value is omitted, reads from stdin (useful for piping).",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		tag, label := args[0], args[1]

		var value string
		if len(args) == 3 {
			value = args[2]
		} else {
			// Read from stdin
			if term.IsTerminal(int(os.Stdin.Fd())) {
				fmt.Print("Enter credential value: ")
				b, err := term.ReadPassword(int(os.Stdin.Fd()))
				if err != nil {
					return fmt.Errorf("reading value: %w", err)
				}
				fmt.Println()
				value = string(b)
			} else {
				b, err := os.ReadFile("/dev/stdin")
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				value = strings.TrimRight(string(b), "\n")
			}
		}

		query, err := keychain.BuildQuery(tag, label, keychain.OpAdd)
		if err != nil {
			return err
		}
		if err := store.Add(value, query); err != nil {
			return err
		}
		fmt.Printf("Credential %q stored under %s\n", label, tag)
		return nil
	},
}

var secretReadCmd = &cobra.Command{
	Use:   "read <tag> <label>",
	Short: "Retrieve a credential",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		query, err := keychain.BuildQuery(args[0], args[1], keychain.OpRead)
		if err != nil {
			return err
		}
		value, ok, err := store.Read(query)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("credential %q holds non-text data", args[1])
		}
		fmt.Println(value)
		return nil
	},
}

var secretRemoveCmd = &cobra.Command{
	Use:     "remove <tag> <label>",
	Short:   "Remove a credential",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		query, err := keychain.BuildQuery(args[0], args[1], keychain.OpRemove)
		if err != nil {
			return err
		}
		if err := store.Remove(query); err != nil {
			return err
		}
		fmt.Printf("Credential %q removed from %s\n", args[1], args[0])
		return nil
	},
}

var secretClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all built-in credential identities",
	Long:  "Sweep the encryption key, initialization vector, and salt identities. Stops at the first failure.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		if !store.Clear(keychain.AllLabels(), keychain.AllTags()) {
			return fmt.Errorf("clear did not complete; see audit log")
		}
		fmt.Println("All credentials cleared")
		return nil
	},
}

func init() {
	secretCmd.AddCommand(secretAddCmd)
	secretCmd.AddCommand(secretReadCmd)
	secretCmd.AddCommand(secretRemoveCmd)
	secretCmd.AddCommand(secretClearCmd)
	rootCmd.AddCommand(secretCmd)
}
