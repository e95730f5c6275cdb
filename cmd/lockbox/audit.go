package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"text/tabwriter"
	"time"

	"github.com/benaskins/lockbox/internal/audit"
	"github.com/spf13/cobra"
)

var auditCount int

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show recent credential operations",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := auditLogPath()
		if err != nil {
			return err
		}

		entries, err := audit.Tail(path, auditCount)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				fmt.Println("No audit log yet")
				return nil
			}
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No audit entries")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TIME\tACTION\tTAG\tLABEL\tERROR")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				e.Timestamp.Format(time.RFC3339), e.Action, e.Tag, e.Label, e.Error)
		}
		w.Flush()
		return nil
	},
}

func init() {
	auditCmd.Flags().IntVarP(&auditCount, "count", "n", 20, "number of entries to show")
	rootCmd.AddCommand(auditCmd)
}
