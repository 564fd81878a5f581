/*
Copyright © 2026 FixHub <dev@fixhub.es>
*/

// restore.go implements the "tradexdb restore" command.

package cmd

import (
	"fmt"

	"github.com/fixhub-es/tradexdb/internal/backup"
	"github.com/spf13/cobra"
)

func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <backup-file>",
		Short: "Replace the live database with a backup",
		Long: `Validate a backup file and atomically swap it into the live database
path. Stale write-ahead log and shared-memory sidecars are removed so
SQLite reinitialises them from the restored file.

Stop any server process using the database before restoring: the swap
assumes exclusive access to the live path. An invalid backup leaves the
live database unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			src := args[0]
			tool := backup.New(Config())
			if err := tool.Restore(c.Context(), src); err != nil {
				return fmt.Errorf("restore: %w", err)
			}
			fmt.Fprintf(Out(), "Restored %s from %s\n", Config().DBPath, src)
			return nil
		},
	}
}
