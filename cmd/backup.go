/*
Copyright © 2026 FixHub <dev@fixhub.es>
*/

// backup.go implements the "tradexdb backup" command.

package cmd

import (
	"fmt"

	"github.com/fixhub-es/tradexdb/internal/backup"
	"github.com/spf13/cobra"
)

func newBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup <destination>",
		Short: "Write a consistent snapshot of the live database",
		Long: `Write a consistent, point-in-time copy of the live database to the
given destination path.

The write-ahead log is checkpointed into the main file first, so the
artifact contains everything committed at the moment of the backup. A
concurrently-running server may keep writing; its writes land in the
next backup. The destination is written atomically and always carries
owner-only (0600) permissions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			dest := args[0]
			tool := backup.New(Config())
			if err := tool.Backup(c.Context(), dest); err != nil {
				return fmt.Errorf("backup: %w", err)
			}
			fmt.Fprintf(Out(), "Backed up %s to %s\n", Config().DBPath, dest)
			return nil
		},
	}
}
