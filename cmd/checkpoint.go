/*
Copyright © 2026 FixHub <dev@fixhub.es>
*/

// checkpoint.go implements the "tradexdb checkpoint" command.

package cmd

import (
	"fmt"

	"github.com/fixhub-es/tradexdb/internal/store"
	"github.com/spf13/cobra"
)

func newCheckpointCmd() *cobra.Command {
	var truncate bool

	c := &cobra.Command{
		Use:   "checkpoint",
		Short: "Merge the write-ahead log into the database file",
		Long: `Run a WAL checkpoint on the live database. With --truncate the WAL is
reset to zero length after the merge, shrinking the sidecar files.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			s, err := openStore()
			if err != nil {
				return fmt.Errorf("checkpoint: %w", err)
			}
			defer s.Close()

			mode := store.CheckpointFull
			if truncate {
				mode = store.CheckpointTruncate
			}
			if err := s.Checkpoint(c.Context(), mode); err != nil {
				return fmt.Errorf("checkpoint: %w", err)
			}
			fmt.Fprintf(Out(), "Checkpointed %s (%s)\n", Config().DBPath, mode)
			return nil
		},
	}
	c.Flags().BoolVar(&truncate, "truncate", false, "Truncate the WAL after checkpointing")
	return c
}
