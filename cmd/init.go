/*
Copyright © 2026 FixHub <dev@fixhub.es>
*/

// init.go implements the "tradexdb init" command.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the database schema and seed demo accounts",
		Long: `Create the database file and its tables if they do not already exist.

Outside production (TRADEX_ENV != "production") two demo accounts are
seeded on first run. Seeding is idempotent: existing accounts are never
overwritten. The database file and its sidecars are always left with
owner-only (0600) permissions.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			s, err := openStore()
			if err != nil {
				return fmt.Errorf("init: %w", err)
			}
			defer s.Close()

			if err := s.Init(); err != nil {
				return fmt.Errorf("init: %w", err)
			}

			if Config().Production() {
				fmt.Fprintf(Out(), "Initialised %s (production, no demo data)\n", Config().DBPath)
				return nil
			}

			created, err := s.SeedDemoUsers(c.Context())
			if err != nil {
				return fmt.Errorf("init: %w", err)
			}
			fmt.Fprintf(Out(), "Initialised %s (%d demo account(s) seeded)\n", Config().DBPath, created)
			return nil
		},
	}
}
