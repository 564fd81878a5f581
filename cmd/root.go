/*
Copyright © 2026 FixHub <dev@fixhub.es>
*/

// root.go defines the root command and CLI execution entry point.
//
// Design: PersistentPreRunE resolves configuration once, before any
// subcommand runs, so a misconfigured process (encryption enabled with no
// key) fails before any database access. Subcommands receive the resolved
// config through accessors in flags.go rather than reading the
// environment themselves.

package cmd

import (
	"fmt"
	"os"

	"github.com/fixhub-es/tradexdb/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tradexdb",
	Short: "Operational tool for the Tradex SQLite database",
	Long: `tradexdb manages the Tradex user database: schema initialisation,
demo seeding, user administration, audit log review, and consistent
backup/restore of the live database file.

Configuration comes from the environment (TRADEX_DB_PATH, TRADEX_ENV,
TRADEX_USE_SQLCIPHER, TRADEX_DB_KEY, AUDIT_LOG_RETENTION_DAYS), with
optional defaults in ~/.tradex/config.yaml.`,
	// Operational failures are reported as errors, not usage mistakes.
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := loadConfig()
		if err != nil {
			return err
		}
		// --db wins over environment and file configuration.
		if dbFlag != "" {
			loaded.DBPath = dbFlag
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command and handles process lifecycle.
// Exit code 1 indicates error; messages go to standard error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves configuration from the --config file (if given) or
// the default location, plus the environment.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		c, err := config.LoadFile(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		return c, nil
	}
	c, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return c, nil
}

func init() {
	rootCmd.AddCommand(
		newInitCmd(),
		newBackupCmd(),
		newRestoreCmd(),
		newUserCmd(),
		newAuditCmd(),
		newCheckpointCmd(),
		newVersionCmd(),
	)
}
