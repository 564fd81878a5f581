/*
Copyright © 2026 FixHub <dev@fixhub.es>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Separated from root.go to isolate flag definitions from command logic.
// Commands access resolved state via accessor functions rather than
// touching the variables directly.

package cmd

import (
	"io"
	"os"

	"github.com/fixhub-es/tradexdb/internal/config"
	"github.com/fixhub-es/tradexdb/internal/store"
)

var (
	dbFlag  string
	cfgFile string

	// cfg is resolved by PersistentPreRunE before any subcommand runs.
	cfg *config.Config
)

// out is the output writer for commands. Defaults to os.Stdout.
// Tests can replace this to capture output.
var out io.Writer = os.Stdout

// Out returns the output writer.
func Out() io.Writer { return out }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// Config returns the resolved configuration.
// Priority for the database path: --db flag > TRADEX_DB_PATH > config
// file > ~/.tradex/users.db.
func Config() *config.Config { return cfg }

// openStore opens the configured database through the configured backend.
func openStore() (*store.SQLiteStore, error) {
	return store.Open(cfg.DBPath, store.AccessFor(cfg))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "Database path (overrides TRADEX_DB_PATH)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.tradex/config.yaml)")
}
