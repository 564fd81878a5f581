package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupRestore(t *testing.T) {
	t.Run("roundtrip preserves content", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "users.db")
		env := testEnv(t, dbPath)

		out, err := run(t, env, "init")
		require.NoError(t, err, "init failed: %s", out)

		backupPath := filepath.Join(t.TempDir(), "backup.db")
		out, err = run(t, env, "backup", backupPath)
		require.NoError(t, err, "backup failed: %s", out)
		assert.Contains(t, out, "Backed up")

		info, err := os.Stat(backupPath)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

		out, err = run(t, env, "restore", backupPath)
		require.NoError(t, err, "restore failed: %s", out)
		assert.Contains(t, out, "Restored")

		out, err = run(t, env, "user", "list")
		require.NoError(t, err, "user list failed: %s", out)
		assert.Contains(t, out, "demo@fixhub.es")
	})

	t.Run("backup of missing database fails", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "users.db")
		env := testEnv(t, dbPath)

		out, err := run(t, env, "backup", filepath.Join(t.TempDir(), "backup.db"))
		require.Error(t, err)
		assert.Contains(t, out, "not found")
	})

	t.Run("restore of junk fails and keeps live database", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "users.db")
		env := testEnv(t, dbPath)

		out, err := run(t, env, "init")
		require.NoError(t, err, "init failed: %s", out)

		junk := filepath.Join(t.TempDir(), "junk.db")
		require.NoError(t, os.WriteFile(junk, []byte("not a database"), 0o600))

		out, err = run(t, env, "restore", junk)
		require.Error(t, err)
		assert.Contains(t, out, "invalid backup")

		// Live database still answers queries.
		out, err = run(t, env, "user", "list")
		require.NoError(t, err, "user list failed: %s", out)
		assert.Contains(t, out, "demo@fixhub.es")
	})

	t.Run("--db flag overrides the environment", func(t *testing.T) {
		flagPath := filepath.Join(t.TempDir(), "flag.db")
		env := testEnv(t, filepath.Join(t.TempDir(), "env.db"))

		out, err := run(t, env, "init", "--db", flagPath)
		require.NoError(t, err, "init failed: %s", out)
		assert.FileExists(t, flagPath)
	})
}
