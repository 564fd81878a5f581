package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Run("seeds demo accounts outside production", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "users.db")
		env := testEnv(t, dbPath)

		out, err := run(t, env, "init")
		require.NoError(t, err, "init failed: %s", out)
		assert.Contains(t, out, "2 demo account(s) seeded")

		out, err = run(t, env, "user", "list")
		require.NoError(t, err, "user list failed: %s", out)
		assert.Contains(t, out, "demo@fixhub.es")
		assert.Contains(t, out, "demo2@fixhub.es")
	})

	t.Run("production init has no demo rows", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "users.db")
		env := testEnv(t, dbPath, "TRADEX_ENV=production")

		out, err := run(t, env, "init")
		require.NoError(t, err, "init failed: %s", out)
		assert.Contains(t, out, "no demo data")

		out, err = run(t, env, "user", "list")
		require.NoError(t, err, "user list failed: %s", out)
		assert.Contains(t, out, "No users found")
	})

	t.Run("init is idempotent", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "users.db")
		env := testEnv(t, dbPath)

		out, err := run(t, env, "init")
		require.NoError(t, err, "init failed: %s", out)

		out, err = run(t, env, "init")
		require.NoError(t, err, "second init failed: %s", out)
		assert.Contains(t, out, "0 demo account(s) seeded")
	})

	t.Run("cipher without key fails before touching the database", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "users.db")
		env := testEnv(t, dbPath, "TRADEX_USE_SQLCIPHER=1")

		out, err := run(t, env, "init")
		require.Error(t, err)
		assert.Contains(t, out, "TRADEX_DB_KEY")

		// Nothing was created.
		assert.NoFileExists(t, dbPath)
	})
}
