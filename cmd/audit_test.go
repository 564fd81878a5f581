package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAudit(t *testing.T) {
	t.Run("empty log", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "users.db")
		env := testEnv(t, dbPath)

		out, err := run(t, env, "init")
		require.NoError(t, err, "init failed: %s", out)

		out, err = run(t, env, "audit")
		require.NoError(t, err, "audit failed: %s", out)
		assert.Contains(t, out, "No audit entries found")
	})

	t.Run("export writes csv header", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "users.db")
		env := testEnv(t, dbPath)

		out, err := run(t, env, "init")
		require.NoError(t, err, "init failed: %s", out)

		out, err = run(t, env, "audit", "export")
		require.NoError(t, err, "audit export failed: %s", out)
		assert.Contains(t, out, "id,timestamp,actor")
	})

	t.Run("bad timestamp rejected", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "users.db")
		env := testEnv(t, dbPath)

		out, err := run(t, env, "init")
		require.NoError(t, err, "init failed: %s", out)

		out, err = run(t, env, "audit", "--start", "whenever")
		require.Error(t, err)
		assert.Contains(t, out, "invalid timestamp")
	})
}
