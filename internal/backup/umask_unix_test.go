//go:build unix

package backup_test

import (
	"context"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/fixhub-es/tradexdb/internal/backup"
	"github.com/fixhub-es/tradexdb/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Artifacts must come out owner-only even under a wide-open umask.
func TestBackup_OwnerOnlyDespiteUmask(t *testing.T) {
	old := syscall.Umask(0)
	defer syscall.Umask(old)

	cfg := testConfig(t)
	ctx := context.Background()
	seedLive(t, cfg, "a@fixhub.es")

	dest := filepath.Join(t.TempDir(), "backup.db")
	tool := backup.New(cfg)
	require.NoError(t, tool.Backup(ctx, dest))

	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.Equal(t, store.FileMode, info.Mode().Perm())

	require.NoError(t, tool.Restore(ctx, dest))
	info, err = os.Stat(cfg.DBPath)
	require.NoError(t, err)
	assert.Equal(t, store.FileMode, info.Mode().Perm())
}
