// restore.go replaces the live database with a validated backup.

package backup

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fixhub-es/tradexdb/internal/store"
)

// Restore atomically replaces the live database with the backup at src.
// The backup is validated first; an invalid file leaves the live database
// untouched. Stale -wal and -shm sidecars at the live path are removed
// after the swap so SQLite reinitialises them from the restored file.
// Repeating a restore from the same backup yields the same live state.
//
// The caller must guarantee exclusive access to the live path.
func (t *Tool) Restore(ctx context.Context, src string) error {
	if _, err := os.Stat(src); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrSourceNotFound, src)
		}
		return classify(fmt.Errorf("stat backup %s: %w", src, err))
	}

	if err := t.Validate(ctx, src); err != nil {
		return err
	}

	live := t.cfg.DBPath
	if err := os.MkdirAll(filepath.Dir(live), 0o700); err != nil {
		return classify(fmt.Errorf("create database directory: %w", err))
	}
	if err := copyAtomic(src, live); err != nil {
		return err
	}

	// The restored main file carries none of the old WAL's state; leaving
	// the sidecars behind would let SQLite replay stale frames over it.
	for _, sc := range store.SidecarPaths(live) {
		if err := os.Remove(sc); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return classify(fmt.Errorf("remove stale sidecar %s: %w", sc, err))
		}
	}

	return enforceArtifactMode(live)
}
