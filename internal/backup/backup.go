// Package backup produces consistent copies of the live Tradex database
// and restores them into place.
//
// Backup discipline: checkpoint the WAL into the main file in FULL mode,
// then copy the main file while holding a read transaction. The open read
// snapshot stops a concurrently-running server's checkpoints from
// rewriting the main file mid-copy, so the artifact is a single
// point-in-time image that includes everything the WAL held at checkpoint
// time. Writers are only blocked for the checkpoint itself, not the copy.
//
// Restore assumes exclusive access to the live path: the server process,
// if any, must be stopped first. That is a precondition on the caller.
package backup

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fixhub-es/tradexdb/internal/config"
	"github.com/fixhub-es/tradexdb/internal/store"
)

// Tool performs backup and restore against the configured live database.
type Tool struct {
	cfg    *config.Config
	access store.Access
}

// New returns a Tool for the given configuration.
func New(cfg *config.Config) *Tool {
	return &Tool{cfg: cfg, access: store.AccessFor(cfg)}
}

// Backup writes a consistent snapshot of the live database to dest.
// Repeating a backup to the same destination overwrites it with an
// equally valid snapshot.
//
// Returns ErrSourceNotFound when the live database does not exist,
// ErrPermission when dest cannot be created owner-only, and a wrapped
// I/O error otherwise. No partial file is left behind on failure.
func (t *Tool) Backup(ctx context.Context, dest string) error {
	srcPath := t.cfg.DBPath
	if _, err := os.Stat(srcPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrSourceNotFound, srcPath)
		}
		return classify(fmt.Errorf("stat source %s: %w", srcPath, err))
	}

	s, err := store.Open(srcPath, t.access)
	if err != nil {
		return err
	}
	defer s.Close()

	// Consolidate the WAL so the main file alone is the snapshot.
	if err := s.Checkpoint(ctx, store.CheckpointFull); err != nil {
		return err
	}

	// Hold a read transaction for the duration of the copy. Concurrent
	// writers keep appending to the WAL, but no checkpoint can move their
	// frames into the main file while this snapshot is open.
	tx, err := s.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot read: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Touch the database so the snapshot is actually established.
	var n int
	if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM sqlite_schema`).Scan(&n); err != nil {
		return fmt.Errorf("establish snapshot read: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o700); err != nil {
		return classify(fmt.Errorf("create backup directory: %w", err))
	}
	if err := copyAtomic(srcPath, dest); err != nil {
		return err
	}
	return enforceArtifactMode(dest)
}

// enforceArtifactMode re-applies owner-only permissions to a finished
// artifact, mapping failures onto ErrPermission.
func enforceArtifactMode(path string) error {
	if err := store.EnforceMode(path, true); err != nil {
		return classify(err)
	}
	return nil
}
