// checkpoint.go implements WAL checkpoint operations.
//
// Separated because checkpointing is a maintenance operation with
// different usage patterns than normal reads/writes. The backup path
// checkpoints in FULL mode so all WAL content lands in the main file
// while the database stays usable; TRUNCATE additionally resets the WAL
// and is exposed for operators who want the sidecar files gone.

package store

import (
	"context"
	"fmt"
)

// CheckpointMode selects the WAL checkpoint behaviour.
type CheckpointMode string

const (
	// CheckpointFull flushes all WAL frames into the main database file,
	// waiting for readers as needed. The WAL file remains.
	CheckpointFull CheckpointMode = "FULL"
	// CheckpointTruncate flushes like FULL and then truncates the WAL to
	// zero length.
	CheckpointTruncate CheckpointMode = "TRUNCATE"
)

// Checkpoint merges WAL contents into the main database file using the
// given mode.
func (s *SQLiteStore) Checkpoint(ctx context.Context, mode CheckpointMode) error {
	if _, err := s.db.ExecContext(ctx, fmt.Sprintf(`PRAGMA wal_checkpoint(%s)`, mode)); err != nil {
		return fmt.Errorf("WAL checkpoint (%s): %w", mode, err)
	}
	return nil
}
