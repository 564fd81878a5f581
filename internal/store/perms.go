// perms.go enforces owner-only permissions on the database and sidecars.
//
// The database holds credentials and audit history, so the file, its WAL
// and its shared-memory index must never be readable by other users. The
// WAL and -shm files are created by SQLite with the process umask, which
// may be looser than 0600, so enforcement runs after open and after
// mutating operations rather than once at creation.

package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FileMode is the required permission set for the database file, its
// sidecars, and any backup artifact.
const FileMode fs.FileMode = 0o600

// SidecarPaths returns the WAL and shared-memory paths for a database file.
func SidecarPaths(dbPath string) []string {
	return []string{dbPath + "-wal", dbPath + "-shm"}
}

// EnforceMode chmods path and any existing sidecars to owner-only.
// Missing sidecars are skipped; a missing main file is an error only when
// required is true.
func EnforceMode(path string, required bool) error {
	if err := os.Chmod(path, FileMode); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("enforce mode on %s: %w", path, err)
	}
	for _, sc := range SidecarPaths(path) {
		if err := os.Chmod(sc, FileMode); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("enforce mode on %s: %w", sc, err)
		}
	}
	return nil
}

// EnsurePermissions enforces owner-only mode on this store's files.
func (s *SQLiteStore) EnsurePermissions() error {
	return EnforceMode(s.path, false)
}
