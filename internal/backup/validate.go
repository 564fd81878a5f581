// validate.go checks that a restore input is a well-formed database.
//
// Plain databases are checked by header magic before anything opens them;
// encrypted databases have a random-looking header, so validation goes
// straight to a keyed integrity check. Validation is read-only and never
// modifies the candidate file.

package backup

import (
	"bytes"
	"context"
	"fmt"
	"os"
)

// sqliteMagic is the 16-byte header every plain SQLite database starts with.
var sqliteMagic = []byte("SQLite format 3\x00")

// Validate reports whether the file at path is a database this tool's
// configured backend can open. Returns ErrInvalidBackup on malformed input.
func (t *Tool) Validate(ctx context.Context, path string) error {
	if !t.access.Encrypted() {
		if err := checkHeader(path); err != nil {
			return err
		}
	}
	return t.quickCheck(ctx, path)
}

// checkHeader verifies the plain-database magic bytes.
func checkHeader(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return classify(fmt.Errorf("open backup %s: %w", path, err))
	}
	defer f.Close()

	header := make([]byte, len(sqliteMagic))
	n, err := f.Read(header)
	if err != nil || n < len(sqliteMagic) {
		return fmt.Errorf("%w: %s is too short to be a database", ErrInvalidBackup, path)
	}
	if !bytes.Equal(header, sqliteMagic) {
		return fmt.Errorf("%w: %s has no database header", ErrInvalidBackup, path)
	}
	return nil
}

// quickCheck opens the candidate through the configured backend and runs
// PRAGMA quick_check. This catches truncated or internally inconsistent
// files that still carry a valid header, and wrong-key opens of encrypted
// files.
func (t *Tool) quickCheck(ctx context.Context, path string) error {
	db, err := t.access.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidBackup, path, err)
	}
	defer db.Close()

	var result string
	if err := db.QueryRowContext(ctx, `PRAGMA quick_check`).Scan(&result); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidBackup, path, err)
	}
	if result != "ok" {
		return fmt.Errorf("%w: %s: quick_check reported %q", ErrInvalidBackup, path, result)
	}
	return nil
}
