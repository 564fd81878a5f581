// access.go models the encryption-at-rest toggle as a storage backend.
//
// Separated so the rest of the store never branches on whether encryption
// is enabled: callers pick a backend once (from configuration) and every
// connection opened through it carries the right key handling.

package store

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"github.com/fixhub-es/tradexdb/internal/config"

	// Register sqlite driver
	_ "modernc.org/sqlite"
)

// Access opens SQL connections to a database file. Implementations differ
// only in how the connection is keyed; pragma configuration stays with the
// store.
type Access interface {
	// Open returns a connection pool for the database at path.
	Open(path string) (*sql.DB, error)
	// Encrypted reports whether this backend expects an encrypted file.
	Encrypted() bool
}

// AccessFor returns the backend matching the resolved configuration.
func AccessFor(cfg *config.Config) Access {
	if cfg.UseSQLCipher {
		return CipherAccess{Key: cfg.DBKey}
	}
	return PlainAccess{}
}

// PlainAccess opens unencrypted database files.
type PlainAccess struct{}

// Open opens path without any key material.
func (PlainAccess) Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	return db, nil
}

// Encrypted reports false for the plain backend.
func (PlainAccess) Encrypted() bool { return false }

// CipherAccess opens databases through a SQLCipher-style key pragma. The
// pragma is passed through the DSN so every pooled connection is keyed,
// not just the first one. Decryption itself is provided by the extension
// in cipher-capable driver builds; this backend only supplies the key.
type CipherAccess struct {
	Key string
}

// Open opens path with the key pragma applied to each new connection.
func (a CipherAccess) Open(path string) (*sql.DB, error) {
	// Single quotes in the key are doubled per SQL string literal rules.
	quoted := fmt.Sprintf("key('%s')", strings.ReplaceAll(a.Key, "'", "''"))
	dsn := fmt.Sprintf("file:%s?_pragma=%s", path, url.QueryEscape(quoted))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open encrypted database %s: %w", path, err)
	}
	return db, nil
}

// Encrypted reports true for the cipher backend.
func (a CipherAccess) Encrypted() bool { return true }
