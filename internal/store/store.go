// Package store defines the Tradex database types and the SQLite access
// layer. Consumers depend on the exported operations rather than raw SQL,
// keeping the CLI commands free of database concerns.
package store

import (
	"errors"
	"time"
)

var (
	// ErrNotFound indicates the requested row does not exist.
	// Callers should check for this to distinguish missing data from other errors.
	ErrNotFound = errors.New("record not found")
	// ErrUserExists prevents overwriting an existing user during create.
	ErrUserExists = errors.New("user already exists")
)

// User is a row in the users table. The password is stored as a bcrypt
// hash; the plaintext never reaches the store.
type User struct {
	Username       string
	HashedPassword string
	Role           string
}

// Login records a single authentication event for a user and device.
type Login struct {
	ID        int64
	Username  string
	DeviceID  string
	LoginTime time.Time
}

// DeviceUsage tracks per-device quote consumption for a user.
type DeviceUsage struct {
	Username    string
	DeviceID    string
	QuoteCount  int
	FirstAccess time.Time
}

// AuditEntry is a row in the audit log. Before and After hold redacted
// JSON snapshots of the object the action touched; nil when not captured.
type AuditEntry struct {
	ID        int64
	Timestamp time.Time
	Actor     string
	IP        string
	UserAgent string
	Action    string
	Object    string
	Before    *string
	After     *string
}

// AuditFilter narrows an audit log query. Zero values mean "no constraint".
type AuditFilter struct {
	Actor string
	Start time.Time
	End   time.Time
}
