// errors.go defines sentinel errors for backup and restore failures.
//
// Sentinel errors (not error types) because these failures don't carry
// context beyond their category. Detailed messages are provided by
// wrapping with fmt.Errorf at the failure site; callers classify with
// errors.Is.

package backup

import "errors"

var (
	// ErrSourceNotFound indicates the database or backup file to copy from
	// does not exist.
	ErrSourceNotFound = errors.New("source database not found")
	// ErrInvalidBackup indicates a restore input that is not a well-formed
	// database file.
	ErrInvalidBackup = errors.New("invalid backup file")
	// ErrPermission indicates a target could not be created or adjusted
	// with the required owner-only mode.
	ErrPermission = errors.New("permission denied")
)
