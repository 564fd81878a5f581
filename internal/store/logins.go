// logins.go implements login recording and device usage tracking.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// AddLogin records an authentication event for a user and device.
func (s *SQLiteStore) AddLogin(ctx context.Context, username, deviceID string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO logins (username, device_id) VALUES (?, ?)`, username, deviceID)
	if err != nil {
		return fmt.Errorf("insert login: %w", err)
	}
	return s.EnsurePermissions()
}

// DeviceUsage returns the usage row for a user and device, or ErrNotFound.
func (s *SQLiteStore) DeviceUsage(ctx context.Context, username, deviceID string) (*DeviceUsage, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT username, device_id, quote_count, first_access
		 FROM device_usage WHERE username = ? AND device_id = ?`, username, deviceID)

	var d DeviceUsage
	var firstAccess string
	err := row.Scan(&d.Username, &d.DeviceID, &d.QuoteCount, &firstAccess)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan device usage: %w", err)
	}
	d.FirstAccess = parseTimestamp(firstAccess)
	return &d, nil
}

// IncrementDeviceUsage bumps the quote counter for a user and device,
// creating the row on first access.
func (s *SQLiteStore) IncrementDeviceUsage(ctx context.Context, username, deviceID string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO device_usage (username, device_id, quote_count)
		VALUES (?, ?, 1)
		ON CONFLICT(username, device_id)
		DO UPDATE SET quote_count = quote_count + 1`, username, deviceID)
	if err != nil {
		return fmt.Errorf("increment device usage: %w", err)
	}
	return nil
}
