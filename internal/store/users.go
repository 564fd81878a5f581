// users.go implements user account operations.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// CreateUser inserts a new user with an already-hashed password.
// Returns ErrUserExists if the username is taken.
func (s *SQLiteStore) CreateUser(ctx context.Context, u User) error {
	if u.Username == "" {
		return fmt.Errorf("create user: username is required")
	}
	if u.Role == "" {
		u.Role = "User"
	}

	err := s.Tx(ctx, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx,
			`SELECT 1 FROM users WHERE username = ?`, u.Username).Scan(&exists)
		if err == nil {
			return fmt.Errorf("%w: %s", ErrUserExists, u.Username)
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("check user %s: %w", u.Username, err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO users (username, hashed_password, role) VALUES (?, ?, ?)`,
			u.Username, u.HashedPassword, u.Role)
		if err != nil {
			return fmt.Errorf("insert user %s: %w", u.Username, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return s.EnsurePermissions()
}

// User returns a single user by username, or ErrNotFound.
func (s *SQLiteStore) User(ctx context.Context, username string) (*User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT username, hashed_password, role FROM users WHERE username = ?`, username)

	var u User
	err := row.Scan(&u.Username, &u.HashedPassword, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

// Users returns all users ordered by username.
func (s *SQLiteStore) Users(ctx context.Context) ([]User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT username, hashed_password, role FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.Username, &u.HashedPassword, &u.Role); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
