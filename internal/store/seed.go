// seed.go inserts demo accounts on first run outside production.

package store

import (
	"context"
	"errors"
	"fmt"
)

// demoUsers are the sample accounts available in non-production
// environments. Usernames already present are left untouched, so seeding
// is idempotent and never resets a changed password.
var demoUsers = []struct {
	username string
	password string
	role     string
}{
	{"demo@fixhub.es", "demo123!", "Owner"},
	{"demo2@fixhub.es", "demo456!", "User"},
}

// SeedDemoUsers inserts the demo accounts, skipping any that exist.
// Returns the number of accounts created.
func (s *SQLiteStore) SeedDemoUsers(ctx context.Context) (int, error) {
	created := 0
	for _, du := range demoUsers {
		_, err := s.User(ctx, du.username)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return created, fmt.Errorf("seed demo users: %w", err)
		}

		hash, err := HashPassword(du.password)
		if err != nil {
			return created, err
		}
		if err := s.CreateUser(ctx, User{
			Username:       du.username,
			HashedPassword: hash,
			Role:           du.role,
		}); err != nil {
			return created, fmt.Errorf("seed demo users: %w", err)
		}
		created++
	}
	return created, nil
}
