package store_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fixhub-es/tradexdb/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupStore creates a temporary plain-backend store for testing.
func setupStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "users.db")
	s, err := store.Open(dbPath, store.PlainAccess{})
	require.NoError(t, err)
	require.NoError(t, s.Init())

	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_EnforcesOwnerOnlyMode(t *testing.T) {
	s := setupStore(t)

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, store.FileMode, info.Mode().Perm())
}

func TestInit_Idempotent(t *testing.T) {
	s := setupStore(t)
	require.NoError(t, s.Init())
	require.NoError(t, s.Init())
}

func TestCreateUser_AndLookup(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	hash, err := store.HashPassword("hunter2!")
	require.NoError(t, err)

	err = s.CreateUser(ctx, store.User{Username: "ops@fixhub.es", HashedPassword: hash, Role: "Owner"})
	require.NoError(t, err)

	u, err := s.User(ctx, "ops@fixhub.es")
	require.NoError(t, err)
	assert.Equal(t, "Owner", u.Role)
	assert.True(t, store.CheckPassword(u.HashedPassword, "hunter2!"))
	assert.False(t, store.CheckPassword(u.HashedPassword, "wrong"))
}

func TestCreateUser_Duplicate(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	u := store.User{Username: "dup@fixhub.es", HashedPassword: "x"}
	require.NoError(t, s.CreateUser(ctx, u))

	err := s.CreateUser(ctx, u)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrUserExists)
}

func TestCreateUser_DefaultRole(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, store.User{Username: "plain@fixhub.es", HashedPassword: "x"}))

	u, err := s.User(ctx, "plain@fixhub.es")
	require.NoError(t, err)
	assert.Equal(t, "User", u.Role)
}

func TestUser_NotFound(t *testing.T) {
	s := setupStore(t)

	_, err := s.User(context.Background(), "ghost@fixhub.es")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsers_Ordered(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	for _, name := range []string{"zeta@fixhub.es", "alpha@fixhub.es"} {
		require.NoError(t, s.CreateUser(ctx, store.User{Username: name, HashedPassword: "x"}))
	}

	users, err := s.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alpha@fixhub.es", users[0].Username)
	assert.Equal(t, "zeta@fixhub.es", users[1].Username)
}

func TestDeviceUsage_IncrementAndGet(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	_, err := s.DeviceUsage(ctx, "u@fixhub.es", "device-1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.IncrementDeviceUsage(ctx, "u@fixhub.es", "device-1"))
	require.NoError(t, s.IncrementDeviceUsage(ctx, "u@fixhub.es", "device-1"))

	d, err := s.DeviceUsage(ctx, "u@fixhub.es", "device-1")
	require.NoError(t, err)
	assert.Equal(t, 2, d.QuoteCount)
	assert.False(t, d.FirstAccess.IsZero())
}

func TestAddLogin(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddLogin(ctx, "u@fixhub.es", "device-1"))

	var count int
	err := s.DB().QueryRowContext(ctx,
		`SELECT count(*) FROM logins WHERE username = ?`, "u@fixhub.es").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSeedDemoUsers_Idempotent(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	created, err := s.SeedDemoUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	// Second run must not recreate or reset anything.
	created, err = s.SeedDemoUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	users, err := s.Users(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestCheckpoint_TruncateResetsWAL(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddLogin(ctx, "u@fixhub.es", "device-1"))
	require.NoError(t, s.Checkpoint(ctx, store.CheckpointTruncate))

	// After TRUNCATE the WAL, if present, holds no frames.
	info, err := os.Stat(s.Path() + "-wal")
	if !errors.Is(err, os.ErrNotExist) {
		require.NoError(t, err)
		assert.Zero(t, info.Size())
	}
}
