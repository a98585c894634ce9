package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "store.db")
	db, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSQLiteRepository(db)
}

func TestGet_AbsentKeyReturnsEmptyString(t *testing.T) {
	repo := setupRepo(t)

	v, err := repo.Get(context.Background(), TokenKey)
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestSetGet(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, TokenKey, "tok-1"))
	v, err := repo.Get(ctx, TokenKey)
	require.NoError(t, err)
	require.Equal(t, "tok-1", v)
}

func TestSet_OverwritesExistingValue(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, TokenKey, "old"))
	require.NoError(t, repo.Set(ctx, TokenKey, "new"))

	v, err := repo.Get(ctx, TokenKey)
	require.NoError(t, err)
	require.Equal(t, "new", v)
}

func TestDelete(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, TokenKey, "tok"))
	require.NoError(t, repo.Delete(ctx, TokenKey))

	v, err := repo.Get(ctx, TokenKey)
	require.NoError(t, err)
	require.Empty(t, v)

	// Deleting an absent key is not an error.
	require.NoError(t, repo.Delete(ctx, TokenKey))
}

func TestClear(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, TokenKey, "tok"))
	require.NoError(t, repo.Set(ctx, "theme", "dark"))
	require.NoError(t, repo.Clear(ctx))

	for _, key := range []string{TokenKey, "theme"} {
		v, err := repo.Get(ctx, key)
		require.NoError(t, err)
		require.Empty(t, v)
	}
}

func TestInitDatabase_IsIdempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "store.db")
	ctx := context.Background()

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteRepository(db).Set(ctx, TokenKey, "tok"))
	require.NoError(t, db.Close())

	db, err = InitDatabase(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	v, err := NewSQLiteRepository(db).Get(ctx, TokenKey)
	require.NoError(t, err)
	require.Equal(t, "tok", v)
}
