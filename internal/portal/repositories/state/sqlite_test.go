package state

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:statetest?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE state (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestSetGet_RoundTrip(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyToken, "abc.def.ghi"))

	got, found, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "abc.def.ghi", got)
}

func TestGet_AbsentKeyIsNotAnError(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)

	got, found, err := repo.Get(context.Background(), KeyFirstName)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, got)
}

func TestSet_OverwritesExistingValue(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyDepartment, "ECE"))
	require.NoError(t, repo.Set(ctx, KeyDepartment, "CSE"))

	got, found, err := repo.Get(ctx, KeyDepartment)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "CSE", got)
}

func TestDelete_IsIdempotent(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyUserID, "42"))
	require.NoError(t, repo.Delete(ctx, KeyUserID))
	require.NoError(t, repo.Delete(ctx, KeyUserID))

	_, found, err := repo.Get(ctx, KeyUserID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestList_ReturnsOnlyDefinedKeys(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyToken, "tok"))
	require.NoError(t, repo.Set(ctx, KeyFirstName, "Ada"))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{KeyToken: "tok", KeyFirstName: "Ada"}, all)
}

func TestClearSession_LeavesRememberedEmail(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	for _, key := range SessionKeys() {
		require.NoError(t, repo.Set(ctx, key, "v"))
	}
	require.NoError(t, repo.Set(ctx, KeyRememberedEmail, "x@y.com"))

	require.NoError(t, repo.ClearSession(ctx))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{KeyRememberedEmail: "x@y.com"}, all)
}

func TestSessionKeys_ExcludeRememberedEmail(t *testing.T) {
	assert.NotContains(t, SessionKeys(), KeyRememberedEmail)
	assert.Len(t, SessionKeys(), 6)
}

func TestOpen_RunsMigrations(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "portal.db")

	db, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewSQLiteRepository(db)
	require.NoError(t, repo.Set(context.Background(), KeyToken, "tok"))

	got, found, err := repo.Get(context.Background(), KeyToken)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "tok", got)
}
