package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteRepo(t *testing.T) *SQLiteUserRepository {
	t.Helper()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewSQLiteUserRepository(db)
	require.NoError(t, repo.InitSchema(context.Background()))
	return repo
}

func TestSQLiteCreateAndGetByUsername(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, "alice", "hashed-secret", 1)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	user, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "hashed-secret", user.PasswordHash)
	assert.Equal(t, 1, user.RoleID)
}

func TestSQLiteGetByUsername_Absent(t *testing.T) {
	repo := newSQLiteRepo(t)

	user, err := repo.GetByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}
