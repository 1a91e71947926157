package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yuna/weekcard/internal/database"
)

func openTestDB(t *testing.T) *SnapshotRepo {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(db))
	return NewSnapshotRepo(db)
}

func TestSnapshotCRUD(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := openTestDB(t)

	_, err := repo.Get(ctx, "stream-week", "p1")
	require.ErrorIs(t, err, ErrNotFound)

	now := database.Now()
	require.NoError(t, repo.Put(ctx, "stream-week", "p1", []byte(`{"v":1}`), now))

	data, err := repo.Get(ctx, "stream-week", "p1")
	require.NoError(t, err)
	require.JSONEq(t, `{"v":1}`, string(data))

	// upsert replaces
	require.NoError(t, repo.Put(ctx, "stream-week", "p1", []byte(`{"v":2}`), now))
	data, err = repo.Get(ctx, "stream-week", "p1")
	require.NoError(t, err)
	require.JSONEq(t, `{"v":2}`, string(data))

	require.NoError(t, repo.Delete(ctx, "stream-week", "p1"))
	_, err = repo.Get(ctx, "stream-week", "p1")
	require.ErrorIs(t, err, ErrNotFound)

	// deleting a missing row is not an error
	require.NoError(t, repo.Delete(ctx, "stream-week", "p1"))
}

func TestSnapshotNamespacing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := openTestDB(t)
	now := database.Now()

	require.NoError(t, repo.Put(ctx, "stream-week", "p1", []byte(`{"t":"a"}`), now))
	require.NoError(t, repo.Put(ctx, "cafe-menu", "p1", []byte(`{"t":"b"}`), now))
	require.NoError(t, repo.Put(ctx, "stream-week", "p2", []byte(`{"t":"c"}`), now))

	a, err := repo.Get(ctx, "stream-week", "p1")
	require.NoError(t, err)
	require.JSONEq(t, `{"t":"a"}`, string(a))

	b, err := repo.Get(ctx, "cafe-menu", "p1")
	require.NoError(t, err)
	require.JSONEq(t, `{"t":"b"}`, string(b))

	require.NoError(t, repo.Delete(ctx, "cafe-menu", "p1"))
	_, err = repo.Get(ctx, "stream-week", "p1")
	require.NoError(t, err, "deleting one namespace must not touch another")

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
}
