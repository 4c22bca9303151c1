package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := OpenSQLite(filepath.Join(t.TempDir(), "twodo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	require.NoError(t, MigrateUp(repo.DB()))
	return repo
}

func TestDocumentRoundTrip(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveDocument(ctx, "tasks", []byte(`[{"id":"a"}]`)))

	value, err := repo.LoadDocument(ctx, "tasks")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a"}]`, string(value))
}

func TestSaveDocumentOverwrites(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveDocument(ctx, "settings", []byte(`{"v":1}`)))
	require.NoError(t, repo.SaveDocument(ctx, "settings", []byte(`{"v":2}`)))

	value, err := repo.LoadDocument(ctx, "settings")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(value))
}

func TestLoadMissingDocument(t *testing.T) {
	repo := openTestRepo(t)

	_, err := repo.LoadDocument(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteDocument(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveDocument(ctx, "meta", []byte(`{}`)))
	require.NoError(t, repo.DeleteDocument(ctx, "meta"))

	_, err := repo.LoadDocument(ctx, "meta")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.DeleteDocument(ctx, "meta"), ErrNotFound)
}

func TestMigrateDownRemovesTable(t *testing.T) {
	repo := openTestRepo(t)
	require.NoError(t, MigrateDown(repo.DB()))

	err := repo.SaveDocument(context.Background(), "tasks", []byte(`[]`))
	assert.Error(t, err)
}
