package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calgarydogs/internal/core"
	"calgarydogs/internal/stats"
	"calgarydogs/internal/stats/statstest"
)

func newRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "data", "dogs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSQLiteRepositoryQuerier(t *testing.T) {
	statstest.Run(t, func(t *testing.T, tbl *core.Table) stats.Querier {
		repo := newRepo(t)
		require.NoError(t, repo.Import(context.Background(), tbl))
		return repo
	})
}

func TestImportReplacesSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	first, err := core.NewTable([]core.Record{
		{Key: core.Key{Year: 2020, Month: "May"}, Breed: "PUG", Total: 3},
	})
	require.NoError(t, err)
	require.NoError(t, repo.Import(ctx, first))

	second, err := core.NewTable([]core.Record{
		{Key: core.Key{Year: 2021, Month: "June"}, Breed: "BEAGLE", Total: 4},
	})
	require.NoError(t, err)
	require.NoError(t, repo.Import(ctx, second))

	ok, err := repo.HasBreed(ctx, "PUG")
	require.NoError(t, err)
	assert.False(t, ok)

	total, err := repo.TotalRegistrations(ctx, "BEAGLE")
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dogs.db")
	require.NoError(t, RunMigrations(path))
	require.NoError(t, RunMigrations(path))

	repo, err := NewSQLiteRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.Close())
}

func TestCloseNilDB(t *testing.T) {
	r := &SQLiteRepository{}
	assert.NoError(t, r.Close())
}
