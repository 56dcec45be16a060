package backend

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calgarydogs/internal/config"
	"calgarydogs/internal/core"
	"calgarydogs/internal/stats"
	"calgarydogs/internal/storage"
)

func sampleTable(t *testing.T) *core.Table {
	t.Helper()
	tbl, err := core.NewTable([]core.Record{
		{Key: core.Key{Year: 2021, Month: "January"}, Breed: "PUG", Total: 10},
		{Key: core.Key{Year: 2021, Month: "January"}, Breed: "BEAGLE", Total: 90},
	})
	require.NoError(t, err)
	return tbl
}

func TestCreateMemoryBackend(t *testing.T) {
	res, err := NewFactory(nil).CreateBackend(context.Background(), Config{Type: MemoryBackend}, sampleTable(t))
	require.NoError(t, err)
	assert.IsType(t, &stats.TableQuerier{}, res.Querier)
	assert.NoError(t, res.Close())

	total, err := res.Querier.TotalRegistrations(context.Background(), "PUG")
	require.NoError(t, err)
	assert.Equal(t, int64(10), total)
}

func TestCreateSQLiteBackend(t *testing.T) {
	cfg := Config{Type: SQLiteBackend, SQLiteDBPath: filepath.Join(t.TempDir(), "dogs.db")}
	res, err := NewFactory(nil).CreateBackend(context.Background(), cfg, sampleTable(t))
	require.NoError(t, err)
	defer res.Close()
	assert.IsType(t, &storage.SQLiteRepository{}, res.Querier)

	shares, err := res.Querier.PercentageByYear(context.Background(), "PUG")
	require.NoError(t, err)
	assert.InDelta(t, 10.0, shares.Overall, 1e-9)
}

func TestCreateBackendLogsImportAndRejections(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f := NewFactory(logger)

	cfg := Config{Type: SQLiteBackend, SQLiteDBPath: filepath.Join(t.TempDir(), "dogs.db")}
	res, err := f.CreateBackend(context.Background(), cfg, sampleTable(t))
	require.NoError(t, err)
	defer res.Close()

	out := buf.String()
	assert.Contains(t, out, `"component":"storage"`)
	assert.Contains(t, out, `"operation":"import"`)
	assert.Contains(t, out, `"duration_ms":`)

	buf.Reset()
	_, err = f.CreateBackend(context.Background(), Config{Type: "redis"}, sampleTable(t))
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"error_type":"validation_error"`)
}

func TestCreateBackendErrors(t *testing.T) {
	f := NewFactory(nil)
	_, err := f.CreateBackend(context.Background(), Config{Type: "redis"}, sampleTable(t))
	assert.ErrorContains(t, err, "invalid backend type")
	assert.ErrorContains(t, err, "[memory sqlite]")

	_, err = f.CreateBackend(context.Background(), Config{Type: SQLiteBackend}, sampleTable(t))
	assert.ErrorContains(t, err, "SQLite database path is required")

	_, err = f.CreateBackend(context.Background(), Config{Type: MemoryBackend}, nil)
	assert.ErrorContains(t, err, "nil table")
}

func TestFromAppConfig(t *testing.T) {
	_, err := FromAppConfig(nil)
	assert.Error(t, err)

	_, err = FromAppConfig(&config.Config{DataBackend: "sheets"})
	assert.ErrorContains(t, err, "invalid backend type in config")
	assert.ErrorContains(t, err, "[memory sqlite]")

	cfg, err := FromAppConfig(&config.Config{DataBackend: "sqlite", SQLiteDBPath: "x.db"})
	require.NoError(t, err)
	assert.Equal(t, Config{Type: SQLiteBackend, SQLiteDBPath: "x.db"}, cfg)
}

func TestBackendTypes(t *testing.T) {
	for _, bt := range GetBackendTypes() {
		assert.True(t, bt.IsValid(), bt.String())
	}
	assert.False(t, BackendType("sheets").IsValid())

	var nilResult *BackendResult
	assert.NoError(t, nilResult.Close())
}
