package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calgarydogs/internal/backend"
	"calgarydogs/internal/core"
	applog "calgarydogs/internal/log"
	"calgarydogs/internal/prompt"
	"calgarydogs/internal/sheets"
	"calgarydogs/internal/sheets/memory"
)

func records() []core.Record {
	r := func(year int, month, breed string, total int64) core.Record {
		return core.Record{Key: core.Key{Year: year, Month: month}, Breed: breed, Total: total}
	}
	return []core.Record{
		r(2021, "January", "X", 10),
		r(2021, "January", "Y", 90),
		r(2022, "March", "X", 5),
		r(2022, "March", "Y", 45),
	}
}

func newApp(in string, out io.Writer, cfg backend.Config) *App {
	return &App{
		Loader:  memory.New(records()),
		Factory: backend.NewFactory(slog.New(slog.NewTextHandler(io.Discard, nil))),
		Backend: cfg,
		In:      strings.NewReader(in),
		Out:     out,
		Logger:  applog.New(applog.Config{Level: slog.LevelError, Component: applog.ComponentApp, Output: io.Discard}),
	}
}

const wantReport = "Dogs of Calgary\n" +
	prompt.BreedPrompt + prompt.RetryMessage + "\n" +
	prompt.BreedPrompt +
	"The X was found in the top breeds for years: 2021 2022\n" +
	"There have been 15 X dogs registered total.\n" +
	"The X was 10.000000% of top breeds in 2021.\n" +
	"The X was 10.000000% of top breeds in 2022.\n" +
	"The X was 10.000000% of top breeds across all years.\n" +
	"Most popular month(s) for X dogs: January March\n"

func TestRun_Backends(t *testing.T) {
	for _, cfg := range []backend.Config{
		{Type: backend.MemoryBackend},
		{Type: backend.SQLiteBackend, SQLiteDBPath: filepath.Join(t.TempDir(), "dogs.db")},
	} {
		t.Run(cfg.Type.String(), func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, newApp("corgi\n x \n", &out, cfg).Run(context.Background()))
			assert.Equal(t, wantReport, out.String())
		})
	}
}

func TestRun_EndOfInput(t *testing.T) {
	var out bytes.Buffer
	err := newApp("corgi\n", &out, backend.Config{Type: backend.MemoryBackend}).Run(context.Background())
	assert.ErrorIs(t, err, prompt.ErrEndOfInput)
}

func TestRun_LoadFailure(t *testing.T) {
	var out bytes.Buffer
	a := newApp("x\n", &out, backend.Config{Type: backend.MemoryBackend})
	a.Loader = sheets.LoaderFunc(func(context.Context) (*core.Table, error) {
		return nil, sheets.ErrMissingColumn
	})
	err := a.Run(context.Background())
	assert.ErrorIs(t, err, sheets.ErrMissingColumn)
	assert.Empty(t, out.String())
}

func TestRun_BackendFailure(t *testing.T) {
	var out bytes.Buffer
	err := newApp("x\n", &out, backend.Config{Type: "bogus"}).Run(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, prompt.ErrEndOfInput))
	assert.Contains(t, err.Error(), "create backend")
}
