package backend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"calgarydogs/internal/core"
	applog "calgarydogs/internal/log"
	"calgarydogs/internal/stats"
	"calgarydogs/internal/storage"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{
		logger: logger,
	}
}

// CreateBackend implements Factory.CreateBackend
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config, table *core.Table) (*BackendResult, error) {
	if table == nil {
		return nil, errors.New("nil table")
	}
	if err := config.Validate(); err != nil {
		f.logger.ErrorContext(ctx, "Backend configuration rejected",
			applog.NewFields().
				WithComponent(applog.ComponentBackend).
				WithOperation(applog.OpStartup).
				WithError(err, applog.ErrorTypeValidation).
				ToSlice()...)
		return nil, err
	}

	switch config.Type {
	case SQLiteBackend:
		return f.createSQLiteBackend(ctx, config, table)
	case MemoryBackend:
		return f.createMemoryBackend(table), nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createSQLiteBackend(ctx context.Context, config Config, table *core.Table) (*BackendResult, error) {
	repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}
	storageLog := f.logger.With(applog.FieldComponent, applog.ComponentStorage)
	start := time.Now()
	if err := repo.Import(ctx, table); err != nil {
		repo.Close()
		storageLog.ErrorContext(ctx, "Table import failed",
			applog.NewFields().
				WithOperation(applog.OpImport).
				WithError(err, applog.ErrorTypeDatabase).
				ToSlice()...)
		return nil, fmt.Errorf("failed to import table: %w", err)
	}
	storageLog.DebugContext(ctx, "Table imported",
		applog.NewFields().
			WithOperation(applog.OpImport).
			With(applog.FieldRecords, table.Len()).
			With(applog.FieldDuration, time.Since(start).Milliseconds()).
			ToSlice()...)

	f.logger.Info("Initialized SQLite backend", "db_path", config.SQLiteDBPath, "records", table.Len())

	return &BackendResult{
		Querier: repo,
		Cleanup: repo.Close,
	}, nil
}

func (f *DefaultFactory) createMemoryBackend(table *core.Table) *BackendResult {
	f.logger.Info("Initialized memory backend", "records", table.Len())

	return &BackendResult{
		Querier: stats.NewTableQuerier(table),
	}
}
