// Package app runs one reporting session: load the table, ask for a breed,
// compute its statistics and print the report.
package app

import (
	"context"
	"fmt"
	"io"

	"calgarydogs/internal/backend"
	applog "calgarydogs/internal/log"
	"calgarydogs/internal/prompt"
	"calgarydogs/internal/report"
	"calgarydogs/internal/sheets"
	"calgarydogs/internal/stats"
)

type App struct {
	Loader  sheets.TableLoader
	Factory backend.Factory
	Backend backend.Config
	In      io.Reader
	Out     io.Writer
	Logger  *applog.Logger
}

// Run executes a single session. Every returned error is fatal for the
// process; an unknown breed is handled by re-prompting and never surfaces.
func (a *App) Run(ctx context.Context) error {
	loaderLog := a.Logger.WithComponent(applog.ComponentLoader)
	tbl, err := a.Loader.Load(ctx)
	if err != nil {
		loaderLog.LogError(ctx, "Failed to load registration table", err, applog.ErrorTypeDataFormat, applog.OpLoad)
		return fmt.Errorf("load table: %w", err)
	}
	loaderLog.InfoContext(ctx, "Registration table loaded",
		applog.NewFields().WithTable(tbl.Len(), len(tbl.Years()), tbl.BreedCount()).ToSlice()...)

	res, err := a.Factory.CreateBackend(ctx, a.Backend, tbl)
	if err != nil {
		a.Logger.WithComponent(applog.ComponentBackend).
			LogError(ctx, "Failed to create query backend", err, applog.ErrorTypeDatabase, applog.OpStartup)
		return fmt.Errorf("create backend: %w", err)
	}
	defer func() {
		if cerr := res.Close(); cerr != nil {
			a.Logger.WithComponent(applog.ComponentBackend).
				LogError(ctx, "Failed to close query backend", cerr, applog.ErrorTypeDatabase, applog.OpShutdown)
		}
	}()

	if err := report.Banner(a.Out); err != nil {
		return err
	}

	breed, err := prompt.NewBreedReader(a.In, a.Out, res.Querier).ReadBreed(ctx)
	if err != nil {
		a.Logger.WithComponent(applog.ComponentValidator).
			LogError(ctx, "No valid breed entered", err, applog.ErrorTypeInput, applog.OpValidate)
		return fmt.Errorf("read breed: %w", err)
	}
	a.Logger.WithComponent(applog.ComponentValidator).DebugContext(ctx, "Breed accepted", applog.FieldBreed, breed)

	summary, err := stats.Summarize(ctx, res.Querier, breed)
	if err != nil {
		a.Logger.WithComponent(applog.ComponentAggregator).
			LogError(ctx, "Failed to compute breed statistics", err, applog.ErrorTypeInternal, applog.OpQuery)
		return fmt.Errorf("summarize %s: %w", breed, err)
	}

	if err := report.Write(a.Out, summary); err != nil {
		a.Logger.WithComponent(applog.ComponentReporter).
			LogError(ctx, "Failed to write report", err, applog.ErrorTypeInternal, applog.OpRender)
		return err
	}
	return nil
}
