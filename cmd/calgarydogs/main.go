package main

import (
	"context"
	"os"

	"calgarydogs/internal/app"
	"calgarydogs/internal/backend"
	"calgarydogs/internal/cli"
	applog "calgarydogs/internal/log"
	"calgarydogs/internal/sheets/source"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(os.Getenv("LOG_LEVEL"))
	cfg := cli.LoadAndValidateConfig(logger)

	ctx := context.Background()

	loader, err := source.NewLoader(ctx, cfg)
	if err != nil {
		logger.LogError(ctx, "Failed to initialize data source", err, applog.ErrorTypeConfiguration, applog.OpStartup)
		os.Exit(1)
	}

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.LogError(ctx, "Invalid backend configuration", err, applog.ErrorTypeConfiguration, applog.OpStartup)
		os.Exit(1)
	}

	logger.Debug("Starting calgarydogs",
		applog.FieldSource, cfg.DataSource,
		applog.FieldPath, cfg.DataFile,
		applog.FieldBackend, cfg.DataBackend)

	a := &app.App{
		Loader:  loader,
		Factory: backend.NewFactory(logger.Logger),
		Backend: backendCfg,
		In:      os.Stdin,
		Out:     os.Stdout,
		Logger:  logger,
	}
	if err := a.Run(ctx); err != nil {
		os.Exit(1)
	}
}
