// Package source picks the TableLoader named by the application config.
package source

import (
	"context"
	"fmt"

	"calgarydogs/internal/config"
	"calgarydogs/internal/sheets"
	"calgarydogs/internal/sheets/file"
	gsheet "calgarydogs/internal/sheets/google"
)

func NewLoader(ctx context.Context, cfg *config.Config) (sheets.TableLoader, error) {
	switch cfg.DataSource {
	case config.SourceFile:
		l, err := file.NewLoader(cfg.DataFile, cfg.DataSheet)
		if err != nil {
			return nil, err
		}
		return l, nil
	case config.SourceSheets:
		c, err := gsheet.NewClient(ctx, gsheet.Config{
			SpreadsheetID:   cfg.GoogleSpreadsheetID,
			Range:           cfg.GoogleSheetRange,
			CredentialsJSON: cfg.GoogleServiceAccountJSON,
			CredentialsFile: cfg.GoogleServiceAccountFile,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unsupported data source: %s", cfg.DataSource)
	}
}
