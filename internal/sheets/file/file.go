// Package file loads the registration dataset from a local spreadsheet.
//
// Excel workbooks (.xlsx, .xlsm) are read with excelize; .csv exports are
// read with encoding/csv. Both feed the shared header parser in package
// sheets, so column rules are identical for every format.
package file

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"calgarydogs/internal/core"
	"calgarydogs/internal/sheets"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

// Loader reads a Table from a spreadsheet on disk.
type Loader struct {
	path  string
	sheet string
}

var _ sheets.TableLoader = (*Loader)(nil)

// NewLoader returns a Loader for path. sheet selects the workbook sheet and
// is ignored for CSV files; empty means the first sheet.
func NewLoader(path, sheet string) (*Loader, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("empty data file path")
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".csv":
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return &Loader{path: path, sheet: strings.TrimSpace(sheet)}, nil
}

// Path returns the configured file path.
func (l *Loader) Path() string {
	return l.path
}

func (l *Loader) Load(ctx context.Context) (*core.Table, error) {
	var (
		values [][]string
		err    error
	)
	if strings.EqualFold(filepath.Ext(l.path), ".csv") {
		values, err = readCSV(l.path)
	} else {
		values, err = readWorkbook(l.path, l.sheet)
	}
	if err != nil {
		return nil, err
	}
	tbl, err := sheets.ParseRows(values)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", l.path, err)
	}
	slog.DebugContext(ctx, "Loaded registration table",
		"path", l.path,
		"records", tbl.Len(),
		"years", len(tbl.Years()),
		"breeds", tbl.BreedCount())
	return tbl, nil
}
