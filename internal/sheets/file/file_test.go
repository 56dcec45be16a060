package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"calgarydogs/internal/sheets"
)

func writeWorkbook(t *testing.T, path, sheet string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestNewLoaderRejectsUnknownExtension(t *testing.T) {
	_, err := NewLoader("dogs.json", "")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = NewLoader("  ", "")
	assert.Error(t, err)

	l, err := NewLoader("CalgaryDogBreeds.XLSX", "")
	require.NoError(t, err)
	assert.Equal(t, "CalgaryDogBreeds.XLSX", l.Path())
}

func TestLoadWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dogs.xlsx")
	writeWorkbook(t, path, "Sheet1", [][]any{
		{"Year", "Month", "Breed", "Total"},
		{2021, "January", "LABRADOR RETR", 40},
		{2021, "January", "POODLE", 12},
		{2022, "March", "POODLE", 7},
	})

	l, err := NewLoader(path, "")
	require.NoError(t, err)
	tbl, err := l.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, []int{2021, 2022}, tbl.Years())
	assert.Equal(t, int64(52), tbl.YearTotal(2021))
	assert.True(t, tbl.HasBreed("POODLE"))
}

func TestLoadWorkbookNamedSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dogs.xlsx")
	writeWorkbook(t, path, "Registrations", [][]any{
		{"Year", "Month", "Breed", "Total"},
		{2023, "May", "PUG", 2},
	})

	l, err := NewLoader(path, "Registrations")
	require.NoError(t, err)
	tbl, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())

	l, err = NewLoader(path, "Nope")
	require.NoError(t, err)
	_, err = l.Load(context.Background())
	assert.Error(t, err)
}

func TestLoadWorkbookMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dogs.xlsx")
	writeWorkbook(t, path, "Sheet1", [][]any{
		{"Year", "Month", "Breed"},
		{2021, "January", "POODLE"},
	})

	l, err := NewLoader(path, "")
	require.NoError(t, err)
	_, err = l.Load(context.Background())
	assert.ErrorIs(t, err, sheets.ErrMissingColumn)
}

func TestLoadMissingFile(t *testing.T) {
	l, err := NewLoader(filepath.Join(t.TempDir(), "absent.xlsx"), "")
	require.NoError(t, err)
	_, err = l.Load(context.Background())
	assert.Error(t, err)
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dogs.csv")
	content := "Year,Month,Breed,Total\n2021,January,POODLE,3\n2021,February,\"SHIH TZU, MIX\",5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	l, err := NewLoader(path, "ignored")
	require.NoError(t, err)
	tbl, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, int64(8), tbl.GrandTotal())
	assert.True(t, tbl.HasBreed("SHIH TZU, MIX"))
}
