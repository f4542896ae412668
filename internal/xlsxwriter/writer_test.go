package xlsxwriter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/receipts-report/internal/types"
)

func TestNewWorkbook(t *testing.T) {
	f, err := NewWorkbook(
		Sheet{Name: "First", Header: []string{"a", "b"}, Rows: [][]any{{"x", 1}}},
		Sheet{Name: "Second", Header: []string{"c"}},
	)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"First", "Second"}, f.GetSheetList())
	assert.Equal(t, 0, f.GetActiveSheetIndex())

	rows, err := f.GetRows("First")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"x", "1"}}, rows)

	rows, err = f.GetRows("Second")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"c"}}, rows)
}

func TestNewWorkbook_NoSheets(t *testing.T) {
	_, err := NewWorkbook()
	assert.Error(t, err)
}

func TestWriteFile_NumericCells(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	value := decimal.RequireFromString("12.34")

	err := WriteFile(path, Sheet{
		Name:   "Data",
		Header: []string{"text", "count", "amount", "pointer"},
		Rows:   [][]any{{"2024-04-01", 7, value, &value}},
	})
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	for cell, want := range map[string]string{"A2": "2024-04-01", "B2": "7", "C2": "12.34", "D2": "12.34"} {
		got, err := f.GetCellValue("Data", cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, "cell %s", cell)
	}
}

func TestSave_RejectsNonXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xls")

	err := WriteFile(path, Sheet{Name: "Data"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrIO))
	assert.True(t, errors.Is(err, excelize.ErrWorkbookFileFormat))
	assert.NoFileExists(t, path)
}

func TestSave_ReplacesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	require.NoError(t, WriteFile(path, Sheet{Name: "Data", Header: []string{"new"}}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	value, err := f.GetCellValue("Data", "A1")
	require.NoError(t, err)
	assert.Equal(t, "new", value)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
