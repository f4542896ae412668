package xlsxparser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Report"))
	require.NoError(t, f.SetSheetRow("Report", "A1", &[]any{"date", "count", "note"}))
	require.NoError(t, f.SetSheetRow("Report", "A2", &[]any{"2024-04-01", 3}))
	require.NoError(t, f.SetSheetRow("Report", "A4", &[]any{"2024-04-02", 1, "late"}))

	_, err := f.NewSheet("Empty")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestSheetNames(t *testing.T) {
	names, err := SheetNames(writeWorkbook(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"Report", "Empty"}, names)
}

func TestReadSheet(t *testing.T) {
	sheet, err := ReadSheet(writeWorkbook(t), "Report")
	require.NoError(t, err)

	assert.Equal(t, "Report", sheet.Name)
	assert.Equal(t, []string{"date", "count", "note"}, sheet.Header)
	assert.Equal(t, [][]string{
		{"2024-04-01", "3", ""},
		{"2024-04-02", "1", "late"},
	}, sheet.Rows)

	assert.Equal(t, []string{"3", "1"}, sheet.Column("count"))
	assert.Nil(t, sheet.Column("missing"))
}

func TestReadSheet_Errors(t *testing.T) {
	path := writeWorkbook(t)

	_, err := ReadSheet(path, "Nope")
	assert.ErrorContains(t, err, `"Nope"`)

	_, err = ReadSheet(filepath.Join(t.TempDir(), "none.xlsx"), "Report")
	assert.Error(t, err)
}

func TestReadAll(t *testing.T) {
	sheets, err := ReadAll(writeWorkbook(t))
	require.NoError(t, err)

	require.Contains(t, sheets, "Report")
	require.Contains(t, sheets, "Empty")
	assert.Len(t, sheets["Report"].Rows, 2)
	assert.Empty(t, sheets["Empty"].Header)
	assert.Empty(t, sheets["Empty"].Rows)
}
