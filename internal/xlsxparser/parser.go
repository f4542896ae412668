// =============================================================================
// Receipts Report - XLSX Reader
// =============================================================================
//
// This module reads worksheets back from an XLSX workbook. It is used to
// display generated reports on the command line and to verify that what
// was written matches what was computed.
//
// SHEET LAYOUT (Expected):
//   Row 1 is the header; every following non-empty row is data.
//
//   | date       | no_of_receipts | turnover_share_lc | ... |
//   |------------|----------------|-------------------|-----|
//   | 2024-04-01 | 2              | 0.33              | ... |
//
// Values are returned as the formatted strings excelize produces.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// =============================================================================
// SHEET STRUCTURE
// =============================================================================

// SheetData is the content of one worksheet.
type SheetData struct {
	// Name is the worksheet name.
	Name string

	// Header is the first row.
	Header []string

	// Rows are the data rows, each padded to the header width.
	Rows [][]string
}

// Column returns the values of the named header column.
// It returns nil if the header does not exist.
func (s *SheetData) Column(name string) []string {
	idx := -1
	for i, h := range s.Header {
		if h == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	values := make([]string, len(s.Rows))
	for i, row := range s.Rows {
		values[i] = row[idx]
	}
	return values
}

// =============================================================================
// READER FUNCTIONS
// =============================================================================

// SheetNames returns the worksheet names of a workbook, in order.
func SheetNames(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return f.GetSheetList(), nil
}

// ReadSheet reads a single worksheet.
//
// PARAMETERS:
//   - path: The path to the XLSX file.
//   - sheetName: The worksheet to read.
//
// RETURNS:
//   - The sheet content.
//   - An error if the file cannot be opened or the sheet does not exist.
func ReadSheet(path, sheetName string) (*SheetData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return readSheet(f, sheetName)
}

// ReadAll reads every worksheet of a workbook, keyed by sheet name.
func ReadAll(path string) (map[string]*SheetData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := make(map[string]*SheetData)
	for _, name := range f.GetSheetList() {
		sheet, err := readSheet(f, name)
		if err != nil {
			return nil, err
		}
		sheets[name] = sheet
	}

	return sheets, nil
}

// readSheet reads a worksheet from an open workbook.
func readSheet(f *excelize.File, sheetName string) (*SheetData, error) {
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet %q not found", sheetName)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of sheet %q: %w", sheetName, err)
	}

	data := &SheetData{Name: sheetName, Header: []string{}, Rows: [][]string{}}
	if len(rows) == 0 {
		return data, nil
	}

	data.Header = rows[0]
	width := len(data.Header)

	for _, row := range rows[1:] {
		if isRowEmpty(row) {
			continue
		}
		padded := make([]string, width)
		copy(padded, row)
		data.Rows = append(data.Rows, padded)
	}

	return data, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// isRowEmpty checks if a row contains only empty cells.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
