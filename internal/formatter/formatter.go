// =============================================================================
// Receipts Report - Workbook Formatter
// =============================================================================
//
// This module applies cosmetic styling to a workbook that already exists on
// disk. It never changes cell values, only widths, fonts, alignment,
// borders, fills and number formats.
//
// USAGE:
//   f, err := formatter.Open("report.xlsx")
//   defer f.Close()
//   f.AdjustColumnWidths("Final_Report")
//   f.FormatRange("Final_Report", CellRange{MinRow: 1, MaxRow: 1}, CellStyle{Bold: true})
//   f.Save()
//
// RANGES:
//   Rows and columns are 1-based. A zero MaxRow or MaxCol extends the range
//   to the last used row or column of the sheet; a zero MinRow or MinCol
//   starts at 1.
//
// =============================================================================

package formatter

import (
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/receipts-report/internal/xlsxwriter"
)

// =============================================================================
// OPTION STRUCTURES
// =============================================================================

// CellStyle describes the style written to a range of cells.
type CellStyle struct {
	// Bold sets a bold font.
	Bold bool

	// Horizontal is the horizontal alignment: "left", "center", "right"
	// or empty for the default.
	Horizontal string

	// Border draws a thin black border on all four sides.
	Border bool

	// FillColor is a 6-digit RGB hex background color. Empty means no fill.
	FillColor string
}

// CellRange addresses a rectangle of cells.
type CellRange struct {
	MinRow int
	MaxRow int
	MinCol int
	MaxCol int
}

// ColumnFormats maps column letters to number format codes.
type ColumnFormats struct {
	// ByColumn holds the format of specific columns, keyed by letter ("A").
	ByColumn map[string]string

	// Other is used for every column not in ByColumn. Empty leaves them as is.
	Other string
}

// formatFor returns the number format of a column letter.
func (c ColumnFormats) formatFor(column string) string {
	if code, ok := c.ByColumn[column]; ok {
		return code
	}
	return c.Other
}

// =============================================================================
// FORMATTER
// =============================================================================

// Formatter styles an open workbook and saves it back to its path.
type Formatter struct {
	path string
	file *excelize.File
}

// Open loads the workbook at path.
func Open(path string) (*Formatter, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook '%s': %w", path, err)
	}
	return &Formatter{path: path, file: f}, nil
}

// Close releases the workbook. Unsaved changes are lost.
func (f *Formatter) Close() error {
	return f.file.Close()
}

// Save writes the workbook back to its path atomically.
func (f *Formatter) Save() error {
	return xlsxwriter.Save(f.file, f.path)
}

// AdjustColumnWidths sets every used column of a sheet to the length of its
// longest cell text plus two characters.
func (f *Formatter) AdjustColumnWidths(sheet string) error {
	if err := f.checkSheet(sheet); err != nil {
		return err
	}

	cols, err := f.file.GetCols(sheet)
	if err != nil {
		return fmt.Errorf("failed to read columns of sheet '%s' in '%s': %w", sheet, f.path, err)
	}

	for i, col := range cols {
		longest := 0
		for _, cell := range col {
			if n := utf8.RuneCountInString(cell); n > longest {
				longest = n
			}
		}
		if longest == 0 {
			continue
		}

		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.file.SetColWidth(sheet, name, name, float64(longest+2)); err != nil {
			return fmt.Errorf("failed to set width of column %s on sheet '%s': %w", name, sheet, err)
		}
	}

	return nil
}

// FormatRange replaces the style of every cell in the range.
// An empty range (for example the body of a header-only sheet) is a no-op.
func (f *Formatter) FormatRange(sheet string, r CellRange, style CellStyle) error {
	if err := f.checkSheet(sheet); err != nil {
		return err
	}

	r, err := f.resolve(sheet, r)
	if err != nil {
		return err
	}
	if r.MinRow > r.MaxRow || r.MinCol > r.MaxCol {
		return nil
	}

	styleID, err := f.file.NewStyle(style.excelStyle())
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	topLeft, err := excelize.CoordinatesToCellName(r.MinCol, r.MinRow)
	if err != nil {
		return err
	}
	bottomRight, err := excelize.CoordinatesToCellName(r.MaxCol, r.MaxRow)
	if err != nil {
		return err
	}

	if err := f.file.SetCellStyle(sheet, topLeft, bottomRight, styleID); err != nil {
		return fmt.Errorf("failed to style %s:%s on sheet '%s': %w", topLeft, bottomRight, sheet, err)
	}
	return nil
}

// FormatColumnTypes sets the number format of every used cell from minRow
// down, per column. Font, fill, border and alignment already on a cell are
// kept.
func (f *Formatter) FormatColumnTypes(sheet string, minRow int, formats ColumnFormats) error {
	if err := f.checkSheet(sheet); err != nil {
		return err
	}

	r, err := f.resolve(sheet, CellRange{MinRow: minRow})
	if err != nil {
		return err
	}

	// (existing style, format code) -> new style
	derived := make(map[styleKey]int)

	for col := r.MinCol; col <= r.MaxCol; col++ {
		letter, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		code := formats.formatFor(letter)
		if code == "" {
			continue
		}

		for row := r.MinRow; row <= r.MaxRow; row++ {
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return err
			}
			if err := f.setNumberFormat(sheet, cell, code, derived); err != nil {
				return err
			}
		}
	}

	return nil
}

type styleKey struct {
	base int
	code string
}

// setNumberFormat derives a style from the cell's current one with the
// given number format and applies it.
func (f *Formatter) setNumberFormat(sheet, cell, code string, derived map[styleKey]int) error {
	base, err := f.file.GetCellStyle(sheet, cell)
	if err != nil {
		return fmt.Errorf("failed to read style of %s on sheet '%s': %w", cell, sheet, err)
	}

	key := styleKey{base: base, code: code}
	styleID, ok := derived[key]
	if !ok {
		style, err := f.file.GetStyle(base)
		if err != nil {
			return fmt.Errorf("failed to read style %d: %w", base, err)
		}
		numFmt := code
		style.CustomNumFmt = &numFmt

		styleID, err = f.file.NewStyle(style)
		if err != nil {
			return fmt.Errorf("failed to create style: %w", err)
		}
		derived[key] = styleID
	}

	return f.file.SetCellStyle(sheet, cell, cell, styleID)
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// checkSheet returns an error naming the workbook if the sheet is missing.
func (f *Formatter) checkSheet(sheet string) error {
	idx, err := f.file.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return fmt.Errorf("sheet '%s' not found in '%s'", sheet, f.path)
	}
	return nil
}

// resolve fills zero bounds from the used area of the sheet.
func (f *Formatter) resolve(sheet string, r CellRange) (CellRange, error) {
	rows, err := f.file.GetRows(sheet)
	if err != nil {
		return r, fmt.Errorf("failed to read rows of sheet '%s' in '%s': %w", sheet, f.path, err)
	}

	lastCol := 0
	for _, row := range rows {
		if len(row) > lastCol {
			lastCol = len(row)
		}
	}

	if r.MinRow == 0 {
		r.MinRow = 1
	}
	if r.MinCol == 0 {
		r.MinCol = 1
	}
	if r.MaxRow == 0 {
		r.MaxRow = len(rows)
	}
	if r.MaxCol == 0 {
		r.MaxCol = lastCol
	}
	return r, nil
}

// excelStyle converts a CellStyle to an excelize style definition.
func (s CellStyle) excelStyle() *excelize.Style {
	style := &excelize.Style{}

	if s.Bold {
		style.Font = &excelize.Font{Bold: true}
	}
	if s.Horizontal != "" {
		style.Alignment = &excelize.Alignment{Horizontal: s.Horizontal}
	}
	if s.Border {
		style.Border = []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		}
	}
	if s.FillColor != "" {
		style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{s.FillColor}}
	}

	return style
}
