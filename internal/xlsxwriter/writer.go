// =============================================================================
// Receipts Report - XLSX Writer Module
// =============================================================================
//
// This module is responsible for turning tabular data into an XLSX workbook
// and saving it safely.
//
// WORKBOOK STRUCTURE:
//   Each Sheet becomes one worksheet, in the given order:
//
//   | A (header 1) | B (header 2) | ... |   <- row 1: header
//   | value        | value        | ... |   <- rows 2..n: data
//
// CELL TYPES:
//   - string           -> text cell
//   - int              -> numeric cell
//   - decimal.Decimal  -> numeric cell (float64)
//   - anything else    -> handed to excelize as-is
//
// SAVING:
//   Save never leaves a partial file at the destination. See
//   utils.WriteFileAtomic.
//
// =============================================================================

package xlsxwriter

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/receipts-report/internal/types"
	"github.com/ginjaninja78/receipts-report/pkg/utils"
)

// =============================================================================
// SHEET STRUCTURE
// =============================================================================

// Sheet describes a worksheet: a header row followed by data rows.
type Sheet struct {
	// Name is the worksheet name (max 31 characters).
	Name string

	// Header is written to row 1.
	Header []string

	// Rows are written from row 2 on, one slice per row.
	Rows [][]any
}

// =============================================================================
// WORKBOOK GENERATION
// =============================================================================

// NewWorkbook builds an in-memory workbook containing the given sheets.
//
// PARAMETERS:
//   - sheets: The worksheets to create, in order. At least one is required.
//
// RETURNS:
//   - The workbook. The caller owns it and must Close it.
//   - An error if a sheet cannot be created or a cell cannot be written.
func NewWorkbook(sheets ...Sheet) (*excelize.File, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("a workbook needs at least one sheet")
	}

	f := excelize.NewFile()

	// The default "Sheet1" becomes the first requested sheet.
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheets[0].Name); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet %q: %w", sheets[0].Name, err)
	}

	for i, sheet := range sheets {
		if i > 0 {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to create sheet %q: %w", sheet.Name, err)
			}
		}

		if err := writeSheet(f, sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write sheet %q: %w", sheet.Name, err)
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

// writeSheet writes the header and rows of a sheet.
func writeSheet(f *excelize.File, sheet Sheet) error {
	header := make([]any, len(sheet.Header))
	for i, h := range sheet.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
		return err
	}

	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		values := make([]any, len(row))
		for j, v := range row {
			values[j] = cellValue(v)
		}
		if err := f.SetSheetRow(sheet.Name, cell, &values); err != nil {
			return err
		}
	}

	return nil
}

// cellValue converts report values to types excelize writes as numbers.
func cellValue(v any) any {
	switch val := v.(type) {
	case decimal.Decimal:
		return val.InexactFloat64()
	case *decimal.Decimal:
		if val == nil {
			return nil
		}
		return val.InexactFloat64()
	default:
		return v
	}
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the workbook to path atomically.
//
// PARAMETERS:
//   - f: The workbook to save.
//   - path: The destination. Must end in .xlsx; its directory must exist.
//
// RETURNS:
//   - *types.IOError wrapping the cause if anything fails. An existing file
//     at path is left untouched in that case.
func Save(f *excelize.File, path string) error {
	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return &types.IOError{Op: "save", Path: path, Err: excelize.ErrWorkbookFileFormat}
	}

	err := utils.WriteFileAtomic(path, func(w io.Writer) error {
		_, err := f.WriteTo(w)
		return err
	})
	if err != nil {
		return &types.IOError{Op: "save", Path: path, Err: err}
	}

	return nil
}

// WriteFile builds a workbook from sheets and saves it atomically.
func WriteFile(path string, sheets ...Sheet) error {
	f, err := NewWorkbook(sheets...)
	if err != nil {
		return err
	}
	defer f.Close()

	return Save(f, path)
}
