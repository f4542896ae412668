// =============================================================================
// Receipts Report - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - csvparser / validation (errors)
//   - report (records, daily statistics, report tables)
//   - xlsxwriter (report tables)
//
// =============================================================================

package types

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the layout used to render dates in the report.
const DateLayout = "2006-01-02"

// =============================================================================
// RECORD TYPES
// =============================================================================

// Record represents a single point-of-sale receipt from the input file.
type Record struct {
	// Date is the calendar date of the receipt (UTC midnight).
	Date time.Time

	// LoyaltyCustomerID is the loyalty card identifier.
	// A nil value means the receipt belongs to a non-loyalty customer.
	LoyaltyCustomerID *string

	// ReceiptID identifies the receipt within its date.
	ReceiptID string

	// ReceiptValue is the monetary value of the receipt.
	ReceiptValue decimal.Decimal

	// Line is the 1-based line number in the source file.
	// Useful for error reporting.
	Line int
}

// IsLoyalty reports whether the receipt carries a loyalty customer identifier.
func (r Record) IsLoyalty() bool {
	return r.LoyaltyCustomerID != nil
}

// =============================================================================
// REPORT COLUMNS
// =============================================================================

// Column is the internal name of a report column.
type Column string

const (
	ColDate               Column = "date"
	ColNoOfReceipts       Column = "no_of_receipts"
	ColNoOfReceiptsNLC    Column = "no_of_receipts_nlc"
	ColNoOfReceiptsLC     Column = "no_of_receipts_lc"
	ColTurnover           Column = "turnover"
	ColTurnoverNLC        Column = "turnover_nlc"
	ColTurnoverLC         Column = "turnover_lc"
	ColTurnoverShareLC    Column = "turnover_share_lc"
	ColAvgReceiptValue    Column = "avg_receipt_value"
	ColAvgReceiptValueNLC Column = "avg_receipt_value_nlc"
	ColAvgReceiptValueLC  Column = "avg_receipt_value_lc"
)

// FullReportColumns is the column order of the full daily report.
var FullReportColumns = []Column{
	ColDate,
	ColNoOfReceipts,
	ColNoOfReceiptsNLC,
	ColNoOfReceiptsLC,
	ColTurnover,
	ColTurnoverNLC,
	ColTurnoverLC,
	ColTurnoverShareLC,
	ColAvgReceiptValue,
	ColAvgReceiptValueNLC,
	ColAvgReceiptValueLC,
}

// ShortReportColumns is the column order of the short (end-user) report.
var ShortReportColumns = []Column{
	ColDate,
	ColNoOfReceipts,
	ColTurnoverShareLC,
	ColAvgReceiptValue,
	ColAvgReceiptValueNLC,
	ColAvgReceiptValueLC,
}

// =============================================================================
// DAILY STATISTICS
// =============================================================================

// DailyStatistic is one row of the report: the aggregates of a single date.
type DailyStatistic struct {
	// Date is the ISO calendar date (YYYY-MM-DD).
	Date string

	NoOfReceipts    int
	NoOfReceiptsNLC int
	NoOfReceiptsLC  int

	Turnover    decimal.Decimal
	TurnoverNLC decimal.Decimal
	TurnoverLC  decimal.Decimal

	// TurnoverShareLC is TurnoverLC / Turnover, 0 when Turnover is 0.
	TurnoverShareLC decimal.Decimal

	// Averages are 0 when the corresponding subset is empty.
	AvgReceiptValue    decimal.Decimal
	AvgReceiptValueNLC decimal.Decimal
	AvgReceiptValueLC  decimal.Decimal
}

// Value returns the value of the given column.
// Unknown columns return (nil, false).
func (s DailyStatistic) Value(col Column) (any, bool) {
	switch col {
	case ColDate:
		return s.Date, true
	case ColNoOfReceipts:
		return s.NoOfReceipts, true
	case ColNoOfReceiptsNLC:
		return s.NoOfReceiptsNLC, true
	case ColNoOfReceiptsLC:
		return s.NoOfReceiptsLC, true
	case ColTurnover:
		return s.Turnover, true
	case ColTurnoverNLC:
		return s.TurnoverNLC, true
	case ColTurnoverLC:
		return s.TurnoverLC, true
	case ColTurnoverShareLC:
		return s.TurnoverShareLC, true
	case ColAvgReceiptValue:
		return s.AvgReceiptValue, true
	case ColAvgReceiptValueNLC:
		return s.AvgReceiptValueNLC, true
	case ColAvgReceiptValueLC:
		return s.AvgReceiptValueLC, true
	default:
		return nil, false
	}
}

// =============================================================================
// REPORT TABLE
// =============================================================================

// Report is a row-major table of report values.
// Rows[i][j] holds the value of Columns[j] for the i-th date.
type Report struct {
	Columns []Column
	Rows    [][]any
}

// NewReport builds a report table from daily statistics using the given columns.
func NewReport(stats []DailyStatistic, columns []Column) (*Report, error) {
	rows := make([][]any, len(stats))
	for i, stat := range stats {
		row := make([]any, len(columns))
		for j, col := range columns {
			value, ok := stat.Value(col)
			if !ok {
				return nil, fmt.Errorf("unknown report column %q", col)
			}
			row[j] = value
		}
		rows[i] = row
	}

	cols := make([]Column, len(columns))
	copy(cols, columns)

	return &Report{Columns: cols, Rows: rows}, nil
}

// ColumnIndex returns the position of a column, or -1 if absent.
func (r *Report) ColumnIndex(col Column) int {
	for i, c := range r.Columns {
		if c == col {
			return i
		}
	}
	return -1
}

// Project returns a new report holding only the given columns, in the given order.
// Values are copied as-is; rows are neither recomputed nor filtered.
func (r *Report) Project(columns []Column) (*Report, error) {
	indexes := make([]int, len(columns))
	for i, col := range columns {
		idx := r.ColumnIndex(col)
		if idx < 0 {
			return nil, fmt.Errorf("column %q is not part of the report", col)
		}
		indexes[i] = idx
	}

	rows := make([][]any, len(r.Rows))
	for i, src := range r.Rows {
		row := make([]any, len(indexes))
		for j, idx := range indexes {
			row[j] = src[idx]
		}
		rows[i] = row
	}

	cols := make([]Column, len(columns))
	copy(cols, columns)

	return &Report{Columns: cols, Rows: rows}, nil
}

// Header returns the column names as strings.
func (r *Report) Header() []string {
	header := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		header[i] = string(c)
	}
	return header
}
