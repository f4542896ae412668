package formatter

import (
	"fmt"

	"github.com/ginjaninja78/receipts-report/internal/config"
	"github.com/ginjaninja78/receipts-report/internal/report"
)

// Number formats of the Final_Report sheet.
const (
	DateFormat    = "yyyy-mm-dd"
	IntegerFormat = "0"
	DecimalFormat = "0.00"
)

// ReportFormats is the number format layout of Final_Report: the date in A,
// the receipt count in B and two decimals everywhere else.
var ReportFormats = ColumnFormats{
	ByColumn: map[string]string{
		"A": DateFormat,
		"B": IntegerFormat,
	},
	Other: DecimalFormat,
}

// ApplyReceiptStyle runs the stock styling sequence on a generated report
// workbook and saves it in place.
//
// PARAMETERS:
//   - path: A workbook with Dictionary and Final_Report sheets.
//   - style: The fill colors.
//
// RETURNS:
//   - An error naming the workbook and sheet if a step fails. The file on
//     disk is only replaced when every step succeeded.
func ApplyReceiptStyle(path string, style config.StyleConfig) error {
	f, err := Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, sheet := range []string{report.DictionarySheet, report.FinalReportSheet} {
		if err := f.AdjustColumnWidths(sheet); err != nil {
			return err
		}
	}

	header := CellRange{MinRow: 1, MaxRow: 1}
	if err := f.FormatRange(report.FinalReportSheet, header, CellStyle{
		Bold: true, Horizontal: "center", Border: true, FillColor: style.HeaderFill,
	}); err != nil {
		return err
	}
	if err := f.FormatRange(report.DictionarySheet, header, CellStyle{
		Bold: true, Horizontal: "left", Border: true, FillColor: style.HeaderFill,
	}); err != nil {
		return err
	}

	body := CellRange{MinRow: 2}
	if err := f.FormatRange(report.FinalReportSheet, body, CellStyle{
		Border: true, FillColor: style.RowFill,
	}); err != nil {
		return err
	}

	firstColumn := CellRange{MinRow: 2, MinCol: 1, MaxCol: 1}
	if err := f.FormatRange(report.FinalReportSheet, firstColumn, CellStyle{
		Border: true, FillColor: style.FirstColumnFill,
	}); err != nil {
		return err
	}

	if err := f.FormatColumnTypes(report.FinalReportSheet, 2, ReportFormats); err != nil {
		return err
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("failed to save styled workbook: %w", err)
	}
	return nil
}
