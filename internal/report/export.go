package report

import (
	"github.com/sirupsen/logrus"

	"github.com/ginjaninja78/receipts-report/internal/types"
	"github.com/ginjaninja78/receipts-report/internal/xlsxwriter"
)

// ConvertReportToSpreadsheet writes the Dictionary and Final_Report sheets
// to an .xlsx file at path. Final_Report holds the short report unless
// fullReport is set.
//
// The file is replaced atomically; write failures are returned as
// *types.IOError and leave any previous file at path untouched.
func (g *Generator) ConvertReportToSpreadsheet(path string, fullReport bool) error {
	var (
		rep *types.Report
		err error
	)
	if fullReport {
		rep, err = g.GenerateReport()
	} else {
		rep, err = g.GenerateReportShort()
	}
	if err != nil {
		return err
	}

	if err := xlsxwriter.WriteFile(path, DictionarySheetData(), ReportSheetData(rep)); err != nil {
		return err
	}

	g.logger.WithFields(logrus.Fields{
		"file":   path,
		"rows":   len(rep.Rows),
		"full":   fullReport,
		"sheets": []string{DictionarySheet, FinalReportSheet},
	}).Info("report written")

	return nil
}

// DictionarySheetData renders the glossary as the Dictionary sheet.
func DictionarySheetData() xlsxwriter.Sheet {
	rows := make([][]any, len(glossary))
	for i, entry := range glossary {
		rows[i] = []any{string(entry.Name), entry.Label}
	}

	return xlsxwriter.Sheet{
		Name:   DictionarySheet,
		Header: []string{DictionaryNameHeader, DictionaryLabelHeader},
		Rows:   rows,
	}
}

// ReportSheetData renders a report as the Final_Report sheet.
func ReportSheetData(rep *types.Report) xlsxwriter.Sheet {
	return xlsxwriter.Sheet{
		Name:   FinalReportSheet,
		Header: rep.Header(),
		Rows:   rep.Rows,
	}
}
