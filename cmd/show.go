package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/receipts-report/internal/report"
	"github.com/ginjaninja78/receipts-report/internal/xlsxparser"
)

var (
	showFile  string
	showSheet string
)

// showCmd prints a worksheet of an existing workbook.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a sheet of a generated report",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		path := cfg.OutputFile
		if cmd.Flags().Changed("file") {
			path = showFile
		}

		sheet, err := xlsxparser.ReadSheet(path, showSheet)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		return printTable(cmd.OutOrStdout(), sheet.Header, sheet.Rows)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showFile, "file", "f", "", "The workbook to read (default: output_file)")
	showCmd.Flags().StringVarP(&showSheet, "sheet", "s", report.FinalReportSheet, "The sheet to print")
}
