package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/receipts-report/internal/report"
)

var (
	previewInput string
	previewRows  int
)

// previewCmd prints the loaded table and both reports without writing a file.
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the receipts table and the reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("input") {
			cfg.InputFile = previewInput
		}
		if previewRows < 0 {
			return fmt.Errorf("--rows must not be negative, got %d", previewRows)
		}

		gen, err := report.New(cfg.InputFile,
			report.WithCSVSettings(cfg.CSVSettings),
			report.WithLogger(newLogger(cmd, cfg)),
		)
		if err != nil {
			return err
		}

		table, err := gen.Table()
		if err != nil {
			return err
		}
		full, err := gen.GenerateReport()
		if err != nil {
			return err
		}
		short, err := gen.GenerateReportShort()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if previewRows < len(table) {
			table = table[:previewRows]
		}

		fmt.Fprintf(out, "%s\n\n", gen)
		fmt.Fprintf(out, "Table (first %d rows):\n", len(table))
		if err := printRecords(out, table); err != nil {
			return err
		}
		fmt.Fprintln(out, "\nFull report:")
		if err := printReport(out, full); err != nil {
			return err
		}
		fmt.Fprintln(out, "\nShort report:")
		return printReport(out, short)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVarP(&previewInput, "input", "i", "", "The receipts CSV file")
	previewCmd.Flags().IntVarP(&previewRows, "rows", "n", 5, "Number of table rows to print")
}
