// =============================================================================
// Receipts Report - Report Command
// =============================================================================
//
// This file defines the 'report' command, the main command of the tool. It
// runs the full pipeline for one receipts file.
//
// COMMAND USAGE:
//   receipts report [flags]
//
// FLAGS:
//   --input     : The receipts CSV file (overrides input_file)
//   --output    : The .xlsx report to write (overrides output_file)
//   --full      : Write every statistic instead of the short report
//   --no-style  : Skip the styling pass
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/receipts-report/internal/config"
	"github.com/ginjaninja78/receipts-report/internal/converter"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	reportInput   string
	reportOutput  string
	reportFull    bool
	reportNoStyle bool
)

// =============================================================================
// REPORT COMMAND DEFINITION
// =============================================================================

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the daily statistics workbook",
	Long: `The report command validates the receipts file, computes the daily
statistics and writes them to an XLSX workbook with a Dictionary sheet and a
Final_Report sheet.

The workbook is replaced atomically: if anything fails, a previous report at
the output path is left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := applyReportFlags(cmd, cfg); err != nil {
			return err
		}
		return runReport(cmd, cfg)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportInput, "input", "i", "", "The receipts CSV file")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "The .xlsx report to write")
	reportCmd.Flags().BoolVar(&reportFull, "full", false, "Write every statistic to Final_Report")
	reportCmd.Flags().BoolVar(&reportNoStyle, "no-style", false, "Skip the styling pass")
}

// applyReportFlags overrides configuration values with the flags that were set.
func applyReportFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.InputFile = reportInput
	}
	if flags.Changed("output") {
		cfg.OutputFile = reportOutput
	}
	if flags.Changed("full") {
		cfg.FullReport = reportFull
	}
	if flags.Changed("no-style") {
		enabled := !reportNoStyle
		cfg.Style.Enabled = &enabled
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// runReport runs the converter and prints a summary.
func runReport(cmd *cobra.Command, cfg *config.Config) error {
	logger := newLogger(cmd, cfg)

	result := converter.New(cfg, logger).Run()
	if !result.Success {
		return result.Error
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Report written to %s\n", result.OutputFile)
	fmt.Fprintf(out, "  Receipts: %d\n", result.Stats.Records)
	fmt.Fprintf(out, "  Days:     %d\n", result.Stats.Days)
	fmt.Fprintf(out, "  Time:     %s\n", result.Stats.ProcessingTime)
	return nil
}
