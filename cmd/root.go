// =============================================================================
// Receipts Report - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (receipts)
//   ├── reportCmd   (receipts report)
//   ├── validateCmd (receipts validate)
//   ├── previewCmd  (receipts preview)
//   ├── showCmd     (receipts show)
//   ├── listCmd     (receipts list)
//   └── versionCmd  (receipts version)
//
// CONFIGURATION:
//   Every subcommand loads the YAML configuration named by --config.
//   When --config is not given and receipts.yaml does not exist, the
//   built-in defaults are used. Subcommand flags override file values.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/receipts-report/internal/config"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// defaultConfigFile is used when --config is not given.
const defaultConfigFile = "receipts.yaml"

// cfgFile holds the path to the configuration file.
var cfgFile string

// verbose forces the debug log level.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "receipts",
	Short: "Receipts Report - Daily loyalty statistics from point-of-sale receipts",
	Long: `Receipts Report reads a CSV export of point-of-sale receipts and produces
a per-day statistics report split by loyalty and non-loyalty customers.

The report is written to an XLSX workbook with two sheets:
  - Dictionary   : the meaning of every report column
  - Final_Report : one row per date

Example Usage:
  receipts report                               # Use receipts.yaml or the defaults
  receipts report --input data.csv --full       # Write every statistic
  receipts validate --input data.csv            # Check the header row only
  receipts show --file receipts_data/report.xlsx`,

	SilenceUsage:  true,
	SilenceErrors: true,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		defaultConfigFile,
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// =============================================================================
// SHARED HELPERS
// =============================================================================

// loadConfig reads the configuration for a command. A missing file is only
// an error when --config was given explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	required := cmd.Flags().Changed("config")
	return config.Load(cfgFile, required)
}

// newLogger builds the command logger, writing to the command's stderr.
func newLogger(cmd *cobra.Command, cfg *config.Config) *logrus.Logger {
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	return config.NewLogger(level, cmd.ErrOrStderr())
}
