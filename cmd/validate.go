package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/receipts-report/internal/types"
	"github.com/ginjaninja78/receipts-report/internal/validation"
)

var validateInput string

// validateCmd checks the header row of a receipts file without parsing rows.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the column layout of a receipts file",
	Long: `The validate command reads only the header row of the receipts file and
checks that it holds exactly the required columns (in any order):

  BON_DAT, LOYALITY_CUSTOMER_ID, RECEIPT_ID, RECEIPT_VALUE`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("input") {
			cfg.InputFile = validateInput
		}

		logger := newLogger(cmd, cfg)
		logger.WithField("input", cfg.InputFile).Debug("validating file structure")

		err = validation.ValidateFileStructure(cfg.InputFile, cfg.CSVSettings)
		if errors.Is(err, types.ErrSchemaMismatch) {
			fmt.Fprint(cmd.OutOrStdout(), validation.FormatError(err))
			return fmt.Errorf("%s: %w", cfg.InputFile, err)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "File structure is valid: %s\n", cfg.InputFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "The receipts CSV file")
}
