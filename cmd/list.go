package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/receipts-report/pkg/utils"
)

var listDir string

// listCmd lists the receipts files of a directory.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List receipts files in a directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dir := filepath.Dir(cfg.InputFile)
		if cmd.Flags().Changed("dir") {
			dir = listDir
		}

		files, err := utils.ListFiles(dir, ".csv")
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(files) == 0 {
			fmt.Fprintf(out, "No .csv files in %s\n", dir)
			return nil
		}
		for _, name := range files {
			fmt.Fprintln(out, filepath.Join(dir, name))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listDir, "dir", "d", "", "The directory to scan (default: directory of input_file)")
}
