package cmd

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
)

// Build information, overridden at link time:
//
//	go build -ldflags "-X github.com/ginjaninja78/receipts-report/cmd.Version=0.2.0 \
//	  -X github.com/ginjaninja78/receipts-report/cmd.BuildDate=$(date +%F)"
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// printVersion writes the version banner.
func printVersion(w io.Writer) {
	fmt.Fprintln(w, "Receipts Report")
	fmt.Fprintf(w, "Version:    %s\n", Version)
	fmt.Fprintf(w, "Build Date: %s\n", BuildDate)
	fmt.Fprintf(w, "Go Version: %s\n", runtime.Version())
}
