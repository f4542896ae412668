// =============================================================================
// Receipts Report - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Receipts Report CLI application.
// It delegates command execution to the cmd package.
//
// USAGE:
//   receipts report     - Generate the XLSX report from a receipts file
//   receipts validate   - Check the header row of a receipts file
//   receipts preview    - Print the table and reports without writing
//   receipts show       - Print a sheet of a generated workbook
//   receipts list       - List receipts files in a directory
//   receipts version    - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core business logic (not for external import)
//   - pkg/           : Shared utilities
//   - receipts_data/ : Sample input
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/receipts-report/cmd"
)

func main() {
	cmd.Execute()
}
