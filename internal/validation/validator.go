// =============================================================================
// Receipts Report - Schema Validator
// =============================================================================
//
// This module checks that an input file has exactly the columns the report
// generator needs before any row is parsed.
//
// VALIDATION STRATEGY:
//   - Only the header row is read
//   - Header names are compared as a multiset: order and letter case do not
//     matter, but every required column must appear exactly once and no
//     other column may appear
//   - An empty file has no headers and therefore fails
//
// ERROR HANDLING:
//   - A mismatch returns *types.FileStructureError, which carries the list
//     of required headers so the caller can tell the user what is expected
//   - A missing file returns *types.MissingFileError
//
// =============================================================================

package validation

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ginjaninja78/receipts-report/internal/config"
	"github.com/ginjaninja78/receipts-report/internal/csvparser"
	"github.com/ginjaninja78/receipts-report/internal/types"
)

// =============================================================================
// REQUIRED HEADERS
// =============================================================================

// Input column names.
const (
	HeaderDate              = "BON_DAT"
	HeaderLoyaltyCustomerID = "LOYALITY_CUSTOMER_ID"
	HeaderReceiptID         = "RECEIPT_ID"
	HeaderReceiptValue      = "RECEIPT_VALUE"
)

// RequiredHeaders returns the columns every receipts file must have.
func RequiredHeaders() []string {
	return []string{
		HeaderDate,
		HeaderLoyaltyCustomerID,
		HeaderReceiptID,
		HeaderReceiptValue,
	}
}

// =============================================================================
// VALIDATION FUNCTIONS
// =============================================================================

// ValidateFileStructure checks the header row of a receipts file.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//   - settings: The CSV parsing settings (delimiter).
//
// RETURNS:
//   - nil if the header set equals RequiredHeaders.
//   - *types.FileStructureError on a mismatch.
//   - *types.MissingFileError if the file does not exist.
//   - A wrapped error if the header row cannot be read.
func ValidateFileStructure(filePath string, settings config.CSVSettings) error {
	headers, err := csvparser.ReadHeader(filePath, settings)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &types.MissingFileError{Path: filePath}
		}
		return fmt.Errorf("failed to read file structure: %w", err)
	}

	return ValidateHeaders(headers)
}

// ValidateHeaders compares a header row with RequiredHeaders.
func ValidateHeaders(headers []string) error {
	if !sameHeaderSet(headers, RequiredHeaders()) {
		return &types.FileStructureError{
			RequiredHeaders: RequiredHeaders(),
			Found:           append([]string{}, headers...),
		}
	}
	return nil
}

// sameHeaderSet reports whether both lists hold the same names, ignoring
// order, case and surrounding whitespace.
func sameHeaderSet(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}

	a := normalize(got)
	b := normalize(want)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func normalize(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = strings.ToUpper(strings.TrimSpace(h))
	}
	sort.Strings(out)
	return out
}

// =============================================================================
// ERROR FORMATTING
// =============================================================================

// FormatError renders a validation failure for display on the command line.
// Structure errors list the expected headers, one per line.
func FormatError(err error) string {
	var structureErr *types.FileStructureError
	if !errors.As(err, &structureErr) {
		return err.Error()
	}

	var builder strings.Builder
	builder.WriteString("The file structure is invalid.\n")
	if len(structureErr.Found) > 0 {
		builder.WriteString(fmt.Sprintf("Found headers: %s\n", strings.Join(structureErr.Found, ", ")))
	} else {
		builder.WriteString("Found headers: (none)\n")
	}
	builder.WriteString("Required headers:\n")
	for _, h := range structureErr.RequiredHeaders {
		builder.WriteString(fmt.Sprintf("  - %s\n", h))
	}
	return builder.String()
}
