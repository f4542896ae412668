// =============================================================================
// Receipts Report - CSV Parser Module
// =============================================================================
//
// This module is responsible for reading the delimited receipts export. It
// handles:
//   - Different delimiters (comma, semicolon, pipe, tab)
//   - A UTF-8 byte order mark in front of the first header
//   - Header-only reads for schema checks
//   - Full reads that keep the source line number of every row
//
// The parser knows nothing about the receipts schema; it only turns the file
// into headers and rows keyed by header name.
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ginjaninja78/receipts-report/internal/config"
	"github.com/ginjaninja78/receipts-report/internal/types"
)

// utf8BOM is stripped from the first header cell.
const utf8BOM = "\ufeff"

// =============================================================================
// CSV DATA STRUCTURE
// =============================================================================

// CSVData represents the parsed CSV file.
type CSVData struct {
	// Headers contains the column headers from the CSV file.
	Headers []string

	// Rows contains the data rows as maps of header -> value.
	Rows []Row

	// SourceFile is the path to the source CSV file.
	SourceFile string
}

// Row is a single data row.
type Row struct {
	// Line is the 1-based line number where the row starts.
	Line int

	// Fields maps header name to the trimmed cell value.
	Fields map[string]string
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// ReadHeader reads only the header row of a CSV file.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//   - settings: The CSV parsing settings.
//
// RETURNS:
//   - The cleaned header names. An empty file yields an empty slice.
//   - An error if the file cannot be opened or the first record is malformed.
func ReadHeader(filePath string, settings config.CSVSettings) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	configureReader(reader, settings)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	return cleanHeaders(header), nil
}

// Parse reads a CSV file and returns the parsed data.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//   - settings: The CSV parsing settings.
//
// RETURNS:
//   - A pointer to the CSVData struct containing the parsed data.
//   - An error if the file cannot be read or parsed.
//
// PARSING PROCESS:
//   1. Configure the CSV reader with the specified delimiter
//   2. Read the header row
//   3. Read data rows, skipping blank ones
//   4. Reject rows wider than the header (*types.ParseError)
//   5. Convert each row to a map of header -> value
func Parse(filePath string, settings config.CSVSettings) (*CSVData, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	configureReader(reader, settings)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("CSV file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	headers := cleanHeaders(header)

	data := &CSVData{
		Headers:    headers,
		Rows:       []Row{},
		SourceFile: filePath,
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}

		if isRowEmpty(record) {
			continue
		}

		line, _ := reader.FieldPos(0)
		if len(record) > len(headers) {
			return nil, &types.ParseError{
				Line:   line,
				Column: fmt.Sprintf("field %d", len(headers)+1),
				Value:  record[len(headers)],
				Err:    fmt.Errorf("row has %d fields, header has %d", len(record), len(headers)),
			}
		}

		data.Rows = append(data.Rows, Row{
			Line:   line,
			Fields: toFields(headers, record),
		})
	}

	return data, nil
}

// configureReader configures the CSV reader based on the settings.
func configureReader(reader *csv.Reader, settings config.CSVSettings) {
	reader.Comma = Delimiter(settings.Delimiter)

	// Short rows are padded with empty values in toFields; long rows are
	// rejected in Parse.
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
}

// Delimiter converts a configured delimiter name to the rune used by encoding/csv.
func Delimiter(name string) rune {
	switch name {
	case "\\t", "\t", "tab", "TAB":
		return '\t'
	case "|", "pipe", "PIPE":
		return '|'
	case ";", "semicolon":
		return ';'
	default:
		if r, size := utf8.DecodeRuneInString(name); size > 0 && r != utf8.RuneError {
			return r
		}
		return ','
	}
}

// cleanHeaders trims whitespace and the byte order mark from header values.
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))
	for i, header := range headers {
		if i == 0 {
			header = strings.TrimPrefix(header, utf8BOM)
		}
		cleaned[i] = strings.TrimSpace(header)
	}
	return cleaned
}

// toFields converts a record to a map, padding missing columns with "".
func toFields(headers, record []string) map[string]string {
	fields := make(map[string]string, len(headers))
	for i, header := range headers {
		if i < len(record) {
			fields[header] = strings.TrimSpace(record[i])
		} else {
			fields[header] = ""
		}
	}
	return fields
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
