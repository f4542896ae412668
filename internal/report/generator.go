// =============================================================================
// Receipts Report - Report Generator
// =============================================================================
//
// This module turns a validated receipts file into daily statistics.
//
// PIPELINE:
//   1. Validate the header row (validation.ValidateFileStructure)
//   2. Parse every row into a types.Record and sort by date
//   3. Group by date and compute the daily statistics (Aggregate)
//   4. Optionally project onto the short column set
//   5. Optionally write the Dictionary + Final_Report workbook
//
// CACHING:
//   Steps 1-2 run once per Generator, on first use. The resulting table
//   (or the error that stopped the load) is kept for the lifetime of the
//   Generator, so repeated calls never re-read the file and always agree.
//   A Generator is not safe for concurrent use.
//
// =============================================================================

package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/ginjaninja78/receipts-report/internal/config"
	"github.com/ginjaninja78/receipts-report/internal/csvparser"
	"github.com/ginjaninja78/receipts-report/internal/types"
	"github.com/ginjaninja78/receipts-report/internal/validation"
	"github.com/ginjaninja78/receipts-report/pkg/utils"
)

// nullMarkers are the loyalty id values read as "no loyalty card": the
// default missing-value spellings of pandas, matched exactly.
var nullMarkers = map[string]bool{
	"": true, "#N/A": true, "#N/A N/A": true, "#NA": true,
	"-1.#IND": true, "-1.#QNAN": true, "-NaN": true, "-nan": true,
	"1.#IND": true, "1.#QNAN": true, "<NA>": true, "N/A": true,
	"NA": true, "NULL": true, "NaN": true, "None": true,
	"n/a": true, "nan": true, "null": true,
}

// =============================================================================
// GENERATOR STRUCTURE
// =============================================================================

// Generator produces daily statistics for a single receipts file.
type Generator struct {
	path     string
	settings config.CSVSettings
	logger   logrus.FieldLogger

	loaded  bool
	table   []types.Record
	loadErr error
}

// Option configures a Generator.
type Option func(*Generator)

// WithCSVSettings sets the delimiter and date layouts used to read the file.
func WithCSVSettings(settings config.CSVSettings) Option {
	return func(g *Generator) {
		g.settings = settings
	}
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// =============================================================================
// CONSTRUCTOR
// =============================================================================

// New creates a Generator for the receipts file at path.
//
// PARAMETERS:
//   - path: The receipts CSV file.
//   - opts: Optional settings.
//
// RETURNS:
//   - A new Generator. The file is not read yet.
//   - *types.MissingFileError if path does not exist.
func New(path string, opts ...Option) (*Generator, error) {
	if !utils.FileExists(path) {
		return nil, &types.MissingFileError{Path: path}
	}

	g := &Generator{
		path:     path,
		settings: config.DefaultCSVSettings(),
		logger:   config.DiscardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// String describes the generator by its input file name.
func (g *Generator) String() string {
	return fmt.Sprintf("Invoices for the file: '%s'", filepath.Base(g.path))
}

// Path returns the input file path.
func (g *Generator) Path() string {
	return g.path
}

// CheckFileStructure validates the header row of the input file.
// It reads the file on every call and keeps no state.
func (g *Generator) CheckFileStructure() error {
	return validation.ValidateFileStructure(g.path, g.settings)
}

// =============================================================================
// LOAD STAGE
// =============================================================================

// Table returns the input records sorted ascending by date.
// The file is read on the first call only; the returned slice is a copy.
func (g *Generator) Table() ([]types.Record, error) {
	if !g.loaded {
		g.table, g.loadErr = g.load()
		g.loaded = true
	}
	if g.loadErr != nil {
		return nil, g.loadErr
	}

	out := make([]types.Record, len(g.table))
	copy(out, g.table)
	return out, nil
}

// load validates and parses the input file.
func (g *Generator) load() ([]types.Record, error) {
	if err := g.CheckFileStructure(); err != nil {
		return nil, err
	}

	data, err := csvparser.Parse(g.path, g.settings)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", g.path, err)
	}

	headers := headerLookup(data.Headers)
	records := make([]types.Record, 0, len(data.Rows))
	for _, row := range data.Rows {
		record, err := g.parseRecord(row, headers)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	sortByDate(records)

	g.logger.WithFields(logrus.Fields{
		"file":    g.path,
		"records": len(records),
	}).Debug("loaded receipts table")

	return records, nil
}

// headerLookup maps the canonical (upper-case) header to the name used in the file.
func headerLookup(headers []string) map[string]string {
	lookup := make(map[string]string, len(headers))
	for _, h := range headers {
		lookup[strings.ToUpper(h)] = h
	}
	return lookup
}

// parseRecord converts a CSV row into a Record.
func (g *Generator) parseRecord(row csvparser.Row, headers map[string]string) (types.Record, error) {
	field := func(name string) string {
		return row.Fields[headers[name]]
	}

	rawDate := field(validation.HeaderDate)
	date, err := parseDate(rawDate, g.settings.DateLayouts)
	if err != nil {
		return types.Record{}, &types.ParseError{
			Line: row.Line, Column: validation.HeaderDate, Value: rawDate, Err: err,
		}
	}

	rawValue := field(validation.HeaderReceiptValue)
	value, err := parseValue(rawValue)
	if err != nil {
		return types.Record{}, &types.ParseError{
			Line: row.Line, Column: validation.HeaderReceiptValue, Value: rawValue, Err: err,
		}
	}

	record := types.Record{
		Date:         date,
		ReceiptID:    field(validation.HeaderReceiptID),
		ReceiptValue: value,
		Line:         row.Line,
	}

	if id := field(validation.HeaderLoyaltyCustomerID); !nullMarkers[id] {
		record.LoyaltyCustomerID = &id
	}

	return record, nil
}

// parseDate tries each layout in order and drops any time of day.
func parseDate(value string, layouts []string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, fmt.Errorf("date does not match any of the layouts %v", layouts)
}

// parseValue parses a receipt value. A blank value is an error, not zero.
func parseValue(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, fmt.Errorf("empty receipt value")
	}
	return decimal.NewFromString(value)
}

// =============================================================================
// AGGREGATION & PROJECTION STAGES
// =============================================================================

// GenerateStatistics returns one DailyStatistic per distinct date, ascending.
func (g *Generator) GenerateStatistics() ([]types.DailyStatistic, error) {
	table, err := g.Table()
	if err != nil {
		return nil, err
	}

	stats := Aggregate(table)

	g.logger.WithFields(logrus.Fields{
		"file": g.path,
		"days": len(stats),
	}).Debug("aggregated daily statistics")

	return stats, nil
}

// GenerateReport returns the full report: every statistic of every date.
func (g *Generator) GenerateReport() (*types.Report, error) {
	stats, err := g.GenerateStatistics()
	if err != nil {
		return nil, err
	}
	return types.NewReport(stats, types.FullReportColumns)
}

// GenerateReportShort returns the full report projected onto
// types.ShortReportColumns.
func (g *Generator) GenerateReportShort() (*types.Report, error) {
	full, err := g.GenerateReport()
	if err != nil {
		return nil, err
	}
	return full.Project(types.ShortReportColumns)
}
