// =============================================================================
// Receipts Report - Converter Module
// =============================================================================
//
// This module orchestrates a complete run for a single receipts file, from
// the CSV input to the styled XLSX report.
//
// CONVERSION PIPELINE:
//   1. Open the receipts file (report.New)
//   2. Validate and load the table
//   3. Compute the daily statistics
//   4. Write the Dictionary + Final_Report workbook
//   5. Apply the styling pass (unless disabled)
//
// Every stage logs with the run id, so the lines of one run can be told
// apart when several runs share a log file.
//
// =============================================================================

package converter

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ginjaninja78/receipts-report/internal/config"
	"github.com/ginjaninja78/receipts-report/internal/formatter"
	"github.com/ginjaninja78/receipts-report/internal/report"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of a run.
type Result struct {
	// InputFile is the receipts file that was read.
	InputFile string

	// OutputFile is the report that was written.
	// This is empty if the run failed.
	OutputFile string

	// Success indicates whether every stage completed.
	Success bool

	// Error is the first failure, wrapped with the stage name.
	// This is nil if the run was successful.
	Error error

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the run.
type ProcessingStats struct {
	// Records is the number of receipts read.
	Records int

	// Days is the number of report rows (distinct dates).
	Days int

	// ProcessingTime is the wall time of the run.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter turns one receipts file into one report workbook.
type Converter struct {
	cfg    *config.Config
	logger logrus.FieldLogger
}

// New creates a new Converter.
//
// PARAMETERS:
//   - cfg: The application configuration (input, output, report and style settings).
//   - logger: The logger. If nil, nothing is logged.
//
// RETURNS:
//   - A new Converter instance.
func New(cfg *config.Config, logger logrus.FieldLogger) *Converter {
	if logger == nil {
		logger = config.DiscardLogger()
	}
	return &Converter{cfg: cfg, logger: logger}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the pipeline.
//
// RETURNS:
//   - A Result describing the outcome. Run never panics on bad input; all
//     failures are reported through Result.Error.
func (c *Converter) Run() Result {
	startTime := time.Now()
	result := Result{InputFile: c.cfg.InputFile}

	log := c.logger.WithFields(logrus.Fields{
		"run":   uuid.New().String(),
		"input": c.cfg.InputFile,
	})
	log.Info("processing receipts file")

	fail := func(stage string, err error) Result {
		result.Error = fmt.Errorf("%s: %w", stage, err)
		result.Stats.ProcessingTime = time.Since(startTime)
		log.WithError(err).WithField("stage", stage).Error("run failed")
		return result
	}

	// =========================================================================
	// STEP 1: OPEN INPUT
	// =========================================================================

	gen, err := report.New(c.cfg.InputFile,
		report.WithCSVSettings(c.cfg.CSVSettings),
		report.WithLogger(log),
	)
	if err != nil {
		return fail("open input", err)
	}

	// =========================================================================
	// STEP 2: LOAD TABLE
	// =========================================================================
	// Validation runs first; a schema mismatch stops here.

	table, err := gen.Table()
	if err != nil {
		return fail("load table", err)
	}
	result.Stats.Records = len(table)

	// =========================================================================
	// STEP 3: AGGREGATE
	// =========================================================================

	stats, err := gen.GenerateStatistics()
	if err != nil {
		return fail("aggregate", err)
	}
	result.Stats.Days = len(stats)

	log.WithFields(logrus.Fields{
		"records": result.Stats.Records,
		"days":    result.Stats.Days,
	}).Debug("statistics ready")

	// =========================================================================
	// STEP 4: EXPORT
	// =========================================================================

	if err := gen.ConvertReportToSpreadsheet(c.cfg.OutputFile, c.cfg.FullReport); err != nil {
		return fail("export", err)
	}

	// =========================================================================
	// STEP 5: STYLE
	// =========================================================================

	if c.cfg.Style.IsEnabled() {
		if err := formatter.ApplyReceiptStyle(c.cfg.OutputFile, c.cfg.Style); err != nil {
			return fail("style", err)
		}
		log.Debug("styling applied")
	}

	result.OutputFile = c.cfg.OutputFile
	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)

	log.WithFields(logrus.Fields{
		"output":   result.OutputFile,
		"duration": result.Stats.ProcessingTime.String(),
	}).Info("report generated")

	return result
}
