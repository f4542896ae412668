// =============================================================================
// Receipts Report - Configuration Module
// =============================================================================
//
// This module is responsible for loading and validating the application
// configuration. A single YAML file describes:
//   - Which receipts file to read and where to write the report
//   - How the delimited input file is parsed
//   - Whether the cosmetic styling pass runs, and with which colors
//
// Every value has a default, so the application can run without a file.
// Command line flags override file values (see cmd/).
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// InputFile is the receipts CSV file to read.
	// Default: "receipts_data/example.csv"
	InputFile string `yaml:"input_file" validate:"required"`

	// OutputFile is the spreadsheet to write. Must have the .xlsx extension.
	// Default: "receipts_data/report.xlsx"
	OutputFile string `yaml:"output_file" validate:"required,endswith=.xlsx"`

	// FullReport writes every statistic to Final_Report instead of the
	// short projection.
	// Default: false
	FullReport bool `yaml:"full_report"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// CSVSettings contains settings for parsing the input file.
	CSVSettings CSVSettings `yaml:"csv_settings"`

	// Style configures the formatting pass run after the report is written.
	Style StyleConfig `yaml:"style"`
}

// =============================================================================
// CSV SETTINGS STRUCTURE
// =============================================================================

// CSVSettings contains settings for parsing the receipts file.
type CSVSettings struct {
	// Delimiter is the character used to separate fields.
	// Common values: "," (comma), ";" (semicolon), "|" (pipe), "tab"
	// Default: ","
	Delimiter string `yaml:"delimiter" validate:"required"`

	// DateLayouts are the Go time layouts tried, in order, when parsing BON_DAT.
	// Default: DefaultDateLayouts
	DateLayouts []string `yaml:"date_layouts" validate:"min=1,dive,required"`
}

// DefaultDateLayouts are the date formats accepted out of the box.
var DefaultDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"02.01.2006",
	"01/02/2006",
}

// =============================================================================
// STYLE SETTINGS STRUCTURE
// =============================================================================

// StyleConfig holds the colors used by the formatting pass.
// Colors are 6-digit RGB hex values without the leading '#'.
type StyleConfig struct {
	// Enabled runs the formatting pass after the report is written.
	// Default: true (when the style section is absent)
	Enabled *bool `yaml:"enabled"`

	// HeaderFill is the background of header cells.
	// Default: "C2E44E"
	HeaderFill string `yaml:"header_fill" validate:"len=6,hexadecimal"`

	// RowFill is the background of report body cells.
	// Default: "ECFEC0"
	RowFill string `yaml:"row_fill" validate:"len=6,hexadecimal"`

	// FirstColumnFill is the background of the date column body cells.
	// Default: "C2E44E"
	FirstColumnFill string `yaml:"first_column_fill" validate:"len=6,hexadecimal"`
}

// IsEnabled reports whether the formatting pass should run.
func (s StyleConfig) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns a configuration populated with default values only.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load loads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//   - required: When false, a missing file yields the default configuration.
//
// RETURNS:
//   - A pointer to the Config struct.
//   - An error if the file cannot be read, parsed or validated.
func Load(configPath string, required bool) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.InputFile == "" {
		cfg.InputFile = "receipts_data/example.csv"
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = "receipts_data/report.xlsx"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if cfg.CSVSettings.Delimiter == "" {
		cfg.CSVSettings.Delimiter = ","
	}
	if len(cfg.CSVSettings.DateLayouts) == 0 {
		cfg.CSVSettings.DateLayouts = append([]string(nil), DefaultDateLayouts...)
	}

	if cfg.Style.HeaderFill == "" {
		cfg.Style.HeaderFill = "C2E44E"
	}
	if cfg.Style.RowFill == "" {
		cfg.Style.RowFill = "ECFEC0"
	}
	if cfg.Style.FirstColumnFill == "" {
		cfg.Style.FirstColumnFill = "C2E44E"
	}
	cfg.Style.HeaderFill = strings.TrimPrefix(cfg.Style.HeaderFill, "#")
	cfg.Style.RowFill = strings.TrimPrefix(cfg.Style.RowFill, "#")
	cfg.Style.FirstColumnFill = strings.TrimPrefix(cfg.Style.FirstColumnFill, "#")
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// DefaultCSVSettings returns the CSV settings of the default configuration.
func DefaultCSVSettings() CSVSettings {
	return Default().CSVSettings
}
