package converter

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/receipts-report/internal/config"
	"github.com/ginjaninja78/receipts-report/internal/report"
	"github.com/ginjaninja78/receipts-report/internal/types"
	"github.com/ginjaninja78/receipts-report/internal/xlsxparser"
)

func setup(t *testing.T, content string) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Default()
	cfg.InputFile = filepath.Join(dir, "receipts.csv")
	cfg.OutputFile = filepath.Join(dir, "report.xlsx")
	require.NoError(t, os.WriteFile(cfg.InputFile, []byte(content), 0o644))
	return cfg
}

const receipts = "BON_DAT,LOYALITY_CUSTOMER_ID,RECEIPT_ID,RECEIPT_VALUE\n" +
	"2024-04-02,,r3,5.00\n" +
	"2024-04-01,A,r1,10.00\n" +
	"2024-04-01,,r2,20.00\n"

func TestRun_Success(t *testing.T) {
	tests := []struct {
		name        string
		full        bool
		styled      bool
		wantColumns int
	}{
		{"short styled", false, true, len(types.ShortReportColumns)},
		{"full unstyled", true, false, len(types.FullReportColumns)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := setup(t, receipts)
			cfg.FullReport = tt.full
			cfg.Style.Enabled = &tt.styled

			var logs bytes.Buffer
			result := New(cfg, config.NewLogger("debug", &logs)).Run()

			require.NoError(t, result.Error)
			assert.True(t, result.Success)
			assert.Equal(t, cfg.InputFile, result.InputFile)
			assert.Equal(t, cfg.OutputFile, result.OutputFile)
			assert.Equal(t, 3, result.Stats.Records)
			assert.Equal(t, 2, result.Stats.Days)
			assert.Positive(t, result.Stats.ProcessingTime)

			sheet, err := xlsxparser.ReadSheet(cfg.OutputFile, report.FinalReportSheet)
			require.NoError(t, err)
			assert.Len(t, sheet.Header, tt.wantColumns)
			assert.Equal(t, []string{"2024-04-01", "2024-04-02"}, sheet.Column("date"))

			assert.Contains(t, logs.String(), "report generated")
			assert.Contains(t, logs.String(), "run=")
		})
	}
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name      string
		configure func(cfg *config.Config)
		content   string
		stage     string
		kind      error
	}{
		{
			name:      "missing input",
			configure: func(cfg *config.Config) { cfg.InputFile += ".missing" },
			content:   receipts,
			stage:     "open input",
			kind:      types.ErrMissingFile,
		},
		{
			name:    "schema mismatch",
			content: "BON_DAT,RECEIPT_ID,RECEIPT_VALUE\n2024-04-01,r1,1\n",
			stage:   "load table",
			kind:    types.ErrSchemaMismatch,
		},
		{
			name:    "bad value",
			content: "BON_DAT,LOYALITY_CUSTOMER_ID,RECEIPT_ID,RECEIPT_VALUE\n2024-04-01,,r1,abc\n",
			stage:   "load table",
			kind:    types.ErrParse,
		},
		{
			name: "unwritable output",
			configure: func(cfg *config.Config) {
				cfg.OutputFile = filepath.Join(filepath.Dir(cfg.OutputFile), "missing", "report.xlsx")
			},
			content: receipts,
			stage:   "export",
			kind:    types.ErrIO,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := setup(t, tt.content)
			if tt.configure != nil {
				tt.configure(cfg)
			}

			result := New(cfg, nil).Run()

			assert.False(t, result.Success)
			assert.Empty(t, result.OutputFile)
			require.Error(t, result.Error)
			assert.True(t, strings.HasPrefix(result.Error.Error(), tt.stage+": "), result.Error.Error())
			assert.True(t, errors.Is(result.Error, tt.kind))
			assert.NoFileExists(t, cfg.OutputFile)
		})
	}
}
