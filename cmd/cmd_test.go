package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validReceipts = "BON_DAT,LOYALITY_CUSTOMER_ID,RECEIPT_ID,RECEIPT_VALUE\n" +
	"2024-04-01,A,r1,10.00\n" +
	"2024-04-01,,r2,20.00\n"

// workspace creates a directory with a config file and returns both paths.
func workspace(t *testing.T) (dir, cfgPath string) {
	t.Helper()
	dir = t.TempDir()
	cfgPath = filepath.Join(dir, "receipts.yaml")
	content := "input_file: " + filepath.Join(dir, "receipts.csv") + "\n" +
		"output_file: " + filepath.Join(dir, "report.xlsx") + "\n" +
		"log_level: error\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))
	return dir, cfgPath
}

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Receipts Report")
	assert.Contains(t, out, "Version:    "+Version)
	assert.Contains(t, out, "Build Date: "+BuildDate)

	_, err = execute(t, "version", "extra")
	assert.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	dir, cfgPath := workspace(t)
	valid := writeInput(t, dir, "valid.csv", validReceipts)
	invalid := writeInput(t, dir, "invalid.csv", "BON_DAT,RECEIPT_ID,RECEIPT_VALUE\n")

	out, err := execute(t, "validate", "--config", cfgPath, "--input", valid)
	require.NoError(t, err)
	assert.Contains(t, out, "File structure is valid")

	out, err = execute(t, "validate", "--config", cfgPath, "--input", invalid)
	require.Error(t, err)
	assert.Contains(t, out, "The file structure is invalid.")
	assert.Contains(t, out, "  - LOYALITY_CUSTOMER_ID")
}

func TestReportAndShowCommands(t *testing.T) {
	dir, cfgPath := workspace(t)
	input := writeInput(t, dir, "april.csv", validReceipts)
	output := filepath.Join(dir, "april.xlsx")

	out, err := execute(t, "report", "--config", cfgPath, "--input", input, "--output", output, "--full=false", "--no-style=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to "+output)
	assert.Contains(t, out, "Days:     1")
	assert.FileExists(t, output)

	out, err = execute(t, "show", "--config", cfgPath, "--file", output, "--sheet", "Final_Report")
	require.NoError(t, err)
	assert.Contains(t, out, "turnover_share_lc")
	assert.Contains(t, out, "2024-04-01")

	_, err = execute(t, "show", "--config", cfgPath, "--file", output, "--sheet", "Nope")
	assert.Error(t, err)
}

func TestReportCommand_RejectsNonXLSXOutput(t *testing.T) {
	dir, cfgPath := workspace(t)
	input := writeInput(t, dir, "april.csv", validReceipts)

	_, err := execute(t, "report", "--config", cfgPath, "--input", input, "--output", filepath.Join(dir, "april.csv.out"))
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestPreviewCommand(t *testing.T) {
	dir, cfgPath := workspace(t)
	input := writeInput(t, dir, "april.csv", validReceipts)

	out, err := execute(t, "preview", "--config", cfgPath, "--input", input, "--rows", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Invoices for the file: 'april.csv'")
	assert.Contains(t, out, "Table (first 1 rows):")
	assert.Contains(t, out, "Full report:")
	assert.Contains(t, out, "Short report:")
	assert.Contains(t, out, "0.33")
}

func TestListCommand(t *testing.T) {
	dir, cfgPath := workspace(t)
	writeInput(t, dir, "b.csv", "")
	writeInput(t, dir, "a.csv", "")

	out, err := execute(t, "list", "--config", cfgPath, "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a.csv")+"\n"+filepath.Join(dir, "b.csv")+"\n", out)

	_, err = execute(t, "list", "--config", cfgPath, "--dir", filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestMissingExplicitConfig(t *testing.T) {
	_, err := execute(t, "list", "--config", filepath.Join(t.TempDir(), "none.yaml"), "--dir", ".")
	assert.ErrorContains(t, err, "failed to read config file")
}
