package validation

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/receipts-report/internal/config"
	"github.com/ginjaninja78/receipts-report/internal/types"
)

func TestValidateHeaders(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		wantErr bool
	}{
		{"exact", []string{"BON_DAT", "LOYALITY_CUSTOMER_ID", "RECEIPT_ID", "RECEIPT_VALUE"}, false},
		{"any order", []string{"RECEIPT_VALUE", "BON_DAT", "RECEIPT_ID", "LOYALITY_CUSTOMER_ID"}, false},
		{"any case", []string{"bon_dat", "Loyality_Customer_Id", "receipt_id", "RECEIPT_value"}, false},
		{"missing column", []string{"BON_DAT", "RECEIPT_ID", "RECEIPT_VALUE"}, true},
		{"extra column", []string{"BON_DAT", "LOYALITY_CUSTOMER_ID", "RECEIPT_ID", "RECEIPT_VALUE", "STORE"}, true},
		{"duplicate replaces required", []string{"BON_DAT", "BON_DAT", "RECEIPT_ID", "RECEIPT_VALUE"}, true},
		{"wrong name", []string{"BON_DAT", "LOYALTY_CUSTOMER_ID", "RECEIPT_ID", "RECEIPT_VALUE"}, true},
		{"no headers", []string{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHeaders(tt.headers)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrSchemaMismatch))

			var structureErr *types.FileStructureError
			require.True(t, errors.As(err, &structureErr))
			assert.Equal(t, RequiredHeaders(), structureErr.RequiredHeaders)
			assert.Equal(t, tt.headers, structureErr.Found)
		})
	}
}

func TestValidateFileStructure(t *testing.T) {
	dir := t.TempDir()
	settings := config.DefaultCSVSettings()

	valid := filepath.Join(dir, "valid.csv")
	require.NoError(t, os.WriteFile(valid, []byte("BON_DAT,LOYALITY_CUSTOMER_ID,RECEIPT_ID,RECEIPT_VALUE\nnot a date,,,\n"), 0o644))
	assert.NoError(t, ValidateFileStructure(valid, settings))

	invalid := filepath.Join(dir, "invalid.csv")
	require.NoError(t, os.WriteFile(invalid, []byte("BON_DAT,RECEIPT_ID,RECEIPT_VALUE\n"), 0o644))
	assert.ErrorIs(t, ValidateFileStructure(invalid, settings), types.ErrSchemaMismatch)

	semicolon := filepath.Join(dir, "semicolon.csv")
	require.NoError(t, os.WriteFile(semicolon, []byte("BON_DAT;LOYALITY_CUSTOMER_ID;RECEIPT_ID;RECEIPT_VALUE\n"), 0o644))
	assert.ErrorIs(t, ValidateFileStructure(semicolon, settings), types.ErrSchemaMismatch)
	settings.Delimiter = ";"
	assert.NoError(t, ValidateFileStructure(semicolon, settings))

	err := ValidateFileStructure(filepath.Join(dir, "missing.csv"), settings)
	assert.ErrorIs(t, err, types.ErrMissingFile)
}

func TestFormatError(t *testing.T) {
	err := ValidateHeaders([]string{"BON_DAT"})
	out := FormatError(err)

	assert.True(t, strings.HasPrefix(out, "The file structure is invalid.\n"))
	assert.Contains(t, out, "Found headers: BON_DAT")
	for _, h := range RequiredHeaders() {
		assert.Contains(t, out, "  - "+h+"\n")
	}

	assert.Contains(t, FormatError(ValidateHeaders(nil)), "Found headers: (none)")
	assert.Equal(t, "boom", FormatError(errors.New("boom")))
}
