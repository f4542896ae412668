package csvparser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/receipts-report/internal/config"
	"github.com/ginjaninja78/receipts-report/internal/types"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadHeader(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		delimiter string
		want      []string
	}{
		{"comma", "A,B,C\n1,2,3\n", ",", []string{"A", "B", "C"}},
		{"semicolon", "A;B\n", ";", []string{"A", "B"}},
		{"tab by name", "A\tB\n", "tab", []string{"A", "B"}},
		{"multi-byte", "A§B\n", "§", []string{"A", "B"}},
		{"byte order mark", "\ufeffBON_DAT,RECEIPT_ID\n", ",", []string{"BON_DAT", "RECEIPT_ID"}},
		{"padded names", " A , B \n", ",", []string{"A", "B"}},
		{"empty file", "", ",", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := config.DefaultCSVSettings()
			settings.Delimiter = tt.delimiter

			got, err := ReadHeader(writeFile(t, tt.content), settings)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadHeader_MissingFile(t *testing.T) {
	_, err := ReadHeader(filepath.Join(t.TempDir(), "none.csv"), config.DefaultCSVSettings())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse(t *testing.T) {
	path := writeFile(t, "A,B\n1,2\n\n3\n , \n4,5\n")

	data, err := Parse(path, config.DefaultCSVSettings())
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, data.Headers)
	assert.Equal(t, path, data.SourceFile)
	assert.Equal(t, []Row{
		{Line: 2, Fields: map[string]string{"A": "1", "B": "2"}},
		{Line: 4, Fields: map[string]string{"A": "3", "B": ""}},
		{Line: 6, Fields: map[string]string{"A": "4", "B": "5"}},
	}, data.Rows)
}

func TestParse_EmptyFile(t *testing.T) {
	_, err := Parse(writeFile(t, ""), config.DefaultCSVSettings())
	assert.Error(t, err)
}

func TestParse_RowWiderThanHeader(t *testing.T) {
	_, err := Parse(writeFile(t, "A,B\n1,2\n3,4,5\n"), config.DefaultCSVSettings())

	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrParse)

	var parseErr *types.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 3, parseErr.Line)
	assert.Equal(t, "field 3", parseErr.Column)
	assert.Equal(t, "5", parseErr.Value)
}

func TestParse_MalformedQuotes(t *testing.T) {
	_, err := Parse(writeFile(t, "A,B\n\"1,2\n"), config.DefaultCSVSettings())
	assert.Error(t, err)
}

func TestDelimiter(t *testing.T) {
	tests := map[string]rune{
		",":         ',',
		";":         ';',
		"semicolon": ';',
		"|":         '|',
		"pipe":      '|',
		"tab":       '\t',
		"§":         '§',
		"\xff":      ',',
		"\t":        '\t',
		"":          ',',
	}

	for name, want := range tests {
		assert.Equal(t, want, Delimiter(name), "delimiter %q", name)
	}
}
