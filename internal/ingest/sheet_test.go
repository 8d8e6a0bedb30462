package ingest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadSheetCSV(t *testing.T) {
	data := []byte("Name,Email,Phone\nJane Doe,jane@example.com,555-1\nJohn Smith,john@example.com\n")

	headers, records, err := ReadSheet("export.csv", data)
	require.NoError(t, err)
	require.Equal(t, []string{"Name", "Email", "Phone"}, headers)
	require.Len(t, records, 2)

	// Short records are padded to the header width.
	require.Equal(t, []string{"John Smith", "john@example.com", ""}, records[1])
}

func TestReadSheetEmptyCSV(t *testing.T) {
	_, _, err := ReadSheet("export.csv", nil)
	require.Error(t, err)
}

func TestReadSheetUnsupportedExtension(t *testing.T) {
	_, _, err := ReadSheet("export.pdf", []byte("whatever"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported spreadsheet type")
}

func TestPickColumn(t *testing.T) {
	headers := []string{"Candidate name", "Test name", "Email address", "Score"}

	require.Equal(t, "Candidate name", pickColumn(headers, []string{"name"}, "test"))
	require.Equal(t, "Test name", pickColumn(headers, []string{"test", "name"}))
	require.Equal(t, "Email address", pickColumn(headers, []string{"email"}))
	require.Equal(t, "", pickColumn(headers, []string{"percentile"}))
}

func TestParsePct(t *testing.T) {
	for raw, want := range map[string]float64{
		"78":     78,
		"78%":    78,
		"78.5 %": 78.5,
	} {
		got := parsePct(raw)
		require.NotNil(t, got, "raw %q", raw)
		require.InDelta(t, want, *got, 0.001, "raw %q", raw)
	}
	require.Nil(t, parsePct(""))
	require.Nil(t, parsePct("n/a"))
}
