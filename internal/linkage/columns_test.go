package linkage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAutodetectColumnsFormsExport(t *testing.T) {
	headers := []string{
		"ID",
		"Completion time",
		"Please provide your full name",
		"What is your email address?",
		"Please enter your phone number",
		"What county are you based in currently?",
		"Where did you see the job advertisement?",
	}

	got := AutodetectColumns(headers)
	require.Equal(t, "Please provide your full name", got["name"])
	require.Equal(t, "What is your email address?", got["email"])
	require.Equal(t, "Please enter your phone number", got["phone"])
	require.Equal(t, "What county are you based in currently?", got["county"])
	require.Equal(t, "Where did you see the job advertisement?", got["source"])
	require.Equal(t, "Completion time", got["completion_time"])
}

func TestAutodetectColumnsPlainHeaders(t *testing.T) {
	headers := []string{"Name", "Email", "Phone", "County"}

	got := AutodetectColumns(headers)
	require.Equal(t, "Name", got["name"])
	require.Equal(t, "Email", got["email"])
	require.Equal(t, "Phone", got["phone"])
	require.Equal(t, "County", got["county"])
	require.NotContains(t, got, "notes")
}

func TestAutodetectColumnsExactMatchBeatsSubstring(t *testing.T) {
	// "Email" appears inside another header; the exact match must win.
	headers := []string{"Manager Email Notes", "Email"}

	got := AutodetectColumns(headers)
	require.Equal(t, "Email", got["email"])
}
