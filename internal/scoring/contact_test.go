package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractContact(t *testing.T) {
	text := `Jane O'Brien
Customer Service Agent
jane.obrien@example.com | +353 86 123 4567
Cork, Ireland`

	c := ExtractContact(text)
	require.Equal(t, "Jane O'Brien", c.Name)
	require.Equal(t, "jane.obrien@example.com", c.Email)
	require.GreaterOrEqual(t, digitCount(c.Phone), 8)
}

func TestExtractContactIgnoresShortNumbers(t *testing.T) {
	// Postal codes and short references never have 8 digits.
	c := ExtractContact("Apartment 12, Block 4-55 9000")
	require.Empty(t, c.Phone)
}

func TestLooksLikeName(t *testing.T) {
	require.True(t, looksLikeName("Jane O'Brien"))
	require.True(t, looksLikeName("Sean Murphy-Walsh"))
	require.False(t, looksLikeName("CURRICULUM"))            // one word
	require.False(t, looksLikeName("jane o'brien"))          // lower case
	require.False(t, looksLikeName("Jane O'Brien 2021"))     // digits
	require.False(t, looksLikeName("jane@example.com Jane")) // email-ish
	require.False(t, looksLikeName("One Two Three Four Five"))
}
