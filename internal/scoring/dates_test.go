package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

func TestFindDateRangesMonthForm(t *testing.T) {
	ranges := FindDateRanges("Call agent, Jan 2021 - May 2021.")
	require.Len(t, ranges, 1)
	require.Equal(t, date(2021, time.January), ranges[0].Start)
	require.Equal(t, date(2021, time.May), ranges[0].End)
	require.False(t, ranges[0].Open)
}

func TestFindDateRangesMonthVariants(t *testing.T) {
	for _, text := range []string{
		"September 2020 - December 2021",
		"Sept 2020 - Dec 2021",
		"sep 2020 – dec 2021", // en dash
	} {
		ranges := FindDateRanges(text)
		require.Len(t, ranges, 1, "text %q", text)
		require.Equal(t, date(2020, time.September), ranges[0].Start, "text %q", text)
		require.Equal(t, date(2021, time.December), ranges[0].End, "text %q", text)
	}
}

func TestFindDateRangesNumericForm(t *testing.T) {
	ranges := FindDateRanges("03/2019 - 11/2019")
	require.Len(t, ranges, 1)
	require.Equal(t, date(2019, time.March), ranges[0].Start)
	require.Equal(t, date(2019, time.November), ranges[0].End)
}

func TestFindDateRangesTwoDigitYears(t *testing.T) {
	ranges := FindDateRanges("03/19 - 11/19")
	require.Len(t, ranges, 1)
	require.Equal(t, date(2019, time.March), ranges[0].Start)

	// Years 50 and above land in the 1900s.
	ranges = FindDateRanges("05/99 - 01/01")
	require.Len(t, ranges, 1)
	require.Equal(t, date(1999, time.May), ranges[0].Start)
	require.Equal(t, date(2001, time.January), ranges[0].End)
}

func TestFindDateRangesYearForm(t *testing.T) {
	ranges := FindDateRanges("Warehouse operative 2018 to 2020")
	require.Len(t, ranges, 1)
	require.Equal(t, date(2018, time.January), ranges[0].Start)
	require.Equal(t, date(2020, time.December), ranges[0].End)
}

func TestFindDateRangesOpenEnd(t *testing.T) {
	for _, text := range []string{
		"2022 - Present",
		"2022 to current",
	} {
		ranges := FindDateRanges(text)
		require.Len(t, ranges, 1, "text %q", text)
		require.True(t, ranges[0].Open, "text %q", text)
		require.Equal(t, date(2022, time.January), ranges[0].Start, "text %q", text)
	}
}

func TestFindDateRangesBarePresentFallsBackToYearForm(t *testing.T) {
	// The month and numeric forms require an end-month token before
	// Present/Current, so a bare "Present" end is only caught by the
	// year-only form: the start degrades to January of the start year.
	for _, text := range []string{
		"Jun 2022 - Present",
		"Jun 2022 - current",
		"06/2022 - Present",
	} {
		ranges := FindDateRanges(text)
		require.Len(t, ranges, 1, "text %q", text)
		require.True(t, ranges[0].Open, "text %q", text)
		require.Equal(t, date(2022, time.January), ranges[0].Start, "text %q", text)
	}
}

func TestFindDateRangesInvalidMonthDiscarded(t *testing.T) {
	require.Empty(t, FindDateRanges("13/2019 - 14/2019"))
}

func TestFindDateRangesDedup(t *testing.T) {
	text := `Shop assistant   Jan 2021 - May 2021
Shop assistant   Jan 2021 - May 2021
Barista          01/2021 - 05/2021`
	// All three normalize to the same start/end key.
	require.Len(t, FindDateRanges(text), 1)
}

func TestMonthsClosedRangeCountsFinalMonth(t *testing.T) {
	r := DateRange{Start: date(2021, time.January), End: date(2021, time.May)}
	require.Equal(t, 5, r.Months(date(2024, time.January)))

	same := DateRange{Start: date(2021, time.March), End: date(2021, time.March)}
	require.Equal(t, 1, same.Months(date(2024, time.January)))
}

func TestMonthsOpenRangeRoundsOnMidMonth(t *testing.T) {
	r := DateRange{Start: date(2021, time.January), Open: true}

	require.Equal(t, 2, r.Months(time.Date(2021, time.March, 10, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, 3, r.Months(time.Date(2021, time.March, 16, 0, 0, 0, 0, time.UTC)))
}
