package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPhraseHitsWholeWordsOnly(t *testing.T) {
	text := "Striving for Excellence, proficient in Excel and zendesk."

	hits := phraseHits(text, []string{"excel", "zendesk", "crm"})
	require.Equal(t, []string{"excel", "zendesk"}, hits)
}

func TestPhraseHitsMultiWord(t *testing.T) {
	text := "Three years of customer   service experience."

	require.Equal(t, []string{"customer service"}, phraseHits(text, []string{"customer service"}))
	require.Empty(t, phraseHits(text, []string{"customer services"}))
}

func TestPhraseHitsPunctuationBoundary(t *testing.T) {
	require.NotEmpty(t, phraseHits("Tools: Excel, Word.", []string{"excel"}))
	require.NotEmpty(t, phraseHits("(zendesk)", []string{"zendesk"}))
}

func TestScoreCVWeightedCoverage(t *testing.T) {
	cfg := Config{
		Keywords: map[string][]string{
			"Skills": {"customer service", "empathy", "typing"},
			"Tools":  {"excel", "zendesk"},
		},
	}
	text := "Customer service background with strong empathy. Daily Excel and Zendesk use."

	// Skills 2/3, Tools 2/2, equal weights: (0.6667 + 1.0) / 2 * 100.
	tier, flags := ScoreCV(text, cfg)
	require.Equal(t, TierHigh, tier)
	require.InDelta(t, 83.3, flags.ScorePct, 0.05)
}

func TestScoreCVRoundNumbers(t *testing.T) {
	cfg := Config{Keywords: map[string][]string{
		"Skills": {"Customer Service"},
		"Tools":  {"Excel", "Salesforce", "Zendesk"},
	}}

	tier, flags := ScoreCV("Skilled in Customer Service and Excel, used Salesforce daily.", cfg)
	require.Equal(t, TierHigh, tier)
	require.InDelta(t, 83.3, flags.ScorePct, 0.05)
}

func TestScoreCVCustomWeights(t *testing.T) {
	cfg := Config{
		Keywords: map[string][]string{
			"Skills": {"empathy"},
			"Tools":  {"excel"},
		},
		Weights: map[string]float64{"Skills": 3, "Tools": 1},
	}

	// Only Skills hits: 0.75 * 100.
	tier, flags := ScoreCV("empathy above all", cfg)
	require.Equal(t, TierHigh, tier)
	require.InDelta(t, 75.0, flags.ScorePct, 0.05)
}

func TestScoreCVTierBoundaries(t *testing.T) {
	kw := []string{"k1", "k2", "k3", "k4", "k5", "k6", "k7", "k8", "k9", "k10"}
	cfg := Config{Keywords: map[string][]string{"Skills": kw}}

	cases := []struct {
		text string
		tier Tier
		pct  float64
	}{
		{"k1 k2 k3 k4 k5 k6 k7", TierHigh, 70},   // exactly at the high threshold
		{"k1 k2 k3 k4", TierMedium, 40},          // exactly at the medium threshold
		{"k1 k2 k3", TierLow, 30},
		{"", TierLow, 0},
	}
	for _, tc := range cases {
		tier, flags := ScoreCV(tc.text, cfg)
		require.Equal(t, tc.tier, tier, "text %q", tc.text)
		require.InDelta(t, tc.pct, flags.ScorePct, 0.05, "text %q", tc.text)
	}
}

func TestScoreCVExplicitZeroThreshold(t *testing.T) {
	zero := 0.0
	cfg := Config{
		Keywords:        map[string][]string{"Skills": {"empathy"}},
		MediumThreshold: &zero,
	}

	// A configured 0 is honored, not treated as unset: a 0% coverage
	// still clears the medium threshold.
	tier, flags := ScoreCV("no matching terms here", cfg)
	require.Equal(t, TierMedium, tier)
	require.Zero(t, flags.ScorePct)
}

func TestScoreCVDeterministic(t *testing.T) {
	cfg := Config{Keywords: map[string][]string{
		"Skills": {"empathy", "typing"},
		"Tools":  {"excel"},
	}}
	text := "Empathy and Excel."

	t1, f1 := ScoreCV(text, cfg)
	for i := 0; i < 10; i++ {
		t2, f2 := ScoreCV(text, cfg)
		require.Equal(t, t1, t2)
		require.Equal(t, f1.ScorePct, f2.ScorePct)
	}
}

func TestScoreCVEmptyKeywordsScoresZero(t *testing.T) {
	tier, flags := ScoreCV("anything at all", Config{})
	require.Equal(t, TierLow, tier)
	require.Zero(t, flags.ScorePct)
}

func TestScoreCVPreviousEmployerSubstring(t *testing.T) {
	cfg := Config{
		Keywords:          map[string][]string{"Skills": {"empathy"}},
		PreviousEmployers: []string{"relatecare", "rigney dolphin"},
	}

	_, flags := ScoreCV("Worked at RelateCare Ltd until 2022.", cfg)
	require.True(t, flags.PreviousEmployee)

	_, flags = ScoreCV("Worked at a care home.", cfg)
	require.False(t, flags.PreviousEmployee)
}

func TestScoreCVCallCentreInferred(t *testing.T) {
	cfg := Config{
		Keywords:            map[string][]string{"Skills": {"empathy"}},
		CallCentreEmployers: []string{"abtran", "voxpro"},
	}

	_, flags := ScoreCV("Agent at Abtran, Cork.", cfg)
	require.True(t, flags.CallCentreInferred)

	_, flags = ScoreCV("Agent at a shop.", cfg)
	require.False(t, flags.CallCentreInferred)
}

func TestScoreCVShortStintFlags(t *testing.T) {
	cfg := Config{Keywords: map[string][]string{"Skills": {"empathy"}}}
	text := `Empathy-driven agent.
Shop assistant   Jan 2020 - Mar 2020
Barista          Jun 2020 - Sep 2020
Agent            Jan 2015 - Dec 2018`

	_, flags := ScoreCV(text, cfg)
	require.Equal(t, 2, flags.ShortTenuresCount)
	require.True(t, flags.ReliabilityCaution)
}

func TestCountShortStintsThresholdIsStrict(t *testing.T) {
	today := date(2024, 1)
	ranges := []DateRange{
		{Start: date(2021, 1), End: date(2021, 6)}, // 6 months, not short
		{Start: date(2021, 1), End: date(2021, 5)}, // 5 months, short
	}
	require.Equal(t, 1, countShortStints(ranges, 6, today))
}
