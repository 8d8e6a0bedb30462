package scoring

import (
	"math"
	"regexp"
	"strings"
	"time"
)

// Flags is the structured heuristic output persisted as flags_json. The
// serialized keys are a compatibility surface; do not rename them.
type Flags struct {
	ScorePct           float64 `json:"score_pct"`
	ReliabilityCaution bool    `json:"reliability_caution"`
	ShortTenuresCount  int     `json:"short_tenures_count"`
	CallCentreInferred bool    `json:"call_centre_inferred"`
	PreviousEmployee   bool    `json:"previous_employee"`
}

var wsRe = regexp.MustCompile(`\s+`)

// phraseHits returns the phrases found in text as whole, word-boundary
// delimited matches, case-insensitively. A phrase never matches inside a
// longer word on either side.
func phraseHits(text string, phrases []string) []string {
	// Pad with spaces so boundary classes exist at both ends.
	haystack := " " + wsRe.ReplaceAllString(strings.ToLower(text), " ") + " "
	var hits []string
	for _, phrase := range phrases {
		p := wsRe.ReplaceAllString(strings.TrimSpace(strings.ToLower(phrase)), " ")
		if p == "" {
			continue
		}
		// RE2 has no lookarounds; require a non-word rune on each side
		// instead, which is equivalent on the padded haystack.
		re, err := regexp.Compile(`(?:^|[^0-9a-z_])` + regexp.QuoteMeta(p) + `(?:[^0-9a-z_]|$)`)
		if err != nil {
			continue
		}
		if re.MatchString(haystack) {
			hits = append(hits, phrase)
		}
	}
	return hits
}

// ScoreCV computes the weighted keyword-coverage tier and the heuristic
// flags for one resume text. Deterministic for a given (text, cfg) except
// that open-ended employment ranges are measured against today.
func ScoreCV(text string, cfg Config) (Tier, Flags) {
	weights := cfg.categoryWeights()

	pct := 0.0
	for _, cat := range cfg.scoreCategories() {
		phrases := cfg.Keywords[cat]
		if len(phrases) == 0 {
			continue // empty category contributes a zero fraction
		}
		fraction := float64(len(phraseHits(text, phrases))) / float64(len(phrases))
		pct += weights[cat] * fraction * 100.0
	}
	pct = math.Min(100, math.Max(0, pct))

	var tier Tier
	switch {
	case pct >= cfg.highThreshold():
		tier = TierHigh
	case pct >= cfg.mediumThreshold():
		tier = TierMedium
	default:
		tier = TierLow
	}

	shortCount := countShortStints(FindDateRanges(text), cfg.shortStintMonths(), time.Now())

	lower := strings.ToLower(text)
	prevEmployee := false
	for _, variant := range cfg.PreviousEmployers {
		if variant != "" && strings.Contains(lower, strings.ToLower(variant)) {
			prevEmployee = true
			break
		}
	}

	flags := Flags{
		ScorePct:           math.Round(pct*10) / 10,
		ReliabilityCaution: shortCount >= cfg.cautionCount(),
		ShortTenuresCount:  shortCount,
		CallCentreInferred: len(phraseHits(text, cfg.CallCentreEmployers)) > 0,
		PreviousEmployee:   prevEmployee,
	}
	return tier, flags
}

// countShortStints counts ranges strictly shorter than threshold months.
func countShortStints(ranges []DateRange, thresholdMonths int, today time.Time) int {
	n := 0
	for _, r := range ranges {
		if r.Months(today) < thresholdMonths {
			n++
		}
	}
	return n
}
