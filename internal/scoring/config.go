// Package scoring implements the keyword-coverage CV score and the
// tenure-gap heuristic. Everything here is a pure function of its inputs;
// the caller assembles a Config from the live keyword tables per call.
package scoring

import "sort"

// Tier is the coarse fit bucket derived from the coverage percentage.
type Tier string

const (
	TierHigh   Tier = "High"
	TierMedium Tier = "Medium"
	TierLow    Tier = "Low"
)

// Default thresholds. Exposed through Config so operators can tune them,
// but these numbers are the compatibility baseline.
const (
	DefaultHighThreshold    = 70.0
	DefaultMediumThreshold  = 40.0
	DefaultShortStintMonths = 6
	DefaultCautionCount     = 2
)

// Config carries everything ScoreCV consults. Zero fields fall back to the
// defaults above.
type Config struct {
	// Keywords maps category name to its keyword phrases.
	Keywords map[string][]string
	// Categories is the fixed set of categories averaged into the score.
	// Empty means every category in Keywords, in sorted order.
	Categories []string
	// Weights are optional non-negative per-category weights. They are
	// normalized to sum to 1; unset or all-zero means equal weights.
	Weights map[string]float64

	// Thresholds are pointers so an explicit 0 is distinguishable from
	// unset; nil falls back to the defaults.
	HighThreshold   *float64
	MediumThreshold *float64

	// ShortStintMonths: an employment range strictly shorter than this many
	// months counts as a short stint.
	ShortStintMonths int
	// CautionCount: reliability_caution fires at this many short stints.
	CautionCount int

	// PreviousEmployers are known-prior-employer name variants matched as
	// plain case-insensitive substrings.
	PreviousEmployers []string
	// CallCentreEmployers are employer phrases that imply call-centre
	// experience, matched with the same word-boundary rule as keywords.
	CallCentreEmployers []string
}

func (c Config) scoreCategories() []string {
	if len(c.Categories) > 0 {
		return c.Categories
	}
	cats := make([]string, 0, len(c.Keywords))
	for cat := range c.Keywords {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}

func (c Config) highThreshold() float64 {
	if c.HighThreshold == nil {
		return DefaultHighThreshold
	}
	return *c.HighThreshold
}

func (c Config) mediumThreshold() float64 {
	if c.MediumThreshold == nil {
		return DefaultMediumThreshold
	}
	return *c.MediumThreshold
}

func (c Config) shortStintMonths() int {
	if c.ShortStintMonths == 0 {
		return DefaultShortStintMonths
	}
	return c.ShortStintMonths
}

func (c Config) cautionCount() int {
	if c.CautionCount == 0 {
		return DefaultCautionCount
	}
	return c.CautionCount
}

// categoryWeights returns the normalized weight per scoring category.
func (c Config) categoryWeights() map[string]float64 {
	cats := c.scoreCategories()
	weights := make(map[string]float64, len(cats))
	total := 0.0
	for _, cat := range cats {
		w := c.Weights[cat]
		if w < 0 {
			w = 0
		}
		weights[cat] = w
		total += w
	}
	if total == 0 {
		equal := 1.0 / float64(len(cats))
		for _, cat := range cats {
			weights[cat] = equal
		}
		return weights
	}
	for cat := range weights {
		weights[cat] /= total
	}
	return weights
}
