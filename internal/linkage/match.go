package linkage

import (
	"context"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// FuzzyNameCutoff is the minimum token-set ratio for a fuzzy name link.
// The single best match at or above the cutoff is accepted silently; there
// is no manual-confirmation step for near-threshold matches.
const FuzzyNameCutoff = 85

// MatchByName finds the stored candidate whose name best fuzzy-matches the
// given one. Used by the assessment and interview-notes importers, whose
// spreadsheets often carry a name but no email.
func (e *Engine) MatchByName(ctx context.Context, name string) (int64, bool, error) {
	name = Normalize(name)
	if name == "" {
		return 0, false, nil
	}

	names, err := e.db.ListCandidateNames(ctx)
	if err != nil {
		return 0, false, err
	}

	var bestID int64
	bestScore := 0
	for _, cn := range names {
		score := fuzzy.TokenSetRatio(name, cn.Name)
		if score > bestScore {
			bestScore = score
			bestID = cn.ID
		}
	}
	if bestScore < FuzzyNameCutoff {
		return 0, false, nil
	}
	return bestID, true, nil
}
