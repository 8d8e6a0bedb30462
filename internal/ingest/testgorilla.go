package ingest

import (
	"context"
	"strconv"
	"strings"

	"pulsehire/internal/linkage"
	"pulsehire/internal/storage"
)

// Importer links assessment and interview spreadsheets to stored
// candidates. These sheets usually carry a name but not always an email, so
// linking falls back to the fuzzy name matcher.
type Importer struct {
	db        *storage.DB
	engine    *linkage.Engine
	uploadDir string
}

func NewImporter(db *storage.DB, engine *linkage.Engine, uploadDir string) *Importer {
	return &Importer{db: db, engine: engine, uploadDir: uploadDir}
}

// ImportSummary counts one assessment or notes import run.
type ImportSummary struct {
	RowsSeen  int `json:"rows_seen"`
	Matched   int `json:"matched"`
	Unmatched int `json:"unmatched"`
}

// pickColumn returns the first header whose normalized form contains every
// wanted fragment and none of the excluded ones.
func pickColumn(headers []string, want []string, exclude ...string) string {
	for _, h := range headers {
		n := strings.ToLower(linkage.Normalize(h))
		ok := true
		for _, w := range want {
			if !strings.Contains(n, w) {
				ok = false
				break
			}
		}
		for _, x := range exclude {
			if strings.Contains(n, x) {
				ok = false
				break
			}
		}
		if ok {
			return h
		}
	}
	return ""
}

func cellIndex(headers []string, header string) int {
	for i, h := range headers {
		if h == header {
			return i
		}
	}
	return -1
}

func cell(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return linkage.Normalize(rec[idx])
}

// parsePct extracts a percentage from strings like "78", "78%" or "78.5 %".
func parsePct(s string) *float64 {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ImportTestGorilla appends one test_scores row per spreadsheet row that
// links to a stored candidate, by exact email first and best fuzzy name
// second. Unlinked rows are counted and dropped; nothing in the sheet
// creates candidates.
func (im *Importer) ImportTestGorilla(ctx context.Context, headers []string, records [][]string) (ImportSummary, error) {
	emailIdx := cellIndex(headers, pickColumn(headers, []string{"email"}))
	nameIdx := cellIndex(headers, pickColumn(headers, []string{"name"}, "test"))
	testIdx := cellIndex(headers, pickColumn(headers, []string{"test", "name"}))
	if testIdx < 0 {
		testIdx = cellIndex(headers, pickColumn(headers, []string{"assessment"}))
	}
	scoreIdx := cellIndex(headers, pickColumn(headers, []string{"score"}))
	pctlIdx := cellIndex(headers, pickColumn(headers, []string{"percentile"}))

	var sum ImportSummary
	for _, rec := range records {
		sum.RowsSeen++

		var candID int64
		if email := cell(rec, emailIdx); email != "" {
			id, ok, err := im.db.FindIDByEmail(ctx, email)
			if err != nil {
				return sum, err
			}
			if ok {
				candID = id
			}
		}
		if candID == 0 {
			id, ok, err := im.engine.MatchByName(ctx, cell(rec, nameIdx))
			if err != nil {
				return sum, err
			}
			if ok {
				candID = id
			}
		}
		if candID == 0 {
			sum.Unmatched++
			continue
		}

		testName := cell(rec, testIdx)
		if testName == "" {
			testName = "TestGorilla"
		}
		scoreRaw := cell(rec, scoreIdx)
		if p := cell(rec, pctlIdx); p != "" {
			scoreRaw = p
		}
		_, err := im.db.AddTestScore(ctx, &storage.TestScore{
			CandidateID: candID,
			Provider:    "TestGorilla",
			TestName:    testName,
			ScoreRaw:    scoreRaw,
			ScorePct:    parsePct(cell(rec, scoreIdx)),
		})
		if err != nil {
			return sum, err
		}
		sum.Matched++
	}
	return sum, nil
}
