package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pulsehire/internal/linkage"
	"pulsehire/internal/storage"
)

func newTestImporter(t *testing.T) (*Importer, *storage.DB, *linkage.Engine) {
	t.Helper()
	db, err := storage.NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	engine := linkage.NewEngine(db)
	return NewImporter(db, engine, t.TempDir()), db, engine
}

func seedCandidate(t *testing.T, e *linkage.Engine, name, email string) int64 {
	t.Helper()
	id, _, err := e.Upsert(context.Background(), map[string]string{
		"name": name, "email": email,
	}, false)
	require.NoError(t, err)
	return id
}

func TestImportTestGorillaLinksByEmail(t *testing.T) {
	im, db, e := newTestImporter(t)
	ctx := context.Background()
	id := seedCandidate(t, e, "Jane Doe", "jane@example.com")

	headers := []string{"Candidate name", "Email address", "Test name", "Score", "Percentile"}
	records := [][]string{
		{"Jane Doe", "jane@example.com", "Customer Service", "78%", "81"},
		{"Nobody Known", "stranger@example.com", "Customer Service", "50%", "40"},
	}

	sum, err := im.ImportTestGorilla(ctx, headers, records)
	require.NoError(t, err)
	require.Equal(t, 2, sum.RowsSeen)
	require.Equal(t, 1, sum.Matched)
	require.Equal(t, 1, sum.Unmatched)

	scores, err := db.ListTestScores(ctx, id)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	require.Equal(t, "TestGorilla", scores[0].Provider)
	require.Equal(t, "Customer Service", scores[0].TestName)
	require.Equal(t, "81", scores[0].ScoreRaw) // percentile preferred for display
	require.NotNil(t, scores[0].ScorePct)
	require.InDelta(t, 78, *scores[0].ScorePct, 0.001)
}

func TestImportTestGorillaFallsBackToFuzzyName(t *testing.T) {
	im, db, e := newTestImporter(t)
	ctx := context.Background()
	id := seedCandidate(t, e, "Jane Doe", "jane@example.com")

	// No email column at all; the name is close enough to link.
	headers := []string{"Candidate name", "Test name", "Score"}
	records := [][]string{{"Doe Jane", "Typing", "65"}}

	sum, err := im.ImportTestGorilla(ctx, headers, records)
	require.NoError(t, err)
	require.Equal(t, 1, sum.Matched)

	scores, err := db.ListTestScores(ctx, id)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	require.Equal(t, "Typing", scores[0].TestName)
}

func TestImportTestGorillaNeverCreatesCandidates(t *testing.T) {
	im, db, _ := newTestImporter(t)
	ctx := context.Background()

	headers := []string{"Candidate name", "Email address", "Score"}
	records := [][]string{{"Nobody Known", "stranger@example.com", "90"}}

	sum, err := im.ImportTestGorilla(ctx, headers, records)
	require.NoError(t, err)
	require.Equal(t, 1, sum.Unmatched)

	all, err := db.ListCandidates(ctx, storage.CandidateFilter{})
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestImportTestGorillaAppendsRepeatScores(t *testing.T) {
	im, db, e := newTestImporter(t)
	ctx := context.Background()
	id := seedCandidate(t, e, "Jane Doe", "jane@example.com")

	headers := []string{"Email address", "Test name", "Score"}
	records := [][]string{{"jane@example.com", "Typing", "60"}}

	_, err := im.ImportTestGorilla(ctx, headers, records)
	require.NoError(t, err)
	_, err = im.ImportTestGorilla(ctx, headers, records)
	require.NoError(t, err)

	scores, err := db.ListTestScores(ctx, id)
	require.NoError(t, err)
	require.Len(t, scores, 2) // append-only, re-imports are kept
}

func TestImportInterviewNotes(t *testing.T) {
	im, db, e := newTestImporter(t)
	ctx := context.Background()
	id := seedCandidate(t, e, "Jane Doe", "jane@example.com")

	headers := []string{"Candidate name", "Final recommendation", "Notice period", "Planned leave"}
	records := [][]string{
		{"Jane Doe", "Yes - proceed", "2 weeks", "none"},
		{"Nobody Known", "No", "", ""},
	}

	sum, err := im.ImportInterviewNotes(ctx, headers, records)
	require.NoError(t, err)
	require.Equal(t, 1, sum.Matched)
	require.Equal(t, 1, sum.Unmatched)

	c, err := db.GetCandidate(ctx, id)
	require.NoError(t, err)
	require.Equal(t, storage.StatusInterviewed, c.Status)
	require.Equal(t, "2 weeks", c.NoticePeriod)
	require.Equal(t, "none", c.PlannedLeave)

	attachments, err := db.ListAttachments(ctx, id)
	require.NoError(t, err)
	require.Len(t, attachments, 1)
	require.Equal(t, storage.DocInterviewNotes, attachments[0].DocType)

	// The archived row keeps the interviewer's answers.
	body, err := os.ReadFile(attachments[0].Path)
	require.NoError(t, err)
	require.Contains(t, string(body), "Final recommendation: Yes - proceed")
}

func TestImportInterviewNotesFailedOutcomeLeavesStatus(t *testing.T) {
	im, db, e := newTestImporter(t)
	ctx := context.Background()
	id := seedCandidate(t, e, "Jane Doe", "jane@example.com")

	headers := []string{"Candidate name", "Final recommendation"}
	records := [][]string{{"Jane Doe", "No - not suitable"}}

	_, err := im.ImportInterviewNotes(ctx, headers, records)
	require.NoError(t, err)

	c, err := db.GetCandidate(ctx, id)
	require.NoError(t, err)
	require.Equal(t, storage.StatusNew, c.Status)
}
