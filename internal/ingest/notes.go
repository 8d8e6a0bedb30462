package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"pulsehire/internal/storage"
)

// ImportInterviewNotes links interviewer note rows to candidates by fuzzy
// name, marks yes/pass outcomes as Interviewed, records notice period and
// planned leave, and archives each matched row as a text attachment on the
// candidate file.
func (im *Importer) ImportInterviewNotes(ctx context.Context, headers []string, records [][]string) (ImportSummary, error) {
	nameIdx := cellIndex(headers, pickColumn(headers, []string{"name"}))
	outcomeIdx := cellIndex(headers, firstColumn(headers,
		[]string{"final"}, []string{"recommend"}, []string{"outcome"}, []string{"decision"}, []string{"result"}))
	noticeIdx := cellIndex(headers, firstColumn(headers,
		[]string{"notice"}, []string{"how soon"}, []string{"start"}))
	leaveIdx := cellIndex(headers, firstColumn(headers,
		[]string{"leave"}, []string{"days off"}, []string{"upcoming"}))

	var sum ImportSummary
	for _, rec := range records {
		sum.RowsSeen++

		candID, ok, err := im.engine.MatchByName(ctx, cell(rec, nameIdx))
		if err != nil {
			return sum, err
		}
		if !ok {
			sum.Unmatched++
			continue
		}

		fields := map[string]any{}
		outcome := strings.ToLower(cell(rec, outcomeIdx))
		if strings.Contains(outcome, "yes") || strings.Contains(outcome, "pass") {
			fields["status"] = storage.StatusInterviewed
		}
		if notice := cell(rec, noticeIdx); notice != "" {
			fields["notice_period"] = notice
		}
		if leave := cell(rec, leaveIdx); leave != "" {
			fields["planned_leave"] = leave
		}
		if len(fields) > 0 {
			if err := im.db.UpdateCandidateFields(ctx, candID, fields); err != nil {
				return sum, err
			}
		}

		if err := im.attachNotesRow(ctx, candID, headers, rec); err != nil {
			return sum, err
		}
		sum.Matched++
	}
	return sum, nil
}

// attachNotesRow archives the full spreadsheet row as a plain-text
// attachment so the interviewer's answers survive on the candidate file.
func (im *Importer) attachNotesRow(ctx context.Context, candID int64, headers []string, rec []string) error {
	var sb strings.Builder
	sb.WriteString("Interview Notes\n\n")
	for i, h := range headers {
		sb.WriteString(fmt.Sprintf("%s: %s\n", h, cell(rec, i)))
	}

	if err := os.MkdirAll(im.uploadDir, 0o755); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}
	stored := uuid.New().String() + ".txt"
	path := filepath.Join(im.uploadDir, stored)
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write notes attachment: %w", err)
	}

	_, err := im.db.AddAttachment(ctx, &storage.Attachment{
		CandidateID: candID,
		Filename:    fmt.Sprintf("interview_notes_%d.txt", candID),
		Path:        path,
		DocType:     storage.DocInterviewNotes,
	})
	return err
}

// firstColumn tries successive fragment sets and returns the first header
// any of them picks.
func firstColumn(headers []string, wants ...[]string) string {
	for _, want := range wants {
		if h := pickColumn(headers, want); h != "" {
			return h
		}
	}
	return ""
}
