package storage

import (
	"context"
	"time"
)

// AddAttachment records an uploaded file against a candidate.
func (db *DB) AddAttachment(ctx context.Context, a *Attachment) (int64, error) {
	a.UploadedAt = time.Now().UTC()
	if a.DocType == "" {
		a.DocType = DocOther
	}
	res, err := db.connection.ExecContext(ctx,
		`INSERT INTO attachments (candidate_id, filename, path, doc_type, uploaded_at)
		 VALUES (?,?,?,?,?)`,
		a.CandidateID, a.Filename, a.Path, a.DocType, a.UploadedAt)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListAttachments returns a candidate's attachments, newest first.
func (db *DB) ListAttachments(ctx context.Context, candidateID int64) ([]*Attachment, error) {
	rows, err := db.connection.QueryContext(ctx,
		`SELECT id, candidate_id, filename, path, doc_type, uploaded_at
		 FROM attachments WHERE candidate_id = ? ORDER BY uploaded_at DESC`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Attachment
	for rows.Next() {
		a := &Attachment{}
		if err := rows.Scan(&a.ID, &a.CandidateID, &a.Filename, &a.Path, &a.DocType, &a.UploadedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// AddTestScore appends an imported assessment result. Scores are never
// updated in place.
func (db *DB) AddTestScore(ctx context.Context, ts *TestScore) (int64, error) {
	ts.ImportedAt = time.Now().UTC()
	res, err := db.connection.ExecContext(ctx,
		`INSERT INTO test_scores (candidate_id, provider, test_name, score_raw, score_pct, imported_at)
		 VALUES (?,?,?,?,?,?)`,
		ts.CandidateID, ts.Provider, ts.TestName, ts.ScoreRaw, ts.ScorePct, ts.ImportedAt)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListTestScores returns a candidate's assessment history, newest first.
func (db *DB) ListTestScores(ctx context.Context, candidateID int64) ([]*TestScore, error) {
	rows, err := db.connection.QueryContext(ctx,
		`SELECT id, candidate_id, provider, test_name, score_raw, score_pct, imported_at
		 FROM test_scores WHERE candidate_id = ? ORDER BY imported_at DESC`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*TestScore
	for rows.Next() {
		ts := &TestScore{}
		if err := rows.Scan(&ts.ID, &ts.CandidateID, &ts.Provider, &ts.TestName, &ts.ScoreRaw, &ts.ScorePct, &ts.ImportedAt); err != nil {
			return nil, err
		}
		out = append(out, ts)
	}
	return out, rows.Err()
}
