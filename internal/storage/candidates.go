package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

const candidateColumns = `id, email, name, phone, county, availability, source,
	completion_time, notes, status, last_attempt, interview_dt, campaign,
	notice_period, planned_leave, dnc, dnc_reason, dnc_override, is_test,
	score_tier, flags_json, created_at, updated_at`

func scanCandidate(row interface{ Scan(...any) error }) (*Candidate, error) {
	c := &Candidate{}
	err := row.Scan(
		&c.ID, &c.Email, &c.Name, &c.Phone, &c.County, &c.Availability, &c.Source,
		&c.CompletionTime, &c.Notes, &c.Status, &c.LastAttempt, &c.InterviewDT, &c.Campaign,
		&c.NoticePeriod, &c.PlannedLeave, &c.DNC, &c.DNCReason, &c.DNCOverride, &c.IsTest,
		&c.ScoreTier, &c.FlagsJSON, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// FindIDByEmail resolves a candidate id by case-insensitive email match.
func (db *DB) FindIDByEmail(ctx context.Context, email string) (int64, bool, error) {
	var id int64
	err := db.connection.QueryRowContext(ctx,
		`SELECT id FROM candidates WHERE lower(email) = lower(?)`, email).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// FindIDByNamePhone resolves a candidate id by case-insensitive name and
// exact phone match.
func (db *DB) FindIDByNamePhone(ctx context.Context, name, phone string) (int64, bool, error) {
	var id int64
	err := db.connection.QueryRowContext(ctx,
		`SELECT id FROM candidates WHERE lower(name) = lower(?) AND phone = ?`, name, phone).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

func (db *DB) GetCandidate(ctx context.Context, id int64) (*Candidate, error) {
	row := db.connection.QueryRowContext(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE id = ?`, id)
	c, err := scanCandidate(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("candidate %d not found", id)
	}
	return c, err
}

// InsertCandidate persists a new candidate and returns its id. CreatedAt and
// UpdatedAt are set here.
func (db *DB) InsertCandidate(ctx context.Context, c *Candidate) (int64, error) {
	now := time.Now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now
	if c.Status == "" {
		c.Status = StatusNew
	}
	res, err := db.connection.ExecContext(ctx, `
		INSERT INTO candidates (
			email, name, phone, county, availability, source, completion_time,
			notes, status, last_attempt, interview_dt, campaign, notice_period,
			planned_leave, dnc, dnc_reason, dnc_override, is_test, score_tier,
			flags_json, created_at, updated_at
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		c.Email, c.Name, c.Phone, c.County, c.Availability, c.Source, c.CompletionTime,
		c.Notes, c.Status, c.LastAttempt, c.InterviewDT, c.Campaign, c.NoticePeriod,
		c.PlannedLeave, c.DNC, c.DNCReason, c.DNCOverride, c.IsTest, c.ScoreTier,
		c.FlagsJSON, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	c.ID = id
	return id, nil
}

// UpdateCandidate rewrites every mutable column from c and refreshes
// updated_at. Callers decide the merge; this just persists it.
func (db *DB) UpdateCandidate(ctx context.Context, c *Candidate) error {
	c.UpdatedAt = time.Now().UTC()
	_, err := db.connection.ExecContext(ctx, `
		UPDATE candidates SET
			email=?, name=?, phone=?, county=?, availability=?, source=?,
			completion_time=?, notes=?, status=?, last_attempt=?, interview_dt=?,
			campaign=?, notice_period=?, planned_leave=?, dnc=?, dnc_reason=?,
			dnc_override=?, is_test=?, score_tier=?, flags_json=?, updated_at=?
		WHERE id=?`,
		c.Email, c.Name, c.Phone, c.County, c.Availability, c.Source,
		c.CompletionTime, c.Notes, c.Status, c.LastAttempt, c.InterviewDT,
		c.Campaign, c.NoticePeriod, c.PlannedLeave, c.DNC, c.DNCReason,
		c.DNCOverride, c.IsTest, c.ScoreTier, c.FlagsJSON, c.UpdatedAt, c.ID)
	return err
}

// candidateEditColumns whitelists the columns manual edits may touch.
var candidateEditColumns = map[string]bool{
	"name": true, "email": true, "phone": true, "county": true,
	"availability": true, "source": true, "notes": true, "status": true,
	"last_attempt": true, "interview_dt": true, "campaign": true,
	"notice_period": true, "planned_leave": true, "dnc": true,
	"dnc_reason": true, "dnc_override": true,
}

// UpdateCandidateFields applies a partial manual edit. Unknown columns are
// rejected rather than interpolated.
func (db *DB) UpdateCandidateFields(ctx context.Context, id int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	var sets []string
	var args []any
	for k, v := range fields {
		if !candidateEditColumns[k] {
			return fmt.Errorf("not an editable candidate column: %q", k)
		}
		sets = append(sets, k+"=?")
		args = append(args, v)
	}
	sets = append(sets, "updated_at=?")
	args = append(args, time.Now().UTC(), id)
	_, err := db.connection.ExecContext(ctx,
		`UPDATE candidates SET `+strings.Join(sets, ", ")+` WHERE id=?`, args...)
	return err
}

// SetCandidateScore persists the CV scoring outcome. Only the scoring
// subsystem writes these two columns.
func (db *DB) SetCandidateScore(ctx context.Context, id int64, tier ScoreTier, flagsJSON string) error {
	_, err := db.connection.ExecContext(ctx,
		`UPDATE candidates SET score_tier=?, flags_json=?, updated_at=? WHERE id=?`,
		tier, flagsJSON, time.Now().UTC(), id)
	return err
}

// ClearDNC removes the do-not-call flag and its reason. dnc_override is
// deliberately left untouched.
func (db *DB) ClearDNC(ctx context.Context, id int64) error {
	_, err := db.connection.ExecContext(ctx,
		`UPDATE candidates SET dnc=0, dnc_reason='', updated_at=? WHERE id=?`,
		time.Now().UTC(), id)
	return err
}

// CandidateName pairs an id with its stored name, for fuzzy linking.
type CandidateName struct {
	ID   int64
	Name string
}

// ListCandidateNames returns every candidate id and name.
func (db *DB) ListCandidateNames(ctx context.Context) ([]CandidateName, error) {
	rows, err := db.connection.QueryContext(ctx, `SELECT id, name FROM candidates`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CandidateName
	for rows.Next() {
		var cn CandidateName
		if err := rows.Scan(&cn.ID, &cn.Name); err != nil {
			return nil, err
		}
		out = append(out, cn)
	}
	return out, rows.Err()
}

// ListCandidates returns candidates matching the filter, most recently
// touched first.
func (db *DB) ListCandidates(ctx context.Context, f CandidateFilter) ([]*Candidate, error) {
	base := `SELECT ` + candidateColumns + ` FROM candidates`
	var where []string
	var args []any

	if f.ExcludeDNC {
		where = append(where, "dnc = 0")
	}
	if len(f.Statuses) > 0 {
		ph := strings.TrimSuffix(strings.Repeat("?,", len(f.Statuses)), ",")
		where = append(where, "status IN ("+ph+")")
		for _, s := range f.Statuses {
			args = append(args, s)
		}
	}
	if f.Campaign != "" {
		where = append(where, "campaign LIKE ?")
		args = append(args, "%"+f.Campaign+"%")
	}
	if f.Search != "" {
		q := "%" + strings.ToLower(f.Search) + "%"
		where = append(where, "(lower(name) LIKE ? OR lower(email) LIKE ? OR phone LIKE ?)")
		args = append(args, q, q, "%"+f.Search+"%")
	}
	if len(where) > 0 {
		base += " WHERE " + strings.Join(where, " AND ")
	}
	base += " ORDER BY updated_at DESC, created_at DESC"

	rows, err := db.connection.QueryContext(ctx, base, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetDashboardCounts returns the headline pipeline counts. Test records
// are excluded from reporting.
func (db *DB) GetDashboardCounts(ctx context.Context) (*DashboardCounts, error) {
	dc := &DashboardCounts{}
	queries := []struct {
		dst *int
		sql string
	}{
		{&dc.Total, `SELECT COUNT(*) FROM candidates WHERE is_test=0`},
		{&dc.New, `SELECT COUNT(*) FROM candidates WHERE status='New' AND dnc=0 AND is_test=0`},
		{&dc.Interviewed, `SELECT COUNT(*) FROM candidates WHERE status='Interviewed' AND is_test=0`},
		{&dc.Rejected, `SELECT COUNT(*) FROM candidates WHERE status='Rejected' AND is_test=0`},
		{&dc.Hired, `SELECT COUNT(*) FROM candidates WHERE status='Hired' AND is_test=0`},
		{&dc.DNC, `SELECT COUNT(*) FROM candidates WHERE dnc=1 AND is_test=0`},
	}
	for _, q := range queries {
		if err := db.connection.QueryRowContext(ctx, q.sql).Scan(q.dst); err != nil {
			return nil, err
		}
	}
	return dc, nil
}
