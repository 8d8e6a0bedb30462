package storage

import (
	"context"
	"time"
)

// SaveCampaign inserts a campaign by name or updates it if it exists.
func (db *DB) SaveCampaign(ctx context.Context, c *Campaign) error {
	now := time.Now().UTC()
	_, err := db.connection.ExecContext(ctx, `
		INSERT INTO campaigns (name, hours_notes, requirements_text,
			req_need_weekends, req_need_evenings, req_need_weekdays, req_remote_ok,
			created_at, updated_at)
		VALUES (?,?,?,?,?,?,?,?,?)
		ON CONFLICT(name) DO UPDATE SET
			hours_notes = excluded.hours_notes,
			requirements_text = excluded.requirements_text,
			req_need_weekends = excluded.req_need_weekends,
			req_need_evenings = excluded.req_need_evenings,
			req_need_weekdays = excluded.req_need_weekdays,
			req_remote_ok = excluded.req_remote_ok,
			updated_at = excluded.updated_at`,
		c.Name, c.HoursNotes, c.RequirementsText,
		c.NeedWeekends, c.NeedEvenings, c.NeedWeekdays, c.RemoteOK, now, now)
	return err
}

// ListCampaigns returns all campaigns ordered by name.
func (db *DB) ListCampaigns(ctx context.Context) ([]*Campaign, error) {
	rows, err := db.connection.QueryContext(ctx, `
		SELECT id, name, hours_notes, requirements_text,
			req_need_weekends, req_need_evenings, req_need_weekdays, req_remote_ok,
			created_at, updated_at
		FROM campaigns ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Campaign
	for rows.Next() {
		c := &Campaign{}
		err := rows.Scan(&c.ID, &c.Name, &c.HoursNotes, &c.RequirementsText,
			&c.NeedWeekends, &c.NeedEvenings, &c.NeedWeekdays, &c.RemoteOK,
			&c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// AddDrive records a recruitment drive under a campaign.
func (db *DB) AddDrive(ctx context.Context, d *Drive) (int64, error) {
	d.CreatedAt = time.Now().UTC()
	res, err := db.connection.ExecContext(ctx, `
		INSERT INTO drives (campaign_id, start_date, cutoff_date, fte_target, notes, is_active, created_at)
		VALUES (?,?,?,?,?,?,?)`,
		d.CampaignID, d.StartDate, d.CutoffDate, d.FTETarget, d.Notes, d.IsActive, d.CreatedAt)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListDrives returns drives, optionally scoped to one campaign, newest first.
func (db *DB) ListDrives(ctx context.Context, campaignID int64) ([]*Drive, error) {
	q := `SELECT d.id, d.campaign_id, c.name, d.start_date, d.cutoff_date,
			d.fte_target, d.notes, d.is_active, d.created_at
		  FROM drives d JOIN campaigns c ON c.id = d.campaign_id`
	var args []any
	if campaignID != 0 {
		q += ` WHERE d.campaign_id = ?`
		args = append(args, campaignID)
	}
	q += ` ORDER BY d.start_date DESC`

	rows, err := db.connection.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Drive
	for rows.Next() {
		d := &Drive{}
		err := rows.Scan(&d.ID, &d.CampaignID, &d.Campaign, &d.StartDate, &d.CutoffDate,
			&d.FTETarget, &d.Notes, &d.IsActive, &d.CreatedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
