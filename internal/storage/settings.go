package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
)

// Settings, blocked counties and keywords are operator-editable lookup
// tables. The engines re-read them on every invocation, so there is no
// caching here.

// GetSetting unmarshals the JSON value stored under key into dst. It
// returns false when the key is absent, leaving dst untouched.
func (db *DB) GetSetting(ctx context.Context, key string, dst any) (bool, error) {
	var raw string
	err := db.connection.QueryRowContext(ctx,
		`SELECT value_json FROM settings WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(raw), dst)
}

// SetSetting stores value as JSON under key, replacing any previous value.
func (db *DB) SetSetting(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	_, err = db.connection.ExecContext(ctx,
		`INSERT OR REPLACE INTO settings(key, value_json) VALUES(?,?)`, key, string(raw))
	return err
}

// ListBlockedCounties returns the hiring-area exclusion set, lowercased.
func (db *DB) ListBlockedCounties(ctx context.Context) (map[string]bool, error) {
	rows, err := db.connection.QueryContext(ctx, `SELECT county FROM blocked_counties`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blocked := map[string]bool{}
	for rows.Next() {
		var county string
		if err := rows.Scan(&county); err != nil {
			return nil, err
		}
		blocked[strings.ToLower(strings.TrimSpace(county))] = true
	}
	return blocked, rows.Err()
}

// ReplaceBlockedCounties swaps the whole exclusion list.
func (db *DB) ReplaceBlockedCounties(ctx context.Context, counties []string) error {
	if _, err := db.connection.ExecContext(ctx, `DELETE FROM blocked_counties`); err != nil {
		return err
	}
	for _, county := range counties {
		county = strings.TrimSpace(county)
		if county == "" {
			continue
		}
		_, err := db.connection.ExecContext(ctx,
			`INSERT OR IGNORE INTO blocked_counties(county) VALUES(?)`, county)
		if err != nil {
			return err
		}
	}
	return nil
}

// ListKeywords returns all keywords ordered by category then term.
func (db *DB) ListKeywords(ctx context.Context) ([]*Keyword, error) {
	rows, err := db.connection.QueryContext(ctx,
		`SELECT id, category, term, tier, notes FROM keywords ORDER BY category, term`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Keyword
	for rows.Next() {
		k := &Keyword{}
		if err := rows.Scan(&k.ID, &k.Category, &k.Term, &k.Tier, &k.Notes); err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

// KeywordsByCategory groups the current keyword terms per category.
func (db *DB) KeywordsByCategory(ctx context.Context) (map[string][]string, error) {
	kws, err := db.ListKeywords(ctx)
	if err != nil {
		return nil, err
	}
	byCat := map[string][]string{}
	for _, k := range kws {
		byCat[k.Category] = append(byCat[k.Category], k.Term)
	}
	return byCat, nil
}

// AddKeyword inserts a keyword; duplicate (category, term) pairs are ignored.
func (db *DB) AddKeyword(ctx context.Context, k *Keyword) error {
	if k.Tier < 1 || k.Tier > 3 {
		k.Tier = 2
	}
	_, err := db.connection.ExecContext(ctx,
		`INSERT OR IGNORE INTO keywords(category, term, tier, notes) VALUES(?,?,?,?)`,
		k.Category, k.Term, k.Tier, k.Notes)
	return err
}

// DeleteKeyword removes a keyword by id.
func (db *DB) DeleteKeyword(ctx context.Context, id int64) error {
	_, err := db.connection.ExecContext(ctx, `DELETE FROM keywords WHERE id = ?`, id)
	return err
}
