package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// UserRecord carries the credential material alongside the profile. Only the
// auth package reads the hash and salt.
type UserRecord struct {
	User
	PasswordHash string
	Salt         string
}

// CreateUser inserts a login. Role validity is enforced by the table check
// constraint.
func (db *DB) CreateUser(ctx context.Context, email, name, role, passwordHash, salt string) error {
	now := time.Now().UTC()
	_, err := db.connection.ExecContext(ctx,
		`INSERT INTO users (email, name, role, password_hash, salt, created_at, updated_at)
		 VALUES (?,?,?,?,?,?,?)`,
		email, name, role, passwordHash, salt, now, now)
	return err
}

// GetUserByEmail looks a login up case-insensitively. Returns nil when absent.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*UserRecord, error) {
	u := &UserRecord{}
	err := db.connection.QueryRowContext(ctx,
		`SELECT id, email, name, role, password_hash, salt FROM users WHERE lower(email) = lower(?)`,
		email).Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.PasswordHash, &u.Salt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// CountUsers reports how many logins exist, for first-run admin seeding.
func (db *DB) CountUsers(ctx context.Context) (int, error) {
	var n int
	err := db.connection.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

// Audit appends an audit-log entry. Best effort: failures are returned but
// callers generally log and move on.
func (db *DB) Audit(ctx context.Context, userID int64, action, target string, meta any) error {
	metaJSON := ""
	if meta != nil {
		raw, err := json.Marshal(meta)
		if err == nil {
			metaJSON = string(raw)
		}
	}
	var uid any
	if userID != 0 {
		uid = userID
	}
	_, err := db.connection.ExecContext(ctx,
		`INSERT INTO audit_logs (user_id, action, target, meta_json, at) VALUES (?,?,?,?,?)`,
		uid, action, target, metaJSON, time.Now().UTC())
	return err
}
