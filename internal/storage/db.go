package storage

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

type DB struct {
	connection *sql.DB
}

// NewDB opens (creating if needed) the SQLite database at path and brings
// the schema up to date.
func NewDB(path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	// SQLite serializes writers anyway; keep the pool small.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &DB{connection: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (db *DB) Close() {
	if err := db.connection.Close(); err != nil {
		log.Println("Error closing the database connection:", err)
	}
}

// GetConnection returns the underlying database connection for advanced queries.
func (db *DB) GetConnection() *sql.DB {
	return db.connection
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS candidates(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		county TEXT NOT NULL DEFAULT '',
		availability TEXT NOT NULL DEFAULT '',
		source TEXT NOT NULL DEFAULT '',
		completion_time TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'New',
		last_attempt TEXT NOT NULL DEFAULT '',
		interview_dt TEXT NOT NULL DEFAULT '',
		campaign TEXT NOT NULL DEFAULT '',
		notice_period TEXT NOT NULL DEFAULT '',
		planned_leave TEXT NOT NULL DEFAULT '',
		dnc INTEGER NOT NULL DEFAULT 0,
		dnc_reason TEXT NOT NULL DEFAULT '',
		dnc_override INTEGER NOT NULL DEFAULT 0,
		is_test INTEGER NOT NULL DEFAULT 0,
		score_tier TEXT NOT NULL DEFAULT '',
		flags_json TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	// The partial unique index enforces "at most one live row per normalized
	// email" at the storage layer; a racing duplicate insert fails here.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_cand_email
		ON candidates(lower(email)) WHERE email <> ''`,
	`CREATE INDEX IF NOT EXISTS idx_cand_name_phone
		ON candidates(lower(name), phone)`,
	`CREATE TABLE IF NOT EXISTS attachments(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		candidate_id INTEGER NOT NULL REFERENCES candidates(id),
		filename TEXT NOT NULL,
		path TEXT NOT NULL,
		doc_type TEXT NOT NULL DEFAULT 'Other',
		uploaded_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS test_scores(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		candidate_id INTEGER NOT NULL REFERENCES candidates(id),
		provider TEXT NOT NULL,
		test_name TEXT NOT NULL DEFAULT '',
		score_raw TEXT NOT NULL DEFAULT '',
		score_pct REAL,
		imported_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS blocked_counties(
		county TEXT PRIMARY KEY
	)`,
	`CREATE TABLE IF NOT EXISTS keywords(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		category TEXT NOT NULL,
		term TEXT NOT NULL,
		tier INTEGER NOT NULL DEFAULT 2,
		notes TEXT NOT NULL DEFAULT '',
		UNIQUE(category, term)
	)`,
	`CREATE TABLE IF NOT EXISTS settings(
		key TEXT PRIMARY KEY,
		value_json TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS campaigns(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		hours_notes TEXT NOT NULL DEFAULT '',
		requirements_text TEXT NOT NULL DEFAULT '',
		req_need_weekends INTEGER NOT NULL DEFAULT 0,
		req_need_evenings INTEGER NOT NULL DEFAULT 0,
		req_need_weekdays INTEGER NOT NULL DEFAULT 1,
		req_remote_ok INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS drives(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		campaign_id INTEGER NOT NULL REFERENCES campaigns(id),
		start_date TEXT NOT NULL DEFAULT '',
		cutoff_date TEXT NOT NULL DEFAULT '',
		fte_target INTEGER NOT NULL DEFAULT 0,
		notes TEXT NOT NULL DEFAULT '',
		is_active INTEGER NOT NULL DEFAULT 1,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		role TEXT NOT NULL CHECK(role IN ('admin','recruiter','hr','viewer')),
		password_hash TEXT NOT NULL,
		salt TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS audit_logs(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER,
		action TEXT NOT NULL,
		target TEXT NOT NULL DEFAULT '',
		meta_json TEXT NOT NULL DEFAULT '',
		at TIMESTAMP NOT NULL
	)`,
}

func (db *DB) migrate() error {
	for _, stmt := range schema {
		if _, err := db.connection.Exec(stmt); err != nil {
			return err
		}
	}
	return db.seedKeywords()
}

// seedKeywords loads the default keyword set the first time the portal
// starts with an empty keywords table. Operators edit these live afterwards.
func (db *DB) seedKeywords() error {
	var n int
	if err := db.connection.QueryRow(`SELECT COUNT(*) FROM keywords`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for category, terms := range SeedKeywords {
		for _, term := range terms {
			_, err := db.connection.Exec(
				`INSERT OR IGNORE INTO keywords(category, term, tier) VALUES(?,?,2)`,
				category, term)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// SeedKeywords is the stock customer-service keyword sheet. The employers
// category feeds the call-centre flag and is excluded from the score.
var SeedKeywords = map[string][]string{
	"Skills": {
		"Customer Service", "Customer Support", "Client Relations", "Customer Satisfaction", "Customer Experience",
		"Communication Skills", "Verbal Communication", "Written Communication", "Active Listening", "Interpersonal Skills",
		"Conflict Resolution", "Problem-Solving Skills", "Problem Resolution", "Troubleshooting", "Critical Thinking",
		"Decision Making", "Analytical Skills",
	},
	"Tools": {
		"CRM Software", "Salesforce", "Zendesk", "Microsoft Office Suite", "Word", "Excel", "PowerPoint",
		"Email Support", "Live Chat Support", "Technical Support",
	},
	"Attributes": {"Patience", "Empathy", "Adaptability", "Professionalism", "Teamwork"},
	"Metrics": {
		"CSAT", "Customer Satisfaction Score", "NPS", "Net Promoter Score", "FCR", "First Call Resolution",
		"AHT", "Average Handle Time", "SLA", "Service Level Agreement",
	},
	"Action Verbs": {"Assisted", "Resolved", "Managed", "Handled", "Supported"},
	"Employers (call centres)": {
		"Infosys", "Eishtec", "Concentrix", "FIS", "Abtran", "Covalen", "Voxpro", "Call Centre Solutions",
		"RelateCare", "Relate care", "Rigney Dolphin", "Rigneydolphin", "RigneyDolphin",
	},
}
