// Package linkage de-duplicates noisy spreadsheet candidate rows against
// the candidate store. Matching precedence is exact email, then exact
// name+phone; rows that can match on neither are skipped. Field merges and
// the automatic county DNC rule live here so every ingestion path applies
// them identically.
package linkage

import (
	"context"
	"regexp"
	"strings"

	"pulsehire/internal/storage"
)

// Action is the upsert outcome. The serialized names match what operators
// see in ingest summaries.
type Action string

const (
	ActionInserted         Action = "inserted"
	ActionUpdatedEmail     Action = "updated(email)"
	ActionUpdatedNamePhone Action = "updated(name+phone)"
	ActionSkipped          Action = "skipped"
)

// IsUpdate reports whether the action linked to an existing candidate.
func (a Action) IsUpdate() bool {
	return a == ActionUpdatedEmail || a == ActionUpdatedNamePhone
}

// AutoDNCReason is the reason recorded by the county rule. The restore and
// override logic key off DNC state, not this text, but it is a stable
// operator-facing string.
const AutoDNCReason = "outside of hiring area"

type Engine struct {
	db *storage.DB
}

func NewEngine(db *storage.DB) *Engine {
	return &Engine{db: db}
}

var spaceRe = regexp.MustCompile(`\s+`)

// Normalize trims and collapses internal whitespace. Spreadsheet cells
// arrive as strings already; absent values are the empty string.
func Normalize(s string) string {
	return spaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

// RowFields are the logical field names an ingestion row may carry.
// Callers mapping spreadsheet columns iterate this list.
var RowFields = []string{
	"name", "email", "phone", "county", "availability", "source",
	"completion_time", "notes", "campaign", "notice_period", "planned_leave",
}

// applyRow overwrites c's fields from the provided row values. Only keys
// present in the row are applied; a present-but-empty value still wins.
func applyRow(c *storage.Candidate, row map[string]string) {
	for _, f := range RowFields {
		v, ok := row[f]
		if !ok {
			continue
		}
		v = Normalize(v)
		switch f {
		case "name":
			c.Name = v
		case "email":
			c.Email = v
		case "phone":
			c.Phone = v
		case "county":
			c.County = v
		case "availability":
			c.Availability = v
		case "source":
			c.Source = v
		case "completion_time":
			c.CompletionTime = v
		case "notes":
			c.Notes = v
		case "campaign":
			c.Campaign = v
		case "notice_period":
			c.NoticePeriod = v
		case "planned_leave":
			c.PlannedLeave = v
		}
	}
}

// applyAutoDNC applies the blocked-county rule. It only ever sets DNC; a
// candidate in a permitted county keeps whatever DNC state they had, and an
// override suppresses the rule entirely.
func applyAutoDNC(c *storage.Candidate, blocked map[string]bool) {
	if c.DNCOverride {
		return
	}
	if blocked[strings.ToLower(Normalize(c.County))] {
		c.DNC = true
		c.DNCReason = AutoDNCReason
	}
}

// Upsert links one ingestion row to the candidate store. Matching is by
// case-insensitive email first, then case-insensitive name plus exact
// phone; a row usable by neither is skipped with id 0, never an error.
// The blocked-county set is re-read on every call.
func (e *Engine) Upsert(ctx context.Context, row map[string]string, isTest bool) (int64, Action, error) {
	email := Normalize(row["email"])
	name := Normalize(row["name"])
	phone := Normalize(row["phone"])

	blocked, err := e.db.ListBlockedCounties(ctx)
	if err != nil {
		return 0, ActionSkipped, err
	}

	if email != "" {
		id, ok, err := e.db.FindIDByEmail(ctx, email)
		if err != nil {
			return 0, ActionSkipped, err
		}
		if ok {
			if err := e.update(ctx, id, row, isTest, blocked); err != nil {
				return 0, ActionSkipped, err
			}
			return id, ActionUpdatedEmail, nil
		}
	}

	if name != "" && phone != "" {
		id, ok, err := e.db.FindIDByNamePhone(ctx, name, phone)
		if err != nil {
			return 0, ActionSkipped, err
		}
		if ok {
			if err := e.update(ctx, id, row, isTest, blocked); err != nil {
				return 0, ActionSkipped, err
			}
			return id, ActionUpdatedNamePhone, nil
		}
	}

	if email == "" && (name == "" || phone == "") {
		return 0, ActionSkipped, nil
	}

	c := &storage.Candidate{Status: storage.StatusNew, IsTest: isTest}
	applyRow(c, row)
	applyAutoDNC(c, blocked)
	id, err := e.db.InsertCandidate(ctx, c)
	if err != nil {
		return 0, ActionSkipped, err
	}
	return id, ActionInserted, nil
}

// update merges a row into an existing candidate. Provided fields overwrite
// unconditionally except is_test, which is sticky once set, and the DNC
// columns, which only the county rule and explicit operator actions touch.
func (e *Engine) update(ctx context.Context, id int64, row map[string]string, isTest bool, blocked map[string]bool) error {
	c, err := e.db.GetCandidate(ctx, id)
	if err != nil {
		return err
	}
	applyRow(c, row)
	c.IsTest = c.IsTest || isTest
	applyAutoDNC(c, blocked)
	return e.db.UpdateCandidate(ctx, c)
}

// RestoreDNC clears the do-not-call flag and its reason unconditionally.
// dnc_override is left as it was: restoring a candidate is independent of
// whether the county rule may flag them again later.
func (e *Engine) RestoreDNC(ctx context.Context, id int64) error {
	return e.db.ClearDNC(ctx, id)
}

// Summary aggregates one bulk ingestion run.
type Summary struct {
	RowsSeen int `json:"rows_seen"`
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
}

// IngestForms applies Upsert to each record in order. Processing is
// sequential on purpose: a row inserted early in the batch must be visible
// as a match target for later rows. fieldMap maps logical field names to
// spreadsheet headers; unmapped fields are simply absent from the row.
func (e *Engine) IngestForms(ctx context.Context, headers []string, records [][]string, fieldMap map[string]string, campaign string, isTest bool) (Summary, error) {
	col := make(map[string]int, len(headers))
	for i, h := range headers {
		col[h] = i
	}

	var sum Summary
	for _, rec := range records {
		row := map[string]string{}
		for field, header := range fieldMap {
			if header == "" {
				continue
			}
			idx, ok := col[header]
			if !ok || idx >= len(rec) {
				continue
			}
			row[field] = rec[idx]
		}
		if campaign != "" {
			row["campaign"] = campaign
		}

		_, action, err := e.Upsert(ctx, row, isTest)
		if err != nil {
			return sum, err
		}
		sum.RowsSeen++
		switch {
		case action == ActionInserted:
			sum.Inserted++
		case action.IsUpdate():
			sum.Updated++
		default:
			sum.Skipped++
		}
	}
	return sum, nil
}

// ApplyBlockedCounties re-runs the county rule over the whole candidate
// store and returns how many candidates it newly flagged. Used after an
// operator edits the blocked list; overrides and already-flagged
// candidates are left alone.
func (e *Engine) ApplyBlockedCounties(ctx context.Context) (int, error) {
	blocked, err := e.db.ListBlockedCounties(ctx)
	if err != nil {
		return 0, err
	}
	candidates, err := e.db.ListCandidates(ctx, storage.CandidateFilter{})
	if err != nil {
		return 0, err
	}
	flagged := 0
	for _, c := range candidates {
		if c.DNC {
			continue
		}
		applyAutoDNC(c, blocked)
		if !c.DNC {
			continue
		}
		if err := e.db.UpdateCandidate(ctx, c); err != nil {
			return flagged, err
		}
		flagged++
	}
	return flagged, nil
}
