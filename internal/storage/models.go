package storage

import "time"

// Status is the candidate workflow state. Values are stored verbatim, so the
// serialized names must not change.
type Status string

const (
	StatusNew         Status = "New"
	StatusApplied     Status = "Applied"
	StatusCalled      Status = "Called"
	StatusNoAnswer    Status = "No Answer"
	StatusVoicemail   Status = "Voicemail"
	StatusInterviewed Status = "Interviewed"
	StatusRejected    Status = "Rejected"
	StatusHired       Status = "Hired"
	StatusDNC         Status = "DNC"
)

// Statuses lists every valid workflow state, in pipeline order.
var Statuses = []Status{
	StatusNew, StatusApplied, StatusCalled, StatusNoAnswer, StatusVoicemail,
	StatusInterviewed, StatusRejected, StatusHired, StatusDNC,
}

// Valid reports whether s is a known workflow state.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// ScoreTier is the coarse fit bucket assigned by CV scoring.
type ScoreTier string

const (
	TierHigh   ScoreTier = "High"
	TierMedium ScoreTier = "Medium"
	TierLow    ScoreTier = "Low"
)

// DocType classifies an attachment.
type DocType string

const (
	DocCV             DocType = "CV"
	DocVisa           DocType = "Visa"
	DocSpeedTest      DocType = "Speed Test"
	DocInterviewNotes DocType = "Interview Notes"
	DocOther          DocType = "Other"
)

// Candidate is the central entity: one row per unique applicant.
type Candidate struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	County         string    `json:"county"`
	Availability   string    `json:"availability"`
	Source         string    `json:"source"`
	CompletionTime string    `json:"completion_time"`
	Notes          string    `json:"notes"`
	Status         Status    `json:"status"`
	LastAttempt    string    `json:"last_attempt"`
	InterviewDT    string    `json:"interview_dt"`
	Campaign       string    `json:"campaign"`
	NoticePeriod   string    `json:"notice_period"`
	PlannedLeave   string    `json:"planned_leave"`
	DNC            bool      `json:"dnc"`
	DNCReason      string    `json:"dnc_reason"`
	DNCOverride    bool      `json:"dnc_override"`
	IsTest         bool      `json:"is_test"`
	ScoreTier      ScoreTier `json:"score_tier,omitempty"`
	FlagsJSON      string    `json:"flags_json,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Attachment is a file owned by exactly one candidate. Never mutated.
type Attachment struct {
	ID          int64     `json:"id"`
	CandidateID int64     `json:"candidate_id"`
	Filename    string    `json:"filename"`
	Path        string    `json:"path"`
	DocType     DocType   `json:"doc_type"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// TestScore is an append-only assessment result imported for a candidate.
type TestScore struct {
	ID          int64     `json:"id"`
	CandidateID int64     `json:"candidate_id"`
	Provider    string    `json:"provider"`
	TestName    string    `json:"test_name"`
	ScoreRaw    string    `json:"score_raw"`
	ScorePct    *float64  `json:"score_pct"`
	ImportedAt  time.Time `json:"imported_at"`
}

// Keyword is one scoring phrase. Category groups phrases into the buckets
// the scorer averages over; tier is the 1=must-have .. 3=nice-to-have
// priority shown to operators.
type Keyword struct {
	ID       int64  `json:"id"`
	Category string `json:"category"`
	Term     string `json:"term"`
	Tier     int    `json:"tier"`
	Notes    string `json:"notes"`
}

// Campaign describes a hiring campaign candidates are attributed to.
type Campaign struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	HoursNotes       string    `json:"hours_notes"`
	RequirementsText string    `json:"requirements_text"`
	NeedWeekends     bool      `json:"req_need_weekends"`
	NeedEvenings     bool      `json:"req_need_evenings"`
	NeedWeekdays     bool      `json:"req_need_weekdays"`
	RemoteOK         bool      `json:"req_remote_ok"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Drive is one recruitment drive running under a campaign.
type Drive struct {
	ID         int64     `json:"id"`
	CampaignID int64     `json:"campaign_id"`
	Campaign   string    `json:"campaign,omitempty"`
	StartDate  string    `json:"start_date"`
	CutoffDate string    `json:"cutoff_date"`
	FTETarget  int       `json:"fte_target"`
	Notes      string    `json:"notes"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// User is a portal login. Role gates nothing beyond the basic check.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// CandidateFilter narrows ListCandidates.
type CandidateFilter struct {
	Statuses   []Status
	Campaign   string
	Search     string
	ExcludeDNC bool
}

// DashboardCounts are the headline pipeline numbers.
type DashboardCounts struct {
	Total       int `json:"total"`
	New         int `json:"new"`
	Interviewed int `json:"interviewed"`
	Rejected    int `json:"rejected"`
	Hired       int `json:"hired"`
	DNC         int `json:"dnc"`
}
