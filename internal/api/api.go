package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"pulsehire/internal/auth"
	"pulsehire/internal/ingest"
	"pulsehire/internal/linkage"
	"pulsehire/internal/scoring"
	"pulsehire/internal/storage"
)

var log = logrus.New()

type API struct {
	db         *storage.DB
	engine     *linkage.Engine
	importer   *ingest.Importer
	auth       *auth.Service
	uploadsDir string
}

func NewAPI(db *storage.DB, uploadsDir string) *API {
	engine := linkage.NewEngine(db)
	return &API{
		db:         db,
		engine:     engine,
		importer:   ingest.NewImporter(db, engine, uploadsDir),
		auth:       auth.NewService(db),
		uploadsDir: uploadsDir,
	}
}

// scoringSettingsKey holds the operator-tunable scoring knobs in the
// settings table.
const scoringSettingsKey = "scoring"

// employersCategory is the keyword category that feeds the call-centre
// flag; it never contributes to the coverage score.
const employersCategory = "Employers (call centres)"

// defaultPreviousEmployers are the known-prior-employer name variants used
// until an operator configures their own.
var defaultPreviousEmployers = []string{"relatecare", "relate care", "rigney dolphin", "rigneydolphin"}

// ScoringSettings is the persisted, operator-editable scoring
// configuration. Zero values defer to the scoring package defaults.
type ScoringSettings struct {
	Weights map[string]float64 `json:"weights,omitempty"`
	// Pointer thresholds so an explicit 0 survives; nil means default.
	HighThreshold     *float64 `json:"high_threshold,omitempty"`
	MediumThreshold   *float64 `json:"medium_threshold,omitempty"`
	ShortStintMonths  int      `json:"short_stint_months,omitempty"`
	CautionCount      int      `json:"caution_count,omitempty"`
	PreviousEmployers []string `json:"previous_employers,omitempty"`
}

// loadScoringConfig assembles the scoring configuration from the live
// keyword and settings tables. Called per scoring request so operator edits
// take effect immediately.
func (a *API) loadScoringConfig(ctx context.Context) (scoring.Config, error) {
	byCat, err := a.db.KeywordsByCategory(ctx)
	if err != nil {
		return scoring.Config{}, err
	}
	employers := byCat[employersCategory]
	delete(byCat, employersCategory)

	var s ScoringSettings
	if _, err := a.db.GetSetting(ctx, scoringSettingsKey, &s); err != nil {
		return scoring.Config{}, err
	}
	prev := s.PreviousEmployers
	if len(prev) == 0 {
		prev = defaultPreviousEmployers
	}
	return scoring.Config{
		Keywords:            byCat,
		Weights:             s.Weights,
		HighThreshold:       s.HighThreshold,
		MediumThreshold:     s.MediumThreshold,
		ShortStintMonths:    s.ShortStintMonths,
		CautionCount:        s.CautionCount,
		PreviousEmployers:   prev,
		CallCentreEmployers: employers,
	}, nil
}

// maxUploadBytes caps multipart uploads; CVs and spreadsheets are small.
const maxUploadBytes = 32 << 20

// readUpload pulls the "file" part out of a multipart request. On failure it
// writes the error response itself and returns ok=false.
func (a *API) readUpload(w http.ResponseWriter, r *http.Request) (data []byte, filename string, ok bool) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return nil, "", false
	}
	f, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return nil, "", false
	}
	defer f.Close()
	data, err = io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read upload failed")
		return nil, "", false
	}
	return data, header.Filename, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("write response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
