package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/swagger/", httpSwagger.Handler())

	// Health check (for container orchestration probes).
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	mux.HandleFunc("POST /api/auth/login", a.LoginHandler)

	// Candidates
	mux.HandleFunc("POST /api/candidates/ingest", a.IngestFormsHandler)
	mux.HandleFunc("GET /api/candidates", a.ListCandidatesHandler)
	mux.HandleFunc("GET /api/candidates/{id}", a.GetCandidateHandler)
	mux.HandleFunc("PATCH /api/candidates/{id}", a.UpdateCandidateHandler)
	mux.HandleFunc("POST /api/candidates/{id}/restore-dnc", a.RestoreDNCHandler)
	mux.HandleFunc("POST /api/candidates/{id}/cv", a.UploadCVHandler)

	// Bulk imports
	mux.HandleFunc("POST /api/imports/testgorilla", a.ImportTestGorillaHandler)
	mux.HandleFunc("POST /api/imports/interview-notes", a.ImportInterviewNotesHandler)

	// Campaigns and drives
	mux.HandleFunc("GET /api/campaigns", a.ListCampaignsHandler)
	mux.HandleFunc("POST /api/campaigns", a.SaveCampaignHandler)
	mux.HandleFunc("GET /api/drives", a.ListDrivesHandler)
	mux.HandleFunc("POST /api/drives", a.AddDriveHandler)

	// Operator configuration
	mux.HandleFunc("GET /api/admin/blocked-counties", a.GetBlockedCountiesHandler)
	mux.HandleFunc("PUT /api/admin/blocked-counties", a.PutBlockedCountiesHandler)
	mux.HandleFunc("POST /api/admin/blocked-counties/apply", a.ApplyDNCHandler)
	mux.HandleFunc("GET /api/admin/keywords", a.ListKeywordsHandler)
	mux.HandleFunc("POST /api/admin/keywords", a.AddKeywordHandler)
	mux.HandleFunc("DELETE /api/admin/keywords/{id}", a.DeleteKeywordHandler)
	mux.HandleFunc("GET /api/admin/scoring-settings", a.GetScoringSettingsHandler)
	mux.HandleFunc("PUT /api/admin/scoring-settings", a.PutScoringSettingsHandler)

	mux.HandleFunc("GET /api/dashboard", a.DashboardHandler)
	mux.HandleFunc("GET /api/compliance", a.ComplianceHandler)

	return mux
}
