package api

import (
	"encoding/json"
	"net/http"
	"sort"

	"pulsehire/internal/storage"
)

// GetBlockedCountiesHandler lists the blocked counties
// @Summary List blocked counties
// @Tags admin
// @Produce json
// @Success 200 {array} string
// @Router /admin/blocked-counties [get]
func (a *API) GetBlockedCountiesHandler(w http.ResponseWriter, r *http.Request) {
	blocked, err := a.db.ListBlockedCounties(r.Context())
	if err != nil {
		log.WithError(err).Error("list blocked counties")
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	counties := make([]string, 0, len(blocked))
	for c := range blocked {
		counties = append(counties, c)
	}
	sort.Strings(counties)
	writeJSON(w, http.StatusOK, counties)
}

// PutBlockedCountiesHandler replaces the blocked county list
// @Summary Replace the blocked county list
// @Description Replaces the list wholesale. Existing DNC flags are not touched; use the apply endpoint to re-run the rule.
// @Tags admin
// @Accept json
// @Produce json
// @Param counties body []string true "County names"
// @Success 200 {array} string
// @Router /admin/blocked-counties [put]
func (a *API) PutBlockedCountiesHandler(w http.ResponseWriter, r *http.Request) {
	var counties []string
	if err := json.NewDecoder(r.Body).Decode(&counties); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := a.db.ReplaceBlockedCounties(r.Context(), counties); err != nil {
		log.WithError(err).Error("replace blocked counties")
		writeError(w, http.StatusInternalServerError, "save failed")
		return
	}
	_ = a.db.Audit(r.Context(), 0, "admin.blocked_counties", "", map[string]any{"counties": counties})
	a.GetBlockedCountiesHandler(w, r)
}

// ApplyDNCHandler re-runs the county rule
// @Summary Re-apply the blocked-county rule to all candidates
// @Description Flags candidates whose county is on the blocked list. Overrides and already-flagged candidates are untouched.
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]int
// @Router /admin/blocked-counties/apply [post]
func (a *API) ApplyDNCHandler(w http.ResponseWriter, r *http.Request) {
	flagged, err := a.engine.ApplyBlockedCounties(r.Context())
	if err != nil {
		log.WithError(err).Error("apply blocked counties")
		writeError(w, http.StatusInternalServerError, "apply failed")
		return
	}
	log.WithField("flagged", flagged).Info("blocked-county rule applied")
	writeJSON(w, http.StatusOK, map[string]int{"flagged": flagged})
}

// ListKeywordsHandler lists scoring keywords
// @Summary List scoring keywords
// @Tags admin
// @Produce json
// @Success 200 {array} storage.Keyword
// @Router /admin/keywords [get]
func (a *API) ListKeywordsHandler(w http.ResponseWriter, r *http.Request) {
	keywords, err := a.db.ListKeywords(r.Context())
	if err != nil {
		log.WithError(err).Error("list keywords")
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	writeJSON(w, http.StatusOK, keywords)
}

// AddKeywordHandler adds a scoring keyword
// @Summary Add a scoring keyword
// @Tags admin
// @Accept json
// @Produce json
// @Param keyword body storage.Keyword true "Category, term, tier, notes"
// @Success 201 {object} storage.Keyword
// @Failure 400 {object} map[string]string
// @Router /admin/keywords [post]
func (a *API) AddKeywordHandler(w http.ResponseWriter, r *http.Request) {
	var k storage.Keyword
	if err := json.NewDecoder(r.Body).Decode(&k); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if k.Category == "" || k.Term == "" {
		writeError(w, http.StatusBadRequest, "category and term are required")
		return
	}
	if err := a.db.AddKeyword(r.Context(), &k); err != nil {
		log.WithError(err).Error("add keyword")
		writeError(w, http.StatusInternalServerError, "save failed")
		return
	}
	writeJSON(w, http.StatusCreated, k)
}

// DeleteKeywordHandler removes a scoring keyword
// @Summary Delete a scoring keyword
// @Tags admin
// @Produce json
// @Param id path int true "Keyword ID"
// @Success 204
// @Router /admin/keywords/{id} [delete]
func (a *API) DeleteKeywordHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid keyword id")
		return
	}
	if err := a.db.DeleteKeyword(r.Context(), id); err != nil {
		log.WithError(err).Error("delete keyword")
		writeError(w, http.StatusInternalServerError, "delete failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetScoringSettingsHandler returns the scoring settings
// @Summary Get scoring settings
// @Tags admin
// @Produce json
// @Success 200 {object} ScoringSettings
// @Router /admin/scoring-settings [get]
func (a *API) GetScoringSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var s ScoringSettings
	if _, err := a.db.GetSetting(r.Context(), scoringSettingsKey, &s); err != nil {
		log.WithError(err).Error("get scoring settings")
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// PutScoringSettingsHandler replaces the scoring settings
// @Summary Replace scoring settings
// @Description Omitted thresholds fall back to built-in defaults at scoring time; an explicit 0 is kept.
// @Tags admin
// @Accept json
// @Produce json
// @Param settings body ScoringSettings true "Scoring settings"
// @Success 200 {object} ScoringSettings
// @Router /admin/scoring-settings [put]
func (a *API) PutScoringSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var s ScoringSettings
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	for _, th := range []*float64{s.HighThreshold, s.MediumThreshold} {
		if th != nil && (*th < 0 || *th > 100) {
			writeError(w, http.StatusBadRequest, "thresholds must be between 0 and 100")
			return
		}
	}
	if s.HighThreshold != nil && s.MediumThreshold != nil && *s.MediumThreshold > *s.HighThreshold {
		writeError(w, http.StatusBadRequest, "medium threshold must not exceed high threshold")
		return
	}
	if err := a.db.SetSetting(r.Context(), scoringSettingsKey, s); err != nil {
		log.WithError(err).Error("save scoring settings")
		writeError(w, http.StatusInternalServerError, "save failed")
		return
	}
	_ = a.db.Audit(r.Context(), 0, "admin.scoring_settings", "", s)
	writeJSON(w, http.StatusOK, s)
}

// DashboardHandler returns pipeline counts
// @Summary Pipeline dashboard counts
// @Tags dashboard
// @Produce json
// @Success 200 {object} storage.DashboardCounts
// @Router /dashboard [get]
func (a *API) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	counts, err := a.db.GetDashboardCounts(r.Context())
	if err != nil {
		log.WithError(err).Error("dashboard counts")
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

// complianceNotes is shown verbatim to operators handling candidate data.
var complianceNotes = []string{
	"Collect only the candidate data needed for recruitment decisions.",
	"Candidates flagged do-not-call must not be contacted until restored.",
	"Respect deletion requests: remove the candidate record and attachments.",
	"Test records (is_test) are excluded from reporting and must never be contacted.",
	"Attachment files contain personal data; restrict filesystem access accordingly.",
}

// ComplianceHandler returns data-handling guidance
// @Summary Data-handling guidance
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /compliance [get]
func (a *API) ComplianceHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"notes": complianceNotes})
}
