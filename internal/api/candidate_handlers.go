package api

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"pulsehire/internal/cv"
	"pulsehire/internal/scoring"
	"pulsehire/internal/storage"
)

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil && id > 0
}

// ListCandidatesHandler lists candidates
// @Summary List candidates
// @Description Filter candidates by status, campaign and free-text search
// @Tags candidates
// @Produce json
// @Param status query string false "Comma-separated statuses"
// @Param campaign query string false "Campaign name contains"
// @Param search query string false "Matches name, email or phone"
// @Param include_dnc query bool false "Include DNC-flagged candidates"
// @Success 200 {array} storage.Candidate
// @Router /candidates [get]
func (a *API) ListCandidatesHandler(w http.ResponseWriter, r *http.Request) {
	f := storage.CandidateFilter{
		Campaign:   r.URL.Query().Get("campaign"),
		Search:     r.URL.Query().Get("search"),
		ExcludeDNC: r.URL.Query().Get("include_dnc") != "true",
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			st := storage.Status(strings.TrimSpace(s))
			if !st.Valid() {
				writeError(w, http.StatusBadRequest, "unknown status: "+s)
				return
			}
			f.Statuses = append(f.Statuses, st)
		}
	}
	candidates, err := a.db.ListCandidates(r.Context(), f)
	if err != nil {
		log.WithError(err).Error("list candidates")
		writeError(w, http.StatusInternalServerError, "list failed")
		return
	}
	if candidates == nil {
		candidates = []*storage.Candidate{}
	}
	writeJSON(w, http.StatusOK, candidates)
}

// GetCandidateHandler returns one candidate file
// @Summary Get candidate
// @Description Candidate record with attachments and test scores
// @Tags candidates
// @Produce json
// @Param id path int true "Candidate ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /candidates/{id} [get]
func (a *API) GetCandidateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}
	cand, err := a.db.GetCandidate(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "candidate not found")
		return
	}
	attachments, err := a.db.ListAttachments(r.Context(), id)
	if err != nil {
		log.WithError(err).Error("list attachments")
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	scores, err := a.db.ListTestScores(r.Context(), id)
	if err != nil {
		log.WithError(err).Error("list test scores")
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"candidate":   cand,
		"attachments": attachments,
		"test_scores": scores,
	})
}

// UpdateCandidateHandler applies a manual edit
// @Summary Edit candidate fields
// @Tags candidates
// @Accept json
// @Produce json
// @Param id path int true "Candidate ID"
// @Param fields body map[string]interface{} true "Column -> value"
// @Success 200 {object} storage.Candidate
// @Router /candidates/{id} [patch]
func (a *API) UpdateCandidateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if st, ok := fields["status"].(string); ok && !storage.Status(st).Valid() {
		writeError(w, http.StatusBadRequest, "unknown status: "+st)
		return
	}
	if err := a.db.UpdateCandidateFields(r.Context(), id, fields); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	_ = a.db.Audit(r.Context(), 0, "candidate.edit", strconv.FormatInt(id, 10), fields)
	cand, err := a.db.GetCandidate(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "candidate not found")
		return
	}
	writeJSON(w, http.StatusOK, cand)
}

// RestoreDNCHandler clears the do-not-call flag
// @Summary Restore a DNC-flagged candidate
// @Description Clears dnc and dnc_reason; dnc_override is not modified
// @Tags candidates
// @Produce json
// @Param id path int true "Candidate ID"
// @Success 200 {object} storage.Candidate
// @Router /candidates/{id}/restore-dnc [post]
func (a *API) RestoreDNCHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}
	if err := a.engine.RestoreDNC(r.Context(), id); err != nil {
		log.WithError(err).Error("restore dnc")
		writeError(w, http.StatusInternalServerError, "restore failed")
		return
	}
	_ = a.db.Audit(r.Context(), 0, "candidate.restore_dnc", strconv.FormatInt(id, 10), nil)
	cand, err := a.db.GetCandidate(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "candidate not found")
		return
	}
	writeJSON(w, http.StatusOK, cand)
}

// UploadCVHandler uploads and scores a CV
// @Summary Upload a CV and score it
// @Description Extracts text, runs keyword scoring and tenure heuristics, persists tier and flags
// @Tags scoring
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Candidate ID"
// @Param file formData file true "CV file (PDF, DOCX, DOC, RTF, ODT or plain text)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /candidates/{id}/cv [post]
func (a *API) UploadCVHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}
	if _, err := a.db.GetCandidate(r.Context(), id); err != nil {
		writeError(w, http.StatusNotFound, "candidate not found")
		return
	}

	data, filename, ok := a.readUpload(w, r)
	if !ok {
		return
	}

	// Persist the original file regardless of how extraction goes.
	stored := uuid.New().String() + strings.ToLower(filepath.Ext(filename))
	path := filepath.Join(a.uploadsDir, stored)
	if err := os.MkdirAll(a.uploadsDir, 0o755); err != nil {
		log.WithError(err).Error("create uploads dir")
		writeError(w, http.StatusInternalServerError, "store upload failed")
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.WithError(err).Error("store uploaded CV")
		writeError(w, http.StatusInternalServerError, "store upload failed")
		return
	}
	if _, err := a.db.AddAttachment(r.Context(), &storage.Attachment{
		CandidateID: id,
		Filename:    filename,
		Path:        path,
		DocType:     storage.DocCV,
	}); err != nil {
		log.WithError(err).Error("record attachment")
		writeError(w, http.StatusInternalServerError, "attachment failed")
		return
	}

	text, warning := cv.ExtractText(filename, data)
	if warning != "" {
		log.Warn(warning)
	}

	cfg, err := a.loadScoringConfig(r.Context())
	if err != nil {
		log.WithError(err).Error("load scoring config")
		writeError(w, http.StatusInternalServerError, "scoring config failed")
		return
	}
	tier, flags := scoring.ScoreCV(text, cfg)

	flagsJSON, err := json.Marshal(flags)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "encode flags")
		return
	}
	if err := a.db.SetCandidateScore(r.Context(), id, storage.ScoreTier(tier), string(flagsJSON)); err != nil {
		log.WithError(err).Error("persist score")
		writeError(w, http.StatusInternalServerError, "persist score failed")
		return
	}

	log.WithFields(map[string]any{
		"candidate": id, "tier": tier, "score_pct": flags.ScorePct,
	}).Info("CV scored")

	writeJSON(w, http.StatusOK, map[string]any{
		"candidate_id": id,
		"tier":         tier,
		"flags":        flags,
		"contact":      scoring.ExtractContact(text),
		"warning":      warning,
	})
}
