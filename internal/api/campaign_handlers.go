package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"pulsehire/internal/storage"
)

// ListCampaignsHandler lists campaigns
// @Summary List campaigns
// @Tags campaigns
// @Produce json
// @Success 200 {array} storage.Campaign
// @Router /campaigns [get]
func (a *API) ListCampaignsHandler(w http.ResponseWriter, r *http.Request) {
	campaigns, err := a.db.ListCampaigns(r.Context())
	if err != nil {
		log.WithError(err).Error("list campaigns")
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	writeJSON(w, http.StatusOK, campaigns)
}

// SaveCampaignHandler creates or updates a campaign
// @Summary Save a campaign
// @Description Campaigns are keyed by name; posting an existing name updates it.
// @Tags campaigns
// @Accept json
// @Produce json
// @Param campaign body storage.Campaign true "Campaign"
// @Success 200 {object} storage.Campaign
// @Failure 400 {object} map[string]string
// @Router /campaigns [post]
func (a *API) SaveCampaignHandler(w http.ResponseWriter, r *http.Request) {
	var c storage.Campaign
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if c.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if err := a.db.SaveCampaign(r.Context(), &c); err != nil {
		log.WithError(err).Error("save campaign")
		writeError(w, http.StatusInternalServerError, "save failed")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// ListDrivesHandler lists hiring drives
// @Summary List hiring drives
// @Tags campaigns
// @Produce json
// @Param campaign_id query int false "Limit to one campaign"
// @Success 200 {array} storage.Drive
// @Router /drives [get]
func (a *API) ListDrivesHandler(w http.ResponseWriter, r *http.Request) {
	var campaignID int64
	if raw := r.URL.Query().Get("campaign_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid campaign_id")
			return
		}
		campaignID = id
	}
	drives, err := a.db.ListDrives(r.Context(), campaignID)
	if err != nil {
		log.WithError(err).Error("list drives")
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	writeJSON(w, http.StatusOK, drives)
}

// AddDriveHandler creates a hiring drive
// @Summary Add a hiring drive
// @Tags campaigns
// @Accept json
// @Produce json
// @Param drive body storage.Drive true "Drive"
// @Success 201 {object} storage.Drive
// @Failure 400 {object} map[string]string
// @Router /drives [post]
func (a *API) AddDriveHandler(w http.ResponseWriter, r *http.Request) {
	var d storage.Drive
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if d.CampaignID == 0 {
		writeError(w, http.StatusBadRequest, "campaign_id is required")
		return
	}
	id, err := a.db.AddDrive(r.Context(), &d)
	if err != nil {
		log.WithError(err).Error("add drive")
		writeError(w, http.StatusInternalServerError, "save failed")
		return
	}
	d.ID = id
	writeJSON(w, http.StatusCreated, d)
}
