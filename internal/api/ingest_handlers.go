package api

import (
	"net/http"

	"pulsehire/internal/ingest"
	"pulsehire/internal/linkage"
)

// IngestFormsHandler ingests a candidate spreadsheet
// @Summary Ingest a forms export
// @Description Upserts each spreadsheet row into the candidate store. Columns are autodetected from the headers; pass map_<field> form values (e.g. map_email) to override.
// @Tags ingest
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "XLSX or CSV export"
// @Param campaign formData string false "Campaign to stamp on every row"
// @Param is_test formData bool false "Mark all rows as test data"
// @Success 200 {object} linkage.Summary
// @Failure 400 {object} map[string]string
// @Router /candidates/ingest [post]
func (a *API) IngestFormsHandler(w http.ResponseWriter, r *http.Request) {
	data, filename, ok := a.readUpload(w, r)
	if !ok {
		return
	}
	headers, records, err := ingest.ReadSheet(filename, data)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	fieldMap := linkage.AutodetectColumns(headers)
	// Overrides apply to every logical field, including ones
	// autodetection found no header for.
	for _, field := range linkage.RowFields {
		if v := r.FormValue("map_" + field); v != "" {
			fieldMap[field] = v
		}
	}

	campaign := r.FormValue("campaign")
	isTest := r.FormValue("is_test") == "true"

	sum, err := a.engine.IngestForms(r.Context(), headers, records, fieldMap, campaign, isTest)
	if err != nil {
		log.WithError(err).Error("ingest forms")
		writeError(w, http.StatusInternalServerError, "ingest failed")
		return
	}
	log.WithFields(map[string]any{
		"file": filename, "rows": sum.RowsSeen, "inserted": sum.Inserted,
		"updated": sum.Updated, "skipped": sum.Skipped,
	}).Info("forms ingested")
	writeJSON(w, http.StatusOK, sum)
}

// ImportTestGorillaHandler imports assessment results
// @Summary Import a TestGorilla results export
// @Description Links each result row to a candidate by email, falling back to fuzzy name match. Unmatched rows are reported, not stored.
// @Tags ingest
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "XLSX or CSV export"
// @Success 200 {object} ingest.ImportSummary
// @Failure 400 {object} map[string]string
// @Router /imports/testgorilla [post]
func (a *API) ImportTestGorillaHandler(w http.ResponseWriter, r *http.Request) {
	data, filename, ok := a.readUpload(w, r)
	if !ok {
		return
	}
	headers, records, err := ingest.ReadSheet(filename, data)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sum, err := a.importer.ImportTestGorilla(r.Context(), headers, records)
	if err != nil {
		log.WithError(err).Error("import testgorilla")
		writeError(w, http.StatusInternalServerError, "import failed")
		return
	}
	log.WithFields(map[string]any{
		"file": filename, "rows": sum.RowsSeen, "matched": sum.Matched, "unmatched": sum.Unmatched,
	}).Info("TestGorilla results imported")
	writeJSON(w, http.StatusOK, sum)
}

// ImportInterviewNotesHandler imports interview notes
// @Summary Import an interview notes export
// @Description Links each row to a candidate by fuzzy name match, updates status on a passing outcome and attaches the notes.
// @Tags ingest
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "XLSX or CSV export"
// @Success 200 {object} ingest.ImportSummary
// @Failure 400 {object} map[string]string
// @Router /imports/interview-notes [post]
func (a *API) ImportInterviewNotesHandler(w http.ResponseWriter, r *http.Request) {
	data, filename, ok := a.readUpload(w, r)
	if !ok {
		return
	}
	headers, records, err := ingest.ReadSheet(filename, data)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sum, err := a.importer.ImportInterviewNotes(r.Context(), headers, records)
	if err != nil {
		log.WithError(err).Error("import interview notes")
		writeError(w, http.StatusInternalServerError, "import failed")
		return
	}
	log.WithFields(map[string]any{
		"file": filename, "rows": sum.RowsSeen, "matched": sum.Matched, "unmatched": sum.Unmatched,
	}).Info("interview notes imported")
	writeJSON(w, http.StatusOK, sum)
}
