package api

import (
	"encoding/json"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginHandler verifies credentials
// @Summary Log in
// @Description Verifies email and password against the user table
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Email and password"
// @Success 200 {object} storage.User
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (a *API) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	user, err := a.auth.Verify(r.Context(), req.Email, req.Password)
	if err != nil {
		log.WithError(err).Error("verify credentials")
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}
	if user == nil {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	_ = a.db.Audit(r.Context(), user.ID, "auth.login", user.Email, nil)
	writeJSON(w, http.StatusOK, user)
}
