// internal/api/login.go
//
// Session endpoints.
//
// Notes
// -----
// • Failed logins land in the activity log with the attempted username,
//   which is enough for the occasional "who keeps trying admin/admin"
//   question.
// • The response body never distinguishes unknown user from wrong
//   password.
package api

import (
	"net/http"

	"github.com/nessdigital/webcore/internal/activity"
	"github.com/nessdigital/webcore/internal/auth"
)

type loginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=128"`
}

type loginResponse struct {
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
}

// login verifies credentials and sets the session cookie.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeValid(w, r, &req) {
		return
	}

	u, err := auth.Verify(r.Context(), h.DB, req.Username, req.Password)
	if err != nil {
		h.Recorder.Record(r.Context(), 0, activity.ActionLogin, "user", req.Username, "login failed")
		writeError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	if err := h.Sessions.Issue(w, r, u); err != nil {
		writeError(w, "session error", http.StatusInternalServerError)
		return
	}

	h.Recorder.Record(r.Context(), u.ID, activity.ActionLogin, "user", u.Username, "login ok")
	writeJSON(w, loginResponse{Username: u.Username, Admin: u.IsAdmin}, http.StatusOK)
}

// logout clears the cookie.  Always succeeds.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Clear(w)
	writeJSON(w, map[string]string{"status": "logged out"}, http.StatusOK)
}
