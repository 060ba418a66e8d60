// internal/api/sites.go
//
// Brand endpoints: the public branding/legal payload for the resolved
// site, and the admin settings editor behind it.
package api

import (
	"net/http"

	"github.com/nessdigital/webcore/internal/activity"
	"github.com/nessdigital/webcore/internal/metrics"
	"github.com/nessdigital/webcore/internal/site"
)

// currentSite serves the branding record for the requesting host.
func (h *Handler) currentSite(w http.ResponseWriter, r *http.Request) {
	rec := site.FromContext(r.Context())
	if rec == nil {
		writeError(w, "unknown site", http.StatusNotFound)
		return
	}
	writeJSON(w, rec, http.StatusOK)
}

// getSettings returns the editable fields of the resolved site.
func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	rec := site.FromContext(r.Context())
	if rec == nil {
		writeError(w, "unknown site", http.StatusNotFound)
		return
	}

	writeJSON(w, site.Settings{
		Name:           rec.Name,
		PrimaryColor:   rec.PrimaryColor,
		SecondaryColor: rec.SecondaryColor,
		LinkedinURL:    rec.LinkedinURL,
		InstagramURL:   rec.InstagramURL,
		ContactEmail:   rec.ContactEmail,
	}, http.StatusOK)
}

// putSettings updates the resolved site's row and refreshes the
// registry snapshot so the change is visible immediately.
func (h *Handler) putSettings(w http.ResponseWriter, r *http.Request) {
	rec := site.FromContext(r.Context())
	if rec == nil {
		writeError(w, "unknown site", http.StatusNotFound)
		return
	}

	var s site.Settings
	if !decodeValid(w, r, &s) {
		return
	}

	if err := site.UpdateSettings(r.Context(), h.DB, rec.Code, s); err != nil {
		writeError(w, "save failed", http.StatusInternalServerError)
		return
	}
	if err := h.Registry.Reload(r.Context()); err != nil {
		// The ticker will pick the change up; the write itself stuck.
		writeJSON(w, map[string]string{"status": "saved, refresh pending"}, http.StatusOK)
		return
	}

	metrics.AdminMutationsTotal.WithLabelValues("site", activity.ActionUpdate).Inc()
	h.recordActivity(r, activity.ActionUpdate, "site", rec.Code, "update settings: "+s.Name)

	writeJSON(w, map[string]string{"status": "saved"}, http.StatusOK)
}
