// internal/api/admin.go
//
// Dashboard endpoints: entity counts and the recent-activity feed.
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/nessdigital/webcore/internal/content"
	"github.com/nessdigital/webcore/internal/job"
	"github.com/nessdigital/webcore/internal/news"
)

type countsResponse struct {
	Contents int `json:"contents"`
	Jobs     int `json:"jobs"`
	News     int `json:"news"`
	Activity int `json:"activity"`
}

// adminCounts aggregates row counts for the dashboard cards.  Activity
// is scoped to the last 30 days; the others are totals.
func (h *Handler) adminCounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	contents, err := content.Count(ctx, h.DB)
	if err != nil {
		writeError(w, "count failed", http.StatusInternalServerError)
		return
	}
	jobs, err := job.Count(ctx, h.DB)
	if err != nil {
		writeError(w, "count failed", http.StatusInternalServerError)
		return
	}
	newsCount, err := news.Count(ctx, h.DB)
	if err != nil {
		writeError(w, "count failed", http.StatusInternalServerError)
		return
	}
	acts, err := h.Recorder.CountSince(ctx, time.Now().AddDate(0, 0, -30))
	if err != nil {
		writeError(w, "count failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, countsResponse{
		Contents: contents,
		Jobs:     jobs,
		News:     newsCount,
		Activity: acts,
	}, http.StatusOK)
}

// adminActivity serves the latest audit entries.  ?limit= is clamped by
// the recorder.
func (h *Handler) adminActivity(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.Recorder.Recent(r.Context(), limit)
	if err != nil {
		writeError(w, "listing failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, entries, http.StatusOK)
}
