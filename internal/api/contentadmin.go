// internal/api/contentadmin.go
//
// Admin-side content views: the translation overview, draft access, and
// site-association management.
package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nessdigital/webcore/internal/activity"
	"github.com/nessdigital/webcore/internal/content"
	"github.com/nessdigital/webcore/internal/locale"
	"github.com/nessdigital/webcore/internal/metrics"
)

type contentOverview struct {
	Language locale.Language  `json:"language"`
	Pages    []string         `json:"pages"` // slots the fallback bundle names
	Rows     []content.Record `json:"rows"`  // saved rows, drafts included
}

// adminListContent lists every saved row for one language next to the
// page IDs the fallback bundle names, so editors can see which slots
// still serve default copy.
func (h *Handler) adminListContent(w http.ResponseWriter, r *http.Request) {
	lang, err := locale.Parse(r.URL.Query().Get("lang"))
	if err != nil {
		writeError(w, "unsupported language", http.StatusBadRequest)
		return
	}

	rows, err := content.ListByLanguage(r.Context(), h.DB, lang)
	if err != nil {
		writeError(w, "listing failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, contentOverview{
		Language: lang,
		Pages:    h.Resolver.BundlePages(lang),
		Rows:     rows,
	}, http.StatusOK)
}

// adminGetContent fetches one slot regardless of published state, so
// the editor can reopen drafts.
func (h *Handler) adminGetContent(w http.ResponseWriter, r *http.Request) {
	lang, err := locale.Parse(r.URL.Query().Get("lang"))
	if err != nil {
		writeError(w, "unsupported language", http.StatusBadRequest)
		return
	}

	rec, err := content.GetByPage(r.Context(), h.DB, chi.URLParam(r, "pageID"), lang)
	switch {
	case errors.Is(err, content.ErrNotFound):
		writeError(w, "content not found", http.StatusNotFound)
	case err != nil:
		writeError(w, "lookup failed", http.StatusInternalServerError)
	default:
		writeJSON(w, rec, http.StatusOK)
	}
}

type sitesRequest struct {
	Sites []string `json:"sites" validate:"dive,oneof=ness trustness forense"`
}

// putContentSites replaces the site associations of the slot.  An empty
// list makes the row visible to every brand.
func (h *Handler) putContentSites(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")

	lang, err := locale.Parse(r.URL.Query().Get("lang"))
	if err != nil {
		writeError(w, "unsupported language", http.StatusBadRequest)
		return
	}

	var req sitesRequest
	if !decodeValid(w, r, &req) {
		return
	}

	rec, err := content.GetByPage(r.Context(), h.DB, pageID, lang)
	if errors.Is(err, content.ErrNotFound) {
		writeError(w, "content not found", http.StatusNotFound)
		return
	}
	if err != nil {
		writeError(w, "lookup failed", http.StatusInternalServerError)
		return
	}

	if err := content.AssociateSites(r.Context(), h.DB, rec.ID, req.Sites); err != nil {
		writeError(w, "save failed", http.StatusInternalServerError)
		return
	}

	h.Resolver.Invalidate()
	metrics.AdminMutationsTotal.WithLabelValues(content.EntityType, activity.ActionUpdate).Inc()
	h.recordActivity(r, activity.ActionUpdate, content.EntityType, pageID,
		"set sites: "+strings.Join(req.Sites, ","))

	writeJSON(w, map[string]string{"status": "saved"}, http.StatusOK)
}
