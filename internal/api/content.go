// internal/api/content.go
//
// Public content resolution plus the admin upsert/unpublish pair.
//
// The GET path never 404s: unknown pages come back as bundled fallback
// copy with source metadata so the front end can render something
// sensible and we can count the misses.
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nessdigital/webcore/internal/activity"
	"github.com/nessdigital/webcore/internal/auth"
	"github.com/nessdigital/webcore/internal/content"
	"github.com/nessdigital/webcore/internal/locale"
	"github.com/nessdigital/webcore/internal/metrics"
	"github.com/nessdigital/webcore/internal/site"
)

// getContent serves the resolved copy for one page.
func (h *Handler) getContent(w http.ResponseWriter, r *http.Request) {
	rec := site.FromContext(r.Context())
	lang := detectLanguage(r, rec)

	siteCode := ""
	if rec != nil {
		siteCode = rec.Code
	}

	res := h.Resolver.Resolve(r.Context(), chi.URLParam(r, "pageID"), lang, siteCode)
	writeJSON(w, res, http.StatusOK)
}

// putContent upserts the (page, language) slot.
func (h *Handler) putContent(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")

	lang, err := locale.Parse(r.URL.Query().Get("lang"))
	if err != nil {
		writeError(w, "unsupported language", http.StatusBadRequest)
		return
	}

	var d content.Draft
	if !decodeValid(w, r, &d) {
		return
	}

	if err := content.Upsert(r.Context(), h.DB, pageID, lang, d); err != nil {
		writeError(w, "save failed", http.StatusInternalServerError)
		return
	}

	h.Resolver.Invalidate()
	metrics.AdminMutationsTotal.WithLabelValues(content.EntityType, activity.ActionUpdate).Inc()
	h.recordActivity(r, activity.ActionUpdate, content.EntityType, pageID,
		fmt.Sprintf("upsert %s/%s", pageID, lang))

	writeJSON(w, map[string]string{"status": "saved"}, http.StatusOK)
}

// deleteContent unpublishes the slot; the row itself stays.
func (h *Handler) deleteContent(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")

	lang, err := locale.Parse(r.URL.Query().Get("lang"))
	if err != nil {
		writeError(w, "unsupported language", http.StatusBadRequest)
		return
	}

	switch err := content.Unpublish(r.Context(), h.DB, pageID, lang); {
	case errors.Is(err, content.ErrNotFound):
		writeError(w, "content not found", http.StatusNotFound)
		return
	case err != nil:
		writeError(w, "unpublish failed", http.StatusInternalServerError)
		return
	}

	h.Resolver.Invalidate()
	metrics.AdminMutationsTotal.WithLabelValues(content.EntityType, activity.ActionUnpublish).Inc()
	h.recordActivity(r, activity.ActionUnpublish, content.EntityType, pageID,
		fmt.Sprintf("unpublish %s/%s", pageID, lang))

	writeJSON(w, map[string]string{"status": "unpublished"}, http.StatusOK)
}

// recordActivity appends an audit entry for the signed-in admin.
func (h *Handler) recordActivity(r *http.Request, action, entityType, entityID, details string) {
	uid, _ := auth.UserID(r.Context())
	h.Recorder.Record(r.Context(), uid, action, entityType, entityID, details)
}
