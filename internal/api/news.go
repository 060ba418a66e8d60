// internal/api/news.go
//
// News endpoints: public listing (with an optional featured filter) and
// the admin CRUD trio.
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nessdigital/webcore/internal/activity"
	"github.com/nessdigital/webcore/internal/metrics"
	"github.com/nessdigital/webcore/internal/news"
	"github.com/nessdigital/webcore/internal/site"
)

// listNews returns items in the detected language, newest first.
// ?featured=1 narrows to the homepage carousel set.
func (h *Handler) listNews(w http.ResponseWriter, r *http.Request) {
	lang := detectLanguage(r, site.FromContext(r.Context()))
	featured := r.URL.Query().Get("featured") == "1"

	recs, err := news.List(r.Context(), h.DB, lang, featured)
	if err != nil {
		writeError(w, "listing failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, recs, http.StatusOK)
}

// getNews serves one item by numeric ID or slug.
func (h *Handler) getNews(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")

	var rec *news.Record
	var err error
	if id, convErr := strconv.ParseUint(raw, 10, 64); convErr == nil {
		rec, err = news.GetByID(r.Context(), h.DB, id)
	} else {
		lang := detectLanguage(r, site.FromContext(r.Context()))
		rec, err = news.GetBySlug(r.Context(), h.DB, raw, lang)
	}

	switch {
	case errors.Is(err, news.ErrNotFound):
		writeError(w, "news not found", http.StatusNotFound)
	case err != nil:
		writeError(w, "lookup failed", http.StatusInternalServerError)
	default:
		writeJSON(w, rec, http.StatusOK)
	}
}

func (h *Handler) createNews(w http.ResponseWriter, r *http.Request) {
	var d news.Draft
	if !decodeValid(w, r, &d) {
		return
	}

	id, err := news.Create(r.Context(), h.DB, d)
	if err != nil {
		writeError(w, "create failed", http.StatusInternalServerError)
		return
	}

	metrics.AdminMutationsTotal.WithLabelValues(news.EntityType, activity.ActionCreate).Inc()
	h.recordActivity(r, activity.ActionCreate, news.EntityType,
		strconv.FormatUint(id, 10), "create news: "+d.Title)

	writeJSON(w, map[string]uint64{"id": id}, http.StatusCreated)
}

func (h *Handler) updateNews(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, "invalid id", http.StatusBadRequest)
		return
	}

	var d news.Draft
	if !decodeValid(w, r, &d) {
		return
	}

	switch err := news.Update(r.Context(), h.DB, id, d); {
	case errors.Is(err, news.ErrNotFound):
		writeError(w, "news not found", http.StatusNotFound)
		return
	case err != nil:
		writeError(w, "update failed", http.StatusInternalServerError)
		return
	}

	metrics.AdminMutationsTotal.WithLabelValues(news.EntityType, activity.ActionUpdate).Inc()
	h.recordActivity(r, activity.ActionUpdate, news.EntityType,
		strconv.FormatUint(id, 10), "update news: "+d.Title)

	writeJSON(w, map[string]string{"status": "saved"}, http.StatusOK)
}

func (h *Handler) deleteNews(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, "invalid id", http.StatusBadRequest)
		return
	}

	switch err := news.Delete(r.Context(), h.DB, id); {
	case errors.Is(err, news.ErrNotFound):
		writeError(w, "news not found", http.StatusNotFound)
		return
	case err != nil:
		writeError(w, "delete failed", http.StatusInternalServerError)
		return
	}

	metrics.AdminMutationsTotal.WithLabelValues(news.EntityType, activity.ActionDelete).Inc()
	h.recordActivity(r, activity.ActionDelete, news.EntityType,
		strconv.FormatUint(id, 10), "delete news")

	writeJSON(w, map[string]string{"status": "deleted"}, http.StatusOK)
}
