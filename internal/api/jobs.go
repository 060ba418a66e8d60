// internal/api/jobs.go
//
// Job-posting endpoints: public listing and the admin CRUD trio.
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nessdigital/webcore/internal/activity"
	"github.com/nessdigital/webcore/internal/job"
	"github.com/nessdigital/webcore/internal/metrics"
	"github.com/nessdigital/webcore/internal/site"
)

// listJobs returns active postings in the detected language.
func (h *Handler) listJobs(w http.ResponseWriter, r *http.Request) {
	lang := detectLanguage(r, site.FromContext(r.Context()))

	recs, err := job.List(r.Context(), h.DB, lang, true)
	if err != nil {
		writeError(w, "listing failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, recs, http.StatusOK)
}

// getJob serves one posting by numeric ID or slug.
func (h *Handler) getJob(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")

	var rec *job.Record
	var err error
	if id, convErr := strconv.ParseUint(raw, 10, 64); convErr == nil {
		rec, err = job.GetByID(r.Context(), h.DB, id)
	} else {
		lang := detectLanguage(r, site.FromContext(r.Context()))
		rec, err = job.GetBySlug(r.Context(), h.DB, raw, lang)
	}

	switch {
	case errors.Is(err, job.ErrNotFound):
		writeError(w, "job not found", http.StatusNotFound)
	case err != nil:
		writeError(w, "lookup failed", http.StatusInternalServerError)
	default:
		writeJSON(w, rec, http.StatusOK)
	}
}

func (h *Handler) createJob(w http.ResponseWriter, r *http.Request) {
	var d job.Draft
	if !decodeValid(w, r, &d) {
		return
	}

	id, err := job.Create(r.Context(), h.DB, d)
	if err != nil {
		writeError(w, "create failed", http.StatusInternalServerError)
		return
	}

	metrics.AdminMutationsTotal.WithLabelValues(job.EntityType, activity.ActionCreate).Inc()
	h.recordActivity(r, activity.ActionCreate, job.EntityType,
		strconv.FormatUint(id, 10), "create job: "+d.Title)

	writeJSON(w, map[string]uint64{"id": id}, http.StatusCreated)
}

func (h *Handler) updateJob(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, "invalid id", http.StatusBadRequest)
		return
	}

	var d job.Draft
	if !decodeValid(w, r, &d) {
		return
	}

	switch err := job.Update(r.Context(), h.DB, id, d); {
	case errors.Is(err, job.ErrNotFound):
		writeError(w, "job not found", http.StatusNotFound)
		return
	case err != nil:
		writeError(w, "update failed", http.StatusInternalServerError)
		return
	}

	metrics.AdminMutationsTotal.WithLabelValues(job.EntityType, activity.ActionUpdate).Inc()
	h.recordActivity(r, activity.ActionUpdate, job.EntityType,
		strconv.FormatUint(id, 10), "update job: "+d.Title)

	writeJSON(w, map[string]string{"status": "saved"}, http.StatusOK)
}

func (h *Handler) deleteJob(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, "invalid id", http.StatusBadRequest)
		return
	}

	switch err := job.Delete(r.Context(), h.DB, id); {
	case errors.Is(err, job.ErrNotFound):
		writeError(w, "job not found", http.StatusNotFound)
		return
	case err != nil:
		writeError(w, "delete failed", http.StatusInternalServerError)
		return
	}

	metrics.AdminMutationsTotal.WithLabelValues(job.EntityType, activity.ActionDelete).Inc()
	h.recordActivity(r, activity.ActionDelete, job.EntityType,
		strconv.FormatUint(id, 10), "delete job")

	writeJSON(w, map[string]string{"status": "deleted"}, http.StatusOK)
}
