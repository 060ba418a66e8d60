// internal/api/router.go
//
// Route table for the JSON API serving the three brand sites and their
// shared admin UI.
//
// Context
// -------
// Public reads resolve the brand from the Host header (or an explicit
// override) and never require authentication.  Every mutation sits
// behind RequireAdmin.  /healthz and /metrics bypass site resolution so
// probes work regardless of Host.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nessdigital/webcore/internal/activity"
	"github.com/nessdigital/webcore/internal/auth"
	"github.com/nessdigital/webcore/internal/content"
	"github.com/nessdigital/webcore/internal/site"
	"github.com/nessdigital/webcore/internal/translate"
)

// Handler bundles the dependencies the route handlers need.
type Handler struct {
	DB        *sqlx.DB
	Registry  *site.Registry
	Resolver  *content.Resolver
	Sessions  *auth.Sessions
	Recorder  *activity.Recorder
	Translate *translate.Service
}

// Routes assembles the chi router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(h.Sessions.Attach)

	// Probes and metrics, reachable on any host.
	r.Get("/healthz", h.healthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(h.Registry.Resolve)

		// Public reads.
		r.Get("/content/{pageID}", h.getContent)
		r.Get("/jobs", h.listJobs)
		r.Get("/jobs/{id}", h.getJob)
		r.Get("/news", h.listNews)
		r.Get("/news/{id}", h.getNews)
		r.Get("/sites/current", h.currentSite)

		// Session endpoints.
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)

		// Admin mutations and dashboards.
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAdmin)

			r.Put("/content/{pageID}", h.putContent)
			r.Delete("/content/{pageID}", h.deleteContent)
			r.Put("/content/{pageID}/sites", h.putContentSites)
			r.Get("/admin/content", h.adminListContent)
			r.Get("/admin/content/{pageID}", h.adminGetContent)

			r.Post("/jobs", h.createJob)
			r.Put("/jobs/{id}", h.updateJob)
			r.Delete("/jobs/{id}", h.deleteJob)

			r.Post("/news", h.createNews)
			r.Put("/news/{id}", h.updateNews)
			r.Delete("/news/{id}", h.deleteNews)

			r.Get("/admin/settings", h.getSettings)
			r.Put("/admin/settings", h.putSettings)
			r.Get("/admin/counts", h.adminCounts)
			r.Get("/admin/activity", h.adminActivity)

			r.Post("/translate", h.translateAssist)
		})
	})

	return r
}

// healthz pings the database.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.PingContext(r.Context()); err != nil {
		writeError(w, "database unreachable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
