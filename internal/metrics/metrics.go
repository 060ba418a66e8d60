// Package metrics holds Prometheus instruments that are used across the
// platform.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ContentResolveTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_resolve_total",
			Help: "Content resolutions by outcome (found or fallback).",
		}, []string{"source"})

	ContentResolveErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "content_resolve_errors_total",
			Help: "Storage errors swallowed by the content resolver.",
		})

	AdminMutationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_mutations_total",
			Help: "Successful admin mutations by entity type and action.",
		}, []string{"entity", "action"})

	TranslateRequestsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "translate_requests_total",
			Help: "Translation-assist invocations.",
		})

	TranslateErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "translate_errors_total",
			Help: "Translation-assist provider failures (original text served).",
		})

	SiteRegistryRefreshTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "site_registry_refresh_total",
			Help: "Completed site-registry refresh passes.",
		})
)

func init() {
	prometheus.MustRegister(
		ContentResolveTotal,
		ContentResolveErrorsTotal,
		AdminMutationsTotal,
		TranslateRequestsTotal,
		TranslateErrorsTotal,
		SiteRegistryRefreshTotal,
	)
}
