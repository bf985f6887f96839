package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments for the service.
type Metrics struct {
	ProfileMutations    prometheus.Counter
	ReportAdjudications prometheus.Counter
	SearchQueries       prometheus.Counter
	SearchFailures      prometheus.Counter
	ViewInvalidations   *prometheus.CounterVec
	HTTPRequests        *prometheus.CounterVec
}

// NewMetrics creates and registers all instruments on the default registry.
func NewMetrics() *Metrics {
	return &Metrics{
		ProfileMutations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "moderation_profile_mutations_total",
			Help: "Successful profile status/type mutations.",
		}),
		ReportAdjudications: promauto.NewCounter(prometheus.CounterOpts{
			Name: "moderation_report_adjudications_total",
			Help: "Successful verification report adjudications.",
		}),
		SearchQueries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "moderation_directory_searches_total",
			Help: "Directory searches that reached storage.",
		}),
		SearchFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "moderation_directory_search_failures_total",
			Help: "Directory searches degraded to an empty result.",
		}),
		ViewInvalidations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "moderation_view_invalidations_total",
			Help: "View invalidations fanned out, by entity kind.",
		}, []string{"entity_kind"}),
		HTTPRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "moderation_http_requests_total",
			Help: "HTTP requests served, by method, path and status.",
		}, []string{"method", "path", "status"}),
	}
}

// RecordProfileMutation increments the profile mutation counter.
func (m *Metrics) RecordProfileMutation() {
	if m == nil {
		return
	}
	m.ProfileMutations.Inc()
}

// RecordAdjudication increments the report adjudication counter.
func (m *Metrics) RecordAdjudication() {
	if m == nil {
		return
	}
	m.ReportAdjudications.Inc()
}

// RecordSearch counts a storage-backed search and whether it degraded.
func (m *Metrics) RecordSearch(failed bool) {
	if m == nil {
		return
	}
	m.SearchQueries.Inc()
	if failed {
		m.SearchFailures.Inc()
	}
}

// RecordInvalidation increments the invalidation counter for an entity kind.
func (m *Metrics) RecordInvalidation(kind string) {
	if m == nil {
		return
	}
	m.ViewInvalidations.WithLabelValues(kind).Inc()
}

// RecordRequest increments the HTTP request counter.
func (m *Metrics) RecordRequest(method, path, status string) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, path, status).Inc()
}

// Handler returns the Prometheus exposition handler for the metrics listener.
func Handler() http.Handler {
	return promhttp.Handler()
}
