// Package metrics holds the Prometheus instruments of the service.
//
// Metrics are registered on an explicit registry so tests can build
// isolated instances. The HTTP handler exposes that same registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "novel"

// Translation outcome labels.
const (
	OutcomeSuccess         = "success"
	OutcomeNotFound        = "not_found"
	OutcomeInvalidState    = "invalid_state"
	OutcomeOracleFailure   = "oracle_failure"
	OutcomeInvalidResponse = "invalid_response"
	OutcomeError           = "error"
)

// Metrics bundles every instrument.
type Metrics struct {
	registry *prometheus.Registry

	TranslationsTotal   *prometheus.CounterVec
	OracleDuration      *prometheus.HistogramVec
	SliceEntries        *prometheus.HistogramVec
	PrunedEntriesTotal  *prometheus.CounterVec
	SkippedUpdatesTotal prometheus.Counter
	ConflictsTotal      *prometheus.CounterVec
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates the instruments on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		TranslationsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "translation",
			Name:      "chapters_total",
			Help:      "Chapter translations by outcome.",
		}, []string{"outcome"}),
		OracleDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "translation",
			Name:      "oracle_duration_seconds",
			Help:      "Latency of translation oracle calls.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80, 160},
		}, []string{"provider", "status"}),
		SliceEntries: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "context",
			Name:      "slice_entries",
			Help:      "Entries sent to the oracle per chapter.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"kind"}),
		PrunedEntriesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "context",
			Name:      "pruned_entries_total",
			Help:      "Entries removed from stored context documents.",
		}, []string{"kind"}),
		SkippedUpdatesTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "context",
			Name:      "skipped_updates_total",
			Help:      "Malformed context update items ignored during merge.",
		}),
		ConflictsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "context",
			Name:      "conflicts_total",
			Help:      "Renderings that disagreed with a stored entry.",
		}, []string{"kind"}),
		HTTPRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ---------------------------------------------------------------------------
// Recorder methods used by services and middleware
// ---------------------------------------------------------------------------

// TranslationFinished counts one chapter translation.
func (m *Metrics) TranslationFinished(outcome string) {
	m.TranslationsTotal.WithLabelValues(outcome).Inc()
}

// OracleCalled records the latency of one oracle call.
func (m *Metrics) OracleCalled(provider string, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.OracleDuration.WithLabelValues(provider, status).Observe(d.Seconds())
}

// SliceBuilt records the size of a slice.
func (m *Metrics) SliceBuilt(locks, entities int) {
	m.SliceEntries.WithLabelValues("lock").Observe(float64(locks))
	m.SliceEntries.WithLabelValues("entity").Observe(float64(entities))
}

// ContextMerged records skipped update items and new conflicts.
func (m *Metrics) ContextMerged(skipped, lockConflicts, entityConflicts int) {
	m.SkippedUpdatesTotal.Add(float64(skipped))
	m.ConflictsTotal.WithLabelValues("lock").Add(float64(lockConflicts))
	m.ConflictsTotal.WithLabelValues("entity").Add(float64(entityConflicts))
}

// ContextPruned records entries removed by a prune.
func (m *Metrics) ContextPruned(locks, entities int) {
	m.PrunedEntriesTotal.WithLabelValues("lock").Add(float64(locks))
	m.PrunedEntriesTotal.WithLabelValues("entity").Add(float64(entities))
}

// HTTPRequest records one served request.
func (m *Metrics) HTTPRequest(method, route string, status int, d time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
