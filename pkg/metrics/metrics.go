package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricPrefix = "pumppanel_"

// Metrics holds the panel's prometheus counters. A nil *Metrics is valid and
// records nothing, so instrumented code doesn't need nil checks at call sites.
type Metrics struct {
	registry *prometheus.Registry

	snapshotWrites prometheus.Counter
	snapshotErrors prometheus.Counter
	syncTotal      prometheus.Counter
	syncErrors     prometheus.Counter
}

// New creates and registers the panel metrics on a fresh registry
func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.snapshotWrites = prometheus.NewCounter(prometheus.CounterOpts{
		Name: metricPrefix + "snapshot_writes_total",
		Help: "Total settings snapshot writes to local storage",
	})
	m.snapshotErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: metricPrefix + "snapshot_errors_total",
		Help: "Total failed settings snapshot writes",
	})
	m.syncTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: metricPrefix + "sync_total",
		Help: "Total backend sync attempts",
	})
	m.syncErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: metricPrefix + "sync_errors_total",
		Help: "Total failed backend sync attempts",
	})

	m.registry.MustRegister(m.snapshotWrites, m.snapshotErrors, m.syncTotal, m.syncErrors)
	return m
}

// Handler exposes the registry for the /metrics endpoint
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// SnapshotWrite records a successful snapshot write
func (m *Metrics) SnapshotWrite() {
	if m == nil {
		return
	}
	m.snapshotWrites.Inc()
}

// SnapshotError records a failed snapshot write
func (m *Metrics) SnapshotError() {
	if m == nil {
		return
	}
	m.snapshotErrors.Inc()
}

// SyncStarted records a backend sync attempt
func (m *Metrics) SyncStarted() {
	if m == nil {
		return
	}
	m.syncTotal.Inc()
}

// SyncFailed records a failed backend sync
func (m *Metrics) SyncFailed() {
	if m == nil {
		return
	}
	m.syncErrors.Inc()
}
