// Package metrics exposes Prometheus instruments for leaderboard computation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the instruments recorded by the leaderboard service.
type Metrics struct {
	ComputeDuration *prometheus.HistogramVec
	Builds          *prometheus.CounterVec
	Rows            *prometheus.GaugeVec
}

// New creates the instruments and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ComputeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "golf_tour",
			Name:      "competition_compute_seconds",
			Help:      "Time spent computing one competition leaderboard.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"competition"}),
		Builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "golf_tour",
			Name:      "context_builds_total",
			Help:      "Tour contexts built, by scope.",
		}, []string{"scope"}),
		Rows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "golf_tour",
			Name:      "leaderboard_rows",
			Help:      "Rows in the most recently computed leaderboard.",
		}, []string{"competition"}),
	}
	reg.MustRegister(m.ComputeDuration, m.Builds, m.Rows)
	return m
}

// ObserveCompetition records one competition run.
func (m *Metrics) ObserveCompetition(id string, took time.Duration, rows int) {
	if m == nil {
		return
	}
	m.ComputeDuration.WithLabelValues(id).Observe(took.Seconds())
	m.Rows.WithLabelValues(id).Set(float64(rows))
}

// ContextBuilt counts one context build.
func (m *Metrics) ContextBuilt(scope string) {
	if m == nil {
		return
	}
	m.Builds.WithLabelValues(scope).Inc()
}
