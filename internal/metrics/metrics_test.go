package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ContextBuilt("tour")
	m.ContextBuilt("tour")
	m.ObserveCompetition("eclectic", 3*time.Millisecond, 7)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Builds.WithLabelValues("tour")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.Rows.WithLabelValues("eclectic")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ComputeDuration))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ContextBuilt("round")
		m.ObserveCompetition("x", time.Second, 1)
	})
}
