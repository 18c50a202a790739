package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.AddSlotsGenerated(3)
	m.AddSlotsGenerated(2)
	m.IncWindowFallback("closed_day")
	m.ObserveDBQuery("select", time.Millisecond, errors.New("boom"))
	m.IncCacheResult("working_hours", "hit")

	assert.Equal(t, 5.0, testutil.ToFloat64(m.slotsGenerated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.windowFallbacks.WithLabelValues("closed_day")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueryErrors.WithLabelValues("select")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheResults.WithLabelValues("working_hours", "hit")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.AddSlotsGenerated(1)
		m.ObserveHTTPRequest("GET", "/", 200, time.Second)
		m.SetDBConnections(1, 1, 0)
		m.AddChangesRecorded("updated", 2)
	})
}
