package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder := NewPrometheusMetrics(reg)
	m := recorder.(*PrometheusMetrics)

	recorder.IncrementCounter(MetricRecurringCreated, nil)
	recorder.IncrementCounter(MetricPaymentRecorded, map[string]string{"frequency": "monthly"})
	recorder.IncrementCounter(MetricSummaryDeltaApplied, map[string]string{"direction": "add"})
	recorder.IncrementCounter(MetricSummaryDeltaApplied, map[string]string{"direction": "add"})
	recorder.IncrementCounter(MetricSummaryDeltaApplied, map[string]string{})
	recorder.IncrementCounter("unknown.metric", nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.recurringOperations.WithLabelValues("created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.paymentsRecorded.WithLabelValues("monthly", "true")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.summaryDeltas.WithLabelValues("add")))
}

func TestPrometheusMetrics_GaugesAndDurations(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder := NewPrometheusMetrics(reg)
	m := recorder.(*PrometheusMetrics)

	recorder.RecordGauge(MetricRebuildRows, 12, nil)
	recorder.RecordGauge(MetricWindowGenerated, 2, nil)
	recorder.RecordProcessingTime(MetricSummaryApplyDuration, 5*time.Millisecond)

	assert.Equal(t, 12.0, testutil.ToFloat64(m.lastRebuildRows))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.upcomingCreated))
	assert.Equal(t, 1, testutil.CollectAndCount(m.operationDuration))
}

func TestPrometheusMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetrics(prometheus.NewRegistry())
		NewPrometheusMetrics(prometheus.NewRegistry())
	})
}
