package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names understood by PrometheusMetrics.
const (
	MetricRecurringCreated       = "recurring.created"
	MetricRecurringUpdated       = "recurring.updated"
	MetricRecurringDeactivated   = "recurring.deactivated"
	MetricPaymentRecorded        = "recurring.payment.recorded"
	MetricUpcomingPaid           = "upcoming.paid"
	MetricWindowGenerated        = "upcoming.window.generated"
	MetricStatusesRefreshed      = "upcoming.status.refreshed"
	MetricSummaryDeltaApplied    = "summary.delta.applied"
	MetricSummaryRowDeleted      = "summary.row.deleted"
	MetricSummaryRebuilt         = "summary.rebuilt"
	MetricExpenseRecorded        = "expense.recorded"
	MetricEventPublishFailed     = "event.publish.failed"
	MetricSummaryApplyDuration   = "summary.apply"
	MetricSummaryRebuildDuration = "summary.rebuild"
	MetricWindowDuration         = "upcoming.window"
	MetricRebuildRows            = "summary.rebuild.rows"
)

type PrometheusMetrics struct {
	recurringOperations  *prometheus.CounterVec
	paymentsRecorded     *prometheus.CounterVec
	upcomingCreated      prometheus.Counter
	statusesRefreshed    prometheus.Counter
	summaryDeltas        *prometheus.CounterVec
	summaryRowsDeleted   prometheus.Counter
	summaryRebuilds      prometheus.Counter
	expensesRecorded     *prometheus.CounterVec
	eventPublishFailures *prometheus.CounterVec
	operationDuration    *prometheus.HistogramVec
	lastRebuildRows      prometheus.Gauge
}

// NewPrometheusMetrics registers the collectors on reg. Passing
// prometheus.DefaultRegisterer exposes them on the default /metrics handler.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		recurringOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recurring_expense_operations_total",
				Help: "Total number of recurring expense definition changes",
			},
			[]string{"operation"},
		),
		paymentsRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recurring_payments_recorded_total",
				Help: "Total number of recurring payments settled",
			},
			[]string{"frequency", "recorded_as_expense"},
		),
		upcomingCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "upcoming_payments_generated_total",
				Help: "Total number of upcoming payment instances generated",
			},
		),
		statusesRefreshed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "upcoming_payment_status_changes_total",
				Help: "Total number of upcoming payment status changes persisted",
			},
		),
		summaryDeltas: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "daily_summary_deltas_total",
				Help: "Total number of deltas applied to daily summaries",
			},
			[]string{"direction"},
		),
		summaryRowsDeleted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "daily_summary_rows_deleted_total",
				Help: "Total number of daily summary rows removed after emptying",
			},
		),
		summaryRebuilds: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "daily_summary_rebuilds_total",
				Help: "Total number of daily summary rebuilds",
			},
		),
		expensesRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expenses_recorded_total",
				Help: "Total number of expense writes",
			},
			[]string{"operation"},
		),
		eventPublishFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "event_publish_failures_total",
				Help: "Total number of domain events that could not be published",
			},
			[]string{"event"},
		),
		operationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finance_operation_duration_milliseconds",
				Help:    "Duration of scheduler and summary operations in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
		lastRebuildRows: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "daily_summary_last_rebuild_rows",
				Help: "Rows written by the most recent daily summary rebuild",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricRecurringCreated:
		m.recurringOperations.WithLabelValues("created").Inc()
	case MetricRecurringUpdated:
		m.recurringOperations.WithLabelValues("updated").Inc()
	case MetricRecurringDeactivated:
		m.recurringOperations.WithLabelValues("deactivated").Inc()
	case MetricPaymentRecorded:
		m.paymentsRecorded.WithLabelValues(tags["frequency"], "true").Inc()
	case MetricUpcomingPaid:
		if tags["recorded_as_expense"] == "false" {
			m.paymentsRecorded.WithLabelValues(tags["frequency"], "false").Inc()
		}
	case MetricWindowGenerated:
		m.upcomingCreated.Inc()
	case MetricStatusesRefreshed:
		m.statusesRefreshed.Inc()
	case MetricSummaryDeltaApplied:
		if direction := tags["direction"]; direction != "" {
			m.summaryDeltas.WithLabelValues(direction).Inc()
		}
	case MetricSummaryRowDeleted:
		m.summaryRowsDeleted.Inc()
	case MetricSummaryRebuilt:
		m.summaryRebuilds.Inc()
	case MetricExpenseRecorded:
		if operation := tags["operation"]; operation != "" {
			m.expensesRecorded.WithLabelValues(operation).Inc()
		}
	case MetricEventPublishFailed:
		m.eventPublishFailures.WithLabelValues(tags["event"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricSummaryApplyDuration, MetricSummaryRebuildDuration, MetricWindowDuration:
		m.operationDuration.WithLabelValues(name).Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricRebuildRows:
		m.lastRebuildRows.Set(value)
	case MetricWindowGenerated:
		m.upcomingCreated.Add(value)
	case MetricStatusesRefreshed:
		m.statusesRefreshed.Add(value)
	}
}
