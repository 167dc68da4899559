package services

import (
	"context"

	"finance-tracker/internal/events"
)

// publishEvent delivers e on a best-effort basis. Failures are counted and
// logged, never returned.
func publishEvent(ctx context.Context, publisher EventPublisherInterface, recurringLogger RecurringLoggerInterface, metrics MetricsRecorderInterface, e events.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, e); err != nil {
		metrics.IncrementCounter(MetricEventPublishFailed, map[string]string{"event": e.Type})
		recurringLogger.LogEventPublishFailed(ctx, e.Type, err)
	}
}
