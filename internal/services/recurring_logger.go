package services

import (
	"context"
	"log/slog"
	"time"

	"finance-tracker/internal/logging"
	"finance-tracker/internal/models"
	"finance-tracker/internal/schedule"

	"github.com/google/uuid"
)

type RecurringLogger struct {
	logger *slog.Logger
}

func NewRecurringLogger(logger *slog.Logger) RecurringLoggerInterface {
	return &RecurringLogger{
		logger: logger,
	}
}

func (rl *RecurringLogger) LogRecurringCreated(ctx context.Context, def *models.RecurringExpense) {
	rl.logger.InfoContext(ctx, "recurring expense created",
		slog.String("event_type", "recurring_created"),
		slog.String("recurring_expense_id", def.ID.String()),
		slog.String("user_id", def.UserID),
		slog.String("frequency", def.Frequency.String()),
		slog.String("start_date", schedule.FormatDate(def.StartDate)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (rl *RecurringLogger) LogRecurringUpdated(ctx context.Context, def *models.RecurringExpense, scheduleReset bool) {
	rl.logger.InfoContext(ctx, "recurring expense updated",
		slog.String("event_type", "recurring_updated"),
		slog.String("recurring_expense_id", def.ID.String()),
		slog.String("user_id", def.UserID),
		slog.Bool("schedule_reset", scheduleReset),
		slog.String("next_occurrence", schedule.FormatDate(def.NextOccurrence)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (rl *RecurringLogger) LogRecurringDeactivated(ctx context.Context, userID string, recurringExpenseID uuid.UUID, removed int64) {
	rl.logger.InfoContext(ctx, "recurring expense deactivated",
		slog.String("event_type", "recurring_deactivated"),
		slog.String("recurring_expense_id", recurringExpenseID.String()),
		slog.String("user_id", userID),
		slog.Int64("upcoming_payments_removed", removed),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (rl *RecurringLogger) LogPaymentRecorded(ctx context.Context, def *models.RecurringExpense, paidDate time.Time, expenseID *uuid.UUID) {
	attrs := []any{
		slog.String("event_type", "payment_recorded"),
		slog.String("recurring_expense_id", def.ID.String()),
		slog.String("user_id", def.UserID),
		slog.String("paid_date", schedule.FormatDate(paidDate)),
		slog.String("next_occurrence", schedule.FormatDate(def.NextOccurrence)),
	}
	if expenseID != nil {
		attrs = append(attrs, slog.String("expense_id", expenseID.String()))
	}
	attrs = append(attrs,
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)

	rl.logger.InfoContext(ctx, "recurring payment recorded", attrs...)
}

func (rl *RecurringLogger) LogWindowGenerated(ctx context.Context, recurringExpenseID uuid.UUID, created int) {
	rl.logger.DebugContext(ctx, "upcoming payment window generated",
		slog.String("event_type", "window_generated"),
		slog.String("recurring_expense_id", recurringExpenseID.String()),
		slog.Int("created", created),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (rl *RecurringLogger) LogStatusesRefreshed(ctx context.Context, userID string, updated int) {
	rl.logger.InfoContext(ctx, "upcoming payment statuses refreshed",
		slog.String("event_type", "statuses_refreshed"),
		slog.String("user_id", userID),
		slog.Int("updated", updated),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (rl *RecurringLogger) LogSummaryRebuilt(ctx context.Context, userID string, rows int) {
	rl.logger.InfoContext(ctx, "daily summaries rebuilt",
		slog.String("event_type", "summary_rebuilt"),
		slog.String("user_id", userID),
		slog.Int("rows", rows),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (rl *RecurringLogger) LogEventPublishFailed(ctx context.Context, eventType string, err error) {
	rl.logger.WarnContext(ctx, "event publish failed",
		slog.String("event_type", "event_publish_failed"),
		slog.String("event", eventType),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	return logging.CorrelationID(ctx)
}
