package services

import (
	"context"
	"time"

	"finance-tracker/internal/events"
	"finance-tracker/internal/models"

	"github.com/google/uuid"
)

// RecurringServiceInterface manages recurring expense definitions and their
// payment schedule
type RecurringServiceInterface interface {
	Create(ctx context.Context, userID string, input models.RecurringExpenseInput, now time.Time) (*models.RecurringExpense, error)
	Get(ctx context.Context, userID string, id uuid.UUID) (*models.RecurringExpense, error)
	List(ctx context.Context, userID string, active *bool) ([]models.RecurringExpense, error)
	Update(ctx context.Context, userID string, id uuid.UUID, patch models.RecurringExpensePatch, now time.Time) (*models.RecurringExpense, error)
	// Deactivate reports false when the definition does not exist for userID.
	Deactivate(ctx context.Context, userID string, id uuid.UUID) (bool, error)
	RecordPayment(ctx context.Context, userID string, id uuid.UUID, paidDate time.Time) (*models.PaymentResult, error)
	AdvanceSchedule(ctx context.Context, userID string, id uuid.UUID, paidDate time.Time) (*models.RecurringExpense, error)
}

// WindowProjectorInterface keeps the look-ahead window of upcoming payments
// filled for one definition
type WindowProjectorInterface interface {
	EnsureWindow(ctx context.Context, def *models.RecurringExpense, now time.Time) (int, error)
	ClearWindow(ctx context.Context, recurringExpenseID uuid.UUID) (int64, error)
}

// UpcomingPaymentServiceInterface exposes projected payments to callers
type UpcomingPaymentServiceInterface interface {
	List(ctx context.Context, userID string) ([]models.UpcomingPayment, error)
	RefreshStatuses(ctx context.Context, userID string, now time.Time) (int, error)
	MarkPaid(ctx context.Context, userID string, paymentID uuid.UUID, paidDate time.Time, recordAsExpense bool, now time.Time) (*models.MarkPaidResult, error)
	GenerateForAllActive(ctx context.Context, userID string, now time.Time) (int, error)
}

// DailySummaryServiceInterface maintains the per-day category spend aggregate
type DailySummaryServiceInterface interface {
	ApplyDelta(ctx context.Context, delta models.SummaryDelta) error
	// ApplyDeltas applies deltas in order, writing each touched row once.
	ApplyDeltas(ctx context.Context, deltas []models.SummaryDelta) error
	RebuildFromHistory(ctx context.Context, userID string) (int, error)
	GetDay(ctx context.Context, userID, expenseBookID string, date time.Time) (*models.DailySummary, error)
	ListRange(ctx context.Context, userID string, expenseBookID *string, from, to time.Time) ([]models.DailySummary, error)
}

// ExpenseServiceInterface manages concrete expenses and keeps summaries in step
type ExpenseServiceInterface interface {
	Create(ctx context.Context, userID string, input models.ExpenseInput) (*models.Expense, error)
	Get(ctx context.Context, userID string, id uuid.UUID) (*models.Expense, error)
	List(ctx context.Context, userID string, filters models.ExpenseFilters) ([]models.Expense, error)
	Update(ctx context.Context, userID string, id uuid.UUID, input models.ExpenseInput) (*models.Expense, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

// ExpenseGeneratorInterface produces realistic fake expenses for local testing
type ExpenseGeneratorInterface interface {
	GenerateExpenses(startDate, endDate time.Time, count int) []models.ExpenseInput
	GenerateRecurring(startDate time.Time) []models.RecurringExpenseInput
}

type TokenServiceInterface interface {
	GenerateAccessToken(userID string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// EventPublisherInterface delivers domain events; failures are never fatal
type EventPublisherInterface interface {
	Publish(ctx context.Context, e events.Event) error
}

// RecurringLoggerInterface writes structured logs for scheduling and summary
// operations
type RecurringLoggerInterface interface {
	LogRecurringCreated(ctx context.Context, def *models.RecurringExpense)
	LogRecurringUpdated(ctx context.Context, def *models.RecurringExpense, scheduleReset bool)
	LogRecurringDeactivated(ctx context.Context, userID string, recurringExpenseID uuid.UUID, removed int64)
	LogPaymentRecorded(ctx context.Context, def *models.RecurringExpense, paidDate time.Time, expenseID *uuid.UUID)
	LogWindowGenerated(ctx context.Context, recurringExpenseID uuid.UUID, created int)
	LogStatusesRefreshed(ctx context.Context, userID string, updated int)
	LogSummaryRebuilt(ctx context.Context, userID string, rows int)
	LogEventPublishFailed(ctx context.Context, eventType string, err error)
}
