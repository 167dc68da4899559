package repositories

import (
	"context"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/schedule"

	"github.com/google/uuid"
)

// RecurringExpenseRepositoryInterface defines the contract for recurring expense persistence
type RecurringExpenseRepositoryInterface interface {
	Create(ctx context.Context, def *models.RecurringExpense) error
	GetByIDForUser(ctx context.Context, id uuid.UUID, userID string) (*models.RecurringExpense, error)
	ListByUser(ctx context.Context, userID string, active *bool) ([]models.RecurringExpense, error)
	Update(ctx context.Context, def *models.RecurringExpense) error
}

// UpcomingPaymentRepositoryInterface defines the contract for projected payment persistence
type UpcomingPaymentRepositoryInterface interface {
	Create(ctx context.Context, payment *models.UpcomingPayment) error
	GetByIDForUser(ctx context.Context, id uuid.UUID, userID string) (*models.UpcomingPayment, error)
	ListByUser(ctx context.Context, userID string) ([]models.UpcomingPayment, error)
	ListByRecurringExpense(ctx context.Context, recurringExpenseID uuid.UUID) ([]models.UpcomingPayment, error)
	CountByRecurringExpense(ctx context.Context, recurringExpenseID uuid.UUID) (int64, error)
	ExistsForDueDate(ctx context.Context, recurringExpenseID uuid.UUID, dueDate time.Time) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status schedule.DueStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByRecurringExpense(ctx context.Context, recurringExpenseID uuid.UUID) (int64, error)
}

// ExpenseRepositoryInterface defines the contract for expense persistence
type ExpenseRepositoryInterface interface {
	Create(ctx context.Context, expense *models.Expense) error
	GetByIDForUser(ctx context.Context, id uuid.UUID, userID string) (*models.Expense, error)
	ListByUser(ctx context.Context, userID string, filters models.ExpenseFilters) ([]models.Expense, error)
	Update(ctx context.Context, expense *models.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// DailySummaryRepositoryInterface defines the contract for daily summary persistence
type DailySummaryRepositoryInterface interface {
	GetByKey(ctx context.Context, key models.SummaryKey) (*models.DailySummary, error)
	ListRange(ctx context.Context, userID string, expenseBookID *string, from, to time.Time) ([]models.DailySummary, error)
	Upsert(ctx context.Context, summary *models.DailySummary) error
	Delete(ctx context.Context, id uuid.UUID) error
}
