package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/schedule"

	"github.com/google/uuid"
)

// expenseService owns expense writes and feeds every change to the daily
// summary aggregate.
type expenseService struct {
	expenseRepo    repositories.ExpenseRepositoryInterface
	summaryService DailySummaryServiceInterface
	metrics        MetricsRecorderInterface
	logger         *slog.Logger
}

func NewExpenseService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	summaryService DailySummaryServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ExpenseServiceInterface {
	return &expenseService{
		expenseRepo:    expenseRepo,
		summaryService: summaryService,
		metrics:        metrics,
		logger:         logger,
	}
}

func (s *expenseService) Create(ctx context.Context, userID string, input models.ExpenseInput) (*models.Expense, error) {
	expense := &models.Expense{UserID: userID}
	applyExpenseInput(expense, input)

	if err := expense.Validate(); err != nil {
		return nil, validationFromModel(err)
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, persistError("create expense", err)
	}

	if err := s.summaryService.ApplyDelta(ctx, expense.AddDelta()); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter(MetricExpenseRecorded, map[string]string{"operation": "create"})
	return expense, nil
}

func (s *expenseService) Get(ctx context.Context, userID string, id uuid.UUID) (*models.Expense, error) {
	expense, err := s.expenseRepo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, storeError("get expense", err)
	}
	return expense, nil
}

func (s *expenseService) List(ctx context.Context, userID string, filters models.ExpenseFilters) ([]models.Expense, error) {
	if filters.StartDate != nil && filters.EndDate != nil && filters.EndDate.Before(*filters.StartDate) {
		return nil, newValidationError("end_date", "range end must not be before its start")
	}

	expenses, err := s.expenseRepo.ListByUser(ctx, userID, filters)
	if err != nil {
		return nil, storeError("list expenses", err)
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}
	return expenses, nil
}

// Update replaces the editable fields. The old contribution is always
// removed and the new one added, even when nothing relevant changed.
func (s *expenseService) Update(ctx context.Context, userID string, id uuid.UUID, input models.ExpenseInput) (*models.Expense, error) {
	expense, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	before := *expense
	applyExpenseInput(expense, input)

	if err := expense.Validate(); err != nil {
		return nil, validationFromModel(err)
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, persistError("update expense", err)
	}

	if err := s.summaryService.ApplyDeltas(ctx, []models.SummaryDelta{before.RemoveDelta(), expense.AddDelta()}); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter(MetricExpenseRecorded, map[string]string{"operation": "update"})
	return expense, nil
}

func (s *expenseService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	expense, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.expenseRepo.Delete(ctx, expense.ID); err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return ErrExpenseNotFound
		}
		return storeError("delete expense", err)
	}

	if err := s.summaryService.ApplyDelta(ctx, expense.RemoveDelta()); err != nil {
		return err
	}

	s.metrics.IncrementCounter(MetricExpenseRecorded, map[string]string{"operation": "delete"})
	s.logger.DebugContext(ctx, "expense deleted",
		slog.String("expense_id", expense.ID.String()),
		slog.String("user_id", userID),
	)
	return nil
}

func applyExpenseInput(expense *models.Expense, input models.ExpenseInput) {
	expense.ExpenseBookID = strings.TrimSpace(input.ExpenseBookID)
	expense.Amount = input.Amount
	expense.Category = strings.TrimSpace(input.Category)
	expense.PaymentMethod = input.PaymentMethod
	expense.Description = input.Description
	expense.Date = schedule.TruncateToDay(input.Date)
}
