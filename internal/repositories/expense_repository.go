package repositories

import (
	"context"
	"errors"
	"fmt"

	"finance-tracker/internal/models"
	"finance-tracker/internal/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	if expense == nil {
		return errors.New("expense cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

func (r *expenseRepository) GetByIDForUser(ctx context.Context, id uuid.UUID, userID string) (*models.Expense, error) {
	var expense models.Expense

	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&expense).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return &expense, nil
}

// ListByUser returns the user's expenses matching filters, oldest first.
func (r *expenseRepository) ListByUser(ctx context.Context, userID string, filters models.ExpenseFilters) ([]models.Expense, error) {
	expenses := []models.Expense{}

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if filters.ExpenseBookID != nil {
		query = query.Where("expense_book_id = ?", *filters.ExpenseBookID)
	}

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}

	if filters.StartDate != nil {
		query = query.Where("date >= ?", schedule.TruncateToDay(*filters.StartDate))
	}

	if filters.EndDate != nil {
		query = query.Where("date < ?", schedule.TruncateToDay(*filters.EndDate).AddDate(0, 0, 1))
	}

	if filters.RecurringExpenseID != nil {
		query = query.Where("recurring_expense_id = ?", *filters.RecurringExpenseID)
	}

	if err := query.Order("date ASC, created_at ASC").Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return expenses, nil
}

func (r *expenseRepository) Update(ctx context.Context, expense *models.Expense) error {
	if expense == nil {
		return errors.New("expense cannot be nil")
	}

	if err := r.db.WithContext(ctx).Save(expense).Error; err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	return nil
}

func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Expense{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}
