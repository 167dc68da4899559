package repositories

import (
	"context"
	"errors"
	"fmt"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type recurringExpenseRepository struct {
	db *gorm.DB
}

// NewRecurringExpenseRepository creates a new recurring expense repository
func NewRecurringExpenseRepository(db *gorm.DB) RecurringExpenseRepositoryInterface {
	return &recurringExpenseRepository{db: db}
}

func (r *recurringExpenseRepository) Create(ctx context.Context, def *models.RecurringExpense) error {
	if def == nil {
		return errors.New("recurring expense cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(def).Error; err != nil {
		return fmt.Errorf("failed to create recurring expense: %w", err)
	}
	return nil
}

// GetByIDForUser returns ErrRecurringExpenseNotFound both for missing rows and
// rows owned by another user.
func (r *recurringExpenseRepository) GetByIDForUser(ctx context.Context, id uuid.UUID, userID string) (*models.RecurringExpense, error) {
	var def models.RecurringExpense

	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&def).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecurringExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get recurring expense: %w", err)
	}

	return &def, nil
}

// ListByUser lists the user's definitions ordered by next occurrence. A nil
// active filter returns both active and retired definitions.
func (r *recurringExpenseRepository) ListByUser(ctx context.Context, userID string, active *bool) ([]models.RecurringExpense, error) {
	defs := []models.RecurringExpense{}

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if active != nil {
		query = query.Where("is_active = ?", *active)
	}

	if err := query.Order("next_occurrence ASC, created_at ASC").Find(&defs).Error; err != nil {
		return nil, fmt.Errorf("failed to list recurring expenses: %w", err)
	}

	return defs, nil
}

func (r *recurringExpenseRepository) Update(ctx context.Context, def *models.RecurringExpense) error {
	if def == nil {
		return errors.New("recurring expense cannot be nil")
	}

	if err := r.db.WithContext(ctx).Save(def).Error; err != nil {
		return fmt.Errorf("failed to update recurring expense: %w", err)
	}
	return nil
}
