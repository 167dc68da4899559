package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type upcomingPaymentRepository struct {
	db *gorm.DB
}

// NewUpcomingPaymentRepository creates a new upcoming payment repository
func NewUpcomingPaymentRepository(db *gorm.DB) UpcomingPaymentRepositoryInterface {
	return &upcomingPaymentRepository{db: db}
}

// Create inserts a projected payment. A second row for the same definition
// and due date yields ErrUpcomingPaymentExists.
func (r *upcomingPaymentRepository) Create(ctx context.Context, payment *models.UpcomingPayment) error {
	if payment == nil {
		return errors.New("upcoming payment cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrUpcomingPaymentExists
		}
		return fmt.Errorf("failed to create upcoming payment: %w", err)
	}
	return nil
}

func (r *upcomingPaymentRepository) GetByIDForUser(ctx context.Context, id uuid.UUID, userID string) (*models.UpcomingPayment, error) {
	var payment models.UpcomingPayment

	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUpcomingPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get upcoming payment: %w", err)
	}

	return &payment, nil
}

func (r *upcomingPaymentRepository) ListByUser(ctx context.Context, userID string) ([]models.UpcomingPayment, error) {
	payments := []models.UpcomingPayment{}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_date ASC, category ASC").
		Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to list upcoming payments: %w", err)
	}

	return payments, nil
}

func (r *upcomingPaymentRepository) ListByRecurringExpense(ctx context.Context, recurringExpenseID uuid.UUID) ([]models.UpcomingPayment, error) {
	payments := []models.UpcomingPayment{}

	if err := r.db.WithContext(ctx).
		Where("recurring_expense_id = ?", recurringExpenseID).
		Order("due_date ASC").
		Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to list upcoming payments for recurring expense: %w", err)
	}

	return payments, nil
}

func (r *upcomingPaymentRepository) CountByRecurringExpense(ctx context.Context, recurringExpenseID uuid.UUID) (int64, error) {
	var count int64

	if err := r.db.WithContext(ctx).
		Model(&models.UpcomingPayment{}).
		Where("recurring_expense_id = ?", recurringExpenseID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count upcoming payments: %w", err)
	}

	return count, nil
}

func (r *upcomingPaymentRepository) ExistsForDueDate(ctx context.Context, recurringExpenseID uuid.UUID, dueDate time.Time) (bool, error) {
	var count int64

	if err := r.db.WithContext(ctx).
		Model(&models.UpcomingPayment{}).
		Where("recurring_expense_id = ? AND due_date = ?", recurringExpenseID, schedule.TruncateToDay(dueDate)).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check upcoming payment due date: %w", err)
	}

	return count > 0, nil
}

func (r *upcomingPaymentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status schedule.DueStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.UpcomingPayment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update upcoming payment status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUpcomingPaymentNotFound
	}
	return nil
}

func (r *upcomingPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.UpcomingPayment{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete upcoming payment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUpcomingPaymentNotFound
	}
	return nil
}

// DeleteByRecurringExpense removes every projected payment of a definition and
// returns how many were removed.
func (r *upcomingPaymentRepository) DeleteByRecurringExpense(ctx context.Context, recurringExpenseID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("recurring_expense_id = ?", recurringExpenseID).
		Delete(&models.UpcomingPayment{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete upcoming payments: %w", result.Error)
	}
	return result.RowsAffected, nil
}
