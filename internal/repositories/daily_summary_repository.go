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
	"gorm.io/gorm/clause"
)

type dailySummaryRepository struct {
	db *gorm.DB
}

// NewDailySummaryRepository creates a new daily summary repository
func NewDailySummaryRepository(db *gorm.DB) DailySummaryRepositoryInterface {
	return &dailySummaryRepository{db: db}
}

func (r *dailySummaryRepository) GetByKey(ctx context.Context, key models.SummaryKey) (*models.DailySummary, error) {
	var summary models.DailySummary
	key = key.Normalize()

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ? AND expense_book_id = ?", key.UserID, key.Date, key.ExpenseBookID).
		First(&summary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDailySummaryNotFound
		}
		return nil, fmt.Errorf("failed to get daily summary: %w", err)
	}

	return &summary, nil
}

// ListRange returns summaries with from <= date <= to. A nil expenseBookID
// returns every book, including the no-book bucket.
func (r *dailySummaryRepository) ListRange(ctx context.Context, userID string, expenseBookID *string, from, to time.Time) ([]models.DailySummary, error) {
	summaries := []models.DailySummary{}

	query := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, schedule.TruncateToDay(from), schedule.TruncateToDay(to))
	if expenseBookID != nil {
		query = query.Where("expense_book_id = ?", *expenseBookID)
	}

	if err := query.Order("date ASC, expense_book_id ASC").Find(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to list daily summaries: %w", err)
	}

	return summaries, nil
}

// Upsert replaces a loaded row by ID, or inserts a new one. An insert that
// collides with an existing key overwrites that row's totals.
func (r *dailySummaryRepository) Upsert(ctx context.Context, summary *models.DailySummary) error {
	if summary == nil {
		return errors.New("daily summary cannot be nil")
	}
	summary.Date = schedule.TruncateToDay(summary.Date)

	db := r.db.WithContext(ctx)
	if summary.ID != uuid.Nil {
		if err := db.Save(summary).Error; err != nil {
			return fmt.Errorf("failed to update daily summary: %w", err)
		}
		return nil
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}, {Name: "expense_book_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"categories", "total_spent", "updated_at"}),
	}).Create(summary).Error
	if err != nil {
		return fmt.Errorf("failed to create daily summary: %w", err)
	}
	return nil
}

func (r *dailySummaryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.DailySummary{}).Error; err != nil {
		return fmt.Errorf("failed to delete daily summary: %w", err)
	}
	return nil
}
