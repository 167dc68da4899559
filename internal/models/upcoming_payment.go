package models

import (
	"time"

	"finance-tracker/internal/schedule"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UpcomingPayment is one projected, not yet paid occurrence of a recurring
// expense. At most one row exists per (RecurringExpenseID, DueDate).
type UpcomingPayment struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	RecurringExpenseID uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_upcoming_recurring_due,priority:1" json:"recurring_expense_id"`
	UserID             string             `gorm:"type:varchar(255);not null;index" json:"user_id"`
	Amount             decimal.Decimal    `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category           string             `gorm:"type:varchar(100);not null" json:"category"`
	PaymentMethod      string             `gorm:"type:varchar(50)" json:"payment_method"`
	Description        string             `gorm:"type:text" json:"description,omitempty"`
	Frequency          schedule.Frequency `gorm:"type:varchar(10);not null" json:"frequency"`
	DueDate            time.Time          `gorm:"not null;uniqueIndex:idx_upcoming_recurring_due,priority:2" json:"due_date"`
	Status             schedule.DueStatus `gorm:"type:varchar(10);not null" json:"status"`
	CreatedAt          time.Time          `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time          `gorm:"not null" json:"updated_at"`
}

func (u *UpcomingPayment) TableName() string {
	return "upcoming_payments"
}

// BeforeCreate hook for UpcomingPayment
func (u *UpcomingPayment) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}
	return nil
}

// NewUpcomingPayment projects def onto dueDate, copying the definition's
// amount, category, payment method, description and frequency.
func NewUpcomingPayment(def *RecurringExpense, dueDate, now time.Time) *UpcomingPayment {
	due := schedule.TruncateToDay(dueDate)
	return &UpcomingPayment{
		RecurringExpenseID: def.ID,
		UserID:             def.UserID,
		Amount:             def.Amount,
		Category:           def.Category,
		PaymentMethod:      def.PaymentMethod,
		Description:        def.Description,
		Frequency:          def.Frequency,
		DueDate:            due,
		Status:             schedule.ClassifyDueStatus(due, now),
	}
}
