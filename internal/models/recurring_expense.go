package models

import (
	"errors"
	"strings"
	"time"

	"finance-tracker/internal/schedule"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrCategoryRequired    = errors.New("category is required")
	ErrUserIDRequired      = errors.New("user ID is required")
	ErrInvalidFrequency    = errors.New("frequency must be one of daily, weekly, monthly, yearly")
	ErrStartDateRequired   = errors.New("start date is required")
	ErrEndDateBeforeStart  = errors.New("end date must not be before start date")
	ErrNextBeforeStartDate = errors.New("next occurrence must not be before start date")
)

// RecurringExpense is a template for a repeating bill. It is never hard
// deleted; IsActive=false retires it while keeping expense back-references
// resolvable.
type RecurringExpense struct {
	ID             uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID         string             `gorm:"type:varchar(255);not null;index:idx_recurring_user_active,priority:1" json:"user_id"`
	Amount         decimal.Decimal    `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category       string             `gorm:"type:varchar(100);not null" json:"category"`
	PaymentMethod  string             `gorm:"type:varchar(50)" json:"payment_method"`
	Description    string             `gorm:"type:text" json:"description,omitempty"`
	Frequency      schedule.Frequency `gorm:"type:varchar(10);not null" json:"frequency"`
	StartDate      time.Time          `gorm:"not null" json:"start_date"`
	EndDate        *time.Time         `json:"end_date,omitempty"`
	NextOccurrence time.Time          `gorm:"not null" json:"next_occurrence"`
	LastProcessed  *time.Time         `json:"last_processed,omitempty"`
	IsActive       bool               `gorm:"not null;default:true;index:idx_recurring_user_active,priority:2" json:"is_active"`
	CreatedAt      time.Time          `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time          `gorm:"not null" json:"updated_at"`
}

func (r *RecurringExpense) TableName() string {
	return "recurring_expenses"
}

// BeforeCreate hook for RecurringExpense
func (r *RecurringExpense) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}

	return r.Validate()
}

// BeforeUpdate hook for RecurringExpense
func (r *RecurringExpense) BeforeUpdate(tx *gorm.DB) error {
	r.UpdatedAt = time.Now()
	return r.Validate()
}

// Validate checks the definition's field-level invariants.
func (r *RecurringExpense) Validate() error {
	if r.UserID == "" {
		return ErrUserIDRequired
	}
	if !r.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(r.Category) == "" {
		return ErrCategoryRequired
	}
	if !r.Frequency.IsValid() {
		return ErrInvalidFrequency
	}
	if r.StartDate.IsZero() {
		return ErrStartDateRequired
	}
	if r.EndDate != nil && r.EndDate.Before(r.StartDate) {
		return ErrEndDateBeforeStart
	}
	if r.NextOccurrence.Before(r.StartDate) {
		return ErrNextBeforeStartDate
	}
	return nil
}

// IsPastEnd reports whether date falls after the inclusive end date.
func (r *RecurringExpense) IsPastEnd(date time.Time) bool {
	return r.EndDate != nil && schedule.TruncateToDay(date).After(schedule.TruncateToDay(*r.EndDate))
}

// Advance records a payment on paidDate and moves NextOccurrence one period
// past it, never earlier than StartDate.
func (r *RecurringExpense) Advance(paidDate time.Time) {
	paid := schedule.TruncateToDay(paidDate)
	r.LastProcessed = &paid

	next := schedule.NextOccurrence(paid, r.Frequency)
	start := schedule.TruncateToDay(r.StartDate)
	if next.Before(start) {
		next = start
	}
	r.NextOccurrence = next
}
