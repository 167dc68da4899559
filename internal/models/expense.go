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

var ErrExpenseDateRequired = errors.New("expense date is required")

// Expense is a concrete spend record. ExpenseBookID is empty when the expense
// is not filed under a book. RecurringExpenseID is set when the expense was
// produced by paying a recurring definition.
type Expense struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID             string          `gorm:"type:varchar(255);not null;index:idx_expense_user_date,priority:1" json:"user_id"`
	ExpenseBookID      string          `gorm:"type:varchar(255);not null;default:''" json:"expense_book_id,omitempty"`
	Amount             decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category           string          `gorm:"type:varchar(100);not null" json:"category"`
	PaymentMethod      string          `gorm:"type:varchar(50)" json:"payment_method"`
	Description        string          `gorm:"type:text" json:"description,omitempty"`
	Date               time.Time       `gorm:"not null;index:idx_expense_user_date,priority:2" json:"date"`
	RecurringExpenseID *uuid.UUID      `gorm:"type:uuid;index" json:"recurring_expense_id,omitempty"`
	CreatedAt          time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"not null" json:"updated_at"`
}

func (e *Expense) TableName() string {
	return "expenses"
}

// BeforeCreate hook for Expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}
	return e.Validate()
}

// BeforeUpdate hook for Expense
func (e *Expense) BeforeUpdate(tx *gorm.DB) error {
	e.UpdatedAt = time.Now()
	return e.Validate()
}

func (e *Expense) Validate() error {
	if e.UserID == "" {
		return ErrUserIDRequired
	}
	if !e.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrCategoryRequired
	}
	if e.Date.IsZero() {
		return ErrExpenseDateRequired
	}
	return nil
}

// SummaryKey returns the daily summary bucket this expense counts toward.
func (e *Expense) SummaryKey() SummaryKey {
	return SummaryKey{
		UserID:        e.UserID,
		ExpenseBookID: e.ExpenseBookID,
		Date:          schedule.TruncateToDay(e.Date),
	}
}

// AddDelta is the summary contribution of recording this expense.
func (e *Expense) AddDelta() SummaryDelta {
	return SummaryDelta{
		SummaryKey: e.SummaryKey(),
		Category:   e.Category,
		Amount:     e.Amount,
		Count:      1,
	}
}

// RemoveDelta reverses AddDelta.
func (e *Expense) RemoveDelta() SummaryDelta {
	return SummaryDelta{
		SummaryKey: e.SummaryKey(),
		Category:   e.Category,
		Amount:     e.Amount.Neg(),
		Count:      -1,
	}
}

// ExpenseFilters narrows expense listings. Nil fields are not applied.
type ExpenseFilters struct {
	ExpenseBookID      *string
	Category           string
	StartDate          *time.Time
	EndDate            *time.Time
	RecurringExpenseID *uuid.UUID
}
