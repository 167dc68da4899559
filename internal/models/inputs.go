package models

import (
	"time"

	"finance-tracker/internal/schedule"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurringExpenseInput carries the fields of a new recurring definition.
type RecurringExpenseInput struct {
	Amount        decimal.Decimal
	Category      string
	PaymentMethod string
	Description   string
	Frequency     schedule.Frequency
	StartDate     time.Time
	EndDate       *time.Time
}

// RecurringExpensePatch is a partial update. Nil fields are left unchanged;
// ClearEndDate removes the end date.
type RecurringExpensePatch struct {
	Amount        *decimal.Decimal
	Category      *string
	PaymentMethod *string
	Description   *string
	Frequency     *schedule.Frequency
	StartDate     *time.Time
	EndDate       *time.Time
	ClearEndDate  bool
}

// IsEmpty reports whether the patch changes nothing.
func (p RecurringExpensePatch) IsEmpty() bool {
	return p.Amount == nil && p.Category == nil && p.PaymentMethod == nil &&
		p.Description == nil && p.Frequency == nil && p.StartDate == nil &&
		p.EndDate == nil && !p.ClearEndDate
}

// ExpenseInput carries the full set of editable expense fields.
type ExpenseInput struct {
	ExpenseBookID string
	Amount        decimal.Decimal
	Category      string
	PaymentMethod string
	Description   string
	Date          time.Time
}

// PaymentResult is the outcome of paying one occurrence of a recurring
// definition.
type PaymentResult struct {
	Expense    *Expense          `json:"expense"`
	Definition *RecurringExpense `json:"recurring_expense"`
}

// MarkPaidResult is the outcome of settling an upcoming payment. Expense is
// nil when the payment was not recorded as an expense.
type MarkPaidResult struct {
	PaymentID  uuid.UUID         `json:"upcoming_payment_id"`
	Expense    *Expense          `json:"expense,omitempty"`
	Definition *RecurringExpense `json:"recurring_expense"`
	Created    int               `json:"upcoming_payments_created"`
}
