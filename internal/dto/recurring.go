package dto

import (
	"fmt"
	"strings"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/schedule"

	"github.com/shopspring/decimal"
)

// Recurring Expense Request DTOs

// CreateRecurringExpenseRequest represents the request payload for creating a recurring expense
type CreateRecurringExpenseRequest struct {
	Amount        string  `json:"amount" validate:"required,positive_decimal"`
	Category      string  `json:"category" validate:"required,max=100"`
	PaymentMethod string  `json:"payment_method" validate:"max=50"`
	Description   string  `json:"description" validate:"max=500"`
	Frequency     string  `json:"frequency" validate:"required,frequency"`
	StartDate     string  `json:"start_date" validate:"required,date"`
	EndDate       *string `json:"end_date,omitempty" validate:"omitempty,date"`
}

// ToInput converts the validated request into service input.
func (r CreateRecurringExpenseRequest) ToInput() (models.RecurringExpenseInput, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(r.Amount))
	if err != nil {
		return models.RecurringExpenseInput{}, fmt.Errorf("amount: %w", err)
	}
	frequency, err := schedule.ParseFrequency(r.Frequency)
	if err != nil {
		return models.RecurringExpenseInput{}, fmt.Errorf("frequency: %w", err)
	}
	start, err := schedule.ParseDate(r.StartDate)
	if err != nil {
		return models.RecurringExpenseInput{}, fmt.Errorf("start_date: %w", err)
	}
	end, err := parseOptionalDate(r.EndDate)
	if err != nil {
		return models.RecurringExpenseInput{}, fmt.Errorf("end_date: %w", err)
	}

	return models.RecurringExpenseInput{
		Amount:        amount,
		Category:      r.Category,
		PaymentMethod: r.PaymentMethod,
		Description:   r.Description,
		Frequency:     frequency,
		StartDate:     start,
		EndDate:       end,
	}, nil
}

// UpdateRecurringExpenseRequest represents a partial update. Omitted fields
// are left unchanged; clear_end_date removes the end date.
type UpdateRecurringExpenseRequest struct {
	Amount        *string `json:"amount,omitempty" validate:"omitempty,positive_decimal"`
	Category      *string `json:"category,omitempty" validate:"omitempty,min=1,max=100"`
	PaymentMethod *string `json:"payment_method,omitempty" validate:"omitempty,max=50"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Frequency     *string `json:"frequency,omitempty" validate:"omitempty,frequency"`
	StartDate     *string `json:"start_date,omitempty" validate:"omitempty,date"`
	EndDate       *string `json:"end_date,omitempty" validate:"omitempty,date"`
	ClearEndDate  bool    `json:"clear_end_date,omitempty"`
}

// ToPatch converts the validated request into a service patch.
func (r UpdateRecurringExpenseRequest) ToPatch() (models.RecurringExpensePatch, error) {
	patch := models.RecurringExpensePatch{
		Category:      r.Category,
		PaymentMethod: r.PaymentMethod,
		Description:   r.Description,
		ClearEndDate:  r.ClearEndDate,
	}

	if r.Amount != nil {
		amount, err := decimal.NewFromString(strings.TrimSpace(*r.Amount))
		if err != nil {
			return patch, fmt.Errorf("amount: %w", err)
		}
		patch.Amount = &amount
	}
	if r.Frequency != nil {
		frequency, err := schedule.ParseFrequency(*r.Frequency)
		if err != nil {
			return patch, fmt.Errorf("frequency: %w", err)
		}
		patch.Frequency = &frequency
	}

	var err error
	if patch.StartDate, err = parseOptionalDate(r.StartDate); err != nil {
		return patch, fmt.Errorf("start_date: %w", err)
	}
	if patch.EndDate, err = parseOptionalDate(r.EndDate); err != nil {
		return patch, fmt.Errorf("end_date: %w", err)
	}

	return patch, nil
}

// RecordPaymentRequest represents the request payload for paying one occurrence
type RecordPaymentRequest struct {
	PaidDate string `json:"paid_date" validate:"required,date"`
}

// Recurring Expense Response DTOs

// RecurringExpenseListResponse wraps a list of definitions
type RecurringExpenseListResponse struct {
	RecurringExpenses []models.RecurringExpense `json:"recurring_expenses"`
	Total             int                       `json:"total"`
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := schedule.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
