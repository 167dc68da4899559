package dto

import (
	"fmt"
	"strings"

	"finance-tracker/internal/models"
	"finance-tracker/internal/schedule"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseRequest is the payload for creating or replacing an expense
type ExpenseRequest struct {
	ExpenseBookID string `json:"expense_book_id" validate:"max=255"`
	Amount        string `json:"amount" validate:"required,positive_decimal"`
	Category      string `json:"category" validate:"required,max=100"`
	PaymentMethod string `json:"payment_method" validate:"max=50"`
	Description   string `json:"description" validate:"max=500"`
	Date          string `json:"date" validate:"required,date"`
}

func (r ExpenseRequest) ToInput() (models.ExpenseInput, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(r.Amount))
	if err != nil {
		return models.ExpenseInput{}, fmt.Errorf("amount: %w", err)
	}
	date, err := schedule.ParseDate(r.Date)
	if err != nil {
		return models.ExpenseInput{}, fmt.Errorf("date: %w", err)
	}

	return models.ExpenseInput{
		ExpenseBookID: r.ExpenseBookID,
		Amount:        amount,
		Category:      r.Category,
		PaymentMethod: r.PaymentMethod,
		Description:   r.Description,
		Date:          date,
	}, nil
}

// ExpenseListQuery holds the optional filters of GET /expenses
type ExpenseListQuery struct {
	From               string `query:"from" validate:"omitempty,date"`
	To                 string `query:"to" validate:"omitempty,date"`
	Category           string `query:"category" validate:"max=100"`
	ExpenseBookID      string `query:"expense_book_id" validate:"max=255"`
	RecurringExpenseID string `query:"recurring_expense_id" validate:"omitempty,uuid"`
}

// ToFilters converts the validated query into repository filters. An empty
// expense_book_id means all books.
func (q ExpenseListQuery) ToFilters() (models.ExpenseFilters, error) {
	var filters models.ExpenseFilters
	filters.Category = strings.TrimSpace(q.Category)

	if q.ExpenseBookID != "" {
		book := q.ExpenseBookID
		filters.ExpenseBookID = &book
	}
	if q.From != "" {
		from, err := schedule.ParseDate(q.From)
		if err != nil {
			return filters, fmt.Errorf("from: %w", err)
		}
		filters.StartDate = &from
	}
	if q.To != "" {
		to, err := schedule.ParseDate(q.To)
		if err != nil {
			return filters, fmt.Errorf("to: %w", err)
		}
		filters.EndDate = &to
	}
	if q.RecurringExpenseID != "" {
		id, err := uuid.Parse(q.RecurringExpenseID)
		if err != nil {
			return filters, fmt.Errorf("recurring_expense_id: %w", err)
		}
		filters.RecurringExpenseID = &id
	}

	return filters, nil
}

// ExpenseListResponse wraps a list of expenses
type ExpenseListResponse struct {
	Expenses []models.Expense `json:"expenses"`
	Total    int              `json:"total"`
}
