package dto

import "finance-tracker/internal/models"

// SummaryRangeQuery selects daily summaries between two inclusive dates
type SummaryRangeQuery struct {
	From          string `query:"from" validate:"required,date"`
	To            string `query:"to" validate:"required,date"`
	ExpenseBookID string `query:"expense_book_id" validate:"max=255"`
}

// BookID returns nil when no book was requested, meaning every book.
func (q SummaryRangeQuery) BookID() *string {
	if q.ExpenseBookID == "" {
		return nil
	}
	book := q.ExpenseBookID
	return &book
}

// DailySummaryListResponse wraps the rows of a range query
type DailySummaryListResponse struct {
	DailySummaries []models.DailySummary `json:"daily_summaries"`
	Total          int                   `json:"total"`
}

// RebuildResponse reports how many summary rows a rebuild wrote
type RebuildResponse struct {
	Rows int `json:"rows"`
}
