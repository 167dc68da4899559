package dto

import "finance-tracker/internal/models"

// MarkPaidRequest represents the request payload for settling an upcoming payment.
// RecordAsExpense defaults to true when omitted.
type MarkPaidRequest struct {
	PaidDate        string `json:"paid_date" validate:"required,date"`
	RecordAsExpense *bool  `json:"record_as_expense,omitempty"`
}

// ShouldRecordExpense applies the default for RecordAsExpense.
func (r MarkPaidRequest) ShouldRecordExpense() bool {
	return r.RecordAsExpense == nil || *r.RecordAsExpense
}

// UpcomingPaymentListResponse wraps the projected payments of a user
type UpcomingPaymentListResponse struct {
	UpcomingPayments []models.UpcomingPayment `json:"upcoming_payments"`
	Total            int                      `json:"total"`
}

// GenerateResponse reports how many upcoming payments a bulk call created
type GenerateResponse struct {
	Created int `json:"created"`
}

// RefreshResponse reports how many statuses changed
type RefreshResponse struct {
	Updated int `json:"updated"`
}
