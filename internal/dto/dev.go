package dto

import "time"

// DevTokenRequest asks for an access token for an arbitrary user id
type DevTokenRequest struct {
	UserID string `json:"user_id" validate:"required,max=255"`
}

// DevTokenResponse carries a signed access token
type DevTokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// SeedRequest controls fake data generation. Zero values fall back to defaults.
type SeedRequest struct {
	Days             int    `json:"days" validate:"omitempty,min=1,max=365"`
	Count            int    `json:"count" validate:"omitempty,min=1,max=1000"`
	Seed             uint64 `json:"seed"`
	IncludeRecurring bool   `json:"include_recurring"`
}

// SeedResponse reports what a seed call created
type SeedResponse struct {
	ExpensesCreated  int `json:"expenses_created"`
	RecurringCreated int `json:"recurring_created"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
