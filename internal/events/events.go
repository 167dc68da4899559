// Package events publishes domain events for downstream consumers. Delivery
// is best effort: callers log publish failures and carry on.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TypePaymentRecorded      = "payment.recorded"
	TypeRecurringDeactivated = "recurring.deactivated"
	TypeSummaryRebuilt       = "summary.rebuilt"
)

// Event is the envelope written to the broker. Type doubles as the routing key.
type Event struct {
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}

// New stamps an event with the current UTC time.
func New(eventType, userID string, payload any) Event {
	return Event{
		Type:       eventType,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// Encode returns the JSON body for e.
func Encode(e Event) ([]byte, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal event %s: %w", e.Type, err)
	}
	return body, nil
}

// PaymentRecorded is the payload of TypePaymentRecorded. ExpenseID is nil
// when the payment only advanced the schedule.
type PaymentRecorded struct {
	RecurringExpenseID uuid.UUID       `json:"recurring_expense_id"`
	ExpenseID          *uuid.UUID      `json:"expense_id,omitempty"`
	Amount             decimal.Decimal `json:"amount"`
	Category           string          `json:"category"`
	PaidDate           string          `json:"paid_date"`
	NextOccurrence     string          `json:"next_occurrence"`
}

type RecurringDeactivated struct {
	RecurringExpenseID uuid.UUID `json:"recurring_expense_id"`
	PaymentsRemoved    int64     `json:"upcoming_payments_removed"`
}

type SummaryRebuilt struct {
	Rows int `json:"rows"`
}

// Publisher delivers events to a broker.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }

func (NoopPublisher) Close() error { return nil }
