package services

import (
	"errors"
	"fmt"

	"finance-tracker/internal/models"
)

var (
	ErrRecurringExpenseNotFound = errors.New("recurring expense not found")
	ErrUpcomingPaymentNotFound  = errors.New("upcoming payment not found")
	ErrExpenseNotFound          = errors.New("expense not found")
	ErrDailySummaryNotFound     = errors.New("daily summary not found")
	ErrStoreUnavailable         = errors.New("store unavailable")
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsNotFound reports whether err means the referenced row does not exist for
// the caller.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRecurringExpenseNotFound) ||
		errors.Is(err, ErrUpcomingPaymentNotFound) ||
		errors.Is(err, ErrExpenseNotFound) ||
		errors.Is(err, ErrDailySummaryNotFound)
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// storeError wraps a repository failure so callers can match
// ErrStoreUnavailable while keeping the cause.
func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, err)
}

var modelFieldErrors = []struct {
	err   error
	field string
}{
	{models.ErrUserIDRequired, "user_id"},
	{models.ErrInvalidAmount, "amount"},
	{models.ErrCategoryRequired, "category"},
	{models.ErrInvalidFrequency, "frequency"},
	{models.ErrStartDateRequired, "start_date"},
	{models.ErrEndDateBeforeStart, "end_date"},
	{models.ErrNextBeforeStartDate, "start_date"},
	{models.ErrExpenseDateRequired, "date"},
}

// validationFromModel converts a model validation sentinel into a
// ValidationError, or returns err unchanged.
func validationFromModel(err error) error {
	if err == nil {
		return nil
	}
	for _, fe := range modelFieldErrors {
		if errors.Is(err, fe.err) {
			return newValidationError(fe.field, fe.err.Error())
		}
	}
	return err
}

// persistError keeps hook validation failures as ValidationError and wraps
// everything else as a store failure.
func persistError(op string, err error) error {
	if converted := validationFromModel(err); IsValidationError(converted) {
		return converted
	}
	return storeError(op, err)
}
