package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrRecurringExpenseNotFound = errors.New("recurring expense not found")
	ErrUpcomingPaymentNotFound  = errors.New("upcoming payment not found")
	ErrUpcomingPaymentExists    = errors.New("upcoming payment already exists for due date")
	ErrExpenseNotFound          = errors.New("expense not found")
	ErrDailySummaryNotFound     = errors.New("daily summary not found")
)

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}
