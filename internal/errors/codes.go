package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthExpiredToken       ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat ErrorCode = "AUTH_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral          ErrorCode = "VALIDATION_001"
	ValidationRequiredField    ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat    ErrorCode = "VALIDATION_003"
	ValidationOutOfRange       ErrorCode = "VALIDATION_004"
	ValidationInvalidDate      ErrorCode = "VALIDATION_005"
	ValidationInvalidFrequency ErrorCode = "VALIDATION_006"
	ValidationInvalidID        ErrorCode = "VALIDATION_007"
)

// Recurring expense error codes (RECURRING_*)
const (
	RecurringNotFound ErrorCode = "RECURRING_001"
)

// Upcoming payment error codes (UPCOMING_*)
const (
	UpcomingNotFound ErrorCode = "UPCOMING_001"
)

// Expense error codes (EXPENSE_*)
const (
	ExpenseNotFound ErrorCode = "EXPENSE_001"
)

// Daily summary error codes (SUMMARY_*)
const (
	SummaryNotFound ErrorCode = "SUMMARY_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
	SystemRouteNotFound      ErrorCode = "SYSTEM_006"
)

var errorMessages = map[ErrorCode]string{
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token",

	ValidationGeneral:          "Validation failed",
	ValidationRequiredField:    "Required field is missing",
	ValidationInvalidFormat:    "Invalid field format",
	ValidationOutOfRange:       "Field value is out of allowed range",
	ValidationInvalidDate:      "Invalid date format or range, expected YYYY-MM-DD",
	ValidationInvalidFrequency: "Frequency must be one of daily, weekly, monthly, yearly",
	ValidationInvalidID:        "Invalid identifier format",

	RecurringNotFound: "Recurring expense not found",
	UpcomingNotFound:  "Upcoming payment not found",
	ExpenseNotFound:   "Expense not found",
	SummaryNotFound:   "No spending recorded for this day",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Resource not found",
}

// GetErrorMessage returns the default message for code, or a generic one for
// unknown codes.
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
