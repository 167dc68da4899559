package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sort"

	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/services"
	"finance-tracker/internal/validation"

	"github.com/labstack/echo/v4"
)

// All handlers report failures through SendError (4xx) or SendSystemError /
// sendServiceError (5xx). Internal error text never reaches the client.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = apierrors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code apierrors.ErrorCode, opts ...apierrors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := apierrors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with a generic message
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := apierrors.WrapSystemError(err, traceID)
	logFailure(c, err)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

var notFoundCodes = []struct {
	err  error
	code apierrors.ErrorCode
}{
	{services.ErrRecurringExpenseNotFound, apierrors.RecurringNotFound},
	{services.ErrUpcomingPaymentNotFound, apierrors.UpcomingNotFound},
	{services.ErrExpenseNotFound, apierrors.ExpenseNotFound},
	{services.ErrDailySummaryNotFound, apierrors.SummaryNotFound},
}

// sendServiceError maps a service failure onto the error catalog.
func sendServiceError(c echo.Context, err error) error {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		return SendError(c, validationCode(ve.Field), apierrors.WithDetails(ve.Field+": "+ve.Message))
	}

	for _, nf := range notFoundCodes {
		if errors.Is(err, nf.err) {
			return SendError(c, nf.code)
		}
	}

	if errors.Is(err, services.ErrStoreUnavailable) {
		errorResponse, _ := apierrors.WrapDatabaseError(err, getTraceID(c))
		logFailure(c, err)
		return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
	}

	return SendSystemError(c, err)
}

func logFailure(c echo.Context, err error) {
	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", getTraceID(c),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)
}

func validationCode(field string) apierrors.ErrorCode {
	switch field {
	case "frequency":
		return apierrors.ValidationInvalidFrequency
	case "start_date", "end_date", "paid_date", "date", "from", "to":
		return apierrors.ValidationInvalidDate
	case "amount":
		return apierrors.ValidationOutOfRange
	default:
		return apierrors.ValidationGeneral
	}
}

// validationDetails renders validator failures as sorted "field: message" lines.
func validationDetails(err error) []string {
	fields := validation.FieldErrors(err)
	details := make([]string, 0, len(fields))
	for field, msg := range fields {
		details = append(details, field+": "+msg)
	}
	sort.Strings(details)
	return details
}

// bindAndValidate binds the request body or query into req and validates it.
// When it reports handled, the 400 response has already been written.
func bindAndValidate(c echo.Context, req interface{}) (handled bool, err error) {
	if err := c.Bind(req); err != nil {
		return true, SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return true, SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(validationDetails(err)...))
	}
	return false, nil
}
