package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/logging"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a handler panic into a SYSTEM_001 response. The panic
// is logged with the request's correlation id and counted in
// api_errors_total. Nothing is written once the response is committed.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				ctx := c.Request().Context()
				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				slog.ErrorContext(ctx, "panic recovered",
					slog.String("trace_id", traceID),
					slog.String("correlation_id", logging.CorrelationID(ctx)),
					slog.String("panic", fmt.Sprintf("%v", r)),
					slog.String("stack_trace", string(debug.Stack())),
					slog.String("path", c.Request().URL.Path),
					slog.String("method", c.Request().Method),
				)

				recordAPIError(c, string(apierrors.SystemInternalError), http.StatusInternalServerError)

				if c.Response().Committed {
					return
				}

				resp := apierrors.NewErrorResponse(apierrors.SystemInternalError, traceID)
				if err := c.JSON(http.StatusInternalServerError, resp); err != nil {
					slog.ErrorContext(ctx, "failed to send panic response",
						slog.String("trace_id", traceID),
						slog.String("error", err.Error()),
					)
				}
			}()

			return next(c)
		}
	}
}
