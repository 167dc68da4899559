package handlers

import (
	"fmt"
	"strings"
	"time"

	apierrors "finance-tracker/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getUserIDFromContext returns the opaque user id set by the auth middleware
func getUserIDFromContext(c echo.Context) (string, error) {
	userID, ok := c.Get("user_id").(string)
	if !ok || strings.TrimSpace(userID) == "" {
		return "", ErrUnauthorized
	}
	return userID, nil
}

// parseIDParam reads a UUID path parameter. On failure the 400 response has
// already been written and ok is false.
func parseIDParam(c echo.Context, name string) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false, SendError(c, apierrors.ValidationInvalidID, apierrors.WithDetails("Invalid "+name))
	}
	return id, true, nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
