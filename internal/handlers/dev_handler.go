package handlers

import (
	"net/http"
	"time"

	"finance-tracker/internal/dto"
	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultSeedDays  = 30
	defaultSeedCount = 50
)

// DevHandler handles development-only endpoints. The routes are only
// registered outside production.
type DevHandler struct {
	tokenService     services.TokenServiceInterface
	expenseService   services.ExpenseServiceInterface
	recurringService services.RecurringServiceInterface
	newGenerator     func(seed uint64) services.ExpenseGeneratorInterface
	now              func() time.Time
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	tokenService services.TokenServiceInterface,
	expenseService services.ExpenseServiceInterface,
	recurringService services.RecurringServiceInterface,
) *DevHandler {
	return &DevHandler{
		tokenService:     tokenService,
		expenseService:   expenseService,
		recurringService: recurringService,
		newGenerator:     services.NewExpenseGenerator,
		now:              utcNow,
	}
}

// IssueToken signs an access token for any user id
//
// Method: POST /api/v1/dev/token
// Authentication: None
// Environment: Development only
//
// Success Response: 200 OK
//   - access_token, token_type, expires_at
func (h *DevHandler) IssueToken(c echo.Context) error {
	var req dto.DevTokenRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(req.UserID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DevTokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	})
}

// Seed generates fake expenses, and optionally recurring bills, for the caller
//
// Method: POST /api/v1/dev/seed
// Authentication: Required
// Environment: Development only
//
// Body:
//   - days: history length (default 30, max 365)
//   - count: number of expenses (default 50, max 1000)
//   - seed: generator seed, 0 for random
//   - include_recurring: also create one definition per bill profile
func (h *DevHandler) Seed(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.SeedRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	days := req.Days
	if days == 0 {
		days = defaultSeedDays
	}
	count := req.Count
	if count == 0 {
		count = defaultSeedCount
	}

	ctx := c.Request().Context()
	now := h.now()
	generator := h.newGenerator(req.Seed)

	var resp dto.SeedResponse
	for _, input := range generator.GenerateExpenses(now.AddDate(0, 0, -days), now, count) {
		if _, err := h.expenseService.Create(ctx, userID, input); err != nil {
			return sendServiceError(c, err)
		}
		resp.ExpensesCreated++
	}

	if req.IncludeRecurring {
		for _, input := range generator.GenerateRecurring(now) {
			if _, err := h.recurringService.Create(ctx, userID, input, now); err != nil {
				return sendServiceError(c, err)
			}
			resp.RecurringCreated++
		}
	}

	return c.JSON(http.StatusCreated, resp)
}
