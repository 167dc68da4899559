package handlers

import (
	"net/http"
	"strconv"
	"time"

	"finance-tracker/internal/dto"
	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/schedule"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// RecurringHandler handles recurring expense HTTP requests
type RecurringHandler struct {
	recurringService services.RecurringServiceInterface
	now              func() time.Time
}

// NewRecurringHandler creates a new recurring expense handler
func NewRecurringHandler(recurringService services.RecurringServiceInterface) *RecurringHandler {
	return &RecurringHandler{
		recurringService: recurringService,
		now:              utcNow,
	}
}

// Create registers a new recurring expense and fills its upcoming window
// @Summary Create a recurring expense
// @Tags Recurring
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateRecurringExpenseRequest true "Recurring expense definition"
// @Success 201 {object} models.RecurringExpense
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_* - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Store unavailable"
// @Router /recurring-expenses [post]
func (h *RecurringHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateRecurringExpenseRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	input, err := req.ToInput()
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}

	def, err := h.recurringService.Create(c.Request().Context(), userID, input, h.now())
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, def)
}

// List returns the caller's definitions, optionally filtered by ?active=
// @Summary List recurring expenses
// @Tags Recurring
// @Security BearerAuth
// @Produce json
// @Param active query bool false "Only active (true) or inactive (false) definitions"
// @Success 200 {object} dto.RecurringExpenseListResponse
// @Router /recurring-expenses [get]
func (h *RecurringHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var active *bool
	if raw := c.QueryParam("active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("active must be true or false"))
		}
		active = &parsed
	}

	defs, err := h.recurringService.List(c.Request().Context(), userID, active)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.RecurringExpenseListResponse{
		RecurringExpenses: defs,
		Total:             len(defs),
	})
}

// Get returns one definition
// @Summary Get a recurring expense
// @Tags Recurring
// @Security BearerAuth
// @Produce json
// @Param id path string true "Recurring expense ID (UUID)"
// @Success 200 {object} models.RecurringExpense
// @Failure 404 {object} errors.ErrorResponse "RECURRING_001 - Recurring expense not found"
// @Router /recurring-expenses/{id} [get]
func (h *RecurringHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, ok, err := parseIDParam(c, "id")
	if !ok {
		return err
	}

	def, err := h.recurringService.Get(c.Request().Context(), userID, id)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, def)
}

// Update applies a partial update. Changing amount, frequency or start date
// replaces the projected upcoming payments.
// @Summary Update a recurring expense
// @Tags Recurring
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Recurring expense ID (UUID)"
// @Param request body dto.UpdateRecurringExpenseRequest true "Fields to change"
// @Success 200 {object} models.RecurringExpense
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_* - Invalid request body"
// @Failure 404 {object} errors.ErrorResponse "RECURRING_001 - Recurring expense not found"
// @Router /recurring-expenses/{id} [patch]
func (h *RecurringHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, ok, err := parseIDParam(c, "id")
	if !ok {
		return err
	}

	var req dto.UpdateRecurringExpenseRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	patch, err := req.ToPatch()
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}

	def, err := h.recurringService.Update(c.Request().Context(), userID, id, patch, h.now())
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, def)
}

// Deactivate soft-deletes a definition and drops its upcoming payments
// @Summary Deactivate a recurring expense
// @Tags Recurring
// @Security BearerAuth
// @Param id path string true "Recurring expense ID (UUID)"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "RECURRING_001 - Recurring expense not found"
// @Router /recurring-expenses/{id} [delete]
func (h *RecurringHandler) Deactivate(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, ok, err := parseIDParam(c, "id")
	if !ok {
		return err
	}

	found, err := h.recurringService.Deactivate(c.Request().Context(), userID, id)
	if err != nil {
		return sendServiceError(c, err)
	}
	if !found {
		return SendError(c, apierrors.RecurringNotFound)
	}

	return c.NoContent(http.StatusNoContent)
}

// RecordPayment pays one occurrence directly, creating an expense and
// advancing the schedule. The upcoming window is not refilled here.
//
// Method: POST /api/v1/recurring-expenses/:id/payments
//
// Error Responses:
//   - 400: Invalid id or paid_date
//   - 404: Recurring expense not found
//   - 500: Store unavailable
func (h *RecurringHandler) RecordPayment(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, ok, err := parseIDParam(c, "id")
	if !ok {
		return err
	}

	var req dto.RecordPaymentRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	paidDate, err := schedule.ParseDate(req.PaidDate)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}

	result, err := h.recurringService.RecordPayment(c.Request().Context(), userID, id, paidDate)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}
