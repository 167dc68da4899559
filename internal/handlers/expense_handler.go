package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// ExpenseHandler handles expense HTTP requests. Every write keeps the daily
// summaries in step through the expense service.
type ExpenseHandler struct {
	expenseService services.ExpenseServiceInterface
}

func NewExpenseHandler(expenseService services.ExpenseServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// Create records a new expense
// @Summary Create an expense
// @Tags Expenses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ExpenseRequest true "Expense"
// @Success 201 {object} models.Expense
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_* - Invalid request body"
// @Router /expenses [post]
func (h *ExpenseHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.ExpenseRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	input, err := req.ToInput()
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}

	expense, err := h.expenseService.Create(c.Request().Context(), userID, input)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, expense)
}

// List returns expenses filtered by the optional from, to, category,
// expense_book_id and recurring_expense_id query parameters
func (h *ExpenseHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var query dto.ExpenseListQuery
	if handled, err := bindAndValidate(c, &query); handled {
		return err
	}

	filters, err := query.ToFilters()
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}

	expenses, err := h.expenseService.List(c.Request().Context(), userID, filters)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ExpenseListResponse{
		Expenses: expenses,
		Total:    len(expenses),
	})
}

// Get returns one expense
func (h *ExpenseHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, ok, err := parseIDParam(c, "id")
	if !ok {
		return err
	}

	expense, err := h.expenseService.Get(c.Request().Context(), userID, id)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, expense)
}

// Update replaces an expense. The old values are removed from their summary
// row and the new values added to theirs.
// @Summary Replace an expense
// @Tags Expenses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Expense ID (UUID)"
// @Param request body dto.ExpenseRequest true "Expense"
// @Success 200 {object} models.Expense
// @Failure 404 {object} errors.ErrorResponse "EXPENSE_001 - Expense not found"
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, ok, err := parseIDParam(c, "id")
	if !ok {
		return err
	}

	var req dto.ExpenseRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	input, err := req.ToInput()
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails(err.Error()))
	}

	expense, err := h.expenseService.Update(c.Request().Context(), userID, id, input)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, expense)
}

// Delete removes an expense and subtracts it from its summary row
func (h *ExpenseHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, ok, err := parseIDParam(c, "id")
	if !ok {
		return err
	}

	if err := h.expenseService.Delete(c.Request().Context(), userID, id); err != nil {
		return sendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
