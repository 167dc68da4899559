package handlers

import (
	"net/http"
	"time"

	"finance-tracker/internal/dto"
	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/schedule"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// UpcomingPaymentHandler handles projected payment HTTP requests
type UpcomingPaymentHandler struct {
	upcomingService services.UpcomingPaymentServiceInterface
	now             func() time.Time
}

func NewUpcomingPaymentHandler(upcomingService services.UpcomingPaymentServiceInterface) *UpcomingPaymentHandler {
	return &UpcomingPaymentHandler{
		upcomingService: upcomingService,
		now:             utcNow,
	}
}

// List returns the caller's upcoming payments ordered by due date
// @Summary List upcoming payments
// @Tags UpcomingPayments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.UpcomingPaymentListResponse
// @Router /upcoming-payments [get]
func (h *UpcomingPaymentHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	payments, err := h.upcomingService.List(c.Request().Context(), userID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.UpcomingPaymentListResponse{
		UpcomingPayments: payments,
		Total:            len(payments),
	})
}

// MarkPaid settles one upcoming payment and tops the window back up
// @Summary Mark an upcoming payment as paid
// @Tags UpcomingPayments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Upcoming payment ID (UUID)"
// @Param request body dto.MarkPaidRequest true "Payment date and whether to record an expense"
// @Success 200 {object} models.MarkPaidResult
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid paid_date"
// @Failure 404 {object} errors.ErrorResponse "UPCOMING_001 - Upcoming payment not found"
// @Router /upcoming-payments/{id}/pay [post]
func (h *UpcomingPaymentHandler) MarkPaid(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, ok, err := parseIDParam(c, "id")
	if !ok {
		return err
	}

	var req dto.MarkPaidRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	paidDate, err := schedule.ParseDate(req.PaidDate)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}

	result, err := h.upcomingService.MarkPaid(c.Request().Context(), userID, id, paidDate, req.ShouldRecordExpense(), h.now())
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// Generate ensures every active definition of the caller has a full window
// @Summary Generate upcoming payments for all active recurring expenses
// @Tags UpcomingPayments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.GenerateResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing token"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Database error"
// @Router /upcoming-payments/generate [post]
func (h *UpcomingPaymentHandler) Generate(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	created, err := h.upcomingService.GenerateForAllActive(c.Request().Context(), userID, h.now())
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.GenerateResponse{Created: created})
}

// RefreshStatuses reclassifies the caller's upcoming payments against today
// @Summary Refresh upcoming payment statuses
// @Tags UpcomingPayments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.RefreshResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing token"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Database error"
// @Router /upcoming-payments/refresh [post]
func (h *UpcomingPaymentHandler) RefreshStatuses(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	updated, err := h.upcomingService.RefreshStatuses(c.Request().Context(), userID, h.now())
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.RefreshResponse{Updated: updated})
}
