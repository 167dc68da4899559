package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	apierrors "finance-tracker/internal/errors"
	"finance-tracker/internal/schedule"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

type DailySummaryHandler struct {
	summaryService services.DailySummaryServiceInterface
}

func NewDailySummaryHandler(summaryService services.DailySummaryServiceInterface) *DailySummaryHandler {
	return &DailySummaryHandler{summaryService: summaryService}
}

// ListRange returns the caller's summary rows between from and to inclusive
//
// Method: GET /api/v1/daily-summaries?from=YYYY-MM-DD&to=YYYY-MM-DD&expense_book_id=
//
// Query parameters:
//   - from, to: required dates
//   - expense_book_id: optional; omitted means every book
//
// Error Responses:
//   - 400: Missing or malformed dates, or from after to
func (h *DailySummaryHandler) ListRange(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var query dto.SummaryRangeQuery
	if handled, err := bindAndValidate(c, &query); handled {
		return err
	}

	from, err := schedule.ParseDate(query.From)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}
	to, err := schedule.ParseDate(query.To)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}

	rows, err := h.summaryService.ListRange(c.Request().Context(), userID, query.BookID(), from, to)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DailySummaryListResponse{
		DailySummaries: rows,
		Total:          len(rows),
	})
}

// GetDay returns the summary row for one date of the default or given book
func (h *DailySummaryHandler) GetDay(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	date, err := schedule.ParseDate(c.Param("date"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}

	row, err := h.summaryService.GetDay(c.Request().Context(), userID, c.QueryParam("expense_book_id"), date)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, row)
}

// Rebuild recomputes every summary row of the caller from expense history
// @Summary Rebuild daily summaries
// @Tags DailySummaries
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.RebuildResponse
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Store unavailable"
// @Router /daily-summaries/rebuild [post]
func (h *DailySummaryHandler) Rebuild(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	rows, err := h.summaryService.RebuildFromHistory(c.Request().Context(), userID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.RebuildResponse{Rows: rows})
}
