package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/schedule"
	"finance-tracker/internal/services"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RecurringHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockRecurringServiceInterface
	handler     *RecurringHandler
	echo        *echo.Echo
}

func (s *RecurringHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockRecurringServiceInterface(s.ctrl)
	s.handler = NewRecurringHandler(s.mockService)
	s.handler.now = fixedClock
	s.echo = newTestEcho()
}

func (s *RecurringHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRecurringHandlerSuite(t *testing.T) {
	suite.Run(t, new(RecurringHandlerSuite))
}

func (s *RecurringHandlerSuite) rent() *models.RecurringExpense {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	return &models.RecurringExpense{
		ID:             uuid.New(),
		UserID:         testUserID,
		Amount:         decimal.NewFromInt(1500),
		Category:       "Rent",
		Frequency:      schedule.FrequencyMonthly,
		StartDate:      start,
		NextOccurrence: start,
		IsActive:       true,
	}
}

func (s *RecurringHandlerSuite) TestCreate_Success() {
	def := s.rent()
	reqBody := dto.CreateRecurringExpenseRequest{
		Amount:    "1500",
		Category:  "Rent",
		Frequency: "Monthly",
		StartDate: "2025-01-01",
	}

	s.mockService.EXPECT().
		Create(gomock.Any(), testUserID, gomock.Any(), fixedNow).
		DoAndReturn(func(_ context.Context, _ string, input models.RecurringExpenseInput, _ time.Time) (*models.RecurringExpense, error) {
			s.True(input.Amount.Equal(decimal.NewFromInt(1500)))
			s.Equal(schedule.FrequencyMonthly, input.Frequency)
			s.Equal("2025-01-01", schedule.FormatDate(input.StartDate))
			s.Nil(input.EndDate)
			return def, nil
		})

	c, rec := newRequestContext(s.echo, http.MethodPost, "/api/v1/recurring-expenses", reqBody, testUserID)

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusCreated, rec.Code)

	var got models.RecurringExpense
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Equal(def.ID, got.ID)
	s.Equal("Rent", got.Category)
}

func (s *RecurringHandlerSuite) TestCreate_ValidationFailures() {
	testCases := []struct {
		name  string
		body  dto.CreateRecurringExpenseRequest
		field string
	}{
		{"unknown frequency", dto.CreateRecurringExpenseRequest{Amount: "10", Category: "Gym", Frequency: "hourly", StartDate: "2025-01-01"}, "frequency"},
		{"bad start date", dto.CreateRecurringExpenseRequest{Amount: "10", Category: "Gym", Frequency: "weekly", StartDate: "01/01/2025"}, "start_date"},
		{"zero amount", dto.CreateRecurringExpenseRequest{Amount: "0", Category: "Gym", Frequency: "weekly", StartDate: "2025-01-01"}, "amount"},
		{"missing category", dto.CreateRecurringExpenseRequest{Amount: "10", Frequency: "weekly", StartDate: "2025-01-01"}, "category"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := newRequestContext(s.echo, http.MethodPost, "/api/v1/recurring-expenses", tc.body, testUserID)

			s.NoError(s.handler.Create(c))
			s.Equal(http.StatusBadRequest, rec.Code)

			code, details := decodeErrorCode(rec)
			s.Equal("VALIDATION_001", code)
			s.Require().Len(details, 1)
			s.Contains(details[0], tc.field)
		})
	}
}

func (s *RecurringHandlerSuite) TestCreate_Unauthenticated() {
	c, rec := newRequestContext(s.echo, http.MethodPost, "/api/v1/recurring-expenses", dto.CreateRecurringExpenseRequest{}, "")

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusUnauthorized, rec.Code)

	code, _ := decodeErrorCode(rec)
	s.Equal("AUTH_001", code)
}

func (s *RecurringHandlerSuite) TestCreate_ServiceValidationError() {
	end := "2024-12-01"
	reqBody := dto.CreateRecurringExpenseRequest{Amount: "10", Category: "Gym", Frequency: "weekly", StartDate: "2025-01-01", EndDate: &end}

	s.mockService.EXPECT().
		Create(gomock.Any(), testUserID, gomock.Any(), fixedNow).
		Return(nil, &services.ValidationError{Field: "end_date", Message: "end date must not be before start date"})

	c, rec := newRequestContext(s.echo, http.MethodPost, "/api/v1/recurring-expenses", reqBody, testUserID)

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	code, details := decodeErrorCode(rec)
	s.Equal("VALIDATION_005", code)
	s.Equal([]string{"end_date: end date must not be before start date"}, details)
}

func (s *RecurringHandlerSuite) TestGet_InvalidID() {
	c, rec := newRequestContext(s.echo, http.MethodGet, "/api/v1/recurring-expenses/nope", nil, testUserID)
	withParam(c, "id", "nope")

	s.NoError(s.handler.Get(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	code, _ := decodeErrorCode(rec)
	s.Equal("VALIDATION_007", code)
}

func (s *RecurringHandlerSuite) TestGet_NotFound() {
	id := uuid.New()
	s.mockService.EXPECT().
		Get(gomock.Any(), testUserID, id).
		Return(nil, services.ErrRecurringExpenseNotFound)

	c, rec := newRequestContext(s.echo, http.MethodGet, "/api/v1/recurring-expenses/"+id.String(), nil, testUserID)
	withParam(c, "id", id.String())

	s.NoError(s.handler.Get(c))
	s.Equal(http.StatusNotFound, rec.Code)

	code, _ := decodeErrorCode(rec)
	s.Equal("RECURRING_001", code)
}

func (s *RecurringHandlerSuite) TestList_ActiveFilter() {
	s.mockService.EXPECT().
		List(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, active *bool) ([]models.RecurringExpense, error) {
			s.Require().NotNil(active)
			s.False(*active)
			return []models.RecurringExpense{}, nil
		})

	c, rec := newRequestContext(s.echo, http.MethodGet, "/api/v1/recurring-expenses?active=false", nil, testUserID)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.RecurringExpenseListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(0, resp.Total)
	s.NotNil(resp.RecurringExpenses)
}

func (s *RecurringHandlerSuite) TestList_BadActiveValue() {
	c, rec := newRequestContext(s.echo, http.MethodGet, "/api/v1/recurring-expenses?active=maybe", nil, testUserID)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RecurringHandlerSuite) TestUpdate_AmountOnly() {
	def := s.rent()
	def.Amount = decimal.NewFromInt(1600)
	amount := "1600"

	s.mockService.EXPECT().
		Update(gomock.Any(), testUserID, def.ID, gomock.Any(), fixedNow).
		DoAndReturn(func(_ context.Context, _ string, _ uuid.UUID, patch models.RecurringExpensePatch, _ time.Time) (*models.RecurringExpense, error) {
			s.Require().NotNil(patch.Amount)
			s.True(patch.Amount.Equal(decimal.NewFromInt(1600)))
			s.Nil(patch.Frequency)
			s.Nil(patch.StartDate)
			s.False(patch.ClearEndDate)
			return def, nil
		})

	c, rec := newRequestContext(s.echo, http.MethodPatch, "/api/v1/recurring-expenses/"+def.ID.String(),
		dto.UpdateRecurringExpenseRequest{Amount: &amount}, testUserID)
	withParam(c, "id", def.ID.String())

	s.NoError(s.handler.Update(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RecurringHandlerSuite) TestDeactivate() {
	id := uuid.New()

	s.Run("found", func() {
		s.mockService.EXPECT().Deactivate(gomock.Any(), testUserID, id).Return(true, nil)

		c, rec := newRequestContext(s.echo, http.MethodDelete, "/api/v1/recurring-expenses/"+id.String(), nil, testUserID)
		withParam(c, "id", id.String())

		s.NoError(s.handler.Deactivate(c))
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("missing", func() {
		s.mockService.EXPECT().Deactivate(gomock.Any(), testUserID, id).Return(false, nil)

		c, rec := newRequestContext(s.echo, http.MethodDelete, "/api/v1/recurring-expenses/"+id.String(), nil, testUserID)
		withParam(c, "id", id.String())

		s.NoError(s.handler.Deactivate(c))
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *RecurringHandlerSuite) TestRecordPayment_StoreUnavailable() {
	id := uuid.New()
	paid := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	s.mockService.EXPECT().
		RecordPayment(gomock.Any(), testUserID, id, paid).
		Return(nil, fmt.Errorf("%w: create expense: connection reset", services.ErrStoreUnavailable))

	c, rec := newRequestContext(s.echo, http.MethodPost, "/api/v1/recurring-expenses/"+id.String()+"/payments",
		dto.RecordPaymentRequest{PaidDate: "2025-01-01"}, testUserID)
	withParam(c, "id", id.String())

	s.NoError(s.handler.RecordPayment(c))
	s.Equal(http.StatusInternalServerError, rec.Code)

	code, _ := decodeErrorCode(rec)
	s.Equal("SYSTEM_002", code)
	s.NotContains(rec.Body.String(), "connection reset")
}
