package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/services"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ExpenseHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockExpenseServiceInterface
	handler     *ExpenseHandler
	echo        *echo.Echo
}

func (s *ExpenseHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockExpenseServiceInterface(s.ctrl)
	s.handler = NewExpenseHandler(s.mockService)
	s.echo = newTestEcho()
}

func (s *ExpenseHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestExpenseHandlerSuite(t *testing.T) {
	suite.Run(t, new(ExpenseHandlerSuite))
}

func (s *ExpenseHandlerSuite) TestCreate() {
	reqBody := dto.ExpenseRequest{
		ExpenseBookID: "household",
		Amount:        "42.50",
		Category:      "groceries",
		Date:          "2025-03-08",
	}

	s.mockService.EXPECT().
		Create(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, userID string, input models.ExpenseInput) (*models.Expense, error) {
			s.Equal("household", input.ExpenseBookID)
			s.True(input.Amount.Equal(decimal.RequireFromString("42.5")))
			s.Equal("2025-03-08", input.Date.Format("2006-01-02"))
			return &models.Expense{ID: uuid.New(), UserID: userID, Amount: input.Amount, Category: input.Category, Date: input.Date}, nil
		})

	c, rec := newRequestContext(s.echo, http.MethodPost, "/api/v1/expenses", reqBody, testUserID)

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *ExpenseHandlerSuite) TestCreate_TooManyDecimals() {
	reqBody := dto.ExpenseRequest{Amount: "1.999", Category: "groceries", Date: "2025-03-08"}

	c, rec := newRequestContext(s.echo, http.MethodPost, "/api/v1/expenses", reqBody, testUserID)

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ExpenseHandlerSuite) TestList_Filters() {
	recurringID := uuid.New()

	s.mockService.EXPECT().
		List(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, filters models.ExpenseFilters) ([]models.Expense, error) {
			s.Require().NotNil(filters.StartDate)
			s.Require().NotNil(filters.EndDate)
			s.Equal("2025-03-01", filters.StartDate.Format("2006-01-02"))
			s.Equal("2025-03-31", filters.EndDate.Format("2006-01-02"))
			s.Nil(filters.ExpenseBookID)
			s.Require().NotNil(filters.RecurringExpenseID)
			s.Equal(recurringID, *filters.RecurringExpenseID)
			return []models.Expense{}, nil
		})

	c, rec := newRequestContext(s.echo, http.MethodGet,
		"/api/v1/expenses?from=2025-03-01&to=2025-03-31&recurring_expense_id="+recurringID.String(), nil, testUserID)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ExpenseListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(0, resp.Total)
}

func (s *ExpenseHandlerSuite) TestList_InvertedRange() {
	s.mockService.EXPECT().
		List(gomock.Any(), testUserID, gomock.Any()).
		Return(nil, &services.ValidationError{Field: "to", Message: "must not be before from"})

	c, rec := newRequestContext(s.echo, http.MethodGet, "/api/v1/expenses?from=2025-03-31&to=2025-03-01", nil, testUserID)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	code, _ := decodeErrorCode(rec)
	s.Equal("VALIDATION_005", code)
}

func (s *ExpenseHandlerSuite) TestUpdate_NotFound() {
	id := uuid.New()
	s.mockService.EXPECT().
		Update(gomock.Any(), testUserID, id, gomock.Any()).
		Return(nil, services.ErrExpenseNotFound)

	c, rec := newRequestContext(s.echo, http.MethodPut, "/api/v1/expenses/"+id.String(),
		dto.ExpenseRequest{Amount: "5", Category: "dining", Date: "2025-03-09"}, testUserID)
	withParam(c, "id", id.String())

	s.NoError(s.handler.Update(c))
	s.Equal(http.StatusNotFound, rec.Code)

	code, _ := decodeErrorCode(rec)
	s.Equal("EXPENSE_001", code)
}

func (s *ExpenseHandlerSuite) TestDelete() {
	id := uuid.New()
	s.mockService.EXPECT().Delete(gomock.Any(), testUserID, id).Return(nil)

	c, rec := newRequestContext(s.echo, http.MethodDelete, "/api/v1/expenses/"+id.String(), nil, testUserID)
	withParam(c, "id", id.String())

	s.NoError(s.handler.Delete(c))
	s.Equal(http.StatusNoContent, rec.Code)
}
