package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/repositories/repository_mocks"
	"finance-tracker/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ExpenseServiceSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	expenseRepo    *repository_mocks.MockExpenseRepositoryInterface
	summaryService *service_mocks.MockDailySummaryServiceInterface
	service        ExpenseServiceInterface
	ctx            context.Context
	userID         string
}

func TestExpenseServiceSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceSuite))
}

func (s *ExpenseServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.expenseRepo = repository_mocks.NewMockExpenseRepositoryInterface(s.ctrl)
	s.summaryService = service_mocks.NewMockDailySummaryServiceInterface(s.ctrl)
	metrics := service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()

	s.service = NewExpenseService(s.expenseRepo, s.summaryService, metrics,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.ctx = context.Background()
	s.userID = "user-1"
}

func (s *ExpenseServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ExpenseServiceSuite) input() models.ExpenseInput {
	return models.ExpenseInput{
		Amount:      decimal.NewFromFloat(gofakeit.Price(1, 200)).Round(2),
		Category:    "dining",
		Description: gofakeit.Sentence(4),
		Date:        date(2025, 6, 1),
	}
}

func (s *ExpenseServiceSuite) TestCreate_AppliesAddDelta() {
	input := s.input()

	s.expenseRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)
	s.summaryService.EXPECT().ApplyDelta(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, d models.SummaryDelta) error {
			s.Equal(1, d.Count)
			s.True(d.Amount.Equal(input.Amount))
			s.Equal(s.userID, d.UserID)
			return nil
		})

	expense, err := s.service.Create(s.ctx, s.userID, input)
	s.Require().NoError(err)
	s.Equal(s.userID, expense.UserID)
}

func (s *ExpenseServiceSuite) TestCreate_Invalid() {
	input := s.input()
	input.Amount = decimal.Zero

	_, err := s.service.Create(s.ctx, s.userID, input)
	s.True(IsValidationError(err))
}

func (s *ExpenseServiceSuite) TestUpdate_RemovesThenAdds() {
	id := uuid.New()
	stored := &models.Expense{
		ID: id, UserID: s.userID, Amount: decimal.NewFromInt(10), Category: "groceries", Date: date(2025, 6, 1),
	}
	input := s.input()
	input.Date = date(2025, 6, 2)

	s.expenseRepo.EXPECT().GetByIDForUser(s.ctx, id, s.userID).Return(stored, nil)
	s.expenseRepo.EXPECT().Update(s.ctx, gomock.Any()).Return(nil)
	s.summaryService.EXPECT().ApplyDeltas(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, deltas []models.SummaryDelta) error {
			s.Require().Len(deltas, 2)
			s.Equal("groceries", deltas[0].Category)
			s.Equal(-1, deltas[0].Count)
			s.True(deltas[0].Amount.Equal(decimal.NewFromInt(-10)))
			s.Equal(date(2025, 6, 1), deltas[0].Date)
			s.Equal("dining", deltas[1].Category)
			s.Equal(1, deltas[1].Count)
			s.Equal(date(2025, 6, 2), deltas[1].Date)
			return nil
		})

	_, err := s.service.Update(s.ctx, s.userID, id, input)
	s.NoError(err)
}

func (s *ExpenseServiceSuite) TestDelete_AppliesRemoveDelta() {
	id := uuid.New()
	stored := &models.Expense{
		ID: id, UserID: s.userID, Amount: decimal.NewFromInt(10), Category: "groceries", Date: date(2025, 6, 1),
	}

	s.expenseRepo.EXPECT().GetByIDForUser(s.ctx, id, s.userID).Return(stored, nil)
	s.expenseRepo.EXPECT().Delete(s.ctx, id).Return(nil)
	s.summaryService.EXPECT().ApplyDelta(s.ctx, stored.RemoveDelta()).Return(nil)

	s.NoError(s.service.Delete(s.ctx, s.userID, id))
}

func (s *ExpenseServiceSuite) TestDelete_NotFound() {
	id := uuid.New()
	s.expenseRepo.EXPECT().GetByIDForUser(s.ctx, id, s.userID).Return(nil, repositories.ErrExpenseNotFound)

	s.ErrorIs(s.service.Delete(s.ctx, s.userID, id), ErrExpenseNotFound)
}

func (s *ExpenseServiceSuite) TestList_InvertedRange() {
	from := date(2025, 6, 10)
	to := date(2025, 6, 1)

	_, err := s.service.List(s.ctx, s.userID, models.ExpenseFilters{StartDate: &from, EndDate: &to})
	s.True(IsValidationError(err))
}
