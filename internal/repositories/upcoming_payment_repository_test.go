package repositories

import (
	"context"
	"testing"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/schedule"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UpcomingPaymentRepositoryTestSuite is the test suite for the upcoming payment repository
type UpcomingPaymentRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo UpcomingPaymentRepositoryInterface
	ctx  context.Context
	def  *models.RecurringExpense
}

func (s *UpcomingPaymentRepositoryTestSuite) SetupTest() {
	s.db = openTestDB(s.T())
	s.repo = NewUpcomingPaymentRepository(s.db)
	s.ctx = context.Background()

	s.def = newTestDefinition(gofakeit.UUID())
	require.NoError(s.T(), NewRecurringExpenseRepository(s.db).Create(s.ctx, s.def))
}

func (s *UpcomingPaymentRepositoryTestSuite) TearDownTest() {
	closeTestDB(s.db)
}

func TestUpcomingPaymentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UpcomingPaymentRepositoryTestSuite))
}

func (s *UpcomingPaymentRepositoryTestSuite) createPayment(y int, m time.Month, d int) *models.UpcomingPayment {
	due := day(y, m, d)
	payment := models.NewUpcomingPayment(s.def, due, due)
	require.NoError(s.T(), s.repo.Create(s.ctx, payment))
	return payment
}

func (s *UpcomingPaymentRepositoryTestSuite) TestCreate_DuplicateDueDate() {
	s.createPayment(2025, 1, 1)

	dup := models.NewUpcomingPayment(s.def, day(2025, 1, 1), day(2025, 1, 1))
	err := s.repo.Create(s.ctx, dup)
	assert.Equal(s.T(), ErrUpcomingPaymentExists, err)
}

func (s *UpcomingPaymentRepositoryTestSuite) TestExistsForDueDate() {
	s.createPayment(2025, 2, 1)

	exists, err := s.repo.ExistsForDueDate(s.ctx, s.def.ID, day(2025, 2, 1))
	require.NoError(s.T(), err)
	assert.True(s.T(), exists)

	exists, err = s.repo.ExistsForDueDate(s.ctx, s.def.ID, day(2025, 3, 1))
	require.NoError(s.T(), err)
	assert.False(s.T(), exists)
}

func (s *UpcomingPaymentRepositoryTestSuite) TestCountAndList() {
	s.createPayment(2025, 2, 1)
	s.createPayment(2025, 1, 1)

	count, err := s.repo.CountByRecurringExpense(s.ctx, s.def.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(2), count)

	payments, err := s.repo.ListByRecurringExpense(s.ctx, s.def.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), payments, 2)
	assert.Equal(s.T(), "2025-01-01", schedule.FormatDate(payments[0].DueDate))
	assert.Equal(s.T(), "2025-02-01", schedule.FormatDate(payments[1].DueDate))

	byUser, err := s.repo.ListByUser(s.ctx, s.def.UserID)
	require.NoError(s.T(), err)
	assert.Len(s.T(), byUser, 2)
}

func (s *UpcomingPaymentRepositoryTestSuite) TestGetByIDForUser() {
	payment := s.createPayment(2025, 1, 1)

	found, err := s.repo.GetByIDForUser(s.ctx, payment.ID, s.def.UserID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), payment.ID, found.ID)

	_, err = s.repo.GetByIDForUser(s.ctx, payment.ID, "intruder")
	assert.Equal(s.T(), ErrUpcomingPaymentNotFound, err)
}

func (s *UpcomingPaymentRepositoryTestSuite) TestUpdateStatus() {
	payment := s.createPayment(2025, 1, 1)

	require.NoError(s.T(), s.repo.UpdateStatus(s.ctx, payment.ID, schedule.StatusOverdue))

	found, err := s.repo.GetByIDForUser(s.ctx, payment.ID, s.def.UserID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), schedule.StatusOverdue, found.Status)

	err = s.repo.UpdateStatus(s.ctx, uuid.New(), schedule.StatusDue)
	assert.Equal(s.T(), ErrUpcomingPaymentNotFound, err)
}

func (s *UpcomingPaymentRepositoryTestSuite) TestDelete() {
	payment := s.createPayment(2025, 1, 1)

	require.NoError(s.T(), s.repo.Delete(s.ctx, payment.ID))
	assert.Equal(s.T(), ErrUpcomingPaymentNotFound, s.repo.Delete(s.ctx, payment.ID))
}

func (s *UpcomingPaymentRepositoryTestSuite) TestDeleteByRecurringExpense() {
	s.createPayment(2025, 1, 1)
	s.createPayment(2025, 2, 1)

	deleted, err := s.repo.DeleteByRecurringExpense(s.ctx, s.def.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(2), deleted)

	count, err := s.repo.CountByRecurringExpense(s.ctx, s.def.ID)
	require.NoError(s.T(), err)
	assert.Zero(s.T(), count)
}
