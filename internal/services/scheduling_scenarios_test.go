package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"finance-tracker/internal/database"
	"finance-tracker/internal/events"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/schedule"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// SchedulingScenarioSuite runs the services against real repositories on an
// in-memory sqlite database.
type SchedulingScenarioSuite struct {
	suite.Suite
	db           *database.DB
	upcomingRepo repositories.UpcomingPaymentRepositoryInterface
	summaryRepo  repositories.DailySummaryRepositoryInterface
	projector    WindowProjectorInterface
	recurring    RecurringServiceInterface
	upcoming     UpcomingPaymentServiceInterface
	summaries    DailySummaryServiceInterface
	expenses     ExpenseServiceInterface
	ctx          context.Context
	userID       string
	now          time.Time
}

func TestSchedulingScenarioSuite(t *testing.T) {
	suite.Run(t, new(SchedulingScenarioSuite))
}

func (s *SchedulingScenarioSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	recurringLogger := NewRecurringLogger(logger)
	metrics := NewPrometheusMetrics(prometheus.NewRegistry())
	publisher := events.NoopPublisher{}

	recurringRepo := repositories.NewRecurringExpenseRepository(s.db.DB)
	expenseRepo := repositories.NewExpenseRepository(s.db.DB)
	s.upcomingRepo = repositories.NewUpcomingPaymentRepository(s.db.DB)
	s.summaryRepo = repositories.NewDailySummaryRepository(s.db.DB)

	s.summaries = NewDailySummaryService(s.summaryRepo, expenseRepo, publisher, recurringLogger, metrics, logger)
	s.projector = NewUpcomingPaymentProjector(s.upcomingRepo, recurringLogger, metrics, logger)
	s.recurring = NewRecurringService(recurringRepo, expenseRepo, s.projector, s.summaries, publisher, recurringLogger, metrics, logger)
	s.upcoming = NewUpcomingPaymentService(s.upcomingRepo, s.recurring, s.projector, recurringLogger, metrics, logger)
	s.expenses = NewExpenseService(expenseRepo, s.summaries, metrics, logger)

	s.ctx = context.Background()
	s.userID = "user-1"
	s.now = time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
}

func (s *SchedulingScenarioSuite) createRent() *models.RecurringExpense {
	def, err := s.recurring.Create(s.ctx, s.userID, models.RecurringExpenseInput{
		Amount:        decimal.NewFromInt(1500),
		Category:      "housing",
		PaymentMethod: "bank_transfer",
		Description:   "Rent",
		Frequency:     schedule.FrequencyMonthly,
		StartDate:     date(2025, 1, 1),
	}, s.now)
	s.Require().NoError(err)
	return def
}

func (s *SchedulingScenarioSuite) dueDates(def *models.RecurringExpense) []string {
	payments, err := s.upcomingRepo.ListByRecurringExpense(s.ctx, def.ID)
	s.Require().NoError(err)

	dates := make([]string, 0, len(payments))
	for _, p := range payments {
		dates = append(dates, schedule.FormatDate(p.DueDate))
	}
	return dates
}

func (s *SchedulingScenarioSuite) findPayment(def *models.RecurringExpense, due string) models.UpcomingPayment {
	payments, err := s.upcomingRepo.ListByRecurringExpense(s.ctx, def.ID)
	s.Require().NoError(err)
	for _, p := range payments {
		if schedule.FormatDate(p.DueDate) == due {
			return p
		}
	}
	s.FailNow("no upcoming payment due " + due)
	return models.UpcomingPayment{}
}

func (s *SchedulingScenarioSuite) TestCreateFillsWindow() {
	def := s.createRent()

	s.Equal([]string{"2025-01-01", "2025-02-01"}, s.dueDates(def))

	payment := s.findPayment(def, "2025-01-01")
	s.Equal(schedule.StatusDue, payment.Status)
}

func (s *SchedulingScenarioSuite) TestEnsureWindowIsIdempotent() {
	def := s.createRent()

	created, err := s.projector.EnsureWindow(s.ctx, def, s.now)
	s.NoError(err)
	s.Zero(created)

	created, err = s.projector.EnsureWindow(s.ctx, def, s.now)
	s.NoError(err)
	s.Zero(created)

	count, err := s.upcomingRepo.CountByRecurringExpense(s.ctx, def.ID)
	s.NoError(err)
	s.Equal(int64(2), count)
}

func (s *SchedulingScenarioSuite) TestRentScenario_MarkPaidWithExpense() {
	def := s.createRent()
	first := s.findPayment(def, "2025-01-01")

	result, err := s.upcoming.MarkPaid(s.ctx, s.userID, first.ID, date(2025, 1, 1), true, s.now)
	s.Require().NoError(err)

	s.Require().NotNil(result.Expense)
	s.True(result.Expense.Amount.Equal(decimal.NewFromInt(1500)))
	s.Equal("2025-01-01", schedule.FormatDate(result.Expense.Date))
	s.Equal("2025-02-01", schedule.FormatDate(result.Definition.NextOccurrence))
	s.Equal(1, result.Created)

	s.Equal([]string{"2025-02-01", "2025-03-01"}, s.dueDates(def))

	expenses, err := s.expenses.List(s.ctx, s.userID, models.ExpenseFilters{RecurringExpenseID: &def.ID})
	s.Require().NoError(err)
	s.Len(expenses, 1)

	summary, err := s.summaries.GetDay(s.ctx, s.userID, "", date(2025, 1, 1))
	s.Require().NoError(err)
	s.True(summary.TotalSpent.Equal(decimal.NewFromInt(1500)))
	s.Require().Len(summary.Categories, 1)
	s.Equal("housing", summary.Categories[0].Category)
	s.Equal(1, summary.Categories[0].Count)
}

func (s *SchedulingScenarioSuite) TestMarkPaidWithoutExpenseStillAdvances() {
	def := s.createRent()
	first := s.findPayment(def, "2025-01-01")

	result, err := s.upcoming.MarkPaid(s.ctx, s.userID, first.ID, date(2025, 1, 1), false, s.now)
	s.Require().NoError(err)

	s.Nil(result.Expense)
	s.Equal("2025-02-01", schedule.FormatDate(result.Definition.NextOccurrence))
	s.Equal([]string{"2025-02-01", "2025-03-01"}, s.dueDates(def))

	_, err = s.summaries.GetDay(s.ctx, s.userID, "", date(2025, 1, 1))
	s.ErrorIs(err, ErrDailySummaryNotFound)
}

func (s *SchedulingScenarioSuite) TestAmountUpdateReplacesInstances() {
	def := s.createRent()
	before, err := s.upcomingRepo.ListByRecurringExpense(s.ctx, def.ID)
	s.Require().NoError(err)

	amount := decimal.NewFromInt(1600)
	updated, err := s.recurring.Update(s.ctx, s.userID, def.ID, models.RecurringExpensePatch{Amount: &amount}, s.now)
	s.Require().NoError(err)
	s.Equal("2025-01-01", schedule.FormatDate(updated.NextOccurrence))

	after, err := s.upcomingRepo.ListByRecurringExpense(s.ctx, def.ID)
	s.Require().NoError(err)
	s.Require().Len(after, 2)
	for i, p := range after {
		s.NotEqual(before[i].ID, p.ID)
		s.True(p.Amount.Equal(amount))
	}
	s.Equal([]string{"2025-01-01", "2025-02-01"}, s.dueDates(def))
}

func (s *SchedulingScenarioSuite) TestFrequencyUpdateReplacesInstances() {
	def := s.createRent()
	before, err := s.upcomingRepo.ListByRecurringExpense(s.ctx, def.ID)
	s.Require().NoError(err)
	s.Require().Len(before, 2)

	weekly := schedule.FrequencyWeekly
	updated, err := s.recurring.Update(s.ctx, s.userID, def.ID, models.RecurringExpensePatch{Frequency: &weekly}, s.now)
	s.Require().NoError(err)
	s.Equal(schedule.FrequencyWeekly, updated.Frequency)

	for _, old := range before {
		_, err := s.upcomingRepo.GetByIDForUser(s.ctx, old.ID, s.userID)
		s.ErrorIs(err, repositories.ErrUpcomingPaymentNotFound)
	}

	after, err := s.upcomingRepo.ListByRecurringExpense(s.ctx, def.ID)
	s.Require().NoError(err)
	s.Require().Len(after, 2)
	for _, p := range after {
		s.Equal(schedule.FrequencyWeekly, p.Frequency)
	}
	s.Equal([]string{"2025-01-01", "2025-01-08"}, s.dueDates(def))
}

func (s *SchedulingScenarioSuite) TestDescriptionUpdateKeepsInstances() {
	def := s.createRent()
	before, err := s.upcomingRepo.ListByRecurringExpense(s.ctx, def.ID)
	s.Require().NoError(err)

	description := "Flat rent"
	_, err = s.recurring.Update(s.ctx, s.userID, def.ID, models.RecurringExpensePatch{Description: &description}, s.now)
	s.Require().NoError(err)

	after, err := s.upcomingRepo.ListByRecurringExpense(s.ctx, def.ID)
	s.Require().NoError(err)
	s.Require().Len(after, 2)
	s.Equal(before[0].ID, after[0].ID)
	s.Equal(before[1].ID, after[1].ID)
}

func (s *SchedulingScenarioSuite) TestDeactivateRemovesInstances() {
	def := s.createRent()

	ok, err := s.recurring.Deactivate(s.ctx, s.userID, def.ID)
	s.Require().NoError(err)
	s.True(ok)

	s.Empty(s.dueDates(def))

	stored, err := s.recurring.Get(s.ctx, s.userID, def.ID)
	s.Require().NoError(err)
	s.False(stored.IsActive)

	created, err := s.upcoming.GenerateForAllActive(s.ctx, s.userID, s.now)
	s.NoError(err)
	s.Zero(created)
}

func (s *SchedulingScenarioSuite) TestForeignUserCannotSeeDefinition() {
	def := s.createRent()

	_, err := s.recurring.Get(s.ctx, "someone-else", def.ID)
	s.ErrorIs(err, ErrRecurringExpenseNotFound)

	ok, err := s.recurring.Deactivate(s.ctx, "someone-else", def.ID)
	s.NoError(err)
	s.False(ok)
}

func (s *SchedulingScenarioSuite) TestExpenseCreateThenDeleteLeavesNoSummary() {
	expense, err := s.expenses.Create(s.ctx, s.userID, models.ExpenseInput{
		Amount:   decimal.NewFromInt(25),
		Category: "dining",
		Date:     date(2025, 3, 4),
	})
	s.Require().NoError(err)

	_, err = s.summaries.GetDay(s.ctx, s.userID, "", date(2025, 3, 4))
	s.Require().NoError(err)

	s.Require().NoError(s.expenses.Delete(s.ctx, s.userID, expense.ID))

	_, err = s.summaries.GetDay(s.ctx, s.userID, "", date(2025, 3, 4))
	s.ErrorIs(err, ErrDailySummaryNotFound)
}

func (s *SchedulingScenarioSuite) TestExpenseEditRebuckets() {
	expense, err := s.expenses.Create(s.ctx, s.userID, models.ExpenseInput{
		Amount:   decimal.NewFromInt(40),
		Category: "groceries",
		Date:     date(2025, 3, 4),
	})
	s.Require().NoError(err)

	_, err = s.expenses.Update(s.ctx, s.userID, expense.ID, models.ExpenseInput{
		ExpenseBookID: "holiday",
		Amount:        decimal.NewFromInt(55),
		Category:      "dining",
		Date:          date(2025, 3, 5),
	})
	s.Require().NoError(err)

	_, err = s.summaries.GetDay(s.ctx, s.userID, "", date(2025, 3, 4))
	s.ErrorIs(err, ErrDailySummaryNotFound)

	moved, err := s.summaries.GetDay(s.ctx, s.userID, "holiday", date(2025, 3, 5))
	s.Require().NoError(err)
	s.True(moved.TotalSpent.Equal(decimal.NewFromInt(55)))
	s.Require().Len(moved.Categories, 1)
	s.Equal("dining", moved.Categories[0].Category)
}

func (s *SchedulingScenarioSuite) TestIdenticalEditIsNetZero() {
	input := models.ExpenseInput{
		Amount:   decimal.NewFromInt(12),
		Category: "transport",
		Date:     date(2025, 3, 4),
	}
	expense, err := s.expenses.Create(s.ctx, s.userID, input)
	s.Require().NoError(err)
	_, err = s.expenses.Create(s.ctx, s.userID, models.ExpenseInput{
		Amount:   decimal.NewFromInt(30),
		Category: "groceries",
		Date:     date(2025, 3, 4),
	})
	s.Require().NoError(err)

	before, err := s.summaries.GetDay(s.ctx, s.userID, "", date(2025, 3, 4))
	s.Require().NoError(err)

	_, err = s.expenses.Update(s.ctx, s.userID, expense.ID, input)
	s.Require().NoError(err)

	after, err := s.summaries.GetDay(s.ctx, s.userID, "", date(2025, 3, 4))
	s.Require().NoError(err)
	s.Equal(before.ID, after.ID)
	s.True(after.TotalSpent.Equal(decimal.NewFromInt(42)))
	s.Require().Len(after.Categories, 2)
	s.Equal("groceries", after.Categories[0].Category)
	transport := after.Categories.Find("transport")
	s.Require().NotNil(transport)
	s.Equal(1, transport.Count)
	s.True(transport.Amount.Equal(decimal.NewFromInt(12)))
}

func (s *SchedulingScenarioSuite) TestRebuildFromHistoryRestoresRows() {
	for _, input := range []models.ExpenseInput{
		{Amount: decimal.NewFromInt(10), Category: "dining", Date: date(2025, 2, 1)},
		{Amount: decimal.NewFromInt(15), Category: "dining", Date: date(2025, 2, 1)},
		{Amount: decimal.NewFromInt(70), Category: "groceries", Date: date(2025, 2, 1), ExpenseBookID: "family"},
		{Amount: decimal.NewFromInt(5), Category: "transport", Date: date(2025, 2, 2)},
	} {
		_, err := s.expenses.Create(s.ctx, s.userID, input)
		s.Require().NoError(err)
	}

	day, err := s.summaries.GetDay(s.ctx, s.userID, "", date(2025, 2, 1))
	s.Require().NoError(err)
	s.Require().NoError(s.summaryRepo.Delete(s.ctx, day.ID))

	rows, err := s.summaries.RebuildFromHistory(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Equal(3, rows)

	restored, err := s.summaries.GetDay(s.ctx, s.userID, "", date(2025, 2, 1))
	s.Require().NoError(err)
	s.True(restored.TotalSpent.Equal(decimal.NewFromInt(25)))
	s.Require().Len(restored.Categories, 1)
	s.Equal(2, restored.Categories[0].Count)

	all, err := s.summaries.ListRange(s.ctx, s.userID, nil, date(2025, 2, 1), date(2025, 2, 28))
	s.Require().NoError(err)
	s.Len(all, 3)
}

func (s *SchedulingScenarioSuite) TestRefreshStatusesAfterTimePasses() {
	def := s.createRent()

	later := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	updated, err := s.upcoming.RefreshStatuses(s.ctx, s.userID, later)
	s.Require().NoError(err)
	s.Equal(1, updated)

	s.Equal(schedule.StatusPending, s.findPayment(def, "2025-01-01").Status)
	s.Equal(schedule.StatusUpcoming, s.findPayment(def, "2025-02-01").Status)
}
