package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"finance-tracker/internal/events"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/schedule"

	"github.com/google/uuid"
)

type recurringService struct {
	recurringRepo   repositories.RecurringExpenseRepositoryInterface
	expenseRepo     repositories.ExpenseRepositoryInterface
	projector       WindowProjectorInterface
	summaryService  DailySummaryServiceInterface
	publisher       EventPublisherInterface
	recurringLogger RecurringLoggerInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewRecurringService wires the scheduler. The projector keeps instance
// windows in step with definition changes; summaryService receives the
// delta of every recorded payment.
func NewRecurringService(
	recurringRepo repositories.RecurringExpenseRepositoryInterface,
	expenseRepo repositories.ExpenseRepositoryInterface,
	projector WindowProjectorInterface,
	summaryService DailySummaryServiceInterface,
	publisher EventPublisherInterface,
	recurringLogger RecurringLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) RecurringServiceInterface {
	return &recurringService{
		recurringRepo:   recurringRepo,
		expenseRepo:     expenseRepo,
		projector:       projector,
		summaryService:  summaryService,
		publisher:       publisher,
		recurringLogger: recurringLogger,
		metrics:         metrics,
		logger:          logger,
	}
}

func (s *recurringService) Create(ctx context.Context, userID string, input models.RecurringExpenseInput, now time.Time) (*models.RecurringExpense, error) {
	def := &models.RecurringExpense{
		UserID:        userID,
		Amount:        input.Amount,
		Category:      strings.TrimSpace(input.Category),
		PaymentMethod: input.PaymentMethod,
		Description:   input.Description,
		Frequency:     input.Frequency,
		StartDate:     schedule.TruncateToDay(input.StartDate),
		IsActive:      true,
	}
	if input.EndDate != nil {
		end := schedule.TruncateToDay(*input.EndDate)
		def.EndDate = &end
	}
	def.NextOccurrence = def.StartDate

	if err := def.Validate(); err != nil {
		return nil, validationFromModel(err)
	}

	if err := s.recurringRepo.Create(ctx, def); err != nil {
		return nil, persistError("create recurring expense", err)
	}

	if _, err := s.projector.EnsureWindow(ctx, def, now); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter(MetricRecurringCreated, map[string]string{"frequency": def.Frequency.String()})
	s.recurringLogger.LogRecurringCreated(ctx, def)

	return def, nil
}

func (s *recurringService) Get(ctx context.Context, userID string, id uuid.UUID) (*models.RecurringExpense, error) {
	def, err := s.recurringRepo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecurringExpenseNotFound) {
			return nil, ErrRecurringExpenseNotFound
		}
		return nil, storeError("get recurring expense", err)
	}
	return def, nil
}

func (s *recurringService) List(ctx context.Context, userID string, active *bool) ([]models.RecurringExpense, error) {
	defs, err := s.recurringRepo.ListByUser(ctx, userID, active)
	if err != nil {
		return nil, storeError("list recurring expenses", err)
	}
	if defs == nil {
		defs = []models.RecurringExpense{}
	}
	return defs, nil
}

// Update applies patch. A change of amount, frequency or start date replaces
// every live instance; other fields leave instances alone.
func (s *recurringService) Update(ctx context.Context, userID string, id uuid.UUID, patch models.RecurringExpensePatch, now time.Time) (*models.RecurringExpense, error) {
	def, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return def, nil
	}

	scheduleBreaking := false
	if patch.Amount != nil {
		if !patch.Amount.Equal(def.Amount) {
			scheduleBreaking = true
		}
		def.Amount = *patch.Amount
	}
	if patch.Frequency != nil {
		if *patch.Frequency != def.Frequency {
			scheduleBreaking = true
		}
		def.Frequency = *patch.Frequency
	}
	if patch.StartDate != nil {
		start := schedule.TruncateToDay(*patch.StartDate)
		if !start.Equal(schedule.TruncateToDay(def.StartDate)) {
			scheduleBreaking = true
			def.NextOccurrence = start
		}
		def.StartDate = start
	}
	if patch.Category != nil {
		def.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.PaymentMethod != nil {
		def.PaymentMethod = *patch.PaymentMethod
	}
	if patch.Description != nil {
		def.Description = *patch.Description
	}
	switch {
	case patch.ClearEndDate:
		def.EndDate = nil
	case patch.EndDate != nil:
		end := schedule.TruncateToDay(*patch.EndDate)
		def.EndDate = &end
	}

	if err := def.Validate(); err != nil {
		return nil, validationFromModel(err)
	}

	if err := s.recurringRepo.Update(ctx, def); err != nil {
		return nil, persistError("update recurring expense", err)
	}

	if scheduleBreaking {
		if _, err := s.projector.ClearWindow(ctx, def.ID); err != nil {
			return nil, err
		}
		if _, err := s.projector.EnsureWindow(ctx, def, now); err != nil {
			return nil, err
		}
	}

	s.metrics.IncrementCounter(MetricRecurringUpdated, nil)
	s.recurringLogger.LogRecurringUpdated(ctx, def, scheduleBreaking)

	return def, nil
}

// Deactivate retires the definition and drops its instances. The row itself
// is kept so expense back-references stay resolvable.
func (s *recurringService) Deactivate(ctx context.Context, userID string, id uuid.UUID) (bool, error) {
	def, err := s.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, ErrRecurringExpenseNotFound) {
			return false, nil
		}
		return false, err
	}

	def.IsActive = false
	if err := s.recurringRepo.Update(ctx, def); err != nil {
		return false, persistError("deactivate recurring expense", err)
	}

	removed, err := s.projector.ClearWindow(ctx, def.ID)
	if err != nil {
		return false, err
	}

	s.metrics.IncrementCounter(MetricRecurringDeactivated, nil)
	s.recurringLogger.LogRecurringDeactivated(ctx, userID, def.ID, removed)
	s.publish(ctx, events.New(events.TypeRecurringDeactivated, userID, events.RecurringDeactivated{
		RecurringExpenseID: def.ID,
		PaymentsRemoved:    removed,
	}))

	return true, nil
}

// RecordPayment books one occurrence as an expense on paidDate and advances
// the schedule from that date. Instances are left to the caller.
func (s *recurringService) RecordPayment(ctx context.Context, userID string, id uuid.UUID, paidDate time.Time) (*models.PaymentResult, error) {
	if paidDate.IsZero() {
		return nil, newValidationError("paid_date", "paid date is required")
	}

	def, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	paid := schedule.TruncateToDay(paidDate)
	recurringID := def.ID
	expense := &models.Expense{
		UserID:             def.UserID,
		Amount:             def.Amount,
		Category:           def.Category,
		PaymentMethod:      def.PaymentMethod,
		Description:        def.Description,
		Date:               paid,
		RecurringExpenseID: &recurringID,
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, persistError("create expense", err)
	}

	def.Advance(paid)
	if err := s.recurringRepo.Update(ctx, def); err != nil {
		return nil, persistError("advance recurring expense", err)
	}

	if err := s.summaryService.ApplyDelta(ctx, expense.AddDelta()); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter(MetricPaymentRecorded, map[string]string{"frequency": def.Frequency.String()})
	s.recurringLogger.LogPaymentRecorded(ctx, def, paid, &expense.ID)
	s.publish(ctx, events.New(events.TypePaymentRecorded, userID, paymentRecordedPayload(def, paid, &expense.ID)))

	return &models.PaymentResult{Expense: expense, Definition: def}, nil
}

// AdvanceSchedule moves the schedule past paidDate without booking an
// expense.
func (s *recurringService) AdvanceSchedule(ctx context.Context, userID string, id uuid.UUID, paidDate time.Time) (*models.RecurringExpense, error) {
	if paidDate.IsZero() {
		return nil, newValidationError("paid_date", "paid date is required")
	}

	def, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	paid := schedule.TruncateToDay(paidDate)
	def.Advance(paid)
	if err := s.recurringRepo.Update(ctx, def); err != nil {
		return nil, persistError("advance recurring expense", err)
	}

	s.recurringLogger.LogPaymentRecorded(ctx, def, paid, nil)
	s.publish(ctx, events.New(events.TypePaymentRecorded, userID, paymentRecordedPayload(def, paid, nil)))

	return def, nil
}

func (s *recurringService) publish(ctx context.Context, e events.Event) {
	publishEvent(ctx, s.publisher, s.recurringLogger, s.metrics, e)
}

func paymentRecordedPayload(def *models.RecurringExpense, paid time.Time, expenseID *uuid.UUID) events.PaymentRecorded {
	return events.PaymentRecorded{
		RecurringExpenseID: def.ID,
		ExpenseID:          expenseID,
		Amount:             def.Amount,
		Category:           def.Category,
		PaidDate:           schedule.FormatDate(paid),
		NextOccurrence:     schedule.FormatDate(def.NextOccurrence),
	}
}
