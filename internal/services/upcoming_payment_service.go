package services

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/schedule"

	"github.com/google/uuid"
)

type upcomingPaymentService struct {
	upcomingRepo     repositories.UpcomingPaymentRepositoryInterface
	recurringService RecurringServiceInterface
	projector        WindowProjectorInterface
	recurringLogger  RecurringLoggerInterface
	metrics          MetricsRecorderInterface
	logger           *slog.Logger
}

func NewUpcomingPaymentService(
	upcomingRepo repositories.UpcomingPaymentRepositoryInterface,
	recurringService RecurringServiceInterface,
	projector WindowProjectorInterface,
	recurringLogger RecurringLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) UpcomingPaymentServiceInterface {
	return &upcomingPaymentService{
		upcomingRepo:     upcomingRepo,
		recurringService: recurringService,
		projector:        projector,
		recurringLogger:  recurringLogger,
		metrics:          metrics,
		logger:           logger,
	}
}

// List returns the user's instances ordered by due date.
func (s *upcomingPaymentService) List(ctx context.Context, userID string) ([]models.UpcomingPayment, error) {
	payments, err := s.upcomingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeError("list upcoming payments", err)
	}
	if payments == nil {
		payments = []models.UpcomingPayment{}
	}
	return payments, nil
}

// RefreshStatuses reclassifies every instance against now and writes only
// the ones whose status changed.
func (s *upcomingPaymentService) RefreshStatuses(ctx context.Context, userID string, now time.Time) (int, error) {
	payments, err := s.upcomingRepo.ListByUser(ctx, userID)
	if err != nil {
		return 0, storeError("list upcoming payments", err)
	}

	updated := 0
	for i := range payments {
		status := schedule.ClassifyDueStatus(payments[i].DueDate, now)
		if status == payments[i].Status {
			continue
		}
		if err := s.upcomingRepo.UpdateStatus(ctx, payments[i].ID, status); err != nil {
			if errors.Is(err, repositories.ErrUpcomingPaymentNotFound) {
				continue
			}
			return updated, storeError("update upcoming payment status", err)
		}
		updated++
	}

	s.metrics.RecordGauge(MetricStatusesRefreshed, float64(updated), nil)
	s.recurringLogger.LogStatusesRefreshed(ctx, userID, updated)

	return updated, nil
}

// MarkPaid settles one instance. With recordAsExpense the owning definition
// books an expense; otherwise only its schedule advances. The instance is
// then removed and the window topped up.
func (s *upcomingPaymentService) MarkPaid(ctx context.Context, userID string, paymentID uuid.UUID, paidDate time.Time, recordAsExpense bool, now time.Time) (*models.MarkPaidResult, error) {
	payment, err := s.upcomingRepo.GetByIDForUser(ctx, paymentID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUpcomingPaymentNotFound) {
			return nil, ErrUpcomingPaymentNotFound
		}
		return nil, storeError("get upcoming payment", err)
	}

	result := &models.MarkPaidResult{PaymentID: payment.ID}

	if recordAsExpense {
		paymentResult, err := s.recurringService.RecordPayment(ctx, userID, payment.RecurringExpenseID, paidDate)
		if err != nil {
			return nil, err
		}
		result.Expense = paymentResult.Expense
		result.Definition = paymentResult.Definition
	} else {
		def, err := s.recurringService.AdvanceSchedule(ctx, userID, payment.RecurringExpenseID, paidDate)
		if err != nil {
			return nil, err
		}
		result.Definition = def
	}

	if err := s.upcomingRepo.Delete(ctx, payment.ID); err != nil && !errors.Is(err, repositories.ErrUpcomingPaymentNotFound) {
		return nil, storeError("delete upcoming payment", err)
	}

	created, err := s.projector.EnsureWindow(ctx, result.Definition, now)
	if err != nil {
		return nil, err
	}
	result.Created = created

	s.metrics.IncrementCounter(MetricUpcomingPaid, map[string]string{
		"frequency":           payment.Frequency.String(),
		"recorded_as_expense": strconv.FormatBool(recordAsExpense),
	})

	return result, nil
}

// GenerateForAllActive tops up the window of every active definition.
func (s *upcomingPaymentService) GenerateForAllActive(ctx context.Context, userID string, now time.Time) (int, error) {
	active := true
	defs, err := s.recurringService.List(ctx, userID, &active)
	if err != nil {
		return 0, err
	}

	total := 0
	for i := range defs {
		created, err := s.projector.EnsureWindow(ctx, &defs[i], now)
		if err != nil {
			return total, err
		}
		total += created
	}

	s.logger.InfoContext(ctx, "generated upcoming payments",
		slog.String("user_id", userID),
		slog.Int("definitions", len(defs)),
		slog.Int("created", total),
	)

	return total, nil
}
