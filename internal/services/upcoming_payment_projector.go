package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/schedule"

	"github.com/google/uuid"
)

const (
	// windowSize is the number of live upcoming payments kept per active
	// definition.
	windowSize = 2
	// maxWindowCandidates bounds the candidate walk when existing rows keep
	// colliding with candidate dates.
	maxWindowCandidates = 366
)

type upcomingPaymentProjector struct {
	upcomingRepo    repositories.UpcomingPaymentRepositoryInterface
	recurringLogger RecurringLoggerInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

func NewUpcomingPaymentProjector(
	upcomingRepo repositories.UpcomingPaymentRepositoryInterface,
	recurringLogger RecurringLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) WindowProjectorInterface {
	return &upcomingPaymentProjector{
		upcomingRepo:    upcomingRepo,
		recurringLogger: recurringLogger,
		metrics:         metrics,
		logger:          logger,
	}
}

// EnsureWindow tops the definition's live instances up to windowSize,
// walking due dates from NextOccurrence and stopping past EndDate. Dates that
// already have an instance are skipped.
func (p *upcomingPaymentProjector) EnsureWindow(ctx context.Context, def *models.RecurringExpense, now time.Time) (int, error) {
	if def == nil || !def.IsActive {
		return 0, nil
	}

	start := time.Now()
	defer func() {
		p.metrics.RecordProcessingTime(MetricWindowDuration, time.Since(start))
	}()

	live, err := p.upcomingRepo.CountByRecurringExpense(ctx, def.ID)
	if err != nil {
		return 0, storeError("count upcoming payments", err)
	}

	created := 0
	candidate := schedule.TruncateToDay(def.NextOccurrence)
	for i := 0; live < windowSize && i < maxWindowCandidates; i++ {
		if def.IsPastEnd(candidate) {
			break
		}

		exists, err := p.upcomingRepo.ExistsForDueDate(ctx, def.ID, candidate)
		if err != nil {
			return created, storeError("check upcoming payment", err)
		}

		if !exists {
			payment := models.NewUpcomingPayment(def, candidate, now)
			err := p.upcomingRepo.Create(ctx, payment)
			switch {
			case err == nil:
				live++
				created++
			case errors.Is(err, repositories.ErrUpcomingPaymentExists):
				// written by a concurrent request; the unique index held
			default:
				return created, storeError("create upcoming payment", err)
			}
		}

		candidate = schedule.NextOccurrence(candidate, def.Frequency)
	}

	if created > 0 {
		p.metrics.RecordGauge(MetricWindowGenerated, float64(created), nil)
		p.recurringLogger.LogWindowGenerated(ctx, def.ID, created)
	}

	return created, nil
}

// ClearWindow hard-deletes every instance of the definition.
func (p *upcomingPaymentProjector) ClearWindow(ctx context.Context, recurringExpenseID uuid.UUID) (int64, error) {
	removed, err := p.upcomingRepo.DeleteByRecurringExpense(ctx, recurringExpenseID)
	if err != nil {
		return 0, storeError("delete upcoming payments", err)
	}
	return removed, nil
}
