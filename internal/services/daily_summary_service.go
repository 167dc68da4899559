package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"finance-tracker/internal/events"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/schedule"
)

type dailySummaryService struct {
	summaryRepo     repositories.DailySummaryRepositoryInterface
	expenseRepo     repositories.ExpenseRepositoryInterface
	publisher       EventPublisherInterface
	recurringLogger RecurringLoggerInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

func NewDailySummaryService(
	summaryRepo repositories.DailySummaryRepositoryInterface,
	expenseRepo repositories.ExpenseRepositoryInterface,
	publisher EventPublisherInterface,
	recurringLogger RecurringLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) DailySummaryServiceInterface {
	return &dailySummaryService{
		summaryRepo:     summaryRepo,
		expenseRepo:     expenseRepo,
		publisher:       publisher,
		recurringLogger: recurringLogger,
		metrics:         metrics,
		logger:          logger,
	}
}

func (s *dailySummaryService) ApplyDelta(ctx context.Context, delta models.SummaryDelta) error {
	return s.ApplyDeltas(ctx, []models.SummaryDelta{delta})
}

// ApplyDeltas groups deltas by summary key and applies each group in order to
// one loaded row. A missing row is only created by a positive amount; a row
// left with no categories and no positive total is deleted.
func (s *dailySummaryService) ApplyDeltas(ctx context.Context, deltas []models.SummaryDelta) error {
	if len(deltas) == 0 {
		return nil
	}

	start := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime(MetricSummaryApplyDuration, time.Since(start))
	}()

	var order []models.SummaryKey
	groups := make(map[models.SummaryKey][]models.SummaryDelta)
	for _, delta := range deltas {
		key := delta.SummaryKey.Normalize()
		delta.SummaryKey = key
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], delta)
	}

	for _, key := range order {
		if err := s.applyGroup(ctx, key, groups[key]); err != nil {
			return err
		}
	}

	return nil
}

func (s *dailySummaryService) applyGroup(ctx context.Context, key models.SummaryKey, deltas []models.SummaryDelta) error {
	stored, err := s.summaryRepo.GetByKey(ctx, key)
	if err != nil {
		if !errors.Is(err, repositories.ErrDailySummaryNotFound) {
			return storeError("load daily summary", err)
		}
		stored = nil
	}

	current := stored
	for _, delta := range deltas {
		if current == nil {
			if !delta.Amount.IsPositive() {
				continue
			}
			current = models.NewDailySummary(key)
		}

		current.Apply(delta)
		s.metrics.IncrementCounter(MetricSummaryDeltaApplied, map[string]string{"direction": deltaDirection(delta)})

		if current.IsEmpty() {
			current = nil
		}
	}

	switch {
	case current == nil && stored != nil:
		if err := s.summaryRepo.Delete(ctx, stored.ID); err != nil {
			return storeError("delete daily summary", err)
		}
		s.metrics.IncrementCounter(MetricSummaryRowDeleted, nil)
	case current != nil:
		if stored != nil && current != stored {
			current.ID = stored.ID
			current.CreatedAt = stored.CreatedAt
		}
		if err := s.summaryRepo.Upsert(ctx, current); err != nil {
			return storeError("save daily summary", err)
		}
	}

	return nil
}

func deltaDirection(delta models.SummaryDelta) string {
	if delta.Count < 0 || delta.Amount.IsNegative() {
		return "remove"
	}
	return "add"
}

// RebuildFromHistory recomputes every summary row touched by the user's
// expenses and overwrites it. Rows for days without expenses are left as they
// are.
func (s *dailySummaryService) RebuildFromHistory(ctx context.Context, userID string) (int, error) {
	start := time.Now()

	expenses, err := s.expenseRepo.ListByUser(ctx, userID, models.ExpenseFilters{})
	if err != nil {
		return 0, storeError("list expenses", err)
	}

	var order []models.SummaryKey
	rebuilt := make(map[models.SummaryKey]*models.DailySummary)
	for i := range expenses {
		delta := expenses[i].AddDelta()
		key := delta.SummaryKey.Normalize()
		summary, ok := rebuilt[key]
		if !ok {
			summary = models.NewDailySummary(key)
			rebuilt[key] = summary
			order = append(order, key)
		}
		summary.Apply(delta)
	}

	for _, key := range order {
		summary := rebuilt[key]

		existing, err := s.summaryRepo.GetByKey(ctx, key)
		switch {
		case err == nil:
			summary.ID = existing.ID
			summary.CreatedAt = existing.CreatedAt
		case !errors.Is(err, repositories.ErrDailySummaryNotFound):
			return 0, storeError("load daily summary", err)
		}

		if err := s.summaryRepo.Upsert(ctx, summary); err != nil {
			return 0, storeError("save daily summary", err)
		}
	}

	rows := len(order)
	s.metrics.IncrementCounter(MetricSummaryRebuilt, nil)
	s.metrics.RecordGauge(MetricRebuildRows, float64(rows), nil)
	s.metrics.RecordProcessingTime(MetricSummaryRebuildDuration, time.Since(start))
	s.recurringLogger.LogSummaryRebuilt(ctx, userID, rows)
	publishEvent(ctx, s.publisher, s.recurringLogger, s.metrics,
		events.New(events.TypeSummaryRebuilt, userID, events.SummaryRebuilt{Rows: rows}))

	return rows, nil
}

func (s *dailySummaryService) GetDay(ctx context.Context, userID, expenseBookID string, date time.Time) (*models.DailySummary, error) {
	summary, err := s.summaryRepo.GetByKey(ctx, models.SummaryKey{
		UserID:        userID,
		ExpenseBookID: expenseBookID,
		Date:          schedule.TruncateToDay(date),
	})
	if err != nil {
		if errors.Is(err, repositories.ErrDailySummaryNotFound) {
			return nil, ErrDailySummaryNotFound
		}
		return nil, storeError("get daily summary", err)
	}
	return summary, nil
}

func (s *dailySummaryService) ListRange(ctx context.Context, userID string, expenseBookID *string, from, to time.Time) ([]models.DailySummary, error) {
	from = schedule.TruncateToDay(from)
	to = schedule.TruncateToDay(to)
	if to.Before(from) {
		return nil, newValidationError("to", "range end must not be before its start")
	}

	summaries, err := s.summaryRepo.ListRange(ctx, userID, expenseBookID, from, to)
	if err != nil {
		return nil, storeError("list daily summaries", err)
	}
	if summaries == nil {
		summaries = []models.DailySummary{}
	}
	return summaries, nil
}
