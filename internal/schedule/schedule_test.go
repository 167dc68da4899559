package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ScheduleTestSuite struct {
	suite.Suite
}

func TestScheduleTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleTestSuite))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *ScheduleTestSuite) TestNextOccurrence() {
	testCases := []struct {
		name      string
		from      time.Time
		frequency Frequency
		expected  time.Time
	}{
		{"daily", date(2025, 1, 1), FrequencyDaily, date(2025, 1, 2)},
		{"daily across year end", date(2024, 12, 31), FrequencyDaily, date(2025, 1, 1)},
		{"weekly", date(2025, 1, 28), FrequencyWeekly, date(2025, 2, 4)},
		{"monthly", date(2025, 1, 1), FrequencyMonthly, date(2025, 2, 1)},
		{"monthly clamps into leap february", date(2024, 1, 31), FrequencyMonthly, date(2024, 2, 29)},
		{"monthly clamps into february", date(2025, 1, 31), FrequencyMonthly, date(2025, 2, 28)},
		{"monthly clamps to 30 day month", date(2025, 3, 31), FrequencyMonthly, date(2025, 4, 30)},
		{"monthly december rollover", date(2025, 12, 15), FrequencyMonthly, date(2026, 1, 15)},
		{"yearly", date(2025, 6, 10), FrequencyYearly, date(2026, 6, 10)},
		{"yearly from leap day", date(2024, 2, 29), FrequencyYearly, date(2025, 2, 28)},
		{"unknown falls back to monthly", date(2024, 1, 31), Frequency("fortnightly"), date(2024, 2, 29)},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got := NextOccurrence(tc.from, tc.frequency)
			s.True(tc.expected.Equal(got), "expected %s, got %s", FormatDate(tc.expected), FormatDate(got))
		})
	}
}

func (s *ScheduleTestSuite) TestNextOccurrence_IgnoresTimeOfDay() {
	from := time.Date(2025, 1, 31, 23, 30, 0, 0, time.UTC)
	got := NextOccurrence(from, FrequencyMonthly)
	s.Equal("2025-02-28", FormatDate(got))
	s.Equal(0, got.Hour())
}

func (s *ScheduleTestSuite) TestClassifyDueStatus_Partition() {
	today := date(2025, 3, 15)

	for d := -30; d <= 30; d++ {
		due := today.AddDate(0, 0, d)
		status := ClassifyDueStatus(due, today)

		var expected DueStatus
		switch {
		case d < -7:
			expected = StatusPending
		case d >= -7 && d < 0:
			expected = StatusOverdue
		case d == 0:
			expected = StatusDue
		default:
			expected = StatusUpcoming
		}
		s.Equal(expected, status, "days until due %d", d)
	}
}

func (s *ScheduleTestSuite) TestClassifyDueStatus_Boundaries() {
	today := date(2025, 3, 15)

	s.Equal(StatusPending, ClassifyDueStatus(today.AddDate(0, 0, -8), today))
	s.Equal(StatusOverdue, ClassifyDueStatus(today.AddDate(0, 0, -7), today))
	s.Equal(StatusOverdue, ClassifyDueStatus(today.AddDate(0, 0, -1), today))
	s.Equal(StatusDue, ClassifyDueStatus(today, today))
	s.Equal(StatusUpcoming, ClassifyDueStatus(today.AddDate(0, 0, 1), today))
}

func (s *ScheduleTestSuite) TestClassifyDueStatus_TimeOfDayIgnored() {
	due := date(2025, 3, 15)
	lateToday := time.Date(2025, 3, 15, 23, 59, 0, 0, time.UTC)

	s.Equal(StatusDue, ClassifyDueStatus(due, lateToday))
}

func (s *ScheduleTestSuite) TestParseFrequency() {
	f, err := ParseFrequency(" Monthly ")
	s.NoError(err)
	s.Equal(FrequencyMonthly, f)

	_, err = ParseFrequency("quarterly")
	s.Error(err)

	s.True(FrequencyWeekly.IsValid())
	s.False(Frequency("").IsValid())
	s.Len(Frequencies(), 4)
}

func (s *ScheduleTestSuite) TestParseDate() {
	d, err := ParseDate("2025-01-31")
	s.NoError(err)
	s.True(date(2025, 1, 31).Equal(d))

	_, err = ParseDate("31/01/2025")
	s.Error(err)
}

func (s *ScheduleTestSuite) TestDaysBetween() {
	s.Equal(0, DaysBetween(date(2025, 1, 1), time.Date(2025, 1, 1, 18, 0, 0, 0, time.UTC)))
	s.Equal(31, DaysBetween(date(2025, 1, 1), date(2025, 2, 1)))
	s.Equal(-1, DaysBetween(date(2025, 1, 2), date(2025, 1, 1)))
}
