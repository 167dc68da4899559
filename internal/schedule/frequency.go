// Package schedule holds the calendar arithmetic behind recurring expenses:
// advancing a date by a frequency and classifying how close a due date is.
package schedule

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Frequency is the cadence of a recurring expense.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Advancer moves a date forward by one period of its frequency.
type Advancer interface {
	Advance(date time.Time) time.Time
}

type dailyAdvancer struct{}

func (dailyAdvancer) Advance(date time.Time) time.Time { return date.AddDate(0, 0, 1) }

type weeklyAdvancer struct{}

func (weeklyAdvancer) Advance(date time.Time) time.Time { return date.AddDate(0, 0, 7) }

// monthlyAdvancer keeps the day of month, clamped to the last day of the
// target month (Jan 31 -> Feb 29 in a leap year).
type monthlyAdvancer struct{}

func (monthlyAdvancer) Advance(date time.Time) time.Time {
	return addMonthsClamped(date, 1)
}

// yearlyAdvancer clamps Feb 29 to Feb 28 in non-leap years.
type yearlyAdvancer struct{}

func (yearlyAdvancer) Advance(date time.Time) time.Time {
	return addMonthsClamped(date, 12)
}

var advancers = map[Frequency]Advancer{
	FrequencyDaily:   dailyAdvancer{},
	FrequencyWeekly:  weeklyAdvancer{},
	FrequencyMonthly: monthlyAdvancer{},
	FrequencyYearly:  yearlyAdvancer{},
}

// ParseFrequency normalises s and returns an error for values outside the
// supported set.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := advancers[f]; !ok {
		return "", fmt.Errorf("unknown frequency: %q", s)
	}
	return f, nil
}

// IsValid reports whether f is one of the supported frequencies.
func (f Frequency) IsValid() bool {
	_, ok := advancers[f]
	return ok
}

func (f Frequency) String() string { return string(f) }

// Frequencies lists the supported frequencies in ascending period length.
func Frequencies() []Frequency {
	return []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly}
}

// NextOccurrence returns the date one period after date. Unrecognised
// frequencies advance monthly; stored rows created before frequency
// validation existed still rely on that.
func NextOccurrence(date time.Time, frequency Frequency) time.Time {
	day := TruncateToDay(date)
	advancer, ok := advancers[frequency]
	if !ok {
		slog.Warn("unknown frequency, advancing monthly",
			slog.String("event_type", "frequency_fallback"),
			slog.String("frequency", string(frequency)),
			slog.String("date", FormatDate(day)),
		)
		advancer = monthlyAdvancer{}
	}
	return advancer.Advance(day)
}

func addMonthsClamped(date time.Time, months int) time.Time {
	y, m, d := date.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	last := daysIn(first.Year(), first.Month())
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
