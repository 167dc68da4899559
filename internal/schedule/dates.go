package schedule

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// DueStatus labels an upcoming payment relative to today.
type DueStatus string

const (
	StatusUpcoming DueStatus = "upcoming"
	StatusDue      DueStatus = "due"
	StatusOverdue  DueStatus = "overdue"
	StatusPending  DueStatus = "pending"
)

// overdueWindowDays is how many days past due a payment stays overdue before
// it is considered pending.
const overdueWindowDays = 7

// TruncateToDay drops the time of day and returns midnight UTC of t's UTC date.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from 'from' to 'to'.
func DaysBetween(from, to time.Time) int {
	f := TruncateToDay(from)
	t := TruncateToDay(to)
	return int(t.Sub(f).Hours() / 24)
}

// ClassifyDueStatus partitions the day difference between dueDate and today:
//
//	d < -7        pending
//	-7 <= d < 0   overdue
//	d == 0        due
//	d > 0         upcoming
func ClassifyDueStatus(dueDate, today time.Time) DueStatus {
	d := DaysBetween(today, dueDate)
	switch {
	case d < -overdueWindowDays:
		return StatusPending
	case d < 0:
		return StatusOverdue
	case d == 0:
		return StatusDue
	default:
		return StatusUpcoming
	}
}

// ParseDate parses a YYYY-MM-DD string into midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
