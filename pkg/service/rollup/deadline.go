package rollup

import (
	"time"

	"github.com/secmon-lab/gyges/pkg/domain/model"
	"github.com/secmon-lab/gyges/pkg/domain/types"
)

// dateLayouts covers the date spellings observed in record data: ISO dates,
// full timestamps and US-style locale strings.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"1/2/2006",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDate leniently parses a calendar date string. The second return is
// false when no known layout matches; callers must treat such records as not
// matching date-dependent logic, never as an error.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dateOf projects t onto its calendar day as a UTC midnight. Parsed due
// dates are UTC midnights already; normalizing the clock the same way makes
// every bucket comparison a pure calendar-day comparison, independent of the
// clock's time zone.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// endOfWeek returns the last day (Sunday) of the ISO week containing t's
// calendar day. Weeks start on Monday.
func endOfWeek(t time.Time) time.Time {
	day := dateOf(t)
	sinceMonday := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, 6-sinceMonday)
}

// endOfMonth returns the last day of the calendar month containing t's
// calendar day.
func endOfMonth(t time.Time) time.Time {
	firstOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return firstOfMonth.AddDate(0, 1, -1)
}

// ClassifyDeadline classifies a due date against now. The four buckets
// partition all parsable dates: overdue (strictly before today), due this
// week (on/before the end of the current ISO week, including today), due this
// month (on/before the end of the calendar month), future. The second return
// is false for unparsable dates, which belong to no bucket.
func ClassifyDeadline(dueDate string, now time.Time) (types.DeadlineBucket, bool) {
	due, ok := ParseDate(dueDate)
	if !ok {
		return "", false
	}

	day := dateOf(due)
	today := dateOf(now)

	switch {
	case day.Before(today):
		return types.DeadlineOverdue, true
	case !day.After(endOfWeek(now)):
		return types.DeadlineDueThisWeek, true
	case !day.After(endOfMonth(now)):
		return types.DeadlineDueThisMonth, true
	default:
		return types.DeadlineFuture, true
	}
}

// CompletedLate reports whether the record was completed after its due date.
// Records without both dates parsable are never late.
func CompletedLate(record *model.RiskRecord) bool {
	completed, ok := ParseDate(record.CompletionDate)
	if !ok {
		return false
	}
	due, ok := ParseDate(record.DueDate)
	if !ok {
		return false
	}
	return dateOf(completed).After(dateOf(due))
}
