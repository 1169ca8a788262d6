package types

import "github.com/m-mizutani/goerr/v2"

// DeadlineBucket classifies a due date relative to the current wall clock.
// The four non-filter buckets partition all parsable due dates.
type DeadlineBucket string

const (
	DeadlineOverdue      DeadlineBucket = "overdue"
	DeadlineDueThisWeek  DeadlineBucket = "due-this-week"
	DeadlineDueThisMonth DeadlineBucket = "due-this-month"
	DeadlineFuture       DeadlineBucket = "future"

	// DeadlineAll is the no-constraint filter value, never a classification result
	DeadlineAll DeadlineBucket = "all"
)

// AllDeadlineBuckets returns the classification buckets (excludes DeadlineAll)
func AllDeadlineBuckets() []DeadlineBucket {
	return []DeadlineBucket{
		DeadlineOverdue,
		DeadlineDueThisWeek,
		DeadlineDueThisMonth,
		DeadlineFuture,
	}
}

// IsValid checks if the deadline bucket is a valid filter value
func (b DeadlineBucket) IsValid() bool {
	switch b {
	case DeadlineOverdue, DeadlineDueThisWeek, DeadlineDueThisMonth, DeadlineFuture, DeadlineAll:
		return true
	default:
		return false
	}
}

// String returns the string representation of the deadline bucket
func (b DeadlineBucket) String() string {
	return string(b)
}

// ParseDeadlineBucket parses a string into a DeadlineBucket filter value.
// Empty input means no constraint.
func ParseDeadlineBucket(s string) (DeadlineBucket, error) {
	if s == "" {
		return DeadlineAll, nil
	}
	bucket := DeadlineBucket(s)
	if !bucket.IsValid() {
		return "", goerr.New("invalid deadline bucket", goerr.V("bucket", s))
	}
	return bucket, nil
}
