package model

import "github.com/secmon-lab/gyges/pkg/domain/types"

// ChildScoreSummary is the score rollup over a parent's direct Level 2
// children. AvgScore is the arithmetic mean rounded to the nearest integer;
// MaxScore is the unrounded maximum; ChildCount counts scored children only.
type ChildScoreSummary struct {
	AvgScore   int
	MaxScore   float64
	ChildCount int
}

// ControlCounts sums related controls across a descendant set
type ControlCounts struct {
	Total     int
	Automated int
	Manual    int
}

// EffectivenessBreakdown buckets descendants by control effectiveness label.
// Records with a missing or unknown label count as NotAssessed.
type EffectivenessBreakdown struct {
	Effective          int
	PartiallyEffective int
	Ineffective        int
	NotAssessed        int
}

// ProgressBreakdown buckets descendants by the assess stage status
type ProgressBreakdown struct {
	Completed  int
	InProgress int
	NotStarted int
}

// StatusBreakdown buckets descendants by canonical workflow status. Other is
// the catch-all for any spelling outside the four canonical groups.
type StatusBreakdown struct {
	Completed       int
	Overdue         int
	InProgress      int
	PendingApproval int
	Other           int
}

// Add counts one status into its bucket
func (b *StatusBreakdown) Add(status types.WorkflowStatus) {
	switch status.Bucket() {
	case types.BucketCompleted:
		b.Completed++
	case types.BucketOverdue:
		b.Overdue++
	case types.BucketInProgress:
		b.InProgress++
	case types.BucketPendingApproval:
		b.PendingApproval++
	default:
		b.Other++
	}
}

// LevelOneAggregation is the two-level rollup for a Level 1 record: its
// direct Level 2 children plus their Level 3 children.
type LevelOneAggregation struct {
	DescendantCount int
	Controls        ControlCounts
	Effectiveness   EffectivenessBreakdown
	Progress        ProgressBreakdown
	Status          StatusBreakdown
}

// DashboardSummary holds the per-tab counters for the summary view
type DashboardSummary struct {
	Total         int
	Overdue       int
	DueThisWeek   int
	DueThisMonth  int
	Future        int
	Unscheduled   int
	Status        StatusBreakdown
	CompletedLate int
}
