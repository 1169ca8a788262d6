package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gyges/pkg/domain/interfaces"
	"github.com/secmon-lab/gyges/pkg/domain/model"
	"github.com/secmon-lab/gyges/pkg/domain/types"
	"github.com/secmon-lab/gyges/pkg/service/rollup"
	"github.com/secmon-lab/gyges/pkg/service/view"
)

// ViewUseCase exposes the derived, read-only projections over the record
// store. Every method recomputes from a fresh snapshot; nothing here mutates.
type ViewUseCase struct {
	repo  interfaces.Repository
	clock func() time.Time
}

func NewViewUseCase(repo interfaces.Repository, clock func() time.Time) *ViewUseCase {
	return &ViewUseCase{
		repo:  repo,
		clock: clock,
	}
}

func (uc *ViewUseCase) snapshot(ctx context.Context) ([]*model.RiskRecord, error) {
	records, err := uc.repo.Record().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list records")
	}
	return records, nil
}

// Filtered returns the records matching the filter, in list order
func (uc *ViewUseCase) Filtered(ctx context.Context, filter *model.RecordFilter) ([]*model.RiskRecord, error) {
	records, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if filter != nil && filter.Now.IsZero() {
		f := *filter
		f.Now = uc.clock()
		filter = &f
	}

	return view.Apply(records, filter), nil
}

// Sequence filters the store and builds the visible hierarchy sequence
func (uc *ViewUseCase) Sequence(ctx context.Context, filter *model.RecordFilter, expanded map[types.RecordID]bool, mode types.HierarchyMode) ([]*model.RiskRecord, error) {
	filtered, err := uc.Filtered(ctx, filter)
	if err != nil {
		return nil, err
	}
	return view.VisibleSequence(filtered, expanded, mode), nil
}

// DefaultExpansion returns the initial expand state (all Level 1 expanded)
func (uc *ViewUseCase) DefaultExpansion(ctx context.Context) (map[types.RecordID]bool, error) {
	records, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return view.DefaultExpansion(records), nil
}

// ChildScores aggregates the direct children's severity scores for a parent
// record. A nil summary (no qualifying children) is not an error.
func (uc *ViewUseCase) ChildScores(ctx context.Context, id types.RecordID, metric types.ScoreMetric) (*model.ChildScoreSummary, error) {
	parent, err := uc.repo.Record().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get parent record")
	}

	records, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return rollup.ChildScores(parent, records, metric), nil
}

// Overview computes the two-level Level 1 aggregation for a record. A nil
// aggregation (no descendants) is not an error.
func (uc *ViewUseCase) Overview(ctx context.Context, id types.RecordID) (*model.LevelOneAggregation, error) {
	parent, err := uc.repo.Record().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get parent record")
	}

	records, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return rollup.LevelOne(parent, records), nil
}

// Summary computes the dashboard counters for one tab (or all tabs when the
// category is empty): deadline buckets, canonical status buckets and the
// completed-late velocity count. Records with unparsable due dates land in
// Unscheduled rather than any deadline bucket.
func (uc *ViewUseCase) Summary(ctx context.Context, tab types.TabCategory) (*model.DashboardSummary, error) {
	records, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.clock()
	summary := &model.DashboardSummary{}

	for _, record := range records {
		if tab != "" && record.TabCategory != tab {
			continue
		}
		summary.Total++

		if bucket, ok := rollup.ClassifyDeadline(record.DueDate, now); ok {
			switch bucket {
			case types.DeadlineOverdue:
				summary.Overdue++
			case types.DeadlineDueThisWeek:
				summary.DueThisWeek++
			case types.DeadlineDueThisMonth:
				summary.DueThisMonth++
			case types.DeadlineFuture:
				summary.Future++
			}
		} else {
			summary.Unscheduled++
		}

		summary.Status.Add(record.Status)

		if rollup.CompletedLate(record) {
			summary.CompletedLate++
		}
	}

	return summary, nil
}
