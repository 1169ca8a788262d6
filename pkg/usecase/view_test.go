package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/gyges/pkg/domain/model"
	"github.com/secmon-lab/gyges/pkg/domain/types"
	"github.com/secmon-lab/gyges/pkg/repository/memory"
	"github.com/secmon-lab/gyges/pkg/usecase"
)

// seedScenario loads three Level 1 risks, the first with two scored Level 2
// children joined by parent title.
func seedScenario(t *testing.T, uc *usecase.UseCases) {
	t.Helper()
	ctx := context.Background()

	records := []*model.RiskRecord{
		{ID: "l1a", Title: "Cyber Risk", RiskLevel: types.RiskLevel1, TabCategory: types.TabCategoryOwn, DueDate: "2025-06-10", Status: types.StatusInProgress},
		{ID: "l1b", Title: "Conduct Risk", RiskLevel: types.RiskLevel1, TabCategory: types.TabCategoryOwn, DueDate: "2025-06-20", Status: types.StatusCompleted},
		{ID: "l1c", Title: "Model Risk", RiskLevel: types.RiskLevel1, TabCategory: types.TabCategoryAssess, DueDate: "sometime", Status: types.StatusOverdue},
		{ID: "l2a1", Title: "Phishing", RiskLevel: types.RiskLevel2, ParentRisk: "Cyber Risk", TabCategory: types.TabCategoryOwn, InherentRisk: model.Severity{Score: 10}},
		{ID: "l2a2", Title: "Ransomware", RiskLevel: types.RiskLevel2, ParentRisk: "Cyber Risk", TabCategory: types.TabCategoryOwn, InherentRisk: model.Severity{Score: 20}},
	}
	for _, record := range records {
		gt.R1(uc.Record.CreateRecord(ctx, record)).NoError(t)
	}
}

func newViewUseCases(t *testing.T) *usecase.UseCases {
	t.Helper()
	uc := usecase.New(memory.New(), usecase.WithClock(func() time.Time { return testNow }))
	seedScenario(t, uc)
	return uc
}

func TestViewChildScores(t *testing.T) {
	uc := newViewUseCases(t)
	ctx := context.Background()

	scores := gt.R1(uc.View.ChildScores(ctx, "l1a", types.MetricInherent)).NoError(t)
	gt.Value(t, scores).NotNil()
	gt.Number(t, scores.AvgScore).Equal(15)
	gt.Number(t, scores.MaxScore).Equal(float64(20))
	gt.Number(t, scores.ChildCount).Equal(2)

	// A childless Level 1 yields no summary, not an error.
	empty := gt.R1(uc.View.ChildScores(ctx, "l1b", types.MetricInherent)).NoError(t)
	gt.Value(t, empty).Nil()

	_, err := uc.View.ChildScores(ctx, "ghost", types.MetricInherent)
	gt.Error(t, err)
}

func TestViewSequence(t *testing.T) {
	uc := newViewUseCases(t)
	ctx := context.Background()

	expanded := gt.R1(uc.View.DefaultExpansion(ctx)).NoError(t)
	gt.Value(t, expanded["l1a"]).Equal(true)
	gt.Value(t, expanded["l1b"]).Equal(true)
	gt.Value(t, expanded["l1c"]).Equal(true)

	sequence := gt.R1(uc.View.Sequence(ctx, nil, expanded, types.HierarchyLevel1)).NoError(t)
	gt.Array(t, ids(sequence)).Equal([]types.RecordID{"l1a", "l2a1", "l2a2", "l1b", "l1c"})

	collapsed := gt.R1(uc.View.Sequence(ctx, nil, nil, types.HierarchyLevel1)).NoError(t)
	gt.Array(t, ids(collapsed)).Equal([]types.RecordID{"l1a", "l1b", "l1c"})
}

func TestViewSequence_FilteredPartialExpansion(t *testing.T) {
	uc := newViewUseCases(t)
	ctx := context.Background()

	// Tab filter drops l1c; only the first root is expanded.
	filter := &model.RecordFilter{TabCategory: types.TabCategoryOwn}
	expanded := map[types.RecordID]bool{"l1a": true}

	sequence := gt.R1(uc.View.Sequence(ctx, filter, expanded, types.HierarchyLevel1)).NoError(t)
	gt.Array(t, ids(sequence)).Equal([]types.RecordID{"l1a", "l2a1", "l2a2", "l1b"})
}

func TestViewFiltered(t *testing.T) {
	uc := newViewUseCases(t)
	ctx := context.Background()

	own := gt.R1(uc.View.Filtered(ctx, &model.RecordFilter{TabCategory: types.TabCategoryOwn})).NoError(t)
	gt.Number(t, len(own)).Equal(4)

	// The clock injected at construction anchors deadline predicates.
	overdue := gt.R1(uc.View.Filtered(ctx, &model.RecordFilter{Deadline: types.DeadlineOverdue})).NoError(t)
	gt.Array(t, ids(overdue)).Equal([]types.RecordID{"l1a"})
}

func TestViewSummary(t *testing.T) {
	uc := newViewUseCases(t)
	ctx := context.Background()

	summary := gt.R1(uc.View.Summary(ctx, "")).NoError(t)
	gt.Number(t, summary.Total).Equal(5)
	gt.Number(t, summary.Overdue).Equal(1)      // l1a due 06-10
	gt.Number(t, summary.DueThisWeek).Equal(1)  // l1b due 06-20
	gt.Number(t, summary.Unscheduled).Equal(3)  // l1c unparsable + two children without dates
	gt.Number(t, summary.Status.Completed).Equal(1)
	gt.Number(t, summary.Status.InProgress).Equal(1)
	gt.Number(t, summary.Status.Overdue).Equal(1)
	gt.Number(t, summary.Status.Other).Equal(2)

	own := gt.R1(uc.View.Summary(ctx, types.TabCategoryOwn)).NoError(t)
	gt.Number(t, own.Total).Equal(4)
}

func TestViewSummary_CompletedLate(t *testing.T) {
	uc := usecase.New(memory.New(), usecase.WithClock(func() time.Time { return testNow }))
	ctx := context.Background()

	gt.R1(uc.Record.CreateRecord(ctx, &model.RiskRecord{
		ID:             "late",
		Title:          "Late Assessment",
		RiskLevel:      types.RiskLevel3,
		DueDate:        "2025-06-01",
		CompletionDate: "2025-06-05",
		Status:         types.StatusCompleted,
	})).NoError(t)

	summary := gt.R1(uc.View.Summary(ctx, "")).NoError(t)
	gt.Number(t, summary.CompletedLate).Equal(1)
}

func TestViewOverview(t *testing.T) {
	uc := newViewUseCases(t)
	ctx := context.Background()

	agg := gt.R1(uc.View.Overview(ctx, "l1a")).NoError(t)
	gt.Value(t, agg).NotNil()
	gt.Number(t, agg.DescendantCount).Equal(2)
	gt.Number(t, agg.Effectiveness.NotAssessed).Equal(2)

	empty := gt.R1(uc.View.Overview(ctx, "l1c")).NoError(t)
	gt.Value(t, empty).Nil()
}

func ids(records []*model.RiskRecord) []types.RecordID {
	out := make([]types.RecordID, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}
