package rollup_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/gyges/pkg/domain/model"
	"github.com/secmon-lab/gyges/pkg/domain/types"
	"github.com/secmon-lab/gyges/pkg/service/rollup"
)

func TestLevelOne(t *testing.T) {
	parent := level1("p1", "Operational Risk")

	childA := level2("c1", "p1", 10, 5)
	childA.RelatedControls = []model.Control{
		{Name: "Access review", Type: "Automated"},
		{Name: "Manual signoff", Type: "Manual"},
	}
	childA.ControlEffectiveness = model.ControlEffectiveness{Label: types.EffectivenessEffective}
	childA.AssessmentProgress.Assess = types.StageCompleted
	childA.Status = types.StatusCompleted

	childB := level2("c2", "p1", 8, 4)
	childB.ControlEffectiveness = model.ControlEffectiveness{Label: types.EffectivenessIneffective}
	childB.AssessmentProgress.Assess = types.StageInProgress
	childB.Status = types.StatusInProgress

	grandchild := &model.RiskRecord{
		ID:        "g1",
		RiskLevel: types.RiskLevel3,
		ParentID:  "c1",
		RelatedControls: []model.Control{
			{Name: "Log monitoring", Type: "Automated"},
		},
		Status: types.StatusReviewChallenge,
	}

	// A Level 3 under a different tree must not leak in.
	stray := &model.RiskRecord{ID: "g2", RiskLevel: types.RiskLevel3, ParentID: "elsewhere"}

	records := []*model.RiskRecord{parent, childA, childB, grandchild, stray}

	agg := rollup.LevelOne(parent, records)
	gt.Value(t, agg).NotNil()
	gt.Number(t, agg.DescendantCount).Equal(3)

	gt.Number(t, agg.Controls.Total).Equal(3)
	gt.Number(t, agg.Controls.Automated).Equal(2)
	gt.Number(t, agg.Controls.Manual).Equal(1)

	gt.Number(t, agg.Effectiveness.Effective).Equal(1)
	gt.Number(t, agg.Effectiveness.Ineffective).Equal(1)
	gt.Number(t, agg.Effectiveness.NotAssessed).Equal(1) // grandchild has no label

	gt.Number(t, agg.Progress.Completed).Equal(1)
	gt.Number(t, agg.Progress.InProgress).Equal(1)
	gt.Number(t, agg.Progress.NotStarted).Equal(1)

	gt.Number(t, agg.Status.Completed).Equal(1)
	gt.Number(t, agg.Status.InProgress).Equal(1)
	gt.Number(t, agg.Status.Other).Equal(1) // review-challenge
}

func TestLevelOne_NilCases(t *testing.T) {
	parent := level1("p1", "Operational Risk")

	// No descendants.
	gt.Value(t, rollup.LevelOne(parent, []*model.RiskRecord{parent})).Nil()

	// Only works for Level 1 records.
	mid := level2("c1", "p1", 0, 0)
	gt.Value(t, rollup.LevelOne(mid, []*model.RiskRecord{parent, mid})).Nil()

	gt.Value(t, rollup.LevelOne(nil, nil)).Nil()
}

func TestLevelOne_OrphanedGrandchildrenExcluded(t *testing.T) {
	parent := level1("p1", "Operational Risk")
	// Level 3 pointing directly at a Level 1 parent is outside the
	// two-level flatten.
	leaf := &model.RiskRecord{ID: "g1", RiskLevel: types.RiskLevel3, ParentID: "p1"}

	gt.Value(t, rollup.LevelOne(parent, []*model.RiskRecord{parent, leaf})).Nil()
}
