package rollup_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/gyges/pkg/domain/model"
	"github.com/secmon-lab/gyges/pkg/domain/types"
	"github.com/secmon-lab/gyges/pkg/service/rollup"
)

func level1(id, title string) *model.RiskRecord {
	return &model.RiskRecord{
		ID:        types.RecordID(id),
		Title:     title,
		RiskLevel: types.RiskLevel1,
	}
}

func level2(id, parentID string, inherent, residual float64) *model.RiskRecord {
	return &model.RiskRecord{
		ID:           types.RecordID(id),
		RiskLevel:    types.RiskLevel2,
		ParentID:     types.RecordID(parentID),
		InherentRisk: model.Severity{Score: inherent},
		ResidualRisk: model.Severity{Score: residual},
	}
}

func TestChildScores(t *testing.T) {
	parent := level1("p1", "Cyber Risk")
	records := []*model.RiskRecord{
		parent,
		level2("c1", "p1", 10, 4),
		level2("c2", "p1", 20, 8),
		level2("c3", "other", 25, 25),
	}

	scores := rollup.ChildScores(parent, records, types.MetricInherent)
	gt.Value(t, scores).NotNil()
	gt.Number(t, scores.AvgScore).Equal(15)
	gt.Number(t, scores.MaxScore).Equal(20)
	gt.Number(t, scores.ChildCount).Equal(2)

	residual := rollup.ChildScores(parent, records, types.MetricResidual)
	gt.Value(t, residual).NotNil()
	gt.Number(t, residual.AvgScore).Equal(6)
	gt.Number(t, residual.MaxScore).Equal(8)
}

func TestChildScores_ExcludesUnscored(t *testing.T) {
	parent := level1("p1", "Cyber Risk")
	records := []*model.RiskRecord{
		parent,
		level2("c1", "p1", 0, 0),
		level2("c2", "p1", 12, 0),
	}

	scores := rollup.ChildScores(parent, records, types.MetricInherent)
	gt.Value(t, scores).NotNil()
	gt.Number(t, scores.AvgScore).Equal(12)
	gt.Number(t, scores.ChildCount).Equal(1)
}

func TestChildScores_NilCases(t *testing.T) {
	parent := level1("p1", "Cyber Risk")

	// No children at all.
	gt.Value(t, rollup.ChildScores(parent, []*model.RiskRecord{parent}, types.MetricInherent)).Nil()

	// Children exist but none scored.
	records := []*model.RiskRecord{parent, level2("c1", "p1", 0, 0)}
	gt.Value(t, rollup.ChildScores(parent, records, types.MetricInherent)).Nil()

	// Level 3 parents have no child level.
	leaf := &model.RiskRecord{ID: "l3", RiskLevel: types.RiskLevel3}
	gt.Value(t, rollup.ChildScores(leaf, records, types.MetricInherent)).Nil()

	gt.Value(t, rollup.ChildScores(nil, records, types.MetricInherent)).Nil()
}

func TestChildScores_DirectChildrenOnly(t *testing.T) {
	parent := level1("p1", "Cyber Risk")
	child := level2("c1", "p1", 10, 5)
	grandchild := &model.RiskRecord{
		ID:           "g1",
		RiskLevel:    types.RiskLevel3,
		ParentID:     "c1",
		InherentRisk: model.Severity{Score: 25},
	}

	scores := rollup.ChildScores(parent, []*model.RiskRecord{parent, child, grandchild}, types.MetricInherent)
	gt.Value(t, scores).NotNil()
	gt.Number(t, scores.ChildCount).Equal(1)
	gt.Number(t, scores.MaxScore).Equal(10)
}

func TestChildScores_AverageRounding(t *testing.T) {
	parent := level1("p1", "Cyber Risk")
	records := []*model.RiskRecord{
		parent,
		level2("c1", "p1", 10, 0),
		level2("c2", "p1", 11, 0),
	}

	// 10.5 rounds half away from zero.
	scores := rollup.ChildScores(parent, records, types.MetricInherent)
	gt.Value(t, scores).NotNil()
	gt.Number(t, scores.AvgScore).Equal(11)
}

func TestScoreToLevel(t *testing.T) {
	tests := []struct {
		score float64
		want  types.SeverityLevel
	}{
		{25, types.SeverityCritical},
		{16, types.SeverityCritical},
		{15, types.SeverityCritical},
		{14, types.SeverityHigh},
		{10, types.SeverityHigh},
		{9, types.SeverityMedium},
		{5, types.SeverityMedium},
		{4, types.SeverityLow},
		{1, types.SeverityLow},
		{0, types.SeverityLow},
	}

	for _, tt := range tests {
		severity := rollup.ScoreToLevel(tt.score)
		gt.Value(t, severity.Level).Equal(tt.want)
		gt.Value(t, severity.Color).Equal(tt.want.Color())
		gt.Number(t, severity.Score).Equal(tt.score)
	}
}
