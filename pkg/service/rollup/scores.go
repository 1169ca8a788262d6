package rollup

import (
	"math"

	"github.com/secmon-lab/gyges/pkg/domain/model"
	"github.com/secmon-lab/gyges/pkg/domain/types"
)

// score reads the selected severity score from a record. Zero means unscored.
func score(record *model.RiskRecord, metric types.ScoreMetric) float64 {
	if metric == types.MetricResidual {
		return record.ResidualRisk.Score
	}
	return record.InherentRisk.Score
}

// ChildScores aggregates severity scores over the parent's direct children
// (one level down the hierarchy; Level 2 for a Level 1 parent). Children
// without a positive score are excluded from the rollup, not treated as
// zero. Returns nil when no qualifying children exist; callers omit the
// aggregation panel in that case.
//
// Unlike LevelOne this deliberately does not recurse to Level 3.
func ChildScores(parent *model.RiskRecord, records []*model.RiskRecord, metric types.ScoreMetric) *model.ChildScoreSummary {
	if parent == nil {
		return nil
	}
	childLevel, ok := parent.RiskLevel.Child()
	if !ok {
		return nil
	}

	var sum, max float64
	var count int
	for _, record := range records {
		if record.RiskLevel != childLevel || record.ParentID != parent.ID {
			continue
		}
		s := score(record, metric)
		if s <= 0 {
			continue
		}
		sum += s
		if s > max {
			max = s
		}
		count++
	}

	if count == 0 {
		return nil
	}

	return &model.ChildScoreSummary{
		AvgScore:   int(math.Round(sum / float64(count))),
		MaxScore:   max,
		ChildCount: count,
	}
}

// ScoreToLevel maps a 1-25 severity score to its categorical label. Bands
// are inclusive on the lower bound: >=15 Critical, >=10 High, >=5 Medium,
// else Low.
func ScoreToLevel(score float64) model.Severity {
	var level types.SeverityLevel
	switch {
	case score >= 15:
		level = types.SeverityCritical
	case score >= 10:
		level = types.SeverityHigh
	case score >= 5:
		level = types.SeverityMedium
	default:
		level = types.SeverityLow
	}

	return model.Severity{
		Level: level,
		Color: level.Color(),
		Score: score,
	}
}
