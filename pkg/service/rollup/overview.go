package rollup

import (
	"github.com/secmon-lab/gyges/pkg/domain/model"
	"github.com/secmon-lab/gyges/pkg/domain/types"
)

// LevelOne computes the broad rollup for a Level 1 record over its direct
// Level 2 children and their Level 3 children. Note the asymmetry with
// ChildScores, which stops at the direct children. Returns nil when there are
// zero combined descendants.
func LevelOne(parent *model.RiskRecord, records []*model.RiskRecord) *model.LevelOneAggregation {
	if parent == nil || parent.RiskLevel != types.RiskLevel1 {
		return nil
	}

	var descendants []*model.RiskRecord
	seen := make(map[types.RecordID]bool)

	for _, record := range records {
		if record.RiskLevel != types.RiskLevel2 || record.ParentID != parent.ID {
			continue
		}
		descendants = append(descendants, record)
		seen[record.ID] = true

		for _, grandchild := range records {
			if grandchild.RiskLevel != types.RiskLevel3 || grandchild.ParentID != record.ID {
				continue
			}
			if seen[grandchild.ID] {
				continue
			}
			descendants = append(descendants, grandchild)
			seen[grandchild.ID] = true
		}
	}

	if len(descendants) == 0 {
		return nil
	}

	agg := &model.LevelOneAggregation{
		DescendantCount: len(descendants),
	}

	for _, record := range descendants {
		for _, control := range record.RelatedControls {
			agg.Controls.Total++
			if control.IsAutomated() {
				agg.Controls.Automated++
			} else {
				agg.Controls.Manual++
			}
		}

		switch record.ControlEffectiveness.Label.Normalize() {
		case types.EffectivenessEffective:
			agg.Effectiveness.Effective++
		case types.EffectivenessPartiallyEffective:
			agg.Effectiveness.PartiallyEffective++
		case types.EffectivenessIneffective:
			agg.Effectiveness.Ineffective++
		default:
			agg.Effectiveness.NotAssessed++
		}

		switch record.AssessmentProgress.Assess.Normalize() {
		case types.StageCompleted:
			agg.Progress.Completed++
		case types.StageInProgress:
			agg.Progress.InProgress++
		default:
			agg.Progress.NotStarted++
		}

		agg.Status.Add(record.Status)
	}

	return agg
}
