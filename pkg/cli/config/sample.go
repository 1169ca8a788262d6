package config

import (
	"time"

	"github.com/secmon-lab/gyges/pkg/domain/model"
	"github.com/secmon-lab/gyges/pkg/domain/types"
)

func severity(level types.SeverityLevel, score float64) model.Severity {
	return model.Severity{Level: level, Color: level.Color(), Score: score}
}

func day(offset int) string {
	return time.Now().AddDate(0, 0, offset).Format("2006-01-02")
}

// sampleRecords is the built-in static data set used when no seed file is
// configured. Due dates are generated relative to the current day so every
// deadline bucket is populated.
func sampleRecords() []*model.RiskRecord {
	return []*model.RiskRecord{
		{
			ID: "RSK-001", Title: "Third Party Risk", RiskLevel: types.RiskLevel1,
			BusinessUnit: "Group", Category: "Operational", Owner: "J. Mason", OrgLevel: "Group",
			Assessors: []string{"A. Chen"}, DueDate: day(21), LastAssessed: day(-90),
			AssessmentProgress: model.NewAssessmentProgress(),
			InherentRisk:       severity(types.SeverityHigh, 12),
			ResidualRisk:       severity(types.SeverityMedium, 8),
			InherentTrend:      model.Trend{Value: "+2", Up: true},
			ControlEffectiveness: model.ControlEffectiveness{
				Label: types.EffectivenessPartiallyEffective, Color: "yellow",
			},
			Status: types.StatusInProgress, TabCategory: types.TabCategoryOwn,
		},
		{
			ID: "RSK-002", Title: "Vendor Concentration", RiskLevel: types.RiskLevel2,
			ParentRisk: "Third Party Risk", BusinessUnit: "Procurement", Category: "Operational",
			Owner: "J. Mason", OrgLevel: "Division", Assessors: []string{"A. Chen", "R. Patel"},
			DueDate:            day(-7),
			AssessmentProgress: model.AssessmentProgress{Assess: types.StageInProgress, ReviewChallenge: types.StageNotStarted, Approve: types.StageNotStarted},
			InherentRisk:       severity(types.SeverityCritical, 20),
			ResidualRisk:       severity(types.SeverityHigh, 12),
			RelatedControls: []model.Control{
				{ID: "CTL-001", Name: "Vendor due diligence review", Type: "Manual", Nature: "Preventive", KeyControl: types.ControlKeyKey},
				{ID: "CTL-002", Name: "Concentration threshold alert", Type: "Automated", Nature: "Detective", KeyControl: types.ControlKeyNonKey},
			},
			ControlEffectiveness: model.ControlEffectiveness{Label: types.EffectivenessIneffective, Color: "red"},
			Status:               types.StatusOverdue, TabCategory: types.TabCategoryAssess,
		},
		{
			ID: "RSK-003", Title: "Outsourced IT Services", RiskLevel: types.RiskLevel2,
			ParentRisk: "Third Party Risk", BusinessUnit: "Technology", Category: "Operational",
			Owner: "K. Okafor", OrgLevel: "Division", Assessors: []string{"R. Patel"},
			DueDate:            day(3),
			AssessmentProgress: model.AssessmentProgress{Assess: types.StageCompleted, ReviewChallenge: types.StageInProgress, Approve: types.StageNotStarted},
			InherentRisk:       severity(types.SeverityHigh, 10),
			ResidualRisk:       severity(types.SeverityMedium, 6),
			RelatedControls: []model.Control{
				{ID: "CTL-003", Name: "SLA monitoring dashboard", Type: "Automated", Nature: "Detective", KeyControl: types.ControlKeyKey},
			},
			ControlEffectiveness: model.ControlEffectiveness{Label: types.EffectivenessEffective, Color: "green"},
			Status:               types.StatusReviewChallenge, TabCategory: types.TabCategoryAssess,
		},
		{
			ID: "RSK-004", Title: "Cloud Hosting Outage", RiskLevel: types.RiskLevel3,
			ParentRisk: "Outsourced IT Services", BusinessUnit: "Technology", Category: "Operational",
			Owner: "K. Okafor", OrgLevel: "Desk", Assessors: []string{"R. Patel"},
			DueDate:            day(15),
			AssessmentProgress: model.NewAssessmentProgress(),
			InherentRisk:       severity(types.SeverityMedium, 9),
			ResidualRisk:       severity(types.SeverityLow, 4),
			ControlEffectiveness: model.ControlEffectiveness{
				Label: types.EffectivenessNotAssessed, Color: "gray",
			},
			Status: types.StatusSentForAssessment, TabCategory: types.TabCategoryAssess,
		},
		{
			ID: "RSK-005", Title: "Regulatory Reporting", RiskLevel: types.RiskLevel1,
			BusinessUnit: "Finance", Category: "Compliance", Owner: "S. Lindqvist", OrgLevel: "Group",
			Assessors: []string{"M. Torres"}, DueDate: day(45), LastAssessed: day(-30),
			AssessmentProgress: model.AssessmentProgress{Assess: types.StageCompleted, ReviewChallenge: types.StageCompleted, Approve: types.StageCompleted},
			InherentRisk:       severity(types.SeverityMedium, 8),
			ResidualRisk:       severity(types.SeverityLow, 3),
			CompletionDate:     day(-2),
			ControlEffectiveness: model.ControlEffectiveness{
				Label: types.EffectivenessEffective, Color: "green",
			},
			Status: types.StatusCompleted, TabCategory: types.TabCategoryApprove,
			PreviousAssessments: 2,
		},
		{
			ID: "RSK-006", Title: "Transaction Reporting Accuracy", RiskLevel: types.RiskLevel2,
			ParentRisk: "Regulatory Reporting", BusinessUnit: "Finance", Category: "Compliance",
			Owner: "S. Lindqvist", OrgLevel: "Division", Assessors: []string{"M. Torres"},
			DueDate:            day(30),
			AssessmentProgress: model.AssessmentProgress{Assess: types.StageInProgress, ReviewChallenge: types.StageNotStarted, Approve: types.StageNotStarted},
			InherentRisk:       severity(types.SeverityHigh, 15),
			ResidualRisk:       severity(types.SeverityMedium, 7),
			RelatedControls: []model.Control{
				{ID: "CTL-004", Name: "Daily reconciliation", Type: "Automated", Nature: "Detective", KeyControl: types.ControlKeyKey},
				{ID: "CTL-005", Name: "Four-eyes report sign-off", Type: "Manual", Nature: "Preventive", KeyControl: types.ControlKeyKey},
			},
			ControlEffectiveness: model.ControlEffectiveness{Label: types.EffectivenessPartiallyEffective, Color: "yellow"},
			Status:               types.StatusPendingApproval, TabCategory: types.TabCategoryApprove,
		},
	}
}
