package model

import (
	"time"

	"github.com/secmon-lab/gyges/pkg/domain/types"
)

// Severity is a categorical risk rating with an optional numeric score.
// Score 0 means unscored; scored records carry 1-25.
type Severity struct {
	Level types.SeverityLevel
	Color string
	Score float64
}

// Trend is a directional indicator versus the prior assessment
type Trend struct {
	Value string
	Up    bool
}

// AssessmentProgress tracks the three independent assessment stages
type AssessmentProgress struct {
	Assess          types.StageStatus
	ReviewChallenge types.StageStatus
	Approve         types.StageStatus
}

// NewAssessmentProgress returns progress with all stages not started
func NewAssessmentProgress() AssessmentProgress {
	return AssessmentProgress{
		Assess:          types.StageNotStarted,
		ReviewChallenge: types.StageNotStarted,
		Approve:         types.StageNotStarted,
	}
}

// ControlEffectiveness is the record-level effectiveness rollup, independent
// of individual control ratings
type ControlEffectiveness struct {
	Label types.EffectivenessLabel
	Color string
}

// HistoricalAssessment is a snapshot of a prior assessment cycle
type HistoricalAssessment struct {
	Date                 string
	Assessor             string
	InherentRisk         Severity
	ResidualRisk         Severity
	ControlEffectiveness ControlEffectiveness
	Status               types.WorkflowStatus
	Notes                string
}

// RiskRecord is the central entity of the assessment engine.
//
// ParentRisk holds the legacy title-based join key as imported; ParentID is
// the explicit foreign key resolved once at creation/import time by scanning
// records one level up for a title match (first match wins). Runtime
// consumers use ParentID only.
type RiskRecord struct {
	ID         types.RecordID
	Title      string
	RiskLevel  types.RiskLevel
	ParentRisk string
	ParentID   types.RecordID

	BusinessUnit string
	Category     string
	Owner        string
	OrgLevel     string
	Assessors    []string

	DueDate        string
	LastAssessed   string
	CompletionDate string

	AssessmentProgress AssessmentProgress

	InherentRisk  Severity
	ResidualRisk  Severity
	InherentTrend Trend
	ResidualTrend Trend

	RelatedControls      []Control
	ControlEffectiveness ControlEffectiveness

	Status      types.WorkflowStatus
	TabCategory types.TabCategory

	PreviousAssessments   int
	HistoricalAssessments []HistoricalAssessment

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy of the record
func (r *RiskRecord) Clone() *RiskRecord {
	copied := *r

	if r.Assessors != nil {
		copied.Assessors = make([]string, len(r.Assessors))
		copy(copied.Assessors, r.Assessors)
	}
	if r.RelatedControls != nil {
		copied.RelatedControls = make([]Control, len(r.RelatedControls))
		copy(copied.RelatedControls, r.RelatedControls)
	}
	if r.HistoricalAssessments != nil {
		copied.HistoricalAssessments = make([]HistoricalAssessment, len(r.HistoricalAssessments))
		copy(copied.HistoricalAssessments, r.HistoricalAssessments)
	}

	return &copied
}

// Snapshot captures the current assessment state as a historical entry
func (r *RiskRecord) Snapshot(date string) HistoricalAssessment {
	assessor := ""
	if len(r.Assessors) > 0 {
		assessor = r.Assessors[0]
	}
	return HistoricalAssessment{
		Date:                 date,
		Assessor:             assessor,
		InherentRisk:         r.InherentRisk,
		ResidualRisk:         r.ResidualRisk,
		ControlEffectiveness: r.ControlEffectiveness,
		Status:               r.Status,
	}
}
