package model

import "github.com/secmon-lab/gyges/pkg/domain/types"

// ImportedRecord is the validated shape of one parsed risk from a bulk
// import payload. Pointer fields distinguish "absent" from "set to zero":
// absent fields retain the prior value when patching an existing record and
// receive documented defaults when creating a new one.
type ImportedRecord struct {
	ID types.RecordID

	Title        *string
	RiskLevel    *types.RiskLevel
	ParentRisk   *string
	BusinessUnit *string
	Category     *string
	Owner        *string
	OrgLevel     *string
	Assessors    []string

	DueDate        *string
	LastAssessed   *string
	CompletionDate *string

	InherentRisk *Severity
	ResidualRisk *Severity

	RelatedControls []Control

	Status      *types.WorkflowStatus
	TabCategory *types.TabCategory
}

// ApplyTo patches an existing record in place: imported fields win, omitted
// fields retain the prior value.
func (i *ImportedRecord) ApplyTo(r *RiskRecord) {
	if i.Title != nil {
		r.Title = *i.Title
	}
	if i.RiskLevel != nil {
		r.RiskLevel = *i.RiskLevel
	}
	if i.ParentRisk != nil {
		r.ParentRisk = *i.ParentRisk
	}
	if i.BusinessUnit != nil {
		r.BusinessUnit = *i.BusinessUnit
	}
	if i.Category != nil {
		r.Category = *i.Category
	}
	if i.Owner != nil {
		r.Owner = *i.Owner
	}
	if i.OrgLevel != nil {
		r.OrgLevel = *i.OrgLevel
	}
	if i.Assessors != nil {
		r.Assessors = append([]string(nil), i.Assessors...)
	}
	if i.DueDate != nil {
		r.DueDate = *i.DueDate
	}
	if i.LastAssessed != nil {
		r.LastAssessed = *i.LastAssessed
	}
	if i.CompletionDate != nil {
		r.CompletionDate = *i.CompletionDate
	}
	if i.InherentRisk != nil {
		r.InherentRisk = *i.InherentRisk
	}
	if i.ResidualRisk != nil {
		r.ResidualRisk = *i.ResidualRisk
	}
	if i.RelatedControls != nil {
		r.RelatedControls = append([]Control(nil), i.RelatedControls...)
	}
	if i.Status != nil {
		r.Status = *i.Status
	}
	if i.TabCategory != nil {
		r.TabCategory = *i.TabCategory
	}
}

// NewRecord materializes a full record from the import, applying defaults
// for every omitted field.
func (i *ImportedRecord) NewRecord() *RiskRecord {
	r := &RiskRecord{
		ID:                 i.ID,
		RiskLevel:          types.RiskLevel3,
		Owner:              "Unassigned",
		AssessmentProgress: NewAssessmentProgress(),
		Status:             types.StatusSentForAssessment,
		TabCategory:        types.TabCategoryAssess,
		ControlEffectiveness: ControlEffectiveness{
			Label: types.EffectivenessNotAssessed,
		},
	}
	if r.ID == "" {
		r.ID = types.NewRecordID()
	}
	i.ApplyTo(r)
	return r
}
