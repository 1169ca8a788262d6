package model

import (
	"time"

	"github.com/secmon-lab/gyges/pkg/domain/types"
)

// RecordFilter narrows a record list to the subset matching the active
// dashboard view. Each field independently narrows the result; zero values
// (and DeadlineAll) impose no constraint. Predicates compose by logical AND
// and are order independent.
type RecordFilter struct {
	TabCategory  types.TabCategory
	Search       string
	RiskID       types.RecordID
	RiskLevel    types.RiskLevel
	Status       string
	Deadline     types.DeadlineBucket
	OrgLevel     string
	Assessor     string
	BusinessUnit string

	// Now anchors the deadline predicate. Zero means time.Now at evaluation.
	Now time.Time
}

// IsZero reports whether the filter imposes no constraint at all
func (f *RecordFilter) IsZero() bool {
	return f.TabCategory == "" &&
		f.Search == "" &&
		f.RiskID == "" &&
		f.RiskLevel == "" &&
		f.Status == "" &&
		(f.Deadline == "" || f.Deadline == types.DeadlineAll) &&
		f.OrgLevel == "" &&
		f.Assessor == "" &&
		f.BusinessUnit == ""
}
