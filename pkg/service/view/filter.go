package view

import (
	"strings"
	"time"

	"github.com/secmon-lab/gyges/pkg/domain/model"
	"github.com/secmon-lab/gyges/pkg/domain/types"
	"github.com/secmon-lab/gyges/pkg/service/rollup"
)

// Apply narrows records to the subset matching the filter. Predicates
// compose by logical AND and are commutative; list order is preserved. The
// input list is never mutated and malformed records never raise: a record
// whose due date does not parse simply fails date-based predicates while
// still being evaluated by all others.
func Apply(records []*model.RiskRecord, filter *model.RecordFilter) []*model.RiskRecord {
	if filter == nil {
		filter = &model.RecordFilter{}
	}

	now := filter.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	matched := make([]*model.RiskRecord, 0, len(records))
	for _, record := range records {
		if Matches(record, filter, now) {
			matched = append(matched, record)
		}
	}
	return matched
}

// Matches evaluates every active predicate against one record
func Matches(record *model.RiskRecord, filter *model.RecordFilter, now time.Time) bool {
	if filter.TabCategory != "" && record.TabCategory != filter.TabCategory {
		return false
	}
	if filter.RiskID != "" && record.ID != filter.RiskID {
		return false
	}
	if filter.RiskLevel != "" && record.RiskLevel != filter.RiskLevel {
		return false
	}
	if filter.OrgLevel != "" && record.OrgLevel != filter.OrgLevel {
		return false
	}
	if filter.BusinessUnit != "" && record.BusinessUnit != filter.BusinessUnit {
		return false
	}
	if filter.Search != "" &&
		!strings.Contains(strings.ToLower(record.Title), strings.ToLower(filter.Search)) {
		return false
	}
	if filter.Status != "" &&
		record.Status.Normalize() != types.NormalizeStatus(filter.Status) {
		return false
	}
	if filter.Assessor != "" && !hasAssessor(record, filter.Assessor) {
		return false
	}
	if filter.Deadline != "" && filter.Deadline != types.DeadlineAll {
		bucket, ok := rollup.ClassifyDeadline(record.DueDate, now)
		if !ok || bucket != filter.Deadline {
			return false
		}
	}
	return true
}

func hasAssessor(record *model.RiskRecord, assessor string) bool {
	for _, a := range record.Assessors {
		if a == assessor {
			return true
		}
	}
	return false
}
