package view

import (
	"github.com/secmon-lab/gyges/pkg/domain/model"
	"github.com/secmon-lab/gyges/pkg/domain/types"
)

// VisibleSequence projects the filtered record list into the ordered
// sequence a hierarchy view renders, honoring expand/collapse state.
//
//   - level1: every Level 1 record in list order; an expanded Level 1 is
//     followed by its Level 2 children, and an expanded Level 2 by its
//     Level 3 children.
//   - level2: every Level 2 record, expanding into Level 3 children. When
//     the filtered set holds no Level 2 records at all, falls back to the
//     flat Level 3 list.
//   - level3: the flat Level 3 list, ignoring expand state.
//
// Each record appears at most once: an emitted-ID set guards against data
// where duplicated parent references could surface a child twice. Purely a
// projection; deterministic for identical inputs.
func VisibleSequence(records []*model.RiskRecord, expanded map[types.RecordID]bool, mode types.HierarchyMode) []*model.RiskRecord {
	switch mode {
	case types.HierarchyLevel3:
		return ofLevel(records, types.RiskLevel3)

	case types.HierarchyLevel2:
		if len(ofLevel(records, types.RiskLevel2)) == 0 {
			return ofLevel(records, types.RiskLevel3)
		}
		out := make([]*model.RiskRecord, 0, len(records))
		emitted := make(map[types.RecordID]bool)
		for _, record := range records {
			if record.RiskLevel != types.RiskLevel2 || emitted[record.ID] {
				continue
			}
			out = emit(out, record, emitted)
			if expanded[record.ID] {
				out = emitChildren(out, records, record, types.RiskLevel3, emitted)
			}
		}
		return out

	default: // level1
		out := make([]*model.RiskRecord, 0, len(records))
		emitted := make(map[types.RecordID]bool)
		for _, record := range records {
			if record.RiskLevel != types.RiskLevel1 || emitted[record.ID] {
				continue
			}
			out = emit(out, record, emitted)
			if !expanded[record.ID] {
				continue
			}
			for _, child := range records {
				if child.RiskLevel != types.RiskLevel2 || child.ParentID != record.ID || emitted[child.ID] {
					continue
				}
				out = emit(out, child, emitted)
				if expanded[child.ID] {
					out = emitChildren(out, records, child, types.RiskLevel3, emitted)
				}
			}
		}
		return out
	}
}

// DefaultExpansion returns the initial expand state: every Level 1 record
// expanded.
func DefaultExpansion(records []*model.RiskRecord) map[types.RecordID]bool {
	expanded := make(map[types.RecordID]bool)
	for _, record := range records {
		if record.RiskLevel == types.RiskLevel1 {
			expanded[record.ID] = true
		}
	}
	return expanded
}

// HasChildren reports whether any record in the list is a child of the
// given record. Views use this to decide on an expand affordance.
func HasChildren(records []*model.RiskRecord, parent *model.RiskRecord) bool {
	childLevel, ok := parent.RiskLevel.Child()
	if !ok {
		return false
	}
	for _, record := range records {
		if record.RiskLevel == childLevel && record.ParentID == parent.ID {
			return true
		}
	}
	return false
}

func ofLevel(records []*model.RiskRecord, level types.RiskLevel) []*model.RiskRecord {
	out := make([]*model.RiskRecord, 0, len(records))
	for _, record := range records {
		if record.RiskLevel == level {
			out = append(out, record)
		}
	}
	return out
}

func emit(out []*model.RiskRecord, record *model.RiskRecord, emitted map[types.RecordID]bool) []*model.RiskRecord {
	emitted[record.ID] = true
	return append(out, record)
}

func emitChildren(out []*model.RiskRecord, records []*model.RiskRecord, parent *model.RiskRecord, level types.RiskLevel, emitted map[types.RecordID]bool) []*model.RiskRecord {
	for _, record := range records {
		if record.RiskLevel != level || record.ParentID != parent.ID || emitted[record.ID] {
			continue
		}
		out = emit(out, record, emitted)
	}
	return out
}
