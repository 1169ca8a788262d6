package types

import "github.com/m-mizutani/goerr/v2"

// HierarchyMode selects which hierarchy view the visible sequence is built
// for: Level 1 roots with nested children, Level 2 roots with nested Level 3,
// or a flat Level 3 list.
type HierarchyMode string

const (
	HierarchyLevel1 HierarchyMode = "level1"
	HierarchyLevel2 HierarchyMode = "level2"
	HierarchyLevel3 HierarchyMode = "level3"
)

// IsValid checks if the hierarchy mode is valid
func (m HierarchyMode) IsValid() bool {
	switch m {
	case HierarchyLevel1, HierarchyLevel2, HierarchyLevel3:
		return true
	default:
		return false
	}
}

// String returns the string representation of the hierarchy mode
func (m HierarchyMode) String() string {
	return string(m)
}

// ParseHierarchyMode parses a string into a HierarchyMode. Empty input means
// the default Level 1 view.
func ParseHierarchyMode(s string) (HierarchyMode, error) {
	if s == "" {
		return HierarchyLevel1, nil
	}
	mode := HierarchyMode(s)
	if !mode.IsValid() {
		return "", goerr.New("invalid hierarchy mode", goerr.V("mode", s))
	}
	return mode, nil
}

// ScoreMetric selects which severity score an aggregation reads
type ScoreMetric string

const (
	MetricInherent ScoreMetric = "inherent"
	MetricResidual ScoreMetric = "residual"
)

// IsValid checks if the score metric is valid
func (m ScoreMetric) IsValid() bool {
	return m == MetricInherent || m == MetricResidual
}

// String returns the string representation of the score metric
func (m ScoreMetric) String() string {
	return string(m)
}

// ParseScoreMetric parses a string into a ScoreMetric. Empty input means
// the inherent metric.
func ParseScoreMetric(s string) (ScoreMetric, error) {
	if s == "" {
		return MetricInherent, nil
	}
	metric := ScoreMetric(s)
	if !metric.IsValid() {
		return "", goerr.New("invalid score metric", goerr.V("metric", s))
	}
	return metric, nil
}
