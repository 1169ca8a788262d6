package types

import "github.com/m-mizutani/goerr/v2"

// RiskLevel represents the depth of a record in the 3-tier risk hierarchy.
// Level 1 is the most aggregate, Level 3 the most granular.
type RiskLevel string

const (
	RiskLevel1 RiskLevel = "Level 1"
	RiskLevel2 RiskLevel = "Level 2"
	RiskLevel3 RiskLevel = "Level 3"
)

// AllRiskLevels returns all valid risk levels
func AllRiskLevels() []RiskLevel {
	return []RiskLevel{
		RiskLevel1,
		RiskLevel2,
		RiskLevel3,
	}
}

// IsValid checks if the risk level is valid
func (l RiskLevel) IsValid() bool {
	switch l {
	case RiskLevel1, RiskLevel2, RiskLevel3:
		return true
	default:
		return false
	}
}

// Depth returns the numeric depth (1..3), or 0 for an invalid level
func (l RiskLevel) Depth() int {
	switch l {
	case RiskLevel1:
		return 1
	case RiskLevel2:
		return 2
	case RiskLevel3:
		return 3
	default:
		return 0
	}
}

// Parent returns the level one step up the hierarchy. Level 1 has no parent
// and returns false.
func (l RiskLevel) Parent() (RiskLevel, bool) {
	switch l {
	case RiskLevel2:
		return RiskLevel1, true
	case RiskLevel3:
		return RiskLevel2, true
	default:
		return "", false
	}
}

// Child returns the level one step down the hierarchy. Level 3 has no child
// and returns false.
func (l RiskLevel) Child() (RiskLevel, bool) {
	switch l {
	case RiskLevel1:
		return RiskLevel2, true
	case RiskLevel2:
		return RiskLevel3, true
	default:
		return "", false
	}
}

// String returns the string representation of the risk level
func (l RiskLevel) String() string {
	return string(l)
}

// ParseRiskLevel parses a string into a RiskLevel
func ParseRiskLevel(s string) (RiskLevel, error) {
	level := RiskLevel(s)
	if !level.IsValid() {
		return "", goerr.New("invalid risk level", goerr.V("level", s))
	}
	return level, nil
}
