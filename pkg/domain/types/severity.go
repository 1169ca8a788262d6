package types

import "github.com/m-mizutani/goerr/v2"

// SeverityLevel represents the categorical severity of a risk
type SeverityLevel string

const (
	SeverityCritical SeverityLevel = "Critical"
	SeverityHigh     SeverityLevel = "High"
	SeverityMedium   SeverityLevel = "Medium"
	SeverityLow      SeverityLevel = "Low"
)

// AllSeverityLevels returns all valid severity levels, highest first
func AllSeverityLevels() []SeverityLevel {
	return []SeverityLevel{
		SeverityCritical,
		SeverityHigh,
		SeverityMedium,
		SeverityLow,
	}
}

// IsValid checks if the severity level is valid
func (l SeverityLevel) IsValid() bool {
	switch l {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	default:
		return false
	}
}

// Color returns the display color associated with the severity level
func (l SeverityLevel) Color() string {
	switch l {
	case SeverityCritical, SeverityHigh:
		return "red"
	case SeverityMedium:
		return "yellow"
	default:
		return "green"
	}
}

// String returns the string representation of the severity level
func (l SeverityLevel) String() string {
	return string(l)
}

// ParseSeverityLevel parses a string into a SeverityLevel
func ParseSeverityLevel(s string) (SeverityLevel, error) {
	level := SeverityLevel(s)
	if !level.IsValid() {
		return "", goerr.New("invalid severity level", goerr.V("level", s))
	}
	return level, nil
}

// EffectivenessLabel represents the control effectiveness rating
type EffectivenessLabel string

const (
	EffectivenessEffective          EffectivenessLabel = "Effective"
	EffectivenessPartiallyEffective EffectivenessLabel = "Partially Effective"
	EffectivenessIneffective        EffectivenessLabel = "Ineffective"
	EffectivenessNotAssessed        EffectivenessLabel = "Not Assessed"
)

// AllEffectivenessLabels returns all valid effectiveness labels
func AllEffectivenessLabels() []EffectivenessLabel {
	return []EffectivenessLabel{
		EffectivenessEffective,
		EffectivenessPartiallyEffective,
		EffectivenessIneffective,
		EffectivenessNotAssessed,
	}
}

// IsValid checks if the effectiveness label is valid
func (l EffectivenessLabel) IsValid() bool {
	switch l {
	case EffectivenessEffective,
		EffectivenessPartiallyEffective,
		EffectivenessIneffective,
		EffectivenessNotAssessed:
		return true
	default:
		return false
	}
}

// Normalize returns the label, treating empty/unset as Not Assessed
func (l EffectivenessLabel) Normalize() EffectivenessLabel {
	if !l.IsValid() {
		return EffectivenessNotAssessed
	}
	return l
}

// String returns the string representation of the effectiveness label
func (l EffectivenessLabel) String() string {
	return string(l)
}

// ControlKey marks whether a control is a key control
type ControlKey string

const (
	ControlKeyKey    ControlKey = "Key"
	ControlKeyNonKey ControlKey = "Non-Key"
)

// IsValid checks if the control key designation is valid
func (k ControlKey) IsValid() bool {
	return k == ControlKeyKey || k == ControlKeyNonKey
}

// String returns the string representation of the control key designation
func (k ControlKey) String() string {
	return string(k)
}
