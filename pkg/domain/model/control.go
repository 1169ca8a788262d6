package model

import (
	"strings"

	"github.com/secmon-lab/gyges/pkg/domain/types"
)

// Control is a mitigating mechanism linked to a risk record
type Control struct {
	ID                     string
	Name                   string
	Type                   string
	Nature                 string
	KeyControl             types.ControlKey
	DesignEffectiveness    types.EffectivenessLabel
	OperatingEffectiveness types.EffectivenessLabel
	TestingStatus          string
}

// IsAutomated reports whether the control type denotes an automated control.
// Anything else counts as manual in the control-count rollups.
func (c Control) IsAutomated() bool {
	return strings.EqualFold(c.Type, "Automated")
}
