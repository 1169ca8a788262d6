package importer

import (
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gyges/pkg/domain/model"
	"github.com/secmon-lab/gyges/pkg/domain/types"
)

// Decode converts the loosely-typed parsed-risk payloads from a document
// import into validated ImportedRecords. All string-to-structured parsing
// happens here at the boundary (bracket stripping, comma splitting, numeric
// coercion); the merge logic downstream only sees typed fields. Individual
// malformed fields are dropped, not fatal; only a structurally broken
// payload returns an error.
func Decode(payloads []map[string]any) ([]*model.ImportedRecord, error) {
	records := make([]*model.ImportedRecord, 0, len(payloads))
	for i, payload := range payloads {
		if payload == nil {
			return nil, goerr.New("parsed risk payload is not an object", goerr.V("index", i))
		}
		records = append(records, decodeOne(payload))
	}
	return records, nil
}

func decodeOne(payload map[string]any) *model.ImportedRecord {
	record := &model.ImportedRecord{}

	if id, ok := stringField(payload, "id"); ok {
		record.ID = types.RecordID(id)
	}
	record.Title = optString(payload, "title")
	record.ParentRisk = optString(payload, "parentRisk")
	record.BusinessUnit = optString(payload, "businessUnit")
	record.Category = optString(payload, "category")
	record.Owner = optString(payload, "owner")
	record.OrgLevel = optString(payload, "orgLevel")
	record.DueDate = optString(payload, "dueDate")
	record.LastAssessed = optString(payload, "lastAssessed")
	record.CompletionDate = optString(payload, "completionDate")

	if s, ok := stringField(payload, "riskLevel"); ok {
		if level, err := types.ParseRiskLevel(s); err == nil {
			record.RiskLevel = &level
		}
	}
	if s, ok := stringField(payload, "status"); ok {
		status := types.WorkflowStatus(s)
		record.Status = &status
	}
	if s, ok := stringField(payload, "tabCategory"); ok {
		if category, err := types.ParseTabCategory(s); err == nil {
			record.TabCategory = &category
		}
	}

	record.Assessors = decodeAssessors(payload["assessors"])
	record.InherentRisk = decodeSeverity(payload["inherentRisk"])
	record.ResidualRisk = decodeSeverity(payload["residualRisk"])
	record.RelatedControls = decodeControls(payload["relatedControls"])

	return record
}

// decodeSeverity accepts either a display-formatted descriptor such as
// "[High, 12]" / "Medium" or a structured object {level, score}.
func decodeSeverity(v any) *model.Severity {
	switch value := v.(type) {
	case string:
		trimmed := strings.Trim(strings.TrimSpace(value), "[]")
		if trimmed == "" {
			return nil
		}
		parts := strings.Split(trimmed, ",")

		level, err := types.ParseSeverityLevel(canonicalLabel(parts[0]))
		if err != nil {
			return nil
		}
		severity := &model.Severity{Level: level, Color: level.Color()}
		if len(parts) > 1 {
			if score, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err == nil {
				severity.Score = score
			}
		}
		return severity

	case map[string]any:
		s, ok := stringField(value, "level")
		if !ok {
			return nil
		}
		level, err := types.ParseSeverityLevel(canonicalLabel(s))
		if err != nil {
			return nil
		}
		severity := &model.Severity{Level: level, Color: level.Color()}
		if score, ok := numberField(value, "score"); ok {
			severity.Score = score
		}
		return severity

	default:
		return nil
	}
}

// decodeAssessors accepts a list of names or a single comma-separated string
func decodeAssessors(v any) []string {
	switch value := v.(type) {
	case []any:
		assessors := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				assessors = append(assessors, strings.TrimSpace(s))
			}
		}
		if len(assessors) == 0 {
			return nil
		}
		return assessors

	case string:
		var assessors []string
		for _, part := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				assessors = append(assessors, trimmed)
			}
		}
		return assessors

	default:
		return nil
	}
}

func decodeControls(v any) []model.Control {
	items, ok := v.([]any)
	if !ok {
		return nil
	}

	var controls []model.Control
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		control := model.Control{}
		if s, ok := stringField(obj, "id"); ok {
			control.ID = s
		}
		if s, ok := stringField(obj, "name"); ok {
			control.Name = s
		}
		if s, ok := stringField(obj, "type"); ok {
			control.Type = s
		}
		if s, ok := stringField(obj, "nature"); ok {
			control.Nature = s
		}
		if s, ok := stringField(obj, "keyControl"); ok {
			control.KeyControl = types.ControlKey(s)
		}
		if s, ok := stringField(obj, "designEffectiveness"); ok {
			control.DesignEffectiveness = types.EffectivenessLabel(s)
		}
		if s, ok := stringField(obj, "operatingEffectiveness"); ok {
			control.OperatingEffectiveness = types.EffectivenessLabel(s)
		}
		if s, ok := stringField(obj, "testingStatus"); ok {
			control.TestingStatus = s
		}
		controls = append(controls, control)
	}
	return controls
}

// canonicalLabel title-cases a severity label so "high" and "HIGH" both
// resolve to the bounded vocabulary.
func canonicalLabel(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return trimmed
	}
	lower := strings.ToLower(trimmed)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

func stringField(obj map[string]any, key string) (string, bool) {
	v, exists := obj[key]
	if !exists {
		return "", false
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return strings.TrimSpace(s), true
}

func numberField(obj map[string]any, key string) (float64, bool) {
	switch value := obj[key].(type) {
	case float64:
		return value, true
	case int:
		return float64(value), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

func optString(obj map[string]any, key string) *string {
	if s, ok := stringField(obj, key); ok {
		return &s
	}
	return nil
}
