package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/gyges/pkg/domain/model"
	"github.com/secmon-lab/gyges/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Seed holds CLI flags for the seed data file. Without a path the built-in
// sample data set is used.
type Seed struct {
	path string
}

// Flags returns CLI flags for seed configuration
func (s *Seed) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "seed",
			Usage:       "Path to a TOML seed data file (built-in sample data when omitted)",
			Sources:     cli.EnvVars("GYGES_SEED"),
			Destination: &s.path,
		},
	}
}

// Path returns the configured seed file path
func (s *Seed) Path() string {
	return s.path
}

// SeedFile is the TOML shape of a seed data file
type SeedFile struct {
	Records []SeedRecord `toml:"record"`
}

// SeedRecord is one record entry in a seed data file
type SeedRecord struct {
	ID           string   `toml:"id"`
	Title        string   `toml:"title"`
	Level        string   `toml:"level"`
	Parent       string   `toml:"parent"`
	BusinessUnit string   `toml:"business_unit"`
	Category     string   `toml:"category"`
	Owner        string   `toml:"owner"`
	OrgLevel     string   `toml:"org_level"`
	Assessors    []string `toml:"assessors"`

	DueDate        string `toml:"due_date"`
	LastAssessed   string `toml:"last_assessed"`
	CompletionDate string `toml:"completion_date"`

	Status string `toml:"status"`
	Tab    string `toml:"tab"`

	Inherent SeedSeverity  `toml:"inherent"`
	Residual SeedSeverity  `toml:"residual"`
	Controls []SeedControl `toml:"control"`

	Effectiveness string `toml:"effectiveness"`
	AssessStage   string `toml:"assess_stage"`
}

// SeedSeverity is a severity entry in a seed data file
type SeedSeverity struct {
	Level string  `toml:"level"`
	Score float64 `toml:"score"`
}

// SeedControl is a control entry in a seed data file
type SeedControl struct {
	ID     string `toml:"id"`
	Name   string `toml:"name"`
	Type   string `toml:"type"`
	Nature string `toml:"nature"`
	Key    string `toml:"key"`
}

// Validate checks if the seed record is valid
func (r *SeedRecord) Validate() error {
	if r.ID == "" {
		return goerr.New("record id is required", goerr.V("title", r.Title))
	}
	if r.Title == "" {
		return goerr.New("record title is required", goerr.V("id", r.ID))
	}
	if _, err := types.ParseRiskLevel(r.Level); err != nil {
		return goerr.Wrap(err, "invalid record level", goerr.V("id", r.ID))
	}
	if r.Tab != "" {
		if _, err := types.ParseTabCategory(r.Tab); err != nil {
			return goerr.Wrap(err, "invalid record tab", goerr.V("id", r.ID))
		}
	}
	for _, severity := range []SeedSeverity{r.Inherent, r.Residual} {
		if severity.Score < 0 || severity.Score > 25 {
			return goerr.New("severity score must be within 0-25",
				goerr.V("id", r.ID), goerr.V("score", severity.Score))
		}
		if severity.Level != "" {
			if _, err := types.ParseSeverityLevel(severity.Level); err != nil {
				return goerr.Wrap(err, "invalid severity level", goerr.V("id", r.ID))
			}
		}
	}
	return nil
}

func (r *SeedRecord) toModel() *model.RiskRecord {
	record := &model.RiskRecord{
		ID:             types.RecordID(r.ID),
		Title:          r.Title,
		RiskLevel:      types.RiskLevel(r.Level),
		ParentRisk:     r.Parent,
		BusinessUnit:   r.BusinessUnit,
		Category:       r.Category,
		Owner:          r.Owner,
		OrgLevel:       r.OrgLevel,
		Assessors:      r.Assessors,
		DueDate:        r.DueDate,
		LastAssessed:   r.LastAssessed,
		CompletionDate: r.CompletionDate,

		AssessmentProgress: model.NewAssessmentProgress(),
		Status:             types.WorkflowStatus(r.Status),
		TabCategory:        types.TabCategory(r.Tab),
	}
	if record.Owner == "" {
		record.Owner = "Unassigned"
	}
	if record.Status == "" {
		record.Status = types.StatusSentForAssessment
	}
	if record.TabCategory == "" {
		record.TabCategory = types.TabCategoryOwn
	}
	if r.AssessStage != "" {
		record.AssessmentProgress.Assess = types.StageStatus(r.AssessStage)
	}

	record.InherentRisk = r.Inherent.toModel()
	record.ResidualRisk = r.Residual.toModel()

	label := types.EffectivenessLabel(r.Effectiveness).Normalize()
	record.ControlEffectiveness = model.ControlEffectiveness{Label: label}

	for _, c := range r.Controls {
		record.RelatedControls = append(record.RelatedControls, model.Control{
			ID:         c.ID,
			Name:       c.Name,
			Type:       c.Type,
			Nature:     c.Nature,
			KeyControl: types.ControlKey(c.Key),
		})
	}

	return record
}

func (s SeedSeverity) toModel() model.Severity {
	level := types.SeverityLevel(s.Level)
	if !level.IsValid() {
		level = types.SeverityLow
	}
	return model.Severity{
		Level: level,
		Color: level.Color(),
		Score: s.Score,
	}
}

// Load reads and validates the seed file, falling back to the built-in
// sample data set when no path is configured.
func (s *Seed) Load() ([]*model.RiskRecord, error) {
	if s.path == "" {
		return sampleRecords(), nil
	}
	return LoadSeedFile(s.path)
}

// LoadSeedFile reads and validates a TOML seed data file
func LoadSeedFile(path string) ([]*model.RiskRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read seed file", goerr.V("path", path))
	}

	var file SeedFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse seed file", goerr.V("path", path))
	}

	seen := make(map[string]bool)
	records := make([]*model.RiskRecord, 0, len(file.Records))
	for _, entry := range file.Records {
		if err := entry.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid seed record")
		}
		if seen[entry.ID] {
			return nil, goerr.New("duplicate record id in seed file", goerr.V("id", entry.ID))
		}
		seen[entry.ID] = true
		records = append(records, entry.toModel())
	}

	return records, nil
}
