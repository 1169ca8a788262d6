package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/gyges/pkg/cli/config"
	"github.com/secmon-lab/gyges/pkg/domain/types"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadSeedFile(t *testing.T) {
	path := writeSeedFile(t, `
[[record]]
id = "RSK-001"
title = "Cyber Risk"
level = "Level 1"
tab = "own"
due_date = "2025-09-30"
status = "In Progress"

[[record]]
id = "RSK-002"
title = "Phishing"
level = "Level 2"
parent = "Cyber Risk"
owner = "alice"
assessors = ["alice", "bob"]
effectiveness = "Effective"

[record.inherent]
level = "High"
score = 12

[[record.control]]
name = "Mail filtering"
type = "Automated"
key = "Key"
`)

	records := gt.R1(config.LoadSeedFile(path)).NoError(t)
	gt.Number(t, len(records)).Equal(2)

	first := records[0]
	gt.Value(t, first.ID).Equal(types.RecordID("RSK-001"))
	gt.Value(t, first.RiskLevel).Equal(types.RiskLevel1)
	gt.Value(t, first.TabCategory).Equal(types.TabCategoryOwn)
	gt.Value(t, first.Status).Equal(types.StatusInProgress)
	gt.Value(t, first.Owner).Equal("Unassigned") // default

	second := records[1]
	gt.Value(t, second.ParentRisk).Equal("Cyber Risk")
	gt.Value(t, second.Owner).Equal("alice")
	gt.Value(t, second.Status).Equal(types.StatusSentForAssessment) // default
	gt.Value(t, second.InherentRisk.Level).Equal(types.SeverityHigh)
	gt.Number(t, second.InherentRisk.Score).Equal(float64(12))
	gt.Value(t, second.ControlEffectiveness.Label).Equal(types.EffectivenessEffective)
	gt.Number(t, len(second.RelatedControls)).Equal(1)
	gt.Value(t, second.RelatedControls[0].IsAutomated()).Equal(true)
}

func TestLoadSeedFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"missing id",
			"[[record]]\ntitle = \"Cyber Risk\"\nlevel = \"Level 1\"\n",
		},
		{
			"missing title",
			"[[record]]\nid = \"RSK-001\"\nlevel = \"Level 1\"\n",
		},
		{
			"bad level",
			"[[record]]\nid = \"RSK-001\"\ntitle = \"Cyber Risk\"\nlevel = \"Level 9\"\n",
		},
		{
			"bad tab",
			"[[record]]\nid = \"RSK-001\"\ntitle = \"Cyber Risk\"\nlevel = \"Level 1\"\ntab = \"bogus\"\n",
		},
		{
			"score out of range",
			"[[record]]\nid = \"RSK-001\"\ntitle = \"Cyber Risk\"\nlevel = \"Level 1\"\n\n[record.inherent]\nscore = 26.0\n",
		},
		{
			"duplicate id",
			"[[record]]\nid = \"RSK-001\"\ntitle = \"A\"\nlevel = \"Level 1\"\n\n[[record]]\nid = \"RSK-001\"\ntitle = \"B\"\nlevel = \"Level 1\"\n",
		},
		{
			"not toml",
			"{\"records\": []}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSeedFile(t, tt.content)
			_, err := config.LoadSeedFile(path)
			gt.Error(t, err)
		})
	}
}

func TestLoadSeedFile_MissingFile(t *testing.T) {
	_, err := config.LoadSeedFile(filepath.Join(t.TempDir(), "nope.toml"))
	gt.Error(t, err)
}

func TestSeed_LoadFallsBackToSample(t *testing.T) {
	var seed config.Seed

	records := gt.R1(seed.Load()).NoError(t)
	if len(records) == 0 {
		t.Fatal("expected built-in sample records")
	}

	seen := make(map[types.RecordID]bool)
	var hasLevel1 bool
	for _, record := range records {
		if seen[record.ID] {
			t.Errorf("duplicate sample record id %s", record.ID)
		}
		seen[record.ID] = true
		if record.RiskLevel == types.RiskLevel1 {
			hasLevel1 = true
		}
	}
	if !hasLevel1 {
		t.Error("sample data should contain at least one Level 1 record")
	}
}
