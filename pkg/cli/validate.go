package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gyges/pkg/cli/config"
	"github.com/secmon-lab/gyges/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var seedPath string

	return &cli.Command{
		Name:  "validate",
		Usage: "Validate a seed data file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "seed",
				Usage:       "Path to the TOML seed data file",
				Required:    true,
				Sources:     cli.EnvVars("GYGES_SEED"),
				Destination: &seedPath,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			records, err := config.LoadSeedFile(seedPath)
			if err != nil {
				color.Red("✗ %s", err.Error())
				return goerr.Wrap(err, "seed file validation failed")
			}

			// Orphan check: parent references without a matching title one
			// level up still render via the flat fallback, so warn only.
			titles := make(map[types.RiskLevel]map[string]bool)
			for _, record := range records {
				if titles[record.RiskLevel] == nil {
					titles[record.RiskLevel] = make(map[string]bool)
				}
				titles[record.RiskLevel][record.Title] = true
			}

			var orphans int
			for _, record := range records {
				parentLevel, ok := record.RiskLevel.Parent()
				if !ok || record.ParentRisk == "" {
					continue
				}
				if !titles[parentLevel][record.ParentRisk] {
					color.Yellow("⚠ %s: parent %q not found at %s", record.ID, record.ParentRisk, parentLevel)
					orphans++
				}
			}

			color.Green("✓ %s", seedPath)
			fmt.Printf("  %d records", len(records))
			if orphans > 0 {
				fmt.Printf(", %d orphaned parent references", orphans)
			}
			fmt.Println()
			return nil
		},
	}
}
