package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gyges/pkg/cli/config"
	"github.com/secmon-lab/gyges/pkg/domain/types"
	"github.com/secmon-lab/gyges/pkg/repository/memory"
	"github.com/secmon-lab/gyges/pkg/service/rollup"
	"github.com/secmon-lab/gyges/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func severityPrinter(level types.SeverityLevel) *color.Color {
	switch level.Color() {
	case "red":
		return color.New(color.FgRed, color.Bold)
	case "yellow":
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

func cmdSummary() *cli.Command {
	var seedCfg config.Seed
	var tab string

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "tab",
			Usage:       "Restrict to one tab category (own, assess, approve)",
			Destination: &tab,
		},
	}
	flags = append(flags, seedCfg.Flags()...)

	return &cli.Command{
		Name:  "summary",
		Usage: "Print dashboard rollups for a seed data set",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			var tabCategory types.TabCategory
			if tab != "" && tab != "all" {
				parsed, err := types.ParseTabCategory(tab)
				if err != nil {
					return err
				}
				tabCategory = parsed
			}

			records, err := seedCfg.Load()
			if err != nil {
				return goerr.Wrap(err, "failed to load seed data")
			}

			repo := memory.New()
			for _, record := range records {
				if _, err := repo.Record().Create(ctx, record); err != nil {
					return goerr.Wrap(err, "failed to seed record", goerr.V("id", record.ID))
				}
			}

			uc := usecase.New(repo)
			summary, err := uc.View.Summary(ctx, tabCategory)
			if err != nil {
				return err
			}

			bold := color.New(color.Bold)
			bold.Printf("Records: %d\n", summary.Total)
			color.Red("  overdue        %d", summary.Overdue)
			color.Yellow("  due this week  %d", summary.DueThisWeek)
			fmt.Printf("  due this month %d\n", summary.DueThisMonth)
			fmt.Printf("  future         %d\n", summary.Future)
			if summary.Unscheduled > 0 {
				fmt.Printf("  unscheduled    %d\n", summary.Unscheduled)
			}
			fmt.Printf("  completed %d / in progress %d / pending approval %d / other %d\n",
				summary.Status.Completed, summary.Status.InProgress,
				summary.Status.PendingApproval, summary.Status.Other)
			if summary.CompletedLate > 0 {
				color.Red("  completed late %d", summary.CompletedLate)
			}

			all, err := uc.Record.ListRecords(ctx)
			if err != nil {
				return err
			}

			bold.Println("\nLevel 1 rollups:")
			for _, record := range all {
				if record.RiskLevel != types.RiskLevel1 {
					continue
				}
				fmt.Printf("  %s  %s\n", record.ID, record.Title)

				if scores := rollup.ChildScores(record, all, types.MetricInherent); scores != nil {
					severity := rollup.ScoreToLevel(float64(scores.AvgScore))
					severityPrinter(severity.Level).Printf("    inherent avg %d (%s), max %.0f over %d children\n",
						scores.AvgScore, severity.Level, scores.MaxScore, scores.ChildCount)
				}
				if agg := rollup.LevelOne(record, all); agg != nil {
					fmt.Printf("    %d descendants, %d controls (%d automated, %d manual)\n",
						agg.DescendantCount, agg.Controls.Total, agg.Controls.Automated, agg.Controls.Manual)
					fmt.Printf("    effectiveness: %d effective / %d partial / %d ineffective / %d not assessed\n",
						agg.Effectiveness.Effective, agg.Effectiveness.PartiallyEffective,
						agg.Effectiveness.Ineffective, agg.Effectiveness.NotAssessed)
				}
			}

			return nil
		},
	}
}
