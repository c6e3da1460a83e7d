package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ecallahan/weekflow/internal/recommend"
	"github.com/ecallahan/weekflow/internal/workspace"
)

var weekDate string

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Generate this week's plan from last week's notes",
	Long: `Extract last week's completed and unfinished tasks, meeting outcomes and
decision logs, then write work/weeks/<monday>-week.md: carry-forwards, a
recommended top 3, a retrospective and a reflection scaffold.`,
	RunE: runWeek,
}

func init() {
	weekCmd.Flags().StringVar(&weekDate, "date", "", "any date inside the target week (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(weekCmd)
}

func runWeek(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	ws := workspace.New(cfg.Workspace, logger)

	target := time.Now()
	if weekDate != "" {
		parsed, err := time.Parse("2006-01-02", weekDate)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
		target = parsed
	}

	weekStart := workspace.WeekStart(target)
	lastWeek := ws.ExtractWeek(weekStart.AddDate(0, 0, -7))
	logger.Info("extracted last week",
		zap.Int("completed", len(lastWeek.CompletedTasks)),
		zap.Int("carry_forwards", len(lastWeek.UnfinishedTasks)),
		zap.Int("meetings", lastWeek.MeetingCount))

	rec := recommend.New(newEngine(cfg))
	path, err := ws.GenerateWeekPlan(weekStart, lastWeek, rec)
	if err != nil {
		return err
	}
	fmt.Printf("Week plan: %s\n", path)
	return nil
}
