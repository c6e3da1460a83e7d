package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ecallahan/weekflow/internal/extract"
	"github.com/ecallahan/weekflow/internal/render"
	"github.com/ecallahan/weekflow/internal/workspace"
)

var (
	summaryDate  string
	summaryWrite bool
	summaryCopy  bool
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize the week's meetings and action items by owner",
	Long: `Read the week's meeting notes and produce a weekly summary: meetings
attended, action items grouped by owner, and action items by meeting.

With --write the summary is saved under weekly-summaries/ in the
workspace; otherwise it goes to stdout.`,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryDate, "date", "", "any date inside the target week (YYYY-MM-DD, default today)")
	summaryCmd.Flags().BoolVar(&summaryWrite, "write", false, "save the summary into the workspace")
	summaryCmd.Flags().BoolVar(&summaryCopy, "copy", false, "copy the output to the clipboard")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	ws := workspace.New(cfg.Workspace, logger)

	target := time.Now()
	if summaryDate != "" {
		parsed, err := time.Parse("2006-01-02", summaryDate)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
		target = parsed
	}

	weekStart := workspace.WeekStart(target)
	week := ws.ExtractWeek(weekStart)

	out := render.WeeklySummary(
		week.Meetings,
		extract.GroupActionsByOwner(week.ActionItems),
		week.WeekStart, week.WeekEnd, time.Now(),
	)

	outputPath := ""
	if summaryWrite {
		dir := filepath.Join(ws.Root(), "weekly-summaries")
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create summaries directory: %w", err)
		}
		outputPath = filepath.Join(dir, "weekly-summary-"+weekStart.Format("2006-01-02")+".md")
	}
	return emitOutput(out, outputPath, summaryCopy)
}
