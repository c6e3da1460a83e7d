package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ecallahan/weekflow/internal/records"
	"github.com/ecallahan/weekflow/internal/workspace"
)

var (
	dailyEventsFile string
	dailyDate       string
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Generate today's daily note with schedule and meeting stubs",
	Long: `Create work/daily/<date>.md from the daily template, fill in the schedule
and meeting references from a calendar export, and create a meeting note
stub per meeting. Existing files are never overwritten.

Examples:
  weekflow daily --events calendar.json
  weekflow daily --events calendar.json --date 2026-09-02`,
	RunE: runDaily,
}

func init() {
	dailyCmd.Flags().StringVar(&dailyEventsFile, "events", "", "path to JSON calendar export")
	dailyCmd.Flags().StringVar(&dailyDate, "date", "", "date to generate (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	ws := workspace.New(cfg.Workspace, logger)

	date := time.Now()
	if dailyDate != "" {
		parsed, err := time.Parse("2006-01-02", dailyDate)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
		date = parsed
	}

	var events []records.CalendarEvent
	if dailyEventsFile != "" {
		loaded, err := records.LoadCalendarEvents(dailyEventsFile)
		if err != nil {
			return err
		}
		for _, ev := range loaded {
			if ev.Start.IsZero() || sameDay(ev.Start.Time, date) {
				events = append(events, ev)
			}
		}
	}

	path, err := ws.GenerateDailyFile(date, events)
	if err != nil {
		return err
	}
	fmt.Printf("Daily note: %s\n", path)

	stubs, err := ws.CreateMeetingStubs(date, events)
	if err != nil {
		return err
	}
	for _, stub := range stubs {
		fmt.Printf("Meeting note: %s\n", stub)
	}
	return nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
