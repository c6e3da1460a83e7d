package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ecallahan/weekflow/internal/recommend"
	"github.com/ecallahan/weekflow/internal/records"
	"github.com/ecallahan/weekflow/internal/render"
	"github.com/ecallahan/weekflow/internal/workspace"
)

var (
	notifyEventsFile string
	notifyCopy       bool
)

var notifyCmd = &cobra.Command{
	Use:   "notify <daily|monday|actions|friday>",
	Short: "Render a chat-ready message for a workflow moment",
	Long: `Render one of the canned chat messages. There is no live chat
integration; the output is meant to be pasted or piped into whatever
channel you have.

  daily    morning plan: top tasks plus today's schedule
  monday   week-kickoff message after generating the weekly files
  actions  open action items grouped by meeting
  friday   Friday review prompt with this week's file names`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"daily", "monday", "actions", "friday"},
	RunE:      runNotify,
}

func init() {
	notifyCmd.Flags().StringVar(&notifyEventsFile, "events", "", "path to JSON calendar export (daily)")
	notifyCmd.Flags().BoolVar(&notifyCopy, "copy", false, "copy the output to the clipboard")
	rootCmd.AddCommand(notifyCmd)
}

func runNotify(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	ws := workspace.New(cfg.Workspace, logger)
	now := time.Now()
	weekStart := workspace.WeekStart(now)

	var out string
	switch args[0] {
	case "daily":
		var schedule []records.CalendarEvent
		if notifyEventsFile != "" {
			events, err := records.LoadCalendarEvents(notifyEventsFile)
			if err != nil {
				return err
			}
			schedule = events
		}
		week := ws.ExtractWeek(weekStart)
		tasks := week.UnfinishedTasks
		if len(tasks) > 3 {
			tasks = tasks[:3]
		}
		out = render.DailyPlan(now, tasks, schedule, "", now.Format("2006-01-02")+".md")

	case "monday":
		lastWeek := ws.ExtractWeek(weekStart.AddDate(0, 0, -7))
		rec := recommend.New(newEngine(cfg))
		var tasks []string
		for _, r := range rec.TopThree(lastWeek.UnfinishedTasks, nil, nil) {
			tasks = append(tasks, r.Title)
		}
		out = render.MondayMorning(weekStart, tasks,
			lastWeek.MeetingCount, len(lastWeek.ActionItems),
			"weekly-summary-"+weekStart.AddDate(0, 0, -7).Format("2006-01-02")+".md",
			weekStart.Format("2006-01-02")+"-week.md",
			now.Format("2006-01-02")+".md")

	case "actions":
		week := ws.ExtractWeek(weekStart)
		out = render.ActionReminder(week.ActionItems, false)

	case "friday":
		out = render.FridayReview(now)

	default:
		return fmt.Errorf("unknown notification type %q", args[0])
	}

	return emitOutput(out, "", notifyCopy)
}
