package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/ecallahan/weekflow/internal/extract"
	"github.com/ecallahan/weekflow/internal/inbox"
	"github.com/ecallahan/weekflow/internal/records"
)

// Slack-style message builders. There is no live Slack integration;
// these produce the message text for the caller to paste or send
// through whatever channel they have wired up.

// InboxNotification renders a compact chat-friendly digest of the
// priority inbox: stats plus the top three P1 and P2 items.
func InboxNotification(summary inbox.Summary, now time.Time) string {
	var b strings.Builder

	stats := summary.Stats
	b.WriteString("🎯 *Priority Inbox Summary*\n")
	fmt.Fprintf(&b, "_%s_\n\n", now.Format("Monday, January 02 at 3:04 PM"))
	b.WriteString("📊 *What's On Deck:*\n")
	fmt.Fprintf(&b, "• %d total items\n", stats.Total)
	fmt.Fprintf(&b, "• %d high priority\n", stats.HighPriority)
	fmt.Fprintf(&b, "• %d need your decision\n", stats.NeedsDecision)
	fmt.Fprintf(&b, "• %d direct mentions\n\n", stats.Mentions)

	writeTier := func(label string, items []inbox.Item) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(&b, "%s\n", label)
		shown := items
		if len(shown) > 3 {
			shown = shown[:3]
		}
		for _, item := range shown {
			fmt.Fprintf(&b, "%s %s: %s\n", sourceIcon(item.Source), fromName(item.From), clipRaw(item.Subject, 50))
		}
		if len(items) > 3 {
			fmt.Fprintf(&b, "... and %d more\n", len(items)-3)
		}
		b.WriteString("\n")
	}
	writeTier("🔴 *URGENT (P1):*", summary.P1)
	writeTier("🟠 *HIGH PRIORITY (P2):*", summary.P2)

	b.WriteString("---\n")
	b.WriteString("💡 Ask for the full priority inbox to see all details")

	return b.String()
}

// DailyPlan renders the morning daily-plan message: top tasks, the
// day's schedule grouped by time of day, and the daily file name.
func DailyPlan(date time.Time, topTasks []string, schedule []records.CalendarEvent, strategicFocus, dailyFileName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📅 *Your Daily Plan - %s*\n\n*%s*\n\n---\n\n",
		date.Format("Monday"), date.Format("January 02, 2006"))

	if strategicFocus != "" {
		fmt.Fprintf(&b, "🎯 *Today's Strategic Focus*\n%s\n\n---\n\n", strategicFocus)
	}

	b.WriteString("🔥 *Top 3 Tasks Today:*\n\n")
	b.WriteString(numberedTasks(topTasks))
	b.WriteString("\n\n---\n\n")

	if len(schedule) > 0 {
		b.WriteString("📆 *Today's Schedule:*\n\n")
		blocks := []struct {
			label string
			from  int
			to    int
		}{
			{"*Morning*", 0, 12},
			{"*Afternoon*", 12, 17},
			{"*Evening*", 17, 24},
		}
		for _, block := range blocks {
			var lines []string
			for _, event := range schedule {
				hour := event.Start.Hour()
				if event.Start.IsZero() || hour < block.from || hour >= block.to {
					continue
				}
				icon := "⏰"
				if event.IsMeeting() {
					icon = "📞"
				}
				lines = append(lines, fmt.Sprintf("%s %s: %s", icon, event.Start.Format("3:04 PM"), event.Title))
			}
			if len(lines) > 0 {
				b.WriteString(block.label + "\n")
				b.WriteString(strings.Join(lines, "\n"))
				b.WriteString("\n\n")
			}
		}
		fmt.Fprintf(&b, "_Total: %d meetings_\n\n---\n\n", countMeetings(schedule))
	}

	if dailyFileName != "" {
		fmt.Fprintf(&b, "📝 *Daily file:* `%s`\n\n", dailyFileName)
	}
	b.WriteString("💪 *Let's make today count!*")

	return b.String()
}

// MondayMorning renders the week-kickoff message sent after the weekly
// files have been generated.
func MondayMorning(date time.Time, topTasks []string, meetingCount, actionCount int, summaryName, planName, dailyName string) string {
	var b strings.Builder

	b.WriteString("🌅 *Good morning! Your week is planned and ready.*\n\n")
	fmt.Fprintf(&b, "📅 *Week of %s*\n\n---\n\n", date.Format("January 02, 2006"))

	b.WriteString("📊 *Weekly Summary Generated*\n")
	fmt.Fprintf(&b, "• %d meetings from last week processed\n", meetingCount)
	fmt.Fprintf(&b, "• %d action items extracted and organized\n", actionCount)
	b.WriteString("• All commitments captured\n\n")

	b.WriteString("📋 *Week Plan Created*\nYour Top 3 priorities this week:\n\n")
	b.WriteString(numberedTasks(topTasks))
	b.WriteString("\n\n📝 *Today's File Ready*\nYour daily file is ready with calendar events and tasks.\n\n---\n\n")

	b.WriteString("*Files created:*\n")
	fmt.Fprintf(&b, "• Weekly Summary: `%s`\n", summaryName)
	fmt.Fprintf(&b, "• Week Plan: `%s`\n", planName)
	fmt.Fprintf(&b, "• Daily File: `%s`\n\n", dailyName)
	b.WriteString("💪 *Ready to make this week count!*")

	return b.String()
}

// ActionReminder renders a reminder listing open action items grouped
// by the meeting they came from.
func ActionReminder(actions []extract.ActionItem, weekly bool) string {
	var b strings.Builder

	if weekly {
		b.WriteString("📌 *Your Action Items for This Week*\n\n")
	} else {
		b.WriteString("📌 *Action Item Reminder*\n\n")
	}
	fmt.Fprintf(&b, "You have %d action item(s) to complete:\n\n", len(actions))

	byMeeting := make(map[string][]extract.ActionItem)
	var order []string
	for _, action := range actions {
		key := action.Meeting
		if key == "" {
			key = "Other"
		}
		if _, seen := byMeeting[key]; !seen {
			order = append(order, key)
		}
		byMeeting[key] = append(byMeeting[key], action)
	}
	for _, meeting := range order {
		if meeting != "Other" {
			fmt.Fprintf(&b, "*From: %s*\n", meeting)
		}
		for _, item := range byMeeting[meeting] {
			fmt.Fprintf(&b, "• %s\n", item.Task)
		}
		b.WriteString("\n")
	}

	b.WriteString("💡 *Tip:* Add these to your daily file if they're priority today!")
	return b.String()
}

// FridayReview renders the Friday afternoon weekly-review prompt.
func FridayReview(today time.Time) string {
	weekStart := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))

	var b strings.Builder
	b.WriteString("🎯 *Time for Your Weekly Review!*\n\n")
	fmt.Fprintf(&b, "📅 *Week of %s*\n\n---\n\n", weekStart.Format("January 02, 2006"))
	b.WriteString("It's Friday afternoon - time to reflect on the week and prep for next week.\n\n")
	b.WriteString("*Your 20-minute reflection ritual:*\n\n")
	b.WriteString("1️⃣ *Generate Review* (10 min)\n")
	b.WriteString("2️⃣ *Complete Sections* (5 min)\n")
	b.WriteString("   • What worked well this week?\n")
	b.WriteString("   • What was challenging?\n")
	b.WriteString("   • Key learnings\n")
	b.WriteString("3️⃣ *Update Projects* (5 min)\n")
	b.WriteString("   • Mark completed milestones\n")
	b.WriteString("   • Update project statuses\n")
	b.WriteString("   • Note any blockers\n\n---\n\n")
	b.WriteString("💭 *Remember:* Reviews create learning. Don't skip this!")
	return b.String()
}

// MeetingReminder renders a pre-meeting reminder with agenda and prep.
func MeetingReminder(event records.CalendarEvent, agenda, prep []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📞 *Upcoming: %s*\n\n", event.Title)
	if !event.Start.IsZero() {
		fmt.Fprintf(&b, "🕐 *When:* %s\n", event.Start.Format("3:04 PM"))
	}
	if len(event.Attendees) > 0 {
		fmt.Fprintf(&b, "👥 *Who:* %s\n", strings.Join(event.Attendees, ", "))
	}
	if event.MeetLink != "" {
		fmt.Fprintf(&b, "🔗 *Join:* %s\n", event.MeetLink)
	} else if event.Location != "" {
		fmt.Fprintf(&b, "📍 *Where:* %s\n", event.Location)
	}
	b.WriteString("\n")

	if len(agenda) > 0 {
		b.WriteString("*Agenda:*\n")
		for _, item := range agenda {
			fmt.Fprintf(&b, "• %s\n", item)
		}
		b.WriteString("\n")
	}
	if len(prep) > 0 {
		b.WriteString("*Prep:*\n")
		for _, item := range prep {
			fmt.Fprintf(&b, "• %s\n", item)
		}
		b.WriteString("\n")
	}

	b.WriteString("💪 *You've got this!*")
	return b.String()
}

func numberedTasks(tasks []string) string {
	if len(tasks) == 0 {
		return "_No tasks set yet - add your Top 3 to the daily file._"
	}
	lines := make([]string, 0, len(tasks))
	for i, task := range tasks {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, task))
	}
	return strings.Join(lines, "\n")
}

func countMeetings(events []records.CalendarEvent) int {
	n := 0
	for _, event := range events {
		if event.IsMeeting() {
			n++
		}
	}
	return n
}
