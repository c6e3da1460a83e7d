package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ecallahan/weekflow/internal/extract"
	"github.com/ecallahan/weekflow/internal/inbox"
	"github.com/ecallahan/weekflow/internal/records"
)

func TestInboxNotification(t *testing.T) {
	summary := inbox.Summary{
		Stats: inbox.Stats{Total: 6, HighPriority: 4, NeedsDecision: 2, Mentions: 1},
		P1: []inbox.Item{
			{Source: extract.SourceEmail, From: "ceo@corp.com", Subject: "Rollback decision"},
			{Source: extract.SourceChatMessage, From: "alice", Subject: "prod outage"},
			{Source: extract.SourceEmail, From: "vp@corp.com", Subject: "Budget approval"},
			{Source: extract.SourceEmail, From: "dan@corp.com", Subject: "Escalation"},
		},
	}
	now := time.Date(2026, 8, 24, 15, 4, 0, 0, time.UTC)

	out := InboxNotification(summary, now)

	assert.True(t, strings.HasPrefix(out, "🎯 *Priority Inbox Summary*\n"))
	assert.Contains(t, out, "_Monday, August 24 at 3:04 PM_")
	assert.Contains(t, out, "• 6 total items\n")
	assert.Contains(t, out, "• 4 high priority\n")
	assert.Contains(t, out, "• 2 need your decision\n")
	assert.Contains(t, out, "• 1 direct mentions\n")

	assert.Contains(t, out, "🔴 *URGENT (P1):*")
	assert.Contains(t, out, "✉️ ceo: Rollback decision")
	assert.Contains(t, out, "💬 alice: prod outage")
	assert.Contains(t, out, "... and 1 more")
	// Empty tiers are dropped.
	assert.NotContains(t, out, "🟠 *HIGH PRIORITY (P2):*")
}

func TestDailyPlan(t *testing.T) {
	date := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	schedule := []records.CalendarEvent{
		{Title: "Standup", Start: records.FlexibleTime{Time: time.Date(2026, 8, 25, 9, 30, 0, 0, time.UTC)}, Attendees: []string{"Alice"}},
		{Title: "Deep work", Start: records.FlexibleTime{Time: time.Date(2026, 8, 25, 14, 0, 0, 0, time.UTC)}},
		{Title: "1:1 with Bob", Start: records.FlexibleTime{Time: time.Date(2026, 8, 25, 17, 30, 0, 0, time.UTC)}, Attendees: []string{"Bob"}},
	}

	out := DailyPlan(date, []string{"Ship the report", "Review the roadmap"}, schedule, "Platform reliability", "2026-08-25.md")

	assert.Contains(t, out, "📅 *Your Daily Plan - Tuesday*")
	assert.Contains(t, out, "🎯 *Today's Strategic Focus*\nPlatform reliability")
	assert.Contains(t, out, "1. Ship the report\n2. Review the roadmap")

	// Schedule splits into morning, afternoon and evening blocks.
	assert.Contains(t, out, "*Morning*\n📞 9:30 AM: Standup")
	assert.Contains(t, out, "*Afternoon*\n⏰ 2:00 PM: Deep work")
	assert.Contains(t, out, "*Evening*\n📞 5:30 PM: 1:1 with Bob")
	assert.Contains(t, out, "_Total: 2 meetings_")
	assert.Contains(t, out, "📝 *Daily file:* `2026-08-25.md`")
}

func TestDailyPlanNoTasks(t *testing.T) {
	out := DailyPlan(time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC), nil, nil, "", "")
	assert.Contains(t, out, "_No tasks set yet - add your Top 3 to the daily file._")
	assert.NotContains(t, out, "📆 *Today's Schedule:*")
	assert.NotContains(t, out, "*Daily file:*")
}

func TestMondayMorning(t *testing.T) {
	date := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	out := MondayMorning(date, []string{"Plan the quarter"}, 5, 12,
		"weekly-summary-2026-08-17.md", "2026-08-24-week.md", "2026-08-24.md")

	assert.Contains(t, out, "🌅 *Good morning! Your week is planned and ready.*")
	assert.Contains(t, out, "📅 *Week of August 24, 2026*")
	assert.Contains(t, out, "• 5 meetings from last week processed")
	assert.Contains(t, out, "• 12 action items extracted and organized")
	assert.Contains(t, out, "1. Plan the quarter")
	assert.Contains(t, out, "• Weekly Summary: `weekly-summary-2026-08-17.md`")
	assert.Contains(t, out, "• Week Plan: `2026-08-24-week.md`")
	assert.Contains(t, out, "• Daily File: `2026-08-24.md`")
}

func TestActionReminder(t *testing.T) {
	actions := []extract.ActionItem{
		{Owner: "Alice", Task: "Send the deck", Meeting: "Platform Review"},
		{Owner: "Alice", Task: "File the ticket", Meeting: "Platform Review"},
		{Owner: "Bob", Task: "Ping legal"},
	}

	out := ActionReminder(actions, true)
	assert.Contains(t, out, "📌 *Your Action Items for This Week*")
	assert.Contains(t, out, "You have 3 action item(s) to complete:")
	assert.Contains(t, out, "*From: Platform Review*\n• Send the deck\n• File the ticket\n")
	// Actions without a meeting land in an unlabeled group.
	assert.Contains(t, out, "• Ping legal")
	assert.NotContains(t, out, "*From: Other*")

	daily := ActionReminder(actions, false)
	assert.Contains(t, daily, "📌 *Action Item Reminder*")
}

func TestFridayReviewWeekStart(t *testing.T) {
	// Friday maps back to the Monday of the same week.
	friday := time.Date(2026, 8, 28, 16, 0, 0, 0, time.UTC)
	assert.Contains(t, FridayReview(friday), "📅 *Week of August 24, 2026*")

	// Sunday still belongs to the week that started the previous Monday.
	sunday := time.Date(2026, 8, 30, 16, 0, 0, 0, time.UTC)
	assert.Contains(t, FridayReview(sunday), "📅 *Week of August 24, 2026*")

	monday := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	assert.Contains(t, FridayReview(monday), "📅 *Week of August 24, 2026*")
}

func TestMeetingReminder(t *testing.T) {
	event := records.CalendarEvent{
		Title:     "Platform Review",
		Start:     records.FlexibleTime{Time: time.Date(2026, 8, 25, 14, 0, 0, 0, time.UTC)},
		Attendees: []string{"Alice", "Bob"},
		MeetLink:  "https://meet.example.com/abc",
		Location:  "Room 4",
	}

	out := MeetingReminder(event, []string{"Q3 metrics"}, []string{"Read the brief"})

	assert.Contains(t, out, "📞 *Upcoming: Platform Review*")
	assert.Contains(t, out, "🕐 *When:* 2:00 PM")
	assert.Contains(t, out, "👥 *Who:* Alice, Bob")
	// Meet link wins over the physical location.
	assert.Contains(t, out, "🔗 *Join:* https://meet.example.com/abc")
	assert.NotContains(t, out, "📍 *Where:*")
	assert.Contains(t, out, "*Agenda:*\n• Q3 metrics")
	assert.Contains(t, out, "*Prep:*\n• Read the brief")
}
