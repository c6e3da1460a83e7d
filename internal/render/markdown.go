package render

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ecallahan/weekflow/internal/extract"
	"github.com/ecallahan/weekflow/internal/inbox"
	"github.com/ecallahan/weekflow/internal/recommend"
	"github.com/ecallahan/weekflow/internal/score"
)

const maxItemsPerTier = 10

// OneScreen renders the priority inbox summary as a one-screen
// markdown report: stats bar, one section per priority tier (at most
// ten items each) and a recommended-actions footer.
func OneScreen(summary inbox.Summary) string {
	var b strings.Builder

	b.WriteString("# 🎯 Priority Inbox\n")
	fmt.Fprintf(&b, "*Generated: %s*\n\n", summary.GeneratedAt.Format("2006-01-02 15:04"))

	stats := summary.Stats
	b.WriteString("## 📊 Overview\n")
	fmt.Fprintf(&b, "**%d items** | ✉️ %d emails | 💬 %d chat | 🔴 %d urgent | 🎯 %d need decision\n\n",
		stats.Total, stats.Emails, stats.ChatMessages, stats.HighPriority, stats.NeedsDecision)

	sections := []struct {
		title string
		items []inbox.Item
	}{
		{"🔴 URGENT & HIGH IMPACT - Do First", summary.P1},
		{"🟠 HIGH PRIORITY - Do Today", summary.P2},
		{"🟡 MEDIUM PRIORITY - Plan For", summary.P3},
		{"🟢 LOW PRIORITY - Review Later", summary.P4},
	}

	for _, section := range sections {
		if len(section.items) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s\n", section.title)
		fmt.Fprintf(&b, "*%d item(s)*\n\n", len(section.items))

		items := section.items
		if len(items) > maxItemsPerTier {
			items = items[:maxItemsPerTier]
		}
		for _, item := range items {
			fmt.Fprintf(&b, "- %s **%s**: %s%s\n",
				sourceIcon(item.Source), fromName(item.From), clipText(item.Subject, 40), badges(item))
			fmt.Fprintf(&b, "  _%s_ | Urgency: %s | Impact: %s\n", item.Category, item.Urgency, item.Impact)
			if item.Preview != "" {
				preview := strings.ReplaceAll(clipRaw(item.Preview, 80), "\n", " ")
				fmt.Fprintf(&b, "  `%s...`\n", preview)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("---\n")
	b.WriteString("## ✅ Recommended Actions\n")
	if len(summary.P1) > 0 {
		fmt.Fprintf(&b, "1. **🔴 Handle %d P1 item(s) immediately** - These are blocking others or time-sensitive\n", len(summary.P1))
	}
	if len(summary.P2) > 0 {
		fmt.Fprintf(&b, "2. **🟠 Schedule %d P2 item(s) for today** - Add to your daily Top 3 if needed\n", len(summary.P2))
	}
	if stats.NeedsDecision > 0 {
		fmt.Fprintf(&b, "3. **🎯 Make %d decision(s)** - Others are waiting on you\n", stats.NeedsDecision)
	}
	b.WriteString("\n💡 *Tip: Use `Mark as complete` or `Snooze` in your inbox to clear items*\n")

	return b.String()
}

// Recommendations renders the weekly top-3 shortlist as markdown with
// up to three checkbox actions each.
func Recommendations(recs []recommend.Recommendation) string {
	var b strings.Builder
	b.WriteString("### Your Top 3 Priorities This Week\n\n")
	b.WriteString("*Recommended based on carry-forwards, patterns, and urgency:*\n\n")

	for _, rec := range recs {
		fmt.Fprintf(&b, "%d. **%s** - %s %s\n", rec.Priority, rec.Title, categoryIcon(rec.Category), rec.Category)
		fmt.Fprintf(&b, "   - Why: %s\n", rec.Why)
		if len(rec.Actions) > 0 {
			b.WriteString("   - Actions:\n")
			actions := rec.Actions
			if len(actions) > 3 {
				actions = actions[:3]
			}
			for _, action := range actions {
				fmt.Fprintf(&b, "     - [ ] %s\n", action)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// WeeklySummary renders meetings and owner-grouped action items for a
// week into the weekly summary document.
func WeeklySummary(meetings []extract.MeetingMetadata, actionsByOwner map[string][]extract.ActionItem, start, end, now time.Time) string {
	var b strings.Builder

	totalActions := 0
	for _, items := range actionsByOwner {
		totalActions += len(items)
	}

	fmt.Fprintf(&b, "# Weekly Meeting Summary\n**Week of %s - %s**\n*Generated: %s*\n\n---\n\n",
		start.Format("January 02"), end.Format("January 02, 2006"), now.Format("January 02, 2006 at 3:04 PM"))

	b.WriteString("## 📊 Overview\n")
	fmt.Fprintf(&b, "- **Total Meetings:** %d\n", len(meetings))
	fmt.Fprintf(&b, "- **Action Items:** %d\n", totalActions)
	fmt.Fprintf(&b, "- **People with Actions:** %d\n\n---\n\n", len(actionsByOwner))

	b.WriteString("## 🗓️ Meetings Attended\n\n")
	for _, meeting := range meetings {
		fmt.Fprintf(&b, "### %s\n", attendeeLine(meeting.Attendees))
		if meeting.Date != "" {
			fmt.Fprintf(&b, "**Date:** %s  \n", meeting.Date)
		}
		fmt.Fprintf(&b, "**Full Title:** %s\n\n", meeting.Title)
	}

	b.WriteString("\n---\n\n## ✅ Action Items by Owner\n\n")
	for _, owner := range sortedKeys(actionsByOwner) {
		fmt.Fprintf(&b, "### %s\n\n", owner)
		byMeeting := make(map[string][]extract.ActionItem)
		var order []string
		for _, item := range actionsByOwner[owner] {
			key := strings.SplitN(item.Meeting, " - ", 2)[0]
			if _, seen := byMeeting[key]; !seen {
				order = append(order, key)
			}
			byMeeting[key] = append(byMeeting[key], item)
		}
		for _, key := range order {
			fmt.Fprintf(&b, "**From: %s**\n", key)
			for _, item := range byMeeting[key] {
				fmt.Fprintf(&b, "- [ ] %s\n", item.Task)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n---\n\n## 📋 Action Items by Meeting\n\n")
	for _, meeting := range meetings {
		var meetingActions []extract.ActionItem
		for _, owner := range sortedKeys(actionsByOwner) {
			for _, item := range actionsByOwner[owner] {
				if item.Meeting == meeting.Title {
					meetingActions = append(meetingActions, item)
				}
			}
		}
		if len(meetingActions) == 0 {
			continue
		}
		fmt.Fprintf(&b, "### %s\n", attendeeLine(meeting.Attendees))
		if meeting.Date != "" {
			fmt.Fprintf(&b, "*%s*\n\n", meeting.Date)
		}
		for _, action := range meetingActions {
			fmt.Fprintf(&b, "- **%s**: %s\n", action.Owner, action.Task)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n---\n\n## 💡 Next Steps\n\n")
	b.WriteString("1. Review and prioritize action items above\n")
	b.WriteString("2. Add high-priority items to your task management system\n")
	b.WriteString("3. Schedule time blocks for key deliverables\n")
	b.WriteString("4. Follow up with stakeholders as needed\n\n")

	return b.String()
}

func attendeeLine(attendees []string) string {
	if len(attendees) <= 3 {
		return strings.Join(attendees, " / ")
	}
	return strings.Join(attendees[:3], " / ") + fmt.Sprintf(" + %d others", len(attendees)-3)
}

func categoryIcon(category score.TaskCategory) string {
	switch category {
	case score.Strategic:
		return "🎯"
	case score.Stakeholder:
		return "🤝"
	default:
		return "🔧"
	}
}

func sourceIcon(src extract.Source) string {
	if src == extract.SourceEmail {
		return "✉️"
	}
	return "💬"
}

// fromName drops the domain part of email senders.
func fromName(from string) string {
	if i := strings.Index(from, "@"); i > 0 {
		return from[:i]
	}
	return from
}

func badges(item inbox.Item) string {
	var tags []string
	if item.Flags.DirectMessage {
		tags = append(tags, "DM")
	}
	if item.Flags.Mention {
		tags = append(tags, "@you")
	}
	if item.Flags.Attachment {
		tags = append(tags, "📎")
	}
	if item.Flags.Thread {
		tags = append(tags, "💬thread")
	}
	if len(tags) == 0 {
		return ""
	}
	return " [" + strings.Join(tags, ", ") + "]"
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
