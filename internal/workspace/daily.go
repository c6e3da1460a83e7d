package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ecallahan/weekflow/internal/records"
)

const dailyTemplate = `# Daily Note - {date}

## Today's Focus
- [ ]

## Schedule

## Meetings Today

## Inbox Processing
- [ ] Process email inbox
- [ ] Process chat messages

## Notes & Ideas

## Tomorrow's Prep
- [ ]
`

const meetingStub = `# {title}

**Date:** {date}
**Time:** {time}
**Attendees:** {attendees}

## Pre-Meeting Prep
- [ ] Review agenda
- [ ] Gather relevant context

## Agenda

## Notes

## Key Decisions

## Action Items
- [ ]

## Follow-up
`

var (
	scheduleSectionRe = regexp.MustCompile(`(?s)(## Schedule\n)(.*?)(\n## Meetings Today|\n## Inbox Processing|\z)`)
	meetingsSectionRe = regexp.MustCompile(`(?s)(## Meetings Today\n)(.*?)(\n## Inbox Processing|\n## Notes & Ideas|\z)`)
	slugStripRe       = regexp.MustCompile(`[^\w\s-]`)
	slugSpaceRe       = regexp.MustCompile(`[\s_]+`)
)

// GenerateDailyFile writes work/daily/<date>.md from the daily
// template, filling in the schedule and meeting-note references for
// the day's calendar events. An existing file is left untouched.
func (w *Workspace) GenerateDailyFile(date time.Time, events []records.CalendarEvent) (string, error) {
	dateStr := date.Format("2006-01-02")
	path := filepath.Join(w.dailyDir(), dateStr+".md")
	if fileExists(path) {
		w.log.Info("daily file already exists", zap.String("path", path))
		return path, nil
	}
	if err := os.MkdirAll(w.dailyDir(), 0755); err != nil {
		return "", fmt.Errorf("failed to create daily directory: %w", err)
	}

	content := w.readTemplate("daily.md", dailyTemplate)
	content = strings.ReplaceAll(content, "{date}", dateStr)
	content = fillSection(content, scheduleSectionRe, scheduleSection(events))
	content = fillSection(content, meetingsSectionRe, meetingsSection(date, events))

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write daily file: %w", err)
	}
	w.log.Info("generated daily file", zap.String("path", path), zap.Int("events", len(events)))
	return path, nil
}

// CreateMeetingStubs writes a work/meetings note per meeting event so
// the daily file's references resolve. Existing stubs are kept.
func (w *Workspace) CreateMeetingStubs(date time.Time, events []records.CalendarEvent) ([]string, error) {
	if err := os.MkdirAll(w.meetingsDir(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create meetings directory: %w", err)
	}
	dateStr := date.Format("2006-01-02")
	var created []string
	for _, ev := range events {
		if !ev.IsMeeting() {
			continue
		}
		path := filepath.Join(w.meetingsDir(), fmt.Sprintf("%s-%s.md", dateStr, meetingSlug(ev.Title)))
		if fileExists(path) {
			continue
		}
		content := strings.NewReplacer(
			"{title}", ev.Title,
			"{date}", date.Format("January 2, 2006"),
			"{time}", eventTimeRange(ev),
			"{attendees}", strings.Join(ev.Attendees, ", "),
		).Replace(meetingStub)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return created, fmt.Errorf("failed to write meeting stub: %w", err)
		}
		created = append(created, path)
	}
	return created, nil
}

// fillSection replaces the body of a template section, keeping the
// heading and whatever section follows.
func fillSection(content string, re *regexp.Regexp, body string) string {
	return re.ReplaceAllString(content, "${1}"+body+"\n${3}")
}

// scheduleSection renders the day's events split into morning and
// afternoon blocks, keeping placeholders when a block is empty.
func scheduleSection(events []records.CalendarEvent) string {
	var morning, afternoon []string
	for _, ev := range events {
		if ev.AllDay {
			continue
		}
		line := fmt.Sprintf("- %s - %s", ev.Start.Format("3:04 PM"), ev.Title)
		if ev.Start.Hour() < 12 {
			morning = append(morning, line)
		} else {
			afternoon = append(afternoon, line)
		}
	}
	if len(morning) == 0 {
		morning = []string{"- No morning meetings"}
	}
	if len(afternoon) == 0 {
		afternoon = []string{"- No afternoon meetings"}
	}
	var b strings.Builder
	b.WriteString("**Morning:**\n")
	b.WriteString(strings.Join(morning, "\n"))
	b.WriteString("\n\n**Afternoon:**\n")
	b.WriteString(strings.Join(afternoon, "\n"))
	return b.String()
}

// meetingsSection lists meeting-note references for the day so each
// event links to its stub file.
func meetingsSection(date time.Time, events []records.CalendarEvent) string {
	dateStr := date.Format("2006-01-02")
	var lines []string
	for _, ev := range events {
		if !ev.IsMeeting() {
			continue
		}
		lines = append(lines, fmt.Sprintf("- [ ] %s - @meetings/%s-%s.md", ev.Title, dateStr, meetingSlug(ev.Title)))
	}
	if len(lines) == 0 {
		return "- No meetings scheduled"
	}
	return strings.Join(lines, "\n")
}

// meetingSlug makes a filesystem-safe slug from a meeting title,
// capped at 50 characters.
func meetingSlug(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugStripRe.ReplaceAllString(slug, "")
	slug = slugSpaceRe.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > 50 {
		slug = strings.Trim(slug[:50], "-")
	}
	if slug == "" {
		slug = "meeting"
	}
	return slug
}

func eventTimeRange(ev records.CalendarEvent) string {
	if ev.AllDay {
		return "All day"
	}
	return ev.Start.Format("3:04 PM") + " - " + ev.End.Format("3:04 PM")
}
