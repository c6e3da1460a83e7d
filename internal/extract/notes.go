package extract

import (
	"regexp"
	"strings"
	"time"
)

// MeetingOutcome holds the decisions and open action items pulled from
// one meeting note document.
type MeetingOutcome struct {
	Meeting   string
	OriginRef string
	Decisions []string
	Actions   []string
}

// ActionItem is a task assigned to a named owner in a meeting note.
type ActionItem struct {
	Owner   string
	Task    string
	Meeting string
	Date    string
}

// MeetingMetadata is what can be recovered from a meeting note title.
type MeetingMetadata struct {
	Title     string
	Date      string
	Attendees []string
}

// DecisionLog is the title and status line of a decision-log document.
type DecisionLog struct {
	Title     string
	Status    string
	OriginRef string
}

var (
	titleLineRe        = regexp.MustCompile(`(?m)^# (.+)$`)
	decisionsSectionRe = regexp.MustCompile(`(?s)## Decisions Made(.*?)(?:\n## |\z)`)
	actionsSectionRe   = regexp.MustCompile(`(?s)## Action Items(.*?)(?:\n## |\z)`)
	decisionLineRe     = regexp.MustCompile(`(?m)^(?:- )?\*\*Decision:\*\* (.+)$`)
	statusLineRe       = regexp.MustCompile(`\*\*Status:\*\* (.+)`)
	nextStepsRe        = regexp.MustCompile(`(?si)Suggested next steps(.*?)(?:\n##|\n\*\*|\z)`)
	ownerActionRe      = regexp.MustCompile(`(?m)^([A-Z][a-z]+(?: [A-Z][a-z]+)*) (?:will|to) (.+)$`)
	titleDateRe        = regexp.MustCompile(`(\d{4}/\d{2}/\d{2})`)
	attendeeSplitRe    = regexp.MustCompile(`[/,&]| and `)
	top3SectionRe      = regexp.MustCompile(`(?s)##[^\n]*Top 3 Tasks Today(.*?)(?:\n## |\z)`)
	top3TitleRe        = regexp.MustCompile(`(?m)^### \d\.\s+\*\*(.+?)\*\*`)
)

// MeetingOutcomes extracts decisions and unchecked action items from
// meeting note documents. Documents with neither are omitted.
func MeetingOutcomes(docs []Document) []MeetingOutcome {
	var outcomes []MeetingOutcome
	for _, doc := range docs {
		outcome := MeetingOutcome{
			Meeting:   DocumentTitle(doc),
			OriginRef: doc.Name,
		}
		if m := decisionsSectionRe.FindStringSubmatch(doc.Content); m != nil {
			for _, d := range decisionLineRe.FindAllStringSubmatch(m[1], -1) {
				outcome.Decisions = append(outcome.Decisions, strings.TrimSpace(d[1]))
			}
		}
		if m := actionsSectionRe.FindStringSubmatch(doc.Content); m != nil {
			for _, a := range incompleteLineRe.FindAllStringSubmatch(m[1], -1) {
				if text := cleanTaskText(a[1]); text != "" {
					outcome.Actions = append(outcome.Actions, text)
				}
			}
		}
		if len(outcome.Decisions) > 0 || len(outcome.Actions) > 0 {
			outcomes = append(outcomes, outcome)
		}
	}
	return outcomes
}

// OwnerActions extracts "Name will ..." / "Name to ..." assignments from
// the suggested-next-steps section of a meeting note.
func OwnerActions(doc Document, meta MeetingMetadata) []ActionItem {
	m := nextStepsRe.FindStringSubmatch(doc.Content)
	if m == nil {
		return nil
	}
	var actions []ActionItem
	for _, step := range ownerActionRe.FindAllStringSubmatch(m[1], -1) {
		task := strings.TrimSuffix(strings.TrimSpace(step[2]), ".")
		if task == "" {
			continue
		}
		actions = append(actions, ActionItem{
			Owner:   strings.TrimSpace(step[1]),
			Task:    task,
			Meeting: meta.Title,
			Date:    meta.Date,
		})
	}
	return actions
}

// ParseMeetingTitle recovers date and attendees from a meeting note
// title of the form "A / B - 2025/08/25 14:00 EST". Unparseable dates
// simply leave Date empty; the caller degrades gracefully.
func ParseMeetingTitle(title string) MeetingMetadata {
	meta := MeetingMetadata{Title: title}
	if m := titleDateRe.FindStringSubmatch(title); m != nil {
		if t, err := time.Parse("2006/01/02", m[1]); err == nil {
			meta.Date = t.Format("January 02, 2006")
		}
	}
	parts := strings.SplitN(title, " - ", 2)
	for _, name := range attendeeSplitRe.Split(parts[0], -1) {
		if name = strings.TrimSpace(name); name != "" {
			meta.Attendees = append(meta.Attendees, name)
		}
	}
	return meta
}

// GroupActionsByOwner buckets action items by owner name.
func GroupActionsByOwner(actions []ActionItem) map[string][]ActionItem {
	grouped := make(map[string][]ActionItem)
	for _, action := range actions {
		grouped[action.Owner] = append(grouped[action.Owner], action)
	}
	return grouped
}

// DecisionLogs extracts title and status from decision-log documents.
func DecisionLogs(docs []Document) []DecisionLog {
	var logs []DecisionLog
	for _, doc := range docs {
		status := "Unknown"
		if m := statusLineRe.FindStringSubmatch(doc.Content); m != nil {
			status = strings.TrimSpace(m[1])
		}
		logs = append(logs, DecisionLog{
			Title:     DocumentTitle(doc),
			Status:    status,
			OriginRef: doc.Name,
		})
	}
	return logs
}

// TopPriorities pulls the bolded Top 3 headings from daily documents to
// surface what was actually worked on during the week.
func TopPriorities(docs []Document) []string {
	var priorities []string
	for _, doc := range docs {
		m := top3SectionRe.FindStringSubmatch(doc.Content)
		if m == nil {
			continue
		}
		for _, p := range top3TitleRe.FindAllStringSubmatch(m[1], -1) {
			priorities = append(priorities, strings.TrimSpace(p[1]))
		}
	}
	return priorities
}

// DocumentTitle returns the first H1 heading, or the file name without
// its extension when the document has no heading.
func DocumentTitle(doc Document) string {
	if m := titleLineRe.FindStringSubmatch(doc.Content); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSuffix(doc.Name, ".md")
}
