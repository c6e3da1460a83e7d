package score

import (
	"strings"

	"github.com/ecallahan/weekflow/internal/extract"
)

// InboxCategory classifies a communication by the kind of attention it
// needs.
type InboxCategory string

const (
	DecisionRequired InboxCategory = "Decision Required"
	MeetingRelated   InboxCategory = "Meeting-Related"
	ActiveThread     InboxCategory = "Active Thread"
	ReviewRequired   InboxCategory = "Review Required"
	DirectMention    InboxCategory = "Direct Mention"
	InfoFYI          InboxCategory = "Info/FYI"
)

// TaskCategory classifies a task for weekly planning.
type TaskCategory string

const (
	Strategic   TaskCategory = "Strategic"
	Stakeholder TaskCategory = "Stakeholder"
	Operational TaskCategory = "Operational"
)

// InboxCategory assigns the first matching category in a fixed check
// order; earlier checks always win.
func (e *Engine) InboxCategory(in Input) InboxCategory {
	text := in.combined()
	switch {
	case containsAny(text, e.kw.Decision):
		return DecisionRequired
	case containsAny(text, e.kw.Meeting):
		return MeetingRelated
	case in.Source == extract.SourceChatMessage && in.Flags.Thread:
		return ActiveThread
	case in.Flags.Attachment:
		return ReviewRequired
	case in.Flags.Mention:
		return DirectMention
	default:
		return InfoFYI
	}
}

// CategorizeTask assigns a task-domain category and a 1-10 importance
// score. The category is the keyword set with the most hits, ties
// resolved Strategic > Stakeholder > Operational. The category's base
// score (8/7/6) is raised by urgency and impact boosts and capped at 10.
func (e *Engine) CategorizeTask(task string) (TaskCategory, int) {
	lower := strings.ToLower(task)

	// Most specific signal wins within each boost axis.
	urgencyBoost := 0
	if containsAny(lower, e.kw.TaskUrgent) {
		urgencyBoost = 3
	}
	if containsAny(lower, e.kw.TaskThisWeek) {
		urgencyBoost = 2
	}
	impactBoost := 0
	if containsAny(lower, e.kw.TaskDecision) {
		impactBoost = 2
	}
	if containsAny(lower, e.kw.TaskTeam) {
		impactBoost = 1
	}

	strategic := countMatches(lower, e.kw.TaskStrategic)
	stakeholder := countMatches(lower, e.kw.TaskStakeholder)
	operational := countMatches(lower, e.kw.TaskOperational)

	var category TaskCategory
	var base int
	switch {
	case strategic >= stakeholder && strategic >= operational:
		category, base = Strategic, 8
	case stakeholder >= operational:
		category, base = Stakeholder, 7
	default:
		category, base = Operational, 6
	}

	total := base + urgencyBoost + impactBoost
	if total > 10 {
		total = 10
	}
	return category, total
}

// TaskReasons returns the human-readable tags explaining why a task
// scored the way it did. An empty result means the only reason is that
// the task carried forward.
func (e *Engine) TaskReasons(task string) []string {
	lower := strings.ToLower(task)
	var reasons []string

	if strings.Contains(lower, "urgent") || strings.Contains(lower, "asap") {
		reasons = append(reasons, "Marked as urgent")
	}
	if strings.Contains(lower, "blocked") || strings.Contains(lower, "waiting") {
		reasons = append(reasons, "Blocking others")
	}
	if strings.Contains(lower, "approval") || strings.Contains(lower, "decision") {
		reasons = append(reasons, "Decision required")
	}
	if strings.Contains(lower, "team") || strings.Contains(lower, "leadership") {
		reasons = append(reasons, "Team impact")
	}
	if containsAny(lower, e.kw.StakeholderNames) {
		reasons = append(reasons, "Key stakeholder")
	}
	if strings.Contains(lower, "2026") || strings.Contains(lower, "planning") {
		reasons = append(reasons, "Strategic planning")
	}
	if strings.Contains(lower, "craft") || strings.Contains(lower, "improvement") {
		reasons = append(reasons, "Craft advancement")
	}
	return reasons
}
