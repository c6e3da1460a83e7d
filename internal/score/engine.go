package score

import (
	"strings"

	"github.com/ecallahan/weekflow/internal/extract"
)

// Level is an urgency or impact bucket.
type Level string

const (
	Low    Level = "LOW"
	Medium Level = "MEDIUM"
	High   Level = "HIGH"
)

// Weight maps a level to its priority-matrix factor.
func (l Level) Weight() int {
	switch l {
	case High:
		return 3
	case Medium:
		return 2
	default:
		return 1
	}
}

// Input is the scoring view of one communication: the combined
// subject+body text plus the context signals that carry score weight.
type Input struct {
	From    string
	Subject string
	Text    string
	Source  extract.Source
	Flags   extract.Flags
}

func (in Input) combined() string {
	return strings.ToLower(in.Subject + " " + in.Text)
}

// Engine assigns urgency and impact levels from weighted keyword
// membership. It holds only immutable keyword tables, so identical
// input always yields identical scores.
type Engine struct {
	kw Keywords
}

// NewEngine builds an Engine over the given tables.
func NewEngine(kw Keywords) *Engine {
	return &Engine{kw: kw}
}

// Urgency accumulates urgency signals and buckets the total.
// Each keyword family counts at most once.
func (e *Engine) Urgency(in Input) Level {
	text := in.combined()
	score := 0

	if containsAny(text, e.kw.Urgent) {
		score += 3
	}
	if in.Source == extract.SourceChatMessage && in.Flags.DirectMessage {
		score += 2
	}
	if in.Flags.Mention {
		score += 2
	}
	if in.Source == extract.SourceEmail && containsAny(strings.ToLower(in.From), e.kw.ExecTitles) {
		score += 2
	}
	if in.Flags.Attachment {
		score++
	}
	if containsAny(text, e.kw.Decision) {
		score += 2
	}

	switch {
	case score >= 5:
		return High
	case score >= 2:
		return Medium
	default:
		return Low
	}
}

// Impact accumulates business-impact signals and buckets the total.
func (e *Engine) Impact(in Input) Level {
	text := in.combined()
	score := 0

	if containsAny(text, e.kw.HighImpact) {
		score += 3
	}
	if containsAny(text, e.kw.Strategic) {
		score += 2
	}
	if containsAny(text, e.kw.Revenue) {
		score += 2
	}
	if containsAny(text, e.kw.People) {
		score++
	}

	switch {
	case score >= 4:
		return High
	case score >= 2:
		return Medium
	default:
		return Low
	}
}

// Priority is the urgency x impact matrix. With weights 1..3 the valid
// outputs are {1,2,3,4,6,8,9}; 5 and 7 cannot occur.
func Priority(urgency, impact Level) int {
	return urgency.Weight() * impact.Weight()
}

// Score computes all three values in one pass.
func (e *Engine) Score(in Input) (urgency, impact Level, priority int) {
	urgency = e.Urgency(in)
	impact = e.Impact(in)
	return urgency, impact, Priority(urgency, impact)
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func countMatches(text string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			n++
		}
	}
	return n
}
