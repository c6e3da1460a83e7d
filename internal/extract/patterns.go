package extract

import "regexp"

// Rule is one extraction pattern. The first capture group holds the
// clause of interest; MinLen is the floor below which a capture is
// discarded, and DropQuestions discards captures ending in "?".
type Rule struct {
	Name          string
	Pattern       *regexp.Regexp
	MinLen        int
	DropQuestions bool
}

// Commitment phrasing: first-person statements of future action. The
// clause runs up to the next sentence boundary. Captures under 10
// characters or ending in "?" are treated as noise or questions.
var commitmentRules = []Rule{
	{Name: "ill", Pattern: regexp.MustCompile(`(?i)\bI'?ll\s+(.+?)(?:\.|$|\n)`), MinLen: 10, DropQuestions: true},
	{Name: "i_will", Pattern: regexp.MustCompile(`(?i)\bI will\s+(.+?)(?:\.|$|\n)`), MinLen: 10, DropQuestions: true},
	{Name: "i_can", Pattern: regexp.MustCompile(`(?i)\bI can\s+(.+?)(?:\.|$|\n)`), MinLen: 10, DropQuestions: true},
	{Name: "let_me", Pattern: regexp.MustCompile(`(?i)\bLet me\s+(.+?)(?:\.|$|\n)`), MinLen: 10, DropQuestions: true},
	{Name: "going_to", Pattern: regexp.MustCompile(`(?i)\bI'?m going to\s+(.+?)(?:\.|$|\n)`), MinLen: 10, DropQuestions: true},
	{Name: "planning_to", Pattern: regexp.MustCompile(`(?i)\bI'?m planning to\s+(.+?)(?:\.|$|\n)`), MinLen: 10, DropQuestions: true},
}

// Request phrasing: second-person asks. Questions are expected here, so
// the clause may end at "?" and question captures are kept.
var requestRules = []Rule{
	{Name: "could_can_you", Pattern: regexp.MustCompile(`(?i)\b(?:could|can)\s+you\s+(.+?)(?:\?|$|\n)`), MinLen: 10},
	{Name: "would_will_you", Pattern: regexp.MustCompile(`(?i)\b(?:would|will)\s+you\s+(.+?)(?:\?|$|\n)`), MinLen: 10},
	{Name: "please", Pattern: regexp.MustCompile(`(?i)\bplease\s+(.+?)(?:\.|$|\n)`), MinLen: 10},
}

// Decision phrasing: retrospective statements of what was agreed.
var decisionRules = []Rule{
	{Name: "decided", Pattern: regexp.MustCompile(`(?i)(?:we'?ve|we have)?\s*decided\s+(?:to\s+)?(.+?)(?:\.|$|\n)`), MinLen: 10},
	{Name: "decision_colon", Pattern: regexp.MustCompile(`(?i)decision:\s*(.+?)(?:\.|$|\n)`), MinLen: 10},
	{Name: "go_with", Pattern: regexp.MustCompile(`(?i)\bwe'?ll go with\s+(.+?)(?:\.|$|\n)`), MinLen: 10},
	{Name: "plan_is", Pattern: regexp.MustCompile(`(?i)\bthe plan is\s+(?:to\s+)?(.+?)(?:\.|$|\n)`), MinLen: 10},
	{Name: "agreed", Pattern: regexp.MustCompile(`(?i)\bwe agreed\s+(?:to\s+)?(.+?)(?:\.|$|\n)`), MinLen: 10},
}

var (
	// Markup cleaning applied to every captured span.
	markupRefRe   = regexp.MustCompile(`<[^>]+>`)
	emphasisRe    = regexp.MustCompile("[*_~`]")
	mentionRe     = regexp.MustCompile(`<@[A-Z0-9]+>`)
	checkboxRe    = regexp.MustCompile(`^\s*-\s*\[[ xX]\]\s*`)
	emojiPrefixRe = regexp.MustCompile(`^[\x{1F300}-\x{1FAFF}\x{2600}-\x{27BF}]+\s*`)
)
