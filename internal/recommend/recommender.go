package recommend

import (
	"regexp"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ecallahan/weekflow/internal/extract"
	"github.com/ecallahan/weekflow/internal/records"
	"github.com/ecallahan/weekflow/internal/score"
)

// AnalyzedTask is a carry-forward task with its task-domain category,
// importance score and reason tags.
type AnalyzedTask struct {
	Task     string
	Category score.TaskCategory
	Score    int
	Reasons  []string
}

// Recommendation is one entry of the weekly top-3 shortlist.
type Recommendation struct {
	Priority int
	Title    string
	Category score.TaskCategory
	Why      string
	Actions  []string
	Source   string
	Task     string
}

// Recommender selects a bounded, justified shortlist from a set of
// carry-forward tasks. It is a pure function of its inputs.
type Recommender struct {
	engine *score.Engine
}

// New returns a Recommender backed by the given scoring engine.
func New(engine *score.Engine) *Recommender {
	return &Recommender{engine: engine}
}

var (
	actionTitleRe = regexp.MustCompile(`(?i)^(Review|Complete|Check|Update|Create|Generate|Prepare|Address|Follow up on|Document)\s+(.+?)(?:\s*-|$)`)
	keywordRe     = regexp.MustCompile(`\b\w{4,}\b`)
)

// Analyze categorizes and scores every carry-forward, returning them
// sorted by score descending. The sort is stable so input order breaks
// ties.
func (r *Recommender) Analyze(carryForwards []string) []AnalyzedTask {
	analyzed := make([]AnalyzedTask, 0, len(carryForwards))
	for _, task := range carryForwards {
		category, s := r.engine.CategorizeTask(task)
		analyzed = append(analyzed, AnalyzedTask{
			Task:     task,
			Category: category,
			Score:    s,
			Reasons:  r.engine.TaskReasons(task),
		})
	}
	sort.SliceStable(analyzed, func(i, j int) bool {
		return analyzed[i].Score > analyzed[j].Score
	})
	return analyzed
}

// TopThree builds up to three recommendations: the best task of each of
// Strategic, Stakeholder and Operational in that order, then the best
// remaining tasks overall until three are found or input is exhausted.
// Calendar events and pending decisions are accepted for future use but
// do not affect the output.
func (r *Recommender) TopThree(carryForwards []string, _ []records.CalendarEvent, _ []string) []Recommendation {
	analyzed := r.Analyze(carryForwards)

	grouped := make(map[score.TaskCategory][]AnalyzedTask)
	for _, task := range analyzed {
		grouped[task.Category] = append(grouped[task.Category], task)
	}

	sources := map[score.TaskCategory]string{
		score.Strategic:   "Carry-forward + strategic alignment",
		score.Stakeholder: "Carry-forward + stakeholder alignment",
		score.Operational: "Carry-forward + operational needs",
	}

	var recs []Recommendation
	chosen := make(map[string]bool)
	for _, category := range []score.TaskCategory{score.Strategic, score.Stakeholder, score.Operational} {
		if len(recs) == 3 {
			break
		}
		tasks := grouped[category]
		if len(tasks) == 0 {
			continue
		}
		top := tasks[0]
		recs = append(recs, r.build(top, len(recs)+1, sources[category], carryForwards))
		chosen[top.Task] = true
	}

	for _, task := range analyzed {
		if len(recs) == 3 {
			break
		}
		if chosen[task.Task] {
			continue
		}
		recs = append(recs, r.build(task, len(recs)+1, "Carry-forward", carryForwards))
		chosen[task.Task] = true
	}

	return recs
}

func (r *Recommender) build(task AnalyzedTask, priority int, source string, allTasks []string) Recommendation {
	return Recommendation{
		Priority: priority,
		Title:    CleanTitle(task.Task),
		Category: task.Category,
		Why:      whyStatement(task.Reasons),
		Actions:  relatedActions(task.Task, allTasks),
		Source:   source,
		Task:     task.Task,
	}
}

// CleanTitle produces a short display title. A task opening with a
// known action verb becomes "Verb Object" with the object truncated at
// 40 characters; anything else is cut at 50.
func CleanTitle(task string) string {
	task = extract.StripCheckbox(task)

	if m := actionTitleRe.FindStringSubmatch(task); m != nil {
		action := titleCase(m[1])
		subject := strings.TrimSpace(m[2])
		if runewidth.StringWidth(subject) > 40 {
			subject = runewidth.Truncate(subject, 40, "") + "..."
		}
		return action + " " + subject
	}

	if runewidth.StringWidth(task) > 50 {
		return runewidth.Truncate(task, 50, "") + "..."
	}
	return task
}

// whyStatement joins up to three reason tags with natural-language
// conjunctions.
func whyStatement(reasons []string) string {
	switch len(reasons) {
	case 0:
		return "Carry-forward from last week"
	case 1:
		return reasons[0]
	case 2:
		return reasons[0] + " and " + lowerFirst(reasons[1])
	default:
		return reasons[0] + ", " + lowerFirst(reasons[1]) + ", and " + lowerFirst(reasons[2])
	}
}

// relatedActions finds up to five other tasks likely related to the
// main one: sharing two or more keyword tokens of four letters or more.
// Only the first ten candidates are examined.
func relatedActions(mainTask string, allTasks []string) []string {
	mainKeywords := keywordSet(mainTask)

	var actions []string
	candidates := allTasks
	if len(candidates) > 10 {
		candidates = candidates[:10]
	}
	for _, task := range candidates {
		if shared(mainKeywords, keywordSet(task)) < 2 {
			continue
		}
		clean := extract.StripCheckbox(task)
		if clean == "" || clean == mainTask {
			continue
		}
		actions = append(actions, clean)
		if len(actions) == 5 {
			break
		}
	}
	return actions
}

func keywordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, word := range keywordRe.FindAllString(strings.ToLower(text), -1) {
		set[word] = true
	}
	return set
}

func shared(a, b map[string]bool) int {
	n := 0
	for word := range b {
		if a[word] {
			n++
		}
	}
	return n
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
