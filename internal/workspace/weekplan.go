package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ecallahan/weekflow/internal/recommend"
)

// GenerateWeekPlan writes work/weeks/<monday>-week.md for the week
// starting at weekStart, seeded from the previous week's extraction: a
// Monday setup section carrying forward what last week left open, a
// retrospective of what actually happened, and a reflection scaffold.
// An existing plan is left untouched.
func (w *Workspace) GenerateWeekPlan(weekStart time.Time, lastWeek WeekData, rec *recommend.Recommender) (string, error) {
	path := filepath.Join(w.weeksDir(), weekStart.Format("2006-01-02")+"-week.md")
	if fileExists(path) {
		w.log.Info("week plan already exists", zap.String("path", path))
		return path, nil
	}
	if err := os.MkdirAll(w.weeksDir(), 0755); err != nil {
		return "", fmt.Errorf("failed to create weeks directory: %w", err)
	}

	content := weekPlanContent(weekStart, lastWeek, rec)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write week plan: %w", err)
	}
	w.log.Info("generated week plan", zap.String("path", path),
		zap.Int("carry_forwards", len(lastWeek.UnfinishedTasks)))
	return path, nil
}

func weekPlanContent(weekStart time.Time, lastWeek WeekData, rec *recommend.Recommender) string {
	_, weekNum := weekStart.ISOWeek()
	weekEnd := weekStart.AddDate(0, 0, 6)

	var b strings.Builder
	fmt.Fprintf(&b, "# Week %d: %s - %s\n\n", weekNum,
		weekStart.Format("January 2"), weekEnd.Format("January 2, 2006"))

	writeMondaySetup(&b, lastWeek, rec)
	writeWhatHappened(&b, lastWeek)

	b.WriteString("## Reflection\n\n")
	b.WriteString("**What gave me energy this week?**\n\n")
	b.WriteString("**What drained me?**\n\n")
	b.WriteString("**One thing to do differently next week:**\n")

	return b.String()
}

// writeMondaySetup renders the carry-forward and recommendation
// sections that seed Monday planning.
func writeMondaySetup(b *strings.Builder, lastWeek WeekData, rec *recommend.Recommender) {
	b.WriteString("## Monday Setup\n\n")

	b.WriteString("### Carried Forward From Last Week\n")
	if len(lastWeek.UnfinishedTasks) == 0 {
		b.WriteString("- Nothing carried forward. Clean slate.\n")
	}
	for i, task := range lastWeek.UnfinishedTasks {
		if i == 10 {
			fmt.Fprintf(b, "- ... and %d more unfinished tasks\n", len(lastWeek.UnfinishedTasks)-10)
			break
		}
		fmt.Fprintf(b, "- [ ] %s\n", task)
	}
	b.WriteString("\n")

	if len(lastWeek.ActionItems) > 0 {
		b.WriteString("### Open Meeting Actions\n")
		for i, action := range lastWeek.ActionItems {
			if i == 5 {
				break
			}
			fmt.Fprintf(b, "- [ ] **%s:** %s (%s)\n", action.Owner, action.Task, action.Meeting)
		}
		b.WriteString("\n")
	}

	if rec != nil {
		recs := rec.TopThree(lastWeek.UnfinishedTasks, nil, nil)
		if len(recs) > 0 {
			b.WriteString("### Recommended Top 3 This Week\n")
			for _, r := range recs {
				fmt.Fprintf(b, "%d. **%s** (%s)\n   - Why: %s\n", r.Priority, r.Title, r.Category, r.Why)
			}
			b.WriteString("\n")
		}
	}
}

// writeWhatHappened renders last week's retrospective sections.
func writeWhatHappened(b *strings.Builder, lastWeek WeekData) {
	b.WriteString("## What Actually Happened Last Week\n\n")

	fmt.Fprintf(b, "### Completed (%d)\n", len(lastWeek.CompletedTasks))
	if len(lastWeek.CompletedTasks) == 0 {
		b.WriteString("- No completed checklist items found.\n")
	}
	for i, task := range lastWeek.CompletedTasks {
		if i == 15 {
			fmt.Fprintf(b, "- ... and %d more\n", len(lastWeek.CompletedTasks)-15)
			break
		}
		fmt.Fprintf(b, "- [x] %s\n", task)
	}
	b.WriteString("\n")

	if len(lastWeek.DecisionLogs) > 0 {
		b.WriteString("### Decisions Logged\n")
		for _, log := range lastWeek.DecisionLogs {
			fmt.Fprintf(b, "- %s (Status: %s)\n", log.Title, log.Status)
		}
		b.WriteString("\n")
	}

	if len(lastWeek.MeetingOutcomes) > 0 {
		b.WriteString("### Meetings That Mattered\n")
		for _, outcome := range lastWeek.MeetingOutcomes {
			fmt.Fprintf(b, "- **%s**: %d decisions, %d open actions\n",
				outcome.Meeting, len(outcome.Decisions), len(outcome.Actions))
		}
		b.WriteString("\n")
	}

	b.WriteString("### Time Reality Check\n")
	fmt.Fprintf(b, "- Meetings attended: %d\n", lastWeek.MeetingCount)
	fmt.Fprintf(b, "- Tasks completed: %d\n", len(lastWeek.CompletedTasks))
	fmt.Fprintf(b, "- Tasks carried forward: %d\n", len(lastWeek.UnfinishedTasks))
	b.WriteString("\n")

	if len(lastWeek.TopPriorities) > 0 {
		b.WriteString("### Priorities Worked\n")
		for _, p := range dedupeOrdered(lastWeek.TopPriorities) {
			fmt.Fprintf(b, "- %s\n", p)
		}
		b.WriteString("\n")
	}
}

func dedupeOrdered(items []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range items {
		key := strings.ToLower(item)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}
