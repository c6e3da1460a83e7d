package extract

import (
	"regexp"
	"strings"
)

var (
	completedLineRe  = regexp.MustCompile(`(?mi)^- \[x\] (.+)$`)
	incompleteLineRe = regexp.MustCompile(`(?m)^- \[ \] (.+)$`)
)

// Document is a named text blob, typically one markdown file.
type Document struct {
	Name    string
	Content string
}

// CompletedTasks extracts checked checklist lines from the documents,
// deduplicated across documents by case-insensitive text.
func CompletedTasks(docs []Document) []string {
	return checklistTasks(docs, completedLineRe)
}

// IncompleteTasks extracts unchecked checklist lines - the carry-forward
// candidates - deduplicated across documents.
func IncompleteTasks(docs []Document) []string {
	return checklistTasks(docs, incompleteLineRe)
}

// Tasks extracts every checklist line with its completion state.
func Tasks(docs []Document) []Task {
	var tasks []Task
	for _, doc := range docs {
		for _, m := range completedLineRe.FindAllStringSubmatch(doc.Content, -1) {
			if text := cleanTaskText(m[1]); text != "" {
				tasks = append(tasks, Task{Text: text, State: TaskCompleted, OriginRef: doc.Name})
			}
		}
		for _, m := range incompleteLineRe.FindAllStringSubmatch(doc.Content, -1) {
			if text := cleanTaskText(m[1]); text != "" {
				tasks = append(tasks, Task{Text: text, State: TaskIncomplete, OriginRef: doc.Name})
			}
		}
	}
	return tasks
}

func checklistTasks(docs []Document, re *regexp.Regexp) []string {
	var tasks []string
	for _, doc := range docs {
		for _, m := range re.FindAllStringSubmatch(doc.Content, -1) {
			if text := cleanTaskText(m[1]); text != "" {
				tasks = append(tasks, text)
			}
		}
	}
	return DedupeStrings(tasks)
}

// cleanTaskText trims a checklist capture and strips priority-emoji
// prefixes. Lines that still open with a bracket are template
// placeholders, not tasks.
func cleanTaskText(text string) string {
	text = strings.TrimSpace(text)
	text = emojiPrefixRe.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)
	if text == "" || strings.HasPrefix(text, "[") {
		return ""
	}
	return text
}

// StripCheckbox removes leading checkbox markup from a task line.
func StripCheckbox(task string) string {
	return strings.TrimSpace(checkboxRe.ReplaceAllString(task, ""))
}
