package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/ecallahan/weekflow/internal/extract"
)

// Workspace is the flat-file note tree weekflow reads and writes:
//
//	work/daily/YYYY-MM-DD.md
//	work/meetings/YYYY-MM-DD-<slug>.md
//	reference/decisions/YYYY-MM-<slug>.md
//	archive/daily/YYYY-MM-week-NN/YYYY-MM-DD.md
//	weekly-summaries/weekly-summary-YYYY-MM-DD.md
//	work/weeks/YYYY-MM-DD-week.md
type Workspace struct {
	root string
	log  *zap.Logger
}

// WeekFiles lists the files found for one week.
type WeekFiles struct {
	Dailies   []string
	Meetings  []string
	Decisions []string
}

// New returns a Workspace rooted at dir.
func New(root string, log *zap.Logger) *Workspace {
	if log == nil {
		log = zap.NewNop()
	}
	return &Workspace{root: root, log: log}
}

// Root returns the workspace root directory.
func (w *Workspace) Root() string { return w.root }

func (w *Workspace) dailyDir() string     { return filepath.Join(w.root, "work", "daily") }
func (w *Workspace) meetingsDir() string  { return filepath.Join(w.root, "work", "meetings") }
func (w *Workspace) weeksDir() string     { return filepath.Join(w.root, "work", "weeks") }
func (w *Workspace) decisionsDir() string { return filepath.Join(w.root, "reference", "decisions") }
func (w *Workspace) archiveDir() string   { return filepath.Join(w.root, "archive", "daily") }
func (w *Workspace) summariesDir() string { return filepath.Join(w.root, "weekly-summaries") }
func (w *Workspace) templatesDir() string { return filepath.Join(w.root, "system", "templates") }

// EnsureDirectories creates the directories weekflow writes into.
func (w *Workspace) EnsureDirectories() error {
	for _, dir := range []string{w.dailyDir(), w.meetingsDir(), w.weeksDir(), w.summariesDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// FindWeekFiles locates the daily, meeting and decision files touching
// the week starting at weekStart (a Monday). Dailies missing from
// work/daily are looked up in the archive.
func (w *Workspace) FindWeekFiles(weekStart time.Time) WeekFiles {
	var files WeekFiles

	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		dateStr := day.Format("2006-01-02")

		daily := filepath.Join(w.dailyDir(), dateStr+".md")
		if fileExists(daily) {
			files.Dailies = append(files.Dailies, daily)
		} else {
			_, weekNum := day.ISOWeek()
			archived := filepath.Join(w.archiveDir(),
				fmt.Sprintf("%d-%02d-week-%02d", day.Year(), int(day.Month()), weekNum),
				dateStr+".md")
			if fileExists(archived) {
				files.Dailies = append(files.Dailies, archived)
			}
		}

		if matches, err := filepath.Glob(filepath.Join(w.meetingsDir(), dateStr+"-*.md")); err == nil {
			files.Meetings = append(files.Meetings, matches...)
		}
	}

	monthStr := weekStart.Format("2006-01")
	if matches, err := filepath.Glob(filepath.Join(w.decisionsDir(), monthStr+"-*.md")); err == nil {
		files.Decisions = append(files.Decisions, matches...)
	}

	return files
}

// ReadDocuments loads files into extract documents. Unreadable files
// are skipped with a warning so one bad file never sinks the batch.
func (w *Workspace) ReadDocuments(paths []string) []extract.Document {
	var docs []extract.Document
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			w.log.Warn("skipping unreadable file", zap.String("path", path), zap.Error(err))
			continue
		}
		rel, err := filepath.Rel(w.root, path)
		if err != nil {
			rel = filepath.Base(path)
		}
		docs = append(docs, extract.Document{Name: rel, Content: string(data)})
	}
	return docs
}

// readTemplate loads a named template from system/templates, falling
// back to the built-in when the workspace has none.
func (w *Workspace) readTemplate(name, fallback string) string {
	data, err := os.ReadFile(filepath.Join(w.templatesDir(), name))
	if err != nil {
		return fallback
	}
	return string(data)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// WeekStart returns the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	day := t.AddDate(0, 0, -daysSinceMonday)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, t.Location())
}
