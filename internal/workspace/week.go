package workspace

import (
	"time"

	"github.com/ecallahan/weekflow/internal/extract"
)

// WeekData is everything pulled out of one week's notes.
type WeekData struct {
	WeekStart time.Time
	WeekEnd   time.Time

	CompletedTasks  []string
	UnfinishedTasks []string
	Meetings        []extract.MeetingMetadata
	MeetingOutcomes []extract.MeetingOutcome
	ActionItems     []extract.ActionItem
	DecisionLogs    []extract.DecisionLog
	TopPriorities   []string
	MeetingCount    int
}

// ExtractWeek reads the week's files and pulls out completed and
// unfinished tasks, meeting outcomes, owner action items, decision
// logs and the priorities the daily notes said the week was about.
func (w *Workspace) ExtractWeek(weekStart time.Time) WeekData {
	files := w.FindWeekFiles(weekStart)

	data := WeekData{
		WeekStart: weekStart,
		WeekEnd:   weekStart.AddDate(0, 0, 6),
	}

	dailies := w.ReadDocuments(files.Dailies)
	meetings := w.ReadDocuments(files.Meetings)
	decisions := w.ReadDocuments(files.Decisions)

	data.CompletedTasks = extract.CompletedTasks(append(dailies, meetings...))
	data.UnfinishedTasks = extract.IncompleteTasks(append(dailies, meetings...))
	data.TopPriorities = extract.TopPriorities(dailies)
	data.MeetingOutcomes = extract.MeetingOutcomes(meetings)
	data.DecisionLogs = extract.DecisionLogs(decisions)
	data.MeetingCount = len(meetings)

	for _, doc := range meetings {
		meta := extract.ParseMeetingTitle(extract.DocumentTitle(doc))
		data.Meetings = append(data.Meetings, meta)
		data.ActionItems = append(data.ActionItems, extract.OwnerActions(doc, meta)...)
	}

	return data
}
