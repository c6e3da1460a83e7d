package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecallahan/weekflow/internal/extract"
)

func TestInboxCategoryOrder(t *testing.T) {
	e := NewEngine(DefaultKeywords())

	tests := []struct {
		name string
		in   Input
		want InboxCategory
	}{
		{
			name: "decision beats meeting",
			in:   Input{Text: "decision needed about the sync"},
			want: DecisionRequired,
		},
		{
			name: "meeting keyword",
			in:   Input{Text: "can we reschedule the sync"},
			want: MeetingRelated,
		},
		{
			name: "chat thread",
			in: Input{
				Text:   "following up on this",
				Source: extract.SourceChatMessage,
				Flags:  extract.Flags{Thread: true},
			},
			want: ActiveThread,
		},
		{
			name: "thread flag ignored outside chat",
			in: Input{
				Text:   "following up on this",
				Source: extract.SourceEmail,
				Flags:  extract.Flags{Thread: true, Attachment: true},
			},
			want: ReviewRequired,
		},
		{
			name: "mention",
			in:   Input{Text: "hello there", Flags: extract.Flags{Mention: true}},
			want: DirectMention,
		},
		{
			name: "fallback",
			in:   Input{Text: "weekly newsletter"},
			want: InfoFYI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.InboxCategory(tt.in))
		})
	}
}

func TestCategorizeTask(t *testing.T) {
	e := NewEngine(DefaultKeywords())

	tests := []struct {
		name      string
		task      string
		wantCat   TaskCategory
		wantScore int
	}{
		{
			name:      "operational review with sign off",
			task:      "Review and sign off on Q3 SPIF communication draft",
			wantCat:   Operational,
			wantScore: 8,
		},
		{
			name:      "strategic planning",
			task:      "Draft the 2026 planning roadmap",
			wantCat:   Strategic,
			wantScore: 8,
		},
		{
			name:      "stakeholder sync",
			task:      "Sync with Andre on alignment",
			wantCat:   Stakeholder,
			wantScore: 7,
		},
		{
			name:      "no matches defaults to strategic base",
			task:      "Water the plants",
			wantCat:   Strategic,
			wantScore: 8,
		},
		{
			name:      "this week narrows the urgency boost",
			task:      "Urgent validation due today",
			wantCat:   Operational,
			wantScore: 8,
		},
		{
			name:      "boosts are capped at ten",
			task:      "Urgent decision on 2026 planning strategy",
			wantCat:   Strategic,
			wantScore: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, score := e.CategorizeTask(tt.task)
			assert.Equal(t, tt.wantCat, cat)
			assert.Equal(t, tt.wantScore, score)
		})
	}
}

func TestTaskReasons(t *testing.T) {
	e := NewEngine(DefaultKeywords())

	reasons := e.TaskReasons("Urgent decision for the team")
	assert.Equal(t, []string{"Marked as urgent", "Decision required", "Team impact"}, reasons)

	assert.Contains(t, e.TaskReasons("Sync with Andre"), "Key stakeholder")
	assert.Contains(t, e.TaskReasons("2026 planning kickoff"), "Strategic planning")
	assert.Empty(t, e.TaskReasons("Water the plants"))
}
