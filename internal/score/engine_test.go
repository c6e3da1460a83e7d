package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecallahan/weekflow/internal/extract"
)

func TestUrgency(t *testing.T) {
	e := NewEngine(DefaultKeywords())

	tests := []struct {
		name string
		in   Input
		want Level
	}{
		{
			name: "no signals",
			in:   Input{From: "bob@example.com", Subject: "Lunch plans", Text: "picnic on friday"},
			want: Low,
		},
		{
			name: "mention alone is medium",
			in:   Input{Subject: "hello there", Flags: extract.Flags{Mention: true}},
			want: Medium,
		},
		{
			name: "urgent keyword alone is medium",
			in:   Input{Subject: "urgent fix needed", Source: extract.SourceEmail},
			want: Medium,
		},
		{
			name: "urgent dm is high",
			in: Input{
				Text:   "urgent fix needed",
				Source: extract.SourceChatMessage,
				Flags:  extract.Flags{DirectMessage: true},
			},
			want: High,
		},
		{
			name: "exec sender counts only for email",
			in: Input{
				From:   "cto@corp.com",
				Text:   "touching base",
				Source: extract.SourceChatMessage,
			},
			want: Low,
		},
		{
			name: "exec sender plus attachment",
			in: Input{
				From:   "vp-eng@corp.com",
				Text:   "slides attached",
				Source: extract.SourceEmail,
				Flags:  extract.Flags{Attachment: true},
			},
			want: Medium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Urgency(tt.in))
		})
	}
}

func TestImpact(t *testing.T) {
	e := NewEngine(DefaultKeywords())

	tests := []struct {
		name string
		in   Input
		want Level
	}{
		{"no signals", Input{Text: "coffee soon"}, Low},
		{"revenue only is medium", Input{Text: "customer feedback arrived"}, Medium},
		{"production plus revenue is high", Input{Text: "production outage hitting revenue"}, High},
		{"people only is low", Input{Text: "new hiring round"}, Low},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Impact(tt.in))
		})
	}
}

func TestPriorityMatrix(t *testing.T) {
	valid := map[int]bool{1: true, 2: true, 3: true, 4: true, 6: true, 8: true, 9: true}
	levels := []Level{Low, Medium, High}
	for _, u := range levels {
		for _, i := range levels {
			p := Priority(u, i)
			assert.True(t, valid[p], "Priority(%s, %s) = %d not in valid set", u, i, p)
		}
	}
	assert.Equal(t, 9, Priority(High, High))
	assert.Equal(t, 1, Priority(Low, Low))
	assert.Equal(t, 6, Priority(High, Medium))
}

func TestScoreUrgentProductionMessage(t *testing.T) {
	e := NewEngine(DefaultKeywords())

	in := Input{
		Subject: "URGENT: production outage",
		Text:    "revenue impact, please jump on the bridge",
		Source:  extract.SourceChatMessage,
		Flags:   extract.Flags{DirectMessage: true},
	}
	urgency, impact, priority := e.Score(in)
	require.Equal(t, High, urgency)
	require.Equal(t, High, impact)
	require.Equal(t, 9, priority)
}

func TestScoreDeterministic(t *testing.T) {
	e := NewEngine(DefaultKeywords())
	in := Input{
		From:    "director@corp.com",
		Subject: "Quarterly budget review needed",
		Text:    "strategy deck attached",
		Source:  extract.SourceEmail,
		Flags:   extract.Flags{Attachment: true},
	}
	u1, i1, p1 := e.Score(in)
	u2, i2, p2 := e.Score(in)
	assert.Equal(t, u1, u2)
	assert.Equal(t, i1, i2)
	assert.Equal(t, p1, p2)
}

func TestLevelWeight(t *testing.T) {
	assert.Equal(t, 3, High.Weight())
	assert.Equal(t, 2, Medium.Weight())
	assert.Equal(t, 1, Low.Weight())
	assert.Equal(t, 1, Level("bogus").Weight())
}

func TestKeywordsMerge(t *testing.T) {
	kw := DefaultKeywords().Merge(Keywords{Urgent: []string{"fire drill"}})
	e := NewEngine(kw)

	in := Input{Text: "fire drill in progress", Source: extract.SourceEmail}
	assert.Equal(t, Medium, e.Urgency(in))

	// Defaults are still present after a merge.
	assert.Equal(t, Medium, e.Urgency(Input{Text: "this is urgent"}))
}
