package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitments(t *testing.T) {
	e := New()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "basic commitment",
			text: "I'll review the Q3 budget tomorrow.",
			want: []string{"Review the Q3 budget tomorrow"},
		},
		{
			name: "i will phrasing",
			text: "I will send the updated deck before noon.",
			want: []string{"Send the updated deck before noon"},
		},
		{
			name: "let me phrasing",
			text: "Let me check with the platform folks first.",
			want: []string{"Check with the platform folks first"},
		},
		{
			name: "short captures dropped",
			text: "I'll do it.",
			want: nil,
		},
		{
			name: "questions dropped",
			text: "I'll see you there maybe?",
			want: nil,
		},
		{
			name: "clause stops at sentence boundary",
			text: "I'm going to finish the migration tonight. Then vacation.",
			want: []string{"Finish the migration tonight"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := e.Commitments([]Record{{Text: tt.text}})
			var got []string
			for _, item := range items {
				got = append(got, item.Text)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommitmentsDedupe(t *testing.T) {
	e := New()
	items := e.Commitments([]Record{
		{Text: "I'll send the report today."},
		{Text: "I'll Send The Report Today."},
	})
	require.Len(t, items, 1)
	assert.Equal(t, "Send the report today", items[0].Text)
}

func TestRequests(t *testing.T) {
	e := New()

	items := e.Requests([]Record{{Text: "Can you send me the deck?"}})
	require.Len(t, items, 1)
	assert.Equal(t, "Send me the deck", items[0].Text)

	// First matching rule wins per record.
	items = e.Requests([]Record{{Text: "Can you update the dashboard? Please also check the logs."}})
	require.Len(t, items, 1)
	assert.Equal(t, "Update the dashboard", items[0].Text)
}

func TestRequestsMention(t *testing.T) {
	e := New()

	items := e.Requests([]Record{{Text: "<@U123ABC> the design doc needs your eyes this week"}})
	require.NotEmpty(t, items)
	assert.Equal(t, "The design doc needs your eyes this week", items[0].Text)
	assert.True(t, items[0].Flags.Mention)
}

func TestDecisions(t *testing.T) {
	e := New()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"decided to", "We decided to go with option B for the rollout.", "Go with option B for the rollout"},
		{"decision colon", "Decision: postpone the launch until March.", "Postpone the launch until March"},
		{"go with", "After the spike we'll go with the streaming approach.", "The streaming approach"},
		{"agreed", "We agreed to revisit pricing next quarter.", "Revisit pricing next quarter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := e.Decisions([]Record{{Text: tt.text}})
			require.NotEmpty(t, items)
			assert.Equal(t, tt.want, items[0].Text)
		})
	}
}

func TestCorrectNames(t *testing.T) {
	e := New(WithNameCorrections(map[string]string{
		"Jon":  "John",
		"Sara": "Sarah",
	}))

	assert.Equal(t, "John will review", e.CorrectNames("Jon will review"))
	// Whole words only.
	assert.Equal(t, "Jonathan will review", e.CorrectNames("Jonathan will review"))
	assert.Equal(t, "Sarah and John", e.CorrectNames("Sara and Jon"))
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"*bold* _text_ here now", "Bold text here now"},
		{"check <https://example.com|this link> out", "Check out"},
		{"  collapse    whitespace  ", "Collapse whitespace"},
		{"<@U12345>", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanText(tt.in))
	}
}

func TestEmptyRecordsSkipped(t *testing.T) {
	e := New()
	items := e.Commitments([]Record{{Text: "   "}, {Text: ""}})
	assert.Empty(t, items)
}

func TestDedupeIdempotent(t *testing.T) {
	items := []Item{
		{Text: "Review the doc"},
		{Text: "review the doc"},
		{Text: "Ship the thing"},
	}
	once := Dedupe(items)
	twice := Dedupe(once)
	assert.Equal(t, once, twice)
	assert.Len(t, once, 2)
	assert.Equal(t, "Review the doc", once[0].Text)
}

func TestExtractionDeterministic(t *testing.T) {
	e := New()
	records := []Record{
		{Text: "I'll draft the proposal tonight. Can you review the numbers tomorrow?"},
		{Text: "We decided to ship on Friday."},
	}
	first := e.Commitments(records)
	second := e.Commitments(records)
	assert.Equal(t, first, second)
}
