package inbox

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecallahan/weekflow/internal/extract"
	"github.com/ecallahan/weekflow/internal/records"
	"github.com/ecallahan/weekflow/internal/score"
)

func newInbox() *Inbox {
	return New(score.NewEngine(score.DefaultKeywords()), nil)
}

func TestAddEmails(t *testing.T) {
	box := newInbox()
	box.AddEmails([]records.Email{
		{ID: "1", From: "alice@corp.com", Subject: "Weekly notes", Snippet: "nothing urgent here"},
		{ID: "2", From: "bob@corp.com", Snippet: "body without subject"},
		{ID: "3"}, // empty, skipped
	})

	items := box.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Weekly notes", items[0].Subject)
	assert.Equal(t, "No Subject", items[1].Subject)
	assert.Equal(t, extract.SourceEmail, items[0].Source)
}

func TestAddChatMessagesSkipsBots(t *testing.T) {
	box := newInbox()
	box.AddChatMessages([]records.ChatMessage{
		{Channel: "C1", ChannelName: "general", User: "U1", UserName: "alice", Text: "hello team"},
		{Channel: "C1", BotID: "B99", Text: "automated reminder"},
		{Channel: "C1", Text: ""},
	})

	items := box.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "#general", items[0].Subject)
	assert.Equal(t, "alice", items[0].From)
}

func TestChatMentionFlag(t *testing.T) {
	box := newInbox()
	box.AddChatMessages([]records.ChatMessage{
		{ChannelName: "dev", User: "U1", Text: "ping @carol about the release"},
	})
	require.Len(t, box.Items(), 1)
	assert.True(t, box.Items()[0].Flags.Mention)
}

func TestDeterministicIDs(t *testing.T) {
	email := records.Email{ID: "1", From: "alice@corp.com", Subject: "Budget", Snippet: "numbers attached"}

	a := newInbox()
	a.AddEmails([]records.Email{email})
	b := newInbox()
	b.AddEmails([]records.Email{email})

	require.Len(t, a.Items(), 1)
	require.Len(t, b.Items(), 1)
	assert.Equal(t, a.Items()[0].ID, b.Items()[0].ID)
	assert.NotEmpty(t, a.Items()[0].ID)
}

func TestSummarizeTiers(t *testing.T) {
	box := newInbox()
	box.AddEmails([]records.Email{
		{ID: "p1", From: "ceo@corp.com", Subject: "URGENT production outage", Snippet: "revenue customer escalation, approve the rollback"},
		{ID: "p4", From: "newsletter@vendor.com", Subject: "May digest", Snippet: "links inside"},
	})

	summary := box.Summarize(25)
	require.Len(t, summary.P1, 1)
	assert.Equal(t, 9, summary.P1[0].Priority)
	require.Len(t, summary.P4, 1)
	assert.Empty(t, summary.P2)
	assert.Empty(t, summary.P3)

	stats := summary.Stats
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 2, stats.Emails)
	assert.Equal(t, 1, stats.HighPriority)
}

func TestSummarizeMaxItems(t *testing.T) {
	box := newInbox()
	var emails []records.Email
	for i := 0; i < 30; i++ {
		emails = append(emails, records.Email{From: "a@b.c", Subject: "note", Snippet: "ordinary update"})
	}
	box.AddEmails(emails)

	summary := box.Summarize(10)
	total := len(summary.P1) + len(summary.P2) + len(summary.P3) + len(summary.P4)
	assert.Equal(t, 10, total)
	// Stats still reflect everything added.
	assert.Equal(t, 30, summary.Stats.Total)
}

func TestFilter(t *testing.T) {
	box := newInbox()
	box.AddEmails([]records.Email{
		{From: "a@b.c", Subject: "keep me", Snippet: "first"},
		{From: "a@b.c", Subject: "drop me", Snippet: "second"},
	})

	box.Filter(func(item Item) bool { return item.Subject != "drop me" })
	require.Len(t, box.Items(), 1)
	assert.Equal(t, "keep me", box.Items()[0].Subject)
	assert.Equal(t, 1, box.Summarize(25).Stats.Total)
}

func TestPreviewTruncationKeepsValidUTF8(t *testing.T) {
	box := newInbox()
	box.AddEmails([]records.Email{
		{From: "a@b.c", Subject: "long body", Snippet: strings.Repeat("é", 150)},
	})
	require.Len(t, box.Items(), 1)

	preview := box.Items()[0].Preview
	assert.True(t, utf8.ValidString(preview))
	assert.Equal(t, strings.Repeat("é", 100), preview)
}

func TestItemsAreScored(t *testing.T) {
	box := newInbox()
	box.AddEmails([]records.Email{{From: "a@b.c", Subject: "sync tomorrow", Snippet: "calendar invite"}})
	require.Len(t, box.Items(), 1)

	item := box.Items()[0]
	assert.Equal(t, score.MeetingRelated, item.Category)
	valid := map[int]bool{1: true, 2: true, 3: true, 4: true, 6: true, 8: true, 9: true}
	assert.True(t, valid[item.Priority], "priority %d outside valid set", item.Priority)
}
