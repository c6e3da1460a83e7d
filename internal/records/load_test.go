package records

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeExport(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadEmails(t *testing.T) {
	path := writeExport(t, "emails.json", `[
		{"from": "alice@corp.com", "subject": "Budget review", "snippet": "Look before Friday", "date": "2026-08-24", "has_attachment": true},
		{"from": "bob@corp.com", "subject": "FYI"}
	]`)

	emails, err := LoadEmails(path)
	require.NoError(t, err)
	require.Len(t, emails, 2)
	assert.Equal(t, "Budget review", emails[0].Subject)
	assert.True(t, emails[0].HasAttachment)
	assert.True(t, emails[1].Date.IsZero())
}

func TestLoadChatMessages(t *testing.T) {
	path := writeExport(t, "chat.json", `[
		{"channel_type": "im", "user_name": "alice", "text": "can you review?", "ts": "1756026000.000100"}
	]`)

	messages, err := LoadChatMessages(path)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].IsDM())
	assert.Equal(t, "1756026000.000100", messages[0].TS)
}

func TestLoadCalendarEvents(t *testing.T) {
	path := writeExport(t, "calendar.json", `[
		{"title": "Platform Review", "start": "2026-08-25T14:00:00", "attendees": ["Alice", "Bob"]}
	]`)

	events, err := LoadCalendarEvents(path)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].IsMeeting())
	assert.Equal(t, 14, events[0].Start.Hour())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadEmails(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeExport(t, "emails.json", `{"not": "an array"}`)
	_, err := LoadEmails(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load emails")
}
