package records

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleTimeFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339", `"2026-08-24T09:30:00Z"`, time.Date(2026, 8, 24, 9, 30, 0, 0, time.UTC)},
		{"no offset", `"2026-08-24T09:30:00"`, time.Date(2026, 8, 24, 9, 30, 0, 0, time.UTC)},
		{"date only", `"2026-08-24"`, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)},
		{"slack epoch", `"1756026000.123456"`, time.Unix(1756026000, 0)},
		{"bare epoch", `"1756026000"`, time.Unix(1756026000, 0)},
		{"empty", `""`, time.Time{}},
		{"null", `null`, time.Time{}},
		{"garbage", `"next tuesday"`, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ft FlexibleTime
			require.NoError(t, ft.UnmarshalJSON([]byte(tt.input)))
			assert.True(t, ft.Equal(tt.want), "got %v, want %v", ft.Time, tt.want)
		})
	}
}

func TestFlexibleTimeMarshal(t *testing.T) {
	ft := FlexibleTime{Time: time.Date(2026, 8, 24, 9, 30, 0, 0, time.UTC)}
	data, err := json.Marshal(ft)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-24T09:30:00Z"`, string(data))

	data, err = json.Marshal(FlexibleTime{})
	require.NoError(t, err)
	assert.Equal(t, `""`, string(data))
}

func TestEmailUnmarshal(t *testing.T) {
	raw := `{
		"id": "msg-1",
		"from": "alice@corp.com",
		"subject": "Budget review",
		"snippet": "Please take a look before Friday",
		"date": "2026-08-24T09:30:00Z",
		"has_attachment": true
	}`

	var email Email
	require.NoError(t, json.Unmarshal([]byte(raw), &email))
	assert.Equal(t, "alice@corp.com", email.From)
	assert.Equal(t, "Budget review", email.Subject)
	assert.True(t, email.HasAttachment)
	assert.Equal(t, 2026, email.Date.Year())
}

func TestChatMessageDM(t *testing.T) {
	assert.True(t, ChatMessage{ChannelType: "im"}.IsDM())
	assert.False(t, ChatMessage{ChannelType: "channel"}.IsDM())
	assert.False(t, ChatMessage{}.IsDM())
}

func TestChatMessageInThread(t *testing.T) {
	// A thread reply has a thread_ts different from its own ts.
	reply := ChatMessage{TS: "1756026100.000200", ThreadTS: "1756026000.000100"}
	assert.True(t, reply.InThread())

	// The thread parent carries its own ts as thread_ts.
	parent := ChatMessage{TS: "1756026000.000100", ThreadTS: "1756026000.000100"}
	assert.False(t, parent.InThread())

	assert.False(t, ChatMessage{TS: "1756026000.000100"}.InThread())
}

func TestChatMessageTime(t *testing.T) {
	msg := ChatMessage{TS: "1756026000.000100"}
	assert.Equal(t, time.Unix(1756026000, 0), msg.Time())

	assert.True(t, ChatMessage{TS: "not-a-timestamp"}.Time().IsZero())
	assert.True(t, ChatMessage{}.Time().IsZero())
}

func TestCalendarEventIsMeeting(t *testing.T) {
	assert.True(t, CalendarEvent{Title: "1:1", Attendees: []string{"Bob"}}.IsMeeting())
	assert.False(t, CalendarEvent{Title: "Focus block"}.IsMeeting())
	assert.False(t, CalendarEvent{Title: "Offsite", Attendees: []string{"Bob"}, AllDay: true}.IsMeeting())
}
