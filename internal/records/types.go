package records

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FlexibleTime is a time.Time that can parse the timestamp formats the
// upstream exports actually produce, including Slack-style epoch
// strings. A value that parses as nothing is left zero; recency logic
// degrades gracefully on unknown timestamps.
type FlexibleTime struct {
	time.Time
}

// UnmarshalJSON implements custom JSON unmarshaling for FlexibleTime.
func (ft *FlexibleTime) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}
	if str == "" || str == "null" {
		return nil
	}

	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, format := range formats {
		if t, err := time.Parse(format, str); err == nil {
			ft.Time = t
			return nil
		}
	}

	// Slack timestamps look like "1634567890.123456".
	if sec, err := strconv.ParseFloat(strings.SplitN(str, ".", 2)[0], 64); err == nil {
		ft.Time = time.Unix(int64(sec), 0)
		return nil
	}

	// Unknown timestamp, not an error.
	return nil
}

// MarshalJSON implements custom JSON marshaling.
func (ft FlexibleTime) MarshalJSON() ([]byte, error) {
	if ft.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", ft.Format(time.RFC3339))), nil
}

// Email is one email record as exported by the caller's mail
// integration. Only Subject and Snippet feed scoring; the rest is
// traceability and display.
type Email struct {
	ID            string       `json:"id"`
	From          string       `json:"from"`
	Subject       string       `json:"subject"`
	Snippet       string       `json:"snippet"`
	Date          FlexibleTime `json:"date"`
	HasAttachment bool         `json:"has_attachment"`
}

// ChatMessage is one chat record as exported by the caller's messaging
// integration. TS and ThreadTS are kept in their raw wire form so
// thread detection can compare them exactly.
type ChatMessage struct {
	Channel     string `json:"channel"`
	ChannelName string `json:"channel_name"`
	ChannelType string `json:"channel_type"`
	User        string `json:"user"`
	UserName    string `json:"user_name"`
	Text        string `json:"text"`
	TS          string `json:"ts"`
	ThreadTS    string `json:"thread_ts"`
	BotID       string `json:"bot_id"`
	IsMention   bool   `json:"is_mention"`
	Permalink   string `json:"permalink"`
}

// IsDM reports whether the message arrived in a direct-message channel.
func (m ChatMessage) IsDM() bool {
	return m.ChannelType == "im"
}

// InThread reports whether the message is a reply inside a thread.
func (m ChatMessage) InThread() bool {
	return m.ThreadTS != "" && m.ThreadTS != m.TS
}

// Time parses the raw epoch timestamp; the zero time means unknown.
func (m ChatMessage) Time() time.Time {
	sec, err := strconv.ParseFloat(strings.SplitN(m.TS, ".", 2)[0], 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(int64(sec), 0)
}

// CalendarEvent is one calendar entry as exported by the caller's
// calendar integration.
type CalendarEvent struct {
	Title     string       `json:"title"`
	Start     FlexibleTime `json:"start"`
	End       FlexibleTime `json:"end"`
	Attendees []string     `json:"attendees"`
	Location  string       `json:"location"`
	MeetLink  string       `json:"meet_link"`
	AllDay    bool         `json:"all_day"`
}

// IsMeeting reports whether the event involves other people and so
// should get a meeting note stub.
func (e CalendarEvent) IsMeeting() bool {
	return len(e.Attendees) > 0 && !e.AllDay
}
