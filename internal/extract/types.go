package extract

import "time"

// Source identifies where an extracted item came from.
type Source string

const (
	SourceEmail              Source = "email"
	SourceChatMessage        Source = "chat_message"
	SourceMarkdownTask       Source = "markdown_task"
	SourceMarkdownDecision   Source = "markdown_decision"
	SourceMarkdownCommitment Source = "markdown_commitment"
)

// Flags captures context signals detected on the originating record.
type Flags struct {
	DirectMessage bool `json:"is_direct_message,omitempty"`
	Mention       bool `json:"is_mention,omitempty"`
	Attachment    bool `json:"has_attachment,omitempty"`
	Thread        bool `json:"has_thread,omitempty"`
}

// Item is a single fact pulled out of raw text. Text is always cleaned
// and non-empty; items whose cleaned text is empty are dropped during
// extraction rather than emitted.
type Item struct {
	Source    Source     `json:"source"`
	Text      string     `json:"text"`
	OriginRef string     `json:"origin_ref,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Flags     Flags      `json:"flags"`
}

// Record is a raw input record handed to the extractors. Only Text is
// required; records without text are skipped with a warning.
type Record struct {
	Text      string
	SourceRef string
	From      string
	Timestamp *time.Time
	Flags     Flags
}

// TaskState distinguishes checked from unchecked checklist entries.
type TaskState int

const (
	TaskCompleted TaskState = iota
	TaskIncomplete
)

// Task is a checklist line extracted from structured markdown.
type Task struct {
	Text      string
	State     TaskState
	OriginRef string
}
