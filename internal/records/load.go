package records

import (
	"encoding/json"
	"fmt"
	"os"
)

// The calendar, mail and chat integrations live outside this tool; the
// caller exports their data as plain JSON arrays and points weekflow at
// the files.

// LoadEmails reads an email export file.
func LoadEmails(path string) ([]Email, error) {
	var emails []Email
	if err := loadJSON(path, &emails); err != nil {
		return nil, fmt.Errorf("failed to load emails: %w", err)
	}
	return emails, nil
}

// LoadChatMessages reads a chat export file.
func LoadChatMessages(path string) ([]ChatMessage, error) {
	var messages []ChatMessage
	if err := loadJSON(path, &messages); err != nil {
		return nil, fmt.Errorf("failed to load chat messages: %w", err)
	}
	return messages, nil
}

// LoadCalendarEvents reads a calendar export file.
func LoadCalendarEvents(path string) ([]CalendarEvent, error) {
	var events []CalendarEvent
	if err := loadJSON(path, &events); err != nil {
		return nil, fmt.Errorf("failed to load calendar events: %w", err)
	}
	return events, nil
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
