package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Mark actions for reviewed inbox items.
const (
	ActionDone    = "done"
	ActionSnoozed = "snoozed"
)

// MarkStore records which inbox items have been handled or snoozed, so
// subsequent runs can filter them out. It is a flat JSON file keyed by
// the item's deterministic ID.
type MarkStore struct {
	Version   string               `json:"version"`
	UpdatedAt time.Time            `json:"updated_at"`
	Items     map[string]MarkEntry `json:"items"`
}

// MarkEntry is one reviewed item.
type MarkEntry struct {
	Action   string `json:"action"`
	MarkedAt string `json:"marked_at"`
	// Snoozed entries expire and resurface after this time.
	SnoozeUntil string `json:"snooze_until,omitempty"`
}

// GetMarkStorePath returns the path to the mark store file.
func GetMarkStorePath() string {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, "marks.json")
}

// LoadMarkStore loads the mark store, returning an empty store when the
// file does not exist yet.
func LoadMarkStore() (*MarkStore, error) {
	path := GetMarkStorePath()
	if path == "" {
		return &MarkStore{Items: make(map[string]MarkEntry)}, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &MarkStore{Version: "1.0", Items: make(map[string]MarkEntry)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read mark store: %w", err)
	}

	var store MarkStore
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("failed to parse mark store: %w", err)
	}

	if store.Items == nil {
		store.Items = make(map[string]MarkEntry)
	}

	return &store, nil
}

// Save writes the store back to disk.
func (s *MarkStore) Save() error {
	path := GetMarkStorePath()
	if path == "" {
		return fmt.Errorf("cannot determine mark store path")
	}

	s.UpdatedAt = time.Now()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal mark store: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// MarkDone records an item as handled.
func (s *MarkStore) MarkDone(id string) {
	s.set(id, MarkEntry{Action: ActionDone, MarkedAt: time.Now().Format(time.RFC3339)})
}

// Snooze hides an item until the given time.
func (s *MarkStore) Snooze(id string, until time.Time) {
	s.set(id, MarkEntry{
		Action:      ActionSnoozed,
		MarkedAt:    time.Now().Format(time.RFC3339),
		SnoozeUntil: until.Format(time.RFC3339),
	})
}

// Clear removes any mark on an item.
func (s *MarkStore) Clear(id string) {
	delete(s.Items, id)
}

// IsHidden reports whether the item should be filtered from output:
// marked done, or snoozed with the snooze still active.
func (s *MarkStore) IsHidden(id string, now time.Time) bool {
	entry, ok := s.Items[id]
	if !ok {
		return false
	}
	if entry.Action == ActionDone {
		return true
	}
	if entry.Action == ActionSnoozed {
		until, err := time.Parse(time.RFC3339, entry.SnoozeUntil)
		if err != nil {
			return false
		}
		return now.Before(until)
	}
	return false
}

func (s *MarkStore) set(id string, entry MarkEntry) {
	if s.Items == nil {
		s.Items = make(map[string]MarkEntry)
	}
	s.Items[id] = entry
}
