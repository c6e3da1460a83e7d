package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ecallahan/weekflow/internal/score"
)

// Config holds application configuration.
type Config struct {
	// UserName is used when filtering meeting notes and action items
	// down to the user's own.
	UserName string `yaml:"user_name"`
	// UserID is the chat user ID used to detect explicit mentions.
	UserID string `yaml:"user_id"`
	// Workspace is the root of the flat-file note workspace
	// (work/daily, work/meetings, reference/decisions, archive/daily).
	Workspace string `yaml:"workspace"`
	// InboxMaxItems bounds how many items the inbox summary keeps.
	InboxMaxItems int `yaml:"inbox_max_items"`
	// NameCorrections maps recurring transcription misspellings to
	// corrected names, applied whole-word before extraction.
	NameCorrections map[string]string `yaml:"name_corrections"`
	// Keywords are additions folded into the built-in scoring tables.
	Keywords score.Keywords `yaml:"keywords"`
}

// Load loads configuration from the config file and environment
// variables. Environment variables take precedence over file values.
func Load() (*Config, error) {
	cfg := &Config{
		InboxMaxItems: 25,
	}

	if err := cfg.loadFromFile(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	cfg.loadFromEnv()

	if cfg.Workspace == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.Workspace = filepath.Join(home, "notes")
		}
	}

	return cfg, nil
}

// ScoringKeywords returns the effective keyword tables: the built-in
// defaults extended (never replaced) by configured additions.
func (c *Config) ScoringKeywords() score.Keywords {
	return score.DefaultKeywords().Merge(c.Keywords)
}

func (c *Config) loadFromFile() error {
	configPath := getConfigPath()
	if configPath == "" {
		return os.ErrNotExist
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, c)
}

func (c *Config) loadFromEnv() {
	if name := os.Getenv("WEEKFLOW_USER_NAME"); name != "" {
		c.UserName = name
	}
	if id := os.Getenv("WEEKFLOW_USER_ID"); id != "" {
		c.UserID = id
	}
	if dir := os.Getenv("WEEKFLOW_WORKSPACE"); dir != "" {
		c.Workspace = dir
	}
	if maxStr := os.Getenv("WEEKFLOW_INBOX_MAX_ITEMS"); maxStr != "" {
		if n, err := strconv.Atoi(maxStr); err == nil {
			c.InboxMaxItems = n
		}
	}
}

// Save writes the config back to the config file, creating the config
// directory as needed.
func (c *Config) Save() error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(filepath.Join(configDir, "config.yaml"), data, 0600)
}

// getConfigPath returns the path to the config file.
// Priority: $WEEKFLOW_CONFIG > ~/.config/weekflow/config.yaml
func getConfigPath() string {
	if configPath := os.Getenv("WEEKFLOW_CONFIG"); configPath != "" {
		return configPath
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "weekflow", "config.yaml")
}

// GetConfigDir returns the directory holding the config file.
func GetConfigDir() (string, error) {
	configPath := getConfigPath()
	if configPath == "" {
		return "", fmt.Errorf("cannot determine config path")
	}
	return filepath.Dir(configPath), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}

	return configDir, nil
}
