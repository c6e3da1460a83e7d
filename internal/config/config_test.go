package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pointConfigAt redirects the config file to a temp location so tests
// never touch the real ~/.config/weekflow.
func pointConfigAt(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	t.Setenv("WEEKFLOW_CONFIG", path)
	t.Setenv("WEEKFLOW_USER_NAME", "")
	t.Setenv("WEEKFLOW_USER_ID", "")
	t.Setenv("WEEKFLOW_WORKSPACE", "")
	t.Setenv("WEEKFLOW_INBOX_MAX_ITEMS", "")
	return path
}

func TestLoadDefaults(t *testing.T) {
	pointConfigAt(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.InboxMaxItems)
	assert.NotEmpty(t, cfg.Workspace)
}

func TestLoadFromFile(t *testing.T) {
	path := pointConfigAt(t, t.TempDir())
	content := `user_name: Erin Callahan
user_id: U12345
workspace: /tmp/notes
inbox_max_items: 10
name_corrections:
  Aundre: Andre
keywords:
  urgent:
    - drop everything
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Erin Callahan", cfg.UserName)
	assert.Equal(t, "U12345", cfg.UserID)
	assert.Equal(t, "/tmp/notes", cfg.Workspace)
	assert.Equal(t, 10, cfg.InboxMaxItems)
	assert.Equal(t, "Andre", cfg.NameCorrections["Aundre"])
	assert.Contains(t, cfg.Keywords.Urgent, "drop everything")
}

func TestEnvOverridesFile(t *testing.T) {
	path := pointConfigAt(t, t.TempDir())
	require.NoError(t, os.WriteFile(path, []byte("user_name: File Name\ninbox_max_items: 10\n"), 0600))

	t.Setenv("WEEKFLOW_USER_NAME", "Env Name")
	t.Setenv("WEEKFLOW_INBOX_MAX_ITEMS", "50")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Env Name", cfg.UserName)
	assert.Equal(t, 50, cfg.InboxMaxItems)
}

func TestLoadMalformedFile(t *testing.T) {
	path := pointConfigAt(t, t.TempDir())
	require.NoError(t, os.WriteFile(path, []byte("user_name: [unclosed"), 0600))

	_, err := Load()
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := pointConfigAt(t, t.TempDir())

	cfg := &Config{
		UserName:      "Erin Callahan",
		Workspace:     "/tmp/notes",
		InboxMaxItems: 15,
	}
	require.NoError(t, cfg.Save())

	_, err := os.Stat(path)
	require.NoError(t, err)

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Erin Callahan", loaded.UserName)
	assert.Equal(t, 15, loaded.InboxMaxItems)
}

func TestScoringKeywordsExtendDefaults(t *testing.T) {
	cfg := &Config{}
	kw := cfg.ScoringKeywords()
	assert.Contains(t, kw.Urgent, "urgent")

	cfg.Keywords.Urgent = []string{"drop everything"}
	kw = cfg.ScoringKeywords()
	assert.Contains(t, kw.Urgent, "urgent")
	assert.Contains(t, kw.Urgent, "drop everything")
}
