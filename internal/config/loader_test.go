package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "taskhero.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := Defaults()

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8430, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "~/.config/taskhero/taskhero.db", cfg.Database.Path)
	assert.Equal(t, 30*time.Second, cfg.Briefing.Timeout)
	assert.Empty(t, cfg.Briefing.APIKey)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, "https://ntfy.sh", cfg.Notifications.Ntfy.Server)
	assert.False(t, cfg.Notifications.Ntfy.Enabled)
}

func TestLoadFromFile_OverridesDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	path := writeConfig(t, `
server:
  host: "127.0.0.2"
  port: 9000
  log_level: debug
briefing:
  api_key: file-key
  model: gemini-2.5-pro
notifications:
  ntfy:
    enabled: true
    topic: my-tasks
  webhooks:
    - name: home-assistant
      url: http://localhost:8123/api/webhook/taskhero
      events: [task.completed, level.up]
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.2", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "file-key", cfg.Briefing.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Briefing.Model)
	assert.Equal(t, 30*time.Second, cfg.Briefing.Timeout, "untouched keys keep defaults")
	assert.True(t, cfg.Notifications.Ntfy.Enabled)
	assert.Equal(t, "my-tasks", cfg.Notifications.Ntfy.Topic)
	require.Len(t, cfg.Notifications.Webhooks, 1)
	assert.Equal(t, "home-assistant", cfg.Notifications.Webhooks[0].Name)
	assert.Equal(t, []string{"task.completed", "level.up"}, cfg.Notifications.Webhooks[0].Events)
}

func TestLoadFromFile_MissingFileKeepsDefaults(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8430, cfg.Server.Port)
}

func TestLoadFromFile_EnvOverridesFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("TASKHERO_API_TOKEN", "env-token")

	path := writeConfig(t, `
briefing:
  api_key: file-key
auth:
  enabled: true
  api_token: file-token
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Briefing.APIKey)
	assert.Equal(t, "env-token", cfg.Auth.APIToken)
}

func TestLoadFromFile_ExpandsEnvInValues(t *testing.T) {
	t.Setenv("TASKHERO_TEST_TOPIC", "from-env")

	path := writeConfig(t, `
notifications:
  ntfy:
    enabled: true
    topic: ${TASKHERO_TEST_TOPIC}
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Notifications.Ntfy.Topic)
}

func TestLoadFromFile_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "port out of range",
			yaml:    "server:\n  port: 70000\n",
			wantErr: "server.port",
		},
		{
			name:    "wildcard host",
			yaml:    "server:\n  host: 0.0.0.0\n",
			wantErr: "server.host",
		},
		{
			name:    "non-positive briefing timeout",
			yaml:    "briefing:\n  timeout: -5\n",
			wantErr: "briefing.timeout",
		},
		{
			name:    "ntfy enabled without topic",
			yaml:    "notifications:\n  ntfy:\n    enabled: true\n",
			wantErr: "notifications.ntfy.topic",
		},
		{
			name:    "malformed YAML",
			yaml:    "server: [not a map\n",
			wantErr: "parsing YAML",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.yaml)
			_, err := LoadFromFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestExpandHome(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".config", "taskhero", "taskhero.db"),
		ExpandHome("~/.config/taskhero/taskhero.db"))
	assert.Equal(t, "/var/lib/taskhero.db", ExpandHome("/var/lib/taskhero.db"))
}

func TestLoadFromFile_ExpandsDatabasePath(t *testing.T) {
	path := writeConfig(t, "database:\n  path: ~/data/hero.db\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "data", "hero.db"), cfg.Database.Path)
}
