package config

import "time"

// Config is the root configuration for TaskHero.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Briefing      BriefingConfig      `yaml:"briefing"`
	Auth          AuthConfig          `yaml:"auth"`
	Notifications NotificationsConfig `yaml:"notifications"`
}

type ServerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// BriefingConfig configures the generative-text API used for the daily
// mission and per-task motivational messages. An empty api_key disables
// remote calls entirely; fallback content is used instead.
type BriefingConfig struct {
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

// AuthConfig configures bearer-token protection of /api and /mcp.
// With enabled=true and an empty api_token, a token is generated next to
// the database and logged once at startup.
type AuthConfig struct {
	Enabled  bool   `yaml:"enabled"`
	APIToken string `yaml:"api_token"`
}

type NotificationsConfig struct {
	Ntfy     NtfyConfig      `yaml:"ntfy"`
	Webhooks []WebhookConfig `yaml:"webhooks"`
}

type NtfyConfig struct {
	Enabled bool     `yaml:"enabled"`
	Server  string   `yaml:"server"`
	Topic   string   `yaml:"topic"`
	Token   string   `yaml:"token"`
	Events  []string `yaml:"events"`
}

type WebhookConfig struct {
	Name   string   `yaml:"name"`
	URL    string   `yaml:"url"`
	Secret string   `yaml:"secret"`
	Events []string `yaml:"events"`
}

// Defaults returns a Config with sensible default values.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host:     "127.0.0.1",
			Port:     8430,
			LogLevel: "info",
		},
		Database: DatabaseConfig{
			Path: "~/.config/taskhero/taskhero.db",
		},
		Briefing: BriefingConfig{
			Timeout: 30 * time.Second,
		},
		Notifications: NotificationsConfig{
			Ntfy: NtfyConfig{
				Server: "https://ntfy.sh",
			},
		},
	}
}
