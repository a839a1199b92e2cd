// Package config loads klip's YAML configuration.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds the application configuration.
type Config struct {
	// MaxHistory bounds the number of retained entries.
	MaxHistory int `yaml:"max_history"`

	// PollIntervalMS is the clipboard poll interval in milliseconds.
	PollIntervalMS int `yaml:"poll_interval_ms"`

	Theme string `yaml:"theme"`

	// QuitOnSelect exits after a successful paste-back. The default is to
	// stay resident.
	QuitOnSelect bool `yaml:"quit_on_select"`

	// HistoryPath overrides the default history database location.
	HistoryPath string `yaml:"history_path"`

	LogLevel string `yaml:"log_level"`

	// Keys maps action names (up, down, select, search, escape, delete,
	// quit, help, palette, clear) to lists of key names.
	Keys map[string][]string `yaml:"keys"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxHistory:     200,
		PollIntervalMS: 300,
		Theme:          "catppuccin-mocha",
		QuitOnSelect:   false,
		LogLevel:       "info",
	}
}

// PollInterval returns the poll interval as a duration, defaulting when
// the configured value is non-positive.
func (c Config) PollInterval() time.Duration {
	if c.PollIntervalMS <= 0 {
		return 300 * time.Millisecond
	}
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// Dir returns klip's config directory (~/.config/klip).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "klip")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// DefaultHistoryPath returns the default history database location
// (~/.local/share/klip/history.db).
func DefaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "history.db"
	}
	return filepath.Join(home, ".local", "share", "klip", "history.db")
}

// ResolveHistoryPath returns the configured history path or the default.
func (c Config) ResolveHistoryPath() string {
	if c.HistoryPath != "" {
		return c.HistoryPath
	}
	return DefaultHistoryPath()
}
