package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from ~/.config/klip/config.yaml. A missing or
// unreadable file silently falls back to defaults.
func Load() Config {
	return LoadFrom(Path())
}

// LoadFrom loads configuration from an explicit path.
func LoadFrom(path string) Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = DefaultConfig().MaxHistory
	}
	return cfg
}
