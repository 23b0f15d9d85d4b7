package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for a puzzplan session.
// Values are populated from .puzzplan.yaml, PUZZPLAN_* env vars, and CLI flags.
type Config struct {
	Catalog         string `mapstructure:"catalog"`
	HistoryDB       string `mapstructure:"history_db"`
	TelemetryPath   string `mapstructure:"telemetry_path"`
	Verbose         bool   `mapstructure:"verbose"`
	Color           bool   `mapstructure:"color"`
	WatchDebounceMS int    `mapstructure:"watch_debounce_ms"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("catalog", "puzzplan.toml")
	viper.SetDefault("history_db", "")
	viper.SetDefault("telemetry_path", "")
	viper.SetDefault("verbose", false)
	viper.SetDefault("color", true)
	viper.SetDefault("watch_debounce_ms", 100)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Catalog == "" {
		return Config{}, fmt.Errorf("config: catalog path must not be empty")
	}
	if cfg.WatchDebounceMS <= 0 {
		return Config{}, fmt.Errorf("config: watch_debounce_ms must be positive, got %d", cfg.WatchDebounceMS)
	}
	return cfg, nil
}
