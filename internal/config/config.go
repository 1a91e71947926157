// Package config loads weekcard settings from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Editor   EditorConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// EditorConfig holds editing-session settings.
type EditorConfig struct {
	Template        string
	ProfileID       string `mapstructure:"profile_id"`
	AutosaveDelayMS int    `mapstructure:"autosave_delay_ms"`
	TemplatesFile   string `mapstructure:"templates_file"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat    string `mapstructure:"date_format"`
	WeekStartsMon bool   `mapstructure:"week_starts_monday"`
	LogPath       string `mapstructure:"log_path"`
}

// Load reads configuration from file and env. Env var overrides use prefix WEEKCARD_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "weekcard", "weekcard.db"))
	v.SetDefault("editor.template", "stream-week")
	v.SetDefault("editor.profile_id", "")
	v.SetDefault("editor.autosave_delay_ms", 1000)
	v.SetDefault("editor.templates_file", filepath.Join(os.Getenv("HOME"), ".config", "weekcard", "templates.yaml"))
	v.SetDefault("ui.date_format", "01/02")
	v.SetDefault("ui.week_starts_monday", true)
	v.SetDefault("ui.log_path", filepath.Join(os.Getenv("HOME"), ".local", "share", "weekcard", "weekcard.log"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("WEEKCARD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "weekcard"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("WEEKCARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// EnsureProfileID fills in a fresh profile id the first time weekcard
// runs and persists it, so saved schedules stay attached to one profile
// across sessions.
func EnsureProfileID(cfg *Config) error {
	if cfg.Editor.ProfileID != "" {
		return nil
	}
	cfg.Editor.ProfileID = uuid.NewString()
	return Save(*cfg)
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("WEEKCARD_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "weekcard", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("editor.template", cfg.Editor.Template)
	v.Set("editor.profile_id", cfg.Editor.ProfileID)
	v.Set("editor.autosave_delay_ms", cfg.Editor.AutosaveDelayMS)
	v.Set("editor.templates_file", cfg.Editor.TemplatesFile)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("ui.week_starts_monday", cfg.UI.WeekStartsMon)
	v.Set("ui.log_path", cfg.UI.LogPath)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
