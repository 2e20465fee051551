// Package config loads and saves the application configuration as YAML,
// mirroring the shape of ~/.config/crm-workspace/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DatabaseConfig holds settings for the fixture store.
type DatabaseConfig struct {
	// Path is the SQLite DSN. The default ":memory:" keeps the demo
	// stateless between runs.
	Path string `mapstructure:"path" yaml:"path"`
}

// WorkflowConfig holds settings for the workflow approval flow.
type WorkflowConfig struct {
	// Reviewer is the name of the fixed identity review requests go to.
	Reviewer string `mapstructure:"reviewer" yaml:"reviewer"`

	// NotifyBannerSec is how long review/approval banners stay up.
	NotifyBannerSec int `mapstructure:"notify_banner_sec" yaml:"notify_banner_sec"`

	// AssignBannerSec is how long reassignment banners stay up.
	AssignBannerSec int `mapstructure:"assign_banner_sec" yaml:"assign_banner_sec"`
}

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	Theme string `mapstructure:"theme" yaml:"theme"`

	// DefaultUser is the user the session starts as.
	DefaultUser string `mapstructure:"default_user" yaml:"default_user"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Workflow WorkflowConfig `mapstructure:"workflow" yaml:"workflow"`
	Display  DisplayConfig  `mapstructure:"display" yaml:"display"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/crm-workspace/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "crm-workspace", "config.yaml")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Database: DatabaseConfig{Path: ":memory:"},
		Workflow: WorkflowConfig{
			Reviewer:        "Alex Schiller",
			NotifyBannerSec: 5,
			AssignBannerSec: 3,
		},
		Display: DisplayConfig{
			Theme:       "default",
			DefaultUser: "Kalista Joy",
		},
	}
}

// Load reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("database.path", ":memory:")
	v.SetDefault("workflow.reviewer", "Alex Schiller")
	v.SetDefault("workflow.notify_banner_sec", 5)
	v.SetDefault("workflow.assign_banner_sec", 3)
	v.SetDefault("display.theme", "default")
	v.SetDefault("display.default_user", "Kalista Joy")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func Save(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("database", cfg.Database)
	v.Set("workflow", cfg.Workflow)
	v.Set("display", cfg.Display)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
