// Package config provides configuration management for Prisma.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/veldrin/prisma-cli/internal/domain"
)

// Config holds all configuration for the Prisma application.
type Config struct {
	DefaultMinutes int                `mapstructure:"default_minutes"`
	Mode           string             `mapstructure:"mode"`
	Presets        PresetConfig       `mapstructure:"presets"`
	Notifications  NotificationConfig `mapstructure:"notifications"`
	MCP            MCPConfig          `mapstructure:"mcp"`
	Storage        StorageConfig      `mapstructure:"storage"`
	Theme          ThemeConfig        `mapstructure:"theme"`
}

// PresetConfig holds the three named duration presets shown in Setup.
type PresetConfig struct {
	Preset1Name    string `mapstructure:"preset1_name"`
	Preset1Minutes int    `mapstructure:"preset1_minutes"`
	Preset2Name    string `mapstructure:"preset2_name"`
	Preset2Minutes int    `mapstructure:"preset2_minutes"`
	Preset3Name    string `mapstructure:"preset3_name"`
	Preset3Minutes int    `mapstructure:"preset3_minutes"`
}

// Preset represents a named session duration preset.
type Preset struct {
	Name    string
	Minutes int
}

// GetPresets returns the three session presets.
func (c *PresetConfig) GetPresets() []Preset {
	return []Preset{
		{Name: c.Preset1Name, Minutes: c.Preset1Minutes},
		{Name: c.Preset2Name, Minutes: c.Preset2Minutes},
		{Name: c.Preset3Name, Minutes: c.Preset3Minutes},
	}
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// MCPConfig holds MCP server settings.
type MCPConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// ThemeConfig holds theme customization settings.
type ThemeConfig struct {
	ColorFocus  string `mapstructure:"color_focus"`
	ColorFlow   string `mapstructure:"color_flow"`
	ColorBreak  string `mapstructure:"color_break"`
	ColorPaused string `mapstructure:"color_paused"`
	ColorTitle  string `mapstructure:"color_title"`
	ColorHelp   string `mapstructure:"color_help"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorFocus:  "#7C6FE0",
		ColorFlow:   "#F59E0B",
		ColorBreak:  "#4ECDC4",
		ColorPaused: "#6B7280",
		ColorTitle:  "#6B7280",
		ColorHelp:   "#95A5A6",
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultMinutes: domain.DefaultTargetMinutes,
		Mode:           string(domain.ModePrisma),
		Presets: PresetConfig{
			Preset1Name:    "Focus",
			Preset1Minutes: 25,
			Preset2Name:    "Short",
			Preset2Minutes: 15,
			Preset3Name:    "Deep",
			Preset3Minutes: 50,
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		MCP: MCPConfig{
			Enabled: true,
		},
		Storage: StorageConfig{
			DataDir: "~/.prisma",
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load loads the configuration from the config file, creating it with
// defaults on first run. Out-of-range values are clamped rather than
// rejected.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	setDefaults()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.DefaultMinutes = ClampMinutes(cfg.DefaultMinutes)
	if _, err := domain.ValidateMode(cfg.Mode); err != nil {
		cfg.Mode = string(domain.ModePrisma)
	}

	// Expand ~ in data directory
	if cfg.Storage.DataDir == "~/.prisma" || cfg.Storage.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.Storage.DataDir = filepath.Join(homeDir, ".prisma")
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	viper.Set("default_minutes", cfg.DefaultMinutes)
	viper.Set("mode", cfg.Mode)
	viper.Set("presets.preset1_name", cfg.Presets.Preset1Name)
	viper.Set("presets.preset1_minutes", cfg.Presets.Preset1Minutes)
	viper.Set("presets.preset2_name", cfg.Presets.Preset2Name)
	viper.Set("presets.preset2_minutes", cfg.Presets.Preset2Minutes)
	viper.Set("presets.preset3_name", cfg.Presets.Preset3Name)
	viper.Set("presets.preset3_minutes", cfg.Presets.Preset3Minutes)
	viper.Set("notifications.enabled", cfg.Notifications.Enabled)
	viper.Set("notifications.sound", cfg.Notifications.Sound)
	viper.Set("mcp.enabled", cfg.MCP.Enabled)
	viper.Set("storage.data_dir", cfg.Storage.DataDir)
	viper.Set("theme.color_focus", cfg.Theme.ColorFocus)
	viper.Set("theme.color_flow", cfg.Theme.ColorFlow)
	viper.Set("theme.color_break", cfg.Theme.ColorBreak)
	viper.Set("theme.color_paused", cfg.Theme.ColorPaused)
	viper.Set("theme.color_title", cfg.Theme.ColorTitle)
	viper.Set("theme.color_help", cfg.Theme.ColorHelp)

	return viper.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".prisma", "config.toml"), nil
}

// GetDBPath returns the path to the database file.
func GetDBPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "prisma.db")
}

// ClampMinutes forces a minute value into the valid [1, 120] range.
func ClampMinutes(minutes int) int {
	if minutes < 1 {
		return 1
	}
	if minutes > 120 {
		return 120
	}
	return minutes
}

// setDefaults sets default values for viper.
func setDefaults() {
	defaults := DefaultConfig()
	viper.SetDefault("default_minutes", defaults.DefaultMinutes)
	viper.SetDefault("mode", defaults.Mode)
	viper.SetDefault("presets.preset1_name", defaults.Presets.Preset1Name)
	viper.SetDefault("presets.preset1_minutes", defaults.Presets.Preset1Minutes)
	viper.SetDefault("presets.preset2_name", defaults.Presets.Preset2Name)
	viper.SetDefault("presets.preset2_minutes", defaults.Presets.Preset2Minutes)
	viper.SetDefault("presets.preset3_name", defaults.Presets.Preset3Name)
	viper.SetDefault("presets.preset3_minutes", defaults.Presets.Preset3Minutes)
	viper.SetDefault("notifications.enabled", defaults.Notifications.Enabled)
	viper.SetDefault("notifications.sound", defaults.Notifications.Sound)
	viper.SetDefault("mcp.enabled", defaults.MCP.Enabled)
	viper.SetDefault("storage.data_dir", "~/.prisma")
	viper.SetDefault("theme.color_focus", defaults.Theme.ColorFocus)
	viper.SetDefault("theme.color_flow", defaults.Theme.ColorFlow)
	viper.SetDefault("theme.color_break", defaults.Theme.ColorBreak)
	viper.SetDefault("theme.color_paused", defaults.Theme.ColorPaused)
	viper.SetDefault("theme.color_title", defaults.Theme.ColorTitle)
	viper.SetDefault("theme.color_help", defaults.Theme.ColorHelp)
}
