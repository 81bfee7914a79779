// Package config provides configuration types and defaults for tuinput.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/zjrosen/tuinput/internal/log"
)

// Backend names accepted by the backend key and --backend flag.
const (
	BackendTea   = "tea"
	BackendTcell = "tcell"
)

// Config holds all configuration options for tuinput.
type Config struct {
	Backend   string      `mapstructure:"backend"`    // "tea" (default) or "tcell"
	StateFile string      `mapstructure:"state_file"` // snapshot restored on start and saved on exit
	Debug     bool        `mapstructure:"debug"`
	LogPath   string      `mapstructure:"log_path"`
	LogLevel  string      `mapstructure:"log_level"` // debug, info, warn or error
	Input     InputConfig `mapstructure:"input"`
	Theme     ThemeConfig `mapstructure:"theme"`
}

// InputConfig holds options for the interactive field.
type InputConfig struct {
	Width       int    `mapstructure:"width"`
	Placeholder string `mapstructure:"placeholder"`
	Prompt      string `mapstructure:"prompt"`
	CharLimit   int    `mapstructure:"char_limit"` // 0 means unlimited
}

// ThemeConfig holds color overrides. Colors are "#RGB", "#RRGGBB" or an
// ANSI palette index "0".."255". Empty values keep the defaults.
type ThemeConfig struct {
	Cursor      string `mapstructure:"cursor"`
	Placeholder string `mapstructure:"placeholder"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Backend:  BackendTea,
		LogPath:  "debug.log",
		LogLevel: "debug",
		Input: InputConfig{
			Width:       40,
			Placeholder: "Type something...",
			Prompt:      "> ",
		},
	}
}

// DefaultConfigPath returns the user-level config file location.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".tuinput", "config.yaml")
	}
	return filepath.Join(home, ".config", "tuinput", "config.yaml")
}

// Validate checks the configuration for errors.
// Zero values are valid and fall back to defaults.
func Validate(c Config) error {
	switch c.Backend {
	case "", BackendTea, BackendTcell:
	default:
		return fmt.Errorf("backend must be %q or %q, got %q", BackendTea, BackendTcell, c.Backend)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.Input.Width < 0 {
		return fmt.Errorf("input.width must not be negative, got %d", c.Input.Width)
	}
	if c.Input.CharLimit < 0 {
		return fmt.Errorf("input.char_limit must not be negative, got %d", c.Input.CharLimit)
	}
	if err := validateColor("theme.cursor", c.Theme.Cursor); err != nil {
		return err
	}
	return validateColor("theme.placeholder", c.Theme.Placeholder)
}

func validateColor(key, value string) error {
	if value == "" {
		return nil
	}
	if value[0] == '#' {
		hex := value[1:]
		if len(hex) != 3 && len(hex) != 6 {
			return fmt.Errorf("%s: invalid hex color %q", key, value)
		}
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return fmt.Errorf("%s: invalid hex color %q", key, value)
		}
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 || n > 255 {
		return fmt.Errorf("%s: color must be a hex value or ANSI index 0-255, got %q", key, value)
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# tuinput configuration

# Terminal backend: "tea" (Bubble Tea, default) or "tcell"
backend: tea

# Snapshot file restored on start and written on exit (optional).
# Files ending in .json are written as JSON, anything else as YAML.
# state_file: ~/.local/state/tuinput/field.yaml

# Debug logging (also enabled by --debug or TUINPUT_DEBUG=1)
debug: false
log_path: debug.log
log_level: debug                   # debug, info, warn or error

# Field settings
input:
  width: 40                        # text columns, excluding the prompt
  placeholder: "Type something..."
  prompt: "> "
  # char_limit: 0                  # 0 means unlimited

# Colors: "#RGB", "#RRGGBB" or an ANSI index 0-255
theme:
  # cursor: "#7D56F4"              # default is reverse video
  # placeholder: "240"
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
