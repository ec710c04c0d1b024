// Package config manages miniasm's own tool settings, distinct from the
// source program's meta section (which parser.Config handles). These are
// read from a TOML file in the user's config directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds the assembler CLI's own settings.
type Config struct {
	// Output settings
	Output struct {
		DefaultMode string `toml:"default_mode"` // "file" or "stdout"
		ColorOutput bool   `toml:"color_output"`
		HexBytesPerLine int `toml:"hex_bytes_per_line"`
	} `toml:"output"`

	// API server settings
	API struct {
		Port        int  `toml:"port"`
		EnableTrace bool `toml:"enable_trace"`
	} `toml:"api"`

	// Viewer settings
	Viewer struct {
		HistorySize   int  `toml:"history_size"`
		ShowSource    bool `toml:"show_source"`
		ShowSymbols   bool `toml:"show_symbols"`
	} `toml:"viewer"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Output.DefaultMode = "file"
	cfg.Output.ColorOutput = true
	cfg.Output.HexBytesPerLine = 16

	cfg.API.Port = 8080
	cfg.API.EnableTrace = true

	cfg.Viewer.HistorySize = 1000
	cfg.Viewer.ShowSource = true
	cfg.Viewer.ShowSymbols = true

	return cfg
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "miniasm")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "miniasm")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
