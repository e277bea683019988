package config

import (
	"os"
	"path/filepath"
	"time"
)

// Display formats
const (
	FormatCard = "card"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidFormats lists the accepted display.format values
var ValidFormats = []string{FormatCard, FormatJSON, FormatYAML}

// Default values
const (
	// Fetch defaults
	DefaultFetchTimeout time.Duration = 0
	DefaultMaxBodySize                = "10MB"

	// Display defaults
	DefaultDisplayFormat = FormatCard
	DefaultDateLayout    = "2006-01-02"

	// Logging defaults
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "pretty"

	// EnvPrefix prefixes every environment override (SITEVIEW_FETCH_TIMEOUT, ...)
	EnvPrefix = "SITEVIEW"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".siteview"
	}
	return filepath.Join(home, ".siteview")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Fetch: FetchConfig{
			Timeout:     DefaultFetchTimeout,
			MaxBodySize: DefaultMaxBodySize,
		},
		Display: DisplayConfig{
			Format:     DefaultDisplayFormat,
			DateLayout: DefaultDateLayout,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
