package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Config is the complete SiteView configuration
type Config struct {
	Fetch   FetchConfig   `mapstructure:"fetch" yaml:"fetch"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// FetchConfig controls the manifest request
type FetchConfig struct {
	// Timeout of 0 leaves the transport default in place
	Timeout            time.Duration `mapstructure:"timeout" yaml:"timeout"`
	ProxyURL           string        `mapstructure:"proxy_url" yaml:"proxy_url"`
	InsecureSkipVerify bool          `mapstructure:"insecure_skip_verify" yaml:"insecure_skip_verify"`
	MaxBodySize        string        `mapstructure:"max_body_size" yaml:"max_body_size"`
}

// DisplayConfig controls how a manifest is printed
type DisplayConfig struct {
	Format     string `mapstructure:"format" yaml:"format"`
	DateLayout string `mapstructure:"date_layout" yaml:"date_layout"`
}

// LoggingConfig controls log output
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate fills in defaults for unset values and rejects invalid ones
func (c *Config) Validate() error {
	if c.Fetch.Timeout < 0 {
		c.Fetch.Timeout = DefaultFetchTimeout
	}
	if c.Fetch.MaxBodySize == "" {
		c.Fetch.MaxBodySize = DefaultMaxBodySize
	} else if n, err := ParseSize(c.Fetch.MaxBodySize); err != nil {
		return fmt.Errorf("invalid fetch.max_body_size: %w", err)
	} else if n == 0 {
		return fmt.Errorf("invalid fetch.max_body_size: must be greater than zero")
	}

	c.Display.Format = strings.ToLower(strings.TrimSpace(c.Display.Format))
	if c.Display.Format == "" {
		c.Display.Format = DefaultDisplayFormat
	}
	if !IsValidFormat(c.Display.Format) {
		return fmt.Errorf("invalid display.format %q (use %s)", c.Display.Format, strings.Join(ValidFormats, ", "))
	}
	if c.Display.DateLayout == "" {
		c.Display.DateLayout = DefaultDateLayout
	}

	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}

// MaxBodyBytes returns fetch.max_body_size in bytes
func (f FetchConfig) MaxBodyBytes() int64 {
	n, err := ParseSize(f.MaxBodySize)
	if err != nil || n == 0 {
		n, _ = ParseSize(DefaultMaxBodySize)
	}
	return n
}

// IsValidFormat reports whether format is a known display format
func IsValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// ParseSize parses sizes such as "512KB", "10MB" or "1024"
func ParseSize(s string) (int64, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty size string")
	}

	var multiplier int64 = 1
	switch {
	case strings.HasSuffix(s, "GB"):
		multiplier = 1 << 30
		s = strings.TrimSuffix(s, "GB")
	case strings.HasSuffix(s, "MB"):
		multiplier = 1 << 20
		s = strings.TrimSuffix(s, "MB")
	case strings.HasSuffix(s, "KB"):
		multiplier = 1 << 10
		s = strings.TrimSuffix(s, "KB")
	case strings.HasSuffix(s, "B"):
		s = strings.TrimSuffix(s, "B")
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("no numeric value in size string")
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric value: %w", err)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative size not allowed")
	}
	if n > math.MaxInt64/multiplier {
		return 0, fmt.Errorf("size too large")
	}

	return n * multiplier, nil
}
