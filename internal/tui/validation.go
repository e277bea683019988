package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validation error messages
var (
	ErrRequired    = errors.New("this field is required")
	ErrInvalidSite = errors.New("site URL must be a host or https URL")
)

// ValidateRequired ensures a string value is not empty
func ValidateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrRequired
	}
	return nil
}

// ValidateSiteURL accepts anything the manifest normalizer can turn into a
// URL: a bare host, a host with a path, or an https URL. Whitespace inside
// the value and other schemes are rejected.
func ValidateSiteURL(s string) error {
	if err := ValidateRequired(s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, " \t\n") {
		return ErrInvalidSite
	}
	if i := strings.Index(s, "://"); i >= 0 && s[:i] != "https" {
		return ErrInvalidSite
	}
	return nil
}

// ValidateDuration validates that a string can be parsed as a time.Duration
func ValidateDuration(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil // Empty is valid (will use default)
	}
	_, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration format (use: 30s, 5m, 1h): %w", err)
	}
	return nil
}
