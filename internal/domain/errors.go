package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors
var (
	// ErrNoDocument indicates no manifest is currently held
	ErrNoDocument = errors.New("no manifest loaded")

	// ErrInvalidManifest indicates the manifest does not have the required shape
	ErrInvalidManifest = errors.New("invalid manifest")

	// ErrBodyTooLarge indicates the response body exceeded the configured limit
	ErrBodyTooLarge = errors.New("response body too large")
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// FetchError represents a transport failure: the request never produced
// an HTTP response.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch error for %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a new FetchError
func NewFetchError(url string, err error) *FetchError {
	return &FetchError{
		URL: url,
		Err: err,
	}
}

// HTTPError represents a response with a non-success status code
type HTTPError struct {
	URL        string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error for %s: status %d", e.URL, e.StatusCode)
}

// NewHTTPError creates a new HTTPError
func NewHTTPError(url string, statusCode int) *HTTPError {
	return &HTTPError{
		URL:        url,
		StatusCode: statusCode,
	}
}

// ParseError represents a response body that is not valid JSON
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("parse error: %v", e.Err)
	}
	return fmt.Sprintf("parse error for %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(url string, err error) *ParseError {
	return &ParseError{
		URL: url,
		Err: err,
	}
}

// SchemaError represents parsed JSON that lacks required manifest keys
// or carries them with the wrong type.
type SchemaError struct {
	URL     string
	Missing []string
	Err     error
}

func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("schema error")
	if e.URL != "" {
		b.WriteString(" for ")
		b.WriteString(e.URL)
	}
	if len(e.Missing) > 0 {
		b.WriteString(": missing ")
		b.WriteString(strings.Join(e.Missing, ", "))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the underlying decode error and ErrInvalidManifest.
func (e *SchemaError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidManifest, e.Err}
	}
	return []error{ErrInvalidManifest}
}

// NewSchemaError creates a new SchemaError
func NewSchemaError(url string, missing []string, err error) *SchemaError {
	return &SchemaError{
		URL:     url,
		Missing: missing,
		Err:     err,
	}
}

// IsManifestError reports whether err is one of the errors a manifest
// fetch can fail with.
func IsManifestError(err error) bool {
	var (
		validationErr *ValidationError
		fetchErr      *FetchError
		httpErr       *HTTPError
		parseErr      *ParseError
		schemaErr     *SchemaError
	)
	return errors.As(err, &validationErr) ||
		errors.As(err, &fetchErr) ||
		errors.As(err, &httpErr) ||
		errors.As(err, &parseErr) ||
		errors.As(err, &schemaErr)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}
