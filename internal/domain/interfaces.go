package domain

import (
	"context"
	"net/http"
)

//go:generate mockgen -destination=../mocks/mock_fetcher.go -package=mocks github.com/quantmind-br/siteview/internal/domain Fetcher

// Fetcher performs a single HTTP GET
type Fetcher interface {
	// Get fetches the URL. A response with a non-success status is
	// returned as a Response, not an error.
	Get(ctx context.Context, url string) (*Response, error)
	// Close releases resources
	Close() error
}

// Response represents an HTTP response
type Response struct {
	StatusCode  int
	Body        []byte
	Headers     http.Header
	ContentType string
	URL         string
}

// OK reports whether the status code is in the 2xx range.
func (r *Response) OK() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}
