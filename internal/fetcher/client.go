package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
	"github.com/quantmind-br/siteview/internal/domain"
)

// DefaultMaxBodyBytes caps the manifest body size
const DefaultMaxBodyBytes int64 = 10 << 20

// Client is an HTTP client using tls-client. It issues one GET per call,
// adds no headers of its own and never retries.
type Client struct {
	tlsClient    tls_client.HttpClient
	maxBodyBytes int64
}

// ClientOptions contains options for creating a Client
type ClientOptions struct {
	// Timeout bounds a whole request. Zero keeps the transport default.
	Timeout            time.Duration
	ProxyURL           string
	InsecureSkipVerify bool
	MaxBodyBytes       int64
}

// DefaultClientOptions returns default client options
func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		Timeout:      0,
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
}

// NewClient creates a new HTTP client
func NewClient(opts ClientOptions) (*Client, error) {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}

	tlsOpts := []tls_client.HttpClientOption{
		tls_client.WithClientProfile(profiles.Chrome_131),
	}

	if opts.Timeout > 0 {
		tlsOpts = append(tlsOpts, tls_client.WithTimeoutMilliseconds(int(opts.Timeout.Milliseconds())))
	}
	if opts.ProxyURL != "" {
		tlsOpts = append(tlsOpts, tls_client.WithProxyUrl(opts.ProxyURL))
	}
	if opts.InsecureSkipVerify {
		tlsOpts = append(tlsOpts, tls_client.WithInsecureSkipVerify())
	}

	tlsClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), tlsOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tls client: %w", err)
	}

	return &Client{
		tlsClient:    tlsClient,
		maxBodyBytes: opts.MaxBodyBytes,
	}, nil
}

// Get fetches the URL. Responses of any status are returned; only
// transport failures are errors.
func (c *Client) Get(ctx context.Context, url string) (*domain.Response, error) {
	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodGet, url, nil)
	if err != nil {
		return nil, domain.NewFetchError(url, fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := c.tlsClient.Do(req)
	if err != nil {
		return nil, domain.NewFetchError(url, fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		return nil, domain.NewFetchError(url, fmt.Errorf("failed to read response body: %w", err))
	}
	if int64(len(body)) > c.maxBodyBytes {
		return nil, domain.NewFetchError(url, fmt.Errorf("%w: limit %d bytes", domain.ErrBodyTooLarge, c.maxBodyBytes))
	}

	// fhttp.Header and http.Header share a layout but not a type
	headers := make(http.Header, len(resp.Header))
	for k, v := range resp.Header {
		headers[k] = v
	}

	return &domain.Response{
		StatusCode:  resp.StatusCode,
		Body:        body,
		Headers:     headers,
		ContentType: resp.Header.Get("Content-Type"),
		URL:         url,
	}, nil
}

// Close releases idle connections
func (c *Client) Close() error {
	c.tlsClient.CloseIdleConnections()
	return nil
}

var _ domain.Fetcher = (*Client)(nil)
