// Package nasa talks to the Astronomy Picture of the Day REST endpoint.
package nasa

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cosmos-daily/internal/domain"
	"cosmos-daily/internal/usecases"
	"cosmos-daily/pkg/log"
)

const (
	DefaultEndpoint = "https://api.nasa.gov/planetary/apod"
	DemoKey         = "DEMO_KEY"

	defaultUserAgent = "cosmos-daily/0.1"
	maxBodyBytes     = 1 << 20
)

var _ usecases.RecordFetcher = (*Client)(nil)

// Client fetches APOD records. It performs exactly one GET per call and
// never retries.
type Client struct {
	endpoint  *url.URL
	apiKey    string
	http      *http.Client
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets a whole-request timeout on the HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// NewClient builds a Client for endpoint, authenticating with apiKey.
// Empty values fall back to the public endpoint and the demo key.
func NewClient(endpoint, apiKey string, opts ...Option) (*Client, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse apod endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse apod endpoint %q: unsupported scheme", endpoint)
	}

	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		apiKey = DemoKey
	}

	c := &Client{
		endpoint:  u,
		apiKey:    apiKey,
		http:      &http.Client{},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// RequestURL returns the full request URL, including the api_key parameter.
func (c *Client) RequestURL() string {
	u := *c.endpoint
	q := u.Query()
	q.Set("api_key", c.apiKey)
	u.RawQuery = q.Encode()
	return u.String()
}

// FetchAPOD retrieves and decodes today's record.
//
// Errors are one of:
//   - *domain.StatusError for a non-2xx response,
//   - the underlying network error (without the request URL, which
//     carries the API key),
//   - a decode error, wrapping domain.ErrInvalidRecord for shape mismatches.
func (c *Client) FetchAPOD(ctx context.Context) (*domain.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.RequestURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return nil, urlErr.Err
		}
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	log.GlobalDebugCtx(ctx, "apod response received",
		"status", resp.StatusCode,
		"latency_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.StatusError{Code: resp.StatusCode}
	}

	return Decode(io.LimitReader(resp.Body, maxBodyBytes))
}
