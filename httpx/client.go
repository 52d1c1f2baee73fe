// Package httpx provides the blocking HTTP client the pipeline uses
// for YouTube Data API round trips: one request, one fully-read
// response, token-bucket pacing, and structured status errors. There
// is no retry and no backoff; any failure surfaces immediately.
package httpx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"
)

// Config holds HTTP client configuration.
type Config struct {
	// Timeout for individual HTTP requests. Zero means no timeout;
	// a call then blocks until the transport gives up or the context
	// is cancelled.
	Timeout time.Duration

	// UserAgent for HTTP requests.
	UserAgent string

	// RequestsPerSecond paces outgoing requests with a token bucket.
	// Zero means unlimited.
	RequestsPerSecond float64

	// Burst is the token bucket size. Defaults to 1 when pacing is
	// enabled.
	Burst int
}

// DefaultConfig returns sensible defaults for HTTP client configuration.
func DefaultConfig() *Config {
	return &Config{
		Timeout:           0,
		UserAgent:         "ytsum/1.0",
		RequestsPerSecond: 5,
		Burst:             1,
	}
}

// Client wraps an HTTP client with request pacing and Data API error
// decoding.
type Client struct {
	base      *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// New creates a new HTTP client with the given configuration.
// A nil configuration selects DefaultConfig.
func New(cfg *Config) *Client {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &Client{
		base:      &http.Client{Timeout: cfg.Timeout},
		limiter:   limiter,
		userAgent: cfg.UserAgent,
	}
}

// Response represents a fully-read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Get performs a GET request and reads the whole response body.
// Non-2xx responses are converted with googleapi.CheckResponse, so a
// Data API error body surfaces as a *googleapi.Error carrying the
// status code and the API's message.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if apiErr := googleapi.CheckResponse(resp); apiErr != nil {
			return nil, apiErr
		}
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// Close releases idle connections held by the underlying transport.
func (c *Client) Close() error {
	c.base.CloseIdleConnections()
	return nil
}
