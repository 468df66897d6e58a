// Package http builds the retryablehttp clients shared by the node, explorer,
// signature and label lookups, plus a small GET helper for JSON endpoints.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	// maxBodySize bounds how much of a response body GetBody reads.
	maxBodySize = 8 << 20

	// DefaultTimeout bounds a single request when WithTimeout is not given.
	DefaultTimeout = 10 * time.Second
)

// config holds the settings applied by NewClient.
type config struct {
	timeout      time.Duration // per-request timeout, retries excluded
	retryWaitMin time.Duration // shortest pause between transport retries
	retryWaitMax time.Duration // longest pause between transport retries
	retryMax     int           // transport retries after the first attempt
	userAgent    string        // User-Agent for requests that set none; empty keeps Go's default
}

// Option customizes a client built by NewClient. Options are applied in order.
type Option func(*config)

// WithTimeout bounds a single request, retries excluded. Values of zero or
// less are ignored.
//
// Default: DefaultTimeout (10 seconds).
//
// Example:
//
//	client := http.NewClient(http.WithTimeout(5 * time.Second))
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRetries enables transport-level retries of 5xx and connection errors.
// Up to n retries follow the first attempt, with pauses growing from waitMin
// to waitMax. Without it every request is tried once and callers apply their
// own retry policy.
//
// Default: 0 retries, pauses of 1 to 5 seconds once enabled.
//
// Example:
//
//	client := http.NewClient(http.WithRetries(2, 500*time.Millisecond, 2*time.Second))
func WithRetries(n int, waitMin, waitMax time.Duration) Option {
	return func(c *config) {
		c.retryMax = n
		c.retryWaitMin = waitMin
		c.retryWaitMax = waitMax
	}
}

// WithUserAgent sets the User-Agent header of every request that has none.
// Requests carrying their own header keep it.
//
// Default: Go's net/http User-Agent.
//
// Example:
//
//	client := http.NewClient(http.WithUserAgent("chainsentry/1.0.0"))
func WithUserAgent(ua string) Option {
	return func(c *config) {
		c.userAgent = ua
	}
}

// userAgentTransport fills in the User-Agent header before delegating to next.
type userAgentTransport struct {
	next      http.RoundTripper
	userAgent string
}

// RoundTrip implements http.RoundTripper.
func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.next.RoundTrip(req)
	}

	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.userAgent)
	return t.next.RoundTrip(req)
}

// NewClient returns a retryablehttp.Client that does not retry unless
// WithRetries is given. Once retries run out the last response is handed back
// instead of an error so callers can read provider error payloads.
//
// Default configuration:
//   - timeout:    DefaultTimeout
//   - retries:    0
//   - user agent: Go's default
//
// The retryablehttp logger is disabled.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      DefaultTimeout,
		retryWaitMin: time.Second,
		retryWaitMax: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.RetryMax = cfg.retryMax
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.HTTPClient.Timeout = cfg.timeout

	if cfg.userAgent != "" {
		next := client.HTTPClient.Transport
		if next == nil {
			next = http.DefaultTransport
		}
		client.HTTPClient.Transport = &userAgentTransport{next: next, userAgent: cfg.userAgent}
	}

	return client
}

// GetBody issues a GET to rawURL and returns the body with the status code.
// Non-2xx bodies are returned as well; only transport failures are errors.
func GetBody(ctx context.Context, client *retryablehttp.Client, rawURL string) ([]byte, int, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json, text/plain")

	res, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		return nil, res.StatusCode, fmt.Errorf("reading response body: %w", err)
	}

	return body, res.StatusCode, nil
}
