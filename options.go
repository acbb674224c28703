package bento

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://app.bentonow.com/api/v1"
	defaultTimeout = 30 * time.Second
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout        time.Duration
	retries        int
	retryOn        []int
	retryBaseDelay time.Duration
	logger         *zap.Logger
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. The client must be safe for
// concurrent use; its timeout takes precedence over WithTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout (connection plus read).
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithRetries sets the number of retries after the initial attempt for
// rate-limited and transient failures.
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.retries = count
	}
}

// WithRetryOn sets the HTTP status codes that trigger a retry.
// Default: [408, 429, 500, 502, 503, 504]
func WithRetryOn(statusCodes []int) Option {
	return func(c *clientConfig) {
		c.retryOn = statusCodes
	}
}

// WithRetryBaseDelay sets the initial delay between retry attempts. The
// delay doubles per attempt up to a fixed maximum.
func WithRetryBaseDelay(delay time.Duration) Option {
	return func(c *clientConfig) {
		c.retryBaseDelay = delay
	}
}

// WithLogger sets a structured logger for request, retry, and failure
// events. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
