package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Default transport settings.
const (
	DefaultTimeout = 30 * time.Second
)

// Config configures the API client.
type Config struct {
	BaseURL        string
	PublishableKey string
	SecretKey      string
	SiteUUID       string
	UserAgent      string
	HTTPClient     *http.Client
	Retry          *RetryConfig
	Logger         *zap.Logger
}

// Client is the HTTP client for the Bento API. Every call attaches the
// site credentials; Do layers retry with backoff on top of single round
// trips. A Client is safe for concurrent use.
type Client struct {
	baseURL    string
	authHeader string
	siteUUID   string
	userAgent  string
	httpClient *http.Client
	retry      *RetryConfig
	logger     *zap.Logger
}

// NewClient creates a new API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if cfg.PublishableKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("API credentials are required")
	}
	if cfg.SiteUUID == "" {
		return nil, fmt.Errorf("site UUID is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	retry := cfg.Retry
	if retry == nil {
		retry = DefaultRetryConfig()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	creds := cfg.PublishableKey + ":" + cfg.SecretKey
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		authHeader: "Basic " + base64.StdEncoding.EncodeToString([]byte(creds)),
		siteUUID:   cfg.SiteUUID,
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
		retry:      retry,
		logger:     logger,
	}, nil
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SiteUUID returns the configured site UUID.
func (c *Client) SiteUUID() string {
	return c.siteUUID
}

// Do performs an HTTP request with retry on rate-limit and transient
// failures, decoding a 2xx response body into result when non-nil.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, result interface{}) error {
	return c.execute(ctx, method, path, query, body, result, c.retry.MaxRetries)
}

// DoOnce performs an HTTP request with no retries. It is used for
// operations whose idempotence the API does not guarantee, such as
// transactional email sends.
func (c *Client) DoOnce(ctx context.Context, method, path string, query url.Values, body, result interface{}) error {
	return c.execute(ctx, method, path, query, body, result, 0)
}

func (c *Client) execute(ctx context.Context, method, path string, query url.Values, body, result interface{}, maxRetries int) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = data
	}

	u := c.buildURL(path, query)

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Warn("retrying request",
				zap.String("method", method),
				zap.String("path", path),
				zap.Int("attempt", attempt),
				zap.Error(lastErr))
			if err := c.retry.Wait(ctx, attempt-1); err != nil {
				return err
			}
		}

		final, err := c.roundTrip(ctx, method, u, payload, result, attempt)
		if final || err == nil {
			return err
		}
		lastErr = err
	}

	c.logger.Error("request failed after retries",
		zap.String("method", method),
		zap.String("path", path),
		zap.Error(lastErr))
	return lastErr
}

// roundTrip performs exactly one network round trip. It reports whether the
// outcome is final; a non-final error is a candidate for retry.
func (c *Client) roundTrip(ctx context.Context, method, url string, payload []byte, result interface{}, attempt int) (bool, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return true, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug("api request", zap.String("method", method), zap.String("url", url))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, &NetworkError{Err: err, URL: url, Attempt: attempt}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if result == nil {
			io.Copy(io.Discard, resp.Body)
			return true, nil
		}
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			if errors.Is(err, io.EOF) {
				// Empty 2xx body; leave result at its zero value.
				return true, nil
			}
			return true, &DecodeError{Err: err}
		}
		return true, nil
	}

	apiErr := parseErrorResponse(resp)
	if c.retry.RetryableOn(resp.StatusCode) {
		return false, apiErr
	}

	c.logger.Error("api request failed",
		zap.Int("status", resp.StatusCode),
		zap.String("message", apiErr.Message))
	return true, apiErr
}

// buildURL joins the base URL with path and appends the site_uuid
// parameter required on every call.
func (c *Client) buildURL(path string, query url.Values) string {
	if query == nil {
		query = url.Values{}
	}
	query.Set("site_uuid", c.siteUUID)
	return c.baseURL + "/" + strings.TrimLeft(path, "/") + "?" + query.Encode()
}

func parseErrorResponse(resp *http.Response) *APIError {
	body, _ := io.ReadAll(resp.Body)

	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
		}
		if errResp.Message != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: errResp.Message}
		}
	}

	return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
}
