package bento

import (
	"fmt"
	"net/http"
	"os"

	"github.com/google/uuid"

	"github.com/bentonow/bento-go/internal/api"
)

// Version is the current SDK version, reported in the User-Agent header.
const Version = "0.1.0"

// Environment variables read by NewFromEnv.
const (
	EnvPublishableKey = "BENTO_PUBLISHABLE_KEY"
	EnvSecretKey      = "BENTO_SECRET_KEY"
	EnvSiteUUID       = "BENTO_SITE_UUID"
	EnvBaseURL        = "BENTO_API_URL"
)

// Client is a Bento API client. Credentials are fixed at construction and
// the client is safe for concurrent use; multiple independently configured
// clients can coexist in one process.
type Client struct {
	apiClient *api.Client
	siteUUID  string
}

// New creates a client for the given site credentials.
//
// The publishable key and secret key are sent as HTTP basic auth on every
// request; the site UUID is attached as a query parameter. Construction
// fails with ErrInvalidConfig if any credential is missing or the site
// UUID is malformed.
func New(publishableKey, secretKey, siteUUID string, opts ...Option) (*Client, error) {
	if publishableKey == "" {
		return nil, fmt.Errorf("%w: publishable key is required", ErrInvalidConfig)
	}
	if secretKey == "" {
		return nil, fmt.Errorf("%w: secret key is required", ErrInvalidConfig)
	}
	if siteUUID == "" {
		return nil, fmt.Errorf("%w: site UUID is required", ErrInvalidConfig)
	}
	if _, err := uuid.Parse(siteUUID); err != nil {
		return nil, fmt.Errorf("%w: malformed site UUID %q", ErrInvalidConfig, siteUUID)
	}

	cfg := &clientConfig{
		baseURL: defaultBaseURL,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	retry := api.DefaultRetryConfig()
	if cfg.retries > 0 {
		retry.MaxRetries = cfg.retries
	}
	if len(cfg.retryOn) > 0 {
		retry.RetryableOn = api.RetryOnStatusCodes(cfg.retryOn)
	}
	if cfg.retryBaseDelay > 0 {
		retry.BaseDelay = cfg.retryBaseDelay
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.timeout}
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:        cfg.baseURL,
		PublishableKey: publishableKey,
		SecretKey:      secretKey,
		SiteUUID:       siteUUID,
		UserAgent:      fmt.Sprintf("bento-go-%s-%s", Version, siteUUID),
		HTTPClient:     httpClient,
		Retry:          retry,
		Logger:         cfg.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &Client{
		apiClient: apiClient,
		siteUUID:  siteUUID,
	}, nil
}

// NewFromEnv creates a client from the BENTO_PUBLISHABLE_KEY,
// BENTO_SECRET_KEY, and BENTO_SITE_UUID environment variables, with
// BENTO_API_URL optionally overriding the base URL. Explicit options take
// precedence over the environment.
func NewFromEnv(opts ...Option) (*Client, error) {
	if baseURL := os.Getenv(EnvBaseURL); baseURL != "" {
		opts = append([]Option{WithBaseURL(baseURL)}, opts...)
	}
	return New(
		os.Getenv(EnvPublishableKey),
		os.Getenv(EnvSecretKey),
		os.Getenv(EnvSiteUUID),
		opts...,
	)
}

// SiteUUID returns the site UUID the client was configured with.
func (c *Client) SiteUUID() string {
	return c.siteUUID
}
