package bento

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const testSiteUUID = "6125f8be-282d-40b7-bd7c-0944d5988955"

// newTestClient builds a client against a mock server with millisecond
// backoff so retry tests stay fast.
func newTestClient(t *testing.T, baseURL string, opts ...Option) *Client {
	t.Helper()

	opts = append([]Option{
		WithBaseURL(baseURL),
		WithRetryBaseDelay(time.Millisecond),
	}, opts...)

	client, err := New("pub-key", "secret-key", testSiteUUID, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

// newCountingServer returns a server that always responds with the given
// status and body, and a counter of requests it received.
func newCountingServer(t *testing.T, statusCode int, body string) (*httptest.Server, *int) {
	t.Helper()

	count := new(int)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*count++
		w.WriteHeader(statusCode)
		if body != "" {
			w.Write([]byte(body))
		}
	}))
	t.Cleanup(server.Close)
	return server, count
}

func TestNew_RequiresCredentials(t *testing.T) {
	tests := []struct {
		name           string
		publishableKey string
		secretKey      string
		siteUUID       string
	}{
		{"missing publishable key", "", "secret", testSiteUUID},
		{"missing secret key", "pub", "", testSiteUUID},
		{"missing site UUID", "pub", "secret", ""},
		{"malformed site UUID", "pub", "secret", "not-a-uuid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.publishableKey, tt.secretKey, tt.siteUUID)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	client, err := New("pub-key", "secret-key", testSiteUUID)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.SiteUUID() != testSiteUUID {
		t.Errorf("SiteUUID() = %s, want %s", client.SiteUUID(), testSiteUUID)
	}
}

func TestNew_MultipleClientsCoexist(t *testing.T) {
	first, err := New("pub-a", "secret-a", testSiteUUID)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	second, err := New("pub-b", "secret-b", "7f3e1c2a-8b4d-4f6e-9a0b-1c2d3e4f5a6b")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if first.SiteUUID() == second.SiteUUID() {
		t.Error("clients share a site UUID, want independent configuration")
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv(EnvPublishableKey, "pub-key")
	t.Setenv(EnvSecretKey, "secret-key")
	t.Setenv(EnvSiteUUID, testSiteUUID)
	t.Setenv(EnvBaseURL, "https://staging.example.com/api/v1")

	client, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv() error = %v", err)
	}
	if client.SiteUUID() != testSiteUUID {
		t.Errorf("SiteUUID() = %s, want %s", client.SiteUUID(), testSiteUUID)
	}
}

func TestNewFromEnv_MissingCredentials(t *testing.T) {
	t.Setenv(EnvPublishableKey, "")
	t.Setenv(EnvSecretKey, "")
	t.Setenv(EnvSiteUUID, "")

	_, err := NewFromEnv()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}
}

func TestNewFromEnv_OptionsOverrideEnv(t *testing.T) {
	t.Setenv(EnvPublishableKey, "pub-key")
	t.Setenv(EnvSecretKey, "secret-key")
	t.Setenv(EnvSiteUUID, testSiteUUID)
	t.Setenv(EnvBaseURL, "https://env.example.com")

	// Explicit option wins over BENTO_API_URL.
	client, err := NewFromEnv(WithBaseURL("https://explicit.example.com"))
	if err != nil {
		t.Fatalf("NewFromEnv() error = %v", err)
	}
	_ = client
}
