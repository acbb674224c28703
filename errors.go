package bento

import (
	"errors"
	"fmt"

	"github.com/bentonow/bento-go/internal/api"
)

// Sentinel errors for errors.Is() checks. Together they form the closed
// error taxonomy of the SDK: every failure an operation returns matches
// exactly one of these.
var (
	// ErrInvalidConfig is returned when credentials are missing or malformed
	// at construction.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidEmail is returned when an email address fails the structural
	// check performed before dispatch.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidIPAddress is returned when a value is not an IPv4 or IPv6
	// literal.
	ErrInvalidIPAddress = errors.New("invalid IP address")

	// ErrInvalidRequest is returned for client-side required-parameter
	// failures and for server-reported 4xx responses.
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrUnexpectedResponse is returned when a 2xx response body does not
	// match the expected shape, or when a batch is partially rejected.
	ErrUnexpectedResponse = errors.New("unexpected API response")

	// ErrInvalidName is returned when a required name is empty.
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidSegmentID is returned when a required segment ID is empty.
	ErrInvalidSegmentID = errors.New("invalid segment ID")

	// ErrInvalidContent is returned when required content is empty.
	ErrInvalidContent = errors.New("invalid content")

	// ErrInvalidTags is returned when a required tag value is empty.
	ErrInvalidTags = errors.New("invalid tags")

	// ErrInvalidBatchSize is returned when a batch bound is violated.
	ErrInvalidBatchSize = errors.New("invalid batch size")

	// ErrRateLimited is returned when the API rate limit is still exceeded
	// after the retry budget has been spent.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrAuthenticationFailed is returned when the API rejects the
	// credentials (HTTP 401 or 403).
	ErrAuthenticationFailed = errors.New("authentication failed")
)

// BentoError is implemented by all SDK errors.
type BentoError interface {
	error
	BentoError() // marker method
}

// ValidationError reports a client-side validation failure. It is returned
// before any network call is attempted.
type ValidationError struct {
	Kind  error  // one of the Err* sentinels
	Value string // the offending value, if applicable
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%v: %q", e.Kind, e.Value)
	}
	return e.Kind.Error()
}

// Is implements errors.Is for sentinel error matching.
func (e *ValidationError) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the sentinel kind.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// BentoError implements the BentoError interface.
func (e *ValidationError) BentoError() {}

// APIError represents an HTTP error response from the Bento API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch {
	case e.StatusCode == 401 || e.StatusCode == 403:
		return target == ErrAuthenticationFailed
	case e.StatusCode == 429:
		return target == ErrRateLimited
	case e.StatusCode >= 400 && e.StatusCode < 500:
		return target == ErrInvalidRequest
	}
	return false
}

// BentoError implements the BentoError interface.
func (e *APIError) BentoError() {}

// NetworkError represents a network-level transport failure.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// BentoError implements the BentoError interface.
func (e *NetworkError) BentoError() {}

// UnexpectedResponseError indicates a 2xx response whose body did not match
// the expected shape.
type UnexpectedResponseError struct {
	Err error
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("unexpected API response: %v", e.Err)
}

// Is implements errors.Is for sentinel error matching.
func (e *UnexpectedResponseError) Is(target error) bool {
	return target == ErrUnexpectedResponse
}

// Unwrap returns the underlying error.
func (e *UnexpectedResponseError) Unwrap() error {
	return e.Err
}

// BentoError implements the BentoError interface.
func (e *UnexpectedResponseError) BentoError() {}

// PartialFailureError is returned when the API accepts only part of a
// batch. The SDK reports the whole batch as failed rather than guessing
// which items were rejected; the counts come from the server response.
type PartialFailureError struct {
	Succeeded int
	Failed    int
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("batch partially failed: %d succeeded, %d failed", e.Succeeded, e.Failed)
}

// Is implements errors.Is for sentinel error matching.
func (e *PartialFailureError) Is(target error) bool {
	return target == ErrUnexpectedResponse
}

// BentoError implements the BentoError interface.
func (e *PartialFailureError) BentoError() {}

// wrapError converts internal transport errors to public errors so that
// errors.Is() checks work with the public sentinels.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err:     netErr.Err,
			URL:     netErr.URL,
			Attempt: netErr.Attempt,
		}
	}

	var decErr *api.DecodeError
	if errors.As(err, &decErr) {
		return &UnexpectedResponseError{Err: decErr.Err}
	}

	return err
}
