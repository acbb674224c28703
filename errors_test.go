package bento

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bentonow/bento-go/internal/api"
)

func TestValidationError_Is(t *testing.T) {
	err := &ValidationError{Kind: ErrInvalidEmail, Value: "nope"}

	if !errors.Is(err, ErrInvalidEmail) {
		t.Error("errors.Is(err, ErrInvalidEmail) = false")
	}
	if errors.Is(err, ErrInvalidIPAddress) {
		t.Error("errors.Is(err, ErrInvalidIPAddress) = true, want false")
	}
	if !strings.Contains(err.Error(), `"nope"`) {
		t.Errorf("Error() = %q, want offending value included", err.Error())
	}
}

func TestValidationError_NoValue(t *testing.T) {
	err := &ValidationError{Kind: ErrInvalidBatchSize}
	if err.Error() != ErrInvalidBatchSize.Error() {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestAPIError_SentinelMapping(t *testing.T) {
	tests := []struct {
		statusCode int
		target     error
		want       bool
	}{
		{401, ErrAuthenticationFailed, true},
		{403, ErrAuthenticationFailed, true},
		{429, ErrRateLimited, true},
		{404, ErrInvalidRequest, true},
		{422, ErrInvalidRequest, true},
		{429, ErrInvalidRequest, false},
		{500, ErrInvalidRequest, false},
	}

	for _, tt := range tests {
		err := &APIError{StatusCode: tt.statusCode, Message: "m"}
		if got := errors.Is(err, tt.target); got != tt.want {
			t.Errorf("errors.Is(APIError{%d}, %v) = %v, want %v", tt.statusCode, tt.target, got, tt.want)
		}
	}
}

func TestPartialFailureError(t *testing.T) {
	err := &PartialFailureError{Succeeded: 2, Failed: 1}

	if !errors.Is(err, ErrUnexpectedResponse) {
		t.Error("errors.Is(err, ErrUnexpectedResponse) = false")
	}
	if !strings.Contains(err.Error(), "2 succeeded") || !strings.Contains(err.Error(), "1 failed") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestUnexpectedResponseError(t *testing.T) {
	underlying := fmt.Errorf("bad shape")
	err := &UnexpectedResponseError{Err: underlying}

	if !errors.Is(err, ErrUnexpectedResponse) {
		t.Error("errors.Is(err, ErrUnexpectedResponse) = false")
	}
	if !errors.Is(err, underlying) {
		t.Error("errors.Is(err, underlying) = false")
	}
}

func TestWrapError(t *testing.T) {
	apiErr := wrapError(&api.APIError{StatusCode: 429, Message: "slow down"})
	var pub *APIError
	if !errors.As(apiErr, &pub) {
		t.Fatalf("wrapError() = %T, want *APIError", apiErr)
	}
	if !errors.Is(apiErr, ErrRateLimited) {
		t.Error("wrapped 429 does not match ErrRateLimited")
	}

	netErr := wrapError(&api.NetworkError{Err: fmt.Errorf("refused"), URL: "u", Attempt: 1})
	var pubNet *NetworkError
	if !errors.As(netErr, &pubNet) {
		t.Fatalf("wrapError() = %T, want *NetworkError", netErr)
	}

	decErr := wrapError(&api.DecodeError{Err: fmt.Errorf("bad json")})
	if !errors.Is(decErr, ErrUnexpectedResponse) {
		t.Error("wrapped decode error does not match ErrUnexpectedResponse")
	}

	if wrapError(nil) != nil {
		t.Error("wrapError(nil) != nil")
	}

	plain := fmt.Errorf("untouched")
	if wrapError(plain) != plain {
		t.Error("wrapError() altered an unrelated error")
	}
}

func TestBentoErrorMarker(t *testing.T) {
	errs := []error{
		&ValidationError{Kind: ErrInvalidEmail},
		&APIError{StatusCode: 400},
		&NetworkError{Err: fmt.Errorf("x")},
		&UnexpectedResponseError{Err: fmt.Errorf("x")},
		&PartialFailureError{},
	}

	for _, err := range errs {
		if _, ok := err.(BentoError); !ok {
			t.Errorf("%T does not implement BentoError", err)
		}
	}
}
