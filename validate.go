package bento

import (
	"net"
	"strings"
)

// Validation runs before any request is dispatched. All checks here are
// pure: they never perform I/O.

// validateEmail performs a minimal structural check on an email address.
// The API is the authority on deliverability; this only rejects values
// that cannot possibly be addresses.
func validateEmail(email string) error {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return &ValidationError{Kind: ErrInvalidEmail, Value: email}
	}
	if strings.ContainsAny(email, " \t\n") {
		return &ValidationError{Kind: ErrInvalidEmail, Value: email}
	}
	return nil
}

// validateIP checks that the value parses as an IPv4 or IPv6 literal.
func validateIP(ip string) error {
	if net.ParseIP(ip) == nil {
		return &ValidationError{Kind: ErrInvalidIPAddress, Value: ip}
	}
	return nil
}

// validateRequired rejects empty strings for semantically required fields,
// reporting the given sentinel kind.
func validateRequired(value string, kind error) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Kind: kind}
	}
	return nil
}
