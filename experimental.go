package bento

import (
	"context"
	"encoding/json"
	"net/url"
)

// Experimental endpoints. These are beta features of the API; response
// shapes may change, so most results are passed through as raw JSON.

// BlacklistCheck selects what to check against spam blacklists. At least
// one of Domain or IP is required.
type BlacklistCheck struct {
	Domain string
	IP     string
}

// EmailValidation is the input to ValidateEmail. Name, UserAgent, and IP
// provide additional signals and are optional.
type EmailValidation struct {
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	IP        string `json:"ip,omitempty"`
}

// BlacklistStatus checks a domain or IP address against spam blacklists.
func (c *Client) BlacklistStatus(ctx context.Context, check BlacklistCheck) (json.RawMessage, error) {
	if check.Domain == "" && check.IP == "" {
		return nil, &ValidationError{Kind: ErrInvalidRequest}
	}
	if check.IP != "" {
		if err := validateIP(check.IP); err != nil {
			return nil, err
		}
	}

	query := url.Values{}
	if check.Domain != "" {
		query.Set("domain", check.Domain)
	}
	if check.IP != "" {
		query.Set("ip", check.IP)
	}

	var result json.RawMessage
	if err := c.apiClient.Do(ctx, "GET", "/experimental/blacklist.json", query, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// ValidateEmail asks the API whether an address looks deliverable.
func (c *Client) ValidateEmail(ctx context.Context, input EmailValidation) (bool, error) {
	if err := validateEmail(input.Email); err != nil {
		return false, err
	}
	if input.IP != "" {
		if err := validateIP(input.IP); err != nil {
			return false, err
		}
	}

	var result struct {
		Valid bool `json:"valid"`
	}
	if err := c.apiClient.Do(ctx, "POST", "/experimental/validation", nil, input, &result); err != nil {
		return false, wrapError(err)
	}
	return result.Valid, nil
}

// ModerateContent runs content moderation over the given text.
func (c *Client) ModerateContent(ctx context.Context, content string) (json.RawMessage, error) {
	if err := validateRequired(content, ErrInvalidContent); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("content", content)

	var result json.RawMessage
	if err := c.apiClient.Do(ctx, "POST", "/experimental/content_moderation", query, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// GuessGender predicts a gender from a name.
func (c *Client) GuessGender(ctx context.Context, name string) (json.RawMessage, error) {
	if err := validateRequired(name, ErrInvalidName); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("name", name)

	var result json.RawMessage
	if err := c.apiClient.Do(ctx, "POST", "/experimental/gender", query, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// GeolocateIP geolocates an IP address.
func (c *Client) GeolocateIP(ctx context.Context, ip string) (json.RawMessage, error) {
	if err := validateIP(ip); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("ip", ip)

	var result json.RawMessage
	if err := c.apiClient.Do(ctx, "GET", "/experimental/geolocation", query, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}
