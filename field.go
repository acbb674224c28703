package bento

import (
	"context"
	"time"
)

// Field is a custom subscriber attribute definition.
type Field struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Attributes FieldAttributes `json:"attributes"`
}

// FieldAttributes holds field metadata.
type FieldAttributes struct {
	Name        string     `json:"name"`
	Key         string     `json:"key"`
	Whitelisted *bool      `json:"whitelisted"`
	CreatedAt   *time.Time `json:"created_at"`
}

// GetFields lists the site's custom fields.
func (c *Client) GetFields(ctx context.Context) ([]Field, error) {
	var result struct {
		Data []Field `json:"data"`
	}
	if err := c.apiClient.Do(ctx, "GET", "/fetch/fields", nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result.Data, nil
}

// CreateField creates a custom field with the given key.
func (c *Client) CreateField(ctx context.Context, key string) (*Field, error) {
	if err := validateRequired(key, ErrInvalidName); err != nil {
		return nil, err
	}

	body := map[string]interface{}{
		"field": map[string]string{"key": key},
	}

	var result struct {
		Data Field `json:"data"`
	}
	if err := c.apiClient.Do(ctx, "POST", "/fetch/fields", nil, body, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result.Data, nil
}
