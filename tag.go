package bento

import (
	"context"
	"time"
)

// Tag is a named label applied to subscribers.
type Tag struct {
	ID         string        `json:"id"`
	Type       string        `json:"type"`
	Attributes TagAttributes `json:"attributes"`
}

// TagAttributes holds tag metadata.
type TagAttributes struct {
	Name        string     `json:"name"`
	CreatedAt   string     `json:"created_at"`
	DiscardedAt *time.Time `json:"discarded_at"`
	SiteID      int        `json:"site_id"`
}

// GetTags lists the site's tags.
func (c *Client) GetTags(ctx context.Context) ([]Tag, error) {
	var result struct {
		Data []Tag `json:"data"`
	}
	if err := c.apiClient.Do(ctx, "GET", "/fetch/tags", nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result.Data, nil
}

// CreateTag creates a tag with the given name.
func (c *Client) CreateTag(ctx context.Context, name string) (*Tag, error) {
	if err := validateRequired(name, ErrInvalidTags); err != nil {
		return nil, err
	}

	body := map[string]interface{}{
		"tag": map[string]string{"name": name},
	}

	var result struct {
		Data Tag `json:"data"`
	}
	if err := c.apiClient.Do(ctx, "POST", "/fetch/tags", nil, body, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result.Data, nil
}
