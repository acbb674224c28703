package bento

import (
	"context"
	"encoding/json"
	"net/url"
	"time"
)

// Subscriber is a subscriber record as returned by the API. The local
// value is a read-only projection of server state; mutations go through
// subscriber commands.
type Subscriber struct {
	ID         string               `json:"id"`
	Type       string               `json:"type"`
	Attributes SubscriberAttributes `json:"attributes"`
}

// SubscriberAttributes holds the subscriber's contact information, custom
// fields, tags, and subscription status.
type SubscriberAttributes struct {
	UUID           string                     `json:"uuid"`
	Email          string                     `json:"email"`
	Fields         map[string]json.RawMessage `json:"fields"`
	CachedTagIDs   []string                   `json:"cached_tag_ids"`
	UnsubscribedAt *time.Time                 `json:"unsubscribed_at"`
}

// ImportSubscriber is one row of a batch subscriber import. Tags and
// RemoveTags are comma-separated tag names. Custom fields beyond the named
// ones go in Fields and are flattened into the request object.
type ImportSubscriber struct {
	Email      string
	FirstName  string
	LastName   string
	Tags       string
	RemoveTags string
	Fields     map[string]interface{}
}

// MarshalJSON flattens custom fields into the top-level object, matching
// the API's import shape.
func (s ImportSubscriber) MarshalJSON() ([]byte, error) {
	obj := make(map[string]interface{}, len(s.Fields)+5)
	for k, v := range s.Fields {
		obj[k] = v
	}
	obj["email"] = s.Email
	if s.FirstName != "" {
		obj["first_name"] = s.FirstName
	}
	if s.LastName != "" {
		obj["last_name"] = s.LastName
	}
	if s.Tags != "" {
		obj["tags"] = s.Tags
	}
	if s.RemoveTags != "" {
		obj["remove_tags"] = s.RemoveTags
	}
	return json.Marshal(obj)
}

// batchResult is the API's accepted/rejected count envelope shared by the
// batch endpoints.
type batchResult struct {
	Results int `json:"results"`
	Failed  int `json:"failed"`
}

func (r batchResult) check() error {
	if r.Failed > 0 {
		return &PartialFailureError{Succeeded: r.Results, Failed: r.Failed}
	}
	return nil
}

// FindSubscriber looks up a subscriber by email address.
func (c *Client) FindSubscriber(ctx context.Context, email string) (*Subscriber, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("email", email)

	var result struct {
		Data Subscriber `json:"data"`
	}
	if err := c.apiClient.Do(ctx, "GET", "/fetch/subscribers", query, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result.Data, nil
}

// CreateSubscriber creates a subscriber with just an email address.
// Additional fields and tags are set afterwards via ImportSubscribers or
// ExecuteCommands.
func (c *Client) CreateSubscriber(ctx context.Context, email string) (*Subscriber, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	body := map[string]interface{}{
		"subscriber": map[string]string{"email": email},
	}

	var result struct {
		Data Subscriber `json:"data"`
	}
	if err := c.apiClient.Do(ctx, "POST", "/fetch/subscribers", nil, body, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result.Data, nil
}

// ImportSubscribers creates or updates subscribers in bulk. It fails with
// a PartialFailureError if the server rejects any row.
func (c *Client) ImportSubscribers(ctx context.Context, subscribers []ImportSubscriber) error {
	if len(subscribers) == 0 {
		return &ValidationError{Kind: ErrInvalidRequest}
	}
	for _, s := range subscribers {
		if err := validateEmail(s.Email); err != nil {
			return err
		}
	}

	body := map[string]interface{}{"subscribers": subscribers}

	var result batchResult
	if err := c.apiClient.Do(ctx, "POST", "/batch/subscribers", nil, body, &result); err != nil {
		return wrapError(err)
	}
	return result.check()
}
