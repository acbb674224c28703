package bento

import "context"

// BroadcastType selects how broadcast content is interpreted.
type BroadcastType string

const (
	// BroadcastPlain is a plain-text broadcast.
	BroadcastPlain BroadcastType = "plain"
	// BroadcastRaw is a raw HTML broadcast.
	BroadcastRaw BroadcastType = "raw"
)

// Contact is a sender identity.
type Contact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// Broadcast is a one-to-many email campaign. Targeting is either
// tag-based (InclusiveTags/ExclusiveTags, comma-separated names) or
// segment-based (SegmentID); the API does not enforce mutual exclusivity,
// so pick one per broadcast.
type Broadcast struct {
	Name             string        `json:"name"`
	Subject          string        `json:"subject"`
	Content          string        `json:"content"`
	Type             BroadcastType `json:"type"`
	From             Contact       `json:"from"`
	InclusiveTags    string        `json:"inclusive_tags,omitempty"`
	ExclusiveTags    string        `json:"exclusive_tags,omitempty"`
	SegmentID        string        `json:"segment_id,omitempty"`
	BatchSizePerHour int           `json:"batch_size_per_hour"`
}

// GetBroadcasts lists the site's broadcasts.
func (c *Client) GetBroadcasts(ctx context.Context) ([]Broadcast, error) {
	var result struct {
		Broadcasts []Broadcast `json:"broadcasts"`
	}
	if err := c.apiClient.Do(ctx, "GET", "/fetch/broadcasts", nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return result.Broadcasts, nil
}

// CreateBroadcasts creates one or more broadcasts.
func (c *Client) CreateBroadcasts(ctx context.Context, broadcasts []Broadcast) error {
	if len(broadcasts) == 0 {
		return &ValidationError{Kind: ErrInvalidRequest}
	}
	for _, b := range broadcasts {
		if err := validateRequired(b.Name, ErrInvalidName); err != nil {
			return err
		}
		if err := validateRequired(b.Subject, ErrInvalidContent); err != nil {
			return err
		}
		if err := validateRequired(b.Content, ErrInvalidContent); err != nil {
			return err
		}
		if err := validateEmail(b.From.Email); err != nil {
			return err
		}
		if b.BatchSizePerHour <= 0 {
			return &ValidationError{Kind: ErrInvalidBatchSize}
		}
	}

	body := map[string]interface{}{"broadcasts": broadcasts}

	if err := c.apiClient.Do(ctx, "POST", "/batch/broadcasts", nil, body, nil); err != nil {
		return wrapError(err)
	}
	return nil
}
