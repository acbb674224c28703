package bento

import "context"

// Event is a fact to be recorded against a subscriber. Fields are merged
// into the subscriber's custom fields; Details are stored with the event
// itself. Optional maps are omitted from the wire body when nil.
type Event struct {
	Type    string                 `json:"type"`
	Email   string                 `json:"email"`
	Fields  map[string]interface{} `json:"fields,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// TrackEvents records a batch of events. It fails with a
// PartialFailureError if the server rejects any event.
func (c *Client) TrackEvents(ctx context.Context, events []Event) error {
	if len(events) == 0 {
		return &ValidationError{Kind: ErrInvalidRequest}
	}
	for _, e := range events {
		if err := validateEmail(e.Email); err != nil {
			return err
		}
		if err := validateRequired(e.Type, ErrInvalidRequest); err != nil {
			return err
		}
	}

	body := map[string]interface{}{"events": events}

	var result batchResult
	if err := c.apiClient.Do(ctx, "POST", "/batch/events", nil, body, &result); err != nil {
		return wrapError(err)
	}
	return result.check()
}
