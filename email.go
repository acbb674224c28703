package bento

import "context"

// MaxEmailBatchSize is the hard cap on emails per send call, enforced
// client-side before dispatch.
const MaxEmailBatchSize = 60

// Email is a single outgoing message. Personalizations are substituted
// into the HTML body by the server and omitted from the wire body when nil.
type Email struct {
	To               string                 `json:"to"`
	From             string                 `json:"from"`
	Subject          string                 `json:"subject"`
	HTMLBody         string                 `json:"html_body"`
	Transactional    bool                   `json:"transactional"`
	Personalizations map[string]interface{} `json:"personalizations,omitempty"`
}

// EmailBatch is a bounded collection of emails for a single send call.
// Its sole invariant is that it never holds more than MaxEmailBatchSize
// messages.
type EmailBatch struct {
	emails []Email
}

// NewEmailBatch creates a batch from the given emails. It fails with
// ErrInvalidBatchSize if there are more than MaxEmailBatchSize.
func NewEmailBatch(emails []Email) (*EmailBatch, error) {
	if len(emails) > MaxEmailBatchSize {
		return nil, &ValidationError{Kind: ErrInvalidBatchSize}
	}
	return &EmailBatch{emails: emails}, nil
}

// Add appends an email to the batch. It fails with ErrInvalidBatchSize if
// the batch is already full.
func (b *EmailBatch) Add(email Email) error {
	if len(b.emails) >= MaxEmailBatchSize {
		return &ValidationError{Kind: ErrInvalidBatchSize}
	}
	b.emails = append(b.emails, email)
	return nil
}

// Len returns the number of emails in the batch.
func (b *EmailBatch) Len() int {
	return len(b.emails)
}

// IsEmpty reports whether the batch holds no emails.
func (b *EmailBatch) IsEmpty() bool {
	return len(b.emails) == 0
}

// Emails returns the emails in the batch.
func (b *EmailBatch) Emails() []Email {
	return b.emails
}

// SendEmails dispatches a batch of emails and returns the number the
// server queued.
//
// This call is never retried: the API does not guarantee deduplication of
// repeated sends, so a retry could deliver duplicates. If the call times
// out the batch may still have been accepted server-side.
func (c *Client) SendEmails(ctx context.Context, batch *EmailBatch) (int, error) {
	if batch == nil || batch.IsEmpty() {
		return 0, &ValidationError{Kind: ErrInvalidRequest}
	}
	for _, e := range batch.emails {
		if err := validateEmail(e.To); err != nil {
			return 0, err
		}
		if err := validateEmail(e.From); err != nil {
			return 0, err
		}
	}

	body := map[string]interface{}{"emails": batch.emails}

	var result struct {
		Results int `json:"results"`
	}
	if err := c.apiClient.DoOnce(ctx, "POST", "/batch/emails", nil, body, &result); err != nil {
		return 0, wrapError(err)
	}
	return result.Results, nil
}
