package bento

import "context"

// CommandType identifies a subscriber mutation instruction.
type CommandType string

// The closed set of subscriber commands the API accepts.
const (
	CommandAddTag         CommandType = "add_tag"
	CommandAddTagViaEvent CommandType = "add_tag_via_event"
	CommandRemoveTag      CommandType = "remove_tag"
	CommandAddField       CommandType = "add_field"
	CommandRemoveField    CommandType = "remove_field"
	CommandSubscribe      CommandType = "subscribe"
	CommandUnsubscribe    CommandType = "unsubscribe"
	CommandChangeEmail    CommandType = "change_email"
)

// Command is a fire-and-forget mutation applied to the subscriber
// identified by Email. Query carries the command argument: the tag name
// for tag commands, a "field:value" pair for field commands, the new
// address for change_email.
type Command struct {
	Command CommandType `json:"command"`
	Email   string      `json:"email"`
	Query   string      `json:"query"`
}

// ExecuteCommands sends a batch of subscriber commands and returns the
// number of commands the server accepted. A response reporting failures
// yields a PartialFailureError; a 2xx response with an empty body is
// treated as full acceptance.
func (c *Client) ExecuteCommands(ctx context.Context, commands []Command) (int, error) {
	if len(commands) == 0 {
		return 0, &ValidationError{Kind: ErrInvalidRequest}
	}
	for _, cmd := range commands {
		if err := validateEmail(cmd.Email); err != nil {
			return 0, err
		}
		if err := validateRequired(cmd.Query, ErrInvalidRequest); err != nil {
			return 0, err
		}
	}

	body := map[string]interface{}{"command": commands}

	var result batchResult
	if err := c.apiClient.Do(ctx, "POST", "/fetch/commands", nil, body, &result); err != nil {
		return 0, wrapError(err)
	}
	if err := result.check(); err != nil {
		return result.Results, err
	}
	if result.Results == 0 {
		// Empty or zero-count 2xx body: the server accepted the batch
		// without itemizing, so report everything as accepted.
		return len(commands), nil
	}
	return result.Results, nil
}
