package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyMessage        = errors.New("message is empty")
	ErrEmptyConversationID = errors.New("conversation id is empty")
)
