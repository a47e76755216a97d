package chat

import "errors"

// Sentinel errors for message construction and validation.
var (
	// ErrInvalidRole is returned when a message is constructed with a role
	// outside the system/user/assistant set.
	ErrInvalidRole = errors.New("invalid message role")

	// ErrEmptyConversation is returned when a conversation contains no messages.
	ErrEmptyConversation = errors.New("conversation is empty")
)
