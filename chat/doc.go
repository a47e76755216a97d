// Package chat provides typed chat messages and conversations.
//
// A Message pairs a Role (system, user, or assistant) with text content.
// A Conversation is an ordered sequence of messages; order represents turn
// order and is preserved end-to-end.
//
// # Example
//
//	conv := chat.Conversation{
//	    chat.System("You are a helpful assistant."),
//	    chat.User("What is the capital of France?"),
//	}
//	if err := conv.Validate(); err != nil {
//	    // empty conversations are rejected before any network call
//	}
//
// Messages are immutable values. A Conversation handed to a model call
// should be treated as a read-only snapshot; use Clone when the caller
// keeps appending to the original.
package chat
