package provider

import (
	"fmt"

	"github.com/randalmurphal/chatkit/chat"
)

// Input is the rendered form a model call accepts: either a plain prompt
// string or a conversation. Construct with Text or Chat.
type Input struct {
	// Prompt is the plain-text form. Empty when Messages is set.
	Prompt string `json:"prompt,omitempty"`

	// Messages is the conversation form. Nil when Prompt is set.
	Messages chat.Conversation `json:"messages,omitempty"`
}

// Text creates a plain-text input.
func Text(prompt string) Input {
	return Input{Prompt: prompt}
}

// Chat creates a conversation input.
func Chat(conv chat.Conversation) Input {
	return Input{Messages: conv}
}

// IsChat reports whether the input is in conversation form.
func (in Input) IsChat() bool {
	return in.Messages != nil
}

// Validate checks the input is structurally sound. A conversation input
// must contain at least one message with a valid role; a text input must
// be non-empty. Failures wrap ErrInvalidInput.
func (in Input) Validate() error {
	if in.IsChat() {
		if err := in.Messages.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return nil
	}
	if in.Prompt == "" {
		return fmt.Errorf("%w: empty prompt", ErrInvalidInput)
	}
	return nil
}

// Conversation returns the input as a conversation. A text input becomes
// a single user message, which is how chat-completion APIs accept plain
// prompts.
func (in Input) Conversation() chat.Conversation {
	if in.IsChat() {
		return in.Messages
	}
	return chat.Conversation{chat.User(in.Prompt)}
}

// Generation is one model-produced output.
type Generation struct {
	// Content is the text response from the model.
	Content string `json:"content"`

	// ToolCalls contains any tool invocations requested by the model.
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`

	// Usage tracks token consumption for this generation.
	Usage TokenUsage `json:"usage"`

	// Model is the actual model used (may differ from requested).
	Model string `json:"model"`

	// FinishReason indicates why the model stopped generating.
	// Common values: "stop", "length", "tool_calls"
	FinishReason string `json:"finish_reason"`
}

// GenerationSet holds the candidate generations produced for one input.
// Always contains at least one generation; candidates are in provider order.
type GenerationSet []Generation

// First returns the first candidate.
// Panics on an empty set, which a conforming provider never returns.
func (s GenerationSet) First() Generation {
	return s[0]
}

// TokenUsage tracks token consumption.
type TokenUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Add combines token usage from another TokenUsage.
func (u *TokenUsage) Add(other TokenUsage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.TotalTokens += other.TotalTokens
}

// StreamChunk is a piece of a streaming response.
type StreamChunk struct {
	// Content is the text content in this chunk. May be empty.
	Content string `json:"content,omitempty"`

	// Usage is the token usage (only set in the final chunk, when the
	// provider reports it).
	Usage *TokenUsage `json:"usage,omitempty"`

	// Done indicates this is the final chunk.
	Done bool `json:"done"`

	// Error is non-nil if streaming failed.
	Error error `json:"-"`
}
