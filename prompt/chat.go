package prompt

import (
	"fmt"

	"github.com/randalmurphal/chatkit/chat"
)

// Segment is one (role, template text) pair of a chat template.
type Segment struct {
	Role chat.Role `json:"role" yaml:"role" toml:"role"`
	Text string    `json:"text" yaml:"text" toml:"text"`
}

// chatSegment pairs a role with its compiled template.
type chatSegment struct {
	role chat.Role
	tmpl *Template
}

// ChatTemplate is a compiled multi-role prompt template. Each segment
// renders independently and the results combine, in original order, into
// a chat.Conversation. Immutable and safe for concurrent use.
type ChatTemplate struct {
	segments []chatSegment
	vars     []string
}

// NewChat compiles a chat template from ordered (role, text) segments.
// Returns chat.ErrInvalidRole if any segment carries a non-standard role,
// ErrEmpty if no segments are given, and ErrParse for malformed text.
func NewChat(segments ...Segment) (*ChatTemplate, error) {
	if len(segments) == 0 {
		return nil, ErrEmpty
	}

	ct := &ChatTemplate{segments: make([]chatSegment, 0, len(segments))}
	seen := make(map[string]bool)
	for i, seg := range segments {
		if !seg.Role.Valid() {
			return nil, fmt.Errorf("%w: segment %d has role %q", chat.ErrInvalidRole, i, seg.Role)
		}
		tmpl, err := New(seg.Text)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		ct.segments = append(ct.segments, chatSegment{role: seg.Role, tmpl: tmpl})
		for _, name := range tmpl.vars {
			if !seen[name] {
				seen[name] = true
				ct.vars = append(ct.vars, name)
			}
		}
	}
	return ct, nil
}

// MustNewChat is like NewChat but panics on error.
func MustNewChat(segments ...Segment) *ChatTemplate {
	ct, err := NewChat(segments...)
	if err != nil {
		panic(fmt.Sprintf("prompt.MustNewChat: %v", err))
	}
	return ct
}

// Variables returns the distinct variable names referenced across all
// segments, in first-appearance order.
func (ct *ChatTemplate) Variables() []string {
	out := make([]string, len(ct.vars))
	copy(out, ct.vars)
	return out
}

// Render renders every segment with the given variables and combines the
// results into a conversation, preserving segment order. Fails with
// ErrMissingVariable if any segment references an unsupplied variable.
func (ct *ChatTemplate) Render(variables map[string]any) (chat.Conversation, error) {
	conv := make(chat.Conversation, 0, len(ct.segments))
	for i, seg := range ct.segments {
		content, err := seg.tmpl.Render(variables)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		conv = append(conv, chat.Message{Role: seg.role, Content: content})
	}
	return conv, nil
}
