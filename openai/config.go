package openai

import (
	"strings"
	"time"
)

// Defaults applied when the corresponding Config field is zero.
const (
	// DefaultBaseURL is the hosted OpenAI API endpoint.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is used when Config.Model is empty.
	DefaultModel = "gpt-4o-mini"

	// DefaultTimeout bounds a single request, including streaming.
	DefaultTimeout = 60 * time.Second
)

// normalizeBaseURL trims trailing slashes and falls back to the default.
func normalizeBaseURL(raw string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return DefaultBaseURL
	}
	return trimmed
}
