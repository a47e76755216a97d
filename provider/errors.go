package provider

import (
	"errors"
	"fmt"
)

// Sentinel errors for provider operations.
var (
	// ErrUnknownProvider indicates the requested provider is not registered.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrInvalidInput indicates a structurally empty or malformed call
	// input, e.g. an empty conversation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoInputs indicates a batch call received no inputs at all.
	ErrNoInputs = errors.New("no inputs")

	// ErrInvalidRequest indicates the provider rejected the request as
	// malformed.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrAuthentication indicates the provider rejected the credentials.
	ErrAuthentication = errors.New("authentication failed")

	// ErrRateLimited indicates the request was rate limited.
	ErrRateLimited = errors.New("rate limited")

	// ErrUnavailable indicates the LLM service is unavailable.
	ErrUnavailable = errors.New("LLM service unavailable")

	// ErrTimeout indicates the request timed out.
	ErrTimeout = errors.New("request timed out")
)

// Error wraps provider errors with context.
type Error struct {
	Provider  string // Provider name ("openai", etc.)
	Op        string // Operation that failed ("invoke", "stream", "batch", "generate")
	Err       error  // Underlying error
	Retryable bool   // Whether the error is likely transient
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("%s %s: %v", e.Provider, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new provider error.
func NewError(provider, op string, err error, retryable bool) *Error {
	return &Error{
		Provider:  provider,
		Op:        op,
		Err:       err,
		Retryable: retryable,
	}
}

// BatchInputError reports the first structurally invalid input in a batch.
// The whole call fails; no network interaction happens.
type BatchInputError struct {
	Index int
	Err   error
}

// Error implements the error interface.
func (e *BatchInputError) Error() string {
	return fmt.Sprintf("input %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying validation error.
func (e *BatchInputError) Unwrap() error {
	return e.Err
}

// IsRetryable checks if an error is likely transient and worth retrying.
// The library itself never retries; this is a hint for callers.
func IsRetryable(err error) bool {
	var provErr *Error
	if errors.As(err, &provErr) {
		return provErr.Retryable
	}
	return errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrUnavailable) ||
		errors.Is(err, ErrTimeout)
}

// IsAuthError checks if an error is authentication-related.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrAuthentication)
}
