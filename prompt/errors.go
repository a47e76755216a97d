package prompt

import "errors"

// Sentinel errors for template operations.
var (
	// ErrEmpty is returned when the template string is empty.
	ErrEmpty = errors.New("template is empty")

	// ErrParse is returned when the template text is malformed
	// (unclosed placeholder, empty or invalid placeholder name).
	ErrParse = errors.New("template parse error")

	// ErrMissingVariable is returned when a referenced placeholder has no
	// matching entry in the render variables.
	ErrMissingVariable = errors.New("missing template variable")
)
