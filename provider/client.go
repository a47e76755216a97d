// Package provider defines the unified interface for hosted LLM providers.
//
// The package models the four call shapes a caller needs when driving a
// remote model: a single completion (Invoke), an incremental token stream
// (Stream), an ordered batch of completions (Batch), and multi-candidate
// generation (Generate). Concrete providers register themselves with the
// registry and are constructed from an explicit Config; there is no
// process-wide client state.
//
// # Usage
//
//	import _ "github.com/randalmurphal/chatkit/openai"
//
//	client, err := provider.New("openai", provider.Config{
//	    Model:       "gpt-4o-mini",
//	    APIKey:      os.Getenv("OPENAI_API_KEY"),
//	    Temperature: 0,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	gen, err := client.Invoke(ctx, provider.Text("Tell me a joke about bears."))
//
// # Error Handling
//
// Inputs are validated eagerly, before any network interaction; a
// structurally empty input fails with ErrInvalidInput. Provider-side
// failures are wrapped in *Error and propagated unmodified to the caller —
// no retries, no fallback, no suppression, and the package never logs.
package provider

import "context"

// Client is the unified interface for LLM providers.
// Implementations must be safe for concurrent use.
type Client interface {
	// Invoke sends one input and returns the full response.
	Invoke(ctx context.Context, input Input) (*Generation, error)

	// Stream sends one input and returns a channel of response chunks.
	// The channel is closed when streaming completes (check chunk.Done).
	// Errors during streaming are delivered via chunk.Error. The sequence
	// is finite, ordered, and not restartable; chunks may be empty.
	// Concatenating chunk contents in arrival order reconstructs the full
	// response text.
	Stream(ctx context.Context, input Input) (<-chan StreamChunk, error)

	// Batch sends an ordered sequence of inputs and returns one generation
	// per input, in input order. The whole call fails if any input is
	// structurally invalid; no partial results are observable.
	Batch(ctx context.Context, inputs []Input) ([]Generation, error)

	// Generate is a superset of Batch: it returns one generation set per
	// input, each holding one or more candidate generations. Candidate
	// count is provider configuration (Config.Candidates).
	Generate(ctx context.Context, inputs []Input) ([]GenerationSet, error)

	// Provider returns the provider name (e.g., "openai").
	Provider() string

	// Close releases any resources held by the client.
	Close() error
}

// ValidateInputs checks every input in a batch before any network call.
// Batch calls are all-or-nothing: the returned error names the first
// offending index and wraps the underlying validation failure.
func ValidateInputs(inputs []Input) error {
	if len(inputs) == 0 {
		return ErrNoInputs
	}
	for i, in := range inputs {
		if err := in.Validate(); err != nil {
			return &BatchInputError{Index: i, Err: err}
		}
	}
	return nil
}
