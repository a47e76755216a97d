package provider

import (
	"context"
	"fmt"
	"sync"
)

// MockClient is a test double for Client.
// It supports fixed responses, sequential responses, and error injection,
// and records every call for assertions. Zero-value usable via NewMockClient.
type MockClient struct {
	mu          sync.Mutex
	responses   []string
	responseIdx int
	err         error
	invokeFunc  func(ctx context.Context, input Input) (*Generation, error)
	candidates  int
	chunkSize   int

	// Calls tracks the inputs of all requests, in call order.
	Calls []Input
}

// NewMockClient creates a mock that returns a fixed response.
func NewMockClient(response string) *MockClient {
	return &MockClient{responses: []string{response}, candidates: 1, chunkSize: 4}
}

// WithResponses configures sequential responses. Each call consumes the
// next response, cycling back after exhausting the list.
func (m *MockClient) WithResponses(responses ...string) *MockClient {
	m.responses = responses
	return m
}

// WithError configures the mock to always return an error.
func (m *MockClient) WithError(err error) *MockClient {
	m.err = err
	return m
}

// WithInvokeFunc sets a custom handler for Invoke calls (and, through the
// default implementations, Batch and Generate). Takes precedence over
// fixed responses.
func (m *MockClient) WithInvokeFunc(fn func(ctx context.Context, input Input) (*Generation, error)) *MockClient {
	m.invokeFunc = fn
	return m
}

// WithCandidates sets how many candidates Generate returns per input.
func (m *MockClient) WithCandidates(n int) *MockClient {
	if n < 1 {
		n = 1
	}
	m.candidates = n
	return m
}

// WithChunkSize sets how many bytes each stream chunk carries.
func (m *MockClient) WithChunkSize(n int) *MockClient {
	if n < 1 {
		n = 1
	}
	m.chunkSize = n
	return m
}

// nextResponse records the call and picks the next configured response.
func (m *MockClient) nextResponse(input Input) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, input)
	if m.err != nil {
		return "", m.err
	}
	response := ""
	if len(m.responses) > 0 {
		response = m.responses[m.responseIdx%len(m.responses)]
		m.responseIdx++
	}
	return response, nil
}

// Invoke implements Client.
func (m *MockClient) Invoke(ctx context.Context, input Input) (*Generation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if m.invokeFunc != nil {
		m.mu.Lock()
		m.Calls = append(m.Calls, input)
		m.mu.Unlock()
		return m.invokeFunc(ctx, input)
	}

	response, err := m.nextResponse(input)
	if err != nil {
		return nil, err
	}
	return &Generation{
		Content:      response,
		Model:        "mock",
		FinishReason: "stop",
		Usage: TokenUsage{
			InputTokens:  10,
			OutputTokens: len(response) / 4,
			TotalTokens:  10 + len(response)/4,
		},
	}, nil
}

// Stream implements Client. The response is split into fixed-size chunks
// delivered over a channel that closes after the final Done chunk.
func (m *MockClient) Stream(ctx context.Context, input Input) (<-chan StreamChunk, error) {
	gen, err := m.Invoke(ctx, input)
	if err != nil {
		return nil, err
	}

	size := m.chunkSize
	if size < 1 {
		size = 4
	}

	ch := make(chan StreamChunk)
	go func() {
		defer close(ch)
		content := gen.Content
		for len(content) > 0 {
			n := size
			if n > len(content) {
				n = len(content)
			}
			select {
			case <-ctx.Done():
				select {
				case ch <- StreamChunk{Error: ctx.Err(), Done: true}:
				default:
				}
				return
			case ch <- StreamChunk{Content: content[:n]}:
			}
			content = content[n:]
		}
		usage := gen.Usage
		select {
		case ch <- StreamChunk{Done: true, Usage: &usage}:
		case <-ctx.Done():
		}
	}()
	return ch, nil
}

// Batch implements Client. All-or-nothing: every input is validated
// before the first response is produced.
func (m *MockClient) Batch(ctx context.Context, inputs []Input) ([]Generation, error) {
	if err := ValidateInputs(inputs); err != nil {
		return nil, err
	}
	out := make([]Generation, 0, len(inputs))
	for _, in := range inputs {
		gen, err := m.Invoke(ctx, in)
		if err != nil {
			return nil, err
		}
		out = append(out, *gen)
	}
	return out, nil
}

// Generate implements Client, returning the configured number of
// candidates per input. Candidates beyond the first are suffixed so tests
// can tell them apart.
func (m *MockClient) Generate(ctx context.Context, inputs []Input) ([]GenerationSet, error) {
	if err := ValidateInputs(inputs); err != nil {
		return nil, err
	}
	out := make([]GenerationSet, 0, len(inputs))
	for _, in := range inputs {
		gen, err := m.Invoke(ctx, in)
		if err != nil {
			return nil, err
		}
		set := make(GenerationSet, 0, m.candidates)
		set = append(set, *gen)
		for i := 1; i < m.candidates; i++ {
			alt := *gen
			alt.Content = fmt.Sprintf("%s (candidate %d)", gen.Content, i+1)
			set = append(set, alt)
		}
		out = append(out, set)
	}
	return out, nil
}

// Provider implements Client.
func (m *MockClient) Provider() string { return "mock" }

// Close implements Client.
func (m *MockClient) Close() error { return nil }
