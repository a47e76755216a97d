package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/randalmurphal/chatkit/provider"
)

// maxConcurrent bounds the in-flight requests a Batch or Generate call
// issues. The caller still observes a single suspension point.
const maxConcurrent = 4

// Client calls an OpenAI-compatible chat-completions API.
// Safe for concurrent use.
type Client struct {
	cfg        provider.Config
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient creates a client from the given configuration.
// Zero fields fall back to the package defaults. The API key is not
// validated locally; an empty key surfaces as ErrAuthentication from the
// remote API.
func NewClient(cfg provider.Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		cfg:        cfg,
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Invoke implements provider.Client.
func (c *Client) Invoke(ctx context.Context, input provider.Input) (*provider.Generation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	gens, err := c.complete(ctx, "invoke", input, 1)
	if err != nil {
		return nil, err
	}
	gen := gens[0]
	return &gen, nil
}

// Batch implements provider.Client. Every input is validated before the
// first request; results are one-to-one with inputs, in input order.
// Requests run with bounded internal concurrency and the whole call fails
// on the first error.
func (c *Client) Batch(ctx context.Context, inputs []provider.Input) ([]provider.Generation, error) {
	sets, err := c.completeAll(ctx, "batch", inputs, 1)
	if err != nil {
		return nil, err
	}
	out := make([]provider.Generation, len(sets))
	for i, set := range sets {
		out[i] = set.First()
	}
	return out, nil
}

// Generate implements provider.Client. Requests Config.Candidates
// generations per input via the API's n parameter.
func (c *Client) Generate(ctx context.Context, inputs []provider.Input) ([]provider.GenerationSet, error) {
	n := c.cfg.Candidates
	if n < 1 {
		n = 1
	}
	return c.completeAll(ctx, "generate", inputs, n)
}

// Provider implements provider.Client.
func (c *Client) Provider() string { return "openai" }

// Close implements provider.Client.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// completeAll fans out one request per input, preserving input order in
// the result slice. All-or-nothing: the first failure cancels the rest.
func (c *Client) completeAll(ctx context.Context, op string, inputs []provider.Input, n int) ([]provider.GenerationSet, error) {
	if err := provider.ValidateInputs(inputs); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]provider.GenerationSet, len(inputs))
	sem := make(chan struct{}, maxConcurrent)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for i, in := range inputs {
		wg.Add(1)
		go func(i int, in provider.Input) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				// The slot for this input stays empty; the call as a
				// whole must fail rather than return a partial result.
				mu.Lock()
				if firstErr == nil {
					firstErr = c.transportError(op, ctx.Err())
				}
				mu.Unlock()
				return
			}

			gens, err := c.complete(ctx, op, in, n)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
					cancel()
				}
				mu.Unlock()
				return
			}
			results[i] = gens
		}(i, in)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// complete issues one chat-completions request and converts every choice.
// Always returns at least one generation on success.
func (c *Client) complete(ctx context.Context, op string, input provider.Input, n int) (provider.GenerationSet, error) {
	body := chatRequest{
		Model:       c.model,
		Messages:    buildMessages(input.Conversation()),
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
		Tools:       buildTools(c.cfg.Tools),
	}
	if n > 1 {
		body.N = n
	}

	httpReq, err := c.newRequest(ctx, body)
	if err != nil {
		return nil, provider.NewError("openai", op, err, false)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.transportError(op, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode >= http.StatusBadRequest {
		return nil, c.statusError(op, httpResp)
	}

	var decoded chatResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&decoded); err != nil {
		return nil, provider.NewError("openai", op, fmt.Errorf("decode response: %w", err), false)
	}
	if len(decoded.Choices) == 0 {
		return nil, provider.NewError("openai", op, errors.New("response contains no choices"), false)
	}

	sort.Slice(decoded.Choices, func(i, j int) bool {
		return decoded.Choices[i].Index < decoded.Choices[j].Index
	})

	usage := decoded.Usage.toUsage()
	model := decoded.Model
	if model == "" {
		model = c.model
	}
	gens := make(provider.GenerationSet, 0, len(decoded.Choices))
	for _, ch := range decoded.Choices {
		gens = append(gens, ch.toGeneration(model, usage))
	}
	return gens, nil
}

// newRequest builds an authenticated POST to /chat/completions.
func (c *Client) newRequest(ctx context.Context, body chatRequest) (*http.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if org := c.cfg.GetStringOption("organization", ""); org != "" {
		req.Header.Set("OpenAI-Organization", org)
	}
	return req, nil
}

// transportError wraps network-level failures.
func (c *Client) transportError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return provider.NewError("openai", op, fmt.Errorf("%w: %v", provider.ErrTimeout, err), true)
	}
	if errors.Is(err, context.Canceled) {
		return provider.NewError("openai", op, err, false)
	}
	return provider.NewError("openai", op, err, false)
}

// statusError maps a non-2xx response onto the provider sentinels.
func (c *Client) statusError(op string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := strings.TrimSpace(string(raw))

	var envelope apiError
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error.Message != "" {
		msg = envelope.Error.Message
	}

	var sentinel error
	retryable := false
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		sentinel = provider.ErrAuthentication
	case resp.StatusCode == http.StatusTooManyRequests:
		sentinel = provider.ErrRateLimited
		retryable = true
	case resp.StatusCode == http.StatusRequestTimeout:
		sentinel = provider.ErrTimeout
		retryable = true
	case resp.StatusCode >= http.StatusInternalServerError:
		sentinel = provider.ErrUnavailable
		retryable = true
	default:
		sentinel = provider.ErrInvalidRequest
	}

	return provider.NewError("openai", op,
		fmt.Errorf("%w: status %d: %s", sentinel, resp.StatusCode, msg), retryable)
}
