package openai

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/randalmurphal/chatkit/provider"
)

// ssePrefix marks a data line of a server-sent-events stream.
const ssePrefix = "data: "

// sseDone is the terminator payload the API sends after the last chunk.
const sseDone = "[DONE]"

// Stream implements provider.Client. It issues a streaming
// chat-completions request and delivers content deltas over the returned
// channel, in arrival order. The channel closes after the final Done
// chunk; a mid-stream failure is delivered as a chunk with Error set.
func (c *Client) Stream(ctx context.Context, input provider.Input) (<-chan provider.StreamChunk, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	body := chatRequest{
		Model:         c.model,
		Messages:      buildMessages(input.Conversation()),
		Temperature:   c.cfg.Temperature,
		MaxTokens:     c.cfg.MaxTokens,
		Tools:         buildTools(c.cfg.Tools),
		Stream:        true,
		StreamOptions: &streamOptions{IncludeUsage: true},
	}

	httpReq, err := c.newRequest(ctx, body)
	if err != nil {
		return nil, provider.NewError("openai", "stream", err, false)
	}
	httpReq.Header.Set("Accept", "text/event-stream")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.transportError("stream", err)
	}
	if httpResp.StatusCode >= http.StatusBadRequest {
		defer httpResp.Body.Close()
		return nil, c.statusError("stream", httpResp)
	}

	ch := make(chan provider.StreamChunk)
	go c.readStream(ctx, httpResp, ch)
	return ch, nil
}

// readStream decodes SSE data lines until the [DONE] terminator, the
// context is cancelled, or the connection drops.
func (c *Client) readStream(ctx context.Context, resp *http.Response, ch chan<- provider.StreamChunk) {
	defer close(ch)
	defer resp.Body.Close()

	var usage *provider.TokenUsage
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, ssePrefix) {
			continue
		}
		payload := strings.TrimPrefix(line, ssePrefix)
		if payload == sseDone {
			c.send(ctx, ch, provider.StreamChunk{Done: true, Usage: usage})
			return
		}

		var event streamEvent
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			c.send(ctx, ch, provider.StreamChunk{
				Done:  true,
				Error: provider.NewError("openai", "stream", fmt.Errorf("decode chunk: %w", err), false),
			})
			return
		}

		if event.Usage != nil {
			u := event.Usage.toUsage()
			usage = &u
		}
		for _, choice := range event.Choices {
			if !c.send(ctx, ch, provider.StreamChunk{Content: choice.Delta.Content}) {
				return
			}
		}
	}

	// Stream ended without [DONE]: either the context was cancelled or
	// the connection dropped mid-stream.
	if err := scanner.Err(); err != nil {
		c.send(ctx, ch, provider.StreamChunk{
			Done:  true,
			Error: c.transportError("stream", err),
		})
		return
	}
	c.send(ctx, ch, provider.StreamChunk{Done: true, Usage: usage})
}

// send delivers a chunk unless the context is done first.
func (c *Client) send(ctx context.Context, ch chan<- provider.StreamChunk, chunk provider.StreamChunk) bool {
	select {
	case ch <- chunk:
		return true
	case <-ctx.Done():
		return false
	}
}
