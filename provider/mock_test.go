package provider

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/chatkit/chat"
)

func TestMockClient_Invoke(t *testing.T) {
	mock := NewMockClient("fixed response")

	gen, err := mock.Invoke(context.Background(), Text("hello"))
	require.NoError(t, err)
	assert.Equal(t, "fixed response", gen.Content)
	assert.Equal(t, "stop", gen.FinishReason)
	require.Len(t, mock.Calls, 1)
	assert.Equal(t, "hello", mock.Calls[0].Prompt)
}

func TestMockClient_Invoke_EmptyConversation(t *testing.T) {
	mock := NewMockClient("never")

	gen, err := mock.Invoke(context.Background(), Chat(chat.Conversation{}))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, gen)
}

func TestMockClient_SequentialResponses(t *testing.T) {
	mock := NewMockClient("").WithResponses("one", "two")

	for _, want := range []string{"one", "two", "one"} {
		gen, err := mock.Invoke(context.Background(), Text("x"))
		require.NoError(t, err)
		assert.Equal(t, want, gen.Content)
	}
}

func TestMockClient_WithError(t *testing.T) {
	boom := errors.New("boom")
	mock := NewMockClient("").WithError(boom)

	_, err := mock.Invoke(context.Background(), Text("x"))
	assert.ErrorIs(t, err, boom)
}

func TestMockClient_Stream_ConcatenationMatchesInvoke(t *testing.T) {
	const response = "a reasonably long streaming response"
	mock := NewMockClient(response).WithChunkSize(3)

	ch, err := mock.Stream(context.Background(), Text("x"))
	require.NoError(t, err)

	var b strings.Builder
	var sawDone bool
	for chunk := range ch {
		require.NoError(t, chunk.Error)
		b.WriteString(chunk.Content)
		if chunk.Done {
			sawDone = true
			require.NotNil(t, chunk.Usage)
		}
	}
	assert.True(t, sawDone, "stream must end with a Done chunk")
	assert.Equal(t, response, b.String())
}

func TestMockClient_Batch_OrderPreserved(t *testing.T) {
	mock := NewMockClient("").WithResponses("first", "second", "third")

	gens, err := mock.Batch(context.Background(), []Input{
		Text("a"), Text("b"), Text("c"),
	})
	require.NoError(t, err)
	require.Len(t, gens, 3)
	assert.Equal(t, "first", gens[0].Content)
	assert.Equal(t, "second", gens[1].Content)
	assert.Equal(t, "third", gens[2].Content)
}

func TestMockClient_Batch_FailsFastOnInvalidInput(t *testing.T) {
	mock := NewMockClient("never")

	gens, err := mock.Batch(context.Background(), []Input{
		Text("ok"),
		Chat(chat.Conversation{}),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, gens)
	assert.Empty(t, mock.Calls, "no call may happen when any input is invalid")
}

func TestMockClient_Generate_Candidates(t *testing.T) {
	mock := NewMockClient("base").WithCandidates(3)

	sets, err := mock.Generate(context.Background(), []Input{Text("a"), Text("b")})
	require.NoError(t, err)
	require.Len(t, sets, 2)
	for _, set := range sets {
		require.Len(t, set, 3)
		assert.Equal(t, "base", set.First().Content)
	}
}

func TestMockClient_Stream_AbandonedAfterCancel(t *testing.T) {
	// One oversized chunk so the whole response arrives in a single send
	// and only the final Done send remains pending.
	mock := NewMockClient("whole response").WithChunkSize(100)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := mock.Stream(ctx, Text("x"))
	require.NoError(t, err)

	<-ch // consume the content chunk, then stop reading
	cancel()
	time.Sleep(50 * time.Millisecond)

	chunk, ok := <-ch
	assert.False(t, ok, "channel should close without a final send once the context is cancelled, got %+v", chunk)
}

func TestMockClient_ContextCancellation(t *testing.T) {
	mock := NewMockClient("never")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mock.Invoke(ctx, Text("x"))
	assert.ErrorIs(t, err, context.Canceled)
}
