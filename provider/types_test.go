package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/chatkit/chat"
)

func TestInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   Input
		wantErr bool
	}{
		{name: "text input", input: Text("hello")},
		{name: "chat input", input: Chat(chat.Conversation{chat.User("hi")})},
		{name: "zero input", input: Input{}, wantErr: true},
		{name: "empty conversation", input: Chat(chat.Conversation{}), wantErr: true},
		{
			name:    "invalid role in conversation",
			input:   Chat(chat.Conversation{{Role: "narrator", Content: "x"}}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestInput_Conversation(t *testing.T) {
	t.Run("text becomes single user message", func(t *testing.T) {
		conv := Text("hello").Conversation()
		require.Len(t, conv, 1)
		assert.Equal(t, chat.RoleUser, conv[0].Role)
		assert.Equal(t, "hello", conv[0].Content)
	})

	t.Run("chat passes through unchanged", func(t *testing.T) {
		orig := chat.Conversation{chat.System("s"), chat.User("u")}
		conv := Chat(orig).Conversation()
		assert.Equal(t, orig, conv)
	})
}

func TestValidateInputs(t *testing.T) {
	valid := Text("ok")
	empty := Chat(chat.Conversation{})

	t.Run("no inputs", func(t *testing.T) {
		assert.ErrorIs(t, ValidateInputs(nil), ErrNoInputs)
	})

	t.Run("all valid", func(t *testing.T) {
		assert.NoError(t, ValidateInputs([]Input{valid, valid}))
	})

	t.Run("invalid input fails whole batch with index", func(t *testing.T) {
		err := ValidateInputs([]Input{valid, empty, valid})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)

		var batchErr *BatchInputError
		require.ErrorAs(t, err, &batchErr)
		assert.Equal(t, 1, batchErr.Index)
	})
}

func TestTokenUsage_Add(t *testing.T) {
	u := TokenUsage{InputTokens: 1, OutputTokens: 2, TotalTokens: 3}
	u.Add(TokenUsage{InputTokens: 10, OutputTokens: 20, TotalTokens: 30})
	assert.Equal(t, TokenUsage{InputTokens: 11, OutputTokens: 22, TotalTokens: 33}, u)
}
