// Package chatkit provides prompt templating and chat-message abstractions
// for calling hosted LLM APIs.
//
// chatkit is a standalone toolkit designed to be imported à la carte. Each
// subpackage can be used independently:
//
//   - chat: Typed chat messages and conversations (system/user/assistant)
//   - prompt: Compiled prompt templates with {variable} substitution
//   - provider: Unified client interface (invoke, stream, batch, generate)
//   - openai: OpenAI-compatible chat-completions provider
//
// # Quick Start
//
// Template rendering:
//
//	import "github.com/randalmurphal/chatkit/prompt"
//	tmpl, _ := prompt.New("Tell me a joke about {topic}.")
//	text, _ := tmpl.Render(map[string]any{"topic": "bears"})
//
// Chat templates:
//
//	import "github.com/randalmurphal/chatkit/chat"
//	ct, _ := prompt.NewChat(
//	    prompt.Segment{Role: chat.RoleSystem, Text: "Translate to {language}."},
//	    prompt.Segment{Role: chat.RoleUser, Text: "{text}"},
//	)
//	conv, _ := ct.Render(map[string]any{"language": "Spanish", "text": "Good morning!"})
//
// Model calls:
//
//	import "github.com/randalmurphal/chatkit/provider"
//	import _ "github.com/randalmurphal/chatkit/openai"
//
//	client, _ := provider.New("openai", provider.FromEnv())
//	defer client.Close()
//	gen, _ := client.Invoke(ctx, provider.Chat(conv))
//
// # Design Philosophy
//
// chatkit follows these principles:
//
//   - Each package usable independently
//   - Validation happens locally, before any network call
//   - Provider failures propagate unmodified; the library never retries or logs
//   - Interfaces for extensibility, concrete types for simplicity
package chatkit
