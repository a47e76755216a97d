// Package openai implements provider.Client against an OpenAI-compatible
// chat-completions API.
//
// The client talks plain HTTP to {base_url}/chat/completions and maps the
// wire format to the provider-agnostic types. It works with any endpoint
// speaking the OpenAI dialect (OpenAI itself, Azure-compatible gateways,
// vLLM, llama.cpp server, and similar).
//
// # Usage
//
// Import for side effects to register the "openai" provider:
//
//	import _ "github.com/randalmurphal/chatkit/openai"
//
//	client, err := provider.New("openai", provider.FromEnv())
//
// Or construct directly:
//
//	client, err := openai.NewClient(provider.Config{
//	    Model:  "gpt-4o-mini",
//	    APIKey: os.Getenv("OPENAI_API_KEY"),
//	})
//
// # Options
//
// Provider-specific options (Config.Options):
//
//   - "organization": string — sent as the OpenAI-Organization header
//
// # Error Mapping
//
// HTTP status codes map onto the provider sentinels: 401/403 to
// ErrAuthentication, 429 to ErrRateLimited (retryable), 5xx to
// ErrUnavailable (retryable), other 4xx to ErrInvalidRequest. All
// failures are wrapped in *provider.Error and propagated unmodified.
package openai
