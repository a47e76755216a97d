package provider

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// APIKeyEnv is the environment variable FromEnv reads the credential from.
const APIKeyEnv = "OPENAI_API_KEY"

// Config holds configuration for creating an LLM provider client.
// Common fields apply to all providers; use Options for provider-specific
// settings. Pass the struct to New; there is no global client state.
type Config struct {
	// Provider is the name of the provider to use. Required by New.
	Provider string `json:"provider" yaml:"provider" toml:"provider" mapstructure:"provider"`

	// Model is the model to use (provider-specific name).
	// Example: "gpt-4o-mini"
	Model string `json:"model" yaml:"model" toml:"model" mapstructure:"model"`

	// APIKey is the credential sent to the provider. An empty key is not a
	// local error; it surfaces as an authentication failure from the API.
	APIKey string `json:"api_key" yaml:"api_key" toml:"api_key" mapstructure:"api_key"`

	// BaseURL overrides the provider's API endpoint.
	// Empty uses the provider default.
	BaseURL string `json:"base_url" yaml:"base_url" toml:"base_url" mapstructure:"base_url"`

	// Temperature controls response randomness (0 = deterministic).
	Temperature float64 `json:"temperature" yaml:"temperature" toml:"temperature" mapstructure:"temperature"`

	// MaxTokens caps the response length. 0 means no explicit cap.
	MaxTokens int `json:"max_tokens" yaml:"max_tokens" toml:"max_tokens" mapstructure:"max_tokens"`

	// Candidates is the number of generations Generate requests per input.
	// 0 or 1 requests a single candidate.
	Candidates int `json:"candidates" yaml:"candidates" toml:"candidates" mapstructure:"candidates"`

	// Timeout is the maximum duration for a single request.
	// 0 uses the provider default.
	Timeout time.Duration `json:"timeout" yaml:"timeout" toml:"timeout" mapstructure:"timeout"`

	// Tools lists tool definitions forwarded to providers that support
	// tool calling.
	Tools []Tool `json:"tools,omitempty" yaml:"tools,omitempty" toml:"tools" mapstructure:"tools"`

	// Options holds provider-specific configuration not covered by the
	// standard fields. See each provider's documentation.
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty" toml:"options" mapstructure:"options"`
}

// FromEnv returns a Config for the "openai" provider with the credential
// read from OPENAI_API_KEY. Absence is not validated here; an empty key
// surfaces as an authentication failure from the remote API.
func FromEnv() Config {
	return Config{
		Provider: "openai",
		APIKey:   os.Getenv(APIKeyEnv),
	}
}

// LoadFile reads a Config from a .toml, .yaml/.yml, or .json file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse toml config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse yaml config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse json config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported config format: %s", path)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Temperature < 0 {
		return fmt.Errorf("temperature must be >= 0, got %v", c.Temperature)
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("max_tokens must be >= 0, got %d", c.MaxTokens)
	}
	if c.Candidates < 0 {
		return fmt.Errorf("candidates must be >= 0, got %d", c.Candidates)
	}
	return nil
}

// GetStringOption returns a string option or the default if absent.
func (c Config) GetStringOption(key, def string) string {
	if c.Options == nil {
		return def
	}
	if v, ok := c.Options[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// GetBoolOption returns a bool option or the default if absent.
// String values "true"/"false" are accepted for config-file friendliness.
func (c Config) GetBoolOption(key string, def bool) bool {
	if c.Options == nil {
		return def
	}
	v, ok := c.Options[key]
	if !ok {
		return def
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return def
}

// GetIntOption returns an int option or the default if absent.
func (c Config) GetIntOption(key string, def int) int {
	if c.Options == nil {
		return def
	}
	v, ok := c.Options[key]
	if !ok {
		return def
	}
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	case string:
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return def
}
