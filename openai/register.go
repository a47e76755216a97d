package openai

import "github.com/randalmurphal/chatkit/provider"

func init() {
	provider.Register("openai", newFromProviderConfig)
}

// newFromProviderConfig is the factory function registered with the
// provider registry.
func newFromProviderConfig(cfg provider.Config) (provider.Client, error) {
	return NewClient(cfg)
}
