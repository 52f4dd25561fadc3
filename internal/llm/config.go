// Package llm provides the optional LLM collaborator: model configuration,
// a provider-agnostic client, and the resume judging calls built on it.
// Every caller must tolerate this package failing; the deterministic engine
// is the fallback for all of it.
package llm

// ModelTier represents the capability level asked of the provider.
type ModelTier string

const (
	// TierLite is for cheap calls: judging, short structured output.
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: multi-candidate ranking.
	TierStandard ModelTier = "standard"
)

// Config holds model selection per tier.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model configuration.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// GetModel returns the model for a tier, falling back to the lite model.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	return c.Models[TierLite]
}
