package casegen

// Config controls the behavior of the Generator.
type Config struct {
	// MaxTokens is the token budget for the model response. Scenario
	// batches are large, so the budget is generous.
	MaxTokens int

	// Temperature controls output randomness. Generation runs warm so
	// repeated calls over the same chapter produce fresh scenarios.
	Temperature float64

	// MaxSourceChars bounds how much source text goes into the prompt.
	MaxSourceChars int
}

// DefaultConfig returns recommended generation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:      4096,
		Temperature:    0.8,
		MaxSourceChars: 9000,
	}
}
