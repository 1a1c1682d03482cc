package caseeval

// chunkSize bounds simultaneous provider calls during batch evaluation.
// Fixed policy, not caller-configurable: the ceiling protects rate-limited
// provider APIs regardless of what a caller asks for.
const chunkSize = 3

// passThreshold is the batch pass mark on the 0-10 scale.
const passThreshold = 6.0

// defaultFeedback fills Result.Feedback when the model omitted it.
const defaultFeedback = "Your response has been evaluated. Review the dimension scores and suggested improvements below."

// Config controls the behavior of the Evaluator.
type Config struct {
	// MaxTokens is the token budget for the model response.
	MaxTokens int

	// Temperature is 0 by default: scoring should be repeatable.
	Temperature float64
}

// DefaultConfig returns recommended evaluation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0,
	}
}
