package inquiry

// Config controls the behavior of the Extractor.
type Config struct {
	// MaxTokens is the token budget for the model response.
	MaxTokens int

	// Temperature runs cooler than scenario generation: keyword
	// extraction rewards precision over variety.
	Temperature float64

	// MaxSourceChars bounds how much source text goes into the prompt.
	MaxSourceChars int
}

// DefaultConfig returns recommended extraction defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:      1024,
		Temperature:    0.3,
		MaxSourceChars: 9000,
	}
}
