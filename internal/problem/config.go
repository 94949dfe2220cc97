package problem

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the model response.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0). Kept well above
	// zero: repeated requests for the same selection should produce
	// different problems.
	Temperature float64
}

// DefaultConfig returns recommended generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}
