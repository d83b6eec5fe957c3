package insight

import "time"

// Config holds narrative generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// DefaultConfig returns defaults tuned for a three-sentence answer.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   400,
		Temperature: 0.3,
		Timeout:     20 * time.Second,
	}
}
