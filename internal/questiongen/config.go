package questiongen

import "github.com/edcenter/mocktest/internal/question"

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators run on every generated question, in order. The first
	// failure rejects the whole batch.
	Validators []question.Validator

	// MaxTokens is the token budget for the LLM response. It is scaled
	// by the requested count when larger than this floor.
	MaxTokens int

	// Temperature is the base randomness. The exam variant nudges it.
	Temperature float64

	// MaxAttempts bounds how many times the model is asked when its
	// output fails validation. Transport errors are retried by the
	// llm retry decorator, not here.
	MaxAttempts int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators:  question.DefaultValidators(),
		MaxTokens:   4096,
		Temperature: 0.7,
		MaxAttempts: 2,
	}
}

// tokensPerQuestion is a generous estimate of one serialized question.
const tokensPerQuestion = 350

func (c Config) maxTokensFor(count int) int {
	return max(c.MaxTokens, count*tokensPerQuestion)
}
