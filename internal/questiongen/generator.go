package questiongen

import (
	"context"

	"github.com/edcenter/mocktest/internal/llm"
	"github.com/edcenter/mocktest/internal/question"
)

// Generator produces the question set for one exam.
type Generator interface {
	// Generate returns at most c.Count questions for the requested
	// subjects. Every returned question has passed the configured
	// validators and carries an id unique within the set.
	Generate(ctx context.Context, c question.Criteria) ([]question.Question, error)
}

// Unavailable is a Generator for hosts running without an LLM provider.
// It always fails with llm.ErrNotConfigured, which sends the exam straight
// to the question bank.
type Unavailable struct{}

func (Unavailable) Generate(context.Context, question.Criteria) ([]question.Question, error) {
	return nil, llm.ErrNotConfigured
}
