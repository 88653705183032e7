// Package feedback turns a score breakdown into a short narrative and a
// few study tips, either from an LLM or from localized templates.
package feedback

import (
	"context"
	"errors"

	"github.com/edcenter/mocktest/internal/llm"
	"github.com/edcenter/mocktest/internal/scoring"
)

// ErrEmptyNarrative is returned when a composer produced no narrative.
var ErrEmptyNarrative = errors.New("feedback narrative is empty")

// Feedback is the prose part of an exam result.
type Feedback struct {
	Narrative string   `json:"narrative"`
	Tips      []string `json:"tips"`
}

// Composer writes feedback for a finished exam. Implementations must not
// restate the scores in b as their own numbers; b is authoritative.
type Composer interface {
	Compose(ctx context.Context, b scoring.Breakdown, gradeLevel string) (Feedback, error)
}

// Unavailable is a Composer for hosts running without an LLM provider.
// It always fails with llm.ErrNotConfigured so callers use the fallback.
type Unavailable struct{}

func (Unavailable) Compose(context.Context, scoring.Breakdown, string) (Feedback, error) {
	return Feedback{}, llm.ErrNotConfigured
}
