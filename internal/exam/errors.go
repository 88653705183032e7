package exam

import (
	"errors"

	"github.com/edcenter/mocktest/internal/question"
)

var (
	// ErrNoSubjects rejects a Start with an empty subject set.
	ErrNoSubjects = question.ErrNoSubjects

	// ErrInvalidCount rejects a Start with a non-positive question count.
	ErrInvalidCount = question.ErrInvalidCount

	// ErrNoQuestionsAvailable is the user-facing condition left on the
	// session when neither the generator nor the question bank could
	// supply questions for the selection.
	ErrNoQuestionsAvailable = errors.New("could not build an exam for this selection")

	// ErrFallbackDeclined is joined with ErrNoQuestionsAvailable when the
	// caller refused to use the question bank.
	ErrFallbackDeclined = errors.New("fallback to the question bank was declined")
)
