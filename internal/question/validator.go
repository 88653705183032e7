package question

import (
	"fmt"
	"strings"
)

// Validator checks a single question for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier used in error messages,
	// e.g. "structural" or "subject".
	Name() string

	// Validate returns nil if q passes, or a ValidationError describing
	// the first problem found. The criteria the question was produced
	// for are passed for context.
	Validate(q *Question, c Criteria) *ValidationError
}

// ValidationError describes why a question (or question set) failed validation.
type ValidationError struct {
	Validator  string // Name of the validator that failed
	QuestionID string // Offending question, empty for set-level failures
	Message    string // Human-readable description of the failure
	Retryable  bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	if e.QuestionID != "" {
		return fmt.Sprintf("validator %q: question %s: %s", e.Validator, e.QuestionID, e.Message)
	}
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// DefaultValidators returns the full validator chain applied to
// generated questions.
func DefaultValidators() []Validator {
	return []Validator{
		&StructuralValidator{},
		&SubjectValidator{},
		&DistinctOptionsValidator{},
	}
}

// ValidateSet checks that qs is non-empty, that ids are unique and that
// every question passes each validator in order. The first failure is
// returned as a *ValidationError.
func ValidateSet(qs []Question, c Criteria, validators ...Validator) error {
	if len(qs) == 0 {
		return &ValidationError{
			Validator: "set",
			Message:   "no questions",
			Retryable: true,
		}
	}

	seen := make(map[string]bool, len(qs))
	for i := range qs {
		id := strings.TrimSpace(qs[i].ID)
		if id == "" {
			return &ValidationError{
				Validator: "set",
				Message:   fmt.Sprintf("question at position %d has no id", i+1),
				Retryable: true,
			}
		}
		if seen[id] {
			return &ValidationError{
				Validator:  "set",
				QuestionID: id,
				Message:    "duplicate question id",
				Retryable:  true,
			}
		}
		seen[id] = true

		for _, v := range validators {
			if verr := v.Validate(&qs[i], c); verr != nil {
				verr.QuestionID = id
				return verr
			}
		}
	}
	return nil
}
