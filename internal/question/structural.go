package question

import (
	"fmt"
	"strings"
)

const (
	maxStemLen        = 1000
	maxOptionLen      = 300
	maxExplanationLen = 1500
)

// StructuralValidator checks that required fields are present, within
// length limits and carry valid enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ Criteria) *ValidationError {
	if strings.TrimSpace(q.Stem) == "" {
		return v.fail("stem is empty")
	}
	if len(q.Stem) > maxStemLen {
		return v.fail(fmt.Sprintf("stem exceeds %d characters", maxStemLen))
	}
	if strings.TrimSpace(q.Subject) == "" {
		return v.fail("subject is empty")
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return v.fail(fmt.Sprintf("option %s is empty", OptionLabel(i)))
		}
		if len(opt) > maxOptionLen {
			return v.fail(fmt.Sprintf("option %s exceeds %d characters", OptionLabel(i), maxOptionLen))
		}
	}
	if !ValidOption(q.CorrectIndex) {
		return v.fail(fmt.Sprintf("correct_index %d is out of range 0-%d", q.CorrectIndex, OptionCount-1))
	}
	if !q.Difficulty.Valid() {
		return v.fail(fmt.Sprintf("unknown difficulty %q", q.Difficulty))
	}
	if !q.Cognitive.Valid() {
		return v.fail(fmt.Sprintf("unknown cognitive level %q", q.Cognitive))
	}
	if len(q.Explanation) > maxExplanationLen {
		return v.fail(fmt.Sprintf("explanation exceeds %d characters", maxExplanationLen))
	}
	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
}

// SubjectValidator rejects questions whose subject was not requested.
type SubjectValidator struct{}

func (v *SubjectValidator) Name() string { return "subject" }

func (v *SubjectValidator) Validate(q *Question, c Criteria) *ValidationError {
	if len(c.Subjects) == 0 || c.HasSubject(q.Subject) {
		return nil
	}
	return &ValidationError{
		Validator: v.Name(),
		Message:   fmt.Sprintf("subject %q was not requested", q.Subject),
		Retryable: true,
	}
}

// DistinctOptionsValidator rejects questions with two options that read
// the same once case and surrounding whitespace are ignored.
type DistinctOptionsValidator struct{}

func (v *DistinctOptionsValidator) Name() string { return "distinct-options" }

func (v *DistinctOptionsValidator) Validate(q *Question, _ Criteria) *ValidationError {
	seen := make(map[string]int, OptionCount)
	for i, opt := range q.Options {
		key := strings.ToLower(strings.TrimSpace(opt))
		if j, dup := seen[key]; dup {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("options %s and %s are identical", OptionLabel(j), OptionLabel(i)),
				Retryable: true,
			}
		}
		seen[key] = i
	}
	return nil
}
