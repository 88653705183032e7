package question

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrNoSubjects is returned for criteria with an empty subject set.
	ErrNoSubjects = errors.New("at least one subject is required")

	// ErrInvalidCount is returned for a non-positive question count.
	ErrInvalidCount = errors.New("question count must be positive")
)

// System is the curriculum board the exam is written for.
type System string

const (
	SystemCBSE          System = "cbse"
	SystemICSE          System = "icse"
	SystemStateBoard    System = "state"
	SystemInternational System = "international"
)

// Valid reports whether s is a known curriculum system.
func (s System) Valid() bool {
	switch s {
	case SystemCBSE, SystemICSE, SystemStateBoard, SystemInternational:
		return true
	}
	return false
}

// ParseSystem parses a curriculum system label. An empty string maps to CBSE.
func ParseSystem(s string) (System, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SystemCBSE, nil
	}
	sys := System(s)
	if !sys.Valid() {
		return "", fmt.Errorf("unknown curriculum system %q", s)
	}
	return sys, nil
}

// Variant selects the style of exam to generate.
type Variant string

const (
	// VariantStandard mirrors a regular board exam paper.
	VariantStandard Variant = "standard"

	// VariantChallenge skews toward advanced, higher-order questions.
	VariantChallenge Variant = "challenge"

	// VariantRevision favors basic recall and understanding questions.
	VariantRevision Variant = "revision"
)

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	switch v {
	case VariantStandard, VariantChallenge, VariantRevision:
		return true
	}
	return false
}

// ParseVariant parses a variant label. An empty string maps to standard.
func ParseVariant(s string) (Variant, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return VariantStandard, nil
	}
	v := Variant(s)
	if !v.Valid() {
		return "", fmt.Errorf("unknown exam variant %q", s)
	}
	return v, nil
}

// Criteria describes the exam a student asked for.
type Criteria struct {
	// Subjects is the non-empty set of subjects to draw questions from.
	Subjects []string `json:"subjects"`

	// Count is the requested number of questions.
	Count int `json:"count"`

	// GradeLevel is a free-form grade label, e.g. "10".
	GradeLevel string `json:"grade_level"`

	System  System  `json:"system"`
	Variant Variant `json:"variant"`
}

// Normalize trims subject labels, drops blanks and duplicates (compared
// case-insensitively) and sorts the result. The first spelling of each
// subject is kept.
func (c Criteria) Normalize() Criteria {
	seen := make(map[string]bool, len(c.Subjects))
	subjects := make([]string, 0, len(c.Subjects))
	for _, s := range c.Subjects {
		s = strings.TrimSpace(s)
		key := NormalizeSubject(s)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		subjects = append(subjects, s)
	}
	slices.SortFunc(subjects, func(a, b string) int {
		return strings.Compare(NormalizeSubject(a), NormalizeSubject(b))
	})
	c.Subjects = subjects
	c.GradeLevel = strings.TrimSpace(c.GradeLevel)
	if c.System == "" {
		c.System = SystemCBSE
	}
	if c.Variant == "" {
		c.Variant = VariantStandard
	}
	return c
}

// Validate reports the first precondition c violates. Call it on a
// normalized Criteria.
func (c Criteria) Validate() error {
	if len(c.Subjects) == 0 {
		return ErrNoSubjects
	}
	if c.Count <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, c.Count)
	}
	if !c.System.Valid() {
		return fmt.Errorf("unknown education system %q", c.System)
	}
	if !c.Variant.Valid() {
		return fmt.Errorf("unknown exam variant %q", c.Variant)
	}
	return nil
}

// HasSubject reports whether subject is one of the requested subjects.
func (c Criteria) HasSubject(subject string) bool {
	_, ok := c.matchSubject(subject)
	return ok
}

// CanonicalSubject returns the requested spelling of subject, or subject
// unchanged when it was not requested.
func (c Criteria) CanonicalSubject(subject string) string {
	if s, ok := c.matchSubject(subject); ok {
		return s
	}
	return subject
}

func (c Criteria) matchSubject(subject string) (string, bool) {
	key := NormalizeSubject(subject)
	for _, s := range c.Subjects {
		if NormalizeSubject(s) == key {
			return s, true
		}
	}
	return "", false
}
