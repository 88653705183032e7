package question

import (
	"fmt"
	"strings"
)

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// Question is a single multiple-choice exam item.
type Question struct {
	// ID is unique within one exam session. Answers and review flags
	// are keyed by it.
	ID string `json:"id"`

	// Subject is the subject label used for bank filtering and the
	// per-subject score breakdown, e.g. "Physics".
	Subject string `json:"subject"`

	Difficulty Difficulty     `json:"difficulty"`
	Cognitive  CognitiveLevel `json:"cognitive_level"`

	// Stem is the question prompt shown to the student.
	Stem string `json:"stem"`

	// Options holds exactly four ordered answer choices.
	Options [OptionCount]string `json:"options"`

	// CorrectIndex is the position of the correct option, 0-3.
	CorrectIndex int `json:"correct_index"`

	// Explanation is an optional worked solution shown on the review list.
	Explanation string `json:"explanation,omitempty"`
}

// CorrectOption returns the text of the correct option.
func (q Question) CorrectOption() string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= OptionCount {
		return ""
	}
	return q.Options[q.CorrectIndex]
}

// ValidOption reports whether idx addresses one of the four options.
func ValidOption(idx int) bool {
	return idx >= 0 && idx < OptionCount
}

// OptionLabel returns the display letter for an option index (A-D).
func OptionLabel(idx int) string {
	if !ValidOption(idx) {
		return "?"
	}
	return string(rune('A' + idx))
}

// Difficulty is the coarse difficulty bucket of a question.
type Difficulty string

const (
	DifficultyBasic        Difficulty = "basic"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Difficulties lists every difficulty in ascending order.
var Difficulties = []Difficulty{DifficultyBasic, DifficultyIntermediate, DifficultyAdvanced}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBasic, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// ParseDifficulty parses a difficulty label, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
	return d, nil
}

// CognitiveLevel is the Bloom's taxonomy level a question targets.
type CognitiveLevel string

const (
	CognitiveRemember   CognitiveLevel = "remember"
	CognitiveUnderstand CognitiveLevel = "understand"
	CognitiveApply      CognitiveLevel = "apply"
	CognitiveAnalyze    CognitiveLevel = "analyze"
	CognitiveEvaluate   CognitiveLevel = "evaluate"
	CognitiveCreate     CognitiveLevel = "create"
)

// CognitiveLevels lists every level from lowest to highest order.
var CognitiveLevels = []CognitiveLevel{
	CognitiveRemember,
	CognitiveUnderstand,
	CognitiveApply,
	CognitiveAnalyze,
	CognitiveEvaluate,
	CognitiveCreate,
}

// Valid reports whether c is a known cognitive level.
func (c CognitiveLevel) Valid() bool {
	for _, l := range CognitiveLevels {
		if c == l {
			return true
		}
	}
	return false
}

// ParseCognitive parses a cognitive level label, case-insensitively.
func ParseCognitive(s string) (CognitiveLevel, error) {
	c := CognitiveLevel(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown cognitive level %q", s)
	}
	return c, nil
}

// NormalizeSubject returns the comparison key for a subject label.
func NormalizeSubject(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
