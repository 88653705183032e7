// Package scoring grades a finished exam. Everything here is pure and
// deterministic: the same questions and answers always produce the same
// breakdown and review list.
package scoring

import (
	"slices"
	"strings"

	"github.com/edcenter/mocktest/internal/question"
)

// Unanswered is the ChosenIndex of a review item the student never answered.
const Unanswered = -1

// Answers is a read-only view of the chosen option per question.
type Answers interface {
	// Choice returns the chosen option index for questionID and whether
	// an answer was recorded at all.
	Choice(questionID string) (int, bool)
}

// AnswerMap is the simplest Answers implementation.
type AnswerMap map[string]int

func (m AnswerMap) Choice(questionID string) (int, bool) {
	idx, ok := m[questionID]
	return idx, ok
}

// Tally counts correct answers out of a total.
type Tally struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Percent returns Correct/Total as a percentage, 0 when Total is 0.
func (t Tally) Percent() float64 {
	if t.Total == 0 {
		return 0
	}
	return float64(t.Correct) * 100 / float64(t.Total)
}

// Breakdown is the multi-dimensional score of one exam. Each mapping's
// totals sum to TotalQuestions.
type Breakdown struct {
	TotalCorrect   int `json:"total_correct"`
	TotalQuestions int `json:"total_questions"`

	BySubject    map[string]Tally                  `json:"by_subject"`
	ByCognitive  map[question.CognitiveLevel]Tally `json:"by_cognitive_level"`
	ByDifficulty map[question.Difficulty]Tally     `json:"by_difficulty"`
}

// Percent returns the overall score as a percentage.
func (b Breakdown) Percent() float64 {
	return Tally{Correct: b.TotalCorrect, Total: b.TotalQuestions}.Percent()
}

// Subjects returns the subject keys sorted alphabetically.
func (b Breakdown) Subjects() []string {
	keys := make([]string, 0, len(b.BySubject))
	for k := range b.BySubject {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, c string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(c))
	})
	return keys
}

// CognitiveLevels returns the present cognitive keys in taxonomy order.
func (b Breakdown) CognitiveLevels() []question.CognitiveLevel {
	var out []question.CognitiveLevel
	for _, l := range question.CognitiveLevels {
		if _, ok := b.ByCognitive[l]; ok {
			out = append(out, l)
		}
	}
	return out
}

// Difficulties returns the present difficulty keys from basic to advanced.
func (b Breakdown) Difficulties() []question.Difficulty {
	var out []question.Difficulty
	for _, d := range question.Difficulties {
		if _, ok := b.ByDifficulty[d]; ok {
			out = append(out, d)
		}
	}
	return out
}

// Weakest returns the subject with the lowest percentage, ties broken
// alphabetically. It returns "" for an empty breakdown.
func (b Breakdown) Weakest() string {
	weakest := ""
	lowest := 101.0
	for _, s := range b.Subjects() {
		if p := b.BySubject[s].Percent(); p < lowest {
			weakest, lowest = s, p
		}
	}
	return weakest
}

// Score grades qs against answers. A question is correct iff an answer
// exists and equals its CorrectIndex. Each question adds one unit to
// exactly one key of every mapping.
func Score(qs []question.Question, answers Answers) Breakdown {
	b := Breakdown{
		BySubject:    make(map[string]Tally),
		ByCognitive:  make(map[question.CognitiveLevel]Tally),
		ByDifficulty: make(map[question.Difficulty]Tally),
	}

	for _, q := range qs {
		correct := isCorrect(q, answers)

		b.TotalQuestions++
		if correct {
			b.TotalCorrect++
		}
		b.BySubject[q.Subject] = bump(b.BySubject[q.Subject], correct)
		b.ByCognitive[q.Cognitive] = bump(b.ByCognitive[q.Cognitive], correct)
		b.ByDifficulty[q.Difficulty] = bump(b.ByDifficulty[q.Difficulty], correct)
	}

	return b
}

func isCorrect(q question.Question, answers Answers) bool {
	if answers == nil {
		return false
	}
	idx, ok := answers.Choice(q.ID)
	return ok && idx == q.CorrectIndex
}

func bump(t Tally, correct bool) Tally {
	t.Total++
	if correct {
		t.Correct++
	}
	return t
}
