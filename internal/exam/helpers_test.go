package exam

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/edcenter/mocktest/internal/feedback"
	"github.com/edcenter/mocktest/internal/question"
)

func makeQuestions(subject string, n int) []question.Question {
	qs := make([]question.Question, n)
	for i := range qs {
		qs[i] = question.Question{
			ID:           fmt.Sprintf("%s-%d", strings.ToLower(subject), i+1),
			Subject:      subject,
			Difficulty:   question.Difficulties[i%len(question.Difficulties)],
			Cognitive:    question.CognitiveLevels[i%len(question.CognitiveLevels)],
			Stem:         fmt.Sprintf("%s question %d?", subject, i+1),
			Options:      [question.OptionCount]string{"alpha", "beta", "gamma", "delta"},
			CorrectIndex: i % question.OptionCount,
		}
	}
	return qs
}

type fakeBank struct {
	qs []question.Question
}

func (b fakeBank) Lookup(subjects []string) []question.Question {
	var out []question.Question
	for _, q := range b.qs {
		for _, s := range subjects {
			if question.NormalizeSubject(s) == question.NormalizeSubject(q.Subject) {
				out = append(out, q)
				break
			}
		}
	}
	return out
}

func criteria(count int, subjects ...string) question.Criteria {
	return question.Criteria{Subjects: subjects, Count: count, GradeLevel: "10"}
}

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func newMachine(budget time.Duration, bank Bank) *Machine {
	return NewMachine(budget, bank, seeded(), feedback.DefaultFallback())
}
