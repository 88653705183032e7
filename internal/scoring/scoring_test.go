package scoring

import (
	"fmt"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/edcenter/mocktest/internal/question"
)

func q(id, subject string, d question.Difficulty, c question.CognitiveLevel, correct int) question.Question {
	return question.Question{
		ID:           id,
		Subject:      subject,
		Difficulty:   d,
		Cognitive:    c,
		Stem:         "Stem " + id,
		Options:      [question.OptionCount]string{"A-" + id, "B-" + id, "C-" + id, "D-" + id},
		CorrectIndex: correct,
	}
}

func sampleExam() []question.Question {
	return []question.Question{
		q("q1", "Physics", question.DifficultyBasic, question.CognitiveRemember, 0),
		q("q2", "Physics", question.DifficultyAdvanced, question.CognitiveAnalyze, 1),
		q("q3", "Chemistry", question.DifficultyIntermediate, question.CognitiveApply, 2),
		q("q4", "Chemistry", question.DifficultyBasic, question.CognitiveRemember, 3),
		q("q5", "Biology", question.DifficultyIntermediate, question.CognitiveApply, 0),
	}
}

func TestScore_AllUnanswered(t *testing.T) {
	qs := []question.Question{
		q("a", "Physics", question.DifficultyBasic, question.CognitiveRemember, 0),
		q("b", "Physics", question.DifficultyBasic, question.CognitiveRemember, 1),
		q("c", "Physics", question.DifficultyBasic, question.CognitiveRemember, 2),
	}

	b := Score(qs, AnswerMap{})

	if b.TotalCorrect != 0 {
		t.Errorf("TotalCorrect = %d, want 0", b.TotalCorrect)
	}
	if b.TotalQuestions != 3 {
		t.Errorf("TotalQuestions = %d, want 3", b.TotalQuestions)
	}
	if got := b.BySubject["Physics"]; got != (Tally{Correct: 0, Total: 3}) {
		t.Errorf("BySubject[Physics] = %+v, want {0 3}", got)
	}
}

func TestScore_UnansweredIsNotOptionZero(t *testing.T) {
	qs := []question.Question{q("a", "Physics", question.DifficultyBasic, question.CognitiveRemember, 0)}

	if got := Score(qs, AnswerMap{}).TotalCorrect; got != 0 {
		t.Errorf("unanswered scored as correct: TotalCorrect = %d", got)
	}
	if got := Score(qs, AnswerMap{"a": 0}).TotalCorrect; got != 1 {
		t.Errorf("explicit option 0 not scored: TotalCorrect = %d", got)
	}
}

func TestScore_Mixed(t *testing.T) {
	answers := AnswerMap{
		"q1": 0, // correct
		"q2": 3, // wrong
		"q3": 2, // correct
		"q5": 1, // wrong
	}

	b := Score(sampleExam(), answers)

	if b.TotalCorrect != 2 || b.TotalQuestions != 5 {
		t.Fatalf("total = %d/%d, want 2/5", b.TotalCorrect, b.TotalQuestions)
	}
	if got := b.Percent(); got != 40 {
		t.Errorf("Percent = %v, want 40", got)
	}

	wantSubject := map[string]Tally{
		"Physics":   {Correct: 1, Total: 2},
		"Chemistry": {Correct: 1, Total: 2},
		"Biology":   {Correct: 0, Total: 1},
	}
	if !reflect.DeepEqual(b.BySubject, wantSubject) {
		t.Errorf("BySubject = %+v, want %+v", b.BySubject, wantSubject)
	}

	wantCognitive := map[question.CognitiveLevel]Tally{
		question.CognitiveRemember: {Correct: 1, Total: 2},
		question.CognitiveAnalyze:  {Correct: 0, Total: 1},
		question.CognitiveApply:    {Correct: 1, Total: 2},
	}
	if !reflect.DeepEqual(b.ByCognitive, wantCognitive) {
		t.Errorf("ByCognitive = %+v, want %+v", b.ByCognitive, wantCognitive)
	}

	wantDifficulty := map[question.Difficulty]Tally{
		question.DifficultyBasic:        {Correct: 1, Total: 2},
		question.DifficultyIntermediate: {Correct: 1, Total: 2},
		question.DifficultyAdvanced:     {Correct: 0, Total: 1},
	}
	if !reflect.DeepEqual(b.ByDifficulty, wantDifficulty) {
		t.Errorf("ByDifficulty = %+v, want %+v", b.ByDifficulty, wantDifficulty)
	}

	if got := b.Weakest(); got != "Biology" {
		t.Errorf("Weakest = %q, want Biology", got)
	}
}

func TestScore_MappingTotalsAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	subjects := []string{"Physics", "Chemistry", "Biology", "History"}

	for trial := range 50 {
		n := 1 + rng.IntN(30)
		qs := make([]question.Question, n)
		answers := AnswerMap{}
		for i := range n {
			id := fmt.Sprintf("t%d-q%d", trial, i)
			qs[i] = q(id,
				subjects[rng.IntN(len(subjects))],
				question.Difficulties[rng.IntN(len(question.Difficulties))],
				question.CognitiveLevels[rng.IntN(len(question.CognitiveLevels))],
				rng.IntN(question.OptionCount))
			if rng.IntN(3) > 0 {
				answers[id] = rng.IntN(question.OptionCount)
			}
		}

		b := Score(qs, answers)
		if b.TotalCorrect > b.TotalQuestions {
			t.Fatalf("trial %d: TotalCorrect %d > TotalQuestions %d", trial, b.TotalCorrect, b.TotalQuestions)
		}
		if sum := sumTotals(b.BySubject); sum != b.TotalQuestions {
			t.Errorf("trial %d: BySubject totals = %d, want %d", trial, sum, b.TotalQuestions)
		}
		if sum := sumTotals(b.ByCognitive); sum != b.TotalQuestions {
			t.Errorf("trial %d: ByCognitive totals = %d, want %d", trial, sum, b.TotalQuestions)
		}
		if sum := sumTotals(b.ByDifficulty); sum != b.TotalQuestions {
			t.Errorf("trial %d: ByDifficulty totals = %d, want %d", trial, sum, b.TotalQuestions)
		}

		// Deterministic for identical inputs.
		if again := Score(qs, answers); !reflect.DeepEqual(b, again) {
			t.Errorf("trial %d: Score is not deterministic", trial)
		}
	}
}

func sumTotals[K comparable](m map[K]Tally) int {
	total := 0
	for _, t := range m {
		total += t.Total
	}
	return total
}

func TestBreakdownKeyOrder(t *testing.T) {
	b := Score(sampleExam(), nil)

	if got, want := b.Subjects(), []string{"Biology", "Chemistry", "Physics"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Subjects = %v, want %v", got, want)
	}
	wantCog := []question.CognitiveLevel{question.CognitiveRemember, question.CognitiveApply, question.CognitiveAnalyze}
	if got := b.CognitiveLevels(); !reflect.DeepEqual(got, wantCog) {
		t.Errorf("CognitiveLevels = %v, want %v", got, wantCog)
	}
	wantDiff := []question.Difficulty{question.DifficultyBasic, question.DifficultyIntermediate, question.DifficultyAdvanced}
	if got := b.Difficulties(); !reflect.DeepEqual(got, wantDiff) {
		t.Errorf("Difficulties = %v, want %v", got, wantDiff)
	}
}

func TestTallyPercent(t *testing.T) {
	if got := (Tally{}).Percent(); got != 0 {
		t.Errorf("empty Percent = %v, want 0", got)
	}
	if got := (Tally{Correct: 3, Total: 4}).Percent(); got != 75 {
		t.Errorf("Percent = %v, want 75", got)
	}
}
