package history

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edcenter/mocktest/internal/exam"
	"github.com/edcenter/mocktest/internal/feedback"
	"github.com/edcenter/mocktest/internal/question"
	"github.com/edcenter/mocktest/internal/store"
)

func testQuestions() []question.Question {
	mk := func(id, subject string, correct int) question.Question {
		return question.Question{
			ID:           id,
			Subject:      subject,
			Difficulty:   question.DifficultyBasic,
			Cognitive:    question.CognitiveRemember,
			Stem:         "Stem " + id,
			Options:      [question.OptionCount]string{"a", "b", "c", "d"},
			CorrectIndex: correct,
		}
	}
	return []question.Question{
		mk("q1", "Physics", 0),
		mk("q2", "Physics", 1),
		mk("q3", "Chemistry", 2),
	}
}

// finishedSnapshot plays a short exam to completion on a bare machine.
func finishedSnapshot(t *testing.T) exam.Snapshot {
	t.Helper()
	m := exam.NewMachine(time.Minute, nil, rand.New(rand.NewPCG(1, 2)), feedback.DefaultFallback())
	m.Apply(exam.StartEvent{SessionID: "sess-1", Criteria: question.Criteria{
		Subjects: []string{"Physics", "Chemistry"}, Count: 3, GradeLevel: "9",
	}})
	m.Apply(exam.GeneratedEvent{Epoch: m.Epoch(), Questions: testQuestions()})
	m.Apply(exam.AnswerEvent{QuestionID: "q1", Index: 0})
	m.Apply(exam.AnswerEvent{QuestionID: "q3", Index: 1})
	m.Apply(exam.ToggleReviewEvent{QuestionID: "q2"})
	m.Apply(exam.TickEvent{Epoch: m.Epoch()})
	m.Apply(exam.FinishNowEvent{})
	m.Apply(exam.ComposedEvent{Epoch: m.Epoch(), Err: errors.New("offline")})

	s := m.Snapshot()
	require.Equal(t, exam.StatusFinished, s.Status)
	return s
}

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAttemptFromSnapshot(t *testing.T) {
	data, err := AttemptFromSnapshot(finishedSnapshot(t))
	require.NoError(t, err)

	assert.Equal(t, "sess-1", data.SessionID)
	assert.Equal(t, []string{"Chemistry", "Physics"}, data.Subjects)
	assert.Equal(t, "cbse", data.System)
	assert.Equal(t, "standard", data.Variant)
	assert.Equal(t, "generator", data.QuestionSource)
	assert.Equal(t, 3, data.TotalQuestions)
	assert.Equal(t, 1, data.CorrectAnswers)
	assert.Equal(t, 2, data.Answered)
	assert.InDelta(t, 33.33, data.Percent, 0.01)
	assert.Equal(t, "manual", data.FinishReason)
	assert.Equal(t, "fallback", data.FeedbackSource)
	assert.Equal(t, 60, data.BudgetSecs)
	assert.Equal(t, 1, data.ElapsedSecs)
	assert.Equal(t, []store.SubjectTally{
		{Subject: "Chemistry", Correct: 0, Total: 1},
		{Subject: "Physics", Correct: 1, Total: 2},
	}, data.BySubject)

	require.Len(t, data.Answers, 3)
	q2 := data.Answers[1]
	assert.Equal(t, "q2", q2.QuestionID)
	assert.Equal(t, -1, q2.ChosenIndex)
	assert.True(t, q2.MarkedForReview)
	assert.Equal(t, "basic", q2.Difficulty)
	assert.Equal(t, "remember", q2.Cognitive)
}

func TestAttemptFromSnapshot_NotFinished(t *testing.T) {
	_, err := AttemptFromSnapshot(exam.Snapshot{SessionID: "x"})
	assert.ErrorContains(t, err, "not finished")
}

func TestRecorder_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	rec := NewRecorder(s.EventRepo(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	rec.OnFinish(finishedSnapshot(t))

	attempts, err := rec.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, "sess-1", attempts[0].SessionID)
	assert.Equal(t, 1, attempts[0].CorrectAnswers)

	answers, err := rec.Answers(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, answers, 3)
	assert.Equal(t, []string{"q1", "q2", "q3"}, []string{answers[0].QuestionID, answers[1].QuestionID, answers[2].QuestionID})
}

type failingRepo struct{ Repo }

func (failingRepo) AppendExamAttempt(context.Context, store.ExamAttemptData) error {
	return errors.New("disk full")
}

func TestRecorder_RecordError(t *testing.T) {
	rec := NewRecorder(failingRepo{}, nil)
	err := rec.Record(context.Background(), finishedSnapshot(t))
	assert.ErrorContains(t, err, "disk full")

	// OnFinish swallows the error.
	assert.NotPanics(t, func() { rec.OnFinish(finishedSnapshot(t)) })
}
