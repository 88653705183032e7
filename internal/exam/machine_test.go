package exam

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edcenter/mocktest/internal/feedback"
	"github.com/edcenter/mocktest/internal/question"
	"github.com/edcenter/mocktest/internal/scoring"
)

// startWith drives a fresh machine into InProgress with qs from the generator.
func startWith(t *testing.T, m *Machine, c question.Criteria, qs []question.Question) {
	t.Helper()
	effects := m.Apply(StartEvent{SessionID: "s1", Criteria: c})
	require.Len(t, effects, 1)
	gen, ok := effects[0].(GenerateEffect)
	require.True(t, ok, "want GenerateEffect, got %T", effects[0])

	effects = m.Apply(GeneratedEvent{Epoch: gen.Epoch, Questions: qs})
	require.Equal(t, []Effect{StartTimerEffect{Epoch: gen.Epoch}}, effects)
	require.Equal(t, StatusInProgress, m.Status())
}

func composeEffect(t *testing.T, effects []Effect) ComposeEffect {
	t.Helper()
	for _, eff := range effects {
		if ce, ok := eff.(ComposeEffect); ok {
			return ce
		}
	}
	t.Fatalf("no ComposeEffect in %v", effects)
	return ComposeEffect{}
}

func isIgnored(effects []Effect) bool {
	if len(effects) != 1 {
		return false
	}
	_, ok := effects[0].(IgnoreEffect)
	return ok
}

func TestStart_Preconditions(t *testing.T) {
	tests := []struct {
		name string
		c    question.Criteria
		want error
	}{
		{"no subjects", criteria(5), ErrNoSubjects},
		{"blank subjects", criteria(5, " ", ""), ErrNoSubjects},
		{"zero count", criteria(0, "Physics"), ErrInvalidCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMachine(time.Minute, fakeBank{})
			effects := m.Apply(StartEvent{Criteria: tt.c})

			require.Len(t, effects, 1)
			rej, ok := effects[0].(RejectEffect)
			require.True(t, ok)
			assert.ErrorIs(t, rej.Err, tt.want)
			assert.Equal(t, StatusNotStarted, m.Status())
			assert.Equal(t, Epoch(0), m.Epoch())
		})
	}
}

func TestStart_IgnoredOutsideNotStarted(t *testing.T) {
	m := newMachine(time.Minute, fakeBank{})
	m.Apply(StartEvent{SessionID: "s1", Criteria: criteria(2, "Physics")})
	epoch := m.Epoch()

	effects := m.Apply(StartEvent{SessionID: "s2", Criteria: criteria(5, "History")})
	assert.True(t, isIgnored(effects), "got %v", effects)
	assert.Equal(t, StatusGeneratingQuestions, m.Status())
	assert.Equal(t, epoch, m.Epoch())
	assert.Equal(t, "s1", m.Snapshot().SessionID)

	m.Apply(GeneratedEvent{Epoch: epoch, Questions: makeQuestions("Physics", 2)})
	require.Equal(t, StatusInProgress, m.Status())
	assert.True(t, isIgnored(m.Apply(StartEvent{Criteria: criteria(2, "Physics")})))
	assert.NoError(t, m.Snapshot().Err)

	m.Apply(FinishNowEvent{})
	m.Apply(ComposedEvent{Epoch: m.Epoch(), Err: errors.New("composer down")})
	require.Equal(t, StatusFinished, m.Status())
	assert.True(t, isIgnored(m.Apply(StartEvent{Criteria: criteria(2, "Physics")})))
	assert.Equal(t, StatusFinished, m.Status())
}

func TestGenerated_EntersInProgress(t *testing.T) {
	m := newMachine(10*time.Minute, fakeBank{})
	qs := append(makeQuestions("Physics", 5), makeQuestions("Chemistry", 5)...)
	startWith(t, m, criteria(10, "Physics", "Chemistry"), qs)

	s := m.Snapshot()
	assert.Equal(t, 10, s.Total)
	assert.Equal(t, 600, s.RemainingSeconds)
	assert.Equal(t, 600, s.BudgetSeconds)
	assert.Equal(t, 0, s.Current)
	assert.Equal(t, 0, s.Answered)
	assert.Equal(t, SourceGenerator, s.Source)
	assert.Equal(t, "s1", s.SessionID)
	require.NotNil(t, s.Question)
	assert.Equal(t, qs[0].ID, s.Question.ID)
	assert.Equal(t, scoring.Unanswered, s.Question.Chosen)
	assert.Len(t, s.Navigation, 10)
}

func TestGenerated_TruncatesToCount(t *testing.T) {
	m := newMachine(time.Minute, fakeBank{})
	startWith(t, m, criteria(3, "Physics"), makeQuestions("Physics", 8))
	assert.Equal(t, 3, m.Snapshot().Total)
}

func TestGenerated_InvalidOutputTriggersFallback(t *testing.T) {
	dup := makeQuestions("Physics", 2)
	dup[1].ID = dup[0].ID
	badIndex := makeQuestions("Physics", 2)
	badIndex[1].CorrectIndex = 4
	emptyStem := makeQuestions("Physics", 2)
	emptyStem[0].Stem = ""
	missingOption := makeQuestions("Physics", 2)
	missingOption[0].Options[3] = ""

	tests := []struct {
		name string
		qs   []question.Question
		err  error
	}{
		{"generator error", nil, errors.New("503")},
		{"empty list", nil, nil},
		{"duplicate ids", dup, nil},
		{"correct index out of range", badIndex, nil},
		{"empty stem", emptyStem, nil},
		{"missing option", missingOption, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMachine(time.Minute, fakeBank{qs: makeQuestions("Physics", 3)})
			m.Apply(StartEvent{Criteria: criteria(2, "Physics")})

			effects := m.Apply(GeneratedEvent{Epoch: m.Epoch(), Questions: tt.qs, Err: tt.err})
			require.Len(t, effects, 1)
			confirm, ok := effects[0].(ConfirmFallbackEffect)
			require.True(t, ok, "want ConfirmFallbackEffect, got %T", effects[0])
			assert.Error(t, confirm.Cause)
			assert.Equal(t, StatusGeneratingQuestions, m.Status())

			m.Apply(FallbackDecisionEvent{Epoch: m.Epoch(), Accepted: true})
			s := m.Snapshot()
			assert.Equal(t, StatusInProgress, s.Status)
			assert.Equal(t, SourceFallback, s.Source)
			assert.Equal(t, 2, s.Total)
		})
	}
}

func TestFallback_TakesAvailableWhenShort(t *testing.T) {
	bank := fakeBank{qs: append(makeQuestions("Physics", 4), makeQuestions("History", 6)...)}
	m := newMachine(time.Minute, bank)
	m.Apply(StartEvent{Criteria: criteria(10, "Physics", "Chemistry")})
	m.Apply(GeneratedEvent{Epoch: m.Epoch(), Err: errors.New("timeout")})
	m.Apply(FallbackDecisionEvent{Epoch: m.Epoch(), Accepted: true})

	s := m.Snapshot()
	require.Equal(t, StatusInProgress, s.Status)
	assert.Equal(t, 4, s.Total)
	for _, q := range s.Questions {
		assert.Equal(t, "Physics", q.Subject)
	}
}

func TestFallback_EmptyPoolReturnsToNotStarted(t *testing.T) {
	m := newMachine(time.Minute, fakeBank{qs: makeQuestions("History", 3)})
	m.Apply(StartEvent{Criteria: criteria(5, "Physics")})
	m.Apply(GeneratedEvent{Epoch: m.Epoch(), Err: errors.New("down")})

	effects := m.Apply(FallbackDecisionEvent{Epoch: m.Epoch(), Accepted: true})
	require.Len(t, effects, 1)
	failed, ok := effects[0].(FailedEffect)
	require.True(t, ok)
	assert.ErrorIs(t, failed.Err, ErrNoQuestionsAvailable)

	s := m.Snapshot()
	assert.Equal(t, StatusNotStarted, s.Status)
	assert.ErrorIs(t, s.Err, ErrNoQuestionsAvailable)
	assert.Equal(t, ErrNoQuestionsAvailable.Error(), s.LastError)
	assert.Zero(t, s.Total)
}

func TestFallback_Declined(t *testing.T) {
	m := newMachine(time.Minute, fakeBank{qs: makeQuestions("Physics", 3)})
	m.Apply(StartEvent{Criteria: criteria(2, "Physics")})
	m.Apply(GeneratedEvent{Epoch: m.Epoch(), Err: errors.New("down")})
	m.Apply(FallbackDecisionEvent{Epoch: m.Epoch(), Accepted: false})

	s := m.Snapshot()
	assert.Equal(t, StatusNotStarted, s.Status)
	assert.ErrorIs(t, s.Err, ErrNoQuestionsAvailable)
	assert.ErrorIs(t, s.Err, ErrFallbackDeclined)

	// A new start is accepted after the failure and clears the error.
	effects := m.Apply(StartEvent{Criteria: criteria(2, "Physics")})
	require.IsType(t, GenerateEffect{}, effects[0])
	assert.NoError(t, m.Snapshot().Err)
}

func TestFallback_ShuffleIsSeeded(t *testing.T) {
	bank := fakeBank{qs: makeQuestions("Physics", 12)}
	order := func() []string {
		m := newMachine(time.Minute, bank)
		m.Apply(StartEvent{Criteria: criteria(5, "Physics")})
		m.Apply(GeneratedEvent{Epoch: m.Epoch(), Err: errors.New("down")})
		m.Apply(FallbackDecisionEvent{Epoch: m.Epoch(), Accepted: true})
		var ids []string
		for _, q := range m.Snapshot().Questions {
			ids = append(ids, q.ID)
		}
		return ids
	}
	first := order()
	assert.Len(t, first, 5)
	assert.Equal(t, first, order())
}

func TestAnswer_OverwriteKeepsOneEntry(t *testing.T) {
	m := newMachine(time.Minute, fakeBank{})
	qs := makeQuestions("Physics", 3)
	startWith(t, m, criteria(3, "Physics"), qs)

	m.Apply(AnswerEvent{QuestionID: qs[0].ID, Index: 1})
	m.Apply(AnswerEvent{QuestionID: qs[0].ID, Index: 3})

	s := m.Snapshot()
	assert.Equal(t, 1, s.Answered)
	assert.Equal(t, 3, s.Question.Chosen)
	idx, ok := m.ledger.Choice(qs[0].ID)
	assert.True(t, ok)
	assert.Equal(t, 3, idx)
	assert.Equal(t, 0, s.Current, "answering must not move the cursor")
}

func TestAnswer_InvalidIsIgnored(t *testing.T) {
	m := newMachine(time.Minute, fakeBank{})
	qs := makeQuestions("Physics", 2)
	startWith(t, m, criteria(2, "Physics"), qs)

	assert.True(t, isIgnored(m.Apply(AnswerEvent{QuestionID: "nope", Index: 0})))
	assert.True(t, isIgnored(m.Apply(AnswerEvent{QuestionID: qs[0].ID, Index: 4})))
	assert.True(t, isIgnored(m.Apply(AnswerEvent{QuestionID: qs[0].ID, Index: -1})))
	assert.Equal(t, 0, m.Snapshot().Answered)
}

func TestToggleReview(t *testing.T) {
	m := newMachine(time.Minute, fakeBank{})
	qs := makeQuestions("Physics", 2)
	startWith(t, m, criteria(2, "Physics"), qs)

	m.Apply(ToggleReviewEvent{QuestionID: qs[1].ID})
	s := m.Snapshot()
	assert.Equal(t, 1, s.Marked)
	assert.True(t, s.Navigation[1].Marked)
	assert.Equal(t, []string{qs[1].ID}, s.MarkedIDs)

	m.Apply(ToggleReviewEvent{QuestionID: qs[1].ID})
	assert.Equal(t, 0, m.Snapshot().Marked)
}

func TestNavigation(t *testing.T) {
	m := newMachine(time.Minute, fakeBank{})
	qs := makeQuestions("Physics", 3)
	startWith(t, m, criteria(3, "Physics"), qs)

	assert.True(t, isIgnored(m.Apply(BackEvent{})))
	assert.True(t, isIgnored(m.Apply(NavigateEvent{Index: 3})))
	assert.True(t, isIgnored(m.Apply(NavigateEvent{Index: -1})))
	assert.Equal(t, 0, m.Snapshot().Current)

	m.Apply(NavigateEvent{Index: 2})
	assert.Equal(t, 2, m.Snapshot().Current)
	assert.True(t, m.Snapshot().Navigation[2].Current)

	m.Apply(BackEvent{})
	assert.Equal(t, 1, m.Snapshot().Current)

	assert.Empty(t, m.Apply(AdvanceEvent{}))
	assert.Equal(t, 2, m.Snapshot().Current)

	effects := m.Apply(AdvanceEvent{})
	assert.Equal(t, StatusGrading, m.Status())
	assert.Equal(t, StopTimerEffect{}, effects[0])
	composeEffect(t, effects)
}

func TestScoring_FiveRightFiveWrong(t *testing.T) {
	m := newMachine(time.Minute, fakeBank{})
	qs := makeQuestions("Physics", 10)
	startWith(t, m, criteria(10, "Physics"), qs)

	for i, q := range qs {
		idx := q.CorrectIndex
		if i >= 5 {
			idx = (q.CorrectIndex + 1) % question.OptionCount
		}
		m.Apply(AnswerEvent{QuestionID: q.ID, Index: idx})
	}
	ce := composeEffect(t, m.Apply(FinishNowEvent{}))

	b := ce.Breakdown
	assert.Equal(t, 5, b.TotalCorrect)
	assert.Equal(t, 10, b.TotalQuestions)
	assert.Equal(t, map[string]scoring.Tally{"Physics": {Correct: 5, Total: 10}}, b.BySubject)
	assert.Equal(t, "10", ce.GradeLevel)
}

func TestSubjectsFollowRequestedSpelling(t *testing.T) {
	mixed := func() []question.Question {
		qs := append(makeQuestions("physics", 2), makeQuestions("PHYSICS ", 2)...)
		for i := range qs {
			qs[i].ID = fmt.Sprintf("q%d", i+1)
		}
		return qs
	}
	want := map[string]scoring.Tally{"Physics": {Correct: 0, Total: 4}}

	t.Run("generator", func(t *testing.T) {
		m := newMachine(time.Minute, fakeBank{})
		qs := mixed()
		startWith(t, m, criteria(4, "Physics"), qs)
		assert.Equal(t, "physics", qs[0].Subject, "caller's slice is left alone")

		ce := composeEffect(t, m.Apply(FinishNowEvent{}))
		assert.Equal(t, want, ce.Breakdown.BySubject)
	})

	t.Run("fallback", func(t *testing.T) {
		m := newMachine(time.Minute, fakeBank{qs: mixed()})
		m.Apply(StartEvent{Criteria: criteria(4, "Physics")})
		m.Apply(GeneratedEvent{Epoch: m.Epoch(), Err: errors.New("down")})
		m.Apply(FallbackDecisionEvent{Epoch: m.Epoch(), Accepted: true})
		require.Equal(t, StatusInProgress, m.Status())
		for _, q := range m.Snapshot().Questions {
			assert.Equal(t, "Physics", q.Subject)
		}

		ce := composeEffect(t, m.Apply(FinishNowEvent{}))
		assert.Equal(t, want, ce.Breakdown.BySubject)
	})
}

func TestTimerExpiry_GradesLedgerAsIs(t *testing.T) {
	const budget = 5
	m := newMachine(budget*time.Second, fakeBank{})
	qs := makeQuestions("Physics", 10)
	startWith(t, m, criteria(10, "Physics"), qs)

	for _, q := range qs[:3] {
		m.Apply(AnswerEvent{QuestionID: q.ID, Index: q.CorrectIndex})
	}

	prev := m.Snapshot().RemainingSeconds
	var effects []Effect
	for range budget {
		effects = m.Apply(TickEvent{Epoch: m.Epoch()})
		r := m.Snapshot().RemainingSeconds
		assert.LessOrEqual(t, r, prev)
		assert.GreaterOrEqual(t, r, 0)
		prev = r
	}
	assert.Equal(t, 0, prev)
	assert.Equal(t, StatusGrading, m.Status())

	ce := composeEffect(t, effects)
	assert.Equal(t, 3, ce.Breakdown.TotalCorrect)
	assert.Equal(t, 10, ce.Breakdown.TotalQuestions)

	// Ticks after expiry change nothing.
	assert.True(t, isIgnored(m.Apply(TickEvent{Epoch: m.Epoch()})))
	assert.Equal(t, 0, m.Snapshot().RemainingSeconds)

	m.Apply(ComposedEvent{Epoch: m.Epoch(), Feedback: feedback.Feedback{Narrative: "ok"}})
	res := m.Snapshot().Result
	require.NotNil(t, res)
	assert.Equal(t, FinishTimer, res.FinishReason)
	assert.Equal(t, budget, res.ElapsedSeconds)
	unanswered := 0
	for _, item := range res.Review {
		if !item.Answered() {
			unanswered++
			assert.False(t, item.Correct)
		}
	}
	assert.Equal(t, 7, unanswered)
}

func TestTicksOutsideInProgressAreIgnored(t *testing.T) {
	m := newMachine(time.Minute, fakeBank{})
	assert.True(t, isIgnored(m.Apply(TickEvent{Epoch: 0})))

	m.Apply(StartEvent{Criteria: criteria(1, "Physics")})
	assert.True(t, isIgnored(m.Apply(TickEvent{Epoch: m.Epoch()})))
	assert.Equal(t, 0, m.Snapshot().RemainingSeconds)
}

func TestComposed_FeedbackSources(t *testing.T) {
	tests := []struct {
		name   string
		ev     ComposedEvent
		source FeedbackSource
	}{
		{"composer", ComposedEvent{Feedback: feedback.Feedback{Narrative: "Well done.", Tips: []string{"a"}}}, FeedbackComposer},
		{"error", ComposedEvent{Err: errors.New("timeout")}, FeedbackFallback},
		{"empty narrative", ComposedEvent{Feedback: feedback.Feedback{Tips: []string{"a"}}}, FeedbackFallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMachine(time.Minute, fakeBank{})
			qs := makeQuestions("Physics", 2)
			startWith(t, m, criteria(2, "Physics"), qs)
			m.Apply(FinishNowEvent{})

			ev := tt.ev
			ev.Epoch = m.Epoch()
			effects := m.Apply(ev)
			assert.Equal(t, []Effect{FinishedEffect{Epoch: m.Epoch()}}, effects)

			res := m.Snapshot().Result
			require.NotNil(t, res)
			assert.Equal(t, tt.source, res.FeedbackSource)
			assert.NotEmpty(t, res.Narrative)
			assert.NotEmpty(t, res.Tips)
			assert.Equal(t, FinishManual, res.FinishReason)
			assert.Equal(t, StatusFinished, m.Status())
		})
	}
}

func TestFinishedIgnoresExamCommands(t *testing.T) {
	m := newMachine(time.Minute, fakeBank{})
	qs := makeQuestions("Physics", 2)
	startWith(t, m, criteria(2, "Physics"), qs)
	m.Apply(FinishNowEvent{})
	m.Apply(ComposedEvent{Epoch: m.Epoch(), Err: errors.New("x")})

	for _, ev := range []Event{
		AnswerEvent{QuestionID: qs[0].ID, Index: 0},
		ToggleReviewEvent{QuestionID: qs[0].ID},
		NavigateEvent{Index: 1},
		AdvanceEvent{},
		BackEvent{},
		FinishNowEvent{},
	} {
		assert.True(t, isIgnored(m.Apply(ev)), "%T should be ignored", ev)
	}
	assert.Equal(t, StatusFinished, m.Status())
}

func TestRestart_DropsStaleResponses(t *testing.T) {
	m := newMachine(time.Minute, fakeBank{})
	m.Apply(StartEvent{Criteria: criteria(2, "Physics")})
	old := m.Epoch()

	assert.Equal(t, []Effect{StopTimerEffect{}}, m.Apply(RestartEvent{}))
	assert.Equal(t, StatusNotStarted, m.Status())

	m.Apply(StartEvent{Criteria: criteria(2, "Chemistry")})
	require.NotEqual(t, old, m.Epoch())

	effects := m.Apply(GeneratedEvent{Epoch: old, Questions: makeQuestions("Physics", 2)})
	require.Len(t, effects, 1)
	ig, ok := effects[0].(IgnoreEffect)
	require.True(t, ok)
	assert.True(t, ig.Stale)
	assert.Equal(t, StatusGeneratingQuestions, m.Status())

	// A stale composer result cannot finish a later session either.
	m.Apply(GeneratedEvent{Epoch: m.Epoch(), Questions: makeQuestions("Chemistry", 2)})
	m.Apply(FinishNowEvent{})
	effects = m.Apply(ComposedEvent{Epoch: old, Feedback: feedback.Feedback{Narrative: "old"}})
	assert.True(t, isIgnored(effects))
	assert.Equal(t, StatusGrading, m.Status())
}

func TestRestart_ClearsFinishedSession(t *testing.T) {
	m := newMachine(time.Minute, fakeBank{})
	qs := makeQuestions("Physics", 2)
	startWith(t, m, criteria(2, "Physics"), qs)
	m.Apply(AnswerEvent{QuestionID: qs[0].ID, Index: 0})
	m.Apply(ToggleReviewEvent{QuestionID: qs[1].ID})
	m.Apply(FinishNowEvent{})
	m.Apply(ComposedEvent{Epoch: m.Epoch(), Err: errors.New("x")})

	m.Apply(RestartEvent{})
	s := m.Snapshot()
	assert.Equal(t, StatusNotStarted, s.Status)
	assert.Nil(t, s.Result)
	assert.Zero(t, s.Total)
	assert.Zero(t, s.Answered)
	assert.Zero(t, s.Marked)
	assert.Empty(t, s.SessionID)

	// The next session starts with an empty ledger.
	startWith(t, m, criteria(2, "Physics"), qs)
	assert.Zero(t, m.Snapshot().Answered)
}
