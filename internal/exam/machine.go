package exam

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/edcenter/mocktest/internal/feedback"
	"github.com/edcenter/mocktest/internal/question"
	"github.com/edcenter/mocktest/internal/scoring"
)

// Bank is the static fallback catalog.
type Bank interface {
	// Lookup returns the questions whose subject is one of subjects.
	Lookup(subjects []string) []question.Question
}

// Machine is the session state machine. Apply is its only mutator; it
// performs no I/O and returns the work the host must do as Effects.
// A Machine is not safe for concurrent use.
type Machine struct {
	budget     int
	bank       Bank
	rng        *rand.Rand
	fallback   *feedback.Fallback
	validators []question.Validator

	status    Status
	epoch     Epoch
	sessionID string
	criteria  question.Criteria
	source    Source
	questions []question.Question
	index     int
	clock     Countdown
	ledger    *Ledger
	review    *ReviewSet

	// Set on entry to Grading.
	breakdown scoring.Breakdown
	items     []scoring.ReviewItem
	reason    FinishReason

	result  *Result
	lastErr error
}

// NewMachine returns a Machine in NotStarted. budget is rounded down to
// whole seconds, with a minimum of one second. rng drives the fallback
// shuffle and fb writes feedback when the composer fails.
func NewMachine(budget time.Duration, bank Bank, rng *rand.Rand, fb *feedback.Fallback) *Machine {
	return &Machine{
		budget:     max(int(budget/time.Second), 1),
		bank:       bank,
		rng:        rng,
		fallback:   fb,
		validators: []question.Validator{&question.StructuralValidator{}},
		ledger:     NewLedger(),
		review:     NewReviewSet(),
	}
}

// Status returns the current status.
func (m *Machine) Status() Status { return m.status }

// Epoch returns the current epoch.
func (m *Machine) Epoch() Epoch { return m.epoch }

// Apply performs one transition.
func (m *Machine) Apply(ev Event) []Effect {
	switch ev := ev.(type) {
	case StartEvent:
		return m.start(ev)
	case GeneratedEvent:
		if eff := m.check(ev, ev.Epoch, StatusGeneratingQuestions); eff != nil {
			return eff
		}
		return m.generated(ev)
	case FallbackDecisionEvent:
		if eff := m.check(ev, ev.Epoch, StatusGeneratingQuestions); eff != nil {
			return eff
		}
		return m.fallbackDecided(ev.Accepted)
	case TickEvent:
		if eff := m.check(ev, ev.Epoch, StatusInProgress); eff != nil {
			return eff
		}
		if m.clock.Tick() {
			return m.beginGrading(FinishTimer)
		}
		return nil
	case AnswerEvent:
		if eff := m.check(ev, m.epoch, StatusInProgress); eff != nil {
			return eff
		}
		if !m.known(ev.QuestionID) {
			return ignore(ev, "unknown question id")
		}
		if !question.ValidOption(ev.Index) {
			return ignore(ev, fmt.Sprintf("option %d out of range", ev.Index))
		}
		m.ledger.Set(ev.QuestionID, ev.Index)
		return nil
	case ToggleReviewEvent:
		if eff := m.check(ev, m.epoch, StatusInProgress); eff != nil {
			return eff
		}
		if !m.known(ev.QuestionID) {
			return ignore(ev, "unknown question id")
		}
		m.review.Toggle(ev.QuestionID)
		return nil
	case NavigateEvent:
		if eff := m.check(ev, m.epoch, StatusInProgress); eff != nil {
			return eff
		}
		if ev.Index < 0 || ev.Index >= len(m.questions) {
			return ignore(ev, fmt.Sprintf("index %d out of range", ev.Index))
		}
		m.index = ev.Index
		return nil
	case AdvanceEvent:
		if eff := m.check(ev, m.epoch, StatusInProgress); eff != nil {
			return eff
		}
		if m.index == len(m.questions)-1 {
			return m.beginGrading(FinishAdvance)
		}
		m.index++
		return nil
	case BackEvent:
		if eff := m.check(ev, m.epoch, StatusInProgress); eff != nil {
			return eff
		}
		if m.index == 0 {
			return ignore(ev, "already on the first question")
		}
		m.index--
		return nil
	case FinishNowEvent:
		if eff := m.check(ev, m.epoch, StatusInProgress); eff != nil {
			return eff
		}
		return m.beginGrading(FinishManual)
	case ComposedEvent:
		if eff := m.check(ev, ev.Epoch, StatusGrading); eff != nil {
			return eff
		}
		return m.finish(ev)
	case RestartEvent:
		m.reset()
		m.epoch++
		return []Effect{StopTimerEffect{}}
	default:
		return ignore(ev, fmt.Sprintf("unknown event %T", ev))
	}
}

// check drops events from an earlier epoch and events that do not apply
// to the current status.
func (m *Machine) check(ev Event, epoch Epoch, want Status) []Effect {
	if epoch != m.epoch {
		return []Effect{IgnoreEffect{Event: ev, Reason: fmt.Sprintf("stale epoch %d, current %d", epoch, m.epoch), Stale: true}}
	}
	if m.status != want {
		return ignore(ev, fmt.Sprintf("not applicable in status %s", m.status))
	}
	return nil
}

func ignore(ev Event, reason string) []Effect {
	return []Effect{IgnoreEffect{Event: ev, Reason: reason}}
}

func (m *Machine) known(questionID string) bool {
	for _, q := range m.questions {
		if q.ID == questionID {
			return true
		}
	}
	return false
}

func (m *Machine) start(ev StartEvent) []Effect {
	if m.status != StatusNotStarted {
		return ignore(ev, fmt.Sprintf("start not applicable in status %s; restart first", m.status))
	}
	c := ev.Criteria.Normalize()
	if err := c.Validate(); err != nil {
		return []Effect{RejectEffect{Err: err}}
	}

	m.reset()
	m.epoch++
	m.sessionID = ev.SessionID
	m.criteria = c
	m.status = StatusGeneratingQuestions
	return []Effect{GenerateEffect{Epoch: m.epoch, Criteria: c}}
}

func (m *Machine) generated(ev GeneratedEvent) []Effect {
	cause := ev.Err
	if cause == nil {
		qs := ev.Questions
		if len(qs) > m.criteria.Count {
			qs = qs[:m.criteria.Count]
		}
		if err := question.ValidateSet(qs, m.criteria, m.validators...); err != nil {
			cause = err
		} else {
			return m.begin(qs, SourceGenerator)
		}
	}
	return []Effect{ConfirmFallbackEffect{Epoch: m.epoch, Cause: cause}}
}

func (m *Machine) fallbackDecided(accepted bool) []Effect {
	if !accepted {
		return m.fail(errors.Join(ErrNoQuestionsAvailable, ErrFallbackDeclined))
	}

	pool := m.bank.Lookup(m.criteria.Subjects)
	m.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	pool = pool[:min(m.criteria.Count, len(pool))]
	if len(pool) == 0 {
		return m.fail(ErrNoQuestionsAvailable)
	}
	return m.begin(pool, SourceFallback)
}

// begin starts the exam on qs. Subjects are rewritten to the spelling
// in the criteria so the breakdown has one key per requested subject.
func (m *Machine) begin(qs []question.Question, src Source) []Effect {
	m.questions = make([]question.Question, len(qs))
	for i, q := range qs {
		q.Subject = m.criteria.CanonicalSubject(q.Subject)
		m.questions[i] = q
	}
	m.source = src
	m.index = 0
	m.ledger = NewLedger()
	m.review = NewReviewSet()
	m.clock.Reset(m.budget)
	m.status = StatusInProgress
	return []Effect{StartTimerEffect{Epoch: m.epoch}}
}

func (m *Machine) fail(err error) []Effect {
	epoch := m.epoch
	m.reset()
	m.lastErr = err
	return []Effect{FailedEffect{Epoch: epoch, Err: err}}
}

func (m *Machine) beginGrading(reason FinishReason) []Effect {
	m.status = StatusGrading
	m.reason = reason
	m.breakdown = scoring.Score(m.questions, m.ledger)
	m.items = scoring.BuildReview(m.questions, m.ledger)
	return []Effect{
		StopTimerEffect{},
		ComposeEffect{Epoch: m.epoch, Breakdown: m.breakdown, GradeLevel: m.criteria.GradeLevel},
	}
}

func (m *Machine) finish(ev ComposedEvent) []Effect {
	fb, src := ev.Feedback, FeedbackComposer
	if ev.Err != nil || fb.Narrative == "" {
		fb, src = m.fallback.For(m.breakdown), FeedbackFallback
	}
	m.result = &Result{
		Breakdown:      m.breakdown,
		Review:         m.items,
		Narrative:      fb.Narrative,
		Tips:           fb.Tips,
		FeedbackSource: src,
		FinishReason:   m.reason,
		ElapsedSeconds: m.clock.Elapsed(),
	}
	m.status = StatusFinished
	return []Effect{FinishedEffect{Epoch: m.epoch}}
}

// reset clears all session state except the epoch.
func (m *Machine) reset() {
	m.status = StatusNotStarted
	m.sessionID = ""
	m.criteria = question.Criteria{}
	m.source = ""
	m.questions = nil
	m.index = 0
	m.clock = Countdown{}
	m.ledger = NewLedger()
	m.review = NewReviewSet()
	m.breakdown = scoring.Breakdown{}
	m.items = nil
	m.reason = ""
	m.result = nil
	m.lastErr = nil
}

// Snapshot returns a copy of the session state.
func (m *Machine) Snapshot() Snapshot {
	s := Snapshot{
		SessionID:        m.sessionID,
		Epoch:            m.epoch,
		Status:           m.status,
		Criteria:         m.criteria,
		Source:           m.source,
		BudgetSeconds:    m.budget,
		RemainingSeconds: m.clock.Remaining(),
		Current:          m.index,
		Total:            len(m.questions),
		Answered:         m.ledger.Len(),
		Marked:           m.review.Len(),
		Result:           m.result,
		Err:              m.lastErr,
		Questions:        m.questions,
		MarkedIDs:        m.review.IDs(),
	}
	if m.lastErr != nil {
		s.LastError = m.lastErr.Error()
	}
	if m.status == StatusGeneratingQuestions || m.status == StatusNotStarted {
		return s
	}

	s.Navigation = make([]NavItem, len(m.questions))
	for i, q := range m.questions {
		_, answered := m.ledger.Choice(q.ID)
		s.Navigation[i] = NavItem{
			QuestionID: q.ID,
			Answered:   answered,
			Marked:     m.review.Has(q.ID),
			Current:    i == m.index,
		}
	}

	if m.status == StatusInProgress {
		q := m.questions[m.index]
		chosen, ok := m.ledger.Choice(q.ID)
		if !ok {
			chosen = scoring.Unanswered
		}
		s.Question = &QuestionView{
			Index:      m.index,
			ID:         q.ID,
			Subject:    q.Subject,
			Difficulty: q.Difficulty,
			Cognitive:  q.Cognitive,
			Stem:       q.Stem,
			Options:    q.Options,
			Chosen:     chosen,
			Marked:     m.review.Has(q.ID),
		}
	}
	return s
}
