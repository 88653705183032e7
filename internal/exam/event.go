package exam

import (
	"github.com/edcenter/mocktest/internal/feedback"
	"github.com/edcenter/mocktest/internal/question"
	"github.com/edcenter/mocktest/internal/scoring"
)

// Event is an input to Machine.Apply. The set is closed.
type Event interface {
	isEvent()
}

// Epoch identifies one start of a session. Results of async work carry
// the epoch they were started for and are dropped once it has moved on.
type Epoch uint64

// User commands.
type (
	StartEvent struct {
		SessionID string
		Criteria  question.Criteria
	}
	AnswerEvent struct {
		QuestionID string
		Index      int
	}
	ToggleReviewEvent struct {
		QuestionID string
	}
	NavigateEvent struct {
		Index int
	}
	AdvanceEvent   struct{}
	BackEvent      struct{}
	FinishNowEvent struct{}
	RestartEvent   struct{}
)

// Completions of async work and clock ticks.
type (
	GeneratedEvent struct {
		Epoch     Epoch
		Questions []question.Question
		Err       error
	}
	FallbackDecisionEvent struct {
		Epoch    Epoch
		Accepted bool
	}
	TickEvent struct {
		Epoch Epoch
	}
	ComposedEvent struct {
		Epoch    Epoch
		Feedback feedback.Feedback
		Err      error
	}
)

func (StartEvent) isEvent()            {}
func (AnswerEvent) isEvent()           {}
func (ToggleReviewEvent) isEvent()     {}
func (NavigateEvent) isEvent()         {}
func (AdvanceEvent) isEvent()          {}
func (BackEvent) isEvent()             {}
func (FinishNowEvent) isEvent()        {}
func (RestartEvent) isEvent()          {}
func (GeneratedEvent) isEvent()        {}
func (FallbackDecisionEvent) isEvent() {}
func (TickEvent) isEvent()             {}
func (ComposedEvent) isEvent()         {}

// Effect is an instruction from Machine.Apply to its host. The Machine
// performs no I/O itself.
type Effect interface {
	isEffect()
}

type (
	// GenerateEffect asks the host to call the question generator.
	GenerateEffect struct {
		Epoch    Epoch
		Criteria question.Criteria
	}

	// ConfirmFallbackEffect asks the host whether the question bank may
	// be used, after the generator failed with Cause.
	ConfirmFallbackEffect struct {
		Epoch Epoch
		Cause error
	}

	// StartTimerEffect asks for one TickEvent per second tagged with Epoch.
	StartTimerEffect struct {
		Epoch Epoch
	}

	// StopTimerEffect cancels the ticker.
	StopTimerEffect struct{}

	// ComposeEffect asks the host to call the feedback composer.
	ComposeEffect struct {
		Epoch      Epoch
		Breakdown  scoring.Breakdown
		GradeLevel string
	}

	// FinishedEffect reports that a Result is available.
	FinishedEffect struct {
		Epoch Epoch
	}

	// FailedEffect reports a start that ended back in NotStarted.
	FailedEffect struct {
		Epoch Epoch
		Err   error
	}

	// RejectEffect reports a synchronous precondition failure. State is
	// unchanged.
	RejectEffect struct {
		Err error
	}

	// IgnoreEffect reports an event that did not apply. State is unchanged.
	IgnoreEffect struct {
		Event  Event
		Reason string
		Stale  bool
	}
)

func (GenerateEffect) isEffect()        {}
func (ConfirmFallbackEffect) isEffect() {}
func (StartTimerEffect) isEffect()      {}
func (StopTimerEffect) isEffect()       {}
func (ComposeEffect) isEffect()         {}
func (FinishedEffect) isEffect()        {}
func (FailedEffect) isEffect()          {}
func (RejectEffect) isEffect()          {}
func (IgnoreEffect) isEffect()          {}
