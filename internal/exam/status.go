package exam

import "fmt"

// Status is the lifecycle state of an exam session.
type Status int

const (
	StatusNotStarted          Status = iota // Idle; the only state that accepts Start
	StatusGeneratingQuestions               // Waiting on the generator or the fallback decision
	StatusInProgress                        // Questions served, countdown running
	StatusGrading                           // Scored; waiting on the feedback composer
	StatusFinished                          // Result available until restart
)

var statusNames = [...]string{
	StatusNotStarted:          "not_started",
	StatusGeneratingQuestions: "generating_questions",
	StatusInProgress:          "in_progress",
	StatusGrading:             "grading",
	StatusFinished:            "finished",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Source records where the session's questions came from.
type Source string

const (
	SourceGenerator Source = "generator"
	SourceFallback  Source = "fallback"
)

// FinishReason records what ended the InProgress phase.
type FinishReason string

const (
	FinishManual  FinishReason = "manual"  // FinishNow
	FinishTimer   FinishReason = "timer"   // countdown reached zero
	FinishAdvance FinishReason = "advance" // Advance on the last question
)

// FeedbackSource records who wrote the result narrative.
type FeedbackSource string

const (
	FeedbackComposer FeedbackSource = "composer"
	FeedbackFallback FeedbackSource = "fallback"
)
