package exam

import (
	"github.com/edcenter/mocktest/internal/question"
	"github.com/edcenter/mocktest/internal/scoring"
)

// Result is the outcome of a finished exam. It is never modified after
// the session reaches Finished.
type Result struct {
	Breakdown      scoring.Breakdown    `json:"breakdown"`
	Review         []scoring.ReviewItem `json:"review"`
	Narrative      string               `json:"narrative"`
	Tips           []string             `json:"tips"`
	FeedbackSource FeedbackSource       `json:"feedback_source"`
	FinishReason   FinishReason         `json:"finish_reason"`
	ElapsedSeconds int                  `json:"elapsed_seconds"`
}

// QuestionView is a question as shown during the exam. The correct
// option is withheld.
type QuestionView struct {
	Index      int                          `json:"index"`
	ID         string                       `json:"id"`
	Subject    string                       `json:"subject"`
	Difficulty question.Difficulty          `json:"difficulty"`
	Cognitive  question.CognitiveLevel      `json:"cognitive_level"`
	Stem       string                       `json:"stem"`
	Options    [question.OptionCount]string `json:"options"`

	// Chosen is the answered option or scoring.Unanswered.
	Chosen int  `json:"chosen"`
	Marked bool `json:"marked_for_review"`
}

// NavItem is one cell of the navigation map.
type NavItem struct {
	QuestionID string `json:"question_id"`
	Answered   bool   `json:"answered"`
	Marked     bool   `json:"marked_for_review"`
	Current    bool   `json:"current"`
}

// Snapshot is a read-only copy of the session published after every event.
type Snapshot struct {
	SessionID        string            `json:"session_id,omitempty"`
	Seq              uint64            `json:"seq"`
	Epoch            Epoch             `json:"epoch"`
	Status           Status            `json:"status"`
	Criteria         question.Criteria `json:"criteria"`
	Source           Source            `json:"source,omitempty"`
	BudgetSeconds    int               `json:"budget_seconds"`
	RemainingSeconds int               `json:"remaining_seconds"`
	Current          int               `json:"current"`
	Total            int               `json:"total"`
	Answered         int               `json:"answered"`
	Marked           int               `json:"marked_for_review"`
	Question         *QuestionView     `json:"question,omitempty"`
	Navigation       []NavItem         `json:"navigation,omitempty"`
	Result           *Result           `json:"result,omitempty"`

	// Err is the user-facing condition from the last failed start.
	Err       error  `json:"-"`
	LastError string `json:"last_error,omitempty"`

	// Questions is the full question set, correct options included. It
	// is for hosts that persist or review a finished exam and is never
	// serialized.
	Questions []question.Question `json:"-"`

	// MarkedIDs lists the questions marked for review, sorted.
	MarkedIDs []string `json:"-"`
}

