package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
// Results are returned newest first.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To

	// Purpose restricts LLM event queries to one purpose label.
	Purpose string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token usage for one purpose.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates token usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// SubjectTally is the per-subject score of an attempt.
type SubjectTally struct {
	Subject string
	Correct int
	Total   int
}

// ExamAnswerData is the outcome of one question in a finished exam.
type ExamAnswerData struct {
	QuestionID      string
	Subject         string
	Difficulty      string
	Cognitive       string
	Stem            string
	ChosenIndex     int // -1 when unanswered
	CorrectIndex    int
	Correct         bool
	MarkedForReview bool
}

// ExamAttemptData captures a finished exam.
type ExamAttemptData struct {
	SessionID      string
	Subjects       []string
	GradeLevel     string
	System         string
	Variant        string
	QuestionSource string
	TotalQuestions int
	CorrectAnswers int
	Answered       int
	Percent        float64
	FinishReason   string
	FeedbackSource string
	BudgetSecs     int
	ElapsedSecs    int
	BySubject      []SubjectTally
	Answers        []ExamAnswerData
}

// ExamAttempt is a stored exam attempt. Answers are loaded separately
// with ExamAnswers.
type ExamAttempt struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	ExamAttemptData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents lists LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns the event with the given id, or nil if none exists.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates usage per purpose, sorted by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates usage per model, sorted by model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// AppendExamAttempt records a finished exam and its per-question answers.
	AppendExamAttempt(ctx context.Context, data ExamAttemptData) error

	// QueryExamAttempts lists exam attempts, newest first.
	QueryExamAttempts(ctx context.Context, opts QueryOpts) ([]ExamAttempt, error)

	// ExamAnswers returns the answers recorded for a session in exam order.
	ExamAnswers(ctx context.Context, sessionID string) ([]ExamAnswerData, error)
}
