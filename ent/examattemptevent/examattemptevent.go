// Code generated by ent, DO NOT EDIT.

package examattemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the examattemptevent type in the database.
	Label = "exam_attempt_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldSubjects holds the string denoting the subjects field in the database.
	FieldSubjects = "subjects"
	// FieldGradeLevel holds the string denoting the grade_level field in the database.
	FieldGradeLevel = "grade_level"
	// FieldSystem holds the string denoting the system field in the database.
	FieldSystem = "system"
	// FieldVariant holds the string denoting the variant field in the database.
	FieldVariant = "variant"
	// FieldQuestionSource holds the string denoting the question_source field in the database.
	FieldQuestionSource = "question_source"
	// FieldTotalQuestions holds the string denoting the total_questions field in the database.
	FieldTotalQuestions = "total_questions"
	// FieldCorrectAnswers holds the string denoting the correct_answers field in the database.
	FieldCorrectAnswers = "correct_answers"
	// FieldAnswered holds the string denoting the answered field in the database.
	FieldAnswered = "answered"
	// FieldPercent holds the string denoting the percent field in the database.
	FieldPercent = "percent"
	// FieldFinishReason holds the string denoting the finish_reason field in the database.
	FieldFinishReason = "finish_reason"
	// FieldFeedbackSource holds the string denoting the feedback_source field in the database.
	FieldFeedbackSource = "feedback_source"
	// FieldBudgetSecs holds the string denoting the budget_secs field in the database.
	FieldBudgetSecs = "budget_secs"
	// FieldElapsedSecs holds the string denoting the elapsed_secs field in the database.
	FieldElapsedSecs = "elapsed_secs"
	// FieldBySubject holds the string denoting the by_subject field in the database.
	FieldBySubject = "by_subject"
	// Table holds the table name of the examattemptevent in the database.
	Table = "exam_attempt_events"
)

// Columns holds all SQL columns for examattemptevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldSubjects,
	FieldGradeLevel,
	FieldSystem,
	FieldVariant,
	FieldQuestionSource,
	FieldTotalQuestions,
	FieldCorrectAnswers,
	FieldAnswered,
	FieldPercent,
	FieldFinishReason,
	FieldFeedbackSource,
	FieldBudgetSecs,
	FieldElapsedSecs,
	FieldBySubject,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultGradeLevel holds the default value on creation for the "grade_level" field.
	DefaultGradeLevel string
	// DefaultSystem holds the default value on creation for the "system" field.
	DefaultSystem string
	// DefaultVariant holds the default value on creation for the "variant" field.
	DefaultVariant string
	// QuestionSourceValidator is a validator for the "question_source" field. It is called by the builders before save.
	QuestionSourceValidator func(string) error
	// DefaultAnswered holds the default value on creation for the "answered" field.
	DefaultAnswered int
	// FinishReasonValidator is a validator for the "finish_reason" field. It is called by the builders before save.
	FinishReasonValidator func(string) error
	// FeedbackSourceValidator is a validator for the "feedback_source" field. It is called by the builders before save.
	FeedbackSourceValidator func(string) error
)

// OrderOption defines the ordering options for the ExamAttemptEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByGradeLevel orders the results by the grade_level field.
func ByGradeLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGradeLevel, opts...).ToFunc()
}

// BySystem orders the results by the system field.
func BySystem(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSystem, opts...).ToFunc()
}

// ByVariant orders the results by the variant field.
func ByVariant(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVariant, opts...).ToFunc()
}

// ByQuestionSource orders the results by the question_source field.
func ByQuestionSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionSource, opts...).ToFunc()
}

// ByTotalQuestions orders the results by the total_questions field.
func ByTotalQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalQuestions, opts...).ToFunc()
}

// ByCorrectAnswers orders the results by the correct_answers field.
func ByCorrectAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswers, opts...).ToFunc()
}

// ByAnswered orders the results by the answered field.
func ByAnswered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswered, opts...).ToFunc()
}

// ByPercent orders the results by the percent field.
func ByPercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPercent, opts...).ToFunc()
}

// ByFinishReason orders the results by the finish_reason field.
func ByFinishReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishReason, opts...).ToFunc()
}

// ByFeedbackSource orders the results by the feedback_source field.
func ByFeedbackSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeedbackSource, opts...).ToFunc()
}

// ByBudgetSecs orders the results by the budget_secs field.
func ByBudgetSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBudgetSecs, opts...).ToFunc()
}

// ByElapsedSecs orders the results by the elapsed_secs field.
func ByElapsedSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldElapsedSecs, opts...).ToFunc()
}
