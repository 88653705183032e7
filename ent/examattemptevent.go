// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/edcenter/mocktest/ent/examattemptevent"
	"github.com/edcenter/mocktest/ent/schema"
)

// ExamAttemptEvent is the model entity for the ExamAttemptEvent schema.
type ExamAttemptEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Store-wide append order, assigned on insert
	Sequence int64 `json:"sequence,omitempty"`
	// When the row was recorded, in UTC
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the exam session
	SessionID string `json:"session_id,omitempty"`
	// Requested subjects
	Subjects []string `json:"subjects,omitempty"`
	// GradeLevel holds the value of the "grade_level" field.
	GradeLevel string `json:"grade_level,omitempty"`
	// System holds the value of the "system" field.
	System string `json:"system,omitempty"`
	// Variant holds the value of the "variant" field.
	Variant string `json:"variant,omitempty"`
	// generator or fallback
	QuestionSource string `json:"question_source,omitempty"`
	// TotalQuestions holds the value of the "total_questions" field.
	TotalQuestions int `json:"total_questions,omitempty"`
	// CorrectAnswers holds the value of the "correct_answers" field.
	CorrectAnswers int `json:"correct_answers,omitempty"`
	// Questions with an answer in the ledger
	Answered int `json:"answered,omitempty"`
	// Percent holds the value of the "percent" field.
	Percent float64 `json:"percent,omitempty"`
	// manual, timer or advance
	FinishReason string `json:"finish_reason,omitempty"`
	// composer or fallback
	FeedbackSource string `json:"feedback_source,omitempty"`
	// BudgetSecs holds the value of the "budget_secs" field.
	BudgetSecs int `json:"budget_secs,omitempty"`
	// ElapsedSecs holds the value of the "elapsed_secs" field.
	ElapsedSecs int `json:"elapsed_secs,omitempty"`
	// BySubject holds the value of the "by_subject" field.
	BySubject    []schema.SubjectTally `json:"by_subject,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExamAttemptEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case examattemptevent.FieldSubjects, examattemptevent.FieldBySubject:
			values[i] = new([]byte)
		case examattemptevent.FieldPercent:
			values[i] = new(sql.NullFloat64)
		case examattemptevent.FieldID, examattemptevent.FieldSequence, examattemptevent.FieldTotalQuestions, examattemptevent.FieldCorrectAnswers, examattemptevent.FieldAnswered, examattemptevent.FieldBudgetSecs, examattemptevent.FieldElapsedSecs:
			values[i] = new(sql.NullInt64)
		case examattemptevent.FieldSessionID, examattemptevent.FieldGradeLevel, examattemptevent.FieldSystem, examattemptevent.FieldVariant, examattemptevent.FieldQuestionSource, examattemptevent.FieldFinishReason, examattemptevent.FieldFeedbackSource:
			values[i] = new(sql.NullString)
		case examattemptevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExamAttemptEvent fields.
func (_m *ExamAttemptEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case examattemptevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case examattemptevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case examattemptevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case examattemptevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case examattemptevent.FieldSubjects:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field subjects", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Subjects); err != nil {
					return fmt.Errorf("unmarshal field subjects: %w", err)
				}
			}
		case examattemptevent.FieldGradeLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grade_level", values[i])
			} else if value.Valid {
				_m.GradeLevel = value.String
			}
		case examattemptevent.FieldSystem:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field system", values[i])
			} else if value.Valid {
				_m.System = value.String
			}
		case examattemptevent.FieldVariant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field variant", values[i])
			} else if value.Valid {
				_m.Variant = value.String
			}
		case examattemptevent.FieldQuestionSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_source", values[i])
			} else if value.Valid {
				_m.QuestionSource = value.String
			}
		case examattemptevent.FieldTotalQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions", values[i])
			} else if value.Valid {
				_m.TotalQuestions = int(value.Int64)
			}
		case examattemptevent.FieldCorrectAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answers", values[i])
			} else if value.Valid {
				_m.CorrectAnswers = int(value.Int64)
			}
		case examattemptevent.FieldAnswered:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field answered", values[i])
			} else if value.Valid {
				_m.Answered = int(value.Int64)
			}
		case examattemptevent.FieldPercent:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field percent", values[i])
			} else if value.Valid {
				_m.Percent = value.Float64
			}
		case examattemptevent.FieldFinishReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field finish_reason", values[i])
			} else if value.Valid {
				_m.FinishReason = value.String
			}
		case examattemptevent.FieldFeedbackSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback_source", values[i])
			} else if value.Valid {
				_m.FeedbackSource = value.String
			}
		case examattemptevent.FieldBudgetSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field budget_secs", values[i])
			} else if value.Valid {
				_m.BudgetSecs = int(value.Int64)
			}
		case examattemptevent.FieldElapsedSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field elapsed_secs", values[i])
			} else if value.Valid {
				_m.ElapsedSecs = int(value.Int64)
			}
		case examattemptevent.FieldBySubject:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field by_subject", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BySubject); err != nil {
					return fmt.Errorf("unmarshal field by_subject: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExamAttemptEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ExamAttemptEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExamAttemptEvent.
// Note that you need to call ExamAttemptEvent.Unwrap() before calling this method if this ExamAttemptEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExamAttemptEvent) Update() *ExamAttemptEventUpdateOne {
	return NewExamAttemptEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExamAttemptEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExamAttemptEvent) Unwrap() *ExamAttemptEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExamAttemptEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExamAttemptEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ExamAttemptEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("subjects=")
	builder.WriteString(fmt.Sprintf("%v", _m.Subjects))
	builder.WriteString(", ")
	builder.WriteString("grade_level=")
	builder.WriteString(_m.GradeLevel)
	builder.WriteString(", ")
	builder.WriteString("system=")
	builder.WriteString(_m.System)
	builder.WriteString(", ")
	builder.WriteString("variant=")
	builder.WriteString(_m.Variant)
	builder.WriteString(", ")
	builder.WriteString("question_source=")
	builder.WriteString(_m.QuestionSource)
	builder.WriteString(", ")
	builder.WriteString("total_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestions))
	builder.WriteString(", ")
	builder.WriteString("correct_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAnswers))
	builder.WriteString(", ")
	builder.WriteString("answered=")
	builder.WriteString(fmt.Sprintf("%v", _m.Answered))
	builder.WriteString(", ")
	builder.WriteString("percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.Percent))
	builder.WriteString(", ")
	builder.WriteString("finish_reason=")
	builder.WriteString(_m.FinishReason)
	builder.WriteString(", ")
	builder.WriteString("feedback_source=")
	builder.WriteString(_m.FeedbackSource)
	builder.WriteString(", ")
	builder.WriteString("budget_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.BudgetSecs))
	builder.WriteString(", ")
	builder.WriteString("elapsed_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.ElapsedSecs))
	builder.WriteString(", ")
	builder.WriteString("by_subject=")
	builder.WriteString(fmt.Sprintf("%v", _m.BySubject))
	builder.WriteByte(')')
	return builder.String()
}

// ExamAttemptEvents is a parsable slice of ExamAttemptEvent.
type ExamAttemptEvents []*ExamAttemptEvent
