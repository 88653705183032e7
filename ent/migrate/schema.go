// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExamAnswerEventsColumns holds the columns for the "exam_answer_events" table.
	ExamAnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "cognitive", Type: field.TypeString},
		{Name: "stem", Type: field.TypeString},
		{Name: "chosen_index", Type: field.TypeInt},
		{Name: "correct_index", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "marked_for_review", Type: field.TypeBool, Default: false},
	}
	// ExamAnswerEventsTable holds the schema information for the "exam_answer_events" table.
	ExamAnswerEventsTable = &schema.Table{
		Name:       "exam_answer_events",
		Columns:    ExamAnswerEventsColumns,
		PrimaryKey: []*schema.Column{ExamAnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "examanswerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ExamAnswerEventsColumns[1]},
			},
			{
				Name:    "examanswerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ExamAnswerEventsColumns[2]},
			},
			{
				Name:    "examanswerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ExamAnswerEventsColumns[3]},
			},
			{
				Name:    "examanswerevent_subject",
				Unique:  false,
				Columns: []*schema.Column{ExamAnswerEventsColumns[5]},
			},
			{
				Name:    "examanswerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{ExamAnswerEventsColumns[11]},
			},
		},
	}
	// ExamAttemptEventsColumns holds the columns for the "exam_attempt_events" table.
	ExamAttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "subjects", Type: field.TypeJSON},
		{Name: "grade_level", Type: field.TypeString, Default: ""},
		{Name: "system", Type: field.TypeString, Default: ""},
		{Name: "variant", Type: field.TypeString, Default: ""},
		{Name: "question_source", Type: field.TypeString},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "correct_answers", Type: field.TypeInt},
		{Name: "answered", Type: field.TypeInt, Default: 0},
		{Name: "percent", Type: field.TypeFloat64},
		{Name: "finish_reason", Type: field.TypeString},
		{Name: "feedback_source", Type: field.TypeString},
		{Name: "budget_secs", Type: field.TypeInt},
		{Name: "elapsed_secs", Type: field.TypeInt},
		{Name: "by_subject", Type: field.TypeJSON, Nullable: true},
	}
	// ExamAttemptEventsTable holds the schema information for the "exam_attempt_events" table.
	ExamAttemptEventsTable = &schema.Table{
		Name:       "exam_attempt_events",
		Columns:    ExamAttemptEventsColumns,
		PrimaryKey: []*schema.Column{ExamAttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "examattemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ExamAttemptEventsColumns[1]},
			},
			{
				Name:    "examattemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ExamAttemptEventsColumns[2]},
			},
			{
				Name:    "examattemptevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ExamAttemptEventsColumns[3]},
			},
			{
				Name:    "examattemptevent_finish_reason",
				Unique:  false,
				Columns: []*schema.Column{ExamAttemptEventsColumns[13]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExamAnswerEventsTable,
		ExamAttemptEventsTable,
		LlmRequestEventsTable,
	}
)

func init() {
}
