package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExamAttemptEvent records one finished exam.
type ExamAttemptEvent struct {
	ent.Schema
}

func (ExamAttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// SubjectTally is the persisted per-subject slice of a score breakdown.
type SubjectTally struct {
	Subject string `json:"subject"`
	Correct int    `json:"correct"`
	Total   int    `json:"total"`
}

func (ExamAttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the exam session"),
		field.JSON("subjects", []string{}).
			Comment("Requested subjects"),
		field.String("grade_level").
			Default(""),
		field.String("system").
			Default(""),
		field.String("variant").
			Default(""),
		field.String("question_source").
			NotEmpty().
			Comment("generator or fallback"),
		field.Int("total_questions"),
		field.Int("correct_answers"),
		field.Int("answered").
			Default(0).
			Comment("Questions with an answer in the ledger"),
		field.Float("percent"),
		field.String("finish_reason").
			NotEmpty().
			Comment("manual, timer or advance"),
		field.String("feedback_source").
			NotEmpty().
			Comment("composer or fallback"),
		field.Int("budget_secs"),
		field.Int("elapsed_secs"),
		field.JSON("by_subject", []SubjectTally{}).
			Optional(),
	}
}

func (ExamAttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("finish_reason"),
	}
}
