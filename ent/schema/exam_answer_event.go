package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExamAnswerEvent records the outcome of a single question in a finished exam.
type ExamAnswerEvent struct {
	ent.Schema
}

func (ExamAnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ExamAnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to ExamAttemptEvent"),
		field.String("question_id").
			NotEmpty(),
		field.String("subject").
			NotEmpty(),
		field.String("difficulty").
			NotEmpty(),
		field.String("cognitive").
			NotEmpty(),
		field.String("stem").
			NotEmpty().
			Comment("The question shown"),
		field.Int("chosen_index").
			Comment("-1 when unanswered"),
		field.Int("correct_index"),
		field.Bool("correct"),
		field.Bool("marked_for_review").
			Default(false),
	}
}

func (ExamAnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("subject"),
		index.Fields("correct"),
	}
}
