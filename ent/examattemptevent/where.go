// Code generated by ent, DO NOT EDIT.

package examattemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/edcenter/mocktest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldSessionID, v))
}

// GradeLevel applies equality check predicate on the "grade_level" field. It's identical to GradeLevelEQ.
func GradeLevel(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldGradeLevel, v))
}

// System applies equality check predicate on the "system" field. It's identical to SystemEQ.
func System(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldSystem, v))
}

// Variant applies equality check predicate on the "variant" field. It's identical to VariantEQ.
func Variant(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldVariant, v))
}

// QuestionSource applies equality check predicate on the "question_source" field. It's identical to QuestionSourceEQ.
func QuestionSource(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldQuestionSource, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldTotalQuestions, v))
}

// CorrectAnswers applies equality check predicate on the "correct_answers" field. It's identical to CorrectAnswersEQ.
func CorrectAnswers(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldCorrectAnswers, v))
}

// Answered applies equality check predicate on the "answered" field. It's identical to AnsweredEQ.
func Answered(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldAnswered, v))
}

// Percent applies equality check predicate on the "percent" field. It's identical to PercentEQ.
func Percent(v float64) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldPercent, v))
}

// FinishReason applies equality check predicate on the "finish_reason" field. It's identical to FinishReasonEQ.
func FinishReason(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldFinishReason, v))
}

// FeedbackSource applies equality check predicate on the "feedback_source" field. It's identical to FeedbackSourceEQ.
func FeedbackSource(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldFeedbackSource, v))
}

// BudgetSecs applies equality check predicate on the "budget_secs" field. It's identical to BudgetSecsEQ.
func BudgetSecs(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldBudgetSecs, v))
}

// ElapsedSecs applies equality check predicate on the "elapsed_secs" field. It's identical to ElapsedSecsEQ.
func ElapsedSecs(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldElapsedSecs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// GradeLevelEQ applies the EQ predicate on the "grade_level" field.
func GradeLevelEQ(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldGradeLevel, v))
}

// GradeLevelNEQ applies the NEQ predicate on the "grade_level" field.
func GradeLevelNEQ(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNEQ(FieldGradeLevel, v))
}

// GradeLevelIn applies the In predicate on the "grade_level" field.
func GradeLevelIn(vs ...string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldIn(FieldGradeLevel, vs...))
}

// GradeLevelNotIn applies the NotIn predicate on the "grade_level" field.
func GradeLevelNotIn(vs ...string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNotIn(FieldGradeLevel, vs...))
}

// GradeLevelGT applies the GT predicate on the "grade_level" field.
func GradeLevelGT(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGT(FieldGradeLevel, v))
}

// GradeLevelGTE applies the GTE predicate on the "grade_level" field.
func GradeLevelGTE(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGTE(FieldGradeLevel, v))
}

// GradeLevelLT applies the LT predicate on the "grade_level" field.
func GradeLevelLT(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLT(FieldGradeLevel, v))
}

// GradeLevelLTE applies the LTE predicate on the "grade_level" field.
func GradeLevelLTE(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLTE(FieldGradeLevel, v))
}

// GradeLevelContains applies the Contains predicate on the "grade_level" field.
func GradeLevelContains(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldContains(FieldGradeLevel, v))
}

// GradeLevelHasPrefix applies the HasPrefix predicate on the "grade_level" field.
func GradeLevelHasPrefix(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldHasPrefix(FieldGradeLevel, v))
}

// GradeLevelHasSuffix applies the HasSuffix predicate on the "grade_level" field.
func GradeLevelHasSuffix(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldHasSuffix(FieldGradeLevel, v))
}

// GradeLevelEqualFold applies the EqualFold predicate on the "grade_level" field.
func GradeLevelEqualFold(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEqualFold(FieldGradeLevel, v))
}

// GradeLevelContainsFold applies the ContainsFold predicate on the "grade_level" field.
func GradeLevelContainsFold(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldContainsFold(FieldGradeLevel, v))
}

// SystemEQ applies the EQ predicate on the "system" field.
func SystemEQ(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldSystem, v))
}

// SystemNEQ applies the NEQ predicate on the "system" field.
func SystemNEQ(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNEQ(FieldSystem, v))
}

// SystemIn applies the In predicate on the "system" field.
func SystemIn(vs ...string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldIn(FieldSystem, vs...))
}

// SystemNotIn applies the NotIn predicate on the "system" field.
func SystemNotIn(vs ...string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNotIn(FieldSystem, vs...))
}

// SystemGT applies the GT predicate on the "system" field.
func SystemGT(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGT(FieldSystem, v))
}

// SystemGTE applies the GTE predicate on the "system" field.
func SystemGTE(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGTE(FieldSystem, v))
}

// SystemLT applies the LT predicate on the "system" field.
func SystemLT(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLT(FieldSystem, v))
}

// SystemLTE applies the LTE predicate on the "system" field.
func SystemLTE(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLTE(FieldSystem, v))
}

// SystemContains applies the Contains predicate on the "system" field.
func SystemContains(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldContains(FieldSystem, v))
}

// SystemHasPrefix applies the HasPrefix predicate on the "system" field.
func SystemHasPrefix(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldHasPrefix(FieldSystem, v))
}

// SystemHasSuffix applies the HasSuffix predicate on the "system" field.
func SystemHasSuffix(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldHasSuffix(FieldSystem, v))
}

// SystemEqualFold applies the EqualFold predicate on the "system" field.
func SystemEqualFold(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEqualFold(FieldSystem, v))
}

// SystemContainsFold applies the ContainsFold predicate on the "system" field.
func SystemContainsFold(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldContainsFold(FieldSystem, v))
}

// VariantEQ applies the EQ predicate on the "variant" field.
func VariantEQ(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldVariant, v))
}

// VariantNEQ applies the NEQ predicate on the "variant" field.
func VariantNEQ(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNEQ(FieldVariant, v))
}

// VariantIn applies the In predicate on the "variant" field.
func VariantIn(vs ...string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldIn(FieldVariant, vs...))
}

// VariantNotIn applies the NotIn predicate on the "variant" field.
func VariantNotIn(vs ...string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNotIn(FieldVariant, vs...))
}

// VariantGT applies the GT predicate on the "variant" field.
func VariantGT(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGT(FieldVariant, v))
}

// VariantGTE applies the GTE predicate on the "variant" field.
func VariantGTE(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGTE(FieldVariant, v))
}

// VariantLT applies the LT predicate on the "variant" field.
func VariantLT(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLT(FieldVariant, v))
}

// VariantLTE applies the LTE predicate on the "variant" field.
func VariantLTE(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLTE(FieldVariant, v))
}

// VariantContains applies the Contains predicate on the "variant" field.
func VariantContains(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldContains(FieldVariant, v))
}

// VariantHasPrefix applies the HasPrefix predicate on the "variant" field.
func VariantHasPrefix(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldHasPrefix(FieldVariant, v))
}

// VariantHasSuffix applies the HasSuffix predicate on the "variant" field.
func VariantHasSuffix(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldHasSuffix(FieldVariant, v))
}

// VariantEqualFold applies the EqualFold predicate on the "variant" field.
func VariantEqualFold(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEqualFold(FieldVariant, v))
}

// VariantContainsFold applies the ContainsFold predicate on the "variant" field.
func VariantContainsFold(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldContainsFold(FieldVariant, v))
}

// QuestionSourceEQ applies the EQ predicate on the "question_source" field.
func QuestionSourceEQ(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldQuestionSource, v))
}

// QuestionSourceNEQ applies the NEQ predicate on the "question_source" field.
func QuestionSourceNEQ(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNEQ(FieldQuestionSource, v))
}

// QuestionSourceIn applies the In predicate on the "question_source" field.
func QuestionSourceIn(vs ...string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldIn(FieldQuestionSource, vs...))
}

// QuestionSourceNotIn applies the NotIn predicate on the "question_source" field.
func QuestionSourceNotIn(vs ...string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNotIn(FieldQuestionSource, vs...))
}

// QuestionSourceGT applies the GT predicate on the "question_source" field.
func QuestionSourceGT(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGT(FieldQuestionSource, v))
}

// QuestionSourceGTE applies the GTE predicate on the "question_source" field.
func QuestionSourceGTE(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGTE(FieldQuestionSource, v))
}

// QuestionSourceLT applies the LT predicate on the "question_source" field.
func QuestionSourceLT(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLT(FieldQuestionSource, v))
}

// QuestionSourceLTE applies the LTE predicate on the "question_source" field.
func QuestionSourceLTE(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLTE(FieldQuestionSource, v))
}

// QuestionSourceContains applies the Contains predicate on the "question_source" field.
func QuestionSourceContains(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldContains(FieldQuestionSource, v))
}

// QuestionSourceHasPrefix applies the HasPrefix predicate on the "question_source" field.
func QuestionSourceHasPrefix(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldHasPrefix(FieldQuestionSource, v))
}

// QuestionSourceHasSuffix applies the HasSuffix predicate on the "question_source" field.
func QuestionSourceHasSuffix(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldHasSuffix(FieldQuestionSource, v))
}

// QuestionSourceEqualFold applies the EqualFold predicate on the "question_source" field.
func QuestionSourceEqualFold(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEqualFold(FieldQuestionSource, v))
}

// QuestionSourceContainsFold applies the ContainsFold predicate on the "question_source" field.
func QuestionSourceContainsFold(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldContainsFold(FieldQuestionSource, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLTE(FieldTotalQuestions, v))
}

// CorrectAnswersEQ applies the EQ predicate on the "correct_answers" field.
func CorrectAnswersEQ(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersNEQ applies the NEQ predicate on the "correct_answers" field.
func CorrectAnswersNEQ(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersIn applies the In predicate on the "correct_answers" field.
func CorrectAnswersIn(vs ...int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersNotIn applies the NotIn predicate on the "correct_answers" field.
func CorrectAnswersNotIn(vs ...int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNotIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersGT applies the GT predicate on the "correct_answers" field.
func CorrectAnswersGT(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGT(FieldCorrectAnswers, v))
}

// CorrectAnswersGTE applies the GTE predicate on the "correct_answers" field.
func CorrectAnswersGTE(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGTE(FieldCorrectAnswers, v))
}

// CorrectAnswersLT applies the LT predicate on the "correct_answers" field.
func CorrectAnswersLT(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLT(FieldCorrectAnswers, v))
}

// CorrectAnswersLTE applies the LTE predicate on the "correct_answers" field.
func CorrectAnswersLTE(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLTE(FieldCorrectAnswers, v))
}

// AnsweredEQ applies the EQ predicate on the "answered" field.
func AnsweredEQ(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldAnswered, v))
}

// AnsweredNEQ applies the NEQ predicate on the "answered" field.
func AnsweredNEQ(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNEQ(FieldAnswered, v))
}

// AnsweredIn applies the In predicate on the "answered" field.
func AnsweredIn(vs ...int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldIn(FieldAnswered, vs...))
}

// AnsweredNotIn applies the NotIn predicate on the "answered" field.
func AnsweredNotIn(vs ...int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNotIn(FieldAnswered, vs...))
}

// AnsweredGT applies the GT predicate on the "answered" field.
func AnsweredGT(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGT(FieldAnswered, v))
}

// AnsweredGTE applies the GTE predicate on the "answered" field.
func AnsweredGTE(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGTE(FieldAnswered, v))
}

// AnsweredLT applies the LT predicate on the "answered" field.
func AnsweredLT(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLT(FieldAnswered, v))
}

// AnsweredLTE applies the LTE predicate on the "answered" field.
func AnsweredLTE(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLTE(FieldAnswered, v))
}

// PercentEQ applies the EQ predicate on the "percent" field.
func PercentEQ(v float64) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldPercent, v))
}

// PercentNEQ applies the NEQ predicate on the "percent" field.
func PercentNEQ(v float64) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNEQ(FieldPercent, v))
}

// PercentIn applies the In predicate on the "percent" field.
func PercentIn(vs ...float64) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldIn(FieldPercent, vs...))
}

// PercentNotIn applies the NotIn predicate on the "percent" field.
func PercentNotIn(vs ...float64) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNotIn(FieldPercent, vs...))
}

// PercentGT applies the GT predicate on the "percent" field.
func PercentGT(v float64) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGT(FieldPercent, v))
}

// PercentGTE applies the GTE predicate on the "percent" field.
func PercentGTE(v float64) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGTE(FieldPercent, v))
}

// PercentLT applies the LT predicate on the "percent" field.
func PercentLT(v float64) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLT(FieldPercent, v))
}

// PercentLTE applies the LTE predicate on the "percent" field.
func PercentLTE(v float64) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLTE(FieldPercent, v))
}

// FinishReasonEQ applies the EQ predicate on the "finish_reason" field.
func FinishReasonEQ(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldFinishReason, v))
}

// FinishReasonNEQ applies the NEQ predicate on the "finish_reason" field.
func FinishReasonNEQ(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNEQ(FieldFinishReason, v))
}

// FinishReasonIn applies the In predicate on the "finish_reason" field.
func FinishReasonIn(vs ...string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldIn(FieldFinishReason, vs...))
}

// FinishReasonNotIn applies the NotIn predicate on the "finish_reason" field.
func FinishReasonNotIn(vs ...string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNotIn(FieldFinishReason, vs...))
}

// FinishReasonGT applies the GT predicate on the "finish_reason" field.
func FinishReasonGT(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGT(FieldFinishReason, v))
}

// FinishReasonGTE applies the GTE predicate on the "finish_reason" field.
func FinishReasonGTE(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGTE(FieldFinishReason, v))
}

// FinishReasonLT applies the LT predicate on the "finish_reason" field.
func FinishReasonLT(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLT(FieldFinishReason, v))
}

// FinishReasonLTE applies the LTE predicate on the "finish_reason" field.
func FinishReasonLTE(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLTE(FieldFinishReason, v))
}

// FinishReasonContains applies the Contains predicate on the "finish_reason" field.
func FinishReasonContains(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldContains(FieldFinishReason, v))
}

// FinishReasonHasPrefix applies the HasPrefix predicate on the "finish_reason" field.
func FinishReasonHasPrefix(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldHasPrefix(FieldFinishReason, v))
}

// FinishReasonHasSuffix applies the HasSuffix predicate on the "finish_reason" field.
func FinishReasonHasSuffix(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldHasSuffix(FieldFinishReason, v))
}

// FinishReasonEqualFold applies the EqualFold predicate on the "finish_reason" field.
func FinishReasonEqualFold(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEqualFold(FieldFinishReason, v))
}

// FinishReasonContainsFold applies the ContainsFold predicate on the "finish_reason" field.
func FinishReasonContainsFold(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldContainsFold(FieldFinishReason, v))
}

// FeedbackSourceEQ applies the EQ predicate on the "feedback_source" field.
func FeedbackSourceEQ(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldFeedbackSource, v))
}

// FeedbackSourceNEQ applies the NEQ predicate on the "feedback_source" field.
func FeedbackSourceNEQ(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNEQ(FieldFeedbackSource, v))
}

// FeedbackSourceIn applies the In predicate on the "feedback_source" field.
func FeedbackSourceIn(vs ...string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldIn(FieldFeedbackSource, vs...))
}

// FeedbackSourceNotIn applies the NotIn predicate on the "feedback_source" field.
func FeedbackSourceNotIn(vs ...string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNotIn(FieldFeedbackSource, vs...))
}

// FeedbackSourceGT applies the GT predicate on the "feedback_source" field.
func FeedbackSourceGT(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGT(FieldFeedbackSource, v))
}

// FeedbackSourceGTE applies the GTE predicate on the "feedback_source" field.
func FeedbackSourceGTE(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGTE(FieldFeedbackSource, v))
}

// FeedbackSourceLT applies the LT predicate on the "feedback_source" field.
func FeedbackSourceLT(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLT(FieldFeedbackSource, v))
}

// FeedbackSourceLTE applies the LTE predicate on the "feedback_source" field.
func FeedbackSourceLTE(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLTE(FieldFeedbackSource, v))
}

// FeedbackSourceContains applies the Contains predicate on the "feedback_source" field.
func FeedbackSourceContains(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldContains(FieldFeedbackSource, v))
}

// FeedbackSourceHasPrefix applies the HasPrefix predicate on the "feedback_source" field.
func FeedbackSourceHasPrefix(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldHasPrefix(FieldFeedbackSource, v))
}

// FeedbackSourceHasSuffix applies the HasSuffix predicate on the "feedback_source" field.
func FeedbackSourceHasSuffix(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldHasSuffix(FieldFeedbackSource, v))
}

// FeedbackSourceEqualFold applies the EqualFold predicate on the "feedback_source" field.
func FeedbackSourceEqualFold(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEqualFold(FieldFeedbackSource, v))
}

// FeedbackSourceContainsFold applies the ContainsFold predicate on the "feedback_source" field.
func FeedbackSourceContainsFold(v string) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldContainsFold(FieldFeedbackSource, v))
}

// BudgetSecsEQ applies the EQ predicate on the "budget_secs" field.
func BudgetSecsEQ(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldBudgetSecs, v))
}

// BudgetSecsNEQ applies the NEQ predicate on the "budget_secs" field.
func BudgetSecsNEQ(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNEQ(FieldBudgetSecs, v))
}

// BudgetSecsIn applies the In predicate on the "budget_secs" field.
func BudgetSecsIn(vs ...int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldIn(FieldBudgetSecs, vs...))
}

// BudgetSecsNotIn applies the NotIn predicate on the "budget_secs" field.
func BudgetSecsNotIn(vs ...int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNotIn(FieldBudgetSecs, vs...))
}

// BudgetSecsGT applies the GT predicate on the "budget_secs" field.
func BudgetSecsGT(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGT(FieldBudgetSecs, v))
}

// BudgetSecsGTE applies the GTE predicate on the "budget_secs" field.
func BudgetSecsGTE(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGTE(FieldBudgetSecs, v))
}

// BudgetSecsLT applies the LT predicate on the "budget_secs" field.
func BudgetSecsLT(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLT(FieldBudgetSecs, v))
}

// BudgetSecsLTE applies the LTE predicate on the "budget_secs" field.
func BudgetSecsLTE(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLTE(FieldBudgetSecs, v))
}

// ElapsedSecsEQ applies the EQ predicate on the "elapsed_secs" field.
func ElapsedSecsEQ(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldEQ(FieldElapsedSecs, v))
}

// ElapsedSecsNEQ applies the NEQ predicate on the "elapsed_secs" field.
func ElapsedSecsNEQ(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNEQ(FieldElapsedSecs, v))
}

// ElapsedSecsIn applies the In predicate on the "elapsed_secs" field.
func ElapsedSecsIn(vs ...int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldIn(FieldElapsedSecs, vs...))
}

// ElapsedSecsNotIn applies the NotIn predicate on the "elapsed_secs" field.
func ElapsedSecsNotIn(vs ...int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNotIn(FieldElapsedSecs, vs...))
}

// ElapsedSecsGT applies the GT predicate on the "elapsed_secs" field.
func ElapsedSecsGT(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGT(FieldElapsedSecs, v))
}

// ElapsedSecsGTE applies the GTE predicate on the "elapsed_secs" field.
func ElapsedSecsGTE(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldGTE(FieldElapsedSecs, v))
}

// ElapsedSecsLT applies the LT predicate on the "elapsed_secs" field.
func ElapsedSecsLT(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLT(FieldElapsedSecs, v))
}

// ElapsedSecsLTE applies the LTE predicate on the "elapsed_secs" field.
func ElapsedSecsLTE(v int) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldLTE(FieldElapsedSecs, v))
}

// BySubjectIsNil applies the IsNil predicate on the "by_subject" field.
func BySubjectIsNil() predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldIsNull(FieldBySubject))
}

// BySubjectNotNil applies the NotNil predicate on the "by_subject" field.
func BySubjectNotNil() predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.FieldNotNull(FieldBySubject))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExamAttemptEvent) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExamAttemptEvent) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExamAttemptEvent) predicate.ExamAttemptEvent {
	return predicate.ExamAttemptEvent(sql.NotPredicates(p))
}
