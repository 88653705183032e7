// Code generated by ent, DO NOT EDIT.

package examanswerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/edcenter/mocktest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEQ(FieldSessionID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEQ(FieldQuestionID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEQ(FieldSubject, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEQ(FieldDifficulty, v))
}

// Cognitive applies equality check predicate on the "cognitive" field. It's identical to CognitiveEQ.
func Cognitive(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEQ(FieldCognitive, v))
}

// Stem applies equality check predicate on the "stem" field. It's identical to StemEQ.
func Stem(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEQ(FieldStem, v))
}

// ChosenIndex applies equality check predicate on the "chosen_index" field. It's identical to ChosenIndexEQ.
func ChosenIndex(v int) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEQ(FieldChosenIndex, v))
}

// CorrectIndex applies equality check predicate on the "correct_index" field. It's identical to CorrectIndexEQ.
func CorrectIndex(v int) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEQ(FieldCorrectIndex, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEQ(FieldCorrect, v))
}

// MarkedForReview applies equality check predicate on the "marked_for_review" field. It's identical to MarkedForReviewEQ.
func MarkedForReview(v bool) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEQ(FieldMarkedForReview, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldContainsFold(FieldQuestionID, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldContainsFold(FieldSubject, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldContainsFold(FieldDifficulty, v))
}

// CognitiveEQ applies the EQ predicate on the "cognitive" field.
func CognitiveEQ(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEQ(FieldCognitive, v))
}

// CognitiveNEQ applies the NEQ predicate on the "cognitive" field.
func CognitiveNEQ(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldNEQ(FieldCognitive, v))
}

// CognitiveIn applies the In predicate on the "cognitive" field.
func CognitiveIn(vs ...string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldIn(FieldCognitive, vs...))
}

// CognitiveNotIn applies the NotIn predicate on the "cognitive" field.
func CognitiveNotIn(vs ...string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldNotIn(FieldCognitive, vs...))
}

// CognitiveGT applies the GT predicate on the "cognitive" field.
func CognitiveGT(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldGT(FieldCognitive, v))
}

// CognitiveGTE applies the GTE predicate on the "cognitive" field.
func CognitiveGTE(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldGTE(FieldCognitive, v))
}

// CognitiveLT applies the LT predicate on the "cognitive" field.
func CognitiveLT(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldLT(FieldCognitive, v))
}

// CognitiveLTE applies the LTE predicate on the "cognitive" field.
func CognitiveLTE(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldLTE(FieldCognitive, v))
}

// CognitiveContains applies the Contains predicate on the "cognitive" field.
func CognitiveContains(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldContains(FieldCognitive, v))
}

// CognitiveHasPrefix applies the HasPrefix predicate on the "cognitive" field.
func CognitiveHasPrefix(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldHasPrefix(FieldCognitive, v))
}

// CognitiveHasSuffix applies the HasSuffix predicate on the "cognitive" field.
func CognitiveHasSuffix(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldHasSuffix(FieldCognitive, v))
}

// CognitiveEqualFold applies the EqualFold predicate on the "cognitive" field.
func CognitiveEqualFold(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEqualFold(FieldCognitive, v))
}

// CognitiveContainsFold applies the ContainsFold predicate on the "cognitive" field.
func CognitiveContainsFold(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldContainsFold(FieldCognitive, v))
}

// StemEQ applies the EQ predicate on the "stem" field.
func StemEQ(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEQ(FieldStem, v))
}

// StemNEQ applies the NEQ predicate on the "stem" field.
func StemNEQ(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldNEQ(FieldStem, v))
}

// StemIn applies the In predicate on the "stem" field.
func StemIn(vs ...string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldIn(FieldStem, vs...))
}

// StemNotIn applies the NotIn predicate on the "stem" field.
func StemNotIn(vs ...string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldNotIn(FieldStem, vs...))
}

// StemGT applies the GT predicate on the "stem" field.
func StemGT(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldGT(FieldStem, v))
}

// StemGTE applies the GTE predicate on the "stem" field.
func StemGTE(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldGTE(FieldStem, v))
}

// StemLT applies the LT predicate on the "stem" field.
func StemLT(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldLT(FieldStem, v))
}

// StemLTE applies the LTE predicate on the "stem" field.
func StemLTE(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldLTE(FieldStem, v))
}

// StemContains applies the Contains predicate on the "stem" field.
func StemContains(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldContains(FieldStem, v))
}

// StemHasPrefix applies the HasPrefix predicate on the "stem" field.
func StemHasPrefix(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldHasPrefix(FieldStem, v))
}

// StemHasSuffix applies the HasSuffix predicate on the "stem" field.
func StemHasSuffix(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldHasSuffix(FieldStem, v))
}

// StemEqualFold applies the EqualFold predicate on the "stem" field.
func StemEqualFold(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEqualFold(FieldStem, v))
}

// StemContainsFold applies the ContainsFold predicate on the "stem" field.
func StemContainsFold(v string) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldContainsFold(FieldStem, v))
}

// ChosenIndexEQ applies the EQ predicate on the "chosen_index" field.
func ChosenIndexEQ(v int) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEQ(FieldChosenIndex, v))
}

// ChosenIndexNEQ applies the NEQ predicate on the "chosen_index" field.
func ChosenIndexNEQ(v int) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldNEQ(FieldChosenIndex, v))
}

// ChosenIndexIn applies the In predicate on the "chosen_index" field.
func ChosenIndexIn(vs ...int) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldIn(FieldChosenIndex, vs...))
}

// ChosenIndexNotIn applies the NotIn predicate on the "chosen_index" field.
func ChosenIndexNotIn(vs ...int) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldNotIn(FieldChosenIndex, vs...))
}

// ChosenIndexGT applies the GT predicate on the "chosen_index" field.
func ChosenIndexGT(v int) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldGT(FieldChosenIndex, v))
}

// ChosenIndexGTE applies the GTE predicate on the "chosen_index" field.
func ChosenIndexGTE(v int) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldGTE(FieldChosenIndex, v))
}

// ChosenIndexLT applies the LT predicate on the "chosen_index" field.
func ChosenIndexLT(v int) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldLT(FieldChosenIndex, v))
}

// ChosenIndexLTE applies the LTE predicate on the "chosen_index" field.
func ChosenIndexLTE(v int) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldLTE(FieldChosenIndex, v))
}

// CorrectIndexEQ applies the EQ predicate on the "correct_index" field.
func CorrectIndexEQ(v int) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEQ(FieldCorrectIndex, v))
}

// CorrectIndexNEQ applies the NEQ predicate on the "correct_index" field.
func CorrectIndexNEQ(v int) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldNEQ(FieldCorrectIndex, v))
}

// CorrectIndexIn applies the In predicate on the "correct_index" field.
func CorrectIndexIn(vs ...int) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldIn(FieldCorrectIndex, vs...))
}

// CorrectIndexNotIn applies the NotIn predicate on the "correct_index" field.
func CorrectIndexNotIn(vs ...int) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldNotIn(FieldCorrectIndex, vs...))
}

// CorrectIndexGT applies the GT predicate on the "correct_index" field.
func CorrectIndexGT(v int) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldGT(FieldCorrectIndex, v))
}

// CorrectIndexGTE applies the GTE predicate on the "correct_index" field.
func CorrectIndexGTE(v int) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldGTE(FieldCorrectIndex, v))
}

// CorrectIndexLT applies the LT predicate on the "correct_index" field.
func CorrectIndexLT(v int) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldLT(FieldCorrectIndex, v))
}

// CorrectIndexLTE applies the LTE predicate on the "correct_index" field.
func CorrectIndexLTE(v int) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldLTE(FieldCorrectIndex, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldNEQ(FieldCorrect, v))
}

// MarkedForReviewEQ applies the EQ predicate on the "marked_for_review" field.
func MarkedForReviewEQ(v bool) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldEQ(FieldMarkedForReview, v))
}

// MarkedForReviewNEQ applies the NEQ predicate on the "marked_for_review" field.
func MarkedForReviewNEQ(v bool) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.FieldNEQ(FieldMarkedForReview, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExamAnswerEvent) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExamAnswerEvent) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExamAnswerEvent) predicate.ExamAnswerEvent {
	return predicate.ExamAnswerEvent(sql.NotPredicates(p))
}
