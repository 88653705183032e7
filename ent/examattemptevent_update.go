// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/edcenter/mocktest/ent/examattemptevent"
	"github.com/edcenter/mocktest/ent/predicate"
	"github.com/edcenter/mocktest/ent/schema"
)

// ExamAttemptEventUpdate is the builder for updating ExamAttemptEvent entities.
type ExamAttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *ExamAttemptEventMutation
}

// Where appends a list predicates to the ExamAttemptEventUpdate builder.
func (_u *ExamAttemptEventUpdate) Where(ps ...predicate.ExamAttemptEvent) *ExamAttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ExamAttemptEventUpdate) SetSessionID(v string) *ExamAttemptEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ExamAttemptEventUpdate) SetNillableSessionID(v *string) *ExamAttemptEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSubjects sets the "subjects" field.
func (_u *ExamAttemptEventUpdate) SetSubjects(v []string) *ExamAttemptEventUpdate {
	_u.mutation.SetSubjects(v)
	return _u
}

// AppendSubjects appends value to the "subjects" field.
func (_u *ExamAttemptEventUpdate) AppendSubjects(v []string) *ExamAttemptEventUpdate {
	_u.mutation.AppendSubjects(v)
	return _u
}

// SetGradeLevel sets the "grade_level" field.
func (_u *ExamAttemptEventUpdate) SetGradeLevel(v string) *ExamAttemptEventUpdate {
	_u.mutation.SetGradeLevel(v)
	return _u
}

// SetNillableGradeLevel sets the "grade_level" field if the given value is not nil.
func (_u *ExamAttemptEventUpdate) SetNillableGradeLevel(v *string) *ExamAttemptEventUpdate {
	if v != nil {
		_u.SetGradeLevel(*v)
	}
	return _u
}

// SetSystem sets the "system" field.
func (_u *ExamAttemptEventUpdate) SetSystem(v string) *ExamAttemptEventUpdate {
	_u.mutation.SetSystem(v)
	return _u
}

// SetNillableSystem sets the "system" field if the given value is not nil.
func (_u *ExamAttemptEventUpdate) SetNillableSystem(v *string) *ExamAttemptEventUpdate {
	if v != nil {
		_u.SetSystem(*v)
	}
	return _u
}

// SetVariant sets the "variant" field.
func (_u *ExamAttemptEventUpdate) SetVariant(v string) *ExamAttemptEventUpdate {
	_u.mutation.SetVariant(v)
	return _u
}

// SetNillableVariant sets the "variant" field if the given value is not nil.
func (_u *ExamAttemptEventUpdate) SetNillableVariant(v *string) *ExamAttemptEventUpdate {
	if v != nil {
		_u.SetVariant(*v)
	}
	return _u
}

// SetQuestionSource sets the "question_source" field.
func (_u *ExamAttemptEventUpdate) SetQuestionSource(v string) *ExamAttemptEventUpdate {
	_u.mutation.SetQuestionSource(v)
	return _u
}

// SetNillableQuestionSource sets the "question_source" field if the given value is not nil.
func (_u *ExamAttemptEventUpdate) SetNillableQuestionSource(v *string) *ExamAttemptEventUpdate {
	if v != nil {
		_u.SetQuestionSource(*v)
	}
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *ExamAttemptEventUpdate) SetTotalQuestions(v int) *ExamAttemptEventUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *ExamAttemptEventUpdate) SetNillableTotalQuestions(v *int) *ExamAttemptEventUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *ExamAttemptEventUpdate) AddTotalQuestions(v int) *ExamAttemptEventUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *ExamAttemptEventUpdate) SetCorrectAnswers(v int) *ExamAttemptEventUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *ExamAttemptEventUpdate) SetNillableCorrectAnswers(v *int) *ExamAttemptEventUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *ExamAttemptEventUpdate) AddCorrectAnswers(v int) *ExamAttemptEventUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetAnswered sets the "answered" field.
func (_u *ExamAttemptEventUpdate) SetAnswered(v int) *ExamAttemptEventUpdate {
	_u.mutation.ResetAnswered()
	_u.mutation.SetAnswered(v)
	return _u
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_u *ExamAttemptEventUpdate) SetNillableAnswered(v *int) *ExamAttemptEventUpdate {
	if v != nil {
		_u.SetAnswered(*v)
	}
	return _u
}

// AddAnswered adds value to the "answered" field.
func (_u *ExamAttemptEventUpdate) AddAnswered(v int) *ExamAttemptEventUpdate {
	_u.mutation.AddAnswered(v)
	return _u
}

// SetPercent sets the "percent" field.
func (_u *ExamAttemptEventUpdate) SetPercent(v float64) *ExamAttemptEventUpdate {
	_u.mutation.ResetPercent()
	_u.mutation.SetPercent(v)
	return _u
}

// SetNillablePercent sets the "percent" field if the given value is not nil.
func (_u *ExamAttemptEventUpdate) SetNillablePercent(v *float64) *ExamAttemptEventUpdate {
	if v != nil {
		_u.SetPercent(*v)
	}
	return _u
}

// AddPercent adds value to the "percent" field.
func (_u *ExamAttemptEventUpdate) AddPercent(v float64) *ExamAttemptEventUpdate {
	_u.mutation.AddPercent(v)
	return _u
}

// SetFinishReason sets the "finish_reason" field.
func (_u *ExamAttemptEventUpdate) SetFinishReason(v string) *ExamAttemptEventUpdate {
	_u.mutation.SetFinishReason(v)
	return _u
}

// SetNillableFinishReason sets the "finish_reason" field if the given value is not nil.
func (_u *ExamAttemptEventUpdate) SetNillableFinishReason(v *string) *ExamAttemptEventUpdate {
	if v != nil {
		_u.SetFinishReason(*v)
	}
	return _u
}

// SetFeedbackSource sets the "feedback_source" field.
func (_u *ExamAttemptEventUpdate) SetFeedbackSource(v string) *ExamAttemptEventUpdate {
	_u.mutation.SetFeedbackSource(v)
	return _u
}

// SetNillableFeedbackSource sets the "feedback_source" field if the given value is not nil.
func (_u *ExamAttemptEventUpdate) SetNillableFeedbackSource(v *string) *ExamAttemptEventUpdate {
	if v != nil {
		_u.SetFeedbackSource(*v)
	}
	return _u
}

// SetBudgetSecs sets the "budget_secs" field.
func (_u *ExamAttemptEventUpdate) SetBudgetSecs(v int) *ExamAttemptEventUpdate {
	_u.mutation.ResetBudgetSecs()
	_u.mutation.SetBudgetSecs(v)
	return _u
}

// SetNillableBudgetSecs sets the "budget_secs" field if the given value is not nil.
func (_u *ExamAttemptEventUpdate) SetNillableBudgetSecs(v *int) *ExamAttemptEventUpdate {
	if v != nil {
		_u.SetBudgetSecs(*v)
	}
	return _u
}

// AddBudgetSecs adds value to the "budget_secs" field.
func (_u *ExamAttemptEventUpdate) AddBudgetSecs(v int) *ExamAttemptEventUpdate {
	_u.mutation.AddBudgetSecs(v)
	return _u
}

// SetElapsedSecs sets the "elapsed_secs" field.
func (_u *ExamAttemptEventUpdate) SetElapsedSecs(v int) *ExamAttemptEventUpdate {
	_u.mutation.ResetElapsedSecs()
	_u.mutation.SetElapsedSecs(v)
	return _u
}

// SetNillableElapsedSecs sets the "elapsed_secs" field if the given value is not nil.
func (_u *ExamAttemptEventUpdate) SetNillableElapsedSecs(v *int) *ExamAttemptEventUpdate {
	if v != nil {
		_u.SetElapsedSecs(*v)
	}
	return _u
}

// AddElapsedSecs adds value to the "elapsed_secs" field.
func (_u *ExamAttemptEventUpdate) AddElapsedSecs(v int) *ExamAttemptEventUpdate {
	_u.mutation.AddElapsedSecs(v)
	return _u
}

// SetBySubject sets the "by_subject" field.
func (_u *ExamAttemptEventUpdate) SetBySubject(v []schema.SubjectTally) *ExamAttemptEventUpdate {
	_u.mutation.SetBySubject(v)
	return _u
}

// AppendBySubject appends value to the "by_subject" field.
func (_u *ExamAttemptEventUpdate) AppendBySubject(v []schema.SubjectTally) *ExamAttemptEventUpdate {
	_u.mutation.AppendBySubject(v)
	return _u
}

// ClearBySubject clears the value of the "by_subject" field.
func (_u *ExamAttemptEventUpdate) ClearBySubject() *ExamAttemptEventUpdate {
	_u.mutation.ClearBySubject()
	return _u
}

// Mutation returns the ExamAttemptEventMutation object of the builder.
func (_u *ExamAttemptEventUpdate) Mutation() *ExamAttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExamAttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamAttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExamAttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamAttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamAttemptEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := examattemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExamAttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionSource(); ok {
		if err := examattemptevent.QuestionSourceValidator(v); err != nil {
			return &ValidationError{Name: "question_source", err: fmt.Errorf(`ent: validator failed for field "ExamAttemptEvent.question_source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FinishReason(); ok {
		if err := examattemptevent.FinishReasonValidator(v); err != nil {
			return &ValidationError{Name: "finish_reason", err: fmt.Errorf(`ent: validator failed for field "ExamAttemptEvent.finish_reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FeedbackSource(); ok {
		if err := examattemptevent.FeedbackSourceValidator(v); err != nil {
			return &ValidationError{Name: "feedback_source", err: fmt.Errorf(`ent: validator failed for field "ExamAttemptEvent.feedback_source": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamAttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examattemptevent.Table, examattemptevent.Columns, sqlgraph.NewFieldSpec(examattemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(examattemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subjects(); ok {
		_spec.SetField(examattemptevent.FieldSubjects, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubjects(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, examattemptevent.FieldSubjects, value)
		})
	}
	if value, ok := _u.mutation.GradeLevel(); ok {
		_spec.SetField(examattemptevent.FieldGradeLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.System(); ok {
		_spec.SetField(examattemptevent.FieldSystem, field.TypeString, value)
	}
	if value, ok := _u.mutation.Variant(); ok {
		_spec.SetField(examattemptevent.FieldVariant, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionSource(); ok {
		_spec.SetField(examattemptevent.FieldQuestionSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(examattemptevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(examattemptevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(examattemptevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(examattemptevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answered(); ok {
		_spec.SetField(examattemptevent.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswered(); ok {
		_spec.AddField(examattemptevent.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percent(); ok {
		_spec.SetField(examattemptevent.FieldPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPercent(); ok {
		_spec.AddField(examattemptevent.FieldPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FinishReason(); ok {
		_spec.SetField(examattemptevent.FieldFinishReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.FeedbackSource(); ok {
		_spec.SetField(examattemptevent.FieldFeedbackSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.BudgetSecs(); ok {
		_spec.SetField(examattemptevent.FieldBudgetSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBudgetSecs(); ok {
		_spec.AddField(examattemptevent.FieldBudgetSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ElapsedSecs(); ok {
		_spec.SetField(examattemptevent.FieldElapsedSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedElapsedSecs(); ok {
		_spec.AddField(examattemptevent.FieldElapsedSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BySubject(); ok {
		_spec.SetField(examattemptevent.FieldBySubject, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBySubject(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, examattemptevent.FieldBySubject, value)
		})
	}
	if _u.mutation.BySubjectCleared() {
		_spec.ClearField(examattemptevent.FieldBySubject, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examattemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExamAttemptEventUpdateOne is the builder for updating a single ExamAttemptEvent entity.
type ExamAttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExamAttemptEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ExamAttemptEventUpdateOne) SetSessionID(v string) *ExamAttemptEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ExamAttemptEventUpdateOne) SetNillableSessionID(v *string) *ExamAttemptEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSubjects sets the "subjects" field.
func (_u *ExamAttemptEventUpdateOne) SetSubjects(v []string) *ExamAttemptEventUpdateOne {
	_u.mutation.SetSubjects(v)
	return _u
}

// AppendSubjects appends value to the "subjects" field.
func (_u *ExamAttemptEventUpdateOne) AppendSubjects(v []string) *ExamAttemptEventUpdateOne {
	_u.mutation.AppendSubjects(v)
	return _u
}

// SetGradeLevel sets the "grade_level" field.
func (_u *ExamAttemptEventUpdateOne) SetGradeLevel(v string) *ExamAttemptEventUpdateOne {
	_u.mutation.SetGradeLevel(v)
	return _u
}

// SetNillableGradeLevel sets the "grade_level" field if the given value is not nil.
func (_u *ExamAttemptEventUpdateOne) SetNillableGradeLevel(v *string) *ExamAttemptEventUpdateOne {
	if v != nil {
		_u.SetGradeLevel(*v)
	}
	return _u
}

// SetSystem sets the "system" field.
func (_u *ExamAttemptEventUpdateOne) SetSystem(v string) *ExamAttemptEventUpdateOne {
	_u.mutation.SetSystem(v)
	return _u
}

// SetNillableSystem sets the "system" field if the given value is not nil.
func (_u *ExamAttemptEventUpdateOne) SetNillableSystem(v *string) *ExamAttemptEventUpdateOne {
	if v != nil {
		_u.SetSystem(*v)
	}
	return _u
}

// SetVariant sets the "variant" field.
func (_u *ExamAttemptEventUpdateOne) SetVariant(v string) *ExamAttemptEventUpdateOne {
	_u.mutation.SetVariant(v)
	return _u
}

// SetNillableVariant sets the "variant" field if the given value is not nil.
func (_u *ExamAttemptEventUpdateOne) SetNillableVariant(v *string) *ExamAttemptEventUpdateOne {
	if v != nil {
		_u.SetVariant(*v)
	}
	return _u
}

// SetQuestionSource sets the "question_source" field.
func (_u *ExamAttemptEventUpdateOne) SetQuestionSource(v string) *ExamAttemptEventUpdateOne {
	_u.mutation.SetQuestionSource(v)
	return _u
}

// SetNillableQuestionSource sets the "question_source" field if the given value is not nil.
func (_u *ExamAttemptEventUpdateOne) SetNillableQuestionSource(v *string) *ExamAttemptEventUpdateOne {
	if v != nil {
		_u.SetQuestionSource(*v)
	}
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *ExamAttemptEventUpdateOne) SetTotalQuestions(v int) *ExamAttemptEventUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *ExamAttemptEventUpdateOne) SetNillableTotalQuestions(v *int) *ExamAttemptEventUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *ExamAttemptEventUpdateOne) AddTotalQuestions(v int) *ExamAttemptEventUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *ExamAttemptEventUpdateOne) SetCorrectAnswers(v int) *ExamAttemptEventUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *ExamAttemptEventUpdateOne) SetNillableCorrectAnswers(v *int) *ExamAttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *ExamAttemptEventUpdateOne) AddCorrectAnswers(v int) *ExamAttemptEventUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetAnswered sets the "answered" field.
func (_u *ExamAttemptEventUpdateOne) SetAnswered(v int) *ExamAttemptEventUpdateOne {
	_u.mutation.ResetAnswered()
	_u.mutation.SetAnswered(v)
	return _u
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_u *ExamAttemptEventUpdateOne) SetNillableAnswered(v *int) *ExamAttemptEventUpdateOne {
	if v != nil {
		_u.SetAnswered(*v)
	}
	return _u
}

// AddAnswered adds value to the "answered" field.
func (_u *ExamAttemptEventUpdateOne) AddAnswered(v int) *ExamAttemptEventUpdateOne {
	_u.mutation.AddAnswered(v)
	return _u
}

// SetPercent sets the "percent" field.
func (_u *ExamAttemptEventUpdateOne) SetPercent(v float64) *ExamAttemptEventUpdateOne {
	_u.mutation.ResetPercent()
	_u.mutation.SetPercent(v)
	return _u
}

// SetNillablePercent sets the "percent" field if the given value is not nil.
func (_u *ExamAttemptEventUpdateOne) SetNillablePercent(v *float64) *ExamAttemptEventUpdateOne {
	if v != nil {
		_u.SetPercent(*v)
	}
	return _u
}

// AddPercent adds value to the "percent" field.
func (_u *ExamAttemptEventUpdateOne) AddPercent(v float64) *ExamAttemptEventUpdateOne {
	_u.mutation.AddPercent(v)
	return _u
}

// SetFinishReason sets the "finish_reason" field.
func (_u *ExamAttemptEventUpdateOne) SetFinishReason(v string) *ExamAttemptEventUpdateOne {
	_u.mutation.SetFinishReason(v)
	return _u
}

// SetNillableFinishReason sets the "finish_reason" field if the given value is not nil.
func (_u *ExamAttemptEventUpdateOne) SetNillableFinishReason(v *string) *ExamAttemptEventUpdateOne {
	if v != nil {
		_u.SetFinishReason(*v)
	}
	return _u
}

// SetFeedbackSource sets the "feedback_source" field.
func (_u *ExamAttemptEventUpdateOne) SetFeedbackSource(v string) *ExamAttemptEventUpdateOne {
	_u.mutation.SetFeedbackSource(v)
	return _u
}

// SetNillableFeedbackSource sets the "feedback_source" field if the given value is not nil.
func (_u *ExamAttemptEventUpdateOne) SetNillableFeedbackSource(v *string) *ExamAttemptEventUpdateOne {
	if v != nil {
		_u.SetFeedbackSource(*v)
	}
	return _u
}

// SetBudgetSecs sets the "budget_secs" field.
func (_u *ExamAttemptEventUpdateOne) SetBudgetSecs(v int) *ExamAttemptEventUpdateOne {
	_u.mutation.ResetBudgetSecs()
	_u.mutation.SetBudgetSecs(v)
	return _u
}

// SetNillableBudgetSecs sets the "budget_secs" field if the given value is not nil.
func (_u *ExamAttemptEventUpdateOne) SetNillableBudgetSecs(v *int) *ExamAttemptEventUpdateOne {
	if v != nil {
		_u.SetBudgetSecs(*v)
	}
	return _u
}

// AddBudgetSecs adds value to the "budget_secs" field.
func (_u *ExamAttemptEventUpdateOne) AddBudgetSecs(v int) *ExamAttemptEventUpdateOne {
	_u.mutation.AddBudgetSecs(v)
	return _u
}

// SetElapsedSecs sets the "elapsed_secs" field.
func (_u *ExamAttemptEventUpdateOne) SetElapsedSecs(v int) *ExamAttemptEventUpdateOne {
	_u.mutation.ResetElapsedSecs()
	_u.mutation.SetElapsedSecs(v)
	return _u
}

// SetNillableElapsedSecs sets the "elapsed_secs" field if the given value is not nil.
func (_u *ExamAttemptEventUpdateOne) SetNillableElapsedSecs(v *int) *ExamAttemptEventUpdateOne {
	if v != nil {
		_u.SetElapsedSecs(*v)
	}
	return _u
}

// AddElapsedSecs adds value to the "elapsed_secs" field.
func (_u *ExamAttemptEventUpdateOne) AddElapsedSecs(v int) *ExamAttemptEventUpdateOne {
	_u.mutation.AddElapsedSecs(v)
	return _u
}

// SetBySubject sets the "by_subject" field.
func (_u *ExamAttemptEventUpdateOne) SetBySubject(v []schema.SubjectTally) *ExamAttemptEventUpdateOne {
	_u.mutation.SetBySubject(v)
	return _u
}

// AppendBySubject appends value to the "by_subject" field.
func (_u *ExamAttemptEventUpdateOne) AppendBySubject(v []schema.SubjectTally) *ExamAttemptEventUpdateOne {
	_u.mutation.AppendBySubject(v)
	return _u
}

// ClearBySubject clears the value of the "by_subject" field.
func (_u *ExamAttemptEventUpdateOne) ClearBySubject() *ExamAttemptEventUpdateOne {
	_u.mutation.ClearBySubject()
	return _u
}

// Mutation returns the ExamAttemptEventMutation object of the builder.
func (_u *ExamAttemptEventUpdateOne) Mutation() *ExamAttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExamAttemptEventUpdate builder.
func (_u *ExamAttemptEventUpdateOne) Where(ps ...predicate.ExamAttemptEvent) *ExamAttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExamAttemptEventUpdateOne) Select(field string, fields ...string) *ExamAttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExamAttemptEvent entity.
func (_u *ExamAttemptEventUpdateOne) Save(ctx context.Context) (*ExamAttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamAttemptEventUpdateOne) SaveX(ctx context.Context) *ExamAttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExamAttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamAttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamAttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := examattemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExamAttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionSource(); ok {
		if err := examattemptevent.QuestionSourceValidator(v); err != nil {
			return &ValidationError{Name: "question_source", err: fmt.Errorf(`ent: validator failed for field "ExamAttemptEvent.question_source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FinishReason(); ok {
		if err := examattemptevent.FinishReasonValidator(v); err != nil {
			return &ValidationError{Name: "finish_reason", err: fmt.Errorf(`ent: validator failed for field "ExamAttemptEvent.finish_reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FeedbackSource(); ok {
		if err := examattemptevent.FeedbackSourceValidator(v); err != nil {
			return &ValidationError{Name: "feedback_source", err: fmt.Errorf(`ent: validator failed for field "ExamAttemptEvent.feedback_source": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamAttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *ExamAttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examattemptevent.Table, examattemptevent.Columns, sqlgraph.NewFieldSpec(examattemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExamAttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, examattemptevent.FieldID)
		for _, f := range fields {
			if !examattemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != examattemptevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(examattemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subjects(); ok {
		_spec.SetField(examattemptevent.FieldSubjects, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubjects(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, examattemptevent.FieldSubjects, value)
		})
	}
	if value, ok := _u.mutation.GradeLevel(); ok {
		_spec.SetField(examattemptevent.FieldGradeLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.System(); ok {
		_spec.SetField(examattemptevent.FieldSystem, field.TypeString, value)
	}
	if value, ok := _u.mutation.Variant(); ok {
		_spec.SetField(examattemptevent.FieldVariant, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionSource(); ok {
		_spec.SetField(examattemptevent.FieldQuestionSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(examattemptevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(examattemptevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(examattemptevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(examattemptevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answered(); ok {
		_spec.SetField(examattemptevent.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswered(); ok {
		_spec.AddField(examattemptevent.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percent(); ok {
		_spec.SetField(examattemptevent.FieldPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPercent(); ok {
		_spec.AddField(examattemptevent.FieldPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FinishReason(); ok {
		_spec.SetField(examattemptevent.FieldFinishReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.FeedbackSource(); ok {
		_spec.SetField(examattemptevent.FieldFeedbackSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.BudgetSecs(); ok {
		_spec.SetField(examattemptevent.FieldBudgetSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBudgetSecs(); ok {
		_spec.AddField(examattemptevent.FieldBudgetSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ElapsedSecs(); ok {
		_spec.SetField(examattemptevent.FieldElapsedSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedElapsedSecs(); ok {
		_spec.AddField(examattemptevent.FieldElapsedSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BySubject(); ok {
		_spec.SetField(examattemptevent.FieldBySubject, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBySubject(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, examattemptevent.FieldBySubject, value)
		})
	}
	if _u.mutation.BySubjectCleared() {
		_spec.ClearField(examattemptevent.FieldBySubject, field.TypeJSON)
	}
	_node = &ExamAttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examattemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
