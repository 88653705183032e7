// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edcenter/mocktest/ent/examattemptevent"
	"github.com/edcenter/mocktest/ent/schema"
)

// ExamAttemptEventCreate is the builder for creating a ExamAttemptEvent entity.
type ExamAttemptEventCreate struct {
	config
	mutation *ExamAttemptEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ExamAttemptEventCreate) SetSequence(v int64) *ExamAttemptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ExamAttemptEventCreate) SetTimestamp(v time.Time) *ExamAttemptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ExamAttemptEventCreate) SetNillableTimestamp(v *time.Time) *ExamAttemptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ExamAttemptEventCreate) SetSessionID(v string) *ExamAttemptEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSubjects sets the "subjects" field.
func (_c *ExamAttemptEventCreate) SetSubjects(v []string) *ExamAttemptEventCreate {
	_c.mutation.SetSubjects(v)
	return _c
}

// SetGradeLevel sets the "grade_level" field.
func (_c *ExamAttemptEventCreate) SetGradeLevel(v string) *ExamAttemptEventCreate {
	_c.mutation.SetGradeLevel(v)
	return _c
}

// SetNillableGradeLevel sets the "grade_level" field if the given value is not nil.
func (_c *ExamAttemptEventCreate) SetNillableGradeLevel(v *string) *ExamAttemptEventCreate {
	if v != nil {
		_c.SetGradeLevel(*v)
	}
	return _c
}

// SetSystem sets the "system" field.
func (_c *ExamAttemptEventCreate) SetSystem(v string) *ExamAttemptEventCreate {
	_c.mutation.SetSystem(v)
	return _c
}

// SetNillableSystem sets the "system" field if the given value is not nil.
func (_c *ExamAttemptEventCreate) SetNillableSystem(v *string) *ExamAttemptEventCreate {
	if v != nil {
		_c.SetSystem(*v)
	}
	return _c
}

// SetVariant sets the "variant" field.
func (_c *ExamAttemptEventCreate) SetVariant(v string) *ExamAttemptEventCreate {
	_c.mutation.SetVariant(v)
	return _c
}

// SetNillableVariant sets the "variant" field if the given value is not nil.
func (_c *ExamAttemptEventCreate) SetNillableVariant(v *string) *ExamAttemptEventCreate {
	if v != nil {
		_c.SetVariant(*v)
	}
	return _c
}

// SetQuestionSource sets the "question_source" field.
func (_c *ExamAttemptEventCreate) SetQuestionSource(v string) *ExamAttemptEventCreate {
	_c.mutation.SetQuestionSource(v)
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *ExamAttemptEventCreate) SetTotalQuestions(v int) *ExamAttemptEventCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *ExamAttemptEventCreate) SetCorrectAnswers(v int) *ExamAttemptEventCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetAnswered sets the "answered" field.
func (_c *ExamAttemptEventCreate) SetAnswered(v int) *ExamAttemptEventCreate {
	_c.mutation.SetAnswered(v)
	return _c
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_c *ExamAttemptEventCreate) SetNillableAnswered(v *int) *ExamAttemptEventCreate {
	if v != nil {
		_c.SetAnswered(*v)
	}
	return _c
}

// SetPercent sets the "percent" field.
func (_c *ExamAttemptEventCreate) SetPercent(v float64) *ExamAttemptEventCreate {
	_c.mutation.SetPercent(v)
	return _c
}

// SetFinishReason sets the "finish_reason" field.
func (_c *ExamAttemptEventCreate) SetFinishReason(v string) *ExamAttemptEventCreate {
	_c.mutation.SetFinishReason(v)
	return _c
}

// SetFeedbackSource sets the "feedback_source" field.
func (_c *ExamAttemptEventCreate) SetFeedbackSource(v string) *ExamAttemptEventCreate {
	_c.mutation.SetFeedbackSource(v)
	return _c
}

// SetBudgetSecs sets the "budget_secs" field.
func (_c *ExamAttemptEventCreate) SetBudgetSecs(v int) *ExamAttemptEventCreate {
	_c.mutation.SetBudgetSecs(v)
	return _c
}

// SetElapsedSecs sets the "elapsed_secs" field.
func (_c *ExamAttemptEventCreate) SetElapsedSecs(v int) *ExamAttemptEventCreate {
	_c.mutation.SetElapsedSecs(v)
	return _c
}

// SetBySubject sets the "by_subject" field.
func (_c *ExamAttemptEventCreate) SetBySubject(v []schema.SubjectTally) *ExamAttemptEventCreate {
	_c.mutation.SetBySubject(v)
	return _c
}

// Mutation returns the ExamAttemptEventMutation object of the builder.
func (_c *ExamAttemptEventCreate) Mutation() *ExamAttemptEventMutation {
	return _c.mutation
}

// Save creates the ExamAttemptEvent in the database.
func (_c *ExamAttemptEventCreate) Save(ctx context.Context) (*ExamAttemptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExamAttemptEventCreate) SaveX(ctx context.Context) *ExamAttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamAttemptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamAttemptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExamAttemptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := examattemptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.GradeLevel(); !ok {
		v := examattemptevent.DefaultGradeLevel
		_c.mutation.SetGradeLevel(v)
	}
	if _, ok := _c.mutation.System(); !ok {
		v := examattemptevent.DefaultSystem
		_c.mutation.SetSystem(v)
	}
	if _, ok := _c.mutation.Variant(); !ok {
		v := examattemptevent.DefaultVariant
		_c.mutation.SetVariant(v)
	}
	if _, ok := _c.mutation.Answered(); !ok {
		v := examattemptevent.DefaultAnswered
		_c.mutation.SetAnswered(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExamAttemptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ExamAttemptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ExamAttemptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ExamAttemptEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := examattemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExamAttemptEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subjects(); !ok {
		return &ValidationError{Name: "subjects", err: errors.New(`ent: missing required field "ExamAttemptEvent.subjects"`)}
	}
	if _, ok := _c.mutation.GradeLevel(); !ok {
		return &ValidationError{Name: "grade_level", err: errors.New(`ent: missing required field "ExamAttemptEvent.grade_level"`)}
	}
	if _, ok := _c.mutation.System(); !ok {
		return &ValidationError{Name: "system", err: errors.New(`ent: missing required field "ExamAttemptEvent.system"`)}
	}
	if _, ok := _c.mutation.Variant(); !ok {
		return &ValidationError{Name: "variant", err: errors.New(`ent: missing required field "ExamAttemptEvent.variant"`)}
	}
	if _, ok := _c.mutation.QuestionSource(); !ok {
		return &ValidationError{Name: "question_source", err: errors.New(`ent: missing required field "ExamAttemptEvent.question_source"`)}
	}
	if v, ok := _c.mutation.QuestionSource(); ok {
		if err := examattemptevent.QuestionSourceValidator(v); err != nil {
			return &ValidationError{Name: "question_source", err: fmt.Errorf(`ent: validator failed for field "ExamAttemptEvent.question_source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "ExamAttemptEvent.total_questions"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "ExamAttemptEvent.correct_answers"`)}
	}
	if _, ok := _c.mutation.Answered(); !ok {
		return &ValidationError{Name: "answered", err: errors.New(`ent: missing required field "ExamAttemptEvent.answered"`)}
	}
	if _, ok := _c.mutation.Percent(); !ok {
		return &ValidationError{Name: "percent", err: errors.New(`ent: missing required field "ExamAttemptEvent.percent"`)}
	}
	if _, ok := _c.mutation.FinishReason(); !ok {
		return &ValidationError{Name: "finish_reason", err: errors.New(`ent: missing required field "ExamAttemptEvent.finish_reason"`)}
	}
	if v, ok := _c.mutation.FinishReason(); ok {
		if err := examattemptevent.FinishReasonValidator(v); err != nil {
			return &ValidationError{Name: "finish_reason", err: fmt.Errorf(`ent: validator failed for field "ExamAttemptEvent.finish_reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FeedbackSource(); !ok {
		return &ValidationError{Name: "feedback_source", err: errors.New(`ent: missing required field "ExamAttemptEvent.feedback_source"`)}
	}
	if v, ok := _c.mutation.FeedbackSource(); ok {
		if err := examattemptevent.FeedbackSourceValidator(v); err != nil {
			return &ValidationError{Name: "feedback_source", err: fmt.Errorf(`ent: validator failed for field "ExamAttemptEvent.feedback_source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BudgetSecs(); !ok {
		return &ValidationError{Name: "budget_secs", err: errors.New(`ent: missing required field "ExamAttemptEvent.budget_secs"`)}
	}
	if _, ok := _c.mutation.ElapsedSecs(); !ok {
		return &ValidationError{Name: "elapsed_secs", err: errors.New(`ent: missing required field "ExamAttemptEvent.elapsed_secs"`)}
	}
	return nil
}

func (_c *ExamAttemptEventCreate) sqlSave(ctx context.Context) (*ExamAttemptEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExamAttemptEventCreate) createSpec() (*ExamAttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ExamAttemptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(examattemptevent.Table, sqlgraph.NewFieldSpec(examattemptevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(examattemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(examattemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(examattemptevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Subjects(); ok {
		_spec.SetField(examattemptevent.FieldSubjects, field.TypeJSON, value)
		_node.Subjects = value
	}
	if value, ok := _c.mutation.GradeLevel(); ok {
		_spec.SetField(examattemptevent.FieldGradeLevel, field.TypeString, value)
		_node.GradeLevel = value
	}
	if value, ok := _c.mutation.System(); ok {
		_spec.SetField(examattemptevent.FieldSystem, field.TypeString, value)
		_node.System = value
	}
	if value, ok := _c.mutation.Variant(); ok {
		_spec.SetField(examattemptevent.FieldVariant, field.TypeString, value)
		_node.Variant = value
	}
	if value, ok := _c.mutation.QuestionSource(); ok {
		_spec.SetField(examattemptevent.FieldQuestionSource, field.TypeString, value)
		_node.QuestionSource = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(examattemptevent.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(examattemptevent.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.Answered(); ok {
		_spec.SetField(examattemptevent.FieldAnswered, field.TypeInt, value)
		_node.Answered = value
	}
	if value, ok := _c.mutation.Percent(); ok {
		_spec.SetField(examattemptevent.FieldPercent, field.TypeFloat64, value)
		_node.Percent = value
	}
	if value, ok := _c.mutation.FinishReason(); ok {
		_spec.SetField(examattemptevent.FieldFinishReason, field.TypeString, value)
		_node.FinishReason = value
	}
	if value, ok := _c.mutation.FeedbackSource(); ok {
		_spec.SetField(examattemptevent.FieldFeedbackSource, field.TypeString, value)
		_node.FeedbackSource = value
	}
	if value, ok := _c.mutation.BudgetSecs(); ok {
		_spec.SetField(examattemptevent.FieldBudgetSecs, field.TypeInt, value)
		_node.BudgetSecs = value
	}
	if value, ok := _c.mutation.ElapsedSecs(); ok {
		_spec.SetField(examattemptevent.FieldElapsedSecs, field.TypeInt, value)
		_node.ElapsedSecs = value
	}
	if value, ok := _c.mutation.BySubject(); ok {
		_spec.SetField(examattemptevent.FieldBySubject, field.TypeJSON, value)
		_node.BySubject = value
	}
	return _node, _spec
}

// ExamAttemptEventCreateBulk is the builder for creating many ExamAttemptEvent entities in bulk.
type ExamAttemptEventCreateBulk struct {
	config
	err      error
	builders []*ExamAttemptEventCreate
}

// Save creates the ExamAttemptEvent entities in the database.
func (_c *ExamAttemptEventCreateBulk) Save(ctx context.Context) ([]*ExamAttemptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExamAttemptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExamAttemptEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExamAttemptEventCreateBulk) SaveX(ctx context.Context) []*ExamAttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamAttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamAttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
