// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edcenter/mocktest/ent/examanswerevent"
)

// ExamAnswerEventCreate is the builder for creating a ExamAnswerEvent entity.
type ExamAnswerEventCreate struct {
	config
	mutation *ExamAnswerEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ExamAnswerEventCreate) SetSequence(v int64) *ExamAnswerEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ExamAnswerEventCreate) SetTimestamp(v time.Time) *ExamAnswerEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ExamAnswerEventCreate) SetNillableTimestamp(v *time.Time) *ExamAnswerEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ExamAnswerEventCreate) SetSessionID(v string) *ExamAnswerEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *ExamAnswerEventCreate) SetQuestionID(v string) *ExamAnswerEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *ExamAnswerEventCreate) SetSubject(v string) *ExamAnswerEventCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ExamAnswerEventCreate) SetDifficulty(v string) *ExamAnswerEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetCognitive sets the "cognitive" field.
func (_c *ExamAnswerEventCreate) SetCognitive(v string) *ExamAnswerEventCreate {
	_c.mutation.SetCognitive(v)
	return _c
}

// SetStem sets the "stem" field.
func (_c *ExamAnswerEventCreate) SetStem(v string) *ExamAnswerEventCreate {
	_c.mutation.SetStem(v)
	return _c
}

// SetChosenIndex sets the "chosen_index" field.
func (_c *ExamAnswerEventCreate) SetChosenIndex(v int) *ExamAnswerEventCreate {
	_c.mutation.SetChosenIndex(v)
	return _c
}

// SetCorrectIndex sets the "correct_index" field.
func (_c *ExamAnswerEventCreate) SetCorrectIndex(v int) *ExamAnswerEventCreate {
	_c.mutation.SetCorrectIndex(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *ExamAnswerEventCreate) SetCorrect(v bool) *ExamAnswerEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetMarkedForReview sets the "marked_for_review" field.
func (_c *ExamAnswerEventCreate) SetMarkedForReview(v bool) *ExamAnswerEventCreate {
	_c.mutation.SetMarkedForReview(v)
	return _c
}

// SetNillableMarkedForReview sets the "marked_for_review" field if the given value is not nil.
func (_c *ExamAnswerEventCreate) SetNillableMarkedForReview(v *bool) *ExamAnswerEventCreate {
	if v != nil {
		_c.SetMarkedForReview(*v)
	}
	return _c
}

// Mutation returns the ExamAnswerEventMutation object of the builder.
func (_c *ExamAnswerEventCreate) Mutation() *ExamAnswerEventMutation {
	return _c.mutation
}

// Save creates the ExamAnswerEvent in the database.
func (_c *ExamAnswerEventCreate) Save(ctx context.Context) (*ExamAnswerEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExamAnswerEventCreate) SaveX(ctx context.Context) *ExamAnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamAnswerEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamAnswerEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExamAnswerEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := examanswerevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.MarkedForReview(); !ok {
		v := examanswerevent.DefaultMarkedForReview
		_c.mutation.SetMarkedForReview(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExamAnswerEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ExamAnswerEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ExamAnswerEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ExamAnswerEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := examanswerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExamAnswerEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "ExamAnswerEvent.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := examanswerevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ExamAnswerEvent.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "ExamAnswerEvent.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := examanswerevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "ExamAnswerEvent.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "ExamAnswerEvent.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := examanswerevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "ExamAnswerEvent.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Cognitive(); !ok {
		return &ValidationError{Name: "cognitive", err: errors.New(`ent: missing required field "ExamAnswerEvent.cognitive"`)}
	}
	if v, ok := _c.mutation.Cognitive(); ok {
		if err := examanswerevent.CognitiveValidator(v); err != nil {
			return &ValidationError{Name: "cognitive", err: fmt.Errorf(`ent: validator failed for field "ExamAnswerEvent.cognitive": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stem(); !ok {
		return &ValidationError{Name: "stem", err: errors.New(`ent: missing required field "ExamAnswerEvent.stem"`)}
	}
	if v, ok := _c.mutation.Stem(); ok {
		if err := examanswerevent.StemValidator(v); err != nil {
			return &ValidationError{Name: "stem", err: fmt.Errorf(`ent: validator failed for field "ExamAnswerEvent.stem": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChosenIndex(); !ok {
		return &ValidationError{Name: "chosen_index", err: errors.New(`ent: missing required field "ExamAnswerEvent.chosen_index"`)}
	}
	if _, ok := _c.mutation.CorrectIndex(); !ok {
		return &ValidationError{Name: "correct_index", err: errors.New(`ent: missing required field "ExamAnswerEvent.correct_index"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "ExamAnswerEvent.correct"`)}
	}
	if _, ok := _c.mutation.MarkedForReview(); !ok {
		return &ValidationError{Name: "marked_for_review", err: errors.New(`ent: missing required field "ExamAnswerEvent.marked_for_review"`)}
	}
	return nil
}

func (_c *ExamAnswerEventCreate) sqlSave(ctx context.Context) (*ExamAnswerEvent, error) {
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

func (_c *ExamAnswerEventCreate) createSpec() (*ExamAnswerEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ExamAnswerEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(examanswerevent.Table, sqlgraph.NewFieldSpec(examanswerevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(examanswerevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(examanswerevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(examanswerevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(examanswerevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(examanswerevent.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(examanswerevent.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Cognitive(); ok {
		_spec.SetField(examanswerevent.FieldCognitive, field.TypeString, value)
		_node.Cognitive = value
	}
	if value, ok := _c.mutation.Stem(); ok {
		_spec.SetField(examanswerevent.FieldStem, field.TypeString, value)
		_node.Stem = value
	}
	if value, ok := _c.mutation.ChosenIndex(); ok {
		_spec.SetField(examanswerevent.FieldChosenIndex, field.TypeInt, value)
		_node.ChosenIndex = value
	}
	if value, ok := _c.mutation.CorrectIndex(); ok {
		_spec.SetField(examanswerevent.FieldCorrectIndex, field.TypeInt, value)
		_node.CorrectIndex = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(examanswerevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.MarkedForReview(); ok {
		_spec.SetField(examanswerevent.FieldMarkedForReview, field.TypeBool, value)
		_node.MarkedForReview = value
	}
	return _node, _spec
}

// ExamAnswerEventCreateBulk is the builder for creating many ExamAnswerEvent entities in bulk.
type ExamAnswerEventCreateBulk struct {
	config
	err      error
	builders []*ExamAnswerEventCreate
}

// Save creates the ExamAnswerEvent entities in the database.
func (_c *ExamAnswerEventCreateBulk) Save(ctx context.Context) ([]*ExamAnswerEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExamAnswerEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExamAnswerEventMutation)
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
func (_c *ExamAnswerEventCreateBulk) SaveX(ctx context.Context) []*ExamAnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamAnswerEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamAnswerEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
