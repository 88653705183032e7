// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edcenter/mocktest/ent/examanswerevent"
	"github.com/edcenter/mocktest/ent/predicate"
)

// ExamAnswerEventUpdate is the builder for updating ExamAnswerEvent entities.
type ExamAnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *ExamAnswerEventMutation
}

// Where appends a list predicates to the ExamAnswerEventUpdate builder.
func (_u *ExamAnswerEventUpdate) Where(ps ...predicate.ExamAnswerEvent) *ExamAnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ExamAnswerEventUpdate) SetSessionID(v string) *ExamAnswerEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ExamAnswerEventUpdate) SetNillableSessionID(v *string) *ExamAnswerEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ExamAnswerEventUpdate) SetQuestionID(v string) *ExamAnswerEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ExamAnswerEventUpdate) SetNillableQuestionID(v *string) *ExamAnswerEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ExamAnswerEventUpdate) SetSubject(v string) *ExamAnswerEventUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ExamAnswerEventUpdate) SetNillableSubject(v *string) *ExamAnswerEventUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ExamAnswerEventUpdate) SetDifficulty(v string) *ExamAnswerEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ExamAnswerEventUpdate) SetNillableDifficulty(v *string) *ExamAnswerEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetCognitive sets the "cognitive" field.
func (_u *ExamAnswerEventUpdate) SetCognitive(v string) *ExamAnswerEventUpdate {
	_u.mutation.SetCognitive(v)
	return _u
}

// SetNillableCognitive sets the "cognitive" field if the given value is not nil.
func (_u *ExamAnswerEventUpdate) SetNillableCognitive(v *string) *ExamAnswerEventUpdate {
	if v != nil {
		_u.SetCognitive(*v)
	}
	return _u
}

// SetStem sets the "stem" field.
func (_u *ExamAnswerEventUpdate) SetStem(v string) *ExamAnswerEventUpdate {
	_u.mutation.SetStem(v)
	return _u
}

// SetNillableStem sets the "stem" field if the given value is not nil.
func (_u *ExamAnswerEventUpdate) SetNillableStem(v *string) *ExamAnswerEventUpdate {
	if v != nil {
		_u.SetStem(*v)
	}
	return _u
}

// SetChosenIndex sets the "chosen_index" field.
func (_u *ExamAnswerEventUpdate) SetChosenIndex(v int) *ExamAnswerEventUpdate {
	_u.mutation.ResetChosenIndex()
	_u.mutation.SetChosenIndex(v)
	return _u
}

// SetNillableChosenIndex sets the "chosen_index" field if the given value is not nil.
func (_u *ExamAnswerEventUpdate) SetNillableChosenIndex(v *int) *ExamAnswerEventUpdate {
	if v != nil {
		_u.SetChosenIndex(*v)
	}
	return _u
}

// AddChosenIndex adds value to the "chosen_index" field.
func (_u *ExamAnswerEventUpdate) AddChosenIndex(v int) *ExamAnswerEventUpdate {
	_u.mutation.AddChosenIndex(v)
	return _u
}

// SetCorrectIndex sets the "correct_index" field.
func (_u *ExamAnswerEventUpdate) SetCorrectIndex(v int) *ExamAnswerEventUpdate {
	_u.mutation.ResetCorrectIndex()
	_u.mutation.SetCorrectIndex(v)
	return _u
}

// SetNillableCorrectIndex sets the "correct_index" field if the given value is not nil.
func (_u *ExamAnswerEventUpdate) SetNillableCorrectIndex(v *int) *ExamAnswerEventUpdate {
	if v != nil {
		_u.SetCorrectIndex(*v)
	}
	return _u
}

// AddCorrectIndex adds value to the "correct_index" field.
func (_u *ExamAnswerEventUpdate) AddCorrectIndex(v int) *ExamAnswerEventUpdate {
	_u.mutation.AddCorrectIndex(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ExamAnswerEventUpdate) SetCorrect(v bool) *ExamAnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ExamAnswerEventUpdate) SetNillableCorrect(v *bool) *ExamAnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetMarkedForReview sets the "marked_for_review" field.
func (_u *ExamAnswerEventUpdate) SetMarkedForReview(v bool) *ExamAnswerEventUpdate {
	_u.mutation.SetMarkedForReview(v)
	return _u
}

// SetNillableMarkedForReview sets the "marked_for_review" field if the given value is not nil.
func (_u *ExamAnswerEventUpdate) SetNillableMarkedForReview(v *bool) *ExamAnswerEventUpdate {
	if v != nil {
		_u.SetMarkedForReview(*v)
	}
	return _u
}

// Mutation returns the ExamAnswerEventMutation object of the builder.
func (_u *ExamAnswerEventUpdate) Mutation() *ExamAnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExamAnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamAnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExamAnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamAnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamAnswerEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := examanswerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExamAnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := examanswerevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ExamAnswerEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := examanswerevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "ExamAnswerEvent.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := examanswerevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "ExamAnswerEvent.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Cognitive(); ok {
		if err := examanswerevent.CognitiveValidator(v); err != nil {
			return &ValidationError{Name: "cognitive", err: fmt.Errorf(`ent: validator failed for field "ExamAnswerEvent.cognitive": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stem(); ok {
		if err := examanswerevent.StemValidator(v); err != nil {
			return &ValidationError{Name: "stem", err: fmt.Errorf(`ent: validator failed for field "ExamAnswerEvent.stem": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamAnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examanswerevent.Table, examanswerevent.Columns, sqlgraph.NewFieldSpec(examanswerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(examanswerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(examanswerevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(examanswerevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(examanswerevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cognitive(); ok {
		_spec.SetField(examanswerevent.FieldCognitive, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stem(); ok {
		_spec.SetField(examanswerevent.FieldStem, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChosenIndex(); ok {
		_spec.SetField(examanswerevent.FieldChosenIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChosenIndex(); ok {
		_spec.AddField(examanswerevent.FieldChosenIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectIndex(); ok {
		_spec.SetField(examanswerevent.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectIndex(); ok {
		_spec.AddField(examanswerevent.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(examanswerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MarkedForReview(); ok {
		_spec.SetField(examanswerevent.FieldMarkedForReview, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examanswerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExamAnswerEventUpdateOne is the builder for updating a single ExamAnswerEvent entity.
type ExamAnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExamAnswerEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ExamAnswerEventUpdateOne) SetSessionID(v string) *ExamAnswerEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ExamAnswerEventUpdateOne) SetNillableSessionID(v *string) *ExamAnswerEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ExamAnswerEventUpdateOne) SetQuestionID(v string) *ExamAnswerEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ExamAnswerEventUpdateOne) SetNillableQuestionID(v *string) *ExamAnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ExamAnswerEventUpdateOne) SetSubject(v string) *ExamAnswerEventUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ExamAnswerEventUpdateOne) SetNillableSubject(v *string) *ExamAnswerEventUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ExamAnswerEventUpdateOne) SetDifficulty(v string) *ExamAnswerEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ExamAnswerEventUpdateOne) SetNillableDifficulty(v *string) *ExamAnswerEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetCognitive sets the "cognitive" field.
func (_u *ExamAnswerEventUpdateOne) SetCognitive(v string) *ExamAnswerEventUpdateOne {
	_u.mutation.SetCognitive(v)
	return _u
}

// SetNillableCognitive sets the "cognitive" field if the given value is not nil.
func (_u *ExamAnswerEventUpdateOne) SetNillableCognitive(v *string) *ExamAnswerEventUpdateOne {
	if v != nil {
		_u.SetCognitive(*v)
	}
	return _u
}

// SetStem sets the "stem" field.
func (_u *ExamAnswerEventUpdateOne) SetStem(v string) *ExamAnswerEventUpdateOne {
	_u.mutation.SetStem(v)
	return _u
}

// SetNillableStem sets the "stem" field if the given value is not nil.
func (_u *ExamAnswerEventUpdateOne) SetNillableStem(v *string) *ExamAnswerEventUpdateOne {
	if v != nil {
		_u.SetStem(*v)
	}
	return _u
}

// SetChosenIndex sets the "chosen_index" field.
func (_u *ExamAnswerEventUpdateOne) SetChosenIndex(v int) *ExamAnswerEventUpdateOne {
	_u.mutation.ResetChosenIndex()
	_u.mutation.SetChosenIndex(v)
	return _u
}

// SetNillableChosenIndex sets the "chosen_index" field if the given value is not nil.
func (_u *ExamAnswerEventUpdateOne) SetNillableChosenIndex(v *int) *ExamAnswerEventUpdateOne {
	if v != nil {
		_u.SetChosenIndex(*v)
	}
	return _u
}

// AddChosenIndex adds value to the "chosen_index" field.
func (_u *ExamAnswerEventUpdateOne) AddChosenIndex(v int) *ExamAnswerEventUpdateOne {
	_u.mutation.AddChosenIndex(v)
	return _u
}

// SetCorrectIndex sets the "correct_index" field.
func (_u *ExamAnswerEventUpdateOne) SetCorrectIndex(v int) *ExamAnswerEventUpdateOne {
	_u.mutation.ResetCorrectIndex()
	_u.mutation.SetCorrectIndex(v)
	return _u
}

// SetNillableCorrectIndex sets the "correct_index" field if the given value is not nil.
func (_u *ExamAnswerEventUpdateOne) SetNillableCorrectIndex(v *int) *ExamAnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrectIndex(*v)
	}
	return _u
}

// AddCorrectIndex adds value to the "correct_index" field.
func (_u *ExamAnswerEventUpdateOne) AddCorrectIndex(v int) *ExamAnswerEventUpdateOne {
	_u.mutation.AddCorrectIndex(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ExamAnswerEventUpdateOne) SetCorrect(v bool) *ExamAnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ExamAnswerEventUpdateOne) SetNillableCorrect(v *bool) *ExamAnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetMarkedForReview sets the "marked_for_review" field.
func (_u *ExamAnswerEventUpdateOne) SetMarkedForReview(v bool) *ExamAnswerEventUpdateOne {
	_u.mutation.SetMarkedForReview(v)
	return _u
}

// SetNillableMarkedForReview sets the "marked_for_review" field if the given value is not nil.
func (_u *ExamAnswerEventUpdateOne) SetNillableMarkedForReview(v *bool) *ExamAnswerEventUpdateOne {
	if v != nil {
		_u.SetMarkedForReview(*v)
	}
	return _u
}

// Mutation returns the ExamAnswerEventMutation object of the builder.
func (_u *ExamAnswerEventUpdateOne) Mutation() *ExamAnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExamAnswerEventUpdate builder.
func (_u *ExamAnswerEventUpdateOne) Where(ps ...predicate.ExamAnswerEvent) *ExamAnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExamAnswerEventUpdateOne) Select(field string, fields ...string) *ExamAnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExamAnswerEvent entity.
func (_u *ExamAnswerEventUpdateOne) Save(ctx context.Context) (*ExamAnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamAnswerEventUpdateOne) SaveX(ctx context.Context) *ExamAnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExamAnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamAnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamAnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := examanswerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExamAnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := examanswerevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ExamAnswerEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := examanswerevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "ExamAnswerEvent.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := examanswerevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "ExamAnswerEvent.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Cognitive(); ok {
		if err := examanswerevent.CognitiveValidator(v); err != nil {
			return &ValidationError{Name: "cognitive", err: fmt.Errorf(`ent: validator failed for field "ExamAnswerEvent.cognitive": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stem(); ok {
		if err := examanswerevent.StemValidator(v); err != nil {
			return &ValidationError{Name: "stem", err: fmt.Errorf(`ent: validator failed for field "ExamAnswerEvent.stem": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamAnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *ExamAnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examanswerevent.Table, examanswerevent.Columns, sqlgraph.NewFieldSpec(examanswerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExamAnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, examanswerevent.FieldID)
		for _, f := range fields {
			if !examanswerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != examanswerevent.FieldID {
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
		_spec.SetField(examanswerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(examanswerevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(examanswerevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(examanswerevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cognitive(); ok {
		_spec.SetField(examanswerevent.FieldCognitive, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stem(); ok {
		_spec.SetField(examanswerevent.FieldStem, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChosenIndex(); ok {
		_spec.SetField(examanswerevent.FieldChosenIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChosenIndex(); ok {
		_spec.AddField(examanswerevent.FieldChosenIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectIndex(); ok {
		_spec.SetField(examanswerevent.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectIndex(); ok {
		_spec.AddField(examanswerevent.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(examanswerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MarkedForReview(); ok {
		_spec.SetField(examanswerevent.FieldMarkedForReview, field.TypeBool, value)
	}
	_node = &ExamAnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examanswerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
