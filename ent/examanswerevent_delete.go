// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edcenter/mocktest/ent/examanswerevent"
	"github.com/edcenter/mocktest/ent/predicate"
)

// ExamAnswerEventDelete is the builder for deleting a ExamAnswerEvent entity.
type ExamAnswerEventDelete struct {
	config
	hooks    []Hook
	mutation *ExamAnswerEventMutation
}

// Where appends a list predicates to the ExamAnswerEventDelete builder.
func (_d *ExamAnswerEventDelete) Where(ps ...predicate.ExamAnswerEvent) *ExamAnswerEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExamAnswerEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExamAnswerEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExamAnswerEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(examanswerevent.Table, sqlgraph.NewFieldSpec(examanswerevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ExamAnswerEventDeleteOne is the builder for deleting a single ExamAnswerEvent entity.
type ExamAnswerEventDeleteOne struct {
	_d *ExamAnswerEventDelete
}

// Where appends a list predicates to the ExamAnswerEventDelete builder.
func (_d *ExamAnswerEventDeleteOne) Where(ps ...predicate.ExamAnswerEvent) *ExamAnswerEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExamAnswerEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{examanswerevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExamAnswerEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
