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
	"github.com/abhisek/mathquest/ent/predicate"
	"github.com/abhisek/mathquest/ent/schema"
	"github.com/abhisek/mathquest/ent/validationevent"
)

// ValidationEventUpdate is the builder for updating ValidationEvent entities.
type ValidationEventUpdate struct {
	config
	hooks    []Hook
	mutation *ValidationEventMutation
}

// Where appends a list predicates to the ValidationEventUpdate builder.
func (_u *ValidationEventUpdate) Where(ps ...predicate.ValidationEvent) *ValidationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ValidationEventUpdate) SetQuestionID(v string) *ValidationEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableQuestionID(v *string) *ValidationEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetEmittedAt sets the "emitted_at" field.
func (_u *ValidationEventUpdate) SetEmittedAt(v int64) *ValidationEventUpdate {
	_u.mutation.ResetEmittedAt()
	_u.mutation.SetEmittedAt(v)
	return _u
}

// SetNillableEmittedAt sets the "emitted_at" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableEmittedAt(v *int64) *ValidationEventUpdate {
	if v != nil {
		_u.SetEmittedAt(*v)
	}
	return _u
}

// AddEmittedAt adds value to the "emitted_at" field.
func (_u *ValidationEventUpdate) AddEmittedAt(v int64) *ValidationEventUpdate {
	_u.mutation.AddEmittedAt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ValidationEventUpdate) SetStatus(v string) *ValidationEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableStatus(v *string) *ValidationEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *ValidationEventUpdate) SetErrorCount(v int) *ValidationEventUpdate {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableErrorCount(v *int) *ValidationEventUpdate {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *ValidationEventUpdate) AddErrorCount(v int) *ValidationEventUpdate {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetWarningCount sets the "warning_count" field.
func (_u *ValidationEventUpdate) SetWarningCount(v int) *ValidationEventUpdate {
	_u.mutation.ResetWarningCount()
	_u.mutation.SetWarningCount(v)
	return _u
}

// SetNillableWarningCount sets the "warning_count" field if the given value is not nil.
func (_u *ValidationEventUpdate) SetNillableWarningCount(v *int) *ValidationEventUpdate {
	if v != nil {
		_u.SetWarningCount(*v)
	}
	return _u
}

// AddWarningCount adds value to the "warning_count" field.
func (_u *ValidationEventUpdate) AddWarningCount(v int) *ValidationEventUpdate {
	_u.mutation.AddWarningCount(v)
	return _u
}

// SetIssues sets the "issues" field.
func (_u *ValidationEventUpdate) SetIssues(v []schema.IssueDoc) *ValidationEventUpdate {
	_u.mutation.SetIssues(v)
	return _u
}

// AppendIssues appends value to the "issues" field.
func (_u *ValidationEventUpdate) AppendIssues(v []schema.IssueDoc) *ValidationEventUpdate {
	_u.mutation.AppendIssues(v)
	return _u
}

// ClearIssues clears the value of the "issues" field.
func (_u *ValidationEventUpdate) ClearIssues() *ValidationEventUpdate {
	_u.mutation.ClearIssues()
	return _u
}

// Mutation returns the ValidationEventMutation object of the builder.
func (_u *ValidationEventUpdate) Mutation() *ValidationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ValidationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ValidationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ValidationEventUpdate) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := validationevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ValidationEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := validationevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ValidationEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ValidationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(validationevent.Table, validationevent.Columns, sqlgraph.NewFieldSpec(validationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(validationevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EmittedAt(); ok {
		_spec.SetField(validationevent.FieldEmittedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEmittedAt(); ok {
		_spec.AddField(validationevent.FieldEmittedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(validationevent.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(validationevent.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(validationevent.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WarningCount(); ok {
		_spec.SetField(validationevent.FieldWarningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWarningCount(); ok {
		_spec.AddField(validationevent.FieldWarningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Issues(); ok {
		_spec.SetField(validationevent.FieldIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, validationevent.FieldIssues, value)
		})
	}
	if _u.mutation.IssuesCleared() {
		_spec.ClearField(validationevent.FieldIssues, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ValidationEventUpdateOne is the builder for updating a single ValidationEvent entity.
type ValidationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ValidationEventMutation
}

// SetQuestionID sets the "question_id" field.
func (_u *ValidationEventUpdateOne) SetQuestionID(v string) *ValidationEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableQuestionID(v *string) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetEmittedAt sets the "emitted_at" field.
func (_u *ValidationEventUpdateOne) SetEmittedAt(v int64) *ValidationEventUpdateOne {
	_u.mutation.ResetEmittedAt()
	_u.mutation.SetEmittedAt(v)
	return _u
}

// SetNillableEmittedAt sets the "emitted_at" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableEmittedAt(v *int64) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetEmittedAt(*v)
	}
	return _u
}

// AddEmittedAt adds value to the "emitted_at" field.
func (_u *ValidationEventUpdateOne) AddEmittedAt(v int64) *ValidationEventUpdateOne {
	_u.mutation.AddEmittedAt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ValidationEventUpdateOne) SetStatus(v string) *ValidationEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableStatus(v *string) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *ValidationEventUpdateOne) SetErrorCount(v int) *ValidationEventUpdateOne {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableErrorCount(v *int) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *ValidationEventUpdateOne) AddErrorCount(v int) *ValidationEventUpdateOne {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetWarningCount sets the "warning_count" field.
func (_u *ValidationEventUpdateOne) SetWarningCount(v int) *ValidationEventUpdateOne {
	_u.mutation.ResetWarningCount()
	_u.mutation.SetWarningCount(v)
	return _u
}

// SetNillableWarningCount sets the "warning_count" field if the given value is not nil.
func (_u *ValidationEventUpdateOne) SetNillableWarningCount(v *int) *ValidationEventUpdateOne {
	if v != nil {
		_u.SetWarningCount(*v)
	}
	return _u
}

// AddWarningCount adds value to the "warning_count" field.
func (_u *ValidationEventUpdateOne) AddWarningCount(v int) *ValidationEventUpdateOne {
	_u.mutation.AddWarningCount(v)
	return _u
}

// SetIssues sets the "issues" field.
func (_u *ValidationEventUpdateOne) SetIssues(v []schema.IssueDoc) *ValidationEventUpdateOne {
	_u.mutation.SetIssues(v)
	return _u
}

// AppendIssues appends value to the "issues" field.
func (_u *ValidationEventUpdateOne) AppendIssues(v []schema.IssueDoc) *ValidationEventUpdateOne {
	_u.mutation.AppendIssues(v)
	return _u
}

// ClearIssues clears the value of the "issues" field.
func (_u *ValidationEventUpdateOne) ClearIssues() *ValidationEventUpdateOne {
	_u.mutation.ClearIssues()
	return _u
}

// Mutation returns the ValidationEventMutation object of the builder.
func (_u *ValidationEventUpdateOne) Mutation() *ValidationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ValidationEventUpdate builder.
func (_u *ValidationEventUpdateOne) Where(ps ...predicate.ValidationEvent) *ValidationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ValidationEventUpdateOne) Select(field string, fields ...string) *ValidationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ValidationEvent entity.
func (_u *ValidationEventUpdateOne) Save(ctx context.Context) (*ValidationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationEventUpdateOne) SaveX(ctx context.Context) *ValidationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ValidationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ValidationEventUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := validationevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ValidationEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := validationevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ValidationEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ValidationEventUpdateOne) sqlSave(ctx context.Context) (_node *ValidationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(validationevent.Table, validationevent.Columns, sqlgraph.NewFieldSpec(validationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ValidationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, validationevent.FieldID)
		for _, f := range fields {
			if !validationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != validationevent.FieldID {
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
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(validationevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EmittedAt(); ok {
		_spec.SetField(validationevent.FieldEmittedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEmittedAt(); ok {
		_spec.AddField(validationevent.FieldEmittedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(validationevent.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(validationevent.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(validationevent.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WarningCount(); ok {
		_spec.SetField(validationevent.FieldWarningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWarningCount(); ok {
		_spec.AddField(validationevent.FieldWarningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Issues(); ok {
		_spec.SetField(validationevent.FieldIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, validationevent.FieldIssues, value)
		})
	}
	if _u.mutation.IssuesCleared() {
		_spec.ClearField(validationevent.FieldIssues, field.TypeJSON)
	}
	_node = &ValidationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
