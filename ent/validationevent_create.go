// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathquest/ent/schema"
	"github.com/abhisek/mathquest/ent/validationevent"
)

// ValidationEventCreate is the builder for creating a ValidationEvent entity.
type ValidationEventCreate struct {
	config
	mutation *ValidationEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *ValidationEventCreate) SetSequence(v int64) *ValidationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ValidationEventCreate) SetTimestamp(v time.Time) *ValidationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ValidationEventCreate) SetNillableTimestamp(v *time.Time) *ValidationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *ValidationEventCreate) SetQuestionID(v string) *ValidationEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetEmittedAt sets the "emitted_at" field.
func (_c *ValidationEventCreate) SetEmittedAt(v int64) *ValidationEventCreate {
	_c.mutation.SetEmittedAt(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ValidationEventCreate) SetStatus(v string) *ValidationEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetErrorCount sets the "error_count" field.
func (_c *ValidationEventCreate) SetErrorCount(v int) *ValidationEventCreate {
	_c.mutation.SetErrorCount(v)
	return _c
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_c *ValidationEventCreate) SetNillableErrorCount(v *int) *ValidationEventCreate {
	if v != nil {
		_c.SetErrorCount(*v)
	}
	return _c
}

// SetWarningCount sets the "warning_count" field.
func (_c *ValidationEventCreate) SetWarningCount(v int) *ValidationEventCreate {
	_c.mutation.SetWarningCount(v)
	return _c
}

// SetNillableWarningCount sets the "warning_count" field if the given value is not nil.
func (_c *ValidationEventCreate) SetNillableWarningCount(v *int) *ValidationEventCreate {
	if v != nil {
		_c.SetWarningCount(*v)
	}
	return _c
}

// SetIssues sets the "issues" field.
func (_c *ValidationEventCreate) SetIssues(v []schema.IssueDoc) *ValidationEventCreate {
	_c.mutation.SetIssues(v)
	return _c
}

// Mutation returns the ValidationEventMutation object of the builder.
func (_c *ValidationEventCreate) Mutation() *ValidationEventMutation {
	return _c.mutation
}

// Save creates the ValidationEvent in the database.
func (_c *ValidationEventCreate) Save(ctx context.Context) (*ValidationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ValidationEventCreate) SaveX(ctx context.Context) *ValidationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ValidationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := validationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		v := validationevent.DefaultErrorCount
		_c.mutation.SetErrorCount(v)
	}
	if _, ok := _c.mutation.WarningCount(); !ok {
		v := validationevent.DefaultWarningCount
		_c.mutation.SetWarningCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ValidationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ValidationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ValidationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "ValidationEvent.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := validationevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ValidationEvent.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EmittedAt(); !ok {
		return &ValidationError{Name: "emitted_at", err: errors.New(`ent: missing required field "ValidationEvent.emitted_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ValidationEvent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := validationevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ValidationEvent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		return &ValidationError{Name: "error_count", err: errors.New(`ent: missing required field "ValidationEvent.error_count"`)}
	}
	if _, ok := _c.mutation.WarningCount(); !ok {
		return &ValidationError{Name: "warning_count", err: errors.New(`ent: missing required field "ValidationEvent.warning_count"`)}
	}
	return nil
}

func (_c *ValidationEventCreate) sqlSave(ctx context.Context) (*ValidationEvent, error) {
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

func (_c *ValidationEventCreate) createSpec() (*ValidationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ValidationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(validationevent.Table, sqlgraph.NewFieldSpec(validationevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(validationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(validationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(validationevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.EmittedAt(); ok {
		_spec.SetField(validationevent.FieldEmittedAt, field.TypeInt64, value)
		_node.EmittedAt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(validationevent.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorCount(); ok {
		_spec.SetField(validationevent.FieldErrorCount, field.TypeInt, value)
		_node.ErrorCount = value
	}
	if value, ok := _c.mutation.WarningCount(); ok {
		_spec.SetField(validationevent.FieldWarningCount, field.TypeInt, value)
		_node.WarningCount = value
	}
	if value, ok := _c.mutation.Issues(); ok {
		_spec.SetField(validationevent.FieldIssues, field.TypeJSON, value)
		_node.Issues = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ValidationEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ValidationEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *ValidationEventCreate) OnConflict(opts ...sql.ConflictOption) *ValidationEventUpsertOne {
	_c.conflict = opts
	return &ValidationEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ValidationEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ValidationEventCreate) OnConflictColumns(columns ...string) *ValidationEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ValidationEventUpsertOne{
		create: _c,
	}
}

type (
	// ValidationEventUpsertOne is the builder for "upsert"-ing
	//  one ValidationEvent node.
	ValidationEventUpsertOne struct {
		create *ValidationEventCreate
	}

	// ValidationEventUpsert is the "OnConflict" setter.
	ValidationEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetQuestionID sets the "question_id" field.
func (u *ValidationEventUpsert) SetQuestionID(v string) *ValidationEventUpsert {
	u.Set(validationevent.FieldQuestionID, v)
	return u
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *ValidationEventUpsert) UpdateQuestionID() *ValidationEventUpsert {
	u.SetExcluded(validationevent.FieldQuestionID)
	return u
}

// SetEmittedAt sets the "emitted_at" field.
func (u *ValidationEventUpsert) SetEmittedAt(v int64) *ValidationEventUpsert {
	u.Set(validationevent.FieldEmittedAt, v)
	return u
}

// UpdateEmittedAt sets the "emitted_at" field to the value that was provided on create.
func (u *ValidationEventUpsert) UpdateEmittedAt() *ValidationEventUpsert {
	u.SetExcluded(validationevent.FieldEmittedAt)
	return u
}

// AddEmittedAt adds v to the "emitted_at" field.
func (u *ValidationEventUpsert) AddEmittedAt(v int64) *ValidationEventUpsert {
	u.Add(validationevent.FieldEmittedAt, v)
	return u
}

// SetStatus sets the "status" field.
func (u *ValidationEventUpsert) SetStatus(v string) *ValidationEventUpsert {
	u.Set(validationevent.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ValidationEventUpsert) UpdateStatus() *ValidationEventUpsert {
	u.SetExcluded(validationevent.FieldStatus)
	return u
}

// SetErrorCount sets the "error_count" field.
func (u *ValidationEventUpsert) SetErrorCount(v int) *ValidationEventUpsert {
	u.Set(validationevent.FieldErrorCount, v)
	return u
}

// UpdateErrorCount sets the "error_count" field to the value that was provided on create.
func (u *ValidationEventUpsert) UpdateErrorCount() *ValidationEventUpsert {
	u.SetExcluded(validationevent.FieldErrorCount)
	return u
}

// AddErrorCount adds v to the "error_count" field.
func (u *ValidationEventUpsert) AddErrorCount(v int) *ValidationEventUpsert {
	u.Add(validationevent.FieldErrorCount, v)
	return u
}

// SetWarningCount sets the "warning_count" field.
func (u *ValidationEventUpsert) SetWarningCount(v int) *ValidationEventUpsert {
	u.Set(validationevent.FieldWarningCount, v)
	return u
}

// UpdateWarningCount sets the "warning_count" field to the value that was provided on create.
func (u *ValidationEventUpsert) UpdateWarningCount() *ValidationEventUpsert {
	u.SetExcluded(validationevent.FieldWarningCount)
	return u
}

// AddWarningCount adds v to the "warning_count" field.
func (u *ValidationEventUpsert) AddWarningCount(v int) *ValidationEventUpsert {
	u.Add(validationevent.FieldWarningCount, v)
	return u
}

// SetIssues sets the "issues" field.
func (u *ValidationEventUpsert) SetIssues(v []schema.IssueDoc) *ValidationEventUpsert {
	u.Set(validationevent.FieldIssues, v)
	return u
}

// UpdateIssues sets the "issues" field to the value that was provided on create.
func (u *ValidationEventUpsert) UpdateIssues() *ValidationEventUpsert {
	u.SetExcluded(validationevent.FieldIssues)
	return u
}

// ClearIssues clears the value of the "issues" field.
func (u *ValidationEventUpsert) ClearIssues() *ValidationEventUpsert {
	u.SetNull(validationevent.FieldIssues)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ValidationEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ValidationEventUpsertOne) UpdateNewValues() *ValidationEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(validationevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(validationevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ValidationEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ValidationEventUpsertOne) Ignore() *ValidationEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ValidationEventUpsertOne) DoNothing() *ValidationEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ValidationEventCreate.OnConflict
// documentation for more info.
func (u *ValidationEventUpsertOne) Update(set func(*ValidationEventUpsert)) *ValidationEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ValidationEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuestionID sets the "question_id" field.
func (u *ValidationEventUpsertOne) SetQuestionID(v string) *ValidationEventUpsertOne {
	return u.Update(func(s *ValidationEventUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *ValidationEventUpsertOne) UpdateQuestionID() *ValidationEventUpsertOne {
	return u.Update(func(s *ValidationEventUpsert) {
		s.UpdateQuestionID()
	})
}

// SetEmittedAt sets the "emitted_at" field.
func (u *ValidationEventUpsertOne) SetEmittedAt(v int64) *ValidationEventUpsertOne {
	return u.Update(func(s *ValidationEventUpsert) {
		s.SetEmittedAt(v)
	})
}

// AddEmittedAt adds v to the "emitted_at" field.
func (u *ValidationEventUpsertOne) AddEmittedAt(v int64) *ValidationEventUpsertOne {
	return u.Update(func(s *ValidationEventUpsert) {
		s.AddEmittedAt(v)
	})
}

// UpdateEmittedAt sets the "emitted_at" field to the value that was provided on create.
func (u *ValidationEventUpsertOne) UpdateEmittedAt() *ValidationEventUpsertOne {
	return u.Update(func(s *ValidationEventUpsert) {
		s.UpdateEmittedAt()
	})
}

// SetStatus sets the "status" field.
func (u *ValidationEventUpsertOne) SetStatus(v string) *ValidationEventUpsertOne {
	return u.Update(func(s *ValidationEventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ValidationEventUpsertOne) UpdateStatus() *ValidationEventUpsertOne {
	return u.Update(func(s *ValidationEventUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorCount sets the "error_count" field.
func (u *ValidationEventUpsertOne) SetErrorCount(v int) *ValidationEventUpsertOne {
	return u.Update(func(s *ValidationEventUpsert) {
		s.SetErrorCount(v)
	})
}

// AddErrorCount adds v to the "error_count" field.
func (u *ValidationEventUpsertOne) AddErrorCount(v int) *ValidationEventUpsertOne {
	return u.Update(func(s *ValidationEventUpsert) {
		s.AddErrorCount(v)
	})
}

// UpdateErrorCount sets the "error_count" field to the value that was provided on create.
func (u *ValidationEventUpsertOne) UpdateErrorCount() *ValidationEventUpsertOne {
	return u.Update(func(s *ValidationEventUpsert) {
		s.UpdateErrorCount()
	})
}

// SetWarningCount sets the "warning_count" field.
func (u *ValidationEventUpsertOne) SetWarningCount(v int) *ValidationEventUpsertOne {
	return u.Update(func(s *ValidationEventUpsert) {
		s.SetWarningCount(v)
	})
}

// AddWarningCount adds v to the "warning_count" field.
func (u *ValidationEventUpsertOne) AddWarningCount(v int) *ValidationEventUpsertOne {
	return u.Update(func(s *ValidationEventUpsert) {
		s.AddWarningCount(v)
	})
}

// UpdateWarningCount sets the "warning_count" field to the value that was provided on create.
func (u *ValidationEventUpsertOne) UpdateWarningCount() *ValidationEventUpsertOne {
	return u.Update(func(s *ValidationEventUpsert) {
		s.UpdateWarningCount()
	})
}

// SetIssues sets the "issues" field.
func (u *ValidationEventUpsertOne) SetIssues(v []schema.IssueDoc) *ValidationEventUpsertOne {
	return u.Update(func(s *ValidationEventUpsert) {
		s.SetIssues(v)
	})
}

// UpdateIssues sets the "issues" field to the value that was provided on create.
func (u *ValidationEventUpsertOne) UpdateIssues() *ValidationEventUpsertOne {
	return u.Update(func(s *ValidationEventUpsert) {
		s.UpdateIssues()
	})
}

// ClearIssues clears the value of the "issues" field.
func (u *ValidationEventUpsertOne) ClearIssues() *ValidationEventUpsertOne {
	return u.Update(func(s *ValidationEventUpsert) {
		s.ClearIssues()
	})
}

// Exec executes the query.
func (u *ValidationEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ValidationEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ValidationEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ValidationEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ValidationEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ValidationEventCreateBulk is the builder for creating many ValidationEvent entities in bulk.
type ValidationEventCreateBulk struct {
	config
	err      error
	builders []*ValidationEventCreate
	conflict []sql.ConflictOption
}

// Save creates the ValidationEvent entities in the database.
func (_c *ValidationEventCreateBulk) Save(ctx context.Context) ([]*ValidationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ValidationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ValidationEventMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *ValidationEventCreateBulk) SaveX(ctx context.Context) []*ValidationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ValidationEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ValidationEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *ValidationEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *ValidationEventUpsertBulk {
	_c.conflict = opts
	return &ValidationEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ValidationEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ValidationEventCreateBulk) OnConflictColumns(columns ...string) *ValidationEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ValidationEventUpsertBulk{
		create: _c,
	}
}

// ValidationEventUpsertBulk is the builder for "upsert"-ing
// a bulk of ValidationEvent nodes.
type ValidationEventUpsertBulk struct {
	create *ValidationEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ValidationEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ValidationEventUpsertBulk) UpdateNewValues() *ValidationEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(validationevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(validationevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ValidationEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ValidationEventUpsertBulk) Ignore() *ValidationEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ValidationEventUpsertBulk) DoNothing() *ValidationEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ValidationEventCreateBulk.OnConflict
// documentation for more info.
func (u *ValidationEventUpsertBulk) Update(set func(*ValidationEventUpsert)) *ValidationEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ValidationEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuestionID sets the "question_id" field.
func (u *ValidationEventUpsertBulk) SetQuestionID(v string) *ValidationEventUpsertBulk {
	return u.Update(func(s *ValidationEventUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *ValidationEventUpsertBulk) UpdateQuestionID() *ValidationEventUpsertBulk {
	return u.Update(func(s *ValidationEventUpsert) {
		s.UpdateQuestionID()
	})
}

// SetEmittedAt sets the "emitted_at" field.
func (u *ValidationEventUpsertBulk) SetEmittedAt(v int64) *ValidationEventUpsertBulk {
	return u.Update(func(s *ValidationEventUpsert) {
		s.SetEmittedAt(v)
	})
}

// AddEmittedAt adds v to the "emitted_at" field.
func (u *ValidationEventUpsertBulk) AddEmittedAt(v int64) *ValidationEventUpsertBulk {
	return u.Update(func(s *ValidationEventUpsert) {
		s.AddEmittedAt(v)
	})
}

// UpdateEmittedAt sets the "emitted_at" field to the value that was provided on create.
func (u *ValidationEventUpsertBulk) UpdateEmittedAt() *ValidationEventUpsertBulk {
	return u.Update(func(s *ValidationEventUpsert) {
		s.UpdateEmittedAt()
	})
}

// SetStatus sets the "status" field.
func (u *ValidationEventUpsertBulk) SetStatus(v string) *ValidationEventUpsertBulk {
	return u.Update(func(s *ValidationEventUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ValidationEventUpsertBulk) UpdateStatus() *ValidationEventUpsertBulk {
	return u.Update(func(s *ValidationEventUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorCount sets the "error_count" field.
func (u *ValidationEventUpsertBulk) SetErrorCount(v int) *ValidationEventUpsertBulk {
	return u.Update(func(s *ValidationEventUpsert) {
		s.SetErrorCount(v)
	})
}

// AddErrorCount adds v to the "error_count" field.
func (u *ValidationEventUpsertBulk) AddErrorCount(v int) *ValidationEventUpsertBulk {
	return u.Update(func(s *ValidationEventUpsert) {
		s.AddErrorCount(v)
	})
}

// UpdateErrorCount sets the "error_count" field to the value that was provided on create.
func (u *ValidationEventUpsertBulk) UpdateErrorCount() *ValidationEventUpsertBulk {
	return u.Update(func(s *ValidationEventUpsert) {
		s.UpdateErrorCount()
	})
}

// SetWarningCount sets the "warning_count" field.
func (u *ValidationEventUpsertBulk) SetWarningCount(v int) *ValidationEventUpsertBulk {
	return u.Update(func(s *ValidationEventUpsert) {
		s.SetWarningCount(v)
	})
}

// AddWarningCount adds v to the "warning_count" field.
func (u *ValidationEventUpsertBulk) AddWarningCount(v int) *ValidationEventUpsertBulk {
	return u.Update(func(s *ValidationEventUpsert) {
		s.AddWarningCount(v)
	})
}

// UpdateWarningCount sets the "warning_count" field to the value that was provided on create.
func (u *ValidationEventUpsertBulk) UpdateWarningCount() *ValidationEventUpsertBulk {
	return u.Update(func(s *ValidationEventUpsert) {
		s.UpdateWarningCount()
	})
}

// SetIssues sets the "issues" field.
func (u *ValidationEventUpsertBulk) SetIssues(v []schema.IssueDoc) *ValidationEventUpsertBulk {
	return u.Update(func(s *ValidationEventUpsert) {
		s.SetIssues(v)
	})
}

// UpdateIssues sets the "issues" field to the value that was provided on create.
func (u *ValidationEventUpsertBulk) UpdateIssues() *ValidationEventUpsertBulk {
	return u.Update(func(s *ValidationEventUpsert) {
		s.UpdateIssues()
	})
}

// ClearIssues clears the value of the "issues" field.
func (u *ValidationEventUpsertBulk) ClearIssues() *ValidationEventUpsertBulk {
	return u.Update(func(s *ValidationEventUpsert) {
		s.ClearIssues()
	})
}

// Exec executes the query.
func (u *ValidationEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ValidationEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ValidationEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ValidationEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
