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
	"github.com/abhisek/mathquest/ent/rewardevent"
)

// RewardEventCreate is the builder for creating a RewardEvent entity.
type RewardEventCreate struct {
	config
	mutation *RewardEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *RewardEventCreate) SetSequence(v int64) *RewardEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RewardEventCreate) SetTimestamp(v time.Time) *RewardEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RewardEventCreate) SetNillableTimestamp(v *time.Time) *RewardEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAwardType sets the "award_type" field.
func (_c *RewardEventCreate) SetAwardType(v string) *RewardEventCreate {
	_c.mutation.SetAwardType(v)
	return _c
}

// SetRarity sets the "rarity" field.
func (_c *RewardEventCreate) SetRarity(v string) *RewardEventCreate {
	_c.mutation.SetRarity(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *RewardEventCreate) SetSessionID(v string) *RewardEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *RewardEventCreate) SetConceptID(v string) *RewardEventCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_c *RewardEventCreate) SetNillableConceptID(v *string) *RewardEventCreate {
	if v != nil {
		_c.SetConceptID(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *RewardEventCreate) SetReason(v string) *RewardEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// Mutation returns the RewardEventMutation object of the builder.
func (_c *RewardEventCreate) Mutation() *RewardEventMutation {
	return _c.mutation
}

// Save creates the RewardEvent in the database.
func (_c *RewardEventCreate) Save(ctx context.Context) (*RewardEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RewardEventCreate) SaveX(ctx context.Context) *RewardEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RewardEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RewardEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RewardEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := rewardevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		v := rewardevent.DefaultConceptID
		_c.mutation.SetConceptID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RewardEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RewardEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RewardEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AwardType(); !ok {
		return &ValidationError{Name: "award_type", err: errors.New(`ent: missing required field "RewardEvent.award_type"`)}
	}
	if v, ok := _c.mutation.AwardType(); ok {
		if err := rewardevent.AwardTypeValidator(v); err != nil {
			return &ValidationError{Name: "award_type", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.award_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rarity(); !ok {
		return &ValidationError{Name: "rarity", err: errors.New(`ent: missing required field "RewardEvent.rarity"`)}
	}
	if v, ok := _c.mutation.Rarity(); ok {
		if err := rewardevent.RarityValidator(v); err != nil {
			return &ValidationError{Name: "rarity", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.rarity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "RewardEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := rewardevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "RewardEvent.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := rewardevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_c *RewardEventCreate) sqlSave(ctx context.Context) (*RewardEvent, error) {
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

func (_c *RewardEventCreate) createSpec() (*RewardEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RewardEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rewardevent.Table, sqlgraph.NewFieldSpec(rewardevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(rewardevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(rewardevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AwardType(); ok {
		_spec.SetField(rewardevent.FieldAwardType, field.TypeString, value)
		_node.AwardType = value
	}
	if value, ok := _c.mutation.Rarity(); ok {
		_spec.SetField(rewardevent.FieldRarity, field.TypeString, value)
		_node.Rarity = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(rewardevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(rewardevent.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(rewardevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RewardEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RewardEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *RewardEventCreate) OnConflict(opts ...sql.ConflictOption) *RewardEventUpsertOne {
	_c.conflict = opts
	return &RewardEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RewardEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RewardEventCreate) OnConflictColumns(columns ...string) *RewardEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RewardEventUpsertOne{
		create: _c,
	}
}

type (
	// RewardEventUpsertOne is the builder for "upsert"-ing
	//  one RewardEvent node.
	RewardEventUpsertOne struct {
		create *RewardEventCreate
	}

	// RewardEventUpsert is the "OnConflict" setter.
	RewardEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetAwardType sets the "award_type" field.
func (u *RewardEventUpsert) SetAwardType(v string) *RewardEventUpsert {
	u.Set(rewardevent.FieldAwardType, v)
	return u
}

// UpdateAwardType sets the "award_type" field to the value that was provided on create.
func (u *RewardEventUpsert) UpdateAwardType() *RewardEventUpsert {
	u.SetExcluded(rewardevent.FieldAwardType)
	return u
}

// SetRarity sets the "rarity" field.
func (u *RewardEventUpsert) SetRarity(v string) *RewardEventUpsert {
	u.Set(rewardevent.FieldRarity, v)
	return u
}

// UpdateRarity sets the "rarity" field to the value that was provided on create.
func (u *RewardEventUpsert) UpdateRarity() *RewardEventUpsert {
	u.SetExcluded(rewardevent.FieldRarity)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *RewardEventUpsert) SetSessionID(v string) *RewardEventUpsert {
	u.Set(rewardevent.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *RewardEventUpsert) UpdateSessionID() *RewardEventUpsert {
	u.SetExcluded(rewardevent.FieldSessionID)
	return u
}

// SetConceptID sets the "concept_id" field.
func (u *RewardEventUpsert) SetConceptID(v string) *RewardEventUpsert {
	u.Set(rewardevent.FieldConceptID, v)
	return u
}

// UpdateConceptID sets the "concept_id" field to the value that was provided on create.
func (u *RewardEventUpsert) UpdateConceptID() *RewardEventUpsert {
	u.SetExcluded(rewardevent.FieldConceptID)
	return u
}

// ClearConceptID clears the value of the "concept_id" field.
func (u *RewardEventUpsert) ClearConceptID() *RewardEventUpsert {
	u.SetNull(rewardevent.FieldConceptID)
	return u
}

// SetReason sets the "reason" field.
func (u *RewardEventUpsert) SetReason(v string) *RewardEventUpsert {
	u.Set(rewardevent.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *RewardEventUpsert) UpdateReason() *RewardEventUpsert {
	u.SetExcluded(rewardevent.FieldReason)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.RewardEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RewardEventUpsertOne) UpdateNewValues() *RewardEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(rewardevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(rewardevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RewardEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RewardEventUpsertOne) Ignore() *RewardEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RewardEventUpsertOne) DoNothing() *RewardEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RewardEventCreate.OnConflict
// documentation for more info.
func (u *RewardEventUpsertOne) Update(set func(*RewardEventUpsert)) *RewardEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RewardEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetAwardType sets the "award_type" field.
func (u *RewardEventUpsertOne) SetAwardType(v string) *RewardEventUpsertOne {
	return u.Update(func(s *RewardEventUpsert) {
		s.SetAwardType(v)
	})
}

// UpdateAwardType sets the "award_type" field to the value that was provided on create.
func (u *RewardEventUpsertOne) UpdateAwardType() *RewardEventUpsertOne {
	return u.Update(func(s *RewardEventUpsert) {
		s.UpdateAwardType()
	})
}

// SetRarity sets the "rarity" field.
func (u *RewardEventUpsertOne) SetRarity(v string) *RewardEventUpsertOne {
	return u.Update(func(s *RewardEventUpsert) {
		s.SetRarity(v)
	})
}

// UpdateRarity sets the "rarity" field to the value that was provided on create.
func (u *RewardEventUpsertOne) UpdateRarity() *RewardEventUpsertOne {
	return u.Update(func(s *RewardEventUpsert) {
		s.UpdateRarity()
	})
}

// SetSessionID sets the "session_id" field.
func (u *RewardEventUpsertOne) SetSessionID(v string) *RewardEventUpsertOne {
	return u.Update(func(s *RewardEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *RewardEventUpsertOne) UpdateSessionID() *RewardEventUpsertOne {
	return u.Update(func(s *RewardEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetConceptID sets the "concept_id" field.
func (u *RewardEventUpsertOne) SetConceptID(v string) *RewardEventUpsertOne {
	return u.Update(func(s *RewardEventUpsert) {
		s.SetConceptID(v)
	})
}

// UpdateConceptID sets the "concept_id" field to the value that was provided on create.
func (u *RewardEventUpsertOne) UpdateConceptID() *RewardEventUpsertOne {
	return u.Update(func(s *RewardEventUpsert) {
		s.UpdateConceptID()
	})
}

// ClearConceptID clears the value of the "concept_id" field.
func (u *RewardEventUpsertOne) ClearConceptID() *RewardEventUpsertOne {
	return u.Update(func(s *RewardEventUpsert) {
		s.ClearConceptID()
	})
}

// SetReason sets the "reason" field.
func (u *RewardEventUpsertOne) SetReason(v string) *RewardEventUpsertOne {
	return u.Update(func(s *RewardEventUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *RewardEventUpsertOne) UpdateReason() *RewardEventUpsertOne {
	return u.Update(func(s *RewardEventUpsert) {
		s.UpdateReason()
	})
}

// Exec executes the query.
func (u *RewardEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RewardEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RewardEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RewardEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RewardEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RewardEventCreateBulk is the builder for creating many RewardEvent entities in bulk.
type RewardEventCreateBulk struct {
	config
	err      error
	builders []*RewardEventCreate
	conflict []sql.ConflictOption
}

// Save creates the RewardEvent entities in the database.
func (_c *RewardEventCreateBulk) Save(ctx context.Context) ([]*RewardEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RewardEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RewardEventMutation)
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
func (_c *RewardEventCreateBulk) SaveX(ctx context.Context) []*RewardEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RewardEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RewardEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RewardEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RewardEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *RewardEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *RewardEventUpsertBulk {
	_c.conflict = opts
	return &RewardEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RewardEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RewardEventCreateBulk) OnConflictColumns(columns ...string) *RewardEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RewardEventUpsertBulk{
		create: _c,
	}
}

// RewardEventUpsertBulk is the builder for "upsert"-ing
// a bulk of RewardEvent nodes.
type RewardEventUpsertBulk struct {
	create *RewardEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RewardEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RewardEventUpsertBulk) UpdateNewValues() *RewardEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(rewardevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(rewardevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RewardEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RewardEventUpsertBulk) Ignore() *RewardEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RewardEventUpsertBulk) DoNothing() *RewardEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RewardEventCreateBulk.OnConflict
// documentation for more info.
func (u *RewardEventUpsertBulk) Update(set func(*RewardEventUpsert)) *RewardEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RewardEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetAwardType sets the "award_type" field.
func (u *RewardEventUpsertBulk) SetAwardType(v string) *RewardEventUpsertBulk {
	return u.Update(func(s *RewardEventUpsert) {
		s.SetAwardType(v)
	})
}

// UpdateAwardType sets the "award_type" field to the value that was provided on create.
func (u *RewardEventUpsertBulk) UpdateAwardType() *RewardEventUpsertBulk {
	return u.Update(func(s *RewardEventUpsert) {
		s.UpdateAwardType()
	})
}

// SetRarity sets the "rarity" field.
func (u *RewardEventUpsertBulk) SetRarity(v string) *RewardEventUpsertBulk {
	return u.Update(func(s *RewardEventUpsert) {
		s.SetRarity(v)
	})
}

// UpdateRarity sets the "rarity" field to the value that was provided on create.
func (u *RewardEventUpsertBulk) UpdateRarity() *RewardEventUpsertBulk {
	return u.Update(func(s *RewardEventUpsert) {
		s.UpdateRarity()
	})
}

// SetSessionID sets the "session_id" field.
func (u *RewardEventUpsertBulk) SetSessionID(v string) *RewardEventUpsertBulk {
	return u.Update(func(s *RewardEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *RewardEventUpsertBulk) UpdateSessionID() *RewardEventUpsertBulk {
	return u.Update(func(s *RewardEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetConceptID sets the "concept_id" field.
func (u *RewardEventUpsertBulk) SetConceptID(v string) *RewardEventUpsertBulk {
	return u.Update(func(s *RewardEventUpsert) {
		s.SetConceptID(v)
	})
}

// UpdateConceptID sets the "concept_id" field to the value that was provided on create.
func (u *RewardEventUpsertBulk) UpdateConceptID() *RewardEventUpsertBulk {
	return u.Update(func(s *RewardEventUpsert) {
		s.UpdateConceptID()
	})
}

// ClearConceptID clears the value of the "concept_id" field.
func (u *RewardEventUpsertBulk) ClearConceptID() *RewardEventUpsertBulk {
	return u.Update(func(s *RewardEventUpsert) {
		s.ClearConceptID()
	})
}

// SetReason sets the "reason" field.
func (u *RewardEventUpsertBulk) SetReason(v string) *RewardEventUpsertBulk {
	return u.Update(func(s *RewardEventUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *RewardEventUpsertBulk) UpdateReason() *RewardEventUpsertBulk {
	return u.Update(func(s *RewardEventUpsert) {
		s.UpdateReason()
	})
}

// Exec executes the query.
func (u *RewardEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RewardEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RewardEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RewardEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
