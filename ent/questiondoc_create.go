// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathquest/ent/questiondoc"
	"github.com/abhisek/mathquest/ent/schema"
)

// QuestionDocCreate is the builder for creating a QuestionDoc entity.
type QuestionDocCreate struct {
	config
	mutation *QuestionDocMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetQuestionID sets the "question_id" field.
func (_c *QuestionDocCreate) SetQuestionID(v string) *QuestionDocCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *QuestionDocCreate) SetConceptID(v string) *QuestionDocCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *QuestionDocCreate) SetPrompt(v string) *QuestionDocCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *QuestionDocCreate) SetCorrectAnswer(v string) *QuestionDocCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetDistractors sets the "distractors" field.
func (_c *QuestionDocCreate) SetDistractors(v []schema.DistractorDoc) *QuestionDocCreate {
	_c.mutation.SetDistractors(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *QuestionDocCreate) SetDifficulty(v int) *QuestionDocCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *QuestionDocCreate) SetNillableDifficulty(v *int) *QuestionDocCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetTemplate sets the "template" field.
func (_c *QuestionDocCreate) SetTemplate(v string) *QuestionDocCreate {
	_c.mutation.SetTemplate(v)
	return _c
}

// Mutation returns the QuestionDocMutation object of the builder.
func (_c *QuestionDocCreate) Mutation() *QuestionDocMutation {
	return _c.mutation
}

// Save creates the QuestionDoc in the database.
func (_c *QuestionDocCreate) Save(ctx context.Context) (*QuestionDoc, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionDocCreate) SaveX(ctx context.Context) *QuestionDoc {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionDocCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionDocCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionDocCreate) defaults() {
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := questiondoc.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionDocCreate) check() error {
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "QuestionDoc.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := questiondoc.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "QuestionDoc.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "QuestionDoc.concept_id"`)}
	}
	if v, ok := _c.mutation.ConceptID(); ok {
		if err := questiondoc.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "QuestionDoc.concept_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "QuestionDoc.prompt"`)}
	}
	if v, ok := _c.mutation.Prompt(); ok {
		if err := questiondoc.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "QuestionDoc.prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "QuestionDoc.correct_answer"`)}
	}
	if v, ok := _c.mutation.CorrectAnswer(); ok {
		if err := questiondoc.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "QuestionDoc.correct_answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "QuestionDoc.difficulty"`)}
	}
	if _, ok := _c.mutation.Template(); !ok {
		return &ValidationError{Name: "template", err: errors.New(`ent: missing required field "QuestionDoc.template"`)}
	}
	if v, ok := _c.mutation.Template(); ok {
		if err := questiondoc.TemplateValidator(v); err != nil {
			return &ValidationError{Name: "template", err: fmt.Errorf(`ent: validator failed for field "QuestionDoc.template": %w`, err)}
		}
	}
	return nil
}

func (_c *QuestionDocCreate) sqlSave(ctx context.Context) (*QuestionDoc, error) {
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

func (_c *QuestionDocCreate) createSpec() (*QuestionDoc, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionDoc{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questiondoc.Table, sqlgraph.NewFieldSpec(questiondoc.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(questiondoc.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(questiondoc.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(questiondoc.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(questiondoc.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.Distractors(); ok {
		_spec.SetField(questiondoc.FieldDistractors, field.TypeJSON, value)
		_node.Distractors = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(questiondoc.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Template(); ok {
		_spec.SetField(questiondoc.FieldTemplate, field.TypeString, value)
		_node.Template = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuestionDoc.Create().
//		SetQuestionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionDocUpsert) {
//			SetQuestionID(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionDocCreate) OnConflict(opts ...sql.ConflictOption) *QuestionDocUpsertOne {
	_c.conflict = opts
	return &QuestionDocUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuestionDoc.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionDocCreate) OnConflictColumns(columns ...string) *QuestionDocUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionDocUpsertOne{
		create: _c,
	}
}

type (
	// QuestionDocUpsertOne is the builder for "upsert"-ing
	//  one QuestionDoc node.
	QuestionDocUpsertOne struct {
		create *QuestionDocCreate
	}

	// QuestionDocUpsert is the "OnConflict" setter.
	QuestionDocUpsert struct {
		*sql.UpdateSet
	}
)

// SetQuestionID sets the "question_id" field.
func (u *QuestionDocUpsert) SetQuestionID(v string) *QuestionDocUpsert {
	u.Set(questiondoc.FieldQuestionID, v)
	return u
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *QuestionDocUpsert) UpdateQuestionID() *QuestionDocUpsert {
	u.SetExcluded(questiondoc.FieldQuestionID)
	return u
}

// SetConceptID sets the "concept_id" field.
func (u *QuestionDocUpsert) SetConceptID(v string) *QuestionDocUpsert {
	u.Set(questiondoc.FieldConceptID, v)
	return u
}

// UpdateConceptID sets the "concept_id" field to the value that was provided on create.
func (u *QuestionDocUpsert) UpdateConceptID() *QuestionDocUpsert {
	u.SetExcluded(questiondoc.FieldConceptID)
	return u
}

// SetPrompt sets the "prompt" field.
func (u *QuestionDocUpsert) SetPrompt(v string) *QuestionDocUpsert {
	u.Set(questiondoc.FieldPrompt, v)
	return u
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *QuestionDocUpsert) UpdatePrompt() *QuestionDocUpsert {
	u.SetExcluded(questiondoc.FieldPrompt)
	return u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *QuestionDocUpsert) SetCorrectAnswer(v string) *QuestionDocUpsert {
	u.Set(questiondoc.FieldCorrectAnswer, v)
	return u
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *QuestionDocUpsert) UpdateCorrectAnswer() *QuestionDocUpsert {
	u.SetExcluded(questiondoc.FieldCorrectAnswer)
	return u
}

// SetDistractors sets the "distractors" field.
func (u *QuestionDocUpsert) SetDistractors(v []schema.DistractorDoc) *QuestionDocUpsert {
	u.Set(questiondoc.FieldDistractors, v)
	return u
}

// UpdateDistractors sets the "distractors" field to the value that was provided on create.
func (u *QuestionDocUpsert) UpdateDistractors() *QuestionDocUpsert {
	u.SetExcluded(questiondoc.FieldDistractors)
	return u
}

// ClearDistractors clears the value of the "distractors" field.
func (u *QuestionDocUpsert) ClearDistractors() *QuestionDocUpsert {
	u.SetNull(questiondoc.FieldDistractors)
	return u
}

// SetDifficulty sets the "difficulty" field.
func (u *QuestionDocUpsert) SetDifficulty(v int) *QuestionDocUpsert {
	u.Set(questiondoc.FieldDifficulty, v)
	return u
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *QuestionDocUpsert) UpdateDifficulty() *QuestionDocUpsert {
	u.SetExcluded(questiondoc.FieldDifficulty)
	return u
}

// AddDifficulty adds v to the "difficulty" field.
func (u *QuestionDocUpsert) AddDifficulty(v int) *QuestionDocUpsert {
	u.Add(questiondoc.FieldDifficulty, v)
	return u
}

// SetTemplate sets the "template" field.
func (u *QuestionDocUpsert) SetTemplate(v string) *QuestionDocUpsert {
	u.Set(questiondoc.FieldTemplate, v)
	return u
}

// UpdateTemplate sets the "template" field to the value that was provided on create.
func (u *QuestionDocUpsert) UpdateTemplate() *QuestionDocUpsert {
	u.SetExcluded(questiondoc.FieldTemplate)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.QuestionDoc.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuestionDocUpsertOne) UpdateNewValues() *QuestionDocUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuestionDoc.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuestionDocUpsertOne) Ignore() *QuestionDocUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionDocUpsertOne) DoNothing() *QuestionDocUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionDocCreate.OnConflict
// documentation for more info.
func (u *QuestionDocUpsertOne) Update(set func(*QuestionDocUpsert)) *QuestionDocUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionDocUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuestionID sets the "question_id" field.
func (u *QuestionDocUpsertOne) SetQuestionID(v string) *QuestionDocUpsertOne {
	return u.Update(func(s *QuestionDocUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *QuestionDocUpsertOne) UpdateQuestionID() *QuestionDocUpsertOne {
	return u.Update(func(s *QuestionDocUpsert) {
		s.UpdateQuestionID()
	})
}

// SetConceptID sets the "concept_id" field.
func (u *QuestionDocUpsertOne) SetConceptID(v string) *QuestionDocUpsertOne {
	return u.Update(func(s *QuestionDocUpsert) {
		s.SetConceptID(v)
	})
}

// UpdateConceptID sets the "concept_id" field to the value that was provided on create.
func (u *QuestionDocUpsertOne) UpdateConceptID() *QuestionDocUpsertOne {
	return u.Update(func(s *QuestionDocUpsert) {
		s.UpdateConceptID()
	})
}

// SetPrompt sets the "prompt" field.
func (u *QuestionDocUpsertOne) SetPrompt(v string) *QuestionDocUpsertOne {
	return u.Update(func(s *QuestionDocUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *QuestionDocUpsertOne) UpdatePrompt() *QuestionDocUpsertOne {
	return u.Update(func(s *QuestionDocUpsert) {
		s.UpdatePrompt()
	})
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *QuestionDocUpsertOne) SetCorrectAnswer(v string) *QuestionDocUpsertOne {
	return u.Update(func(s *QuestionDocUpsert) {
		s.SetCorrectAnswer(v)
	})
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *QuestionDocUpsertOne) UpdateCorrectAnswer() *QuestionDocUpsertOne {
	return u.Update(func(s *QuestionDocUpsert) {
		s.UpdateCorrectAnswer()
	})
}

// SetDistractors sets the "distractors" field.
func (u *QuestionDocUpsertOne) SetDistractors(v []schema.DistractorDoc) *QuestionDocUpsertOne {
	return u.Update(func(s *QuestionDocUpsert) {
		s.SetDistractors(v)
	})
}

// UpdateDistractors sets the "distractors" field to the value that was provided on create.
func (u *QuestionDocUpsertOne) UpdateDistractors() *QuestionDocUpsertOne {
	return u.Update(func(s *QuestionDocUpsert) {
		s.UpdateDistractors()
	})
}

// ClearDistractors clears the value of the "distractors" field.
func (u *QuestionDocUpsertOne) ClearDistractors() *QuestionDocUpsertOne {
	return u.Update(func(s *QuestionDocUpsert) {
		s.ClearDistractors()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *QuestionDocUpsertOne) SetDifficulty(v int) *QuestionDocUpsertOne {
	return u.Update(func(s *QuestionDocUpsert) {
		s.SetDifficulty(v)
	})
}

// AddDifficulty adds v to the "difficulty" field.
func (u *QuestionDocUpsertOne) AddDifficulty(v int) *QuestionDocUpsertOne {
	return u.Update(func(s *QuestionDocUpsert) {
		s.AddDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *QuestionDocUpsertOne) UpdateDifficulty() *QuestionDocUpsertOne {
	return u.Update(func(s *QuestionDocUpsert) {
		s.UpdateDifficulty()
	})
}

// SetTemplate sets the "template" field.
func (u *QuestionDocUpsertOne) SetTemplate(v string) *QuestionDocUpsertOne {
	return u.Update(func(s *QuestionDocUpsert) {
		s.SetTemplate(v)
	})
}

// UpdateTemplate sets the "template" field to the value that was provided on create.
func (u *QuestionDocUpsertOne) UpdateTemplate() *QuestionDocUpsertOne {
	return u.Update(func(s *QuestionDocUpsert) {
		s.UpdateTemplate()
	})
}

// Exec executes the query.
func (u *QuestionDocUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionDocCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionDocUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuestionDocUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuestionDocUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuestionDocCreateBulk is the builder for creating many QuestionDoc entities in bulk.
type QuestionDocCreateBulk struct {
	config
	err      error
	builders []*QuestionDocCreate
	conflict []sql.ConflictOption
}

// Save creates the QuestionDoc entities in the database.
func (_c *QuestionDocCreateBulk) Save(ctx context.Context) ([]*QuestionDoc, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionDoc, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionDocMutation)
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
func (_c *QuestionDocCreateBulk) SaveX(ctx context.Context) []*QuestionDoc {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionDocCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionDocCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuestionDoc.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionDocUpsert) {
//			SetQuestionID(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionDocCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuestionDocUpsertBulk {
	_c.conflict = opts
	return &QuestionDocUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuestionDoc.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionDocCreateBulk) OnConflictColumns(columns ...string) *QuestionDocUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionDocUpsertBulk{
		create: _c,
	}
}

// QuestionDocUpsertBulk is the builder for "upsert"-ing
// a bulk of QuestionDoc nodes.
type QuestionDocUpsertBulk struct {
	create *QuestionDocCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QuestionDoc.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuestionDocUpsertBulk) UpdateNewValues() *QuestionDocUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuestionDoc.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuestionDocUpsertBulk) Ignore() *QuestionDocUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionDocUpsertBulk) DoNothing() *QuestionDocUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionDocCreateBulk.OnConflict
// documentation for more info.
func (u *QuestionDocUpsertBulk) Update(set func(*QuestionDocUpsert)) *QuestionDocUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionDocUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuestionID sets the "question_id" field.
func (u *QuestionDocUpsertBulk) SetQuestionID(v string) *QuestionDocUpsertBulk {
	return u.Update(func(s *QuestionDocUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *QuestionDocUpsertBulk) UpdateQuestionID() *QuestionDocUpsertBulk {
	return u.Update(func(s *QuestionDocUpsert) {
		s.UpdateQuestionID()
	})
}

// SetConceptID sets the "concept_id" field.
func (u *QuestionDocUpsertBulk) SetConceptID(v string) *QuestionDocUpsertBulk {
	return u.Update(func(s *QuestionDocUpsert) {
		s.SetConceptID(v)
	})
}

// UpdateConceptID sets the "concept_id" field to the value that was provided on create.
func (u *QuestionDocUpsertBulk) UpdateConceptID() *QuestionDocUpsertBulk {
	return u.Update(func(s *QuestionDocUpsert) {
		s.UpdateConceptID()
	})
}

// SetPrompt sets the "prompt" field.
func (u *QuestionDocUpsertBulk) SetPrompt(v string) *QuestionDocUpsertBulk {
	return u.Update(func(s *QuestionDocUpsert) {
		s.SetPrompt(v)
	})
}

// UpdatePrompt sets the "prompt" field to the value that was provided on create.
func (u *QuestionDocUpsertBulk) UpdatePrompt() *QuestionDocUpsertBulk {
	return u.Update(func(s *QuestionDocUpsert) {
		s.UpdatePrompt()
	})
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *QuestionDocUpsertBulk) SetCorrectAnswer(v string) *QuestionDocUpsertBulk {
	return u.Update(func(s *QuestionDocUpsert) {
		s.SetCorrectAnswer(v)
	})
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *QuestionDocUpsertBulk) UpdateCorrectAnswer() *QuestionDocUpsertBulk {
	return u.Update(func(s *QuestionDocUpsert) {
		s.UpdateCorrectAnswer()
	})
}

// SetDistractors sets the "distractors" field.
func (u *QuestionDocUpsertBulk) SetDistractors(v []schema.DistractorDoc) *QuestionDocUpsertBulk {
	return u.Update(func(s *QuestionDocUpsert) {
		s.SetDistractors(v)
	})
}

// UpdateDistractors sets the "distractors" field to the value that was provided on create.
func (u *QuestionDocUpsertBulk) UpdateDistractors() *QuestionDocUpsertBulk {
	return u.Update(func(s *QuestionDocUpsert) {
		s.UpdateDistractors()
	})
}

// ClearDistractors clears the value of the "distractors" field.
func (u *QuestionDocUpsertBulk) ClearDistractors() *QuestionDocUpsertBulk {
	return u.Update(func(s *QuestionDocUpsert) {
		s.ClearDistractors()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *QuestionDocUpsertBulk) SetDifficulty(v int) *QuestionDocUpsertBulk {
	return u.Update(func(s *QuestionDocUpsert) {
		s.SetDifficulty(v)
	})
}

// AddDifficulty adds v to the "difficulty" field.
func (u *QuestionDocUpsertBulk) AddDifficulty(v int) *QuestionDocUpsertBulk {
	return u.Update(func(s *QuestionDocUpsert) {
		s.AddDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *QuestionDocUpsertBulk) UpdateDifficulty() *QuestionDocUpsertBulk {
	return u.Update(func(s *QuestionDocUpsert) {
		s.UpdateDifficulty()
	})
}

// SetTemplate sets the "template" field.
func (u *QuestionDocUpsertBulk) SetTemplate(v string) *QuestionDocUpsertBulk {
	return u.Update(func(s *QuestionDocUpsert) {
		s.SetTemplate(v)
	})
}

// UpdateTemplate sets the "template" field to the value that was provided on create.
func (u *QuestionDocUpsertBulk) UpdateTemplate() *QuestionDocUpsertBulk {
	return u.Update(func(s *QuestionDocUpsert) {
		s.UpdateTemplate()
	})
}

// Exec executes the query.
func (u *QuestionDocUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QuestionDocCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionDocCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionDocUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
