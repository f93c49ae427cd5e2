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
	"github.com/abhisek/mathquest/ent/questiondoc"
	"github.com/abhisek/mathquest/ent/schema"
)

// QuestionDocUpdate is the builder for updating QuestionDoc entities.
type QuestionDocUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionDocMutation
}

// Where appends a list predicates to the QuestionDocUpdate builder.
func (_u *QuestionDocUpdate) Where(ps ...predicate.QuestionDoc) *QuestionDocUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *QuestionDocUpdate) SetQuestionID(v string) *QuestionDocUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *QuestionDocUpdate) SetNillableQuestionID(v *string) *QuestionDocUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *QuestionDocUpdate) SetConceptID(v string) *QuestionDocUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *QuestionDocUpdate) SetNillableConceptID(v *string) *QuestionDocUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *QuestionDocUpdate) SetPrompt(v string) *QuestionDocUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *QuestionDocUpdate) SetNillablePrompt(v *string) *QuestionDocUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *QuestionDocUpdate) SetCorrectAnswer(v string) *QuestionDocUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *QuestionDocUpdate) SetNillableCorrectAnswer(v *string) *QuestionDocUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetDistractors sets the "distractors" field.
func (_u *QuestionDocUpdate) SetDistractors(v []schema.DistractorDoc) *QuestionDocUpdate {
	_u.mutation.SetDistractors(v)
	return _u
}

// AppendDistractors appends value to the "distractors" field.
func (_u *QuestionDocUpdate) AppendDistractors(v []schema.DistractorDoc) *QuestionDocUpdate {
	_u.mutation.AppendDistractors(v)
	return _u
}

// ClearDistractors clears the value of the "distractors" field.
func (_u *QuestionDocUpdate) ClearDistractors() *QuestionDocUpdate {
	_u.mutation.ClearDistractors()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuestionDocUpdate) SetDifficulty(v int) *QuestionDocUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuestionDocUpdate) SetNillableDifficulty(v *int) *QuestionDocUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *QuestionDocUpdate) AddDifficulty(v int) *QuestionDocUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetTemplate sets the "template" field.
func (_u *QuestionDocUpdate) SetTemplate(v string) *QuestionDocUpdate {
	_u.mutation.SetTemplate(v)
	return _u
}

// SetNillableTemplate sets the "template" field if the given value is not nil.
func (_u *QuestionDocUpdate) SetNillableTemplate(v *string) *QuestionDocUpdate {
	if v != nil {
		_u.SetTemplate(*v)
	}
	return _u
}

// Mutation returns the QuestionDocMutation object of the builder.
func (_u *QuestionDocUpdate) Mutation() *QuestionDocMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionDocUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionDocUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionDocUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionDocUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionDocUpdate) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := questiondoc.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "QuestionDoc.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := questiondoc.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "QuestionDoc.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := questiondoc.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "QuestionDoc.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := questiondoc.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "QuestionDoc.correct_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Template(); ok {
		if err := questiondoc.TemplateValidator(v); err != nil {
			return &ValidationError{Name: "template", err: fmt.Errorf(`ent: validator failed for field "QuestionDoc.template": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionDocUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questiondoc.Table, questiondoc.Columns, sqlgraph.NewFieldSpec(questiondoc.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(questiondoc.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(questiondoc.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(questiondoc.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(questiondoc.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Distractors(); ok {
		_spec.SetField(questiondoc.FieldDistractors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDistractors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questiondoc.FieldDistractors, value)
		})
	}
	if _u.mutation.DistractorsCleared() {
		_spec.ClearField(questiondoc.FieldDistractors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(questiondoc.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(questiondoc.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Template(); ok {
		_spec.SetField(questiondoc.FieldTemplate, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questiondoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionDocUpdateOne is the builder for updating a single QuestionDoc entity.
type QuestionDocUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionDocMutation
}

// SetQuestionID sets the "question_id" field.
func (_u *QuestionDocUpdateOne) SetQuestionID(v string) *QuestionDocUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *QuestionDocUpdateOne) SetNillableQuestionID(v *string) *QuestionDocUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *QuestionDocUpdateOne) SetConceptID(v string) *QuestionDocUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *QuestionDocUpdateOne) SetNillableConceptID(v *string) *QuestionDocUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *QuestionDocUpdateOne) SetPrompt(v string) *QuestionDocUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *QuestionDocUpdateOne) SetNillablePrompt(v *string) *QuestionDocUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *QuestionDocUpdateOne) SetCorrectAnswer(v string) *QuestionDocUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *QuestionDocUpdateOne) SetNillableCorrectAnswer(v *string) *QuestionDocUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetDistractors sets the "distractors" field.
func (_u *QuestionDocUpdateOne) SetDistractors(v []schema.DistractorDoc) *QuestionDocUpdateOne {
	_u.mutation.SetDistractors(v)
	return _u
}

// AppendDistractors appends value to the "distractors" field.
func (_u *QuestionDocUpdateOne) AppendDistractors(v []schema.DistractorDoc) *QuestionDocUpdateOne {
	_u.mutation.AppendDistractors(v)
	return _u
}

// ClearDistractors clears the value of the "distractors" field.
func (_u *QuestionDocUpdateOne) ClearDistractors() *QuestionDocUpdateOne {
	_u.mutation.ClearDistractors()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuestionDocUpdateOne) SetDifficulty(v int) *QuestionDocUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuestionDocUpdateOne) SetNillableDifficulty(v *int) *QuestionDocUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *QuestionDocUpdateOne) AddDifficulty(v int) *QuestionDocUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetTemplate sets the "template" field.
func (_u *QuestionDocUpdateOne) SetTemplate(v string) *QuestionDocUpdateOne {
	_u.mutation.SetTemplate(v)
	return _u
}

// SetNillableTemplate sets the "template" field if the given value is not nil.
func (_u *QuestionDocUpdateOne) SetNillableTemplate(v *string) *QuestionDocUpdateOne {
	if v != nil {
		_u.SetTemplate(*v)
	}
	return _u
}

// Mutation returns the QuestionDocMutation object of the builder.
func (_u *QuestionDocUpdateOne) Mutation() *QuestionDocMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionDocUpdate builder.
func (_u *QuestionDocUpdateOne) Where(ps ...predicate.QuestionDoc) *QuestionDocUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionDocUpdateOne) Select(field string, fields ...string) *QuestionDocUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionDoc entity.
func (_u *QuestionDocUpdateOne) Save(ctx context.Context) (*QuestionDoc, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionDocUpdateOne) SaveX(ctx context.Context) *QuestionDoc {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionDocUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionDocUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionDocUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := questiondoc.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "QuestionDoc.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := questiondoc.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "QuestionDoc.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := questiondoc.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "QuestionDoc.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := questiondoc.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "QuestionDoc.correct_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Template(); ok {
		if err := questiondoc.TemplateValidator(v); err != nil {
			return &ValidationError{Name: "template", err: fmt.Errorf(`ent: validator failed for field "QuestionDoc.template": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionDocUpdateOne) sqlSave(ctx context.Context) (_node *QuestionDoc, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questiondoc.Table, questiondoc.Columns, sqlgraph.NewFieldSpec(questiondoc.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestionDoc.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questiondoc.FieldID)
		for _, f := range fields {
			if !questiondoc.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questiondoc.FieldID {
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
		_spec.SetField(questiondoc.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(questiondoc.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(questiondoc.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(questiondoc.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Distractors(); ok {
		_spec.SetField(questiondoc.FieldDistractors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDistractors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, questiondoc.FieldDistractors, value)
		})
	}
	if _u.mutation.DistractorsCleared() {
		_spec.ClearField(questiondoc.FieldDistractors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(questiondoc.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(questiondoc.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Template(); ok {
		_spec.SetField(questiondoc.FieldTemplate, field.TypeString, value)
	}
	_node = &QuestionDoc{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questiondoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
