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
	"github.com/abhisek/mathquest/ent/telemetryevent"
)

// TelemetryEventCreate is the builder for creating a TelemetryEvent entity.
type TelemetryEventCreate struct {
	config
	mutation *TelemetryEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *TelemetryEventCreate) SetSequence(v int64) *TelemetryEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TelemetryEventCreate) SetTimestamp(v time.Time) *TelemetryEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillableTimestamp(v *time.Time) *TelemetryEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TelemetryEventCreate) SetSessionID(v string) *TelemetryEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *TelemetryEventCreate) SetQuestionID(v string) *TelemetryEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetStudentAnswer sets the "student_answer" field.
func (_c *TelemetryEventCreate) SetStudentAnswer(v string) *TelemetryEventCreate {
	_c.mutation.SetStudentAnswer(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *TelemetryEventCreate) SetCorrectAnswer(v string) *TelemetryEventCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *TelemetryEventCreate) SetCorrect(v bool) *TelemetryEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetTimeMs sets the "time_ms" field.
func (_c *TelemetryEventCreate) SetTimeMs(v int) *TelemetryEventCreate {
	_c.mutation.SetTimeMs(v)
	return _c
}

// SetSpeedRating sets the "speed_rating" field.
func (_c *TelemetryEventCreate) SetSpeedRating(v string) *TelemetryEventCreate {
	_c.mutation.SetSpeedRating(v)
	return _c
}

// SetMasteryBefore sets the "mastery_before" field.
func (_c *TelemetryEventCreate) SetMasteryBefore(v float64) *TelemetryEventCreate {
	_c.mutation.SetMasteryBefore(v)
	return _c
}

// SetMasteryAfter sets the "mastery_after" field.
func (_c *TelemetryEventCreate) SetMasteryAfter(v float64) *TelemetryEventCreate {
	_c.mutation.SetMasteryAfter(v)
	return _c
}

// SetDiagnosticTag sets the "diagnostic_tag" field.
func (_c *TelemetryEventCreate) SetDiagnosticTag(v string) *TelemetryEventCreate {
	_c.mutation.SetDiagnosticTag(v)
	return _c
}

// SetNillableDiagnosticTag sets the "diagnostic_tag" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillableDiagnosticTag(v *string) *TelemetryEventCreate {
	if v != nil {
		_c.SetDiagnosticTag(*v)
	}
	return _c
}

// SetRecovered sets the "recovered" field.
func (_c *TelemetryEventCreate) SetRecovered(v bool) *TelemetryEventCreate {
	_c.mutation.SetRecovered(v)
	return _c
}

// SetRecoveryVelocity sets the "recovery_velocity" field.
func (_c *TelemetryEventCreate) SetRecoveryVelocity(v float64) *TelemetryEventCreate {
	_c.mutation.SetRecoveryVelocity(v)
	return _c
}

// SetNillableRecoveryVelocity sets the "recovery_velocity" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillableRecoveryVelocity(v *float64) *TelemetryEventCreate {
	if v != nil {
		_c.SetRecoveryVelocity(*v)
	}
	return _c
}

// SetAtomID sets the "atom_id" field.
func (_c *TelemetryEventCreate) SetAtomID(v string) *TelemetryEventCreate {
	_c.mutation.SetAtomID(v)
	return _c
}

// SetEmittedAt sets the "emitted_at" field.
func (_c *TelemetryEventCreate) SetEmittedAt(v int64) *TelemetryEventCreate {
	_c.mutation.SetEmittedAt(v)
	return _c
}

// Mutation returns the TelemetryEventMutation object of the builder.
func (_c *TelemetryEventCreate) Mutation() *TelemetryEventMutation {
	return _c.mutation
}

// Save creates the TelemetryEvent in the database.
func (_c *TelemetryEventCreate) Save(ctx context.Context) (*TelemetryEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TelemetryEventCreate) SaveX(ctx context.Context) *TelemetryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TelemetryEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TelemetryEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TelemetryEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := telemetryevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TelemetryEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TelemetryEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TelemetryEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TelemetryEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := telemetryevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TelemetryEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "TelemetryEvent.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := telemetryevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "TelemetryEvent.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentAnswer(); !ok {
		return &ValidationError{Name: "student_answer", err: errors.New(`ent: missing required field "TelemetryEvent.student_answer"`)}
	}
	if v, ok := _c.mutation.StudentAnswer(); ok {
		if err := telemetryevent.StudentAnswerValidator(v); err != nil {
			return &ValidationError{Name: "student_answer", err: fmt.Errorf(`ent: validator failed for field "TelemetryEvent.student_answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "TelemetryEvent.correct_answer"`)}
	}
	if v, ok := _c.mutation.CorrectAnswer(); ok {
		if err := telemetryevent.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "TelemetryEvent.correct_answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "TelemetryEvent.correct"`)}
	}
	if _, ok := _c.mutation.TimeMs(); !ok {
		return &ValidationError{Name: "time_ms", err: errors.New(`ent: missing required field "TelemetryEvent.time_ms"`)}
	}
	if _, ok := _c.mutation.SpeedRating(); !ok {
		return &ValidationError{Name: "speed_rating", err: errors.New(`ent: missing required field "TelemetryEvent.speed_rating"`)}
	}
	if v, ok := _c.mutation.SpeedRating(); ok {
		if err := telemetryevent.SpeedRatingValidator(v); err != nil {
			return &ValidationError{Name: "speed_rating", err: fmt.Errorf(`ent: validator failed for field "TelemetryEvent.speed_rating": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MasteryBefore(); !ok {
		return &ValidationError{Name: "mastery_before", err: errors.New(`ent: missing required field "TelemetryEvent.mastery_before"`)}
	}
	if _, ok := _c.mutation.MasteryAfter(); !ok {
		return &ValidationError{Name: "mastery_after", err: errors.New(`ent: missing required field "TelemetryEvent.mastery_after"`)}
	}
	if _, ok := _c.mutation.Recovered(); !ok {
		return &ValidationError{Name: "recovered", err: errors.New(`ent: missing required field "TelemetryEvent.recovered"`)}
	}
	if _, ok := _c.mutation.AtomID(); !ok {
		return &ValidationError{Name: "atom_id", err: errors.New(`ent: missing required field "TelemetryEvent.atom_id"`)}
	}
	if v, ok := _c.mutation.AtomID(); ok {
		if err := telemetryevent.AtomIDValidator(v); err != nil {
			return &ValidationError{Name: "atom_id", err: fmt.Errorf(`ent: validator failed for field "TelemetryEvent.atom_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EmittedAt(); !ok {
		return &ValidationError{Name: "emitted_at", err: errors.New(`ent: missing required field "TelemetryEvent.emitted_at"`)}
	}
	return nil
}

func (_c *TelemetryEventCreate) sqlSave(ctx context.Context) (*TelemetryEvent, error) {
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

func (_c *TelemetryEventCreate) createSpec() (*TelemetryEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TelemetryEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(telemetryevent.Table, sqlgraph.NewFieldSpec(telemetryevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(telemetryevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(telemetryevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(telemetryevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(telemetryevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.StudentAnswer(); ok {
		_spec.SetField(telemetryevent.FieldStudentAnswer, field.TypeString, value)
		_node.StudentAnswer = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(telemetryevent.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(telemetryevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.TimeMs(); ok {
		_spec.SetField(telemetryevent.FieldTimeMs, field.TypeInt, value)
		_node.TimeMs = value
	}
	if value, ok := _c.mutation.SpeedRating(); ok {
		_spec.SetField(telemetryevent.FieldSpeedRating, field.TypeString, value)
		_node.SpeedRating = value
	}
	if value, ok := _c.mutation.MasteryBefore(); ok {
		_spec.SetField(telemetryevent.FieldMasteryBefore, field.TypeFloat64, value)
		_node.MasteryBefore = value
	}
	if value, ok := _c.mutation.MasteryAfter(); ok {
		_spec.SetField(telemetryevent.FieldMasteryAfter, field.TypeFloat64, value)
		_node.MasteryAfter = value
	}
	if value, ok := _c.mutation.DiagnosticTag(); ok {
		_spec.SetField(telemetryevent.FieldDiagnosticTag, field.TypeString, value)
		_node.DiagnosticTag = value
	}
	if value, ok := _c.mutation.Recovered(); ok {
		_spec.SetField(telemetryevent.FieldRecovered, field.TypeBool, value)
		_node.Recovered = value
	}
	if value, ok := _c.mutation.RecoveryVelocity(); ok {
		_spec.SetField(telemetryevent.FieldRecoveryVelocity, field.TypeFloat64, value)
		_node.RecoveryVelocity = &value
	}
	if value, ok := _c.mutation.AtomID(); ok {
		_spec.SetField(telemetryevent.FieldAtomID, field.TypeString, value)
		_node.AtomID = value
	}
	if value, ok := _c.mutation.EmittedAt(); ok {
		_spec.SetField(telemetryevent.FieldEmittedAt, field.TypeInt64, value)
		_node.EmittedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TelemetryEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TelemetryEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *TelemetryEventCreate) OnConflict(opts ...sql.ConflictOption) *TelemetryEventUpsertOne {
	_c.conflict = opts
	return &TelemetryEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TelemetryEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TelemetryEventCreate) OnConflictColumns(columns ...string) *TelemetryEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TelemetryEventUpsertOne{
		create: _c,
	}
}

type (
	// TelemetryEventUpsertOne is the builder for "upsert"-ing
	//  one TelemetryEvent node.
	TelemetryEventUpsertOne struct {
		create *TelemetryEventCreate
	}

	// TelemetryEventUpsert is the "OnConflict" setter.
	TelemetryEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *TelemetryEventUpsert) SetSessionID(v string) *TelemetryEventUpsert {
	u.Set(telemetryevent.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *TelemetryEventUpsert) UpdateSessionID() *TelemetryEventUpsert {
	u.SetExcluded(telemetryevent.FieldSessionID)
	return u
}

// SetQuestionID sets the "question_id" field.
func (u *TelemetryEventUpsert) SetQuestionID(v string) *TelemetryEventUpsert {
	u.Set(telemetryevent.FieldQuestionID, v)
	return u
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *TelemetryEventUpsert) UpdateQuestionID() *TelemetryEventUpsert {
	u.SetExcluded(telemetryevent.FieldQuestionID)
	return u
}

// SetStudentAnswer sets the "student_answer" field.
func (u *TelemetryEventUpsert) SetStudentAnswer(v string) *TelemetryEventUpsert {
	u.Set(telemetryevent.FieldStudentAnswer, v)
	return u
}

// UpdateStudentAnswer sets the "student_answer" field to the value that was provided on create.
func (u *TelemetryEventUpsert) UpdateStudentAnswer() *TelemetryEventUpsert {
	u.SetExcluded(telemetryevent.FieldStudentAnswer)
	return u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *TelemetryEventUpsert) SetCorrectAnswer(v string) *TelemetryEventUpsert {
	u.Set(telemetryevent.FieldCorrectAnswer, v)
	return u
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *TelemetryEventUpsert) UpdateCorrectAnswer() *TelemetryEventUpsert {
	u.SetExcluded(telemetryevent.FieldCorrectAnswer)
	return u
}

// SetCorrect sets the "correct" field.
func (u *TelemetryEventUpsert) SetCorrect(v bool) *TelemetryEventUpsert {
	u.Set(telemetryevent.FieldCorrect, v)
	return u
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *TelemetryEventUpsert) UpdateCorrect() *TelemetryEventUpsert {
	u.SetExcluded(telemetryevent.FieldCorrect)
	return u
}

// SetTimeMs sets the "time_ms" field.
func (u *TelemetryEventUpsert) SetTimeMs(v int) *TelemetryEventUpsert {
	u.Set(telemetryevent.FieldTimeMs, v)
	return u
}

// UpdateTimeMs sets the "time_ms" field to the value that was provided on create.
func (u *TelemetryEventUpsert) UpdateTimeMs() *TelemetryEventUpsert {
	u.SetExcluded(telemetryevent.FieldTimeMs)
	return u
}

// AddTimeMs adds v to the "time_ms" field.
func (u *TelemetryEventUpsert) AddTimeMs(v int) *TelemetryEventUpsert {
	u.Add(telemetryevent.FieldTimeMs, v)
	return u
}

// SetSpeedRating sets the "speed_rating" field.
func (u *TelemetryEventUpsert) SetSpeedRating(v string) *TelemetryEventUpsert {
	u.Set(telemetryevent.FieldSpeedRating, v)
	return u
}

// UpdateSpeedRating sets the "speed_rating" field to the value that was provided on create.
func (u *TelemetryEventUpsert) UpdateSpeedRating() *TelemetryEventUpsert {
	u.SetExcluded(telemetryevent.FieldSpeedRating)
	return u
}

// SetMasteryBefore sets the "mastery_before" field.
func (u *TelemetryEventUpsert) SetMasteryBefore(v float64) *TelemetryEventUpsert {
	u.Set(telemetryevent.FieldMasteryBefore, v)
	return u
}

// UpdateMasteryBefore sets the "mastery_before" field to the value that was provided on create.
func (u *TelemetryEventUpsert) UpdateMasteryBefore() *TelemetryEventUpsert {
	u.SetExcluded(telemetryevent.FieldMasteryBefore)
	return u
}

// AddMasteryBefore adds v to the "mastery_before" field.
func (u *TelemetryEventUpsert) AddMasteryBefore(v float64) *TelemetryEventUpsert {
	u.Add(telemetryevent.FieldMasteryBefore, v)
	return u
}

// SetMasteryAfter sets the "mastery_after" field.
func (u *TelemetryEventUpsert) SetMasteryAfter(v float64) *TelemetryEventUpsert {
	u.Set(telemetryevent.FieldMasteryAfter, v)
	return u
}

// UpdateMasteryAfter sets the "mastery_after" field to the value that was provided on create.
func (u *TelemetryEventUpsert) UpdateMasteryAfter() *TelemetryEventUpsert {
	u.SetExcluded(telemetryevent.FieldMasteryAfter)
	return u
}

// AddMasteryAfter adds v to the "mastery_after" field.
func (u *TelemetryEventUpsert) AddMasteryAfter(v float64) *TelemetryEventUpsert {
	u.Add(telemetryevent.FieldMasteryAfter, v)
	return u
}

// SetDiagnosticTag sets the "diagnostic_tag" field.
func (u *TelemetryEventUpsert) SetDiagnosticTag(v string) *TelemetryEventUpsert {
	u.Set(telemetryevent.FieldDiagnosticTag, v)
	return u
}

// UpdateDiagnosticTag sets the "diagnostic_tag" field to the value that was provided on create.
func (u *TelemetryEventUpsert) UpdateDiagnosticTag() *TelemetryEventUpsert {
	u.SetExcluded(telemetryevent.FieldDiagnosticTag)
	return u
}

// ClearDiagnosticTag clears the value of the "diagnostic_tag" field.
func (u *TelemetryEventUpsert) ClearDiagnosticTag() *TelemetryEventUpsert {
	u.SetNull(telemetryevent.FieldDiagnosticTag)
	return u
}

// SetRecovered sets the "recovered" field.
func (u *TelemetryEventUpsert) SetRecovered(v bool) *TelemetryEventUpsert {
	u.Set(telemetryevent.FieldRecovered, v)
	return u
}

// UpdateRecovered sets the "recovered" field to the value that was provided on create.
func (u *TelemetryEventUpsert) UpdateRecovered() *TelemetryEventUpsert {
	u.SetExcluded(telemetryevent.FieldRecovered)
	return u
}

// SetRecoveryVelocity sets the "recovery_velocity" field.
func (u *TelemetryEventUpsert) SetRecoveryVelocity(v float64) *TelemetryEventUpsert {
	u.Set(telemetryevent.FieldRecoveryVelocity, v)
	return u
}

// UpdateRecoveryVelocity sets the "recovery_velocity" field to the value that was provided on create.
func (u *TelemetryEventUpsert) UpdateRecoveryVelocity() *TelemetryEventUpsert {
	u.SetExcluded(telemetryevent.FieldRecoveryVelocity)
	return u
}

// AddRecoveryVelocity adds v to the "recovery_velocity" field.
func (u *TelemetryEventUpsert) AddRecoveryVelocity(v float64) *TelemetryEventUpsert {
	u.Add(telemetryevent.FieldRecoveryVelocity, v)
	return u
}

// ClearRecoveryVelocity clears the value of the "recovery_velocity" field.
func (u *TelemetryEventUpsert) ClearRecoveryVelocity() *TelemetryEventUpsert {
	u.SetNull(telemetryevent.FieldRecoveryVelocity)
	return u
}

// SetAtomID sets the "atom_id" field.
func (u *TelemetryEventUpsert) SetAtomID(v string) *TelemetryEventUpsert {
	u.Set(telemetryevent.FieldAtomID, v)
	return u
}

// UpdateAtomID sets the "atom_id" field to the value that was provided on create.
func (u *TelemetryEventUpsert) UpdateAtomID() *TelemetryEventUpsert {
	u.SetExcluded(telemetryevent.FieldAtomID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.TelemetryEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TelemetryEventUpsertOne) UpdateNewValues() *TelemetryEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(telemetryevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(telemetryevent.FieldTimestamp)
		}
		if _, exists := u.create.mutation.EmittedAt(); exists {
			s.SetIgnore(telemetryevent.FieldEmittedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TelemetryEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TelemetryEventUpsertOne) Ignore() *TelemetryEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TelemetryEventUpsertOne) DoNothing() *TelemetryEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TelemetryEventCreate.OnConflict
// documentation for more info.
func (u *TelemetryEventUpsertOne) Update(set func(*TelemetryEventUpsert)) *TelemetryEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TelemetryEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *TelemetryEventUpsertOne) SetSessionID(v string) *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *TelemetryEventUpsertOne) UpdateSessionID() *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetQuestionID sets the "question_id" field.
func (u *TelemetryEventUpsertOne) SetQuestionID(v string) *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *TelemetryEventUpsertOne) UpdateQuestionID() *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.UpdateQuestionID()
	})
}

// SetStudentAnswer sets the "student_answer" field.
func (u *TelemetryEventUpsertOne) SetStudentAnswer(v string) *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.SetStudentAnswer(v)
	})
}

// UpdateStudentAnswer sets the "student_answer" field to the value that was provided on create.
func (u *TelemetryEventUpsertOne) UpdateStudentAnswer() *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.UpdateStudentAnswer()
	})
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *TelemetryEventUpsertOne) SetCorrectAnswer(v string) *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.SetCorrectAnswer(v)
	})
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *TelemetryEventUpsertOne) UpdateCorrectAnswer() *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.UpdateCorrectAnswer()
	})
}

// SetCorrect sets the "correct" field.
func (u *TelemetryEventUpsertOne) SetCorrect(v bool) *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.SetCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *TelemetryEventUpsertOne) UpdateCorrect() *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.UpdateCorrect()
	})
}

// SetTimeMs sets the "time_ms" field.
func (u *TelemetryEventUpsertOne) SetTimeMs(v int) *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.SetTimeMs(v)
	})
}

// AddTimeMs adds v to the "time_ms" field.
func (u *TelemetryEventUpsertOne) AddTimeMs(v int) *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.AddTimeMs(v)
	})
}

// UpdateTimeMs sets the "time_ms" field to the value that was provided on create.
func (u *TelemetryEventUpsertOne) UpdateTimeMs() *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.UpdateTimeMs()
	})
}

// SetSpeedRating sets the "speed_rating" field.
func (u *TelemetryEventUpsertOne) SetSpeedRating(v string) *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.SetSpeedRating(v)
	})
}

// UpdateSpeedRating sets the "speed_rating" field to the value that was provided on create.
func (u *TelemetryEventUpsertOne) UpdateSpeedRating() *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.UpdateSpeedRating()
	})
}

// SetMasteryBefore sets the "mastery_before" field.
func (u *TelemetryEventUpsertOne) SetMasteryBefore(v float64) *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.SetMasteryBefore(v)
	})
}

// AddMasteryBefore adds v to the "mastery_before" field.
func (u *TelemetryEventUpsertOne) AddMasteryBefore(v float64) *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.AddMasteryBefore(v)
	})
}

// UpdateMasteryBefore sets the "mastery_before" field to the value that was provided on create.
func (u *TelemetryEventUpsertOne) UpdateMasteryBefore() *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.UpdateMasteryBefore()
	})
}

// SetMasteryAfter sets the "mastery_after" field.
func (u *TelemetryEventUpsertOne) SetMasteryAfter(v float64) *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.SetMasteryAfter(v)
	})
}

// AddMasteryAfter adds v to the "mastery_after" field.
func (u *TelemetryEventUpsertOne) AddMasteryAfter(v float64) *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.AddMasteryAfter(v)
	})
}

// UpdateMasteryAfter sets the "mastery_after" field to the value that was provided on create.
func (u *TelemetryEventUpsertOne) UpdateMasteryAfter() *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.UpdateMasteryAfter()
	})
}

// SetDiagnosticTag sets the "diagnostic_tag" field.
func (u *TelemetryEventUpsertOne) SetDiagnosticTag(v string) *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.SetDiagnosticTag(v)
	})
}

// UpdateDiagnosticTag sets the "diagnostic_tag" field to the value that was provided on create.
func (u *TelemetryEventUpsertOne) UpdateDiagnosticTag() *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.UpdateDiagnosticTag()
	})
}

// ClearDiagnosticTag clears the value of the "diagnostic_tag" field.
func (u *TelemetryEventUpsertOne) ClearDiagnosticTag() *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.ClearDiagnosticTag()
	})
}

// SetRecovered sets the "recovered" field.
func (u *TelemetryEventUpsertOne) SetRecovered(v bool) *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.SetRecovered(v)
	})
}

// UpdateRecovered sets the "recovered" field to the value that was provided on create.
func (u *TelemetryEventUpsertOne) UpdateRecovered() *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.UpdateRecovered()
	})
}

// SetRecoveryVelocity sets the "recovery_velocity" field.
func (u *TelemetryEventUpsertOne) SetRecoveryVelocity(v float64) *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.SetRecoveryVelocity(v)
	})
}

// AddRecoveryVelocity adds v to the "recovery_velocity" field.
func (u *TelemetryEventUpsertOne) AddRecoveryVelocity(v float64) *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.AddRecoveryVelocity(v)
	})
}

// UpdateRecoveryVelocity sets the "recovery_velocity" field to the value that was provided on create.
func (u *TelemetryEventUpsertOne) UpdateRecoveryVelocity() *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.UpdateRecoveryVelocity()
	})
}

// ClearRecoveryVelocity clears the value of the "recovery_velocity" field.
func (u *TelemetryEventUpsertOne) ClearRecoveryVelocity() *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.ClearRecoveryVelocity()
	})
}

// SetAtomID sets the "atom_id" field.
func (u *TelemetryEventUpsertOne) SetAtomID(v string) *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.SetAtomID(v)
	})
}

// UpdateAtomID sets the "atom_id" field to the value that was provided on create.
func (u *TelemetryEventUpsertOne) UpdateAtomID() *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.UpdateAtomID()
	})
}

// Exec executes the query.
func (u *TelemetryEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TelemetryEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TelemetryEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TelemetryEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TelemetryEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TelemetryEventCreateBulk is the builder for creating many TelemetryEvent entities in bulk.
type TelemetryEventCreateBulk struct {
	config
	err      error
	builders []*TelemetryEventCreate
	conflict []sql.ConflictOption
}

// Save creates the TelemetryEvent entities in the database.
func (_c *TelemetryEventCreateBulk) Save(ctx context.Context) ([]*TelemetryEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TelemetryEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TelemetryEventMutation)
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
func (_c *TelemetryEventCreateBulk) SaveX(ctx context.Context) []*TelemetryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TelemetryEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TelemetryEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TelemetryEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TelemetryEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *TelemetryEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *TelemetryEventUpsertBulk {
	_c.conflict = opts
	return &TelemetryEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TelemetryEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TelemetryEventCreateBulk) OnConflictColumns(columns ...string) *TelemetryEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TelemetryEventUpsertBulk{
		create: _c,
	}
}

// TelemetryEventUpsertBulk is the builder for "upsert"-ing
// a bulk of TelemetryEvent nodes.
type TelemetryEventUpsertBulk struct {
	create *TelemetryEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TelemetryEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TelemetryEventUpsertBulk) UpdateNewValues() *TelemetryEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(telemetryevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(telemetryevent.FieldTimestamp)
			}
			if _, exists := b.mutation.EmittedAt(); exists {
				s.SetIgnore(telemetryevent.FieldEmittedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TelemetryEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TelemetryEventUpsertBulk) Ignore() *TelemetryEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TelemetryEventUpsertBulk) DoNothing() *TelemetryEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TelemetryEventCreateBulk.OnConflict
// documentation for more info.
func (u *TelemetryEventUpsertBulk) Update(set func(*TelemetryEventUpsert)) *TelemetryEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TelemetryEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *TelemetryEventUpsertBulk) SetSessionID(v string) *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *TelemetryEventUpsertBulk) UpdateSessionID() *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetQuestionID sets the "question_id" field.
func (u *TelemetryEventUpsertBulk) SetQuestionID(v string) *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.SetQuestionID(v)
	})
}

// UpdateQuestionID sets the "question_id" field to the value that was provided on create.
func (u *TelemetryEventUpsertBulk) UpdateQuestionID() *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.UpdateQuestionID()
	})
}

// SetStudentAnswer sets the "student_answer" field.
func (u *TelemetryEventUpsertBulk) SetStudentAnswer(v string) *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.SetStudentAnswer(v)
	})
}

// UpdateStudentAnswer sets the "student_answer" field to the value that was provided on create.
func (u *TelemetryEventUpsertBulk) UpdateStudentAnswer() *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.UpdateStudentAnswer()
	})
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *TelemetryEventUpsertBulk) SetCorrectAnswer(v string) *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.SetCorrectAnswer(v)
	})
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *TelemetryEventUpsertBulk) UpdateCorrectAnswer() *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.UpdateCorrectAnswer()
	})
}

// SetCorrect sets the "correct" field.
func (u *TelemetryEventUpsertBulk) SetCorrect(v bool) *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.SetCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *TelemetryEventUpsertBulk) UpdateCorrect() *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.UpdateCorrect()
	})
}

// SetTimeMs sets the "time_ms" field.
func (u *TelemetryEventUpsertBulk) SetTimeMs(v int) *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.SetTimeMs(v)
	})
}

// AddTimeMs adds v to the "time_ms" field.
func (u *TelemetryEventUpsertBulk) AddTimeMs(v int) *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.AddTimeMs(v)
	})
}

// UpdateTimeMs sets the "time_ms" field to the value that was provided on create.
func (u *TelemetryEventUpsertBulk) UpdateTimeMs() *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.UpdateTimeMs()
	})
}

// SetSpeedRating sets the "speed_rating" field.
func (u *TelemetryEventUpsertBulk) SetSpeedRating(v string) *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.SetSpeedRating(v)
	})
}

// UpdateSpeedRating sets the "speed_rating" field to the value that was provided on create.
func (u *TelemetryEventUpsertBulk) UpdateSpeedRating() *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.UpdateSpeedRating()
	})
}

// SetMasteryBefore sets the "mastery_before" field.
func (u *TelemetryEventUpsertBulk) SetMasteryBefore(v float64) *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.SetMasteryBefore(v)
	})
}

// AddMasteryBefore adds v to the "mastery_before" field.
func (u *TelemetryEventUpsertBulk) AddMasteryBefore(v float64) *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.AddMasteryBefore(v)
	})
}

// UpdateMasteryBefore sets the "mastery_before" field to the value that was provided on create.
func (u *TelemetryEventUpsertBulk) UpdateMasteryBefore() *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.UpdateMasteryBefore()
	})
}

// SetMasteryAfter sets the "mastery_after" field.
func (u *TelemetryEventUpsertBulk) SetMasteryAfter(v float64) *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.SetMasteryAfter(v)
	})
}

// AddMasteryAfter adds v to the "mastery_after" field.
func (u *TelemetryEventUpsertBulk) AddMasteryAfter(v float64) *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.AddMasteryAfter(v)
	})
}

// UpdateMasteryAfter sets the "mastery_after" field to the value that was provided on create.
func (u *TelemetryEventUpsertBulk) UpdateMasteryAfter() *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.UpdateMasteryAfter()
	})
}

// SetDiagnosticTag sets the "diagnostic_tag" field.
func (u *TelemetryEventUpsertBulk) SetDiagnosticTag(v string) *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.SetDiagnosticTag(v)
	})
}

// UpdateDiagnosticTag sets the "diagnostic_tag" field to the value that was provided on create.
func (u *TelemetryEventUpsertBulk) UpdateDiagnosticTag() *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.UpdateDiagnosticTag()
	})
}

// ClearDiagnosticTag clears the value of the "diagnostic_tag" field.
func (u *TelemetryEventUpsertBulk) ClearDiagnosticTag() *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.ClearDiagnosticTag()
	})
}

// SetRecovered sets the "recovered" field.
func (u *TelemetryEventUpsertBulk) SetRecovered(v bool) *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.SetRecovered(v)
	})
}

// UpdateRecovered sets the "recovered" field to the value that was provided on create.
func (u *TelemetryEventUpsertBulk) UpdateRecovered() *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.UpdateRecovered()
	})
}

// SetRecoveryVelocity sets the "recovery_velocity" field.
func (u *TelemetryEventUpsertBulk) SetRecoveryVelocity(v float64) *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.SetRecoveryVelocity(v)
	})
}

// AddRecoveryVelocity adds v to the "recovery_velocity" field.
func (u *TelemetryEventUpsertBulk) AddRecoveryVelocity(v float64) *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.AddRecoveryVelocity(v)
	})
}

// UpdateRecoveryVelocity sets the "recovery_velocity" field to the value that was provided on create.
func (u *TelemetryEventUpsertBulk) UpdateRecoveryVelocity() *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.UpdateRecoveryVelocity()
	})
}

// ClearRecoveryVelocity clears the value of the "recovery_velocity" field.
func (u *TelemetryEventUpsertBulk) ClearRecoveryVelocity() *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.ClearRecoveryVelocity()
	})
}

// SetAtomID sets the "atom_id" field.
func (u *TelemetryEventUpsertBulk) SetAtomID(v string) *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.SetAtomID(v)
	})
}

// UpdateAtomID sets the "atom_id" field to the value that was provided on create.
func (u *TelemetryEventUpsertBulk) UpdateAtomID() *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.UpdateAtomID()
	})
}

// Exec executes the query.
func (u *TelemetryEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TelemetryEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TelemetryEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TelemetryEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
