// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathquest/ent/predicate"
	"github.com/abhisek/mathquest/ent/telemetryevent"
)

// TelemetryEventUpdate is the builder for updating TelemetryEvent entities.
type TelemetryEventUpdate struct {
	config
	hooks    []Hook
	mutation *TelemetryEventMutation
}

// Where appends a list predicates to the TelemetryEventUpdate builder.
func (_u *TelemetryEventUpdate) Where(ps ...predicate.TelemetryEvent) *TelemetryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TelemetryEventUpdate) SetSessionID(v string) *TelemetryEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TelemetryEventUpdate) SetNillableSessionID(v *string) *TelemetryEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *TelemetryEventUpdate) SetQuestionID(v string) *TelemetryEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *TelemetryEventUpdate) SetNillableQuestionID(v *string) *TelemetryEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetStudentAnswer sets the "student_answer" field.
func (_u *TelemetryEventUpdate) SetStudentAnswer(v string) *TelemetryEventUpdate {
	_u.mutation.SetStudentAnswer(v)
	return _u
}

// SetNillableStudentAnswer sets the "student_answer" field if the given value is not nil.
func (_u *TelemetryEventUpdate) SetNillableStudentAnswer(v *string) *TelemetryEventUpdate {
	if v != nil {
		_u.SetStudentAnswer(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *TelemetryEventUpdate) SetCorrectAnswer(v string) *TelemetryEventUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *TelemetryEventUpdate) SetNillableCorrectAnswer(v *string) *TelemetryEventUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *TelemetryEventUpdate) SetCorrect(v bool) *TelemetryEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *TelemetryEventUpdate) SetNillableCorrect(v *bool) *TelemetryEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *TelemetryEventUpdate) SetTimeMs(v int) *TelemetryEventUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *TelemetryEventUpdate) SetNillableTimeMs(v *int) *TelemetryEventUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *TelemetryEventUpdate) AddTimeMs(v int) *TelemetryEventUpdate {
	_u.mutation.AddTimeMs(v)
	return _u
}

// SetSpeedRating sets the "speed_rating" field.
func (_u *TelemetryEventUpdate) SetSpeedRating(v string) *TelemetryEventUpdate {
	_u.mutation.SetSpeedRating(v)
	return _u
}

// SetNillableSpeedRating sets the "speed_rating" field if the given value is not nil.
func (_u *TelemetryEventUpdate) SetNillableSpeedRating(v *string) *TelemetryEventUpdate {
	if v != nil {
		_u.SetSpeedRating(*v)
	}
	return _u
}

// SetMasteryBefore sets the "mastery_before" field.
func (_u *TelemetryEventUpdate) SetMasteryBefore(v float64) *TelemetryEventUpdate {
	_u.mutation.ResetMasteryBefore()
	_u.mutation.SetMasteryBefore(v)
	return _u
}

// SetNillableMasteryBefore sets the "mastery_before" field if the given value is not nil.
func (_u *TelemetryEventUpdate) SetNillableMasteryBefore(v *float64) *TelemetryEventUpdate {
	if v != nil {
		_u.SetMasteryBefore(*v)
	}
	return _u
}

// AddMasteryBefore adds value to the "mastery_before" field.
func (_u *TelemetryEventUpdate) AddMasteryBefore(v float64) *TelemetryEventUpdate {
	_u.mutation.AddMasteryBefore(v)
	return _u
}

// SetMasteryAfter sets the "mastery_after" field.
func (_u *TelemetryEventUpdate) SetMasteryAfter(v float64) *TelemetryEventUpdate {
	_u.mutation.ResetMasteryAfter()
	_u.mutation.SetMasteryAfter(v)
	return _u
}

// SetNillableMasteryAfter sets the "mastery_after" field if the given value is not nil.
func (_u *TelemetryEventUpdate) SetNillableMasteryAfter(v *float64) *TelemetryEventUpdate {
	if v != nil {
		_u.SetMasteryAfter(*v)
	}
	return _u
}

// AddMasteryAfter adds value to the "mastery_after" field.
func (_u *TelemetryEventUpdate) AddMasteryAfter(v float64) *TelemetryEventUpdate {
	_u.mutation.AddMasteryAfter(v)
	return _u
}

// SetDiagnosticTag sets the "diagnostic_tag" field.
func (_u *TelemetryEventUpdate) SetDiagnosticTag(v string) *TelemetryEventUpdate {
	_u.mutation.SetDiagnosticTag(v)
	return _u
}

// SetNillableDiagnosticTag sets the "diagnostic_tag" field if the given value is not nil.
func (_u *TelemetryEventUpdate) SetNillableDiagnosticTag(v *string) *TelemetryEventUpdate {
	if v != nil {
		_u.SetDiagnosticTag(*v)
	}
	return _u
}

// ClearDiagnosticTag clears the value of the "diagnostic_tag" field.
func (_u *TelemetryEventUpdate) ClearDiagnosticTag() *TelemetryEventUpdate {
	_u.mutation.ClearDiagnosticTag()
	return _u
}

// SetRecovered sets the "recovered" field.
func (_u *TelemetryEventUpdate) SetRecovered(v bool) *TelemetryEventUpdate {
	_u.mutation.SetRecovered(v)
	return _u
}

// SetNillableRecovered sets the "recovered" field if the given value is not nil.
func (_u *TelemetryEventUpdate) SetNillableRecovered(v *bool) *TelemetryEventUpdate {
	if v != nil {
		_u.SetRecovered(*v)
	}
	return _u
}

// SetRecoveryVelocity sets the "recovery_velocity" field.
func (_u *TelemetryEventUpdate) SetRecoveryVelocity(v float64) *TelemetryEventUpdate {
	_u.mutation.ResetRecoveryVelocity()
	_u.mutation.SetRecoveryVelocity(v)
	return _u
}

// SetNillableRecoveryVelocity sets the "recovery_velocity" field if the given value is not nil.
func (_u *TelemetryEventUpdate) SetNillableRecoveryVelocity(v *float64) *TelemetryEventUpdate {
	if v != nil {
		_u.SetRecoveryVelocity(*v)
	}
	return _u
}

// AddRecoveryVelocity adds value to the "recovery_velocity" field.
func (_u *TelemetryEventUpdate) AddRecoveryVelocity(v float64) *TelemetryEventUpdate {
	_u.mutation.AddRecoveryVelocity(v)
	return _u
}

// ClearRecoveryVelocity clears the value of the "recovery_velocity" field.
func (_u *TelemetryEventUpdate) ClearRecoveryVelocity() *TelemetryEventUpdate {
	_u.mutation.ClearRecoveryVelocity()
	return _u
}

// SetAtomID sets the "atom_id" field.
func (_u *TelemetryEventUpdate) SetAtomID(v string) *TelemetryEventUpdate {
	_u.mutation.SetAtomID(v)
	return _u
}

// SetNillableAtomID sets the "atom_id" field if the given value is not nil.
func (_u *TelemetryEventUpdate) SetNillableAtomID(v *string) *TelemetryEventUpdate {
	if v != nil {
		_u.SetAtomID(*v)
	}
	return _u
}

// Mutation returns the TelemetryEventMutation object of the builder.
func (_u *TelemetryEventUpdate) Mutation() *TelemetryEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TelemetryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TelemetryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TelemetryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TelemetryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TelemetryEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := telemetryevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TelemetryEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := telemetryevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "TelemetryEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentAnswer(); ok {
		if err := telemetryevent.StudentAnswerValidator(v); err != nil {
			return &ValidationError{Name: "student_answer", err: fmt.Errorf(`ent: validator failed for field "TelemetryEvent.student_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := telemetryevent.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "TelemetryEvent.correct_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SpeedRating(); ok {
		if err := telemetryevent.SpeedRatingValidator(v); err != nil {
			return &ValidationError{Name: "speed_rating", err: fmt.Errorf(`ent: validator failed for field "TelemetryEvent.speed_rating": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AtomID(); ok {
		if err := telemetryevent.AtomIDValidator(v); err != nil {
			return &ValidationError{Name: "atom_id", err: fmt.Errorf(`ent: validator failed for field "TelemetryEvent.atom_id": %w`, err)}
		}
	}
	return nil
}

func (_u *TelemetryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(telemetryevent.Table, telemetryevent.Columns, sqlgraph.NewFieldSpec(telemetryevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(telemetryevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(telemetryevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentAnswer(); ok {
		_spec.SetField(telemetryevent.FieldStudentAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(telemetryevent.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(telemetryevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(telemetryevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(telemetryevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SpeedRating(); ok {
		_spec.SetField(telemetryevent.FieldSpeedRating, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryBefore(); ok {
		_spec.SetField(telemetryevent.FieldMasteryBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryBefore(); ok {
		_spec.AddField(telemetryevent.FieldMasteryBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryAfter(); ok {
		_spec.SetField(telemetryevent.FieldMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryAfter(); ok {
		_spec.AddField(telemetryevent.FieldMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DiagnosticTag(); ok {
		_spec.SetField(telemetryevent.FieldDiagnosticTag, field.TypeString, value)
	}
	if _u.mutation.DiagnosticTagCleared() {
		_spec.ClearField(telemetryevent.FieldDiagnosticTag, field.TypeString)
	}
	if value, ok := _u.mutation.Recovered(); ok {
		_spec.SetField(telemetryevent.FieldRecovered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RecoveryVelocity(); ok {
		_spec.SetField(telemetryevent.FieldRecoveryVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecoveryVelocity(); ok {
		_spec.AddField(telemetryevent.FieldRecoveryVelocity, field.TypeFloat64, value)
	}
	if _u.mutation.RecoveryVelocityCleared() {
		_spec.ClearField(telemetryevent.FieldRecoveryVelocity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AtomID(); ok {
		_spec.SetField(telemetryevent.FieldAtomID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{telemetryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TelemetryEventUpdateOne is the builder for updating a single TelemetryEvent entity.
type TelemetryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TelemetryEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *TelemetryEventUpdateOne) SetSessionID(v string) *TelemetryEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TelemetryEventUpdateOne) SetNillableSessionID(v *string) *TelemetryEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *TelemetryEventUpdateOne) SetQuestionID(v string) *TelemetryEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *TelemetryEventUpdateOne) SetNillableQuestionID(v *string) *TelemetryEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetStudentAnswer sets the "student_answer" field.
func (_u *TelemetryEventUpdateOne) SetStudentAnswer(v string) *TelemetryEventUpdateOne {
	_u.mutation.SetStudentAnswer(v)
	return _u
}

// SetNillableStudentAnswer sets the "student_answer" field if the given value is not nil.
func (_u *TelemetryEventUpdateOne) SetNillableStudentAnswer(v *string) *TelemetryEventUpdateOne {
	if v != nil {
		_u.SetStudentAnswer(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *TelemetryEventUpdateOne) SetCorrectAnswer(v string) *TelemetryEventUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *TelemetryEventUpdateOne) SetNillableCorrectAnswer(v *string) *TelemetryEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *TelemetryEventUpdateOne) SetCorrect(v bool) *TelemetryEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *TelemetryEventUpdateOne) SetNillableCorrect(v *bool) *TelemetryEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *TelemetryEventUpdateOne) SetTimeMs(v int) *TelemetryEventUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *TelemetryEventUpdateOne) SetNillableTimeMs(v *int) *TelemetryEventUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *TelemetryEventUpdateOne) AddTimeMs(v int) *TelemetryEventUpdateOne {
	_u.mutation.AddTimeMs(v)
	return _u
}

// SetSpeedRating sets the "speed_rating" field.
func (_u *TelemetryEventUpdateOne) SetSpeedRating(v string) *TelemetryEventUpdateOne {
	_u.mutation.SetSpeedRating(v)
	return _u
}

// SetNillableSpeedRating sets the "speed_rating" field if the given value is not nil.
func (_u *TelemetryEventUpdateOne) SetNillableSpeedRating(v *string) *TelemetryEventUpdateOne {
	if v != nil {
		_u.SetSpeedRating(*v)
	}
	return _u
}

// SetMasteryBefore sets the "mastery_before" field.
func (_u *TelemetryEventUpdateOne) SetMasteryBefore(v float64) *TelemetryEventUpdateOne {
	_u.mutation.ResetMasteryBefore()
	_u.mutation.SetMasteryBefore(v)
	return _u
}

// SetNillableMasteryBefore sets the "mastery_before" field if the given value is not nil.
func (_u *TelemetryEventUpdateOne) SetNillableMasteryBefore(v *float64) *TelemetryEventUpdateOne {
	if v != nil {
		_u.SetMasteryBefore(*v)
	}
	return _u
}

// AddMasteryBefore adds value to the "mastery_before" field.
func (_u *TelemetryEventUpdateOne) AddMasteryBefore(v float64) *TelemetryEventUpdateOne {
	_u.mutation.AddMasteryBefore(v)
	return _u
}

// SetMasteryAfter sets the "mastery_after" field.
func (_u *TelemetryEventUpdateOne) SetMasteryAfter(v float64) *TelemetryEventUpdateOne {
	_u.mutation.ResetMasteryAfter()
	_u.mutation.SetMasteryAfter(v)
	return _u
}

// SetNillableMasteryAfter sets the "mastery_after" field if the given value is not nil.
func (_u *TelemetryEventUpdateOne) SetNillableMasteryAfter(v *float64) *TelemetryEventUpdateOne {
	if v != nil {
		_u.SetMasteryAfter(*v)
	}
	return _u
}

// AddMasteryAfter adds value to the "mastery_after" field.
func (_u *TelemetryEventUpdateOne) AddMasteryAfter(v float64) *TelemetryEventUpdateOne {
	_u.mutation.AddMasteryAfter(v)
	return _u
}

// SetDiagnosticTag sets the "diagnostic_tag" field.
func (_u *TelemetryEventUpdateOne) SetDiagnosticTag(v string) *TelemetryEventUpdateOne {
	_u.mutation.SetDiagnosticTag(v)
	return _u
}

// SetNillableDiagnosticTag sets the "diagnostic_tag" field if the given value is not nil.
func (_u *TelemetryEventUpdateOne) SetNillableDiagnosticTag(v *string) *TelemetryEventUpdateOne {
	if v != nil {
		_u.SetDiagnosticTag(*v)
	}
	return _u
}

// ClearDiagnosticTag clears the value of the "diagnostic_tag" field.
func (_u *TelemetryEventUpdateOne) ClearDiagnosticTag() *TelemetryEventUpdateOne {
	_u.mutation.ClearDiagnosticTag()
	return _u
}

// SetRecovered sets the "recovered" field.
func (_u *TelemetryEventUpdateOne) SetRecovered(v bool) *TelemetryEventUpdateOne {
	_u.mutation.SetRecovered(v)
	return _u
}

// SetNillableRecovered sets the "recovered" field if the given value is not nil.
func (_u *TelemetryEventUpdateOne) SetNillableRecovered(v *bool) *TelemetryEventUpdateOne {
	if v != nil {
		_u.SetRecovered(*v)
	}
	return _u
}

// SetRecoveryVelocity sets the "recovery_velocity" field.
func (_u *TelemetryEventUpdateOne) SetRecoveryVelocity(v float64) *TelemetryEventUpdateOne {
	_u.mutation.ResetRecoveryVelocity()
	_u.mutation.SetRecoveryVelocity(v)
	return _u
}

// SetNillableRecoveryVelocity sets the "recovery_velocity" field if the given value is not nil.
func (_u *TelemetryEventUpdateOne) SetNillableRecoveryVelocity(v *float64) *TelemetryEventUpdateOne {
	if v != nil {
		_u.SetRecoveryVelocity(*v)
	}
	return _u
}

// AddRecoveryVelocity adds value to the "recovery_velocity" field.
func (_u *TelemetryEventUpdateOne) AddRecoveryVelocity(v float64) *TelemetryEventUpdateOne {
	_u.mutation.AddRecoveryVelocity(v)
	return _u
}

// ClearRecoveryVelocity clears the value of the "recovery_velocity" field.
func (_u *TelemetryEventUpdateOne) ClearRecoveryVelocity() *TelemetryEventUpdateOne {
	_u.mutation.ClearRecoveryVelocity()
	return _u
}

// SetAtomID sets the "atom_id" field.
func (_u *TelemetryEventUpdateOne) SetAtomID(v string) *TelemetryEventUpdateOne {
	_u.mutation.SetAtomID(v)
	return _u
}

// SetNillableAtomID sets the "atom_id" field if the given value is not nil.
func (_u *TelemetryEventUpdateOne) SetNillableAtomID(v *string) *TelemetryEventUpdateOne {
	if v != nil {
		_u.SetAtomID(*v)
	}
	return _u
}

// Mutation returns the TelemetryEventMutation object of the builder.
func (_u *TelemetryEventUpdateOne) Mutation() *TelemetryEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TelemetryEventUpdate builder.
func (_u *TelemetryEventUpdateOne) Where(ps ...predicate.TelemetryEvent) *TelemetryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TelemetryEventUpdateOne) Select(field string, fields ...string) *TelemetryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TelemetryEvent entity.
func (_u *TelemetryEventUpdateOne) Save(ctx context.Context) (*TelemetryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TelemetryEventUpdateOne) SaveX(ctx context.Context) *TelemetryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TelemetryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TelemetryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TelemetryEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := telemetryevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TelemetryEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := telemetryevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "TelemetryEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentAnswer(); ok {
		if err := telemetryevent.StudentAnswerValidator(v); err != nil {
			return &ValidationError{Name: "student_answer", err: fmt.Errorf(`ent: validator failed for field "TelemetryEvent.student_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswer(); ok {
		if err := telemetryevent.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "TelemetryEvent.correct_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SpeedRating(); ok {
		if err := telemetryevent.SpeedRatingValidator(v); err != nil {
			return &ValidationError{Name: "speed_rating", err: fmt.Errorf(`ent: validator failed for field "TelemetryEvent.speed_rating": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AtomID(); ok {
		if err := telemetryevent.AtomIDValidator(v); err != nil {
			return &ValidationError{Name: "atom_id", err: fmt.Errorf(`ent: validator failed for field "TelemetryEvent.atom_id": %w`, err)}
		}
	}
	return nil
}

func (_u *TelemetryEventUpdateOne) sqlSave(ctx context.Context) (_node *TelemetryEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(telemetryevent.Table, telemetryevent.Columns, sqlgraph.NewFieldSpec(telemetryevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TelemetryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, telemetryevent.FieldID)
		for _, f := range fields {
			if !telemetryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != telemetryevent.FieldID {
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
		_spec.SetField(telemetryevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(telemetryevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentAnswer(); ok {
		_spec.SetField(telemetryevent.FieldStudentAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(telemetryevent.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(telemetryevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(telemetryevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(telemetryevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SpeedRating(); ok {
		_spec.SetField(telemetryevent.FieldSpeedRating, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryBefore(); ok {
		_spec.SetField(telemetryevent.FieldMasteryBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryBefore(); ok {
		_spec.AddField(telemetryevent.FieldMasteryBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryAfter(); ok {
		_spec.SetField(telemetryevent.FieldMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryAfter(); ok {
		_spec.AddField(telemetryevent.FieldMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DiagnosticTag(); ok {
		_spec.SetField(telemetryevent.FieldDiagnosticTag, field.TypeString, value)
	}
	if _u.mutation.DiagnosticTagCleared() {
		_spec.ClearField(telemetryevent.FieldDiagnosticTag, field.TypeString)
	}
	if value, ok := _u.mutation.Recovered(); ok {
		_spec.SetField(telemetryevent.FieldRecovered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RecoveryVelocity(); ok {
		_spec.SetField(telemetryevent.FieldRecoveryVelocity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecoveryVelocity(); ok {
		_spec.AddField(telemetryevent.FieldRecoveryVelocity, field.TypeFloat64, value)
	}
	if _u.mutation.RecoveryVelocityCleared() {
		_spec.ClearField(telemetryevent.FieldRecoveryVelocity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AtomID(); ok {
		_spec.SetField(telemetryevent.FieldAtomID, field.TypeString, value)
	}
	_node = &TelemetryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{telemetryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
