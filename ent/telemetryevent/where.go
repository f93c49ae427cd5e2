// Code generated by ent, DO NOT EDIT.

package telemetryevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldSessionID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldQuestionID, v))
}

// StudentAnswer applies equality check predicate on the "student_answer" field. It's identical to StudentAnswerEQ.
func StudentAnswer(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldStudentAnswer, v))
}

// CorrectAnswer applies equality check predicate on the "correct_answer" field. It's identical to CorrectAnswerEQ.
func CorrectAnswer(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldCorrectAnswer, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldCorrect, v))
}

// TimeMs applies equality check predicate on the "time_ms" field. It's identical to TimeMsEQ.
func TimeMs(v int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldTimeMs, v))
}

// SpeedRating applies equality check predicate on the "speed_rating" field. It's identical to SpeedRatingEQ.
func SpeedRating(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldSpeedRating, v))
}

// MasteryBefore applies equality check predicate on the "mastery_before" field. It's identical to MasteryBeforeEQ.
func MasteryBefore(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldMasteryBefore, v))
}

// MasteryAfter applies equality check predicate on the "mastery_after" field. It's identical to MasteryAfterEQ.
func MasteryAfter(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldMasteryAfter, v))
}

// DiagnosticTag applies equality check predicate on the "diagnostic_tag" field. It's identical to DiagnosticTagEQ.
func DiagnosticTag(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldDiagnosticTag, v))
}

// Recovered applies equality check predicate on the "recovered" field. It's identical to RecoveredEQ.
func Recovered(v bool) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldRecovered, v))
}

// RecoveryVelocity applies equality check predicate on the "recovery_velocity" field. It's identical to RecoveryVelocityEQ.
func RecoveryVelocity(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldRecoveryVelocity, v))
}

// AtomID applies equality check predicate on the "atom_id" field. It's identical to AtomIDEQ.
func AtomID(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldAtomID, v))
}

// EmittedAt applies equality check predicate on the "emitted_at" field. It's identical to EmittedAtEQ.
func EmittedAt(v int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldEmittedAt, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldContainsFold(FieldQuestionID, v))
}

// StudentAnswerEQ applies the EQ predicate on the "student_answer" field.
func StudentAnswerEQ(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldStudentAnswer, v))
}

// StudentAnswerNEQ applies the NEQ predicate on the "student_answer" field.
func StudentAnswerNEQ(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldStudentAnswer, v))
}

// StudentAnswerIn applies the In predicate on the "student_answer" field.
func StudentAnswerIn(vs ...string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldStudentAnswer, vs...))
}

// StudentAnswerNotIn applies the NotIn predicate on the "student_answer" field.
func StudentAnswerNotIn(vs ...string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldStudentAnswer, vs...))
}

// StudentAnswerGT applies the GT predicate on the "student_answer" field.
func StudentAnswerGT(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldStudentAnswer, v))
}

// StudentAnswerGTE applies the GTE predicate on the "student_answer" field.
func StudentAnswerGTE(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldStudentAnswer, v))
}

// StudentAnswerLT applies the LT predicate on the "student_answer" field.
func StudentAnswerLT(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldStudentAnswer, v))
}

// StudentAnswerLTE applies the LTE predicate on the "student_answer" field.
func StudentAnswerLTE(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldStudentAnswer, v))
}

// StudentAnswerContains applies the Contains predicate on the "student_answer" field.
func StudentAnswerContains(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldContains(FieldStudentAnswer, v))
}

// StudentAnswerHasPrefix applies the HasPrefix predicate on the "student_answer" field.
func StudentAnswerHasPrefix(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldHasPrefix(FieldStudentAnswer, v))
}

// StudentAnswerHasSuffix applies the HasSuffix predicate on the "student_answer" field.
func StudentAnswerHasSuffix(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldHasSuffix(FieldStudentAnswer, v))
}

// StudentAnswerEqualFold applies the EqualFold predicate on the "student_answer" field.
func StudentAnswerEqualFold(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEqualFold(FieldStudentAnswer, v))
}

// StudentAnswerContainsFold applies the ContainsFold predicate on the "student_answer" field.
func StudentAnswerContainsFold(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldContainsFold(FieldStudentAnswer, v))
}

// CorrectAnswerEQ applies the EQ predicate on the "correct_answer" field.
func CorrectAnswerEQ(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerNEQ applies the NEQ predicate on the "correct_answer" field.
func CorrectAnswerNEQ(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerIn applies the In predicate on the "correct_answer" field.
func CorrectAnswerIn(vs ...string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerNotIn applies the NotIn predicate on the "correct_answer" field.
func CorrectAnswerNotIn(vs ...string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerGT applies the GT predicate on the "correct_answer" field.
func CorrectAnswerGT(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldCorrectAnswer, v))
}

// CorrectAnswerGTE applies the GTE predicate on the "correct_answer" field.
func CorrectAnswerGTE(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldCorrectAnswer, v))
}

// CorrectAnswerLT applies the LT predicate on the "correct_answer" field.
func CorrectAnswerLT(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldCorrectAnswer, v))
}

// CorrectAnswerLTE applies the LTE predicate on the "correct_answer" field.
func CorrectAnswerLTE(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldCorrectAnswer, v))
}

// CorrectAnswerContains applies the Contains predicate on the "correct_answer" field.
func CorrectAnswerContains(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldContains(FieldCorrectAnswer, v))
}

// CorrectAnswerHasPrefix applies the HasPrefix predicate on the "correct_answer" field.
func CorrectAnswerHasPrefix(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldHasPrefix(FieldCorrectAnswer, v))
}

// CorrectAnswerHasSuffix applies the HasSuffix predicate on the "correct_answer" field.
func CorrectAnswerHasSuffix(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldHasSuffix(FieldCorrectAnswer, v))
}

// CorrectAnswerEqualFold applies the EqualFold predicate on the "correct_answer" field.
func CorrectAnswerEqualFold(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEqualFold(FieldCorrectAnswer, v))
}

// CorrectAnswerContainsFold applies the ContainsFold predicate on the "correct_answer" field.
func CorrectAnswerContainsFold(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldContainsFold(FieldCorrectAnswer, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldCorrect, v))
}

// TimeMsEQ applies the EQ predicate on the "time_ms" field.
func TimeMsEQ(v int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldTimeMs, v))
}

// TimeMsNEQ applies the NEQ predicate on the "time_ms" field.
func TimeMsNEQ(v int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldTimeMs, v))
}

// TimeMsIn applies the In predicate on the "time_ms" field.
func TimeMsIn(vs ...int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldTimeMs, vs...))
}

// TimeMsNotIn applies the NotIn predicate on the "time_ms" field.
func TimeMsNotIn(vs ...int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldTimeMs, vs...))
}

// TimeMsGT applies the GT predicate on the "time_ms" field.
func TimeMsGT(v int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldTimeMs, v))
}

// TimeMsGTE applies the GTE predicate on the "time_ms" field.
func TimeMsGTE(v int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldTimeMs, v))
}

// TimeMsLT applies the LT predicate on the "time_ms" field.
func TimeMsLT(v int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldTimeMs, v))
}

// TimeMsLTE applies the LTE predicate on the "time_ms" field.
func TimeMsLTE(v int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldTimeMs, v))
}

// SpeedRatingEQ applies the EQ predicate on the "speed_rating" field.
func SpeedRatingEQ(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldSpeedRating, v))
}

// SpeedRatingNEQ applies the NEQ predicate on the "speed_rating" field.
func SpeedRatingNEQ(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldSpeedRating, v))
}

// SpeedRatingIn applies the In predicate on the "speed_rating" field.
func SpeedRatingIn(vs ...string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldSpeedRating, vs...))
}

// SpeedRatingNotIn applies the NotIn predicate on the "speed_rating" field.
func SpeedRatingNotIn(vs ...string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldSpeedRating, vs...))
}

// SpeedRatingGT applies the GT predicate on the "speed_rating" field.
func SpeedRatingGT(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldSpeedRating, v))
}

// SpeedRatingGTE applies the GTE predicate on the "speed_rating" field.
func SpeedRatingGTE(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldSpeedRating, v))
}

// SpeedRatingLT applies the LT predicate on the "speed_rating" field.
func SpeedRatingLT(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldSpeedRating, v))
}

// SpeedRatingLTE applies the LTE predicate on the "speed_rating" field.
func SpeedRatingLTE(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldSpeedRating, v))
}

// SpeedRatingContains applies the Contains predicate on the "speed_rating" field.
func SpeedRatingContains(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldContains(FieldSpeedRating, v))
}

// SpeedRatingHasPrefix applies the HasPrefix predicate on the "speed_rating" field.
func SpeedRatingHasPrefix(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldHasPrefix(FieldSpeedRating, v))
}

// SpeedRatingHasSuffix applies the HasSuffix predicate on the "speed_rating" field.
func SpeedRatingHasSuffix(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldHasSuffix(FieldSpeedRating, v))
}

// SpeedRatingEqualFold applies the EqualFold predicate on the "speed_rating" field.
func SpeedRatingEqualFold(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEqualFold(FieldSpeedRating, v))
}

// SpeedRatingContainsFold applies the ContainsFold predicate on the "speed_rating" field.
func SpeedRatingContainsFold(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldContainsFold(FieldSpeedRating, v))
}

// MasteryBeforeEQ applies the EQ predicate on the "mastery_before" field.
func MasteryBeforeEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldMasteryBefore, v))
}

// MasteryBeforeNEQ applies the NEQ predicate on the "mastery_before" field.
func MasteryBeforeNEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldMasteryBefore, v))
}

// MasteryBeforeIn applies the In predicate on the "mastery_before" field.
func MasteryBeforeIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldMasteryBefore, vs...))
}

// MasteryBeforeNotIn applies the NotIn predicate on the "mastery_before" field.
func MasteryBeforeNotIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldMasteryBefore, vs...))
}

// MasteryBeforeGT applies the GT predicate on the "mastery_before" field.
func MasteryBeforeGT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldMasteryBefore, v))
}

// MasteryBeforeGTE applies the GTE predicate on the "mastery_before" field.
func MasteryBeforeGTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldMasteryBefore, v))
}

// MasteryBeforeLT applies the LT predicate on the "mastery_before" field.
func MasteryBeforeLT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldMasteryBefore, v))
}

// MasteryBeforeLTE applies the LTE predicate on the "mastery_before" field.
func MasteryBeforeLTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldMasteryBefore, v))
}

// MasteryAfterEQ applies the EQ predicate on the "mastery_after" field.
func MasteryAfterEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldMasteryAfter, v))
}

// MasteryAfterNEQ applies the NEQ predicate on the "mastery_after" field.
func MasteryAfterNEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldMasteryAfter, v))
}

// MasteryAfterIn applies the In predicate on the "mastery_after" field.
func MasteryAfterIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldMasteryAfter, vs...))
}

// MasteryAfterNotIn applies the NotIn predicate on the "mastery_after" field.
func MasteryAfterNotIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldMasteryAfter, vs...))
}

// MasteryAfterGT applies the GT predicate on the "mastery_after" field.
func MasteryAfterGT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldMasteryAfter, v))
}

// MasteryAfterGTE applies the GTE predicate on the "mastery_after" field.
func MasteryAfterGTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldMasteryAfter, v))
}

// MasteryAfterLT applies the LT predicate on the "mastery_after" field.
func MasteryAfterLT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldMasteryAfter, v))
}

// MasteryAfterLTE applies the LTE predicate on the "mastery_after" field.
func MasteryAfterLTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldMasteryAfter, v))
}

// DiagnosticTagEQ applies the EQ predicate on the "diagnostic_tag" field.
func DiagnosticTagEQ(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldDiagnosticTag, v))
}

// DiagnosticTagNEQ applies the NEQ predicate on the "diagnostic_tag" field.
func DiagnosticTagNEQ(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldDiagnosticTag, v))
}

// DiagnosticTagIn applies the In predicate on the "diagnostic_tag" field.
func DiagnosticTagIn(vs ...string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldDiagnosticTag, vs...))
}

// DiagnosticTagNotIn applies the NotIn predicate on the "diagnostic_tag" field.
func DiagnosticTagNotIn(vs ...string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldDiagnosticTag, vs...))
}

// DiagnosticTagGT applies the GT predicate on the "diagnostic_tag" field.
func DiagnosticTagGT(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldDiagnosticTag, v))
}

// DiagnosticTagGTE applies the GTE predicate on the "diagnostic_tag" field.
func DiagnosticTagGTE(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldDiagnosticTag, v))
}

// DiagnosticTagLT applies the LT predicate on the "diagnostic_tag" field.
func DiagnosticTagLT(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldDiagnosticTag, v))
}

// DiagnosticTagLTE applies the LTE predicate on the "diagnostic_tag" field.
func DiagnosticTagLTE(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldDiagnosticTag, v))
}

// DiagnosticTagContains applies the Contains predicate on the "diagnostic_tag" field.
func DiagnosticTagContains(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldContains(FieldDiagnosticTag, v))
}

// DiagnosticTagHasPrefix applies the HasPrefix predicate on the "diagnostic_tag" field.
func DiagnosticTagHasPrefix(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldHasPrefix(FieldDiagnosticTag, v))
}

// DiagnosticTagHasSuffix applies the HasSuffix predicate on the "diagnostic_tag" field.
func DiagnosticTagHasSuffix(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldHasSuffix(FieldDiagnosticTag, v))
}

// DiagnosticTagIsNil applies the IsNil predicate on the "diagnostic_tag" field.
func DiagnosticTagIsNil() predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIsNull(FieldDiagnosticTag))
}

// DiagnosticTagNotNil applies the NotNil predicate on the "diagnostic_tag" field.
func DiagnosticTagNotNil() predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotNull(FieldDiagnosticTag))
}

// DiagnosticTagEqualFold applies the EqualFold predicate on the "diagnostic_tag" field.
func DiagnosticTagEqualFold(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEqualFold(FieldDiagnosticTag, v))
}

// DiagnosticTagContainsFold applies the ContainsFold predicate on the "diagnostic_tag" field.
func DiagnosticTagContainsFold(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldContainsFold(FieldDiagnosticTag, v))
}

// RecoveredEQ applies the EQ predicate on the "recovered" field.
func RecoveredEQ(v bool) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldRecovered, v))
}

// RecoveredNEQ applies the NEQ predicate on the "recovered" field.
func RecoveredNEQ(v bool) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldRecovered, v))
}

// RecoveryVelocityEQ applies the EQ predicate on the "recovery_velocity" field.
func RecoveryVelocityEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldRecoveryVelocity, v))
}

// RecoveryVelocityNEQ applies the NEQ predicate on the "recovery_velocity" field.
func RecoveryVelocityNEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldRecoveryVelocity, v))
}

// RecoveryVelocityIn applies the In predicate on the "recovery_velocity" field.
func RecoveryVelocityIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldRecoveryVelocity, vs...))
}

// RecoveryVelocityNotIn applies the NotIn predicate on the "recovery_velocity" field.
func RecoveryVelocityNotIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldRecoveryVelocity, vs...))
}

// RecoveryVelocityGT applies the GT predicate on the "recovery_velocity" field.
func RecoveryVelocityGT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldRecoveryVelocity, v))
}

// RecoveryVelocityGTE applies the GTE predicate on the "recovery_velocity" field.
func RecoveryVelocityGTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldRecoveryVelocity, v))
}

// RecoveryVelocityLT applies the LT predicate on the "recovery_velocity" field.
func RecoveryVelocityLT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldRecoveryVelocity, v))
}

// RecoveryVelocityLTE applies the LTE predicate on the "recovery_velocity" field.
func RecoveryVelocityLTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldRecoveryVelocity, v))
}

// RecoveryVelocityIsNil applies the IsNil predicate on the "recovery_velocity" field.
func RecoveryVelocityIsNil() predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIsNull(FieldRecoveryVelocity))
}

// RecoveryVelocityNotNil applies the NotNil predicate on the "recovery_velocity" field.
func RecoveryVelocityNotNil() predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotNull(FieldRecoveryVelocity))
}

// AtomIDEQ applies the EQ predicate on the "atom_id" field.
func AtomIDEQ(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldAtomID, v))
}

// AtomIDNEQ applies the NEQ predicate on the "atom_id" field.
func AtomIDNEQ(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldAtomID, v))
}

// AtomIDIn applies the In predicate on the "atom_id" field.
func AtomIDIn(vs ...string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldAtomID, vs...))
}

// AtomIDNotIn applies the NotIn predicate on the "atom_id" field.
func AtomIDNotIn(vs ...string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldAtomID, vs...))
}

// AtomIDGT applies the GT predicate on the "atom_id" field.
func AtomIDGT(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldAtomID, v))
}

// AtomIDGTE applies the GTE predicate on the "atom_id" field.
func AtomIDGTE(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldAtomID, v))
}

// AtomIDLT applies the LT predicate on the "atom_id" field.
func AtomIDLT(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldAtomID, v))
}

// AtomIDLTE applies the LTE predicate on the "atom_id" field.
func AtomIDLTE(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldAtomID, v))
}

// AtomIDContains applies the Contains predicate on the "atom_id" field.
func AtomIDContains(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldContains(FieldAtomID, v))
}

// AtomIDHasPrefix applies the HasPrefix predicate on the "atom_id" field.
func AtomIDHasPrefix(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldHasPrefix(FieldAtomID, v))
}

// AtomIDHasSuffix applies the HasSuffix predicate on the "atom_id" field.
func AtomIDHasSuffix(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldHasSuffix(FieldAtomID, v))
}

// AtomIDEqualFold applies the EqualFold predicate on the "atom_id" field.
func AtomIDEqualFold(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEqualFold(FieldAtomID, v))
}

// AtomIDContainsFold applies the ContainsFold predicate on the "atom_id" field.
func AtomIDContainsFold(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldContainsFold(FieldAtomID, v))
}

// EmittedAtEQ applies the EQ predicate on the "emitted_at" field.
func EmittedAtEQ(v int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldEmittedAt, v))
}

// EmittedAtNEQ applies the NEQ predicate on the "emitted_at" field.
func EmittedAtNEQ(v int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldEmittedAt, v))
}

// EmittedAtIn applies the In predicate on the "emitted_at" field.
func EmittedAtIn(vs ...int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldEmittedAt, vs...))
}

// EmittedAtNotIn applies the NotIn predicate on the "emitted_at" field.
func EmittedAtNotIn(vs ...int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldEmittedAt, vs...))
}

// EmittedAtGT applies the GT predicate on the "emitted_at" field.
func EmittedAtGT(v int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldEmittedAt, v))
}

// EmittedAtGTE applies the GTE predicate on the "emitted_at" field.
func EmittedAtGTE(v int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldEmittedAt, v))
}

// EmittedAtLT applies the LT predicate on the "emitted_at" field.
func EmittedAtLT(v int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldEmittedAt, v))
}

// EmittedAtLTE applies the LTE predicate on the "emitted_at" field.
func EmittedAtLTE(v int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldEmittedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TelemetryEvent) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TelemetryEvent) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TelemetryEvent) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.NotPredicates(p))
}
