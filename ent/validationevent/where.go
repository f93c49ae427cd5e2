// Code generated by ent, DO NOT EDIT.

package validationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldQuestionID, v))
}

// EmittedAt applies equality check predicate on the "emitted_at" field. It's identical to EmittedAtEQ.
func EmittedAt(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldEmittedAt, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldStatus, v))
}

// ErrorCount applies equality check predicate on the "error_count" field. It's identical to ErrorCountEQ.
func ErrorCount(v int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldErrorCount, v))
}

// WarningCount applies equality check predicate on the "warning_count" field. It's identical to WarningCountEQ.
func WarningCount(v int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldWarningCount, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContainsFold(FieldQuestionID, v))
}

// EmittedAtEQ applies the EQ predicate on the "emitted_at" field.
func EmittedAtEQ(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldEmittedAt, v))
}

// EmittedAtNEQ applies the NEQ predicate on the "emitted_at" field.
func EmittedAtNEQ(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldEmittedAt, v))
}

// EmittedAtIn applies the In predicate on the "emitted_at" field.
func EmittedAtIn(vs ...int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldEmittedAt, vs...))
}

// EmittedAtNotIn applies the NotIn predicate on the "emitted_at" field.
func EmittedAtNotIn(vs ...int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldEmittedAt, vs...))
}

// EmittedAtGT applies the GT predicate on the "emitted_at" field.
func EmittedAtGT(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldEmittedAt, v))
}

// EmittedAtGTE applies the GTE predicate on the "emitted_at" field.
func EmittedAtGTE(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldEmittedAt, v))
}

// EmittedAtLT applies the LT predicate on the "emitted_at" field.
func EmittedAtLT(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldEmittedAt, v))
}

// EmittedAtLTE applies the LTE predicate on the "emitted_at" field.
func EmittedAtLTE(v int64) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldEmittedAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorCountEQ applies the EQ predicate on the "error_count" field.
func ErrorCountEQ(v int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldErrorCount, v))
}

// ErrorCountNEQ applies the NEQ predicate on the "error_count" field.
func ErrorCountNEQ(v int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldErrorCount, v))
}

// ErrorCountIn applies the In predicate on the "error_count" field.
func ErrorCountIn(vs ...int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldErrorCount, vs...))
}

// ErrorCountNotIn applies the NotIn predicate on the "error_count" field.
func ErrorCountNotIn(vs ...int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldErrorCount, vs...))
}

// ErrorCountGT applies the GT predicate on the "error_count" field.
func ErrorCountGT(v int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldErrorCount, v))
}

// ErrorCountGTE applies the GTE predicate on the "error_count" field.
func ErrorCountGTE(v int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldErrorCount, v))
}

// ErrorCountLT applies the LT predicate on the "error_count" field.
func ErrorCountLT(v int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldErrorCount, v))
}

// ErrorCountLTE applies the LTE predicate on the "error_count" field.
func ErrorCountLTE(v int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldErrorCount, v))
}

// WarningCountEQ applies the EQ predicate on the "warning_count" field.
func WarningCountEQ(v int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldEQ(FieldWarningCount, v))
}

// WarningCountNEQ applies the NEQ predicate on the "warning_count" field.
func WarningCountNEQ(v int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNEQ(FieldWarningCount, v))
}

// WarningCountIn applies the In predicate on the "warning_count" field.
func WarningCountIn(vs ...int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIn(FieldWarningCount, vs...))
}

// WarningCountNotIn applies the NotIn predicate on the "warning_count" field.
func WarningCountNotIn(vs ...int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotIn(FieldWarningCount, vs...))
}

// WarningCountGT applies the GT predicate on the "warning_count" field.
func WarningCountGT(v int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGT(FieldWarningCount, v))
}

// WarningCountGTE applies the GTE predicate on the "warning_count" field.
func WarningCountGTE(v int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldGTE(FieldWarningCount, v))
}

// WarningCountLT applies the LT predicate on the "warning_count" field.
func WarningCountLT(v int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLT(FieldWarningCount, v))
}

// WarningCountLTE applies the LTE predicate on the "warning_count" field.
func WarningCountLTE(v int) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldLTE(FieldWarningCount, v))
}

// IssuesIsNil applies the IsNil predicate on the "issues" field.
func IssuesIsNil() predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldIsNull(FieldIssues))
}

// IssuesNotNil applies the NotNil predicate on the "issues" field.
func IssuesNotNil() predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.FieldNotNull(FieldIssues))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ValidationEvent) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ValidationEvent) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ValidationEvent) predicate.ValidationEvent {
	return predicate.ValidationEvent(sql.NotPredicates(p))
}
