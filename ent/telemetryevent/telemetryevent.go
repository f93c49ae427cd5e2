// Code generated by ent, DO NOT EDIT.

package telemetryevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the telemetryevent type in the database.
	Label = "telemetry_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldStudentAnswer holds the string denoting the student_answer field in the database.
	FieldStudentAnswer = "student_answer"
	// FieldCorrectAnswer holds the string denoting the correct_answer field in the database.
	FieldCorrectAnswer = "correct_answer"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldTimeMs holds the string denoting the time_ms field in the database.
	FieldTimeMs = "time_ms"
	// FieldSpeedRating holds the string denoting the speed_rating field in the database.
	FieldSpeedRating = "speed_rating"
	// FieldMasteryBefore holds the string denoting the mastery_before field in the database.
	FieldMasteryBefore = "mastery_before"
	// FieldMasteryAfter holds the string denoting the mastery_after field in the database.
	FieldMasteryAfter = "mastery_after"
	// FieldDiagnosticTag holds the string denoting the diagnostic_tag field in the database.
	FieldDiagnosticTag = "diagnostic_tag"
	// FieldRecovered holds the string denoting the recovered field in the database.
	FieldRecovered = "recovered"
	// FieldRecoveryVelocity holds the string denoting the recovery_velocity field in the database.
	FieldRecoveryVelocity = "recovery_velocity"
	// FieldAtomID holds the string denoting the atom_id field in the database.
	FieldAtomID = "atom_id"
	// FieldEmittedAt holds the string denoting the emitted_at field in the database.
	FieldEmittedAt = "emitted_at"
	// Table holds the table name of the telemetryevent in the database.
	Table = "telemetry_events"
)

// Columns holds all SQL columns for telemetryevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldQuestionID,
	FieldStudentAnswer,
	FieldCorrectAnswer,
	FieldCorrect,
	FieldTimeMs,
	FieldSpeedRating,
	FieldMasteryBefore,
	FieldMasteryAfter,
	FieldDiagnosticTag,
	FieldRecovered,
	FieldRecoveryVelocity,
	FieldAtomID,
	FieldEmittedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(string) error
	// StudentAnswerValidator is a validator for the "student_answer" field. It is called by the builders before save.
	StudentAnswerValidator func(string) error
	// CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	CorrectAnswerValidator func(string) error
	// SpeedRatingValidator is a validator for the "speed_rating" field. It is called by the builders before save.
	SpeedRatingValidator func(string) error
	// AtomIDValidator is a validator for the "atom_id" field. It is called by the builders before save.
	AtomIDValidator func(string) error
)

// OrderOption defines the ordering options for the TelemetryEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByStudentAnswer orders the results by the student_answer field.
func ByStudentAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentAnswer, opts...).ToFunc()
}

// ByCorrectAnswer orders the results by the correct_answer field.
func ByCorrectAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswer, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByTimeMs orders the results by the time_ms field.
func ByTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeMs, opts...).ToFunc()
}

// BySpeedRating orders the results by the speed_rating field.
func BySpeedRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpeedRating, opts...).ToFunc()
}

// ByMasteryBefore orders the results by the mastery_before field.
func ByMasteryBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryBefore, opts...).ToFunc()
}

// ByMasteryAfter orders the results by the mastery_after field.
func ByMasteryAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryAfter, opts...).ToFunc()
}

// ByDiagnosticTag orders the results by the diagnostic_tag field.
func ByDiagnosticTag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiagnosticTag, opts...).ToFunc()
}

// ByRecovered orders the results by the recovered field.
func ByRecovered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecovered, opts...).ToFunc()
}

// ByRecoveryVelocity orders the results by the recovery_velocity field.
func ByRecoveryVelocity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecoveryVelocity, opts...).ToFunc()
}

// ByAtomID orders the results by the atom_id field.
func ByAtomID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAtomID, opts...).ToFunc()
}

// ByEmittedAt orders the results by the emitted_at field.
func ByEmittedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmittedAt, opts...).ToFunc()
}
