// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathquest/ent/telemetryevent"
)

// TelemetryEvent is the model entity for the TelemetryEvent schema.
type TelemetryEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the session that emitted this record
	SessionID string `json:"session_id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// StudentAnswer holds the value of the "student_answer" field.
	StudentAnswer string `json:"student_answer,omitempty"`
	// CorrectAnswer holds the value of the "correct_answer" field.
	CorrectAnswer string `json:"correct_answer,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct bool `json:"correct,omitempty"`
	// Thinking time in milliseconds
	TimeMs int `json:"time_ms,omitempty"`
	// SPRINT, STEADY, or DEEP
	SpeedRating string `json:"speed_rating,omitempty"`
	// MasteryBefore holds the value of the "mastery_before" field.
	MasteryBefore float64 `json:"mastery_before,omitempty"`
	// MasteryAfter holds the value of the "mastery_after" field.
	MasteryAfter float64 `json:"mastery_after,omitempty"`
	// Misconception tag or 'unclassified'; set iff the answer was wrong
	DiagnosticTag string `json:"diagnostic_tag,omitempty"`
	// Recovered holds the value of the "recovered" field.
	Recovered bool `json:"recovered,omitempty"`
	// Set iff recovered
	RecoveryVelocity *float64 `json:"recovery_velocity,omitempty"`
	// Concept the question exercised
	AtomID string `json:"atom_id,omitempty"`
	// Unix milliseconds at emission
	EmittedAt    int64 `json:"emitted_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TelemetryEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case telemetryevent.FieldCorrect, telemetryevent.FieldRecovered:
			values[i] = new(sql.NullBool)
		case telemetryevent.FieldMasteryBefore, telemetryevent.FieldMasteryAfter, telemetryevent.FieldRecoveryVelocity:
			values[i] = new(sql.NullFloat64)
		case telemetryevent.FieldID, telemetryevent.FieldSequence, telemetryevent.FieldTimeMs, telemetryevent.FieldEmittedAt:
			values[i] = new(sql.NullInt64)
		case telemetryevent.FieldSessionID, telemetryevent.FieldQuestionID, telemetryevent.FieldStudentAnswer, telemetryevent.FieldCorrectAnswer, telemetryevent.FieldSpeedRating, telemetryevent.FieldDiagnosticTag, telemetryevent.FieldAtomID:
			values[i] = new(sql.NullString)
		case telemetryevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TelemetryEvent fields.
func (_m *TelemetryEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case telemetryevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case telemetryevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case telemetryevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case telemetryevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case telemetryevent.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case telemetryevent.FieldStudentAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_answer", values[i])
			} else if value.Valid {
				_m.StudentAnswer = value.String
			}
		case telemetryevent.FieldCorrectAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answer", values[i])
			} else if value.Valid {
				_m.CorrectAnswer = value.String
			}
		case telemetryevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case telemetryevent.FieldTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_ms", values[i])
			} else if value.Valid {
				_m.TimeMs = int(value.Int64)
			}
		case telemetryevent.FieldSpeedRating:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field speed_rating", values[i])
			} else if value.Valid {
				_m.SpeedRating = value.String
			}
		case telemetryevent.FieldMasteryBefore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_before", values[i])
			} else if value.Valid {
				_m.MasteryBefore = value.Float64
			}
		case telemetryevent.FieldMasteryAfter:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_after", values[i])
			} else if value.Valid {
				_m.MasteryAfter = value.Float64
			}
		case telemetryevent.FieldDiagnosticTag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field diagnostic_tag", values[i])
			} else if value.Valid {
				_m.DiagnosticTag = value.String
			}
		case telemetryevent.FieldRecovered:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field recovered", values[i])
			} else if value.Valid {
				_m.Recovered = value.Bool
			}
		case telemetryevent.FieldRecoveryVelocity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field recovery_velocity", values[i])
			} else if value.Valid {
				_m.RecoveryVelocity = new(float64)
				*_m.RecoveryVelocity = value.Float64
			}
		case telemetryevent.FieldAtomID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field atom_id", values[i])
			} else if value.Valid {
				_m.AtomID = value.String
			}
		case telemetryevent.FieldEmittedAt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field emitted_at", values[i])
			} else if value.Valid {
				_m.EmittedAt = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TelemetryEvent.
// This includes values selected through modifiers, order, etc.
func (_m *TelemetryEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TelemetryEvent.
// Note that you need to call TelemetryEvent.Unwrap() before calling this method if this TelemetryEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TelemetryEvent) Update() *TelemetryEventUpdateOne {
	return NewTelemetryEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TelemetryEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TelemetryEvent) Unwrap() *TelemetryEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TelemetryEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TelemetryEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TelemetryEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("student_answer=")
	builder.WriteString(_m.StudentAnswer)
	builder.WriteString(", ")
	builder.WriteString("correct_answer=")
	builder.WriteString(_m.CorrectAnswer)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeMs))
	builder.WriteString(", ")
	builder.WriteString("speed_rating=")
	builder.WriteString(_m.SpeedRating)
	builder.WriteString(", ")
	builder.WriteString("mastery_before=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryBefore))
	builder.WriteString(", ")
	builder.WriteString("mastery_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryAfter))
	builder.WriteString(", ")
	builder.WriteString("diagnostic_tag=")
	builder.WriteString(_m.DiagnosticTag)
	builder.WriteString(", ")
	builder.WriteString("recovered=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recovered))
	builder.WriteString(", ")
	if v := _m.RecoveryVelocity; v != nil {
		builder.WriteString("recovery_velocity=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("atom_id=")
	builder.WriteString(_m.AtomID)
	builder.WriteString(", ")
	builder.WriteString("emitted_at=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmittedAt))
	builder.WriteByte(')')
	return builder.String()
}

// TelemetryEvents is a parsable slice of TelemetryEvent.
type TelemetryEvents []*TelemetryEvent
