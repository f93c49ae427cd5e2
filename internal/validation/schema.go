package validation

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/mathquest/internal/mastery"
	"github.com/abhisek/mathquest/internal/telemetry"
)

// wireSchemaJSON is the JSON Schema for the telemetry wire record: required
// fields, primitive types, the speedRating enum, numeric bounds, and the
// two conditional requirements (diagnosticTag on a miss, recoveryVelocity
// on a recovery).
const wireSchemaJSON = `{
  "type": "object",
  "required": ["questionId", "studentAnswer", "correctAnswer", "isCorrect",
               "timeSpent", "speedRating", "masteryBefore", "masteryAfter",
               "isRecovered", "atomId", "timestamp"],
  "properties": {
    "questionId":    {"type": "string", "minLength": 1},
    "studentAnswer": {"type": "string"},
    "correctAnswer": {"type": "string"},
    "isCorrect":     {"type": "boolean"},
    "timeSpent":     {"type": "integer", "minimum": 0, "maximum": 300000},
    "speedRating":   {"enum": ["SPRINT", "STEADY", "DEEP"]},
    "masteryBefore": {"type": "number", "minimum": 0, "maximum": 1},
    "masteryAfter":  {"type": "number", "minimum": 0, "maximum": 1},
    "diagnosticTag": {"type": "string", "minLength": 1},
    "isRecovered":   {"type": "boolean"},
    "recoveryVelocity": {"type": "number", "minimum": 0, "maximum": 1},
    "atomId":        {"type": "string", "minLength": 1},
    "timestamp":     {"type": "integer", "minimum": 1}
  },
  "allOf": [
    {
      "if":   {"properties": {"isCorrect": {"const": false}}},
      "then": {"required": ["diagnosticTag"]}
    },
    {
      "if":   {"properties": {"isRecovered": {"const": true}}},
      "then": {"required": ["recoveryVelocity"]},
      "else": {"not": {"required": ["recoveryVelocity"]}}
    }
  ]
}`

var (
	wireSchemaOnce sync.Once
	wireSchema     *jsonschema.Schema
	wireSchemaErr  error
)

// compiledWireSchema compiles the wire schema once and caches it for the
// life of the process.
func compiledWireSchema() (*jsonschema.Schema, error) {
	wireSchemaOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(wireSchemaJSON), &parsed); err != nil {
			wireSchemaErr = fmt.Errorf("parse wire schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://telemetry-record.json"
		if err := c.AddResource(url, parsed); err != nil {
			wireSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		wireSchema, wireSchemaErr = c.Compile(url)
	})
	return wireSchema, wireSchemaErr
}

// SchemaTier runs the blocking tier. Every issue it returns is an ERROR.
// Pure over its input: running it twice on the same record yields the same
// issues.
func SchemaTier(rec *telemetry.Record) []Issue {
	var issues []Issue
	add := func(field, code, msg string) {
		issues = append(issues, Issue{
			Field:    field,
			Tier:     TierSchema,
			Severity: SeverityError,
			Code:     code,
			Message:  msg,
		})
	}

	// Typed checks first, for field-precise codes.
	if rec.QuestionID == "" {
		add("questionId", "MISSING_FIELD", "questionId is required")
	}
	if rec.AtomID == "" {
		add("atomId", "MISSING_FIELD", "atomId is required")
	}
	if rec.Timestamp <= 0 {
		add("timestamp", "MISSING_FIELD", "timestamp must be a positive unix-millisecond value")
	}
	if !validSpeedRating(rec.SpeedRating) {
		add("speedRating", "BAD_ENUM",
			fmt.Sprintf("speedRating %q is not one of SPRINT, STEADY, DEEP", rec.SpeedRating))
	}
	if rec.TimeSpent < 0 || rec.TimeSpent > telemetry.MaxTimeSpentMs {
		add("timeSpent", "OUT_OF_RANGE",
			fmt.Sprintf("timeSpent %d outside [0, %d]", rec.TimeSpent, telemetry.MaxTimeSpentMs))
	}
	if rec.MasteryBefore < 0 || rec.MasteryBefore > 1 {
		add("masteryBefore", "OUT_OF_RANGE",
			fmt.Sprintf("masteryBefore %v outside [0, 1]", rec.MasteryBefore))
	}
	if rec.MasteryAfter < 0 || rec.MasteryAfter > 1 {
		add("masteryAfter", "OUT_OF_RANGE",
			fmt.Sprintf("masteryAfter %v outside [0, 1]", rec.MasteryAfter))
	}
	if !rec.IsCorrect && rec.DiagnosticTag == "" {
		add("diagnosticTag", "CONDITIONAL_FIELD", "diagnosticTag is required on an incorrect answer")
	}
	if rec.IsRecovered && rec.RecoveryVelocity == nil {
		add("recoveryVelocity", "CONDITIONAL_FIELD", "recoveryVelocity is required on a recovered answer")
	}
	if !rec.IsRecovered && rec.RecoveryVelocity != nil {
		add("recoveryVelocity", "CONDITIONAL_FIELD", "recoveryVelocity must be absent when isRecovered is false")
	}
	if rec.RecoveryVelocity != nil && (*rec.RecoveryVelocity < 0 || *rec.RecoveryVelocity > 1) {
		add("recoveryVelocity", "OUT_OF_RANGE",
			fmt.Sprintf("recoveryVelocity %v outside [0, 1]", *rec.RecoveryVelocity))
	}

	// The compiled schema backstops anything the typed checks miss.
	if len(issues) == 0 {
		if err := validateWire(rec); err != nil {
			add("", "SCHEMA_VIOLATION", err.Error())
		}
	}
	return issues
}

func validateWire(rec *telemetry.Record) error {
	compiled, err := compiledWireSchema()
	if err != nil {
		return err
	}
	raw, err := rec.MarshalWire()
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("reparse record: %w", err)
	}
	return compiled.Validate(parsed)
}

func validSpeedRating(s string) bool {
	for _, r := range mastery.AllSpeedRatings() {
		if s == string(r) {
			return true
		}
	}
	return false
}
