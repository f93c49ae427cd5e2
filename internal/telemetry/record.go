// Package telemetry defines the wire-exact record emitted once per answered
// question. Records are append-only: constructed by the session controller,
// audited by the validation pipeline, and never mutated afterwards.
package telemetry

import "encoding/json"

// TagUnclassified is the diagnostic tag for a wrong answer whose distractor
// carried no misconception tag. The wire contract requires a tag on every
// wrong answer; this is the explicit "we don't know" value.
const TagUnclassified = "unclassified"

// MaxTimeSpentMs is the schema-tier sanity ceiling on thinking time.
const MaxTimeSpentMs = 300000

// Record is one telemetry row. Field names are the wire contract consumed
// by the quality-assurance layer and reporting dashboards.
type Record struct {
	QuestionID    string  `json:"questionId"`
	StudentAnswer string  `json:"studentAnswer"`
	CorrectAnswer string  `json:"correctAnswer"`
	IsCorrect     bool    `json:"isCorrect"`
	TimeSpent     int     `json:"timeSpent"`
	SpeedRating   string  `json:"speedRating"`
	MasteryBefore float64 `json:"masteryBefore"`
	MasteryAfter  float64 `json:"masteryAfter"`

	// DiagnosticTag is required when IsCorrect is false: either the matched
	// misconception tag or TagUnclassified. Omitted on correct answers.
	DiagnosticTag string `json:"diagnosticTag,omitempty"`

	IsRecovered bool `json:"isRecovered"`

	// RecoveryVelocity is required when IsRecovered is true and absent
	// otherwise.
	RecoveryVelocity *float64 `json:"recoveryVelocity,omitempty"`

	// AtomID is the concept this question exercised.
	AtomID string `json:"atomId"`

	// Timestamp is unix milliseconds at emission.
	Timestamp int64 `json:"timestamp"`
}

// MarshalWire serializes the record in its wire shape.
func (r *Record) MarshalWire() ([]byte, error) {
	return json.Marshal(r)
}

// UnmarshalWire parses a wire-shape record.
func UnmarshalWire(data []byte) (*Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
