// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// QuestionDoc is the predicate function for questiondoc builders.
type QuestionDoc func(*sql.Selector)

// RewardEvent is the predicate function for rewardevent builders.
type RewardEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// TelemetryEvent is the predicate function for telemetryevent builders.
type TelemetryEvent func(*sql.Selector)

// ValidationEvent is the predicate function for validationevent builders.
type ValidationEvent func(*sql.Selector)
