package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TelemetryEvent is one answered question in its wire shape. The sink is
// append-only and keyed by (question_id, emitted_at).
type TelemetryEvent struct {
	ent.Schema
}

func (TelemetryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TelemetryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the session that emitted this record"),
		field.String("question_id").
			NotEmpty(),
		field.String("student_answer").
			NotEmpty(),
		field.String("correct_answer").
			NotEmpty(),
		field.Bool("correct"),
		field.Int("time_ms").
			Comment("Thinking time in milliseconds"),
		field.String("speed_rating").
			NotEmpty().
			Comment("SPRINT, STEADY, or DEEP"),
		field.Float("mastery_before"),
		field.Float("mastery_after"),
		field.String("diagnostic_tag").
			Optional().
			Comment("Misconception tag or 'unclassified'; set iff the answer was wrong"),
		field.Bool("recovered"),
		field.Float("recovery_velocity").
			Optional().
			Nillable().
			Comment("Set iff recovered"),
		field.String("atom_id").
			NotEmpty().
			Comment("Concept the question exercised"),
		field.Int64("emitted_at").
			Immutable().
			Comment("Unix milliseconds at emission"),
	}
}

func (TelemetryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id", "emitted_at").
			Unique(),
		index.Fields("session_id"),
		index.Fields("atom_id"),
		index.Fields("correct"),
	}
}
