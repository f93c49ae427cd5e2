package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RewardEvent records one earned award: streak milestones, cleared
// hurdles, mastered concepts, completed sessions.
type RewardEvent struct {
	ent.Schema
}

func (RewardEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RewardEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("award_type").
			NotEmpty(),
		field.String("rarity").
			NotEmpty(),
		field.String("session_id").
			NotEmpty(),
		field.String("concept_id").
			Optional().
			Default(""),
		field.String("reason").
			NotEmpty(),
	}
}

func (RewardEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("award_type"),
		index.Fields("session_id"),
	}
}
