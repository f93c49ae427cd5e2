package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestionDoc is a stored question bank item.
type QuestionDoc struct {
	ent.Schema
}

// DistractorDoc is the serialized form of a wrong answer option.
type DistractorDoc struct {
	Option           string `json:"option"`
	MisconceptionTag string `json:"misconception_tag,omitempty"`
}

func (QuestionDoc) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			NotEmpty().
			Unique(),
		field.String("concept_id").
			NotEmpty(),
		field.String("prompt").
			NotEmpty(),
		field.String("correct_answer").
			NotEmpty(),
		field.JSON("distractors", []DistractorDoc{}).
			Optional(),
		field.Int("difficulty").
			Default(1).
			Comment("1-5"),
		field.String("template").
			NotEmpty().
			Comment("multiple_choice, numeric_entry, word_problem, visual_model, or reflection_prompt"),
	}
}

func (QuestionDoc) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("concept_id"),
		index.Fields("template"),
	}
}
