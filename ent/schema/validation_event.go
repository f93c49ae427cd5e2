package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ValidationEvent records the audit verdict for one telemetry record.
type ValidationEvent struct {
	ent.Schema
}

// IssueDoc is the serialized form of a single validation issue.
type IssueDoc struct {
	Field    string `json:"field"`
	Tier     string `json:"tier"`
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

func (ValidationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ValidationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			NotEmpty().
			Comment("Key half of the audited record"),
		field.Int64("emitted_at").
			Comment("Other key half: the record's unix-ms timestamp"),
		field.String("status").
			NotEmpty().
			Comment("PASS or FAIL"),
		field.Int("error_count").
			Default(0),
		field.Int("warning_count").
			Default(0),
		field.JSON("issues", []IssueDoc{}).
			Optional(),
	}
}

func (ValidationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id", "emitted_at"),
		index.Fields("status"),
	}
}
