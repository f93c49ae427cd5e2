// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
		},
	}
	// QuestionDocsColumns holds the columns for the "question_docs" table.
	QuestionDocsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_id", Type: field.TypeString, Unique: true},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "distractors", Type: field.TypeJSON, Nullable: true},
		{Name: "difficulty", Type: field.TypeInt, Default: 1},
		{Name: "template", Type: field.TypeString},
	}
	// QuestionDocsTable holds the schema information for the "question_docs" table.
	QuestionDocsTable = &schema.Table{
		Name:       "question_docs",
		Columns:    QuestionDocsColumns,
		PrimaryKey: []*schema.Column{QuestionDocsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questiondoc_concept_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionDocsColumns[2]},
			},
			{
				Name:    "questiondoc_template",
				Unique:  false,
				Columns: []*schema.Column{QuestionDocsColumns[7]},
			},
		},
	}
	// RewardEventsColumns holds the columns for the "reward_events" table.
	RewardEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "award_type", Type: field.TypeString},
		{Name: "rarity", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "reason", Type: field.TypeString},
	}
	// RewardEventsTable holds the schema information for the "reward_events" table.
	RewardEventsTable = &schema.Table{
		Name:       "reward_events",
		Columns:    RewardEventsColumns,
		PrimaryKey: []*schema.Column{RewardEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "rewardevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{RewardEventsColumns[1]},
			},
			{
				Name:    "rewardevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RewardEventsColumns[2]},
			},
			{
				Name:    "rewardevent_award_type",
				Unique:  false,
				Columns: []*schema.Column{RewardEventsColumns[3]},
			},
			{
				Name:    "rewardevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{RewardEventsColumns[5]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_user_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1], SnapshotsColumns[3]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
		},
	}
	// TelemetryEventsColumns holds the columns for the "telemetry_events" table.
	TelemetryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "student_answer", Type: field.TypeString},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_ms", Type: field.TypeInt},
		{Name: "speed_rating", Type: field.TypeString},
		{Name: "mastery_before", Type: field.TypeFloat64},
		{Name: "mastery_after", Type: field.TypeFloat64},
		{Name: "diagnostic_tag", Type: field.TypeString, Nullable: true},
		{Name: "recovered", Type: field.TypeBool},
		{Name: "recovery_velocity", Type: field.TypeFloat64, Nullable: true},
		{Name: "atom_id", Type: field.TypeString},
		{Name: "emitted_at", Type: field.TypeInt64},
	}
	// TelemetryEventsTable holds the schema information for the "telemetry_events" table.
	TelemetryEventsTable = &schema.Table{
		Name:       "telemetry_events",
		Columns:    TelemetryEventsColumns,
		PrimaryKey: []*schema.Column{TelemetryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "telemetryevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TelemetryEventsColumns[1]},
			},
			{
				Name:    "telemetryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TelemetryEventsColumns[2]},
			},
			{
				Name:    "telemetryevent_question_id_emitted_at",
				Unique:  true,
				Columns: []*schema.Column{TelemetryEventsColumns[4], TelemetryEventsColumns[16]},
			},
			{
				Name:    "telemetryevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{TelemetryEventsColumns[3]},
			},
			{
				Name:    "telemetryevent_atom_id",
				Unique:  false,
				Columns: []*schema.Column{TelemetryEventsColumns[15]},
			},
			{
				Name:    "telemetryevent_correct",
				Unique:  false,
				Columns: []*schema.Column{TelemetryEventsColumns[7]},
			},
		},
	}
	// ValidationEventsColumns holds the columns for the "validation_events" table.
	ValidationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "question_id", Type: field.TypeString},
		{Name: "emitted_at", Type: field.TypeInt64},
		{Name: "status", Type: field.TypeString},
		{Name: "error_count", Type: field.TypeInt, Default: 0},
		{Name: "warning_count", Type: field.TypeInt, Default: 0},
		{Name: "issues", Type: field.TypeJSON, Nullable: true},
	}
	// ValidationEventsTable holds the schema information for the "validation_events" table.
	ValidationEventsTable = &schema.Table{
		Name:       "validation_events",
		Columns:    ValidationEventsColumns,
		PrimaryKey: []*schema.Column{ValidationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "validationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ValidationEventsColumns[1]},
			},
			{
				Name:    "validationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ValidationEventsColumns[2]},
			},
			{
				Name:    "validationevent_question_id_emitted_at",
				Unique:  false,
				Columns: []*schema.Column{ValidationEventsColumns[3], ValidationEventsColumns[4]},
			},
			{
				Name:    "validationevent_status",
				Unique:  false,
				Columns: []*schema.Column{ValidationEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		QuestionDocsTable,
		RewardEventsTable,
		SnapshotsTable,
		TelemetryEventsTable,
		ValidationEventsTable,
	}
)

func init() {
}
