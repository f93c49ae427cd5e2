// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/mathquest/ent/llmrequestevent"
	"github.com/abhisek/mathquest/ent/questiondoc"
	"github.com/abhisek/mathquest/ent/rewardevent"
	"github.com/abhisek/mathquest/ent/schema"
	"github.com/abhisek/mathquest/ent/snapshot"
	"github.com/abhisek/mathquest/ent/telemetryevent"
	"github.com/abhisek/mathquest/ent/validationevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	llmrequestevent.PurposeValidator = llmrequesteventDescPurpose.Validators[0].(func(string) error)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	questiondocFields := schema.QuestionDoc{}.Fields()
	_ = questiondocFields
	// questiondocDescQuestionID is the schema descriptor for question_id field.
	questiondocDescQuestionID := questiondocFields[0].Descriptor()
	// questiondoc.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	questiondoc.QuestionIDValidator = questiondocDescQuestionID.Validators[0].(func(string) error)
	// questiondocDescConceptID is the schema descriptor for concept_id field.
	questiondocDescConceptID := questiondocFields[1].Descriptor()
	// questiondoc.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	questiondoc.ConceptIDValidator = questiondocDescConceptID.Validators[0].(func(string) error)
	// questiondocDescPrompt is the schema descriptor for prompt field.
	questiondocDescPrompt := questiondocFields[2].Descriptor()
	// questiondoc.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	questiondoc.PromptValidator = questiondocDescPrompt.Validators[0].(func(string) error)
	// questiondocDescCorrectAnswer is the schema descriptor for correct_answer field.
	questiondocDescCorrectAnswer := questiondocFields[3].Descriptor()
	// questiondoc.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	questiondoc.CorrectAnswerValidator = questiondocDescCorrectAnswer.Validators[0].(func(string) error)
	// questiondocDescDifficulty is the schema descriptor for difficulty field.
	questiondocDescDifficulty := questiondocFields[5].Descriptor()
	// questiondoc.DefaultDifficulty holds the default value on creation for the difficulty field.
	questiondoc.DefaultDifficulty = questiondocDescDifficulty.Default.(int)
	// questiondocDescTemplate is the schema descriptor for template field.
	questiondocDescTemplate := questiondocFields[6].Descriptor()
	// questiondoc.TemplateValidator is a validator for the "template" field. It is called by the builders before save.
	questiondoc.TemplateValidator = questiondocDescTemplate.Validators[0].(func(string) error)
	rewardeventMixin := schema.RewardEvent{}.Mixin()
	rewardeventMixinFields0 := rewardeventMixin[0].Fields()
	_ = rewardeventMixinFields0
	rewardeventFields := schema.RewardEvent{}.Fields()
	_ = rewardeventFields
	// rewardeventDescTimestamp is the schema descriptor for timestamp field.
	rewardeventDescTimestamp := rewardeventMixinFields0[1].Descriptor()
	// rewardevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	rewardevent.DefaultTimestamp = rewardeventDescTimestamp.Default.(func() time.Time)
	// rewardeventDescAwardType is the schema descriptor for award_type field.
	rewardeventDescAwardType := rewardeventFields[0].Descriptor()
	// rewardevent.AwardTypeValidator is a validator for the "award_type" field. It is called by the builders before save.
	rewardevent.AwardTypeValidator = rewardeventDescAwardType.Validators[0].(func(string) error)
	// rewardeventDescRarity is the schema descriptor for rarity field.
	rewardeventDescRarity := rewardeventFields[1].Descriptor()
	// rewardevent.RarityValidator is a validator for the "rarity" field. It is called by the builders before save.
	rewardevent.RarityValidator = rewardeventDescRarity.Validators[0].(func(string) error)
	// rewardeventDescSessionID is the schema descriptor for session_id field.
	rewardeventDescSessionID := rewardeventFields[2].Descriptor()
	// rewardevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	rewardevent.SessionIDValidator = rewardeventDescSessionID.Validators[0].(func(string) error)
	// rewardeventDescConceptID is the schema descriptor for concept_id field.
	rewardeventDescConceptID := rewardeventFields[3].Descriptor()
	// rewardevent.DefaultConceptID holds the default value on creation for the concept_id field.
	rewardevent.DefaultConceptID = rewardeventDescConceptID.Default.(string)
	// rewardeventDescReason is the schema descriptor for reason field.
	rewardeventDescReason := rewardeventFields[4].Descriptor()
	// rewardevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	rewardevent.ReasonValidator = rewardeventDescReason.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescUserID is the schema descriptor for user_id field.
	snapshotDescUserID := snapshotFields[0].Descriptor()
	// snapshot.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	snapshot.UserIDValidator = snapshotDescUserID.Validators[0].(func(string) error)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[2].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	telemetryeventMixin := schema.TelemetryEvent{}.Mixin()
	telemetryeventMixinFields0 := telemetryeventMixin[0].Fields()
	_ = telemetryeventMixinFields0
	telemetryeventFields := schema.TelemetryEvent{}.Fields()
	_ = telemetryeventFields
	// telemetryeventDescTimestamp is the schema descriptor for timestamp field.
	telemetryeventDescTimestamp := telemetryeventMixinFields0[1].Descriptor()
	// telemetryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	telemetryevent.DefaultTimestamp = telemetryeventDescTimestamp.Default.(func() time.Time)
	// telemetryeventDescSessionID is the schema descriptor for session_id field.
	telemetryeventDescSessionID := telemetryeventFields[0].Descriptor()
	// telemetryevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	telemetryevent.SessionIDValidator = telemetryeventDescSessionID.Validators[0].(func(string) error)
	// telemetryeventDescQuestionID is the schema descriptor for question_id field.
	telemetryeventDescQuestionID := telemetryeventFields[1].Descriptor()
	// telemetryevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	telemetryevent.QuestionIDValidator = telemetryeventDescQuestionID.Validators[0].(func(string) error)
	// telemetryeventDescStudentAnswer is the schema descriptor for student_answer field.
	telemetryeventDescStudentAnswer := telemetryeventFields[2].Descriptor()
	// telemetryevent.StudentAnswerValidator is a validator for the "student_answer" field. It is called by the builders before save.
	telemetryevent.StudentAnswerValidator = telemetryeventDescStudentAnswer.Validators[0].(func(string) error)
	// telemetryeventDescCorrectAnswer is the schema descriptor for correct_answer field.
	telemetryeventDescCorrectAnswer := telemetryeventFields[3].Descriptor()
	// telemetryevent.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	telemetryevent.CorrectAnswerValidator = telemetryeventDescCorrectAnswer.Validators[0].(func(string) error)
	// telemetryeventDescSpeedRating is the schema descriptor for speed_rating field.
	telemetryeventDescSpeedRating := telemetryeventFields[6].Descriptor()
	// telemetryevent.SpeedRatingValidator is a validator for the "speed_rating" field. It is called by the builders before save.
	telemetryevent.SpeedRatingValidator = telemetryeventDescSpeedRating.Validators[0].(func(string) error)
	// telemetryeventDescAtomID is the schema descriptor for atom_id field.
	telemetryeventDescAtomID := telemetryeventFields[12].Descriptor()
	// telemetryevent.AtomIDValidator is a validator for the "atom_id" field. It is called by the builders before save.
	telemetryevent.AtomIDValidator = telemetryeventDescAtomID.Validators[0].(func(string) error)
	validationeventMixin := schema.ValidationEvent{}.Mixin()
	validationeventMixinFields0 := validationeventMixin[0].Fields()
	_ = validationeventMixinFields0
	validationeventFields := schema.ValidationEvent{}.Fields()
	_ = validationeventFields
	// validationeventDescTimestamp is the schema descriptor for timestamp field.
	validationeventDescTimestamp := validationeventMixinFields0[1].Descriptor()
	// validationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	validationevent.DefaultTimestamp = validationeventDescTimestamp.Default.(func() time.Time)
	// validationeventDescQuestionID is the schema descriptor for question_id field.
	validationeventDescQuestionID := validationeventFields[0].Descriptor()
	// validationevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	validationevent.QuestionIDValidator = validationeventDescQuestionID.Validators[0].(func(string) error)
	// validationeventDescStatus is the schema descriptor for status field.
	validationeventDescStatus := validationeventFields[2].Descriptor()
	// validationevent.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	validationevent.StatusValidator = validationeventDescStatus.Validators[0].(func(string) error)
	// validationeventDescErrorCount is the schema descriptor for error_count field.
	validationeventDescErrorCount := validationeventFields[3].Descriptor()
	// validationevent.DefaultErrorCount holds the default value on creation for the error_count field.
	validationevent.DefaultErrorCount = validationeventDescErrorCount.Default.(int)
	// validationeventDescWarningCount is the schema descriptor for warning_count field.
	validationeventDescWarningCount := validationeventFields[4].Descriptor()
	// validationevent.DefaultWarningCount holds the default value on creation for the warning_count field.
	validationevent.DefaultWarningCount = validationeventDescWarningCount.Default.(int)
}
