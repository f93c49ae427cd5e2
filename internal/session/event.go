// Package session drives the question-by-question answer loop for
// diagnostic and practice sessions, updating mastery and hurdle state and
// emitting one telemetry record per answered question.
package session

// ResponseEvent is the UI collaborator's report of one submitted answer.
// Immutable; the controller never writes to it.
//
// Correctness is split across two fields. IsCorrect is the final verdict:
// true for a first-try correct answer and for a successful guided follow-up.
// IsRecovered distinguishes the two — when true, the first attempt missed
// and the follow-up landed, so RecoveryTimeMs must carry the follow-up's
// thinking time. A failed follow-up arrives as IsCorrect=false,
// IsRecovered=false; the original miss is all the hurdle needs to see.
type ResponseEvent struct {
	QuestionID    string
	ConceptID     string
	StudentChoice string
	CorrectChoice string

	IsCorrect   bool
	IsRecovered bool

	// MisconceptionTag is the tag on the distractor the student chose.
	// Empty when the answer was correct or the distractor was untagged.
	MisconceptionTag string

	// ThinkingTimeMs is the time from question display to first answer.
	ThinkingTimeMs int

	// RecoveryTimeMs is the time from follow-up display to follow-up
	// answer. Meaningful only when IsRecovered is true.
	RecoveryTimeMs int
}
