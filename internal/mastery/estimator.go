package mastery

// Mode distinguishes the session types the estimator serves. Practice
// sessions carry lower stakes per miss than diagnostic ones.
type Mode int

const (
	ModeDiagnostic Mode = iota
	ModePractice
)

func (m Mode) String() string {
	if m == ModePractice {
		return "practice"
	}
	return "diagnostic"
}

// Score deltas applied per answer outcome.
const (
	// CorrectDelta is the reward for a correct first attempt.
	CorrectDelta = 0.10

	// DiagnosticMissPenalty and PracticeMissPenalty are the unrecovered
	// miss penalties per mode.
	DiagnosticMissPenalty = 0.10
	PracticeMissPenalty   = 0.05

	// FastRecoveryDelta rewards a recovery faster than half the original
	// think time: the learner knew it and was momentarily confused.
	FastRecoveryDelta = 0.08

	// SlowRecoveryDelta rewards a slower, effortful repair.
	SlowRecoveryDelta = 0.03

	// LatentVelocityThreshold separates fast from slow recoveries.
	LatentVelocityThreshold = 0.5
)

// Outcome is the estimator's view of a single answer.
type Outcome struct {
	Correct bool

	// Recovered is true when the answer was wrong but the guided follow-up
	// was answered correctly.
	Recovered bool

	// RecoveryVelocity is meaningful only when Recovered is true.
	RecoveryVelocity float64
}

// Update computes the next mastery score from the prior and one outcome.
// Pure: the caller writes the result back into the Store.
func Update(prior float64, o Outcome, mode Mode) float64 {
	var next float64
	switch {
	case o.Correct:
		next = prior + CorrectDelta
	case o.Recovered:
		if o.RecoveryVelocity > LatentVelocityThreshold {
			next = prior + FastRecoveryDelta
		} else {
			next = prior + SlowRecoveryDelta
		}
	default:
		if mode == ModePractice {
			next = prior - PracticeMissPenalty
		} else {
			next = prior - DiagnosticMissPenalty
		}
	}
	return Clamp(next)
}

// RecoveryVelocity normalizes how much faster the follow-up was answered
// than the original attempt. Clamped to [0, 1]; a zero initial time yields 0.
func RecoveryVelocity(initialMs, recoveryMs int) float64 {
	if initialMs <= 0 {
		return 0
	}
	v := float64(initialMs-recoveryMs) / float64(initialMs)
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Behavior labels the learning pattern an answer exhibits.
type Behavior string

const (
	BehaviorFirstTry        Behavior = "first-try"
	BehaviorLatentKnowledge Behavior = "latent-knowledge"
	BehaviorSlowRepair      Behavior = "slow-repair"
	BehaviorMiss            Behavior = "miss"
)

// ClassifyBehavior maps an outcome to its behavior label.
func ClassifyBehavior(o Outcome) Behavior {
	switch {
	case o.Correct:
		return BehaviorFirstTry
	case o.Recovered && o.RecoveryVelocity > LatentVelocityThreshold:
		return BehaviorLatentKnowledge
	case o.Recovered:
		return BehaviorSlowRepair
	default:
		return BehaviorMiss
	}
}
