package mastery

// SpeedRating classifies how long the learner thought before answering.
type SpeedRating string

const (
	SpeedSprint SpeedRating = "SPRINT"
	SpeedSteady SpeedRating = "STEADY"
	SpeedDeep   SpeedRating = "DEEP"
)

// AllSpeedRatings returns the closed set of ratings.
func AllSpeedRatings() []SpeedRating {
	return []SpeedRating{SpeedSprint, SpeedSteady, SpeedDeep}
}

// SpeedThresholds are the boundaries used to classify thinking time.
// They are tunables, not invariants; the defaults match the shipped values.
type SpeedThresholds struct {
	// SprintMs: thinking time below this is SPRINT in either mode.
	SprintMs int

	// SteadyMs: diagnostic-mode STEADY/DEEP boundary.
	SteadyMs int

	// PracticeSteadyFactorMs is multiplied by question difficulty (1-5) to
	// get the practice-mode STEADY/DEEP boundary.
	PracticeSteadyFactorMs int
}

// DefaultSpeedThresholds returns the shipped boundaries.
func DefaultSpeedThresholds() SpeedThresholds {
	return SpeedThresholds{
		SprintMs:               3000,
		SteadyMs:               15000,
		PracticeSteadyFactorMs: 8000,
	}
}

// ClassifySpeed rates a thinking time for the given mode. Difficulty scales
// the practice-mode STEADY boundary and is ignored in diagnostic mode.
// There is no upper bound on DEEP here; the validation schema tier owns the
// sanity ceiling.
func (t SpeedThresholds) ClassifySpeed(thinkingMs int, mode Mode, difficulty int) SpeedRating {
	if thinkingMs < t.SprintMs {
		return SpeedSprint
	}

	steady := t.SteadyMs
	if mode == ModePractice {
		if difficulty < 1 {
			difficulty = 1
		}
		steady = difficulty * t.PracticeSteadyFactorMs
	}
	if thinkingMs < steady {
		return SpeedSteady
	}
	return SpeedDeep
}
