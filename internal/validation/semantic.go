package validation

import (
	"fmt"

	"github.com/abhisek/mathquest/internal/mastery"
	"github.com/abhisek/mathquest/internal/telemetry"
)

// Semantic-tier tunables. These flag unusual learner behavior, not corrupt
// data, so they never affect the verdict.
const (
	// guessMasteryCeiling: a SPRINT correct answer that still leaves
	// mastery below this looks like a lucky guess.
	guessMasteryCeiling = 0.30

	// hiddenMisconceptionFloor: a miss from above this pre-answer mastery
	// signals false confidence.
	hiddenMisconceptionFloor = 0.80
)

type semanticCheck func(*telemetry.Record, mastery.SpeedThresholds) *Issue

// SemanticTier runs every cross-field plausibility check. Checks are
// additive: each yields at most one issue and none short-circuits another.
func SemanticTier(rec *telemetry.Record, thresholds mastery.SpeedThresholds) []Issue {
	checks := []semanticCheck{
		checkMasteryRiseOnMiss,
		checkLikelyGuess,
		checkUndiagnosedStruggle,
		checkHiddenMisconception,
		checkSpeedTimeMismatch,
	}
	var issues []Issue
	for _, check := range checks {
		if is := check(rec, thresholds); is != nil {
			issues = append(issues, *is)
		}
	}
	return issues
}

// A plain miss must never raise mastery. A recovery carries isCorrect=true,
// so it is exempt by construction.
func checkMasteryRiseOnMiss(rec *telemetry.Record, _ mastery.SpeedThresholds) *Issue {
	if rec.IsCorrect || rec.MasteryAfter <= rec.MasteryBefore {
		return nil
	}
	return &Issue{
		Field:    "masteryAfter",
		Tier:     TierSemantic,
		Severity: SeverityWarning,
		Code:     "MASTERY_RISE_ON_MISS",
		Message: fmt.Sprintf("mastery rose from %.2f to %.2f on an incorrect answer",
			rec.MasteryBefore, rec.MasteryAfter),
	}
}

func checkLikelyGuess(rec *telemetry.Record, _ mastery.SpeedThresholds) *Issue {
	if !rec.IsCorrect || rec.SpeedRating != string(mastery.SpeedSprint) {
		return nil
	}
	if rec.MasteryAfter >= guessMasteryCeiling {
		return nil
	}
	return &Issue{
		Field:    "speedRating",
		Tier:     TierSemantic,
		Severity: SeverityWarning,
		Code:     "LIKELY_GUESS",
		Message: fmt.Sprintf("SPRINT correct answer with resulting mastery %.2f looks like a guess",
			rec.MasteryAfter),
	}
}

func checkUndiagnosedStruggle(rec *telemetry.Record, _ mastery.SpeedThresholds) *Issue {
	if rec.IsCorrect || rec.SpeedRating != string(mastery.SpeedDeep) {
		return nil
	}
	if rec.DiagnosticTag != "" && rec.DiagnosticTag != telemetry.TagUnclassified {
		return nil
	}
	return &Issue{
		Field:    "diagnosticTag",
		Tier:     TierSemantic,
		Severity: SeverityWarning,
		Code:     "UNDIAGNOSED_STRUGGLE",
		Message:  "DEEP incorrect answer carries no misconception tag",
	}
}

// A miss from high mastery signals false confidence, which is worth more
// attention than an ordinary miss.
func checkHiddenMisconception(rec *telemetry.Record, _ mastery.SpeedThresholds) *Issue {
	if rec.IsCorrect || rec.MasteryBefore < hiddenMisconceptionFloor {
		return nil
	}
	return &Issue{
		Field:    "masteryBefore",
		Tier:     TierSemantic,
		Severity: SeverityError,
		Code:     "HIDDEN_MISCONCEPTION",
		Message: fmt.Sprintf("incorrect answer from mastery %.2f suggests a hidden misconception",
			rec.MasteryBefore),
	}
}

// On a non-recovered record timeSpent equals thinking time, so the rating
// and the duration must agree. Recovered records carry follow-up time in
// timeSpent and are skipped.
func checkSpeedTimeMismatch(rec *telemetry.Record, thresholds mastery.SpeedThresholds) *Issue {
	if rec.IsRecovered {
		return nil
	}
	mismatch := false
	switch rec.SpeedRating {
	case string(mastery.SpeedSprint):
		mismatch = rec.TimeSpent >= thresholds.SprintMs
	case string(mastery.SpeedDeep):
		mismatch = rec.TimeSpent < thresholds.SprintMs
	}
	if !mismatch {
		return nil
	}
	return &Issue{
		Field:    "timeSpent",
		Tier:     TierSemantic,
		Severity: SeverityWarning,
		Code:     "SPEED_TIME_MISMATCH",
		Message: fmt.Sprintf("speedRating %s disagrees with timeSpent %dms",
			rec.SpeedRating, rec.TimeSpent),
	}
}
