package insight

import (
	"fmt"

	"github.com/abhisek/mathquest/internal/mastery"
	"github.com/abhisek/mathquest/internal/telemetry"
	"github.com/abhisek/mathquest/internal/validation"
)

// Rule tunables. All findings are INFO severity.
const (
	repeatedHurdleFloor = 3
	trendMinRecords     = 5
	sprintHabitShare    = 0.6
	strongRecoveryFloor = 3
)

// runRules evaluates every aggregation rule against the current record and
// the recent window (newest first, current record not included).
func runRules(rec *telemetry.Record, recent []*telemetry.Record) []validation.Issue {
	var issues []validation.Issue
	add := func(field, code, msg string) {
		issues = append(issues, validation.Issue{
			Field:    field,
			Tier:     validation.TierInsight,
			Severity: validation.SeverityInfo,
			Code:     code,
			Message:  msg,
		})
	}

	// The same misconception keeps coming back.
	if !rec.IsCorrect && rec.DiagnosticTag != "" && rec.DiagnosticTag != telemetry.TagUnclassified {
		misses := 1
		for _, r := range recent {
			if !r.IsCorrect && r.DiagnosticTag == rec.DiagnosticTag {
				misses++
			}
		}
		if misses >= repeatedHurdleFloor {
			add("diagnosticTag", "REPEATED_HURDLE",
				fmt.Sprintf("%s missed %d times in the recent window; a targeted mini-lesson may help", rec.DiagnosticTag, misses))
		}
	}

	// Mastery on this concept is not moving despite sustained work.
	concept := filterByAtom(recent, rec.AtomID)
	if len(concept) >= trendMinRecords {
		newest := concept[0].MasteryAfter
		oldest := concept[len(concept)-1].MasteryAfter
		if newest <= oldest {
			add("atomId", "STALLED_CONCEPT",
				fmt.Sprintf("mastery of %s is flat over the last %d questions; try a different question template", rec.AtomID, len(concept)))
		}
	}

	// Rushing through everything.
	if len(recent) >= trendMinRecords {
		sprints := 0
		for _, r := range recent {
			if r.SpeedRating == string(mastery.SpeedSprint) {
				sprints++
			}
		}
		if float64(sprints) >= sprintHabitShare*float64(len(recent)) {
			add("speedRating", "SPRINT_HABIT",
				fmt.Sprintf("%d of the last %d answers were SPRINT-speed; consider a slow-down prompt", sprints, len(recent)))
		}
	}

	// Misses, but strong self-correction.
	recoveries, velocitySum := 0, 0.0
	for _, r := range recent {
		if r.IsRecovered && r.RecoveryVelocity != nil {
			recoveries++
			velocitySum += *r.RecoveryVelocity
		}
	}
	if recoveries >= strongRecoveryFloor && velocitySum/float64(recoveries) > mastery.LatentVelocityThreshold {
		add("isRecovered", "STRONG_RECOVERY",
			fmt.Sprintf("%d fast recoveries in the recent window; errors look like slips, not gaps", recoveries))
	}

	return issues
}

func filterByAtom(recs []*telemetry.Record, atomID string) []*telemetry.Record {
	var out []*telemetry.Record
	for _, r := range recs {
		if r.AtomID == atomID {
			out = append(out, r)
		}
	}
	return out
}
