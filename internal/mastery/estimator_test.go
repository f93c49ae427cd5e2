package mastery

import (
	"math"
	"testing"
)

const epsilon = 0.0001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestUpdate_CorrectFirstAttempt(t *testing.T) {
	got := Update(0.5, Outcome{Correct: true}, ModeDiagnostic)
	if !almostEqual(got, 0.60) {
		t.Errorf("got %f, want 0.60", got)
	}
}

func TestUpdate_MissDiagnostic(t *testing.T) {
	got := Update(0.5, Outcome{}, ModeDiagnostic)
	if !almostEqual(got, 0.40) {
		t.Errorf("got %f, want 0.40", got)
	}
}

func TestUpdate_MissPractice(t *testing.T) {
	got := Update(0.5, Outcome{}, ModePractice)
	if !almostEqual(got, 0.45) {
		t.Errorf("got %f, want 0.45", got)
	}
}

func TestUpdate_FastRecovery(t *testing.T) {
	got := Update(0.5, Outcome{Recovered: true, RecoveryVelocity: 0.7}, ModeDiagnostic)
	if !almostEqual(got, 0.58) {
		t.Errorf("got %f, want 0.58", got)
	}
}

func TestUpdate_SlowRecovery(t *testing.T) {
	got := Update(0.5, Outcome{Recovered: true, RecoveryVelocity: 0.5}, ModeDiagnostic)
	if !almostEqual(got, 0.53) {
		t.Errorf("velocity at threshold must be slow repair: got %f, want 0.53", got)
	}
}

func TestUpdate_ClampCeiling(t *testing.T) {
	got := Update(0.95, Outcome{Correct: true}, ModePractice)
	if !almostEqual(got, ScoreCeil) {
		t.Errorf("got %f, want ceiling %f", got, ScoreCeil)
	}
}

func TestUpdate_MissFromHighScore(t *testing.T) {
	// 0.95 − 0.10 = 0.85: a normal move, not a clamp.
	got := Update(0.95, Outcome{}, ModeDiagnostic)
	if !almostEqual(got, 0.85) {
		t.Errorf("got %f, want 0.85", got)
	}
}

func TestUpdate_ClampFloor(t *testing.T) {
	got := Update(0.12, Outcome{}, ModeDiagnostic)
	if !almostEqual(got, ScoreFloor) {
		t.Errorf("got %f, want floor %f", got, ScoreFloor)
	}
}

func TestUpdate_ScoreStaysInRangeForAllSequences(t *testing.T) {
	outcomes := []Outcome{
		{Correct: true},
		{},
		{Recovered: true, RecoveryVelocity: 0.9},
		{Recovered: true, RecoveryVelocity: 0.1},
	}
	for _, mode := range []Mode{ModeDiagnostic, ModePractice} {
		score := PriorScore
		// Cycle through outcomes enough times to hit both clamps.
		for i := 0; i < 200; i++ {
			score = Update(score, outcomes[i%len(outcomes)], mode)
			if score < ScoreFloor || score > ScoreCeil {
				t.Fatalf("score %f escaped [%f, %f] at step %d", score, ScoreFloor, ScoreCeil, i)
			}
		}
	}
}

func TestRecoveryVelocity(t *testing.T) {
	cases := []struct {
		name       string
		initialMs  int
		recoveryMs int
		want       float64
	}{
		{"faster follow-up", 10000, 3000, 0.7},
		{"equal time", 8000, 8000, 0.0},
		{"slower follow-up clamps to zero", 5000, 9000, 0.0},
		{"instant follow-up", 4000, 0, 1.0},
		{"zero initial time", 0, 2000, 0.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RecoveryVelocity(tc.initialMs, tc.recoveryMs)
			if !almostEqual(got, tc.want) {
				t.Errorf("got %f, want %f", got, tc.want)
			}
		})
	}
}

func TestClassifyBehavior(t *testing.T) {
	cases := []struct {
		name    string
		outcome Outcome
		want    Behavior
	}{
		{"correct", Outcome{Correct: true}, BehaviorFirstTry},
		{"fast recovery", Outcome{Recovered: true, RecoveryVelocity: 0.8}, BehaviorLatentKnowledge},
		{"slow recovery", Outcome{Recovered: true, RecoveryVelocity: 0.3}, BehaviorSlowRepair},
		{"miss", Outcome{}, BehaviorMiss},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyBehavior(tc.outcome); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
