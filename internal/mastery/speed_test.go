package mastery

import "testing"

func TestClassifySpeed_Diagnostic(t *testing.T) {
	th := DefaultSpeedThresholds()
	cases := []struct {
		thinkingMs int
		want       SpeedRating
	}{
		{0, SpeedSprint},
		{2999, SpeedSprint},
		{3000, SpeedSteady},
		{14999, SpeedSteady},
		{15000, SpeedDeep},
		{300000, SpeedDeep},
	}
	for _, tc := range cases {
		if got := th.ClassifySpeed(tc.thinkingMs, ModeDiagnostic, 3); got != tc.want {
			t.Errorf("ClassifySpeed(%d) = %q, want %q", tc.thinkingMs, got, tc.want)
		}
	}
}

func TestClassifySpeed_PracticeScalesWithDifficulty(t *testing.T) {
	th := DefaultSpeedThresholds()

	// Difficulty 2 → steady boundary at 16s.
	if got := th.ClassifySpeed(15999, ModePractice, 2); got != SpeedSteady {
		t.Errorf("15999ms at difficulty 2 = %q, want STEADY", got)
	}
	if got := th.ClassifySpeed(16000, ModePractice, 2); got != SpeedDeep {
		t.Errorf("16000ms at difficulty 2 = %q, want DEEP", got)
	}

	// Sprint boundary does not scale.
	if got := th.ClassifySpeed(2000, ModePractice, 5); got != SpeedSprint {
		t.Errorf("2000ms = %q, want SPRINT", got)
	}
}

func TestClassifySpeed_PracticeDifficultyFloor(t *testing.T) {
	th := DefaultSpeedThresholds()
	// Difficulty 0 is treated as 1: steady boundary 8s.
	if got := th.ClassifySpeed(9000, ModePractice, 0); got != SpeedDeep {
		t.Errorf("9000ms at difficulty 0 = %q, want DEEP", got)
	}
}
