package hurdle

import (
	"testing"

	"github.com/abhisek/mathquest/internal/store"
)

func TestOnAnswer_EmptyTagIsNoOp(t *testing.T) {
	tr := NewTracker()
	if s := tr.OnAnswer("", false); s != nil {
		t.Errorf("got %+v, want nil", s)
	}
	if len(tr.ActiveHurdles()) != 0 {
		t.Error("no hurdle should exist")
	}
}

func TestOnAnswer_MissCreatesAndIncrements(t *testing.T) {
	tr := NewTracker()
	s := tr.OnAnswer("SIGN_IGNORANCE", false)
	if s == nil || s.MissCount != 1 {
		t.Fatalf("got %+v, want MissCount 1", s)
	}
	s = tr.OnAnswer("SIGN_IGNORANCE", false)
	if s.MissCount != 2 {
		t.Errorf("MissCount = %d, want 2", s.MissCount)
	}
}

func TestOnAnswer_MissResetsStreak(t *testing.T) {
	tr := NewTracker()
	tr.OnAnswer("SIGN_IGNORANCE", false)
	tr.OnAnswer("SIGN_IGNORANCE", true)
	tr.OnAnswer("SIGN_IGNORANCE", true)
	s := tr.OnAnswer("SIGN_IGNORANCE", false)
	if s.ConsecutiveCorrect != 0 {
		t.Errorf("ConsecutiveCorrect = %d, want 0 after miss", s.ConsecutiveCorrect)
	}
	if s.MissCount != 2 {
		t.Errorf("MissCount = %d, want 2", s.MissCount)
	}
	if s.Active() != true {
		t.Error("two correct then a miss must not clear the hurdle")
	}
}

func TestOnAnswer_ThreeConsecutiveCorrectClears(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < 5; i++ {
		tr.OnAnswer("SIGN_IGNORANCE", false)
	}

	tr.OnAnswer("SIGN_IGNORANCE", true)
	tr.OnAnswer("SIGN_IGNORANCE", true)
	if s := tr.Get("SIGN_IGNORANCE"); !s.Active() {
		t.Fatal("hurdle must not clear at streak 2")
	}

	s := tr.OnAnswer("SIGN_IGNORANCE", true)
	if s.MissCount != 0 || s.ConsecutiveCorrect != 0 {
		t.Errorf("got %+v, want both counters reset", s)
	}
	if len(tr.ActiveHurdles()) != 0 {
		t.Error("cleared hurdle must not be active")
	}
}

func TestOnAnswer_CorrectOnUnknownTag(t *testing.T) {
	tr := NewTracker()
	if s := tr.OnAnswer("NEVER_MISSED", true); s != nil {
		t.Errorf("got %+v, want nil for a tag with no miss history", s)
	}
}

func TestActiveHurdles_SortedAndFiltered(t *testing.T) {
	tr := NewTracker()
	tr.OnAnswer("ZETA", false)
	tr.OnAnswer("ALPHA", false)
	tr.OnAnswer("MID", false)

	// Clear MID.
	for i := 0; i < 3; i++ {
		tr.OnAnswer("MID", true)
	}

	got := tr.ActiveHurdles()
	want := []string{"ALPHA", "ZETA"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	tr := NewTracker()
	tr.OnAnswer("A", false)
	tr.OnAnswer("A", false)
	tr.OnAnswer("A", true)
	tr.OnAnswer("B", false)

	restored := NewTrackerFromSnapshot(tr.SnapshotData(), DefaultClearStreak)
	a := restored.Get("A")
	if a == nil || a.MissCount != 2 || a.ConsecutiveCorrect != 1 {
		t.Errorf("restored A = %+v, want MissCount 2, streak 1", a)
	}

	// The restored streak continues counting toward the clear.
	restored.OnAnswer("A", true)
	s := restored.OnAnswer("A", true)
	if s.Active() {
		t.Error("restored streak plus two correct must clear the hurdle")
	}
}

func TestNewTrackerFromSnapshot_SkipsNegativeMissCount(t *testing.T) {
	data := &store.HurdleSnapshotData{
		Hurdles: map[string]store.HurdleData{"BAD": {MissCount: -1}},
	}
	tr := NewTrackerFromSnapshot(data, 0)
	if tr.Get("BAD") != nil {
		t.Error("negative miss count must be dropped on load")
	}
}
