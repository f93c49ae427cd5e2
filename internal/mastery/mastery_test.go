package mastery

import (
	"testing"

	"github.com/abhisek/mathquest/internal/store"
)

func TestStore_GetCreatesAtPrior(t *testing.T) {
	s := NewStore()
	cm := s.Get("fractions.compare")
	if !almostEqual(cm.Score, PriorScore) {
		t.Errorf("new concept score = %f, want %f", cm.Score, PriorScore)
	}
	if !s.Seen("fractions.compare") {
		t.Error("concept must be marked seen after Get")
	}
	if s.Seen("never.touched") {
		t.Error("untouched concept must not be seen")
	}
}

func TestStore_SetScoreClamps(t *testing.T) {
	s := NewStore()
	s.SetScore("a", 1.5)
	if score, _ := s.Score("a"); !almostEqual(score, ScoreCeil) {
		t.Errorf("score = %f, want ceiling", score)
	}
	s.SetScore("a", -3)
	if score, _ := s.Score("a"); !almostEqual(score, ScoreFloor) {
		t.Errorf("score = %f, want floor", score)
	}
}

func TestStore_MeanScore(t *testing.T) {
	s := NewStore()
	s.SetScore("a", 0.9)
	s.SetScore("b", 0.3)

	if got := s.MeanScore([]string{"a", "b"}); !almostEqual(got, 0.6) {
		t.Errorf("mean = %f, want 0.6", got)
	}
	// Unseen concepts count at the prior.
	if got := s.MeanScore([]string{"a", "unseen"}); !almostEqual(got, 0.7) {
		t.Errorf("mean with unseen = %f, want 0.7", got)
	}
	if got := s.MeanScore(nil); got != 0 {
		t.Errorf("mean of nothing = %f, want 0", got)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewStore()
	s.SetScore("a", 0.72)
	s.SetScore("b", 0.31)

	restored := NewStoreFromSnapshot(s.SnapshotData())
	for _, id := range []string{"a", "b"} {
		want, _ := s.Score(id)
		got, ok := restored.Score(id)
		if !ok || !almostEqual(got, want) {
			t.Errorf("restored %q = %f, want %f", id, got, want)
		}
	}
}

func TestNewStoreFromSnapshot_ClampsCorruptScores(t *testing.T) {
	data := &store.MasterySnapshotData{
		Concepts: map[string]float64{"a": 1.7, "b": -0.2},
	}
	s := NewStoreFromSnapshot(data)
	if score, _ := s.Score("a"); !almostEqual(score, ScoreCeil) {
		t.Errorf("a = %f, want ceiling", score)
	}
	if score, _ := s.Score("b"); !almostEqual(score, ScoreFloor) {
		t.Errorf("b = %f, want floor", score)
	}
}

func TestNewStoreFromSnapshot_Nil(t *testing.T) {
	s := NewStoreFromSnapshot(nil)
	if len(s.All()) != 0 {
		t.Error("nil snapshot must yield an empty store")
	}
}
