package rewards

import (
	"context"
	"testing"

	"github.com/abhisek/mathquest/internal/store"
)

// mockRewardRepo implements store.RewardRepo for service tests.
type mockRewardRepo struct {
	events []store.RewardEventData
	counts map[string]int
	total  int
}

func (m *mockRewardRepo) AppendReward(_ context.Context, data store.RewardEventData) error {
	m.events = append(m.events, data)
	return nil
}

func (m *mockRewardRepo) Counts(_ context.Context) (map[string]int, int, error) {
	return m.counts, m.total, nil
}

func TestOnStreakMilestonesOnly(t *testing.T) {
	repo := &mockRewardRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	if award := svc.OnStreak(ctx, "sess", 4); award != nil {
		t.Errorf("streak of 4 earned %+v", award)
	}
	award := svc.OnStreak(ctx, "sess", 5)
	if award == nil {
		t.Fatal("streak of 5 earned nothing")
	}
	if award.Type != AwardStreak || award.Rarity != RarityCommon {
		t.Errorf("award = %+v, want common streak", award)
	}

	award = svc.OnStreak(ctx, "sess", 20)
	if award == nil || award.Rarity != RarityLegendary {
		t.Errorf("streak of 20 award = %+v, want legendary", award)
	}

	if len(repo.events) != 2 {
		t.Errorf("persisted %d events, want 2", len(repo.events))
	}
}

func TestOnHurdleCleared(t *testing.T) {
	svc := NewService(&mockRewardRepo{})
	award := svc.OnHurdleCleared(context.Background(), "sess", "SIGN_IGNORANCE")
	if award == nil {
		t.Fatal("cleared hurdle earned nothing")
	}
	if award.Type != AwardHurdle || award.Rarity != RarityEpic {
		t.Errorf("award = %+v, want epic hurdle", award)
	}
}

func TestOnMasteryChangeOncePerConcept(t *testing.T) {
	repo := &mockRewardRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	if award := svc.OnMasteryChange(ctx, "sess", "frac.add", 0.85); award != nil {
		t.Errorf("score 0.85 earned %+v", award)
	}
	if award := svc.OnMasteryChange(ctx, "sess", "frac.add", 0.92); award == nil {
		t.Fatal("crossing 0.90 earned nothing")
	}
	if award := svc.OnMasteryChange(ctx, "sess", "frac.add", 0.95); award != nil {
		t.Errorf("repeat crossing earned %+v", award)
	}
	if len(repo.events) != 1 {
		t.Errorf("persisted %d events, want 1", len(repo.events))
	}
	if repo.events[0].ConceptID != "frac.add" {
		t.Errorf("event concept = %q", repo.events[0].ConceptID)
	}
}

func TestOnSessionComplete(t *testing.T) {
	svc := NewService(nil) // nil repo keeps awards in memory
	award := svc.OnSessionComplete(context.Background(), "sess", 0.8)
	if award == nil || award.Rarity != RarityEpic {
		t.Errorf("award = %+v, want epic session", award)
	}
	if len(svc.SessionAwards) != 1 {
		t.Errorf("session accumulator holds %d awards, want 1", len(svc.SessionAwards))
	}
}

func TestResetSession(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()
	svc.OnMasteryChange(ctx, "sess", "frac.add", 0.95)
	svc.ResetSession()

	if len(svc.SessionAwards) != 0 {
		t.Error("accumulator not cleared")
	}
	// A new session may re-celebrate the same concept.
	if award := svc.OnMasteryChange(ctx, "sess-2", "frac.add", 0.95); award == nil {
		t.Error("mastery award suppressed across sessions")
	}
}
