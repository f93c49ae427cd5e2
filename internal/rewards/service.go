package rewards

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/mathquest/internal/store"
)

// masteredScore is the mastery a concept must reach to earn the award.
const masteredScore = 0.90

// Service computes awards and persists them as events. A nil repo keeps
// awards in memory only.
type Service struct {
	repo store.RewardRepo
	now  func() time.Time

	// SessionAwards accumulates awards earned during the current session.
	SessionAwards []Award

	mastered map[string]struct{}
}

func NewService(repo store.RewardRepo) *Service {
	return &Service{
		repo:     repo,
		now:      time.Now,
		mastered: make(map[string]struct{}),
	}
}

// ResetSession clears the per-session accumulators. Call at session start.
func (s *Service) ResetSession() {
	s.SessionAwards = nil
	s.mastered = make(map[string]struct{})
}

// OnStreak awards a streak milestone. Returns nil for non-milestone
// lengths.
func (s *Service) OnStreak(ctx context.Context, sessionID string, length int) *Award {
	if !isStreakMilestone(length) {
		return nil
	}
	return s.grant(ctx, Award{
		Type:      AwardStreak,
		Rarity:    StreakRarity(length),
		SessionID: sessionID,
		Reason:    fmt.Sprintf("%d correct in a row!", length),
	})
}

// OnHurdleCleared awards the boss-defeated achievement for a misconception
// the learner just shook off.
func (s *Service) OnHurdleCleared(ctx context.Context, sessionID, tag string) *Award {
	return s.grant(ctx, Award{
		Type:      AwardHurdle,
		Rarity:    RarityEpic,
		SessionID: sessionID,
		Reason:    fmt.Sprintf("Defeated %s", tag),
	})
}

// OnMasteryChange awards a mastery gem the first time a concept crosses
// the mastered threshold this session. Returns nil below the threshold or
// on a repeat crossing.
func (s *Service) OnMasteryChange(ctx context.Context, sessionID, conceptID string, score float64) *Award {
	if score < masteredScore {
		return nil
	}
	if _, done := s.mastered[conceptID]; done {
		return nil
	}
	s.mastered[conceptID] = struct{}{}
	return s.grant(ctx, Award{
		Type:      AwardMastery,
		Rarity:    RarityRare,
		ConceptID: conceptID,
		SessionID: sessionID,
		Reason:    fmt.Sprintf("Mastered %s", conceptID),
	})
}

// OnSessionComplete awards the end-of-session trophy, tiered by accuracy.
func (s *Service) OnSessionComplete(ctx context.Context, sessionID string, accuracy float64) *Award {
	return s.grant(ctx, Award{
		Type:      AwardSession,
		Rarity:    SessionRarity(accuracy),
		SessionID: sessionID,
		Reason:    fmt.Sprintf("Session complete (%.0f%% accuracy)", accuracy*100),
	})
}

// Counts returns lifetime award counts by type and the overall total.
func (s *Service) Counts(ctx context.Context) (map[string]int, int, error) {
	if s.repo == nil {
		return nil, 0, nil
	}
	return s.repo.Counts(ctx)
}

func (s *Service) grant(ctx context.Context, award Award) *Award {
	award.AwardedAt = s.now()
	if s.repo != nil {
		// Persistence failure loses the history entry, not the award.
		_ = s.repo.AppendReward(ctx, store.RewardEventData{
			AwardType: string(award.Type),
			Rarity:    string(award.Rarity),
			SessionID: award.SessionID,
			ConceptID: award.ConceptID,
			Reason:    award.Reason,
		})
	}
	s.SessionAwards = append(s.SessionAwards, award)
	return &award
}
