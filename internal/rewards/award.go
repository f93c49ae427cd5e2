package rewards

import "time"

// AwardType identifies the category of achievement.
type AwardType string

const (
	AwardStreak  AwardType = "streak"
	AwardHurdle  AwardType = "hurdle"
	AwardMastery AwardType = "mastery"
	AwardSession AwardType = "session"
)

// AllAwardTypes returns all award types in display order.
func AllAwardTypes() []AwardType {
	return []AwardType{AwardStreak, AwardHurdle, AwardMastery, AwardSession}
}

// DisplayName returns a human-readable label for the award type.
func (t AwardType) DisplayName() string {
	switch t {
	case AwardStreak:
		return "Streak"
	case AwardHurdle:
		return "Boss Defeated"
	case AwardMastery:
		return "Mastery"
	case AwardSession:
		return "Session"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the award type.
func (t AwardType) Icon() string {
	switch t {
	case AwardStreak:
		return "⚡"
	case AwardHurdle:
		return "⚔️"
	case AwardMastery:
		return "💎"
	case AwardSession:
		return "🏆"
	default:
		return "✦"
	}
}

// Award is a single earned achievement.
type Award struct {
	Type      AwardType
	Rarity    Rarity
	ConceptID string // empty for streak/session awards
	SessionID string
	Reason    string
	AwardedAt time.Time
}

// baseStreakMilestone is the first streak length that earns an award.
const baseStreakMilestone = 5

// isStreakMilestone reports whether a streak length earns an award:
// 5, 10, 15, 20, then every 5 beyond.
func isStreakMilestone(length int) bool {
	return length >= baseStreakMilestone && length%5 == 0
}

// NextStreakMilestone returns the next milestone above the current streak.
func NextStreakMilestone(current int) int {
	if current < baseStreakMilestone {
		return baseStreakMilestone
	}
	return ((current / 5) + 1) * 5
}
