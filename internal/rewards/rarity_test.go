package rewards

import "testing"

func TestStreakRarity(t *testing.T) {
	tests := []struct {
		length int
		want   Rarity
	}{
		{5, RarityCommon},
		{9, RarityCommon},
		{10, RarityRare},
		{14, RarityRare},
		{15, RarityEpic},
		{19, RarityEpic},
		{20, RarityLegendary},
		{35, RarityLegendary},
	}

	for _, tt := range tests {
		if got := StreakRarity(tt.length); got != tt.want {
			t.Errorf("StreakRarity(%d) = %q, want %q", tt.length, got, tt.want)
		}
	}
}

func TestSessionRarity(t *testing.T) {
	tests := []struct {
		accuracy float64
		want     Rarity
	}{
		{0.0, RarityCommon},
		{0.49, RarityCommon},
		{0.50, RarityRare},
		{0.74, RarityRare},
		{0.75, RarityEpic},
		{0.89, RarityEpic},
		{0.90, RarityLegendary},
		{1.0, RarityLegendary},
	}

	for _, tt := range tests {
		if got := SessionRarity(tt.accuracy); got != tt.want {
			t.Errorf("SessionRarity(%v) = %q, want %q", tt.accuracy, got, tt.want)
		}
	}
}

func TestStreakMilestones(t *testing.T) {
	milestones := map[int]bool{
		1: false, 4: false, 5: true, 6: false,
		10: true, 12: false, 15: true, 20: true, 25: true, 27: false,
	}
	for length, want := range milestones {
		if got := isStreakMilestone(length); got != want {
			t.Errorf("isStreakMilestone(%d) = %v, want %v", length, got, want)
		}
	}
}

func TestNextStreakMilestone(t *testing.T) {
	tests := []struct {
		current, want int
	}{
		{0, 5},
		{4, 5},
		{5, 10},
		{12, 15},
		{20, 25},
		{23, 25},
	}
	for _, tt := range tests {
		if got := NextStreakMilestone(tt.current); got != tt.want {
			t.Errorf("NextStreakMilestone(%d) = %d, want %d", tt.current, got, tt.want)
		}
	}
}
