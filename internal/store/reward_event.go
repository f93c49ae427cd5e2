package store

import (
	"context"
	"fmt"

	"github.com/abhisek/mathquest/ent"
	"github.com/abhisek/mathquest/ent/rewardevent"
)

// rewardRepo implements RewardRepo over the ent client.
type rewardRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *rewardRepo) AppendReward(ctx context.Context, data RewardEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.RewardEvent.Create().
		SetSequence(seqNum).
		SetAwardType(data.AwardType).
		SetRarity(data.Rarity).
		SetSessionID(data.SessionID).
		SetReason(data.Reason)
	if data.ConceptID != "" {
		builder = builder.SetConceptID(data.ConceptID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save reward event: %w", err)
	}
	return nil
}

func (r *rewardRepo) Counts(ctx context.Context) (map[string]int, int, error) {
	var rows []struct {
		AwardType string `json:"award_type"`
		Count     int    `json:"count"`
	}
	err := r.client.RewardEvent.Query().
		GroupBy(rewardevent.FieldAwardType).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("count rewards: %w", err)
	}

	counts := make(map[string]int, len(rows))
	total := 0
	for _, row := range rows {
		counts[row.AwardType] = row.Count
		total += row.Count
	}
	return counts, total, nil
}
