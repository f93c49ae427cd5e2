package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/mathquest/internal/hurdle"
	"github.com/abhisek/mathquest/internal/mastery"
	"github.com/abhisek/mathquest/internal/questionbank"
	"github.com/abhisek/mathquest/internal/store"
)

// learnerState is the in-memory working set rebuilt from the latest
// snapshot at command start.
type learnerState struct {
	mastery *mastery.Store
	hurdles *hurdle.Tracker
}

func loadLearnerState(ctx context.Context, st *store.Store, userID string, clearStreak int) (*learnerState, error) {
	snap, err := st.SnapshotRepo().Latest(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	state := &learnerState{
		mastery: mastery.NewStore(),
		hurdles: hurdle.NewTrackerWithStreak(clearStreak),
	}
	if snap != nil {
		state.mastery = mastery.NewStoreFromSnapshot(snap.Data.Mastery)
		state.hurdles = hurdle.NewTrackerFromSnapshot(snap.Data.Hurdles, clearStreak)
	}
	return state, nil
}

// loadQuestions reads the stored bank, falling back to the built-in seed
// set when the bank is empty (fresh database, reset not run yet).
func loadQuestions(ctx context.Context, st *store.Store) ([]*questionbank.Question, error) {
	qs, err := st.QuestionBank().FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(qs) == 0 {
		qs = questionbank.SeedQuestions()
	}

	out := make([]*questionbank.Question, len(qs))
	for i := range qs {
		out[i] = &qs[i]
	}
	return out, nil
}
