package cmd

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathquest/internal/llm"
	"github.com/abhisek/mathquest/internal/rewards"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show mastery, hurdles, rewards, and LLM usage",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	userID, _ := cmd.Flags().GetString("user")

	tunables, err := loadTunables(cmd)
	if err != nil {
		return err
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	state, err := loadLearnerState(ctx, st, userID, tunables.HurdleClearStreak)
	if err != nil {
		return err
	}

	concepts := state.mastery.All()
	if len(concepts) == 0 {
		cmd.Println("No mastery data yet. Run `mathquest simulate` first.")
	} else {
		ids := make([]string, 0, len(concepts))
		for id := range concepts {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		cmd.Println("Mastery:")
		for _, id := range ids {
			cmd.Printf("  %-24s %s %.2f\n", id, masteryBar(concepts[id].Score), concepts[id].Score)
		}
	}

	if hurdles := state.hurdles.ActiveHurdles(); len(hurdles) > 0 {
		cmd.Println("\nActive hurdles:")
		for _, tag := range hurdles {
			s := state.hurdles.Get(tag)
			cmd.Printf("  %-24s misses %d, streak %d\n", tag, s.MissCount, s.ConsecutiveCorrect)
		}
	}

	rewardRepo, err := st.RewardRepo()
	if err != nil {
		return err
	}
	counts, total, err := rewards.NewService(rewardRepo).Counts(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		cmd.Printf("\nAwards (%d total):\n", total)
		for _, t := range rewards.AllAwardTypes() {
			if n := counts[string(t)]; n > 0 {
				cmd.Printf("  %s %-14s %d\n", t.Icon(), t.DisplayName(), n)
			}
		}
	}

	events, err := st.EventRepo()
	if err != nil {
		return err
	}
	usage, err := events.LLMUsage(ctx)
	if err != nil {
		return err
	}
	if len(usage) > 0 {
		cmd.Println("\nLLM usage:")
		for _, u := range usage {
			cmd.Printf("  %-32s %d requests, %d in / %d out tokens",
				u.Model, u.Requests, u.InputTokens, u.OutputTokens)
			if c := llm.LookupCost(u.Model); c != nil {
				cmd.Printf("  (~$%.4f)", c.Cost(u.InputTokens, u.OutputTokens))
			}
			cmd.Println()
		}
	}
	return nil
}

// masteryBar renders a ten-cell progress bar.
func masteryBar(score float64) string {
	filled := int(score * 10)
	bar := make([]rune, 10)
	for i := range bar {
		if i < filled {
			bar[i] = '█'
		} else {
			bar[i] = '░'
		}
	}
	return string(bar)
}
