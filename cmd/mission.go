package cmd

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathquest/internal/mission"
)

var missionCmd = &cobra.Command{
	Use:   "mission",
	Short: "Preview the next mission for the current learner state",
	RunE:  runMission,
}

func init() {
	missionCmd.Flags().Int64("seed", 0, "Random seed (0 = time-based)")
	missionCmd.Flags().Bool("extended", false, "Show the 14-slot phased plan")
}

func runMission(cmd *cobra.Command, args []string) error {
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	extended, _ := cmd.Flags().GetBool("extended")
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
	bank, err := loadQuestions(ctx, st)
	if err != nil {
		return err
	}

	hurdles := state.hurdles.ActiveHurdles()
	selector := mission.NewSelector(rand.New(rand.NewSource(seed)))

	if extended {
		slots := selector.SelectSlots(bank, state.mastery, hurdles)
		printSlotPlan(cmd, slots)
		return nil
	}

	questions := selector.SelectN(bank, state.mastery, hurdles, tunables.MissionSize)
	cmd.Printf("Mission (%d questions):\n", len(questions))
	for i, q := range questions {
		score := state.mastery.Get(q.ConceptID).Score
		cmd.Printf("  %2d. %-12s %-24s d%d mastery %.2f  %s\n",
			i+1, q.ID, q.ConceptID, q.Difficulty, score, q.Template)
	}
	if len(hurdles) > 0 {
		cmd.Println("Active hurdles:")
		for _, tag := range hurdles {
			cmd.Printf("  %s\n", tag)
		}
	}
	return nil
}
