package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathquest/internal/insight"
	"github.com/abhisek/mathquest/internal/llm"
	"github.com/abhisek/mathquest/internal/logger"
	"github.com/abhisek/mathquest/internal/mastery"
	"github.com/abhisek/mathquest/internal/mission"
	"github.com/abhisek/mathquest/internal/questionbank"
	"github.com/abhisek/mathquest/internal/rewards"
	"github.com/abhisek/mathquest/internal/session"
	"github.com/abhisek/mathquest/internal/telemetry"
	"github.com/abhisek/mathquest/internal/validation"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless session with a simulated learner",
	Long: "Assembles a mission for the current learner state, answers it with a\n" +
		"simulated student whose accuracy tracks stored mastery, and runs every\n" +
		"emitted telemetry record through the validation pipeline.",
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().String("mode", "practice", "Session mode: practice or diagnostic")
	simulateCmd.Flags().Int64("seed", 0, "Random seed (0 = time-based)")
	simulateCmd.Flags().Bool("extended", false, "Use the 14-slot phased mission")
	simulateCmd.Flags().Bool("llm", false, "Enable LLM intervention drafting (needs an API key)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	log, err := logger.New("dev")
	if err != nil {
		return err
	}
	defer log.Sync()

	modeFlag, _ := cmd.Flags().GetString("mode")
	mode, err := parseMode(modeFlag)
	if err != nil {
		return err
	}
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
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

	events, err := st.EventRepo()
	if err != nil {
		return err
	}
	rewardRepo, err := st.RewardRepo()
	if err != nil {
		return err
	}

	var provider llm.Provider
	if useLLM, _ := cmd.Flags().GetBool("llm"); useLLM {
		cfg := llm.ConfigFromEnv()
		if cfg.Validate() != nil {
			if discovered, ok := llm.DiscoverConfig(); ok {
				cfg = discovered
			}
		}
		provider, err = llm.NewProvider(ctx, cfg, events, log)
		if err != nil {
			return fmt.Errorf("llm provider: %w", err)
		}
	}

	selector := mission.NewSelector(rng)
	var questions []*questionbank.Question
	if extended {
		slots := selector.SelectSlots(bank, state.mastery, state.hurdles.ActiveHurdles())
		questions = mission.Questions(slots)
		printSlotPlan(cmd, slots)
	} else {
		questions = selector.SelectN(bank, state.mastery, state.hurdles.ActiveHurdles(), tunables.MissionSize)
	}

	thresholds := mastery.SpeedThresholds{
		SprintMs:               tunables.SprintBoundaryMs,
		SteadyMs:               tunables.SteadyBoundaryMs,
		PracticeSteadyFactorMs: tunables.PracticeSteadyFactorMs,
	}
	ctl, err := session.NewController(session.Config{
		Mode:                mode,
		Questions:           questions,
		Mastery:             state.mastery,
		Hurdles:             state.hurdles,
		Speed:               thresholds,
		ConfidenceThreshold: tunables.ConfidenceThreshold,
	})
	if err != nil {
		return err
	}

	pipeline := validation.NewPipeline(thresholds, insight.NewAdvisor(events, provider, log), log)
	awards := rewards.NewService(rewardRepo)
	checkpointer := session.NewCheckpointer(userID, events, st.SnapshotRepo(), log)
	defer checkpointer.Close()

	log.Info("session start",
		"sessionId", ctl.SessionID(), "mode", mode.String(),
		"questions", len(questions), "seed", seed)

	student := &simulatedStudent{rng: rng}
	streak := 0
	for ctl.Status() == session.StatusActive {
		q := ctl.Current()
		ev := student.answer(q, state.mastery)
		hurdlesBefore := state.hurdles.ActiveHurdles()

		rec, err := ctl.SubmitAnswer(ev)
		if err != nil {
			return err
		}
		checkpointer.Enqueue(ctl.SessionID(), rec, state.mastery, state.hurdles)

		report := pipeline.Audit(ctx, rec)
		if err := events.AppendValidationReport(ctx, report.Data()); err != nil {
			log.Warn("save validation report", "questionId", rec.QuestionID, "error", err)
		}
		printAnswer(cmd, q, rec, report)

		if rec.IsCorrect {
			streak++
			awards.OnStreak(ctx, ctl.SessionID(), streak)
		} else {
			streak = 0
		}
		for _, tag := range clearedHurdles(hurdlesBefore, state.hurdles.ActiveHurdles()) {
			awards.OnHurdleCleared(ctx, ctl.SessionID(), tag)
		}
		awards.OnMasteryChange(ctx, ctl.SessionID(), q.ConceptID, rec.MasteryAfter)
	}

	summary := ctl.Summarize()
	awards.OnSessionComplete(ctx, ctl.SessionID(), summary.Accuracy)
	printSummary(cmd, summary, awards.SessionAwards)
	return nil
}

func parseMode(s string) (mastery.Mode, error) {
	switch s {
	case "practice":
		return mastery.ModePractice, nil
	case "diagnostic":
		return mastery.ModeDiagnostic, nil
	default:
		return mastery.ModeDiagnostic, fmt.Errorf("unknown mode %q (want practice or diagnostic)", s)
	}
}

// clearedHurdles returns tags active before the answer but not after.
func clearedHurdles(before, after []string) []string {
	still := make(map[string]struct{}, len(after))
	for _, t := range after {
		still[t] = struct{}{}
	}
	var cleared []string
	for _, t := range before {
		if _, ok := still[t]; !ok {
			cleared = append(cleared, t)
		}
	}
	return cleared
}

// simulatedStudent answers correctly with probability equal to current
// mastery, picks a random tagged distractor when wrong, and recovers on
// half of its misses.
type simulatedStudent struct {
	rng *rand.Rand
}

func (s *simulatedStudent) answer(q *questionbank.Question, m *mastery.Store) session.ResponseEvent {
	score := m.Get(q.ConceptID).Score
	thinking := 1500 + s.rng.Intn(q.Difficulty*6000+1000)

	ev := session.ResponseEvent{
		QuestionID:     q.ID,
		ConceptID:      q.ConceptID,
		CorrectChoice:  q.CorrectAnswer,
		ThinkingTimeMs: thinking,
	}

	if s.rng.Float64() < score {
		ev.StudentChoice = q.CorrectAnswer
		ev.IsCorrect = true
		return ev
	}

	if len(q.Distractors) > 0 {
		d := q.Distractors[s.rng.Intn(len(q.Distractors))]
		ev.StudentChoice = d.Option
		ev.MisconceptionTag = d.MisconceptionTag
	} else {
		ev.StudentChoice = "?"
	}

	if s.rng.Float64() < 0.5 {
		ev.IsCorrect = true
		ev.IsRecovered = true
		ev.RecoveryTimeMs = 500 + s.rng.Intn(thinking)
	}
	return ev
}

func printSlotPlan(cmd *cobra.Command, slots []mission.Slot) {
	cmd.Println("Mission plan:")
	for _, sl := range slots {
		cmd.Printf("  %2d. [%-15s] %s (%s)\n", sl.SlotIndex+1, sl.Phase, sl.Question.ID, sl.Intent)
	}
	cmd.Println()
}

func printAnswer(cmd *cobra.Command, q *questionbank.Question, rec *telemetry.Record, report *validation.Report) {
	mark := "MISS"
	if rec.IsCorrect {
		mark = "OK"
		if rec.IsRecovered {
			mark = "RECOVERED"
		}
	}
	cmd.Printf("%-9s %s  %s  %5dms  mastery %.2f -> %.2f  audit %s",
		mark, q.ID, rec.SpeedRating, rec.TimeSpent, rec.MasteryBefore, rec.MasteryAfter, report.Status)
	if rec.DiagnosticTag != "" {
		cmd.Printf("  [%s]", rec.DiagnosticTag)
	}
	cmd.Println()
	for _, is := range report.Issues {
		if is.Severity == validation.SeverityInfo {
			continue
		}
		cmd.Printf("          %s/%s %s: %s\n", is.Tier, is.Severity, is.Code, is.Message)
	}
}

func printSummary(cmd *cobra.Command, s session.Summary, earned []rewards.Award) {
	cmd.Println()
	cmd.Printf("Session %s (%s) finished: %s\n", s.SessionID, s.Mode, s.Reason)
	cmd.Printf("  answered %d, correct %d (%.0f%%), recovered %d, best streak %d\n",
		s.Answered, s.Correct, s.Accuracy*100, s.Recovered, s.BestStreak)
	for b, n := range s.Behaviors {
		cmd.Printf("  %-24s %d\n", b, n)
	}
	for id, score := range s.ConceptScores {
		cmd.Printf("  %-24s %.2f\n", id, score)
	}
	if len(earned) > 0 {
		cmd.Println("Awards:")
		for _, a := range earned {
			cmd.Printf("  %s %s (%s)\n", a.Type.Icon(), a.Type.DisplayName(), a.Rarity.DisplayName())
		}
	}
}
