package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathquest/internal/questionbank"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reseed the question bank or wipe learner data",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().Bool("seed-bank", false, "Upsert the built-in question bank")
	resetCmd.Flags().Bool("wipe", false, "Delete all telemetry, snapshots, reports, and rewards")
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) error {
	seedBank, _ := cmd.Flags().GetBool("seed-bank")
	wipe, _ := cmd.Flags().GetBool("wipe")
	if !seedBank && !wipe {
		return fmt.Errorf("nothing to do: pass --seed-bank, --wipe, or both")
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()
	ctx := cmd.Context()

	if wipe {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			cmd.Print("This deletes all learner history. Continue? [y/N] ")
			var answer string
			fmt.Fscanln(cmd.InOrStdin(), &answer)
			if answer != "y" && answer != "Y" {
				cmd.Println("Aborted.")
				return nil
			}
		}

		client := st.Client()
		if _, err := client.TelemetryEvent.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("delete telemetry: %w", err)
		}
		if _, err := client.ValidationEvent.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("delete validation reports: %w", err)
		}
		if _, err := client.RewardEvent.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("delete rewards: %w", err)
		}
		if _, err := client.LLMRequestEvent.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("delete llm events: %w", err)
		}
		if _, err := client.Snapshot.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("delete snapshots: %w", err)
		}
		cmd.Println("Learner data wiped.")
	}

	if seedBank {
		seed := questionbank.SeedQuestions()
		if err := st.SeedQuestions(ctx, seed); err != nil {
			return fmt.Errorf("seed question bank: %w", err)
		}
		cmd.Printf("Seeded %d questions.\n", len(seed))
	}
	return nil
}
