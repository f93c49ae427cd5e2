package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathquest/internal/logger"
	"github.com/abhisek/mathquest/internal/mastery"
	"github.com/abhisek/mathquest/internal/telemetry"
	"github.com/abhisek/mathquest/internal/validation"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Re-run the validation pipeline over stored telemetry",
	Long: "Pulls the most recent telemetry records from the database, audits each\n" +
		"through the schema and semantic tiers, and prints every finding. With\n" +
		"--stdin it audits wire-format JSON records piped in, one per line. Use\n" +
		"--save to append fresh validation reports alongside the old ones.",
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().Int("last", 50, "Number of recent records to audit")
	auditCmd.Flags().String("atom", "", "Restrict to one concept ID")
	auditCmd.Flags().Bool("stdin", false, "Read wire-format records from stdin instead of the database")
	auditCmd.Flags().Bool("save", false, "Persist the regenerated reports")
}

func runAudit(cmd *cobra.Command, args []string) error {
	log := logger.Nop()

	lastN, _ := cmd.Flags().GetInt("last")
	atomID, _ := cmd.Flags().GetString("atom")
	fromStdin, _ := cmd.Flags().GetBool("stdin")
	save, _ := cmd.Flags().GetBool("save")

	tunables, err := loadTunables(cmd)
	if err != nil {
		return err
	}
	thresholds := mastery.SpeedThresholds{
		SprintMs:               tunables.SprintBoundaryMs,
		SteadyMs:               tunables.SteadyBoundaryMs,
		PracticeSteadyFactorMs: tunables.PracticeSteadyFactorMs,
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	events, err := st.EventRepo()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	var records []*telemetry.Record
	if fromStdin {
		records, err = readWireRecords(cmd.InOrStdin())
	} else {
		records, err = events.RecentTelemetry(ctx, atomID, lastN)
	}
	if err != nil {
		return err
	}
	if len(records) == 0 {
		cmd.Println("No telemetry to audit.")
		return nil
	}

	// Insight tier is skipped here: the advisor reasons over a live
	// window, not a replayed one.
	pipeline := validation.NewPipeline(thresholds, nil, log)

	passed, failed := 0, 0
	for _, rec := range records {
		report := pipeline.Audit(ctx, rec)
		if report.Status == validation.StatusPass {
			passed++
		} else {
			failed++
		}

		if report.Status == validation.StatusFail || len(report.Issues) > 0 {
			cmd.Printf("%s  %s (%s)\n", report.Status, rec.QuestionID, rec.AtomID)
			for _, is := range report.Issues {
				cmd.Printf("  %s/%s %s: %s\n", is.Tier, is.Severity, is.Code, is.Message)
			}
		}

		if save {
			if err := events.AppendValidationReport(ctx, report.Data()); err != nil {
				return err
			}
		}
	}

	cmd.Printf("\nAudited %d records: %d PASS, %d FAIL\n", len(records), passed, failed)
	return nil
}

// readWireRecords parses one wire-format JSON record per line.
func readWireRecords(r io.Reader) ([]*telemetry.Record, error) {
	var records []*telemetry.Record
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		rec, err := telemetry.UnmarshalWire([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
