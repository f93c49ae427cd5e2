// Package insight is the third validation tier: it aggregates recent
// telemetry to surface candidate interventions. It is informational only
// and never changes a record's verdict.
package insight

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/mathquest/internal/llm"
	"github.com/abhisek/mathquest/internal/logger"
	"github.com/abhisek/mathquest/internal/store"
	"github.com/abhisek/mathquest/internal/telemetry"
	"github.com/abhisek/mathquest/internal/validation"
)

// defaultWindow is how many recent records the rules look across.
const defaultWindow = 20

// Advisor runs in two phases: deterministic rules over the recent window,
// then an optional LLM pass that drafts one concrete intervention from the
// rule findings. A nil provider skips the second phase.
type Advisor struct {
	events   store.EventRepo
	provider llm.Provider
	log      *logger.Logger
	window   int
}

func NewAdvisor(events store.EventRepo, provider llm.Provider, log *logger.Logger) *Advisor {
	if log == nil {
		log = logger.Nop()
	}
	return &Advisor{
		events:   events,
		provider: provider,
		log:      log,
		window:   defaultWindow,
	}
}

// Observations implements validation.InsightSource.
func (a *Advisor) Observations(ctx context.Context, rec *telemetry.Record) ([]validation.Issue, error) {
	recent, err := a.events.RecentTelemetry(ctx, "", a.window)
	if err != nil {
		return nil, fmt.Errorf("load recent telemetry: %w", err)
	}

	issues := runRules(rec, recent)
	if len(issues) == 0 || a.provider == nil {
		return issues, nil
	}

	draft, err := a.draftIntervention(ctx, rec, issues)
	if err != nil {
		// The rule findings stand on their own.
		a.log.Warn("intervention drafting failed", "atomId", rec.AtomID, "error", err)
		return issues, nil
	}
	issues = append(issues, validation.Issue{
		Field:    "atomId",
		Tier:     validation.TierInsight,
		Severity: validation.SeverityInfo,
		Code:     "INTERVENTION_DRAFT",
		Message:  draft,
	})
	return issues, nil
}

// interventionSchema constrains the LLM to a single recommendation string.
func interventionSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "intervention-draft",
		Description: "One concrete next step for this learner",
		Definition: map[string]any{
			"type":     "object",
			"required": []any{"recommendation"},
			"properties": map[string]any{
				"recommendation": map[string]any{
					"type":      "string",
					"minLength": 1,
				},
			},
			"additionalProperties": false,
		},
	}
}

const interventionSystem = `You are a math tutor's assistant. Given
observations about a student's recent practice, propose exactly one short,
concrete next step the tutor can take. Address the tutor, not the student.`

func (a *Advisor) draftIntervention(ctx context.Context, rec *telemetry.Record, issues []validation.Issue) (string, error) {
	prompt := fmt.Sprintf("Concept: %s\nObservations:\n", rec.AtomID)
	for _, is := range issues {
		prompt += fmt.Sprintf("- %s: %s\n", is.Code, is.Message)
	}

	ctx = llm.WithPurpose(ctx, "insight-drafting")
	resp, err := a.provider.Generate(ctx, llm.Request{
		System:    interventionSystem,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:    interventionSchema(),
		MaxTokens: 300,
	})
	if err != nil {
		return "", err
	}

	var out struct {
		Recommendation string `json:"recommendation"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("decode intervention: %w", err)
	}
	return out.Recommendation, nil
}
