package insight

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/mathquest/internal/llm"
	"github.com/abhisek/mathquest/internal/store"
	"github.com/abhisek/mathquest/internal/telemetry"
	"github.com/abhisek/mathquest/internal/validation"
)

type fakeEvents struct {
	recent []*telemetry.Record
	err    error
}

func (f *fakeEvents) AppendTelemetry(context.Context, string, *telemetry.Record) error { return nil }

func (f *fakeEvents) RecentTelemetry(_ context.Context, atomID string, _ int) ([]*telemetry.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	if atomID == "" {
		return f.recent, nil
	}
	var out []*telemetry.Record
	for _, r := range f.recent {
		if r.AtomID == atomID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeEvents) AppendValidationReport(context.Context, store.ValidationReportData) error {
	return nil
}

func (f *fakeEvents) AppendLLMRequest(context.Context, store.LLMRequestEventData) error { return nil }

func (f *fakeEvents) LLMUsage(context.Context) ([]store.LLMUsageSummary, error) { return nil, nil }

func miss(atomID, tag string, after float64) *telemetry.Record {
	return &telemetry.Record{
		QuestionID:    "q",
		IsCorrect:     false,
		DiagnosticTag: tag,
		TimeSpent:     8000,
		SpeedRating:   "STEADY",
		MasteryBefore: after + 0.1,
		MasteryAfter:  after,
		AtomID:        atomID,
		Timestamp:     1700000000000,
	}
}

func findCode(issues []validation.Issue, code string) *validation.Issue {
	for i := range issues {
		if issues[i].Code == code {
			return &issues[i]
		}
	}
	return nil
}

func TestRepeatedHurdle(t *testing.T) {
	events := &fakeEvents{recent: []*telemetry.Record{
		miss("int.negatives", "SIGN_IGNORANCE", 0.4),
		miss("frac.compare", "SIGN_IGNORANCE", 0.3),
	}}
	a := NewAdvisor(events, nil, nil)

	issues, err := a.Observations(context.Background(), miss("int.negatives", "SIGN_IGNORANCE", 0.3))
	if err != nil {
		t.Fatalf("Observations: %v", err)
	}
	is := findCode(issues, "REPEATED_HURDLE")
	if is == nil {
		t.Fatalf("issues %v missing REPEATED_HURDLE", issues)
	}
	if is.Severity != validation.SeverityInfo || is.Tier != validation.TierInsight {
		t.Errorf("issue = %+v, want INFO insight", is)
	}
}

func TestRepeatedHurdleBelowFloor(t *testing.T) {
	events := &fakeEvents{recent: []*telemetry.Record{
		miss("int.negatives", "SIGN_IGNORANCE", 0.4),
	}}
	a := NewAdvisor(events, nil, nil)

	issues, err := a.Observations(context.Background(), miss("int.negatives", "SIGN_IGNORANCE", 0.3))
	if err != nil {
		t.Fatalf("Observations: %v", err)
	}
	if findCode(issues, "REPEATED_HURDLE") != nil {
		t.Error("two misses flagged; the floor is three")
	}
}

func TestStalledConcept(t *testing.T) {
	// Five records on one concept, newest first, mastery ending where it
	// started.
	var recent []*telemetry.Record
	scores := []float64{0.42, 0.45, 0.40, 0.48, 0.42}
	for _, s := range scores {
		recent = append(recent, miss("frac.add", "ADD_ACROSS", s))
	}
	a := NewAdvisor(&fakeEvents{recent: recent}, nil, nil)

	issues, err := a.Observations(context.Background(), miss("frac.add", "", 0.4))
	if err != nil {
		t.Fatalf("Observations: %v", err)
	}
	if findCode(issues, "STALLED_CONCEPT") == nil {
		t.Errorf("flat mastery trend not flagged in %v", issues)
	}
}

func TestSprintHabit(t *testing.T) {
	var recent []*telemetry.Record
	for i := 0; i < 5; i++ {
		r := miss("arith.add.carry", "CARRY_DROPPED", 0.4)
		if i < 4 {
			r.SpeedRating = "SPRINT"
			r.TimeSpent = 1200
		}
		recent = append(recent, r)
	}
	a := NewAdvisor(&fakeEvents{recent: recent}, nil, nil)

	issues, err := a.Observations(context.Background(), miss("arith.mul.partial", "", 0.5))
	if err != nil {
		t.Fatalf("Observations: %v", err)
	}
	if findCode(issues, "SPRINT_HABIT") == nil {
		t.Errorf("sprint-heavy window not flagged in %v", issues)
	}
}

func TestStrongRecovery(t *testing.T) {
	var recent []*telemetry.Record
	for i := 0; i < 3; i++ {
		v := 0.8
		r := miss("dec.place", "", 0.5)
		r.IsCorrect = true
		r.IsRecovered = true
		r.RecoveryVelocity = &v
		recent = append(recent, r)
	}
	a := NewAdvisor(&fakeEvents{recent: recent}, nil, nil)

	issues, err := a.Observations(context.Background(), miss("dec.place", "PLACE_VALUE_SLIP", 0.5))
	if err != nil {
		t.Fatalf("Observations: %v", err)
	}
	if findCode(issues, "STRONG_RECOVERY") == nil {
		t.Errorf("fast recoveries not surfaced in %v", issues)
	}
}

func TestQuietWindowSkipsProvider(t *testing.T) {
	provider := llm.NewMockProvider()
	a := NewAdvisor(&fakeEvents{}, provider, nil)

	issues, err := a.Observations(context.Background(), &telemetry.Record{
		QuestionID: "q", IsCorrect: true, SpeedRating: "STEADY",
		TimeSpent: 8000, MasteryBefore: 0.5, MasteryAfter: 0.6,
		AtomID: "arith.add.carry", Timestamp: 1700000000000,
	})
	if err != nil {
		t.Fatalf("Observations: %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("quiet window produced %v", issues)
	}
	if provider.CallCount() != 0 {
		t.Errorf("provider called %d times with nothing to draft", provider.CallCount())
	}
}

func TestInterventionDraft(t *testing.T) {
	events := &fakeEvents{recent: []*telemetry.Record{
		miss("int.negatives", "SIGN_IGNORANCE", 0.4),
		miss("frac.compare", "SIGN_IGNORANCE", 0.3),
	}}
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"recommendation": "Run a two-minute sign drill before the next mission."}`),
	})
	a := NewAdvisor(events, provider, nil)

	issues, err := a.Observations(context.Background(), miss("int.negatives", "SIGN_IGNORANCE", 0.3))
	if err != nil {
		t.Fatalf("Observations: %v", err)
	}
	draft := findCode(issues, "INTERVENTION_DRAFT")
	if draft == nil {
		t.Fatalf("issues %v missing INTERVENTION_DRAFT", issues)
	}
	if draft.Message != "Run a two-minute sign drill before the next mission." {
		t.Errorf("draft message = %q", draft.Message)
	}
	if provider.CallCount() != 1 {
		t.Errorf("provider called %d times, want 1", provider.CallCount())
	}
}

func TestProviderFailureKeepsRuleFindings(t *testing.T) {
	events := &fakeEvents{recent: []*telemetry.Record{
		miss("int.negatives", "SIGN_IGNORANCE", 0.4),
		miss("frac.compare", "SIGN_IGNORANCE", 0.3),
	}}
	// Empty mock queue: Generate returns ErrProviderUnavailable.
	a := NewAdvisor(events, llm.NewMockProvider(), nil)

	issues, err := a.Observations(context.Background(), miss("int.negatives", "SIGN_IGNORANCE", 0.3))
	if err != nil {
		t.Fatalf("Observations: %v", err)
	}
	if findCode(issues, "REPEATED_HURDLE") == nil {
		t.Error("rule finding lost when drafting failed")
	}
	if findCode(issues, "INTERVENTION_DRAFT") != nil {
		t.Error("draft present despite provider failure")
	}
}

func TestEventsErrorPropagates(t *testing.T) {
	a := NewAdvisor(&fakeEvents{err: errors.New("db closed")}, nil, nil)
	if _, err := a.Observations(context.Background(), miss("x", "", 0.5)); err == nil {
		t.Error("store failure swallowed")
	}
}
