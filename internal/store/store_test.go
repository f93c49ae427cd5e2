package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/abhisek/mathquest/internal/questionbank"
	"github.com/abhisek/mathquest/internal/telemetry"
)

// openTestStore opens a private in-memory database per test so counts and
// sequences never leak between tests.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestSnapshotSaveAndLatestPerUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx, "alice")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			UserID:    "alice",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data: SnapshotData{
				Version: 1,
				Mastery: &MasterySnapshotData{
					Concepts: map[string]float64{"fractions.equivalence": 0.5 + float64(i)*0.1},
				},
			},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	err = repo.Save(ctx, &Snapshot{
		UserID:    "bob",
		Timestamp: base.Add(time.Hour),
		Data:      SnapshotData{Version: 1},
	})
	if err != nil {
		t.Fatalf("save bob: %v", err)
	}

	snap, err = repo.Latest(ctx, "alice")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	got := snap.Data.Mastery.Concepts["fractions.equivalence"]
	if got != 0.7 {
		t.Errorf("latest snapshot score = %v, want 0.7 (newest)", got)
	}
}

func TestSnapshotSaveRequiresUserID(t *testing.T) {
	s := openTestStore(t)
	err := s.SnapshotRepo().Save(context.Background(), &Snapshot{
		Timestamp: time.Now(),
		Data:      SnapshotData{Version: 1},
	})
	if err == nil {
		t.Fatal("expected error for snapshot without user ID")
	}
}

func TestTelemetryAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	events, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	ctx := context.Background()

	velocity := 0.7
	records := []*telemetry.Record{
		{
			QuestionID: "q1", StudentAnswer: "3/4", CorrectAnswer: "3/4",
			IsCorrect: true, TimeSpent: 4200, SpeedRating: "STEADY",
			MasteryBefore: 0.5, MasteryAfter: 0.6,
			AtomID: "fractions.equivalence", Timestamp: 1000,
		},
		{
			QuestionID: "q2", StudentAnswer: "1/4", CorrectAnswer: "3/4",
			IsCorrect: false, TimeSpent: 2100, SpeedRating: "SPRINT",
			MasteryBefore: 0.6, MasteryAfter: 0.5, DiagnosticTag: "adds-denominators",
			AtomID: "fractions.equivalence", Timestamp: 2000,
		},
		{
			QuestionID: "q3", StudentAnswer: "12", CorrectAnswer: "12",
			IsCorrect: true, TimeSpent: 13000, SpeedRating: "STEADY",
			MasteryBefore: 0.5, MasteryAfter: 0.58, IsRecovered: true,
			RecoveryVelocity: &velocity,
			AtomID:           "multiplication.arrays", Timestamp: 3000,
		},
	}
	for _, rec := range records {
		if err := events.AppendTelemetry(ctx, "sess-1", rec); err != nil {
			t.Fatalf("append %s: %v", rec.QuestionID, err)
		}
	}

	got, err := events.RecentTelemetry(ctx, "", 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}
	if got[0].QuestionID != "q3" || got[2].QuestionID != "q1" {
		t.Errorf("order = %s..%s, want newest first (q3..q1)", got[0].QuestionID, got[2].QuestionID)
	}
	if got[0].RecoveryVelocity == nil || *got[0].RecoveryVelocity != 0.7 {
		t.Errorf("recovery velocity not round-tripped: %v", got[0].RecoveryVelocity)
	}
	if got[1].DiagnosticTag != "adds-denominators" {
		t.Errorf("diagnostic tag = %q", got[1].DiagnosticTag)
	}
	if got[2].DiagnosticTag != "" {
		t.Errorf("correct answer should have empty tag, got %q", got[2].DiagnosticTag)
	}

	filtered, err := events.RecentTelemetry(ctx, "fractions.equivalence", 10)
	if err != nil {
		t.Fatalf("recent filtered: %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("filtered count = %d, want 2", len(filtered))
	}
}

func TestSeedQuestionsUpsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seed := []questionbank.Question{
		{
			ID: "q-frac-001", ConceptID: "fractions.equivalence", Difficulty: 2,
			Template: questionbank.TemplateMultipleChoice,
			Prompt:   "Which fraction equals 1/2?", CorrectAnswer: "2/4",
			Distractors: []questionbank.Distractor{
				{Option: "1/4", MisconceptionTag: "HALVES_THE_NUMERATOR"},
			},
		},
	}
	if err := s.SeedQuestions(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Re-seeding with changed content must update in place, not duplicate.
	seed[0].Prompt = "Which fraction is equivalent to 1/2?"
	seed[0].Difficulty = 3
	if err := s.SeedQuestions(ctx, seed); err != nil {
		t.Fatalf("re-seed: %v", err)
	}

	qs, err := s.QuestionBank().FetchAll(ctx)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("got %d questions after re-seed, want 1", len(qs))
	}
	if qs[0].Prompt != "Which fraction is equivalent to 1/2?" || qs[0].Difficulty != 3 {
		t.Errorf("re-seed did not update: prompt=%q difficulty=%d", qs[0].Prompt, qs[0].Difficulty)
	}
	if len(qs[0].Distractors) != 1 || qs[0].Distractors[0].MisconceptionTag != "HALVES_THE_NUMERATOR" {
		t.Errorf("distractors not round-tripped: %+v", qs[0].Distractors)
	}
}

func TestValidationReportAppend(t *testing.T) {
	s := openTestStore(t)
	events, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}

	err = events.AppendValidationReport(context.Background(), ValidationReportData{
		QuestionID: "q1",
		EmittedAt:  1000,
		Status:     "FAIL",
		ErrorCount: 1,
		Issues: []IssueData{
			{Field: "timeSpent", Tier: "schema", Severity: "ERROR", Code: "OUT_OF_RANGE", Message: "timeSpent above ceiling"},
		},
	})
	if err != nil {
		t.Fatalf("append report: %v", err)
	}
}

func TestRewardCounts(t *testing.T) {
	s := openTestStore(t)
	rewards, err := s.RewardRepo()
	if err != nil {
		t.Fatalf("reward repo: %v", err)
	}
	ctx := context.Background()

	grants := []RewardEventData{
		{AwardType: "streak", Rarity: "common", SessionID: "sess-1", Reason: "5 in a row"},
		{AwardType: "streak", Rarity: "rare", SessionID: "sess-1", Reason: "10 in a row"},
		{AwardType: "hurdle", Rarity: "epic", SessionID: "sess-1", ConceptID: "fractions.equivalence", Reason: "cleared adds-denominators"},
	}
	for _, g := range grants {
		if err := rewards.AppendReward(ctx, g); err != nil {
			t.Fatalf("append reward: %v", err)
		}
	}

	counts, total, err := rewards.Counts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if counts["streak"] != 2 || counts["hurdle"] != 1 {
		t.Errorf("counts = %v, want streak:2 hurdle:1", counts)
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	events, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	ctx := context.Background()

	calls := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "insight-drafting", InputTokens: 100, OutputTokens: 40, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "insight-drafting", InputTokens: 200, OutputTokens: 60, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "insight-drafting", InputTokens: 50, OutputTokens: 10, Success: false, ErrorMessage: "rate limited"},
	}
	for _, c := range calls {
		if err := events.AppendLLMRequest(ctx, c); err != nil {
			t.Fatalf("append llm request: %v", err)
		}
	}

	usage, err := events.LLMUsage(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	byModel := make(map[string]LLMUsageSummary, len(usage))
	for _, u := range usage {
		byModel[u.Model] = u
	}
	claude := byModel["claude-sonnet-4-20250514"]
	if claude.Requests != 2 || claude.InputTokens != 300 || claude.OutputTokens != 100 {
		t.Errorf("claude rollup = %+v, want 2 requests, 300 in, 100 out", claude)
	}
	if byModel["gpt-4o-mini"].Requests != 1 {
		t.Errorf("gpt-4o-mini requests = %d, want 1", byModel["gpt-4o-mini"].Requests)
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	events, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	rewards, err := s.RewardRepo()
	if err != nil {
		t.Fatalf("reward repo: %v", err)
	}

	if err := events.AppendTelemetry(ctx, "sess-1", &telemetry.Record{
		QuestionID: "q1", StudentAnswer: "4", CorrectAnswer: "4", IsCorrect: true,
		TimeSpent: 3000, SpeedRating: "STEADY", AtomID: "addition.basic", Timestamp: 1,
	}); err != nil {
		t.Fatalf("append telemetry: %v", err)
	}
	if err := rewards.AppendReward(ctx, RewardEventData{
		AwardType: "streak", Rarity: "common", SessionID: "sess-1", Reason: "test",
	}); err != nil {
		t.Fatalf("append reward: %v", err)
	}

	tel, err := s.Client().TelemetryEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query telemetry: %v", err)
	}
	rew, err := s.Client().RewardEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query reward: %v", err)
	}
	if rew.Sequence <= tel.Sequence {
		t.Errorf("reward sequence %d not after telemetry sequence %d", rew.Sequence, tel.Sequence)
	}
}
