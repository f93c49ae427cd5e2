package validation

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/abhisek/mathquest/internal/mastery"
	"github.com/abhisek/mathquest/internal/telemetry"
)

func validCorrectRecord() *telemetry.Record {
	return &telemetry.Record{
		QuestionID:    "q-1",
		StudentAnswer: "85",
		CorrectAnswer: "85",
		IsCorrect:     true,
		TimeSpent:     7200,
		SpeedRating:   "STEADY",
		MasteryBefore: 0.50,
		MasteryAfter:  0.60,
		AtomID:        "arith.add.carry",
		Timestamp:     1700000000000,
	}
}

func validMissRecord() *telemetry.Record {
	rec := validCorrectRecord()
	rec.StudentAnswer = "75"
	rec.IsCorrect = false
	rec.DiagnosticTag = "CARRY_DROPPED"
	rec.MasteryAfter = 0.40
	return rec
}

func findIssue(issues []Issue, code string) *Issue {
	for i := range issues {
		if issues[i].Code == code {
			return &issues[i]
		}
	}
	return nil
}

func TestSchemaTierAcceptsValidRecords(t *testing.T) {
	if issues := SchemaTier(validCorrectRecord()); len(issues) != 0 {
		t.Errorf("valid correct record raised %v", issues)
	}
	if issues := SchemaTier(validMissRecord()); len(issues) != 0 {
		t.Errorf("valid miss record raised %v", issues)
	}

	rec := validCorrectRecord()
	rec.IsRecovered = true
	v := 0.7
	rec.RecoveryVelocity = &v
	if issues := SchemaTier(rec); len(issues) != 0 {
		t.Errorf("valid recovered record raised %v", issues)
	}
}

func TestSchemaTierViolations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*telemetry.Record)
		code   string
		field  string
	}{
		{"missing question id", func(r *telemetry.Record) { r.QuestionID = "" }, "MISSING_FIELD", "questionId"},
		{"missing atom id", func(r *telemetry.Record) { r.AtomID = "" }, "MISSING_FIELD", "atomId"},
		{"zero timestamp", func(r *telemetry.Record) { r.Timestamp = 0 }, "MISSING_FIELD", "timestamp"},
		{"bad speed rating", func(r *telemetry.Record) { r.SpeedRating = "WARP" }, "BAD_ENUM", "speedRating"},
		{"negative time", func(r *telemetry.Record) { r.TimeSpent = -1 }, "OUT_OF_RANGE", "timeSpent"},
		{"time above ceiling", func(r *telemetry.Record) { r.TimeSpent = 300001 }, "OUT_OF_RANGE", "timeSpent"},
		{"mastery before high", func(r *telemetry.Record) { r.MasteryBefore = 1.2 }, "OUT_OF_RANGE", "masteryBefore"},
		{"mastery after negative", func(r *telemetry.Record) { r.MasteryAfter = -0.1 }, "OUT_OF_RANGE", "masteryAfter"},
		{"wrong answer without tag", func(r *telemetry.Record) {
			r.IsCorrect = false
			r.DiagnosticTag = ""
		}, "CONDITIONAL_FIELD", "diagnosticTag"},
		{"recovered without velocity", func(r *telemetry.Record) { r.IsRecovered = true }, "CONDITIONAL_FIELD", "recoveryVelocity"},
		{"velocity without recovery", func(r *telemetry.Record) {
			v := 0.5
			r.RecoveryVelocity = &v
		}, "CONDITIONAL_FIELD", "recoveryVelocity"},
		{"velocity out of range", func(r *telemetry.Record) {
			r.IsRecovered = true
			v := 1.5
			r.RecoveryVelocity = &v
		}, "OUT_OF_RANGE", "recoveryVelocity"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := validCorrectRecord()
			tc.mutate(rec)
			issues := SchemaTier(rec)
			is := findIssue(issues, tc.code)
			if is == nil {
				t.Fatalf("issues %v missing code %s", issues, tc.code)
			}
			if is.Field != tc.field {
				t.Errorf("issue field = %q, want %q", is.Field, tc.field)
			}
			if is.Severity != SeverityError {
				t.Errorf("schema issue severity = %s, want ERROR", is.Severity)
			}
		})
	}
}

func TestSchemaTierIdempotent(t *testing.T) {
	rec := validMissRecord()
	rec.DiagnosticTag = ""
	first := SchemaTier(rec)
	second := SchemaTier(rec)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeat run differs:\n%v\n%v", first, second)
	}
}

func TestSemanticMasteryRiseOnMiss(t *testing.T) {
	rec := validMissRecord()
	rec.MasteryAfter = 0.55
	is := findIssue(SemanticTier(rec, mastery.DefaultSpeedThresholds()), "MASTERY_RISE_ON_MISS")
	if is == nil {
		t.Fatal("mastery rise on a miss not flagged")
	}
	if is.Severity != SeverityWarning {
		t.Errorf("severity = %s, want WARNING", is.Severity)
	}
}

func TestSemanticLikelyGuess(t *testing.T) {
	rec := validCorrectRecord()
	rec.SpeedRating = "SPRINT"
	rec.TimeSpent = 1100
	rec.MasteryBefore = 0.10
	rec.MasteryAfter = 0.20
	if findIssue(SemanticTier(rec, mastery.DefaultSpeedThresholds()), "LIKELY_GUESS") == nil {
		t.Error("fast correct answer at low mastery not flagged as a guess")
	}

	rec.MasteryAfter = 0.60
	if findIssue(SemanticTier(rec, mastery.DefaultSpeedThresholds()), "LIKELY_GUESS") != nil {
		t.Error("fast correct answer at solid mastery flagged as a guess")
	}
}

func TestSemanticUndiagnosedStruggle(t *testing.T) {
	rec := validMissRecord()
	rec.SpeedRating = "DEEP"
	rec.TimeSpent = 40000
	rec.DiagnosticTag = telemetry.TagUnclassified
	if findIssue(SemanticTier(rec, mastery.DefaultSpeedThresholds()), "UNDIAGNOSED_STRUGGLE") == nil {
		t.Error("slow unclassified miss not flagged")
	}

	rec.DiagnosticTag = "CARRY_DROPPED"
	if findIssue(SemanticTier(rec, mastery.DefaultSpeedThresholds()), "UNDIAGNOSED_STRUGGLE") != nil {
		t.Error("tagged miss flagged as undiagnosed")
	}
}

func TestSemanticHiddenMisconception(t *testing.T) {
	rec := validMissRecord()
	rec.MasteryBefore = 0.85
	rec.MasteryAfter = 0.75
	is := findIssue(SemanticTier(rec, mastery.DefaultSpeedThresholds()), "HIDDEN_MISCONCEPTION")
	if is == nil {
		t.Fatal("high-mastery miss not flagged")
	}
	if is.Severity != SeverityError {
		t.Errorf("severity = %s, want ERROR", is.Severity)
	}
}

func TestSemanticSpeedTimeMismatch(t *testing.T) {
	rec := validCorrectRecord()
	rec.SpeedRating = "SPRINT"
	rec.TimeSpent = 12000
	if findIssue(SemanticTier(rec, mastery.DefaultSpeedThresholds()), "SPEED_TIME_MISMATCH") == nil {
		t.Error("SPRINT rating on a 12s answer not flagged")
	}

	// Recovered records carry follow-up time in timeSpent; skip the check.
	rec.IsCorrect = true
	rec.IsRecovered = true
	if findIssue(SemanticTier(rec, mastery.DefaultSpeedThresholds()), "SPEED_TIME_MISMATCH") != nil {
		t.Error("recovered record flagged for speed/time mismatch")
	}
}

func TestSemanticChecksAreAdditive(t *testing.T) {
	// One record trips hidden misconception, undiagnosed struggle, and
	// mastery rise at the same time.
	rec := validMissRecord()
	rec.SpeedRating = "DEEP"
	rec.TimeSpent = 40000
	rec.DiagnosticTag = telemetry.TagUnclassified
	rec.MasteryBefore = 0.85
	rec.MasteryAfter = 0.90

	issues := SemanticTier(rec, mastery.DefaultSpeedThresholds())
	for _, code := range []string{"MASTERY_RISE_ON_MISS", "UNDIAGNOSED_STRUGGLE", "HIDDEN_MISCONCEPTION"} {
		if findIssue(issues, code) == nil {
			t.Errorf("issues %v missing code %s", issues, code)
		}
	}
}

type stubInsight struct {
	issues []Issue
	err    error
}

func (s *stubInsight) Observations(context.Context, *telemetry.Record) ([]Issue, error) {
	return s.issues, s.err
}

func TestAuditVerdictFromSchemaOnly(t *testing.T) {
	p := NewPipeline(mastery.SpeedThresholds{}, nil, nil)

	// Semantic error severity alone must not flip the verdict.
	rec := validMissRecord()
	rec.MasteryBefore = 0.85
	rec.MasteryAfter = 0.75
	report := p.Audit(context.Background(), rec)
	if report.Status != StatusPass {
		t.Errorf("status = %s, want PASS despite semantic error", report.Status)
	}
	if report.ErrorCount() != 1 {
		t.Errorf("errorCount = %d, want the semantic error counted", report.ErrorCount())
	}

	rec.DiagnosticTag = ""
	report = p.Audit(context.Background(), rec)
	if report.Status != StatusFail {
		t.Errorf("status = %s, want FAIL on schema violation", report.Status)
	}
}

func TestAuditInsightTier(t *testing.T) {
	ins := &stubInsight{issues: []Issue{{
		Tier:     TierInsight,
		Severity: SeverityInfo,
		Code:     "REPEATED_HURDLE",
		Message:  "third CARRY_DROPPED miss this week",
	}}}
	p := NewPipeline(mastery.SpeedThresholds{}, ins, nil)

	report := p.Audit(context.Background(), validCorrectRecord())
	if report.Status != StatusPass {
		t.Errorf("status = %s, want PASS", report.Status)
	}
	if findIssue(report.Issues, "REPEATED_HURDLE") == nil {
		t.Error("insight observation missing from report")
	}

	// A broken insight source degrades to a two-tier audit.
	p = NewPipeline(mastery.SpeedThresholds{}, &stubInsight{err: errors.New("llm down")}, nil)
	report = p.Audit(context.Background(), validCorrectRecord())
	if report.Status != StatusPass || len(report.Issues) != 0 {
		t.Errorf("report = %+v, want clean PASS when insight fails", report)
	}
}

func TestReportData(t *testing.T) {
	rec := validMissRecord()
	rec.DiagnosticTag = ""
	report := NewPipeline(mastery.SpeedThresholds{}, nil, nil).Audit(context.Background(), rec)

	d := report.Data()
	if d.Status != string(StatusFail) {
		t.Errorf("data status = %s, want FAIL", d.Status)
	}
	if d.QuestionID != "q-1" || d.EmittedAt != rec.Timestamp {
		t.Errorf("data identity = %s/%d, want q-1/%d", d.QuestionID, d.EmittedAt, rec.Timestamp)
	}
	if len(d.Issues) != len(report.Issues) {
		t.Errorf("data carries %d issues, report has %d", len(d.Issues), len(report.Issues))
	}
}
