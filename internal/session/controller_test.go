package session

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/abhisek/mathquest/internal/hurdle"
	"github.com/abhisek/mathquest/internal/mastery"
	"github.com/abhisek/mathquest/internal/questionbank"
	"github.com/abhisek/mathquest/internal/telemetry"
)

const epsilon = 0.0001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func testQuestions() []*questionbank.Question {
	return []*questionbank.Question{
		{
			ID:        "q-1",
			ConceptID: "arith.add.carry",
			Prompt:    "47 + 38 = ?",
			CorrectAnswer: "85",
			Distractors: []questionbank.Distractor{
				{Option: "75", MisconceptionTag: "CARRY_DROPPED"},
				{Option: "84", MisconceptionTag: ""},
			},
			Difficulty: 2,
			Template:   questionbank.TemplateMultipleChoice,
		},
		{
			ID:        "q-2",
			ConceptID: "arith.sub.borrow",
			Prompt:    "52 - 17 = ?",
			CorrectAnswer: "35",
			Distractors: []questionbank.Distractor{
				{Option: "45", MisconceptionTag: "SMALLER_FROM_LARGER"},
			},
			Difficulty: 2,
			Template:   questionbank.TemplateMultipleChoice,
		},
		{
			ID:        "q-3",
			ConceptID: "arith.add.carry",
			Prompt:    "156 + 267 = ?",
			CorrectAnswer: "423",
			Distractors: []questionbank.Distractor{
				{Option: "313", MisconceptionTag: "CARRY_DROPPED"},
			},
			Difficulty: 3,
			Template:   questionbank.TemplateNumericEntry,
		},
	}
}

func newTestController(t *testing.T, mode mastery.Mode, qs []*questionbank.Question) *Controller {
	t.Helper()
	c, err := NewController(Config{
		Mode:      mode,
		SessionID: "sess-test",
		Questions: qs,
		Mastery:   mastery.NewStore(),
		Hurdles:   hurdle.NewTracker(),
		Now:       func() time.Time { return time.UnixMilli(1700000000000) },
	})
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c
}

func TestSubmitAnswerCorrectFirstTry(t *testing.T) {
	c := newTestController(t, mastery.ModeDiagnostic, testQuestions())

	rec, err := c.SubmitAnswer(ResponseEvent{
		QuestionID:     "q-1",
		ConceptID:      "arith.add.carry",
		StudentChoice:  "85",
		CorrectChoice:  "85",
		IsCorrect:      true,
		ThinkingTimeMs: 7200,
	})
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	if !almostEqual(rec.MasteryBefore, 0.5) {
		t.Errorf("masteryBefore = %v, want 0.5", rec.MasteryBefore)
	}
	if !almostEqual(rec.MasteryAfter, 0.60) {
		t.Errorf("masteryAfter = %v, want 0.60", rec.MasteryAfter)
	}
	if rec.SpeedRating != string(mastery.SpeedSteady) {
		t.Errorf("speedRating = %q, want STEADY", rec.SpeedRating)
	}
	if rec.DiagnosticTag != "" {
		t.Errorf("diagnosticTag = %q, want empty on a correct answer", rec.DiagnosticTag)
	}
	if rec.RecoveryVelocity != nil {
		t.Errorf("recoveryVelocity set on a non-recovered answer")
	}
	if rec.Timestamp != 1700000000000 {
		t.Errorf("timestamp = %d, want injected clock value", rec.Timestamp)
	}
}

func TestSubmitAnswerWrongChargesHurdle(t *testing.T) {
	c := newTestController(t, mastery.ModeDiagnostic, testQuestions())

	rec, err := c.SubmitAnswer(ResponseEvent{
		QuestionID:       "q-1",
		ConceptID:        "arith.add.carry",
		StudentChoice:    "75",
		CorrectChoice:    "85",
		IsCorrect:        false,
		MisconceptionTag: "CARRY_DROPPED",
		ThinkingTimeMs:   9000,
	})
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	if !almostEqual(rec.MasteryAfter, 0.40) {
		t.Errorf("masteryAfter = %v, want 0.40", rec.MasteryAfter)
	}
	if rec.DiagnosticTag != "CARRY_DROPPED" {
		t.Errorf("diagnosticTag = %q, want CARRY_DROPPED", rec.DiagnosticTag)
	}
	st := c.cfg.Hurdles.Get("CARRY_DROPPED")
	if st == nil || st.MissCount != 1 {
		t.Fatalf("hurdle state = %+v, want one miss", st)
	}
}

func TestSubmitAnswerWrongUntaggedDefaultsUnclassified(t *testing.T) {
	c := newTestController(t, mastery.ModePractice, testQuestions())

	rec, err := c.SubmitAnswer(ResponseEvent{
		QuestionID:     "q-1",
		StudentChoice:  "84",
		CorrectChoice:  "85",
		IsCorrect:      false,
		ThinkingTimeMs: 4000,
	})
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if rec.DiagnosticTag != telemetry.TagUnclassified {
		t.Errorf("diagnosticTag = %q, want %q", rec.DiagnosticTag, telemetry.TagUnclassified)
	}
}

func TestSubmitAnswerRecovered(t *testing.T) {
	c := newTestController(t, mastery.ModePractice, testQuestions())

	// 10s initial think, 3s recovery: velocity 0.7, fast path.
	rec, err := c.SubmitAnswer(ResponseEvent{
		QuestionID:       "q-1",
		StudentChoice:    "75",
		CorrectChoice:    "85",
		IsCorrect:        true,
		IsRecovered:      true,
		MisconceptionTag: "CARRY_DROPPED",
		ThinkingTimeMs:   10000,
		RecoveryTimeMs:   3000,
	})
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	if !almostEqual(rec.MasteryAfter, 0.58) {
		t.Errorf("masteryAfter = %v, want 0.58", rec.MasteryAfter)
	}
	if rec.RecoveryVelocity == nil {
		t.Fatal("recoveryVelocity missing on a recovered answer")
	}
	if !almostEqual(*rec.RecoveryVelocity, 0.7) {
		t.Errorf("recoveryVelocity = %v, want 0.7", *rec.RecoveryVelocity)
	}
	if rec.TimeSpent != 13000 {
		t.Errorf("timeSpent = %d, want thinking + recovery", rec.TimeSpent)
	}
	// A recovery still marks the original misconception.
	st := c.cfg.Hurdles.Get("CARRY_DROPPED")
	if st == nil || st.MissCount != 1 {
		t.Fatalf("hurdle state = %+v, want one miss", st)
	}
}

func TestCorrectAnswerCreditsDistractorTags(t *testing.T) {
	c := newTestController(t, mastery.ModePractice, testQuestions())

	// Build up an active hurdle, then answer a question that carries the
	// same tag correctly on the first try.
	c.cfg.Hurdles.OnAnswer("CARRY_DROPPED", false)
	c.cfg.Hurdles.OnAnswer("CARRY_DROPPED", false)

	if _, err := c.SubmitAnswer(ResponseEvent{
		QuestionID:     "q-1",
		StudentChoice:  "85",
		CorrectChoice:  "85",
		IsCorrect:      true,
		ThinkingTimeMs: 5000,
	}); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	st := c.cfg.Hurdles.Get("CARRY_DROPPED")
	if st == nil || st.ConsecutiveCorrect != 1 {
		t.Fatalf("hurdle state = %+v, want one consecutive correct", st)
	}
}

func TestTimeSpentCeiling(t *testing.T) {
	c := newTestController(t, mastery.ModePractice, testQuestions())

	rec, err := c.SubmitAnswer(ResponseEvent{
		QuestionID:     "q-1",
		StudentChoice:  "85",
		CorrectChoice:  "85",
		IsCorrect:      true,
		ThinkingTimeMs: 450000,
	})
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if rec.TimeSpent != telemetry.MaxTimeSpentMs {
		t.Errorf("timeSpent = %d, want capped at %d", rec.TimeSpent, telemetry.MaxTimeSpentMs)
	}
}

func TestDiagnosticConfidenceStop(t *testing.T) {
	ms := mastery.NewStore()
	ms.SetScore("arith.add.carry", 0.88)
	c, err := NewController(Config{
		Mode:                mastery.ModeDiagnostic,
		Questions:           testQuestions(),
		Mastery:             ms,
		Hurdles:             hurdle.NewTracker(),
		ConfidenceThreshold: 0.85,
	})
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}

	// One more correct answer lifts the only touched concept to 0.98.
	if _, err := c.SubmitAnswer(ResponseEvent{
		QuestionID:     "q-1",
		StudentChoice:  "85",
		CorrectChoice:  "85",
		IsCorrect:      true,
		ThinkingTimeMs: 5000,
	}); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	if c.Status() != StatusComplete {
		t.Fatalf("status = %v, want COMPLETE", c.Status())
	}
	if c.Reason() != ReasonConfident {
		t.Errorf("reason = %v, want CONFIDENT", c.Reason())
	}
	if c.Current() != nil {
		t.Error("Current() should be nil once complete")
	}
}

func TestPracticeIgnoresConfidenceThreshold(t *testing.T) {
	ms := mastery.NewStore()
	ms.SetScore("arith.add.carry", 0.95)
	c, err := NewController(Config{
		Mode:                mastery.ModePractice,
		Questions:           testQuestions(),
		Mastery:             ms,
		ConfidenceThreshold: 0.85,
	})
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	if _, err := c.SubmitAnswer(ResponseEvent{
		QuestionID:     "q-1",
		StudentChoice:  "85",
		CorrectChoice:  "85",
		IsCorrect:      true,
		ThinkingTimeMs: 5000,
	}); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if c.Status() != StatusActive {
		t.Errorf("practice session ended early: %v", c.Reason())
	}
}

func TestExhaustion(t *testing.T) {
	qs := testQuestions()[:1]
	c := newTestController(t, mastery.ModePractice, qs)

	if _, err := c.SubmitAnswer(ResponseEvent{
		QuestionID:     "q-1",
		StudentChoice:  "85",
		CorrectChoice:  "85",
		IsCorrect:      true,
		ThinkingTimeMs: 5000,
	}); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	if c.Status() != StatusComplete || c.Reason() != ReasonExhausted {
		t.Errorf("status=%v reason=%v, want COMPLETE/EXHAUSTED", c.Status(), c.Reason())
	}
	if _, err := c.SubmitAnswer(ResponseEvent{QuestionID: "q-1"}); err != ErrSessionComplete {
		t.Errorf("submit after complete: err = %v, want ErrSessionComplete", err)
	}
}

func TestEmptyQuestionSetCompletesImmediately(t *testing.T) {
	c := newTestController(t, mastery.ModeDiagnostic, nil)
	if c.Status() != StatusComplete || c.Reason() != ReasonExhausted {
		t.Errorf("status=%v reason=%v, want COMPLETE/EXHAUSTED", c.Status(), c.Reason())
	}
}

func TestQuestionMismatch(t *testing.T) {
	c := newTestController(t, mastery.ModePractice, testQuestions())
	if _, err := c.SubmitAnswer(ResponseEvent{QuestionID: "q-99"}); err != ErrQuestionMismatch {
		t.Errorf("err = %v, want ErrQuestionMismatch", err)
	}
}

func TestAbandon(t *testing.T) {
	c := newTestController(t, mastery.ModePractice, testQuestions())
	if _, err := c.SubmitAnswer(ResponseEvent{
		QuestionID:     "q-1",
		StudentChoice:  "85",
		CorrectChoice:  "85",
		IsCorrect:      true,
		ThinkingTimeMs: 5000,
	}); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	c.Abandon()
	if c.Status() != StatusComplete || c.Reason() != ReasonAbandoned {
		t.Errorf("status=%v reason=%v, want COMPLETE/ABANDONED", c.Status(), c.Reason())
	}
	if len(c.Records()) != 1 {
		t.Errorf("records = %d, want the pre-abandon record kept", len(c.Records()))
	}
}

func TestSummarize(t *testing.T) {
	c := newTestController(t, mastery.ModePractice, testQuestions())

	events := []ResponseEvent{
		{QuestionID: "q-1", StudentChoice: "85", CorrectChoice: "85", IsCorrect: true, ThinkingTimeMs: 4000},
		{QuestionID: "q-2", StudentChoice: "45", CorrectChoice: "35", IsCorrect: false, MisconceptionTag: "SMALLER_FROM_LARGER", ThinkingTimeMs: 9000},
		{QuestionID: "q-3", StudentChoice: "313", CorrectChoice: "423", IsCorrect: true, IsRecovered: true, MisconceptionTag: "CARRY_DROPPED", ThinkingTimeMs: 8000, RecoveryTimeMs: 2000},
	}
	for _, ev := range events {
		if _, err := c.SubmitAnswer(ev); err != nil {
			t.Fatalf("SubmitAnswer(%s): %v", ev.QuestionID, err)
		}
	}

	s := c.Summarize()
	if s.Answered != 3 || s.Correct != 2 || s.Recovered != 1 {
		t.Errorf("answered=%d correct=%d recovered=%d, want 3/2/1", s.Answered, s.Correct, s.Recovered)
	}
	if !almostEqual(s.Accuracy, 2.0/3.0) {
		t.Errorf("accuracy = %v, want 2/3", s.Accuracy)
	}
	if s.BestStreak != 1 {
		t.Errorf("bestStreak = %d, want 1", s.BestStreak)
	}
	if len(s.ConceptScores) != 2 {
		t.Errorf("conceptScores = %v, want both touched concepts", s.ConceptScores)
	}
	if s.Reason != ReasonExhausted {
		t.Errorf("reason = %v, want EXHAUSTED", s.Reason)
	}
	want := map[mastery.Behavior]int{
		mastery.BehaviorFirstTry:        1,
		mastery.BehaviorMiss:            1,
		mastery.BehaviorLatentKnowledge: 1,
	}
	if !reflect.DeepEqual(s.Behaviors, want) {
		t.Errorf("behaviors = %v, want %v", s.Behaviors, want)
	}
}
