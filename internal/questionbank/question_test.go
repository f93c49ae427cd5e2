package questionbank

import (
	"context"
	"testing"
)

func TestHasMisconceptionTag(t *testing.T) {
	q := &Question{
		ID: "q1",
		Distractors: []Distractor{
			{Option: "513", MisconceptionTag: "CARRY_DROPPED"},
			{Option: "633"},
		},
	}

	if !q.HasMisconceptionTag([]string{"CARRY_DROPPED"}) {
		t.Error("expected match on CARRY_DROPPED")
	}
	if q.HasMisconceptionTag([]string{"BORROW_SKIPPED"}) {
		t.Error("unexpected match on BORROW_SKIPPED")
	}
	if q.HasMisconceptionTag(nil) {
		t.Error("unexpected match on empty tag list")
	}
}

func TestMemoryBankReturnsCopy(t *testing.T) {
	bank := NewMemoryBank(SeedQuestions())

	first, err := bank.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	first[0].ID = "mutated"

	second, err := bank.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("fetch again: %v", err)
	}
	if second[0].ID == "mutated" {
		t.Error("FetchAll must return a copy the caller may mutate")
	}
}

func TestSeedQuestionsIntegrity(t *testing.T) {
	seen := make(map[string]struct{})
	for _, q := range SeedQuestions() {
		if _, dup := seen[q.ID]; dup {
			t.Errorf("duplicate question ID %s", q.ID)
		}
		seen[q.ID] = struct{}{}

		if q.ConceptID == "" {
			t.Errorf("%s: empty concept ID", q.ID)
		}
		if q.CorrectAnswer == "" {
			t.Errorf("%s: empty correct answer", q.ID)
		}
		if q.Difficulty < 1 || q.Difficulty > 5 {
			t.Errorf("%s: difficulty %d out of range", q.ID, q.Difficulty)
		}
		if q.Template == "" {
			t.Errorf("%s: empty template", q.ID)
		}
		for _, d := range q.Distractors {
			if d.Option == q.CorrectAnswer {
				t.Errorf("%s: distractor %q equals the correct answer", q.ID, d.Option)
			}
		}
	}
}
