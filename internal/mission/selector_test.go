package mission

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/abhisek/mathquest/internal/mastery"
	"github.com/abhisek/mathquest/internal/questionbank"
)

func mcq(id, concept string, tags ...string) *questionbank.Question {
	q := &questionbank.Question{
		ID:         id,
		ConceptID:  concept,
		Prompt:     "?",
		Difficulty: 2,
		Template:   questionbank.TemplateMultipleChoice,
	}
	for i, tag := range tags {
		q.Distractors = append(q.Distractors, questionbank.Distractor{
			Option:           fmt.Sprintf("d%d", i),
			MisconceptionTag: tag,
		})
	}
	return q
}

func seededSelector() *Selector {
	return NewSelector(rand.New(rand.NewSource(42)))
}

func countByConcept(qs []*questionbank.Question) map[string]int {
	counts := make(map[string]int)
	for _, q := range qs {
		counts[q.ConceptID]++
	}
	return counts
}

func TestSelectSplitsStrongAndWeakConcepts(t *testing.T) {
	// Concept A is mastered, concept B is weak. With no active hurdles, A
	// can enter only through the warm-up quota of three, so a ten-question
	// mission over 3 A-questions and 7 B-questions must take all of both.
	m := mastery.NewStore()
	m.SetScore("A", 0.9)
	m.SetScore("B", 0.2)

	var bank []*questionbank.Question
	for i := 0; i < 3; i++ {
		bank = append(bank, mcq(fmt.Sprintf("a-%d", i), "A"))
	}
	for i := 0; i < 7; i++ {
		bank = append(bank, mcq(fmt.Sprintf("b-%d", i), "B"))
	}

	got := seededSelector().Select(bank, m, nil)
	if len(got) != TargetSize {
		t.Fatalf("selected %d questions, want %d", len(got), TargetSize)
	}
	counts := countByConcept(got)
	if counts["A"] != 3 || counts["B"] != 7 {
		t.Errorf("concept split = %v, want A:3 B:7", counts)
	}
}

func TestSelectNoDuplicates(t *testing.T) {
	// Every question qualifies for multiple categories; the used set must
	// still keep each question to one slot.
	m := mastery.NewStore()
	m.SetScore("weak", 0.2)

	var bank []*questionbank.Question
	for i := 0; i < 12; i++ {
		bank = append(bank, mcq(fmt.Sprintf("q-%d", i), "weak", "TAG_X"))
	}

	got := seededSelector().Select(bank, m, []string{"TAG_X"})
	seen := make(map[string]struct{})
	for _, q := range got {
		if _, dup := seen[q.ID]; dup {
			t.Fatalf("question %s selected twice", q.ID)
		}
		seen[q.ID] = struct{}{}
	}
	if len(got) != TargetSize {
		t.Errorf("selected %d questions, want %d", len(got), TargetSize)
	}
}

func TestSelectHurdleKillers(t *testing.T) {
	m := mastery.NewStore()
	m.SetScore("mid", 0.55) // neither warm-up nor frontier

	var bank []*questionbank.Question
	for i := 0; i < 4; i++ {
		bank = append(bank, mcq(fmt.Sprintf("h-%d", i), "mid", "SIGN_IGNORANCE"))
	}
	for i := 0; i < 6; i++ {
		bank = append(bank, mcq(fmt.Sprintf("p-%d", i), "mid"))
	}

	got := seededSelector().Select(bank, m, []string{"SIGN_IGNORANCE"})
	tagged := 0
	for _, q := range got {
		if q.HasMisconceptionTag([]string{"SIGN_IGNORANCE"}) {
			tagged++
		}
	}
	if tagged != 4 {
		t.Errorf("hurdle-killer count = %d, want the full quota of 4", tagged)
	}
}

func TestSelectNRespectsSmallTarget(t *testing.T) {
	// A target below the combined quotas must shrink the categories, not
	// over-serve: a 20-question bank with every category populated still
	// yields exactly the asked-for five.
	m := mastery.NewStore()
	m.SetScore("strong", 0.9)
	m.SetScore("weak", 0.2)

	var bank []*questionbank.Question
	for i := 0; i < 10; i++ {
		bank = append(bank, mcq(fmt.Sprintf("s-%d", i), "strong"))
	}
	for i := 0; i < 10; i++ {
		bank = append(bank, mcq(fmt.Sprintf("w-%d", i), "weak", "TAG_X"))
	}

	for _, target := range []int{1, 5, 9} {
		got := seededSelector().SelectN(bank, m, []string{"TAG_X"}, target)
		if len(got) != target {
			t.Errorf("SelectN(target=%d) returned %d questions", target, len(got))
		}
	}
}

func TestSelectExhaustsSmallBank(t *testing.T) {
	m := mastery.NewStore()
	bank := []*questionbank.Question{
		mcq("only-1", "x"),
		mcq("only-2", "y"),
	}
	got := seededSelector().Select(bank, m, nil)
	if len(got) != 2 {
		t.Errorf("selected %d questions from a 2-question bank, want 2", len(got))
	}
}

func TestSelectEmptyBank(t *testing.T) {
	got := seededSelector().Select(nil, mastery.NewStore(), nil)
	if len(got) != 0 {
		t.Errorf("selected %d questions from an empty bank, want 0", len(got))
	}
}

func TestSelectDeterministicWithSeededRand(t *testing.T) {
	m := mastery.NewStore()
	m.SetScore("A", 0.9)
	var bank []*questionbank.Question
	for i := 0; i < 20; i++ {
		bank = append(bank, mcq(fmt.Sprintf("q-%d", i), "A"))
	}

	a := NewSelector(rand.New(rand.NewSource(7))).Select(bank, m, nil)
	b := NewSelector(rand.New(rand.NewSource(7))).Select(bank, m, nil)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("position %d differs: %s vs %s", i, a[i].ID, b[i].ID)
		}
	}
}
