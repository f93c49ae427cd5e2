package mission

import (
	"fmt"
	"testing"

	"github.com/abhisek/mathquest/internal/mastery"
	"github.com/abhisek/mathquest/internal/questionbank"
)

func richBank() []*questionbank.Question {
	var bank []*questionbank.Question
	add := func(prefix string, n int, tmpl questionbank.Template, concept string, tags ...string) {
		for i := 0; i < n; i++ {
			q := &questionbank.Question{
				ID:         fmt.Sprintf("%s-%d", prefix, i),
				ConceptID:  concept,
				Prompt:     "?",
				Difficulty: 2,
				Template:   tmpl,
			}
			for j, tag := range tags {
				q.Distractors = append(q.Distractors, questionbank.Distractor{
					Option:           fmt.Sprintf("d%d", j),
					MisconceptionTag: tag,
				})
			}
			bank = append(bank, q)
		}
	}
	add("mc-strong", 6, questionbank.TemplateMultipleChoice, "strong")
	add("mc-hurdle", 4, questionbank.TemplateMultipleChoice, "mid", "CARRY_DROPPED")
	add("ne-weak", 5, questionbank.TemplateNumericEntry, "weak")
	add("wp-weak", 4, questionbank.TemplateWordProblem, "weak")
	add("vm-strong", 3, questionbank.TemplateVisualModel, "strong")
	add("rp", 3, questionbank.TemplateReflectionPrompt, "strong")
	return bank
}

func slotMastery() *mastery.Store {
	m := mastery.NewStore()
	m.SetScore("strong", 0.85)
	m.SetScore("mid", 0.55)
	m.SetScore("weak", 0.25)
	return m
}

func TestSelectSlotsShape(t *testing.T) {
	slots := seededSelector().SelectSlots(richBank(), slotMastery(), []string{"CARRY_DROPPED"})

	if len(slots) != ExtendedTargetSize {
		t.Fatalf("slot count = %d, want %d", len(slots), ExtendedTargetSize)
	}

	phaseCounts := make(map[Phase]int)
	for i, sl := range slots {
		if sl.SlotIndex != i {
			t.Errorf("slot %d has index %d", i, sl.SlotIndex)
		}
		if sl.Question == nil {
			t.Fatalf("slot %d has no question", i)
		}
		if sl.SelectedConceptID != sl.Question.ConceptID {
			t.Errorf("slot %d concept %q does not match question concept %q",
				i, sl.SelectedConceptID, sl.Question.ConceptID)
		}
		if !templateAllowed(sl.Question.Template, sl.TemplateConstraint) {
			t.Errorf("slot %d question template %q outside constraint %v",
				i, sl.Question.Template, sl.TemplateConstraint)
		}
		phaseCounts[sl.Phase]++
	}

	want := map[Phase]int{
		PhaseWarmUp:         3,
		PhaseDiagnose:       3,
		PhaseGuidedPractice: 4,
		PhaseAdvanced:       2,
		PhaseReflection:     2,
	}
	for phase, n := range want {
		if phaseCounts[phase] != n {
			t.Errorf("phase %s count = %d, want %d", phase, phaseCounts[phase], n)
		}
	}
}

func TestSelectSlotsPhaseOrder(t *testing.T) {
	slots := seededSelector().SelectSlots(richBank(), slotMastery(), nil)
	order := []Phase{PhaseWarmUp, PhaseDiagnose, PhaseGuidedPractice, PhaseAdvanced, PhaseReflection}
	rank := make(map[Phase]int, len(order))
	for i, p := range order {
		rank[p] = i
	}
	prev := -1
	for i, sl := range slots {
		r := rank[sl.Phase]
		if r < prev {
			t.Fatalf("slot %d phase %s appears after a later phase", i, sl.Phase)
		}
		prev = r
	}
}

func TestSelectSlotsDiagnosePrefersHurdles(t *testing.T) {
	slots := seededSelector().SelectSlots(richBank(), slotMastery(), []string{"CARRY_DROPPED"})
	for _, sl := range slots {
		if sl.Phase != PhaseDiagnose {
			continue
		}
		if !sl.Question.HasMisconceptionTag([]string{"CARRY_DROPPED"}) {
			t.Errorf("diagnose slot %d picked %s, which probes no active hurdle",
				sl.SlotIndex, sl.Question.ID)
		}
	}
}

func TestSelectSlotsNoDuplicates(t *testing.T) {
	slots := seededSelector().SelectSlots(richBank(), slotMastery(), []string{"CARRY_DROPPED"})
	seen := make(map[string]struct{})
	for _, sl := range slots {
		if _, dup := seen[sl.Question.ID]; dup {
			t.Fatalf("question %s appears in two slots", sl.Question.ID)
		}
		seen[sl.Question.ID] = struct{}{}
	}
}

func TestSelectSlotsThinBankDropsSlots(t *testing.T) {
	// No reflection prompts in the bank: both reflection slots drop.
	var bank []*questionbank.Question
	for _, q := range richBank() {
		if q.Template != questionbank.TemplateReflectionPrompt {
			bank = append(bank, q)
		}
	}
	slots := seededSelector().SelectSlots(bank, slotMastery(), nil)
	if len(slots) != ExtendedTargetSize-2 {
		t.Fatalf("slot count = %d, want %d", len(slots), ExtendedTargetSize-2)
	}
	for _, sl := range slots {
		if sl.Phase == PhaseReflection {
			t.Errorf("reflection slot filled with %s despite no reflection prompts", sl.Question.ID)
		}
	}
}

func TestQuestionsFlatten(t *testing.T) {
	slots := seededSelector().SelectSlots(richBank(), slotMastery(), nil)
	qs := Questions(slots)
	if len(qs) != len(slots) {
		t.Fatalf("flattened %d questions from %d slots", len(qs), len(slots))
	}
	for i := range slots {
		if qs[i] != slots[i].Question {
			t.Fatalf("position %d does not preserve slot order", i)
		}
	}
}
