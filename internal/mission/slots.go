package mission

import (
	"github.com/abhisek/mathquest/internal/mastery"
	"github.com/abhisek/mathquest/internal/questionbank"
)

// Phase is the pedagogical stage a slot belongs to. Phases run in a fixed
// order; the question inside a phase is still chosen by mastery and hurdle
// state.
type Phase string

const (
	PhaseWarmUp         Phase = "warm-up"
	PhaseDiagnose       Phase = "diagnose"
	PhaseGuidedPractice Phase = "guided-practice"
	PhaseAdvanced       Phase = "advanced"
	PhaseReflection     Phase = "reflection"
)

// ExtendedTargetSize is the slotted mission length.
const ExtendedTargetSize = 14

// Slot is one position in an extended mission plan. Slots are generated
// fresh per session and consumed once.
type Slot struct {
	SlotIndex          int
	Phase              Phase
	Intent             string
	TemplateConstraint []questionbank.Template
	SelectedConceptID  string
	Question           *questionbank.Question
}

// phasePlan fixes the 14-slot shape: 3 warm-up, 3 diagnose, 4 guided
// practice, 2 advanced, 2 reflection.
type phaseSpec struct {
	phase     Phase
	count     int
	intent    string
	templates []questionbank.Template
}

func phasePlan() []phaseSpec {
	return []phaseSpec{
		{
			phase:     PhaseWarmUp,
			count:     3,
			intent:    "rebuild confidence on a strong concept",
			templates: []questionbank.Template{questionbank.TemplateMultipleChoice, questionbank.TemplateNumericEntry},
		},
		{
			phase:     PhaseDiagnose,
			count:     3,
			intent:    "probe an active misconception",
			templates: []questionbank.Template{questionbank.TemplateMultipleChoice},
		},
		{
			phase:     PhaseGuidedPractice,
			count:     4,
			intent:    "stretch into unfamiliar ground",
			templates: []questionbank.Template{questionbank.TemplateNumericEntry, questionbank.TemplateWordProblem},
		},
		{
			phase:     PhaseAdvanced,
			count:     2,
			intent:    "apply a solid concept under load",
			templates: []questionbank.Template{questionbank.TemplateWordProblem, questionbank.TemplateVisualModel},
		},
		{
			phase:     PhaseReflection,
			count:     2,
			intent:    "consolidate what just happened",
			templates: []questionbank.Template{questionbank.TemplateReflectionPrompt},
		},
	}
}

// SelectSlots assembles the extended 14-slot mission. Each slot admits only
// its phase's question templates, and within that pool the phase applies
// the same category logic as Select: warm-up and advanced slots draw from
// strong concepts, diagnose slots from hurdle-killers, guided-practice
// slots from the frontier. A phase that cannot fill a slot from its
// preferred category falls back to any template-eligible question; a slot
// with no eligible question left is dropped, so a thin bank yields fewer
// than 14 slots.
func (s *Selector) SelectSlots(questions []*questionbank.Question, m *mastery.Store, activeHurdles []string) []Slot {
	hurdleSet := make(map[string]struct{}, len(activeHurdles))
	for _, tag := range activeHurdles {
		hurdleSet[tag] = struct{}{}
	}

	used := make(map[string]struct{})
	var slots []Slot
	idx := 0

	for _, ps := range phasePlan() {
		pool := filter(questions, func(q *questionbank.Question) bool {
			if _, ok := used[q.ID]; ok {
				return false
			}
			return templateAllowed(q.Template, ps.templates)
		})
		s.shuffle(pool)

		for i := 0; i < ps.count; i++ {
			q := pickForPhase(ps.phase, pool, used, m, hurdleSet)
			if q == nil {
				continue
			}
			used[q.ID] = struct{}{}
			slots = append(slots, Slot{
				SlotIndex:          idx,
				Phase:              ps.phase,
				Intent:             ps.intent,
				TemplateConstraint: ps.templates,
				SelectedConceptID:  q.ConceptID,
				Question:           q,
			})
			idx++
		}
	}
	return slots
}

// Questions flattens a slot plan into the ordered list the session
// controller consumes.
func Questions(slots []Slot) []*questionbank.Question {
	out := make([]*questionbank.Question, 0, len(slots))
	for _, sl := range slots {
		out = append(out, sl.Question)
	}
	return out
}

func pickForPhase(phase Phase, pool []*questionbank.Question, used map[string]struct{}, m *mastery.Store, hurdleSet map[string]struct{}) *questionbank.Question {
	preferred := func(q *questionbank.Question) bool {
		switch phase {
		case PhaseWarmUp, PhaseAdvanced:
			return isWarmup(q, m)
		case PhaseDiagnose:
			return isHurdleKiller(q, hurdleSet)
		case PhaseGuidedPractice:
			return isFrontier(q, m)
		default:
			return true
		}
	}

	var fallback *questionbank.Question
	for _, q := range pool {
		if _, ok := used[q.ID]; ok {
			continue
		}
		if preferred(q) {
			return q
		}
		if fallback == nil {
			fallback = q
		}
	}
	return fallback
}

func templateAllowed(t questionbank.Template, allowed []questionbank.Template) bool {
	for _, a := range allowed {
		if t == a {
			return true
		}
	}
	return false
}
