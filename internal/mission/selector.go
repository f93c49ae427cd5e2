// Package mission assembles the ordered question list for a practice
// session from the learner's mastery and hurdle state.
package mission

import (
	"math/rand"
	"time"

	"github.com/abhisek/mathquest/internal/mastery"
	"github.com/abhisek/mathquest/internal/questionbank"
)

const (
	// WarmupThreshold: concepts scoring above it qualify as warm-ups.
	WarmupThreshold = 0.70

	// FrontierThreshold: concepts scoring below it (or never seen)
	// qualify as frontier material.
	FrontierThreshold = 0.40

	WarmupQuota   = 3
	HurdleQuota   = 4
	FrontierQuota = 3

	// TargetSize is the standard mission length.
	TargetSize = 10
)

// Selector builds missions. Pass a seeded *rand.Rand for deterministic
// selection in tests; a nil rng gets a time-seeded one.
type Selector struct {
	rng *rand.Rand
}

func NewSelector(rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rng: rng}
}

// Select assembles a mission of up to TargetSize questions using the
// 3-4-3 quota split: warm-ups on strong concepts, hurdle-killers probing
// active misconceptions, and frontier questions on weak or unseen
// concepts. Quotas a category cannot fill are made up with uniformly
// random questions, and the final list order is shuffled so category
// membership never shows through as position.
func (s *Selector) Select(questions []*questionbank.Question, m *mastery.Store, activeHurdles []string) []*questionbank.Question {
	return s.SelectN(questions, m, activeHurdles, TargetSize)
}

// SelectN is Select with a configurable target size.
func (s *Selector) SelectN(questions []*questionbank.Question, m *mastery.Store, activeHurdles []string, target int) []*questionbank.Question {
	return s.selectN(questions, m, activeHurdles, target)
}

func (s *Selector) selectN(questions []*questionbank.Question, m *mastery.Store, activeHurdles []string, target int) []*questionbank.Question {
	hurdleSet := make(map[string]struct{}, len(activeHurdles))
	for _, tag := range activeHurdles {
		hurdleSet[tag] = struct{}{}
	}

	used := make(map[string]struct{})
	var picked []*questionbank.Question

	// Each quota is additionally capped by the room left under the
	// target, so small targets shrink the categories instead of
	// over-serving.
	take := func(pool []*questionbank.Question, n int) {
		if room := target - len(picked); n > room {
			n = room
		}
		s.shuffle(pool)
		for _, q := range pool {
			if n == 0 {
				return
			}
			if _, ok := used[q.ID]; ok {
				continue
			}
			used[q.ID] = struct{}{}
			picked = append(picked, q)
			n--
		}
	}

	take(filter(questions, func(q *questionbank.Question) bool {
		return isWarmup(q, m)
	}), WarmupQuota)
	take(filter(questions, func(q *questionbank.Question) bool {
		return isHurdleKiller(q, hurdleSet)
	}), HurdleQuota)
	take(filter(questions, func(q *questionbank.Question) bool {
		return isFrontier(q, m)
	}), FrontierQuota)

	// Random fill to the target, or until the bank runs out.
	if len(picked) < target {
		take(append([]*questionbank.Question(nil), questions...), target-len(picked))
	}

	s.shuffle(picked)
	return picked
}

func (s *Selector) shuffle(qs []*questionbank.Question) {
	s.rng.Shuffle(len(qs), func(i, j int) { qs[i], qs[j] = qs[j], qs[i] })
}

func isWarmup(q *questionbank.Question, m *mastery.Store) bool {
	score, seen := m.Score(q.ConceptID)
	return seen && score > WarmupThreshold
}

func isFrontier(q *questionbank.Question, m *mastery.Store) bool {
	score, seen := m.Score(q.ConceptID)
	return !seen || score < FrontierThreshold
}

func isHurdleKiller(q *questionbank.Question, hurdleSet map[string]struct{}) bool {
	for _, d := range q.Distractors {
		if _, ok := hurdleSet[d.MisconceptionTag]; ok {
			return true
		}
	}
	return false
}

func filter(qs []*questionbank.Question, keep func(*questionbank.Question) bool) []*questionbank.Question {
	var out []*questionbank.Question
	for _, q := range qs {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}
