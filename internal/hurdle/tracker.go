// Package hurdle tracks recurring misconception patterns ("hurdles") and
// the consecutive-success rule that clears them.
package hurdle

import "sort"

// DefaultClearStreak is the consecutive-correct count that defeats a hurdle.
const DefaultClearStreak = 3

// State is the counters for one misconception tag.
type State struct {
	Tag                string `json:"tag"`
	MissCount          int    `json:"miss_count"`
	ConsecutiveCorrect int    `json:"consecutive_correct"`
}

// Active reports whether the hurdle still has unresolved misses.
func (s *State) Active() bool {
	return s.MissCount > 0
}

// Tracker maintains hurdle state for one learner.
type Tracker struct {
	hurdles     map[string]*State
	clearStreak int
}

// NewTracker creates a tracker with the default clear streak.
func NewTracker() *Tracker {
	return NewTrackerWithStreak(DefaultClearStreak)
}

// NewTrackerWithStreak creates a tracker with a custom clear streak.
// Values below 1 fall back to the default.
func NewTrackerWithStreak(clearStreak int) *Tracker {
	if clearStreak < 1 {
		clearStreak = DefaultClearStreak
	}
	return &Tracker{
		hurdles:     make(map[string]*State),
		clearStreak: clearStreak,
	}
}

// OnAnswer updates the counters for a tagged answer and returns the hurdle's
// state afterwards. A nil-equivalent (empty) tag is a no-op returning nil.
//
// A miss creates the entry if absent, increments MissCount and resets the
// correct streak. A correct answer increments the streak; reaching the clear
// streak defeats the hurdle — both counters reset to zero. No partial credit
// below the threshold.
func (t *Tracker) OnAnswer(tag string, isCorrect bool) *State {
	if tag == "" {
		return nil
	}

	s, ok := t.hurdles[tag]
	if !ok {
		if isCorrect {
			// Never missed on this tag; nothing to track.
			return nil
		}
		s = &State{Tag: tag}
		t.hurdles[tag] = s
	}

	if !isCorrect {
		s.MissCount++
		s.ConsecutiveCorrect = 0
		return s
	}

	s.ConsecutiveCorrect++
	if s.ConsecutiveCorrect >= t.clearStreak {
		s.MissCount = 0
		s.ConsecutiveCorrect = 0
	}
	return s
}

// Get returns the state for a tag, or nil if the tag was never missed.
func (t *Tracker) Get(tag string) *State {
	return t.hurdles[tag]
}

// ActiveHurdles returns the tags with unresolved misses, sorted for
// deterministic iteration. The mission selector reads this to fill the
// hurdle-killer quota.
func (t *Tracker) ActiveHurdles() []string {
	var tags []string
	for tag, s := range t.hurdles {
		if s.Active() {
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags
}
