package session

import (
	"github.com/abhisek/mathquest/internal/mastery"
)

// Summary is the end-of-session rollup shown to the student and fed to
// the rewards engine.
type Summary struct {
	SessionID string
	Mode      mastery.Mode
	Reason    CompletionReason

	Answered  int
	Correct   int
	Recovered int

	// Accuracy is Correct/Answered, zeroed for an unanswered session.
	Accuracy float64

	// BestStreak is the longest run of consecutive correct answers,
	// counting recoveries as correct.
	BestStreak int

	// ConceptScores holds the post-session mastery of every concept
	// touched during the session.
	ConceptScores map[string]float64

	// Behaviors counts answers per learning-pattern label.
	Behaviors map[mastery.Behavior]int
}

// Summarize rolls up the session so far. Valid at any point, but usually
// called once the status is COMPLETE.
func (c *Controller) Summarize() Summary {
	s := Summary{
		SessionID:     c.cfg.SessionID,
		Mode:          c.cfg.Mode,
		Reason:        c.reason,
		Answered:      len(c.records),
		Correct:       c.correct,
		ConceptScores: make(map[string]float64, len(c.touched)),
	}
	streak := 0
	for _, rec := range c.records {
		if rec.IsRecovered {
			s.Recovered++
		}
		if rec.IsCorrect {
			streak++
			if streak > s.BestStreak {
				s.BestStreak = streak
			}
		} else {
			streak = 0
		}
	}
	if s.Answered > 0 {
		s.Accuracy = float64(s.Correct) / float64(s.Answered)
	}
	for id := range c.touched {
		s.ConceptScores[id] = c.cfg.Mastery.Get(id).Score
	}
	if len(c.behaviors) > 0 {
		s.Behaviors = make(map[mastery.Behavior]int, len(c.behaviors))
		for b, n := range c.behaviors {
			s.Behaviors[b] = n
		}
	}
	return s
}
