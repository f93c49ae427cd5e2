// Package mastery holds per-concept mastery scores and the pure estimator
// that moves them in response to answer events.
package mastery

const (
	// PriorScore is the starting score for a concept on first encounter.
	PriorScore = 0.5

	// ScoreFloor and ScoreCeil bound every mastery score. The score never
	// reports total ignorance or total certainty so there is always room
	// for future evidence to move it.
	ScoreFloor = 0.10
	ScoreCeil  = 0.99
)

// ConceptMastery is the estimated competence on a single concept.
type ConceptMastery struct {
	ConceptID string  `json:"concept_id"`
	Score     float64 `json:"score"`
}

// Store is the in-memory concept → mastery map for one learner. It is
// exclusively owned by the session driving it; persistence happens through
// an explicit snapshot at session boundaries.
type Store struct {
	concepts map[string]*ConceptMastery
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{concepts: make(map[string]*ConceptMastery)}
}

// Get returns the mastery record for a concept, creating it at the prior
// score on first encounter. Records are never deleted within a session.
func (s *Store) Get(conceptID string) *ConceptMastery {
	if cm, ok := s.concepts[conceptID]; ok {
		return cm
	}
	cm := &ConceptMastery{ConceptID: conceptID, Score: PriorScore}
	s.concepts[conceptID] = cm
	return cm
}

// Seen reports whether the concept has been encountered.
func (s *Store) Seen(conceptID string) bool {
	_, ok := s.concepts[conceptID]
	return ok
}

// Score returns the current score for a concept without creating an entry.
// The second return value is false for unseen concepts.
func (s *Store) Score(conceptID string) (float64, bool) {
	cm, ok := s.concepts[conceptID]
	if !ok {
		return 0, false
	}
	return cm.Score, true
}

// SetScore writes a score for a concept, clamping it into the legal range.
func (s *Store) SetScore(conceptID string, score float64) {
	s.Get(conceptID).Score = Clamp(score)
}

// MeanScore returns the mean score across the given concept IDs. Unseen
// concepts count at the prior. Returns 0 for an empty ID list.
func (s *Store) MeanScore(conceptIDs []string) float64 {
	if len(conceptIDs) == 0 {
		return 0
	}
	sum := 0.0
	for _, id := range conceptIDs {
		if cm, ok := s.concepts[id]; ok {
			sum += cm.Score
		} else {
			sum += PriorScore
		}
	}
	return sum / float64(len(conceptIDs))
}

// All returns every mastery record keyed by concept ID.
func (s *Store) All() map[string]*ConceptMastery {
	out := make(map[string]*ConceptMastery, len(s.concepts))
	for id, cm := range s.concepts {
		out[id] = cm
	}
	return out
}

// Clamp bounds a score to [ScoreFloor, ScoreCeil].
func Clamp(score float64) float64 {
	if score < ScoreFloor {
		return ScoreFloor
	}
	if score > ScoreCeil {
		return ScoreCeil
	}
	return score
}
