package mastery

import "github.com/abhisek/mathquest/internal/store"

// NewStoreFromSnapshot rebuilds a Store from persisted state. A nil
// snapshot yields an empty store. Persisted scores are clamped on load so
// a hand-edited or corrupt snapshot cannot smuggle an out-of-range score
// into the session.
func NewStoreFromSnapshot(data *store.MasterySnapshotData) *Store {
	s := NewStore()
	if data == nil {
		return s
	}
	for id, score := range data.Concepts {
		s.concepts[id] = &ConceptMastery{ConceptID: id, Score: Clamp(score)}
	}
	return s
}

// SnapshotData exports the store for persistence at a session boundary.
func (s *Store) SnapshotData() *store.MasterySnapshotData {
	data := &store.MasterySnapshotData{
		Concepts: make(map[string]float64, len(s.concepts)),
	}
	for id, cm := range s.concepts {
		data.Concepts[id] = cm.Score
	}
	return data
}
