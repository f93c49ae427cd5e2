package hurdle

import "github.com/abhisek/mathquest/internal/store"

// NewTrackerFromSnapshot rebuilds a tracker from persisted state. A nil
// snapshot yields an empty tracker.
func NewTrackerFromSnapshot(data *store.HurdleSnapshotData, clearStreak int) *Tracker {
	t := NewTrackerWithStreak(clearStreak)
	if data == nil {
		return t
	}
	for tag, hd := range data.Hurdles {
		if hd.MissCount < 0 {
			continue
		}
		t.hurdles[tag] = &State{
			Tag:                tag,
			MissCount:          hd.MissCount,
			ConsecutiveCorrect: hd.ConsecutiveCorrect,
		}
	}
	return t
}

// SnapshotData exports the tracker for persistence at a session boundary.
func (t *Tracker) SnapshotData() *store.HurdleSnapshotData {
	data := &store.HurdleSnapshotData{
		Hurdles: make(map[string]store.HurdleData, len(t.hurdles)),
	}
	for tag, s := range t.hurdles {
		data.Hurdles[tag] = store.HurdleData{
			MissCount:          s.MissCount,
			ConsecutiveCorrect: s.ConsecutiveCorrect,
		}
	}
	return data
}
