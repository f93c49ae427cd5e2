package session

import (
	"context"
	"time"

	"github.com/abhisek/mathquest/internal/hurdle"
	"github.com/abhisek/mathquest/internal/logger"
	"github.com/abhisek/mathquest/internal/mastery"
	"github.com/abhisek/mathquest/internal/store"
	"github.com/abhisek/mathquest/internal/telemetry"
)

const snapshotDataVersion = 1

// checkpoint is one unit of ordered persistence: the telemetry record and
// the learner state captured immediately after it was applied.
type checkpoint struct {
	sessionID string
	record    *telemetry.Record
	snap      store.SnapshotData
}

// Checkpointer persists answers in arrival order: each telemetry record is
// appended before its snapshot is saved, and before any later record. A
// single worker goroutine drains a FIFO queue so the answer loop never
// blocks on the database.
type Checkpointer struct {
	userID  string
	events  store.EventRepo
	snaps   store.SnapshotRepo
	log     *logger.Logger
	pending chan checkpoint
	done    chan struct{}
}

func NewCheckpointer(userID string, events store.EventRepo, snaps store.SnapshotRepo, log *logger.Logger) *Checkpointer {
	if log == nil {
		log = logger.Nop()
	}
	cp := &Checkpointer{
		userID:  userID,
		events:  events,
		snaps:   snaps,
		log:     log,
		pending: make(chan checkpoint, 64),
		done:    make(chan struct{}),
	}
	go cp.drain()
	return cp
}

// Enqueue captures the learner state as of this record and queues both for
// persistence. Call from the answer loop, immediately after SubmitAnswer,
// so the captured snapshot matches the record's masteryAfter.
func (cp *Checkpointer) Enqueue(sessionID string, rec *telemetry.Record, m *mastery.Store, h *hurdle.Tracker) {
	cp.pending <- checkpoint{
		sessionID: sessionID,
		record:    rec,
		snap: store.SnapshotData{
			Version: snapshotDataVersion,
			Mastery: m.SnapshotData(),
			Hurdles: h.SnapshotData(),
		},
	}
}

// Close waits for every queued checkpoint to reach the database.
func (cp *Checkpointer) Close() {
	close(cp.pending)
	<-cp.done
}

func (cp *Checkpointer) drain() {
	defer close(cp.done)
	for c := range cp.pending {
		ctx := context.Background()
		if err := cp.events.AppendTelemetry(ctx, c.sessionID, c.record); err != nil {
			cp.log.Error("append telemetry record",
				"questionId", c.record.QuestionID, "error", err)
			continue
		}
		snap := &store.Snapshot{
			UserID:    cp.userID,
			Timestamp: time.UnixMilli(c.record.Timestamp),
			Data:      c.snap,
		}
		if err := cp.snaps.Save(ctx, snap); err != nil {
			cp.log.Error("save learner snapshot",
				"questionId", c.record.QuestionID, "error", err)
		}
	}
}
