package store

import (
	"context"
	"fmt"

	"github.com/abhisek/mathquest/ent"
	"github.com/abhisek/mathquest/ent/telemetryevent"
	"github.com/abhisek/mathquest/internal/telemetry"
)

// eventRepo implements EventRepo over the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendTelemetry(ctx context.Context, sessionID string, rec *telemetry.Record) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.TelemetryEvent.Create().
		SetSequence(seqNum).
		SetSessionID(sessionID).
		SetQuestionID(rec.QuestionID).
		SetStudentAnswer(rec.StudentAnswer).
		SetCorrectAnswer(rec.CorrectAnswer).
		SetCorrect(rec.IsCorrect).
		SetTimeMs(rec.TimeSpent).
		SetSpeedRating(rec.SpeedRating).
		SetMasteryBefore(rec.MasteryBefore).
		SetMasteryAfter(rec.MasteryAfter).
		SetRecovered(rec.IsRecovered).
		SetAtomID(rec.AtomID).
		SetEmittedAt(rec.Timestamp)

	if rec.DiagnosticTag != "" {
		builder = builder.SetDiagnosticTag(rec.DiagnosticTag)
	}
	if rec.RecoveryVelocity != nil {
		builder = builder.SetRecoveryVelocity(*rec.RecoveryVelocity)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save telemetry event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentTelemetry(ctx context.Context, atomID string, lastN int) ([]*telemetry.Record, error) {
	q := r.client.TelemetryEvent.Query()
	if atomID != "" {
		q = q.Where(telemetryevent.AtomID(atomID))
	}
	events, err := q.
		Order(ent.Desc(telemetryevent.FieldSequence)).
		Limit(lastN).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent telemetry: %w", err)
	}

	records := make([]*telemetry.Record, len(events))
	for i, e := range events {
		records[i] = eventToRecord(e)
	}
	return records, nil
}

func eventToRecord(e *ent.TelemetryEvent) *telemetry.Record {
	rec := &telemetry.Record{
		QuestionID:    e.QuestionID,
		StudentAnswer: e.StudentAnswer,
		CorrectAnswer: e.CorrectAnswer,
		IsCorrect:     e.Correct,
		TimeSpent:     e.TimeMs,
		SpeedRating:   e.SpeedRating,
		MasteryBefore: e.MasteryBefore,
		MasteryAfter:  e.MasteryAfter,
		DiagnosticTag: e.DiagnosticTag,
		IsRecovered:   e.Recovered,
		AtomID:        e.AtomID,
		Timestamp:     e.EmittedAt,
	}
	if e.RecoveryVelocity != nil {
		v := *e.RecoveryVelocity
		rec.RecoveryVelocity = &v
	}
	return rec
}
