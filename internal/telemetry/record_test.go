package telemetry

import (
	"strings"
	"testing"
)

func TestMarshalWireOmitsConditionalFields(t *testing.T) {
	rec := &Record{
		QuestionID: "q1", StudentAnswer: "623", CorrectAnswer: "623",
		IsCorrect: true, TimeSpent: 4200, SpeedRating: "STEADY",
		MasteryBefore: 0.5, MasteryAfter: 0.6,
		AtomID: "arith.add.carry", Timestamp: 1700000000000,
	}

	data, err := rec.MarshalWire()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	wire := string(data)
	if strings.Contains(wire, "diagnosticTag") {
		t.Error("correct answer must not carry diagnosticTag")
	}
	if strings.Contains(wire, "recoveryVelocity") {
		t.Error("non-recovered answer must not carry recoveryVelocity")
	}
}

func TestMarshalWireIncludesRecoveryVelocity(t *testing.T) {
	v := 0.7
	rec := &Record{
		QuestionID: "q1", StudentAnswer: "623", CorrectAnswer: "623",
		IsCorrect: true, IsRecovered: true, RecoveryVelocity: &v,
		TimeSpent: 13000, SpeedRating: "STEADY",
		AtomID: "arith.add.carry", Timestamp: 1,
	}

	data, err := rec.MarshalWire()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"recoveryVelocity":0.7`) {
		t.Errorf("wire form missing recoveryVelocity: %s", data)
	}

	back, err := UnmarshalWire(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.RecoveryVelocity == nil || *back.RecoveryVelocity != 0.7 {
		t.Errorf("recoveryVelocity = %v, want 0.7", back.RecoveryVelocity)
	}
}
