package store

import (
	"context"
	"time"

	"github.com/abhisek/mathquest/internal/telemetry"
)

// MasterySnapshotData is the persisted concept → score map.
type MasterySnapshotData struct {
	Concepts map[string]float64 `json:"concepts"`
}

// HurdleData is the persisted counters for one misconception tag.
type HurdleData struct {
	MissCount          int `json:"miss_count"`
	ConsecutiveCorrect int `json:"consecutive_correct"`
}

// HurdleSnapshotData is the persisted tag → hurdle map.
type HurdleSnapshotData struct {
	Hurdles map[string]HurdleData `json:"hurdles"`
}

// SnapshotData captures one learner's state at a session boundary.
type SnapshotData struct {
	Version int                  `json:"version"`
	Mastery *MasterySnapshotData `json:"mastery,omitempty"`
	Hurdles *HurdleSnapshotData  `json:"hurdles,omitempty"`
}

// Snapshot is a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	UserID    string
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots, keyed by user.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the user's most recent snapshot, or nil if none exist.
	Latest(ctx context.Context, userID string) (*Snapshot, error)

	// Prune deletes all but the user's N most recent snapshots.
	Prune(ctx context.Context, userID string, keep int) error
}

// RewardEventData captures one earned award.
type RewardEventData struct {
	AwardType string
	Rarity    string
	SessionID string
	ConceptID string
	Reason    string
}

// RewardRepo provides append and summary access to reward events.
type RewardRepo interface {
	// AppendReward records one award.
	AppendReward(ctx context.Context, data RewardEventData) error

	// Counts returns award counts by type and the overall total.
	Counts(ctx context.Context) (map[string]int, int, error)
}

// LLMRequestEventData captures a single LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// IssueData is the persisted form of one validation issue.
type IssueData struct {
	Field    string `json:"field"`
	Tier     string `json:"tier"`
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

// ValidationReportData captures the audit verdict for one telemetry record.
type ValidationReportData struct {
	QuestionID   string
	EmittedAt    int64
	Status       string
	ErrorCount   int
	WarningCount int
	Issues       []IssueData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendTelemetry writes one telemetry record to the sink. The sink is
	// append-only and keyed by (questionId, timestamp); a duplicate key is
	// an error surfaced to the caller, never a silent overwrite.
	AppendTelemetry(ctx context.Context, sessionID string, rec *telemetry.Record) error

	// RecentTelemetry returns the newest records, most recent first,
	// optionally filtered to one concept (empty atomID = all).
	RecentTelemetry(ctx context.Context, atomID string, lastN int) ([]*telemetry.Record, error)

	// AppendValidationReport records an audit verdict.
	AppendValidationReport(ctx context.Context, data ValidationReportData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// LLMUsage aggregates request counts and token totals per model.
	LLMUsage(ctx context.Context) ([]LLMUsageSummary, error)
}

// LLMUsageSummary is the per-model rollup of LLM request events.
type LLMUsageSummary struct {
	Model        string `json:"model"`
	Requests     int    `json:"count"`
	InputTokens  int    `json:"sum_input_tokens"`
	OutputTokens int    `json:"sum_output_tokens"`
}
