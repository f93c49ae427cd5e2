package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathquest/internal/hurdle"
	"github.com/abhisek/mathquest/internal/mastery"
	"github.com/abhisek/mathquest/internal/questionbank"
	"github.com/abhisek/mathquest/internal/telemetry"
)

// Status tracks whether a session is still accepting answers.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusComplete Status = "COMPLETE"
)

// CompletionReason records why a session ended.
type CompletionReason string

const (
	ReasonNone      CompletionReason = ""
	ReasonExhausted CompletionReason = "EXHAUSTED"
	ReasonConfident CompletionReason = "CONFIDENT"
	ReasonAbandoned CompletionReason = "ABANDONED"
)

var (
	ErrSessionComplete = errors.New("session: already complete")
	ErrQuestionMismatch = errors.New("session: event question does not match current question")
)

// Config wires a controller to its collaborators. Mastery and Hurdles are
// mutated in place as answers arrive; the caller owns persistence.
type Config struct {
	Mode      mastery.Mode
	SessionID string
	Questions []*questionbank.Question
	Mastery   *mastery.Store
	Hurdles   *hurdle.Tracker

	Speed mastery.SpeedThresholds

	// ConfidenceThreshold ends a diagnostic session early once the mean
	// mastery of every concept touched so far exceeds it. Ignored in
	// practice mode. Zero disables the early stop.
	ConfidenceThreshold float64

	// Now stamps telemetry records. Defaults to time.Now.
	Now func() time.Time
}

// Controller runs one session: it hands out questions in order, folds each
// answer into mastery and hurdle state, and emits one telemetry record per
// answer. Not safe for concurrent use.
type Controller struct {
	cfg     Config
	idx     int
	status  Status
	reason  CompletionReason
	touched   map[string]struct{}
	records   []*telemetry.Record
	correct   int
	behaviors map[mastery.Behavior]int
}

func NewController(cfg Config) (*Controller, error) {
	if cfg.Mastery == nil {
		return nil, errors.New("session: mastery store is required")
	}
	if cfg.Hurdles == nil {
		cfg.Hurdles = hurdle.NewTracker()
	}
	if cfg.Speed == (mastery.SpeedThresholds{}) {
		cfg.Speed = mastery.DefaultSpeedThresholds()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.SessionID == "" {
		cfg.SessionID = uuid.NewString()
	}

	c := &Controller{
		cfg:       cfg,
		status:    StatusActive,
		touched:   make(map[string]struct{}),
		behaviors: make(map[mastery.Behavior]int),
	}
	if len(cfg.Questions) == 0 {
		c.status = StatusComplete
		c.reason = ReasonExhausted
	}
	return c, nil
}

func (c *Controller) SessionID() string        { return c.cfg.SessionID }
func (c *Controller) Mode() mastery.Mode       { return c.cfg.Mode }
func (c *Controller) Status() Status           { return c.status }
func (c *Controller) Reason() CompletionReason { return c.reason }

// Current returns the question awaiting an answer, or nil once complete.
func (c *Controller) Current() *questionbank.Question {
	if c.status != StatusActive {
		return nil
	}
	return c.cfg.Questions[c.idx]
}

// Progress reports answered and total question counts.
func (c *Controller) Progress() (answered, total int) {
	return c.idx, len(c.cfg.Questions)
}

// Records returns every telemetry record emitted so far, in answer order.
func (c *Controller) Records() []*telemetry.Record { return c.records }

// Abandon ends the session without touching mastery or hurdle state for
// the unanswered remainder. Records already emitted stand.
func (c *Controller) Abandon() {
	if c.status != StatusActive {
		return
	}
	c.status = StatusComplete
	c.reason = ReasonAbandoned
}

// SubmitAnswer folds one answer into session state and returns the
// telemetry record for it. The event must reference the current question.
func (c *Controller) SubmitAnswer(ev ResponseEvent) (*telemetry.Record, error) {
	if c.status != StatusActive {
		return nil, ErrSessionComplete
	}
	q := c.cfg.Questions[c.idx]
	if ev.QuestionID != q.ID {
		return nil, ErrQuestionMismatch
	}

	before := c.cfg.Mastery.Get(q.ConceptID).Score

	var velocity float64
	if ev.IsRecovered {
		velocity = mastery.RecoveryVelocity(ev.ThinkingTimeMs, ev.RecoveryTimeMs)
	}
	out := mastery.Outcome{
		Correct:          ev.IsCorrect && !ev.IsRecovered,
		Recovered:        ev.IsRecovered,
		RecoveryVelocity: velocity,
	}
	after := mastery.Update(before, out, c.cfg.Mode)
	c.cfg.Mastery.SetScore(q.ConceptID, after)
	c.touched[q.ConceptID] = struct{}{}
	c.behaviors[mastery.ClassifyBehavior(out)]++

	c.updateHurdles(q, ev)

	rec := c.buildRecord(q, ev, before, after, velocity)
	c.records = append(c.records, rec)
	if ev.IsCorrect {
		c.correct++
	}

	c.idx++
	c.advance()
	return rec, nil
}

// updateHurdles charges a miss against the chosen distractor's tag, and
// credits a first-try correct answer against every tag the question could
// have probed.
func (c *Controller) updateHurdles(q *questionbank.Question, ev ResponseEvent) {
	if !ev.IsCorrect || ev.IsRecovered {
		c.cfg.Hurdles.OnAnswer(ev.MisconceptionTag, false)
		return
	}
	seen := make(map[string]struct{})
	for _, d := range q.Distractors {
		if d.MisconceptionTag == "" {
			continue
		}
		if _, dup := seen[d.MisconceptionTag]; dup {
			continue
		}
		seen[d.MisconceptionTag] = struct{}{}
		c.cfg.Hurdles.OnAnswer(d.MisconceptionTag, true)
	}
}

func (c *Controller) buildRecord(q *questionbank.Question, ev ResponseEvent, before, after, velocity float64) *telemetry.Record {
	timeSpent := ev.ThinkingTimeMs
	if ev.IsRecovered {
		timeSpent += ev.RecoveryTimeMs
	}
	if timeSpent > telemetry.MaxTimeSpentMs {
		timeSpent = telemetry.MaxTimeSpentMs
	}

	rec := &telemetry.Record{
		QuestionID:    q.ID,
		StudentAnswer: ev.StudentChoice,
		CorrectAnswer: ev.CorrectChoice,
		IsCorrect:     ev.IsCorrect,
		TimeSpent:     timeSpent,
		SpeedRating:   string(c.cfg.Speed.ClassifySpeed(ev.ThinkingTimeMs, c.cfg.Mode, q.Difficulty)),
		MasteryBefore: before,
		MasteryAfter:  after,
		IsRecovered:   ev.IsRecovered,
		AtomID:        q.ConceptID,
		Timestamp:     c.cfg.Now().UnixMilli(),
	}
	if !ev.IsCorrect {
		rec.DiagnosticTag = ev.MisconceptionTag
		if rec.DiagnosticTag == "" {
			rec.DiagnosticTag = telemetry.TagUnclassified
		}
	}
	if ev.IsRecovered {
		v := velocity
		rec.RecoveryVelocity = &v
	}
	return rec
}

// advance checks the stopping rules after each answer.
func (c *Controller) advance() {
	if c.idx >= len(c.cfg.Questions) {
		c.status = StatusComplete
		c.reason = ReasonExhausted
		return
	}
	if c.cfg.Mode == mastery.ModeDiagnostic && c.cfg.ConfidenceThreshold > 0 {
		ids := make([]string, 0, len(c.touched))
		for id := range c.touched {
			ids = append(ids, id)
		}
		if c.cfg.Mastery.MeanScore(ids) > c.cfg.ConfidenceThreshold {
			c.status = StatusComplete
			c.reason = ReasonConfident
		}
	}
}
