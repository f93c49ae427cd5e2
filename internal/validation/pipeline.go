package validation

import (
	"context"

	"github.com/abhisek/mathquest/internal/logger"
	"github.com/abhisek/mathquest/internal/mastery"
	"github.com/abhisek/mathquest/internal/telemetry"
)

// InsightSource contributes informational issues from context beyond the
// single record, typically an aggregation over recent history. It never
// affects the verdict.
type InsightSource interface {
	Observations(ctx context.Context, rec *telemetry.Record) ([]Issue, error)
}

// Pipeline audits telemetry records. Zero-value thresholds fall back to
// the shipped boundaries; a nil insight source disables the third tier.
type Pipeline struct {
	thresholds mastery.SpeedThresholds
	insight    InsightSource
	log        *logger.Logger
}

func NewPipeline(thresholds mastery.SpeedThresholds, insight InsightSource, log *logger.Logger) *Pipeline {
	if thresholds == (mastery.SpeedThresholds{}) {
		thresholds = mastery.DefaultSpeedThresholds()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Pipeline{thresholds: thresholds, insight: insight, log: log}
}

// Audit runs all three tiers against one record. The verdict comes from
// the schema tier alone; semantic and insight findings ride along in the
// report. An insight-tier failure is logged and swallowed.
func (p *Pipeline) Audit(ctx context.Context, rec *telemetry.Record) *Report {
	report := &Report{
		QuestionID: rec.QuestionID,
		EmittedAt:  rec.Timestamp,
		Status:     StatusPass,
	}

	schemaIssues := SchemaTier(rec)
	report.Issues = append(report.Issues, schemaIssues...)
	if len(schemaIssues) > 0 {
		report.Status = StatusFail
	}

	report.Issues = append(report.Issues, SemanticTier(rec, p.thresholds)...)

	if p.insight != nil {
		obs, err := p.insight.Observations(ctx, rec)
		if err != nil {
			p.log.Warn("insight tier failed", "questionId", rec.QuestionID, "error", err)
		} else {
			report.Issues = append(report.Issues, obs...)
		}
	}
	return report
}
