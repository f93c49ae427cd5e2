// Package validation audits telemetry records through three ordered tiers:
// a blocking schema tier, a non-blocking semantic tier, and an optional
// informational insight tier.
package validation

import (
	"github.com/abhisek/mathquest/internal/store"
)

// Tier identifies which pipeline stage raised an issue.
type Tier string

const (
	TierSchema   Tier = "schema"
	TierSemantic Tier = "semantic"
	TierInsight  Tier = "insight"
)

// Severity of a single issue. Only schema-tier errors affect the verdict;
// a semantic-tier SeverityError marks an urgent pedagogical signal, not a
// corrupt record.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
	SeverityInfo    Severity = "INFO"
)

// Status is the overall verdict for one record.
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
)

// Issue is one finding against one record. Each check yields at most one.
type Issue struct {
	Field    string
	Tier     Tier
	Severity Severity
	Code     string
	Message  string
}

// Report is the audit result for one telemetry record. The verdict is
// FAIL iff the schema tier raised at least one error; every other issue
// is advisory.
type Report struct {
	QuestionID string
	EmittedAt  int64
	Status     Status
	Issues     []Issue
}

// ErrorCount counts ERROR-severity issues across all tiers.
func (r *Report) ErrorCount() int {
	n := 0
	for _, is := range r.Issues {
		if is.Severity == SeverityError {
			n++
		}
	}
	return n
}

// WarningCount counts WARNING-severity issues.
func (r *Report) WarningCount() int {
	n := 0
	for _, is := range r.Issues {
		if is.Severity == SeverityWarning {
			n++
		}
	}
	return n
}

// Data converts the report to its persisted form.
func (r *Report) Data() store.ValidationReportData {
	d := store.ValidationReportData{
		QuestionID:   r.QuestionID,
		EmittedAt:    r.EmittedAt,
		Status:       string(r.Status),
		ErrorCount:   r.ErrorCount(),
		WarningCount: r.WarningCount(),
	}
	for _, is := range r.Issues {
		d.Issues = append(d.Issues, store.IssueData{
			Field:    is.Field,
			Tier:     string(is.Tier),
			Severity: string(is.Severity),
			Code:     is.Code,
			Message:  is.Message,
		})
	}
	return d
}
