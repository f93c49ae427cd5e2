package store

import (
	"context"
	"fmt"

	entschema "github.com/abhisek/mathquest/ent/schema"
)

func (r *eventRepo) AppendValidationReport(ctx context.Context, data ValidationReportData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	var issues []entschema.IssueDoc
	for _, iss := range data.Issues {
		issues = append(issues, entschema.IssueDoc{
			Field:    iss.Field,
			Tier:     iss.Tier,
			Severity: iss.Severity,
			Code:     iss.Code,
			Message:  iss.Message,
		})
	}

	builder := r.client.ValidationEvent.Create().
		SetSequence(seqNum).
		SetQuestionID(data.QuestionID).
		SetEmittedAt(data.EmittedAt).
		SetStatus(data.Status).
		SetErrorCount(data.ErrorCount).
		SetWarningCount(data.WarningCount)

	if len(issues) > 0 {
		builder = builder.SetIssues(issues)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save validation event: %w", err)
	}
	return nil
}
