package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathquest/ent/llmrequestevent"
)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) LLMUsage(ctx context.Context) ([]LLMUsageSummary, error) {
	var rows []LLMUsageSummary
	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldModel).
		Aggregate(
			func(s *sql.Selector) string {
				return sql.As(sql.Count("*"), "count")
			},
			func(s *sql.Selector) string {
				return sql.As(sql.Sum(llmrequestevent.FieldInputTokens), "sum_input_tokens")
			},
			func(s *sql.Selector) string {
				return sql.As(sql.Sum(llmrequestevent.FieldOutputTokens), "sum_output_tokens")
			},
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate llm usage: %w", err)
	}
	return rows, nil
}
