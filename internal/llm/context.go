package llm

import "context"

type purposeKey struct{}

// WithPurpose labels the context with what the call is for ("insight-drafting"
// and the like). The logging decorator stamps it onto the usage event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom reads the purpose label back; unlabeled contexts report
// "unknown" so the usage ledger never has empty purposes.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok && p != "" {
		return p
	}
	return "unknown"
}
