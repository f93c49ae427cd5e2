// Package questionbank defines the question model and the bank boundary
// the engine reads questions through.
package questionbank

import "context"

// Template identifies the pedagogical shape of a question. The extended
// mission variant constrains each slot to a set of templates.
type Template string

const (
	TemplateMultipleChoice   Template = "multiple_choice"
	TemplateNumericEntry     Template = "numeric_entry"
	TemplateWordProblem      Template = "word_problem"
	TemplateVisualModel      Template = "visual_model"
	TemplateReflectionPrompt Template = "reflection_prompt"
)

// Distractor is a wrong answer option, optionally tagged with the
// misconception that makes it attractive.
type Distractor struct {
	Option           string `json:"option"`
	MisconceptionTag string `json:"misconception_tag,omitempty"`
}

// Question is a single item served during a session.
type Question struct {
	ID            string       `json:"id"`
	ConceptID     string       `json:"concept_id"`
	Prompt        string       `json:"prompt"`
	CorrectAnswer string       `json:"correct_answer"`
	Distractors   []Distractor `json:"distractors"`
	Difficulty    int          `json:"difficulty"` // 1-5
	Template      Template     `json:"template"`
}

// HasMisconceptionTag reports whether any distractor carries one of the
// given tags. The mission selector uses this to find hurdle-killers.
func (q *Question) HasMisconceptionTag(tags []string) bool {
	for _, d := range q.Distractors {
		if d.MisconceptionTag == "" {
			continue
		}
		for _, t := range tags {
			if d.MisconceptionTag == t {
				return true
			}
		}
	}
	return false
}

// Bank is the read boundary to wherever questions live. Implementations
// must treat the returned slice as a fresh copy the caller may reorder.
type Bank interface {
	FetchAll(ctx context.Context) ([]Question, error)
}

// MemoryBank is an in-memory Bank, used for tests and the simulator.
type MemoryBank struct {
	questions []Question
}

// NewMemoryBank creates a bank over the given questions.
func NewMemoryBank(questions []Question) *MemoryBank {
	return &MemoryBank{questions: questions}
}

// FetchAll returns a copy of the bank's questions.
func (b *MemoryBank) FetchAll(_ context.Context) ([]Question, error) {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out, nil
}
