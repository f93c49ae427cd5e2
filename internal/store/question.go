package store

import (
	"context"
	"fmt"

	"github.com/abhisek/mathquest/ent"
	"github.com/abhisek/mathquest/ent/questiondoc"
	entschema "github.com/abhisek/mathquest/ent/schema"
	"github.com/abhisek/mathquest/internal/questionbank"
)

// QuestionBank returns a questionbank.Bank reading from this store.
func (s *Store) QuestionBank() questionbank.Bank {
	return &entBank{client: s.client}
}

type entBank struct {
	client *ent.Client
}

func (b *entBank) FetchAll(ctx context.Context) ([]questionbank.Question, error) {
	docs, err := b.client.QuestionDoc.Query().
		Order(ent.Asc(questiondoc.FieldQuestionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query question bank: %w", err)
	}

	questions := make([]questionbank.Question, len(docs))
	for i, d := range docs {
		q := questionbank.Question{
			ID:            d.QuestionID,
			ConceptID:     d.ConceptID,
			Prompt:        d.Prompt,
			CorrectAnswer: d.CorrectAnswer,
			Difficulty:    d.Difficulty,
			Template:      questionbank.Template(d.Template),
		}
		for _, dd := range d.Distractors {
			q.Distractors = append(q.Distractors, questionbank.Distractor{
				Option:           dd.Option,
				MisconceptionTag: dd.MisconceptionTag,
			})
		}
		questions[i] = q
	}
	return questions, nil
}

// SeedQuestions upserts the given questions into the stored bank. Used by
// the reset command to install the built-in bank.
func (s *Store) SeedQuestions(ctx context.Context, questions []questionbank.Question) error {
	for _, q := range questions {
		var distractors []entschema.DistractorDoc
		for _, d := range q.Distractors {
			distractors = append(distractors, entschema.DistractorDoc{
				Option:           d.Option,
				MisconceptionTag: d.MisconceptionTag,
			})
		}

		err := s.client.QuestionDoc.Create().
			SetQuestionID(q.ID).
			SetConceptID(q.ConceptID).
			SetPrompt(q.Prompt).
			SetCorrectAnswer(q.CorrectAnswer).
			SetDistractors(distractors).
			SetDifficulty(q.Difficulty).
			SetTemplate(string(q.Template)).
			OnConflictColumns(questiondoc.FieldQuestionID).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("seed question %s: %w", q.ID, err)
		}
	}
	return nil
}
