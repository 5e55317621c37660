package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"sql-arena/internal/curriculum"
	"sql-arena/internal/domain"
	"sql-arena/internal/logger"
	"sql-arena/internal/util"
	"sql-arena/internal/validation"

	"go.uber.org/zap"
)

// QuestionProvider serves quiz questions for a topic at a difficulty. The
// contract never fails: the static bank is tried first, then provider
// generation, then the canned fallback question.
type QuestionProvider interface {
	ProvideQuestion(ctx context.Context, topicID string, difficulty domain.Difficulty) *domain.QuizQuestion
}

type questionProvider struct {
	completer domain.Completer
	now       func() time.Time
	pick      func(n int) int
}

// NewQuestionProvider creates a new QuestionProvider backed by the given
// completer for topics without static bank entries.
func NewQuestionProvider(completer domain.Completer) QuestionProvider {
	return &questionProvider{
		completer: completer,
		now:       time.Now,
		pick:      rand.Intn,
	}
}

// ProvideQuestion implements QuestionProvider.
func (p *questionProvider) ProvideQuestion(ctx context.Context, topicID string, difficulty domain.Difficulty) *domain.QuizQuestion {
	// Static path: instant and free, never touches the provider.
	if bank := curriculum.BankQuestions(topicID); len(bank) > 0 {
		q := bank[p.pick(len(bank))]
		// The suffix gives every draw a fresh rendering identity even when
		// the same underlying question is redrawn.
		q.ID = fmt.Sprintf("%s_%d", q.ID, p.now().UnixMilli())
		q.Difficulty = difficulty
		return &q
	}

	title := topicID
	if topic := curriculum.TopicByID(topicID); topic != nil {
		title = topic.Title
	}

	q, err := p.generate(ctx, title, difficulty)
	if err != nil {
		logger.Get().Warn("Question generation failed, serving fallback",
			zap.Error(err),
			zap.String("topic", title),
			zap.String("difficulty", string(difficulty)),
		)
		return domain.FallbackQuestion(title, difficulty)
	}
	return q
}

// questionPayload is the structured completion requested from the provider.
type questionPayload struct {
	QuestionText  string   `json:"questionText"`
	SchemaContext string   `json:"schemaContext"`
	Hints         []string `json:"hints"`
}

func (p *questionProvider) generate(ctx context.Context, topicTitle string, difficulty domain.Difficulty) (*domain.QuizQuestion, error) {
	curriculumContext := curriculum.ContextForTopic(topicTitle)

	prompt := fmt.Sprintf(`Generate a unique, challenging SQL interview question based strictly on the following curriculum context.

CURRICULUM CONTEXT:
%s

Topic: %s
Difficulty: %s
Source Material Style: LeetCode, FAANG Interview, Academic Exam.

If difficulty is Expert, combine concepts (e.g., Recursive CTEs with Window Functions, or complex BCNF decomposition).

Return a JSON object with:
- questionText: The problem description. Ensure it strictly uses terminology from the curriculum context.
- schemaContext: Text description of the tables, columns, and sample data types involved.
- hints: An array of 2 short hints.`, curriculumContext, topicTitle, difficulty)

	raw, err := p.completer.Complete(ctx, prompt, true)
	if err != nil {
		return nil, domain.NewProviderError(err)
	}

	var payload questionPayload
	if err := validation.DecodeStrict(raw, validation.QuestionSchema, &payload); err != nil {
		return nil, domain.NewProviderError(err)
	}

	return &domain.QuizQuestion{
		ID:            util.NewULID(),
		Topic:         topicTitle,
		Difficulty:    difficulty,
		Kind:          domain.KindQueryWriting,
		QuestionText:  payload.QuestionText,
		SchemaContext: payload.SchemaContext,
		Hints:         payload.Hints,
	}, nil
}
