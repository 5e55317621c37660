package service

import (
	"context"
	"fmt"

	"sql-arena/internal/curriculum"
	"sql-arena/internal/domain"
	"sql-arena/internal/logger"
	"sql-arena/internal/validation"

	"go.uber.org/zap"
)

// SubmissionEvaluator grades a learner's free-form query against a question.
// It never returns an error to its caller: any provider or decode failure
// yields the fixed ungraded result. It does not touch the profile; applying
// the awarded score is the caller's responsibility.
type SubmissionEvaluator interface {
	Evaluate(ctx context.Context, question *domain.QuizQuestion, submittedQuery string) *domain.EvaluationResult
}

type submissionEvaluator struct {
	completer domain.Completer
}

// NewSubmissionEvaluator creates a new SubmissionEvaluator.
func NewSubmissionEvaluator(completer domain.Completer) SubmissionEvaluator {
	return &submissionEvaluator{completer: completer}
}

// Evaluate implements SubmissionEvaluator.
func (e *submissionEvaluator) Evaluate(ctx context.Context, question *domain.QuizQuestion, submittedQuery string) *domain.EvaluationResult {
	curriculumContext := curriculum.ContextForTopic(question.Topic)

	prompt := fmt.Sprintf(`You are a Senior SQL Professor for the Class of '26. Grade this submission.

CURRICULUM CONTEXT:
%s

Context:
Question: %s
Schema: %s
Difficulty: %s

Student's Answer:
%s

Task:
1. Determine if the query is logically correct based on the Curriculum Rules provided.
2. Check for syntax errors.
3. Check for efficiency.
4. Provide the optimal correct solution using the specific functions mentioned in the curriculum (e.g. if the curriculum mentions NTH_VALUE, prefer that over self-joins).

Return a JSON object with:
- isCorrect: boolean verdict.
- scoreAwarded: score between 0 and 100.
- explanation: deep dive explanation relating back to the curriculum slides.
- correctQuery: the ideal SQL query.
- optimizationTip: how to make it faster.
- userFeedback: specific feedback on the user's specific code.
- suggestDifficultyIncrease: boolean.`,
		curriculumContext,
		question.QuestionText,
		question.SchemaContext,
		question.Difficulty,
		submittedQuery,
	)

	raw, err := e.completer.Complete(ctx, prompt, true)
	if err != nil {
		logger.Get().Warn("Grading request failed, returning ungraded result",
			zap.Error(err),
			zap.String("question_id", question.ID),
		)
		return domain.FailedEvaluation()
	}

	var result domain.EvaluationResult
	if err := validation.DecodeStrict(raw, validation.EvaluationSchema, &result); err != nil {
		// A nonconforming verdict takes the same path as a network failure.
		logger.Get().Warn("Grading response failed schema decode, returning ungraded result",
			zap.Error(err),
			zap.String("question_id", question.ID),
		)
		return domain.FailedEvaluation()
	}

	return &result
}
