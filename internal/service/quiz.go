package service

import (
	"context"
	"sync"

	"sql-arena/internal/domain"
	"sql-arena/internal/logger"

	"go.uber.org/zap"
)

// quizSession tracks the question currently in front of the learner,
// together with a monotonically increasing generation counter. Grading
// captures the question and its generation at submit time; a verdict is only
// applied if its generation is still current when it resolves, which
// prevents a slow grading response from being attributed to a newer
// question.
type quizSession struct {
	mu       sync.Mutex
	current  *domain.QuizQuestion
	genCount uint64
}

// setQuestion installs a new current question and returns its generation.
func (s *quizSession) setQuestion(q *domain.QuizQuestion) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.genCount++
	s.current = q
	return s.genCount
}

// snapshot returns the current question and its generation.
func (s *quizSession) snapshot() (*domain.QuizQuestion, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.genCount
}

// isCurrent reports whether gen still identifies the installed question.
func (s *quizSession) isCurrent(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.genCount == gen
}

// SubmitOutcome is the result of grading one submission, paired with the
// profile state after any score application. Stale marks a verdict that
// resolved after a newer question load; its score is never applied.
type SubmitOutcome struct {
	Result  *domain.EvaluationResult
	Profile domain.UserProfile
	Stale   bool
}

// QuizService drives the question/evaluation loop: draw a question at the
// profile's difficulty, grade a submission against the question that was
// current at submit time, and apply the verdict to the profile.
type QuizService struct {
	provider  QuestionProvider
	evaluator SubmissionEvaluator
	profiles  *ProfileService
	session   quizSession
}

// NewQuizService creates a new QuizService.
func NewQuizService(provider QuestionProvider, evaluator SubmissionEvaluator, profiles *ProfileService) *QuizService {
	return &QuizService{
		provider:  provider,
		evaluator: evaluator,
		profiles:  profiles,
	}
}

// NextQuestion draws a question for the topic at the profile's current
// difficulty and makes it the session's current question. It never fails.
func (s *QuizService) NextQuestion(ctx context.Context, topicID string) *domain.QuizQuestion {
	difficulty := s.profiles.Profile().SelectedDifficulty
	q := s.provider.ProvideQuestion(ctx, topicID, difficulty)
	s.session.setQuestion(q)
	return q
}

// SubmitAnswer grades the submission against the current question. The
// question reference is captured before the provider call; if a new question
// loads while grading is in flight, the resolved verdict is returned for
// display but its score is discarded rather than attributed to the new
// question.
func (s *QuizService) SubmitAnswer(ctx context.Context, submittedQuery string) (*SubmitOutcome, error) {
	question, gen := s.session.snapshot()
	if question == nil {
		return nil, domain.NewInvalidInputError("No question is currently loaded")
	}

	result := s.evaluator.Evaluate(ctx, question, submittedQuery)

	if !s.session.isCurrent(gen) {
		logger.Get().Info("Discarding stale evaluation result",
			zap.String("question_id", question.ID),
			zap.Uint64("generation", gen),
		)
		return &SubmitOutcome{
			Result:  result,
			Profile: s.profiles.Profile(),
			Stale:   true,
		}, nil
	}

	profile := s.profiles.Profile()
	if result.IsCorrect {
		profile = s.profiles.RecordCorrectAnswer(ctx, result.ScoreAwarded)
	}

	return &SubmitOutcome{
		Result:  result,
		Profile: profile,
	}, nil
}

// LevelUp advances the profile difficulty by one step. The next question
// draw picks up the new level.
func (s *QuizService) LevelUp(ctx context.Context) domain.UserProfile {
	return s.profiles.LevelUp(ctx)
}
