package service

import (
	"context"
	"testing"

	"sql-arena/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubProvider returns pre-seeded questions in order.
type stubProvider struct {
	queue []*domain.QuizQuestion
}

func (s *stubProvider) ProvideQuestion(ctx context.Context, topicID string, difficulty domain.Difficulty) *domain.QuizQuestion {
	q := s.queue[0]
	if len(s.queue) > 1 {
		s.queue = s.queue[1:]
	}
	return q
}

// stubEvaluator returns a fixed result, with an optional hook that runs
// before the result is returned (to interleave a question load mid-grading).
type stubEvaluator struct {
	result     *domain.EvaluationResult
	beforeDone func()
}

func (s *stubEvaluator) Evaluate(ctx context.Context, q *domain.QuizQuestion, submittedQuery string) *domain.EvaluationResult {
	if s.beforeDone != nil {
		s.beforeDone()
	}
	return s.result
}

func newQuizFixture(t *testing.T, provider QuestionProvider, evaluator SubmissionEvaluator) (*QuizService, *ProfileService) {
	t.Helper()
	profiles := NewProfileService(context.Background(), newMemStore())
	profiles.SetIdentity(context.Background(), "Ada", domain.DifficultyIntermediate)
	return NewQuizService(provider, evaluator, profiles), profiles
}

func TestQuizServiceNextQuestionUsesProfileDifficulty(t *testing.T) {
	completer := new(MockCompleter)
	provider := NewQuestionProvider(completer)
	svc, profiles := newQuizFixture(t, provider, &stubEvaluator{result: domain.FailedEvaluation()})

	q := svc.NextQuestion(context.Background(), "window_functions")
	assert.Equal(t, domain.DifficultyIntermediate, q.Difficulty)

	profiles.LevelUp(context.Background())
	q = svc.NextQuestion(context.Background(), "window_functions")
	assert.Equal(t, domain.DifficultyAdvanced, q.Difficulty)
	completer.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitAnswerWithoutQuestion(t *testing.T) {
	svc, _ := newQuizFixture(t, &stubProvider{queue: []*domain.QuizQuestion{nil}}, &stubEvaluator{result: domain.FailedEvaluation()})

	_, err := svc.SubmitAnswer(context.Background(), "SELECT 1;")
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrInvalidInput, domainErr.Code)
}

func TestSubmitAnswerAppliesScoreOnlyWhenCorrect(t *testing.T) {
	question := sampleQuestion()
	provider := &stubProvider{queue: []*domain.QuizQuestion{question}}

	t.Run("correct answer scores", func(t *testing.T) {
		evaluator := &stubEvaluator{result: &domain.EvaluationResult{IsCorrect: true, ScoreAwarded: 85}}
		svc, profiles := newQuizFixture(t, provider, evaluator)
		svc.NextQuestion(context.Background(), "window_functions")

		outcome, err := svc.SubmitAnswer(context.Background(), "SELECT ...")
		require.NoError(t, err)
		assert.False(t, outcome.Stale)
		assert.Equal(t, 85, outcome.Profile.CurrentScore)
		assert.Equal(t, 1, outcome.Profile.Streak)
		assert.Equal(t, 85, profiles.Profile().CurrentScore)
	})

	t.Run("incorrect answer leaves profile untouched", func(t *testing.T) {
		evaluator := &stubEvaluator{result: &domain.EvaluationResult{IsCorrect: false, ScoreAwarded: 40}}
		svc, profiles := newQuizFixture(t, provider, evaluator)
		svc.NextQuestion(context.Background(), "window_functions")

		outcome, err := svc.SubmitAnswer(context.Background(), "SELECT ...")
		require.NoError(t, err)
		assert.Zero(t, outcome.Profile.CurrentScore)
		assert.Zero(t, profiles.Profile().Streak)
	})
}

func TestSubmitAnswerDiscardsStaleResult(t *testing.T) {
	first := sampleQuestion()
	second := &domain.QuizQuestion{ID: "wf_2_1700000000001", Topic: "Window Functions", Difficulty: domain.DifficultyIntermediate}
	provider := &stubProvider{queue: []*domain.QuizQuestion{first, second}}

	var svc *QuizService
	evaluator := &stubEvaluator{result: &domain.EvaluationResult{IsCorrect: true, ScoreAwarded: 85}}
	// While the grading request is in flight, a new question loads. The
	// verdict that resolves afterwards belongs to the superseded question
	// and must not mutate the profile.
	evaluator.beforeDone = func() {
		svc.NextQuestion(context.Background(), "window_functions")
	}

	svc, profiles := newQuizFixture(t, provider, evaluator)
	svc.NextQuestion(context.Background(), "window_functions")

	outcome, err := svc.SubmitAnswer(context.Background(), "SELECT ...")
	require.NoError(t, err)
	assert.True(t, outcome.Stale)
	assert.Zero(t, profiles.Profile().CurrentScore)
	assert.Zero(t, profiles.Profile().Streak)
}

func TestQuizServiceLevelUp(t *testing.T) {
	svc, _ := newQuizFixture(t, &stubProvider{queue: []*domain.QuizQuestion{sampleQuestion()}}, &stubEvaluator{result: domain.FailedEvaluation()})

	p := svc.LevelUp(context.Background())
	assert.Equal(t, domain.DifficultyAdvanced, p.SelectedDifficulty)
}
