package handler

import (
	"strings"

	"sql-arena/internal/curriculum"
	"sql-arena/internal/domain"
	"sql-arena/internal/dto"
	"sql-arena/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler drives the practice loop: serve a question, grade the
// learner's submission, and bump difficulty on request.
type QuizHandler struct {
	quiz *service.QuizService
}

func NewQuizHandler(quiz *service.QuizService) *QuizHandler {
	return &QuizHandler{quiz: quiz}
}

func toQuestionResponse(q *domain.QuizQuestion) dto.QuestionResponse {
	return dto.QuestionResponse{
		ID:            q.ID,
		Topic:         q.Topic,
		Difficulty:    string(q.Difficulty),
		Kind:          string(q.Kind),
		QuestionText:  q.QuestionText,
		SchemaContext: q.SchemaContext,
		Hint:          q.FirstHint(),
	}
}

// GetQuestion godoc
// @Summary Draw the next quiz question
// @Description Serves a question for the topic at the profile's current difficulty. The bank is tried first, then generation; an unreachable provider yields a fixed fallback question rather than an error.
// @Tags quiz
// @Produce json
// @Param topic_id query string true "Topic ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} middleware.ErrorResponse "Missing topic_id"
// @Failure 404 {object} middleware.ErrorResponse "Unknown topic"
// @Router /quiz/question [get]
func (h *QuizHandler) GetQuestion(c *fiber.Ctx) error {
	topicID := c.Query("topic_id")
	if topicID == "" {
		return domain.NewInvalidInputError("topic_id is required")
	}
	if curriculum.TopicByID(topicID) == nil {
		return domain.NewTopicNotFoundError(topicID)
	}

	q := h.quiz.NextQuestion(c.Context(), topicID)
	return c.Status(fiber.StatusOK).JSON(toQuestionResponse(q))
}

// SubmitAnswer godoc
// @Summary Grade a submitted query
// @Description Grades the submission against the currently loaded question and applies score and streak to the profile. A submission that resolves after a newer question load is reported stale and counts for nothing.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.SubmitRequest true "The learner's SQL submission"
// @Success 200 {object} dto.SubmitResponse
// @Failure 400 {object} middleware.ErrorResponse "Empty submission or no question loaded"
// @Router /quiz/submit [post]
func (h *QuizHandler) SubmitAnswer(c *fiber.Ctx) error {
	var req dto.SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if strings.TrimSpace(req.SubmittedQuery) == "" {
		return domain.NewInvalidInputError("submitted_query is required")
	}

	outcome, err := h.quiz.SubmitAnswer(c.Context(), req.SubmittedQuery)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(dto.SubmitResponse{
		IsCorrect:                 outcome.Result.IsCorrect,
		ScoreAwarded:              outcome.Result.ScoreAwarded,
		Explanation:               outcome.Result.Explanation,
		CorrectQuery:              outcome.Result.CorrectQuery,
		OptimizationTip:           outcome.Result.OptimizationTip,
		UserFeedback:              outcome.Result.UserFeedback,
		SuggestDifficultyIncrease: outcome.Result.SuggestDifficultyIncrease,
		Stale:                     outcome.Stale,
		Profile:                   toProfileResponse(outcome.Profile),
	})
}

// LevelUp godoc
// @Summary Advance to the next difficulty
// @Description Moves the profile one difficulty step up. At the top difficulty this is a no-op.
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Router /quiz/level-up [post]
func (h *QuizHandler) LevelUp(c *fiber.Ctx) error {
	profile := h.quiz.LevelUp(c.Context())
	return c.Status(fiber.StatusOK).JSON(toProfileResponse(profile))
}
