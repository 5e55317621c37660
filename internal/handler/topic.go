package handler

import (
	"sql-arena/internal/curriculum"
	"sql-arena/internal/domain"
	"sql-arena/internal/dto"
	"sql-arena/internal/service"

	"github.com/gofiber/fiber/v2"
)

// TopicHandler serves the curriculum catalog and per-topic study content.
type TopicHandler struct {
	theory service.TheoryProvider
}

func NewTopicHandler(theory service.TheoryProvider) *TopicHandler {
	return &TopicHandler{theory: theory}
}

// ListTopics godoc
// @Summary List curriculum topics
// @Tags topics
// @Produce json
// @Success 200 {array} dto.TopicResponse
// @Router /topics [get]
func (h *TopicHandler) ListTopics(c *fiber.Ctx) error {
	resp := make([]dto.TopicResponse, 0, len(curriculum.Topics))
	for _, t := range curriculum.Topics {
		resp = append(resp, dto.TopicResponse{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			KeyConcepts: t.KeyConcepts,
			Icon:        string(t.Icon),
		})
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// GetTheory godoc
// @Summary Get study content for a topic
// @Description Returns markdown study content. Static pages win unless refresh is requested; generated pages are cached.
// @Tags topics
// @Produce json
// @Param topicID path string true "Topic ID"
// @Param refresh query bool false "Force regeneration, bypassing static and cached content"
// @Success 200 {object} dto.TheoryResponse
// @Failure 404 {object} middleware.ErrorResponse "Unknown topic"
// @Router /topics/{topicID}/theory [get]
func (h *TopicHandler) GetTheory(c *fiber.Ctx) error {
	topicID := c.Params("topicID")
	topic := curriculum.TopicByID(topicID)
	if topic == nil {
		return domain.NewTopicNotFoundError(topicID)
	}

	forceRefresh := c.QueryBool("refresh", false)
	content := h.theory.GetTheory(c.Context(), topicID, forceRefresh)

	return c.Status(fiber.StatusOK).JSON(dto.TheoryResponse{
		TopicID: topic.ID,
		Title:   topic.Title,
		Content: content,
	})
}
