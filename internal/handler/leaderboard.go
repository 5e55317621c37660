package handler

import (
	"sql-arena/internal/dto"
	"sql-arena/internal/service"

	"github.com/gofiber/fiber/v2"
)

// LeaderboardHandler serves the ranked standings.
type LeaderboardHandler struct {
	leaderboard *service.LeaderboardService
	profiles    *service.ProfileService
}

func NewLeaderboardHandler(leaderboard *service.LeaderboardService, profiles *service.ProfileService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard, profiles: profiles}
}

// GetLeaderboard godoc
// @Summary Get the current standings
// @Description Merges the learner into the fixed roster of rivals and returns the rows ranked by score.
// @Tags leaderboard
// @Produce json
// @Success 200 {array} dto.LeaderboardEntryResponse
// @Router /leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(c *fiber.Ctx) error {
	entries := h.leaderboard.Compute(h.profiles.Profile())

	resp := make([]dto.LeaderboardEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.LeaderboardEntryResponse{
			Name:   e.Name,
			Score:  e.Score,
			Rank:   e.Rank,
			Badges: e.Badges,
		})
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}
