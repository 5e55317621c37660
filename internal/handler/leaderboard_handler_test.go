package handler_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"sql-arena/internal/domain"
	"sql-arena/internal/dto"
	"sql-arena/internal/handler"
	"sql-arena/internal/middleware"
	"sql-arena/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLeaderboard(t *testing.T) {
	profiles := service.NewProfileService(context.Background(), newMemStore())
	profiles.SetIdentity(context.Background(), "Riley", domain.DifficultyIntermediate)
	profiles.RecordCorrectAnswer(context.Background(), 1700)

	h := handler.NewLeaderboardHandler(service.NewLeaderboardService(), profiles)
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Get("/api/leaderboard", h.GetLeaderboard)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/leaderboard", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out []dto.LeaderboardEntryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 6)

	assert.Equal(t, "Alice_DBA", out[0].Name)
	assert.Equal(t, 1, out[0].Rank)

	// 1700 points lands between Charlie_SQL and Data_Diana.
	assert.Equal(t, "Riley", out[3].Name)
	assert.Equal(t, 4, out[3].Rank)
	assert.Contains(t, out[3].Badges, "Rising Star")
}
