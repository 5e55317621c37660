package middleware

import (
	"sql-arena/internal/domain"
	"sql-arena/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RequireProfile rejects requests until the learner has completed onboarding.
// The quiz, theory and leaderboard routes are meaningless without a profile,
// so they all sit behind this guard.
func RequireProfile(profiles *service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !profiles.Profile().HasSession() {
			return domain.NewProfileRequiredError()
		}
		return c.Next()
	}
}
