package handler

import (
	"strings"

	"sql-arena/internal/domain"
	"sql-arena/internal/dto"
	"sql-arena/internal/service"

	"github.com/gofiber/fiber/v2"
)

const maxNameLength = 40

// ProfileHandler exposes the learner profile lifecycle over HTTP.
type ProfileHandler struct {
	profiles *service.ProfileService
}

func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func toProfileResponse(p domain.UserProfile) dto.ProfileResponse {
	return dto.ProfileResponse{
		Name:               p.Name,
		CurrentScore:       p.CurrentScore,
		Streak:             p.Streak,
		SelectedDifficulty: string(p.SelectedDifficulty),
	}
}

// GetProfile godoc
// @Summary Get the current learner profile
// @Description Returns the persisted profile. Before onboarding the name is empty and difficulty holds its default.
// @Tags profile
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(toProfileResponse(h.profiles.Profile()))
}

// Onboard godoc
// @Summary Start or resume a learning session
// @Description Sets the learner's name and starting difficulty. Accumulated score and streak survive re-onboarding.
// @Tags profile
// @Accept json
// @Produce json
// @Param request body dto.OnboardRequest true "Onboarding form"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid name or difficulty"
// @Router /profile [post]
func (h *ProfileHandler) Onboard(c *fiber.Ctx) error {
	var req dto.OnboardRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.NewInvalidInputError("Name is required")
	}
	if len(name) > maxNameLength {
		return domain.NewInvalidInputError("Name is too long")
	}

	difficulty := domain.Difficulty(req.Difficulty)
	if req.Difficulty != "" && !difficulty.IsValid() {
		return domain.NewInvalidInputError("Unknown difficulty: " + req.Difficulty)
	}
	if req.Difficulty == "" {
		difficulty = domain.DefaultProfile().SelectedDifficulty
	}

	profile := h.profiles.SetIdentity(c.Context(), name, difficulty)
	return c.Status(fiber.StatusOK).JSON(toProfileResponse(profile))
}

// ResetProfile godoc
// @Summary Reset the learner profile
// @Description Clears the stored profile and returns the defaults.
// @Tags profile
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Router /profile [delete]
func (h *ProfileHandler) ResetProfile(c *fiber.Ctx) error {
	profile := h.profiles.Reset(c.Context())
	return c.Status(fiber.StatusOK).JSON(toProfileResponse(profile))
}
