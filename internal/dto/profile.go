package dto

// OnboardRequest represents the onboarding form
// @Description Request body for starting (or resuming) a session
type OnboardRequest struct {
	Name       string `json:"name"`
	Difficulty string `json:"difficulty"`
}

// ProfileResponse represents the learner's profile in the API response
type ProfileResponse struct {
	Name               string `json:"name"`
	CurrentScore       int    `json:"current_score"`
	Streak             int    `json:"streak"`
	SelectedDifficulty string `json:"selected_difficulty"`
}
