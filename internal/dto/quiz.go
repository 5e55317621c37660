package dto

// QuestionResponse represents a quiz question in the API response. Only the
// first hint is ever surfaced to the client.
// @Description Quiz question to render
type QuestionResponse struct {
	ID            string `json:"id"`
	Topic         string `json:"topic"`
	Difficulty    string `json:"difficulty"`
	Kind          string `json:"kind"`
	QuestionText  string `json:"question_text"`
	SchemaContext string `json:"schema_context"`
	Hint          string `json:"hint,omitempty"`
}

// SubmitRequest represents a learner's query submission
// @Description Request body for grading a submission
type SubmitRequest struct {
	SubmittedQuery string `json:"submitted_query"`
}

// SubmitResponse represents the grading verdict plus the profile it produced
type SubmitResponse struct {
	IsCorrect                 bool            `json:"is_correct"`
	ScoreAwarded              int             `json:"score_awarded"`
	Explanation               string          `json:"explanation"`
	CorrectQuery              string          `json:"correct_query"`
	OptimizationTip           string          `json:"optimization_tip"`
	UserFeedback              string          `json:"user_feedback"`
	SuggestDifficultyIncrease bool            `json:"suggest_difficulty_increase"`
	Stale                     bool            `json:"stale,omitempty"`
	Profile                   ProfileResponse `json:"profile"`
}

// TheoryResponse represents a topic's study content
type TheoryResponse struct {
	TopicID string `json:"topic_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// TopicResponse represents a catalog topic in the API response
type TopicResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	KeyConcepts []string `json:"key_concepts"`
	Icon        string   `json:"icon"`
}

// LeaderboardEntryResponse represents one ranked row
type LeaderboardEntryResponse struct {
	Name   string   `json:"name"`
	Score  int      `json:"score"`
	Rank   int      `json:"rank"`
	Badges []string `json:"badges"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
