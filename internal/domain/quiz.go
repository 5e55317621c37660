package domain

// QuestionKind distinguishes query-writing questions from the (currently
// unused) multiple-choice variant.
type QuestionKind string

const (
	KindQueryWriting   QuestionKind = "query_writing"
	KindMultipleChoice QuestionKind = "multiple_choice"
)

// QuizQuestion is a single quiz exercise. Instances are immutable once
// created and are discarded when a new question is requested. Static-bank
// draws get a freshly suffixed ID so every draw has a distinct identity.
type QuizQuestion struct {
	ID            string
	Topic         string
	Difficulty    Difficulty
	Kind          QuestionKind
	QuestionText  string
	SchemaContext string
	Hints         []string
	Options       []string
}

// FirstHint returns the only hint ever surfaced to the learner.
func (q *QuizQuestion) FirstHint() string {
	if len(q.Hints) == 0 {
		return ""
	}
	return q.Hints[0]
}

// FallbackQuestionID marks the canned question returned when generation
// fails for a topic with no static bank entries.
const FallbackQuestionID = "fallback"

// FallbackQuestion returns the canonical fallback question for the given
// topic and difficulty. The question provider's contract guarantees a usable
// question on every call; this is the value behind that guarantee.
func FallbackQuestion(topic string, difficulty Difficulty) *QuizQuestion {
	return &QuizQuestion{
		ID:            FallbackQuestionID,
		Topic:         topic,
		Difficulty:    difficulty,
		Kind:          KindQueryWriting,
		QuestionText:  "Explain the difference between RANK() and DENSE_RANK() using the Class of '26 schema.",
		SchemaContext: "Table: Student_Scores (student_id, subject, score)",
		Hints:         []string{"Think about gaps in ranking", "Consider duplicate values"},
	}
}

// EvaluationResult is the grading verdict for one submission. It is consumed
// once: the caller applies ScoreAwarded to the profile only when IsCorrect
// is true, renders the result, and discards it on the next question load.
type EvaluationResult struct {
	IsCorrect                 bool   `json:"isCorrect"`
	ScoreAwarded              int    `json:"scoreAwarded"`
	Explanation               string `json:"explanation"`
	CorrectQuery              string `json:"correctQuery"`
	OptimizationTip           string `json:"optimizationTip"`
	UserFeedback              string `json:"userFeedback"`
	SuggestDifficultyIncrease bool   `json:"suggestDifficultyIncrease"`
}

// FailedEvaluation returns the fixed result used whenever grading cannot be
// completed, for any reason. Callers never see a raw provider error.
func FailedEvaluation() *EvaluationResult {
	return &EvaluationResult{
		IsCorrect:                 false,
		ScoreAwarded:              0,
		Explanation:               "Error connecting to grading server.",
		CorrectQuery:              "SELECT 'Error';",
		OptimizationTip:           "N/A",
		UserFeedback:              "We could not grade your answer at this time.",
		SuggestDifficultyIncrease: false,
	}
}
