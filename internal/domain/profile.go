package domain

// UserProfile is the single durable, mutable record in the system: the
// learner's name, cumulative score, correct-answer streak, and active
// difficulty. An empty name means no active session.
//
// Score and streak are monotonically non-decreasing; an incorrect answer
// leaves both untouched (the streak counts correct answers, it is not reset
// on a miss).
type UserProfile struct {
	Name               string     `json:"name"`
	CurrentScore       int        `json:"currentScore"`
	Streak             int        `json:"streak"`
	SelectedDifficulty Difficulty `json:"selectedDifficulty"`
}

// DefaultProfile returns the zero-state profile: no session, no progress,
// Intermediate difficulty.
func DefaultProfile() UserProfile {
	return UserProfile{
		Name:               "",
		CurrentScore:       0,
		Streak:             0,
		SelectedDifficulty: DifficultyIntermediate,
	}
}

// HasSession reports whether a learner is onboarded. Every protected route
// is gated on this.
func (p UserProfile) HasSession() bool {
	return p.Name != ""
}

// LeaderboardEntry is one row of the displayed ranking. Entries are
// transient: recomputed on every read, never persisted.
type LeaderboardEntry struct {
	Name   string   `json:"name"`
	Score  int      `json:"score"`
	Rank   int      `json:"rank"`
	Badges []string `json:"badges"`
}
