package domain

// Difficulty is the learner's progression level. The four values form a
// strict total order; Expert has no successor.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
	DifficultyExpert       Difficulty = "Expert"
)

// difficultyOrder fixes the progression order used by Next.
var difficultyOrder = []Difficulty{
	DifficultyBeginner,
	DifficultyIntermediate,
	DifficultyAdvanced,
	DifficultyExpert,
}

// IsValid reports whether d is one of the four enumerated values.
func (d Difficulty) IsValid() bool {
	for _, v := range difficultyOrder {
		if d == v {
			return true
		}
	}
	return false
}

// Next returns the successor difficulty. At Expert the value is returned
// unchanged; the ceiling is a no-op, not an error.
func (d Difficulty) Next() Difficulty {
	for i, v := range difficultyOrder {
		if d == v && i < len(difficultyOrder)-1 {
			return difficultyOrder[i+1]
		}
	}
	return d
}

// ParseDifficulty converts a string into a Difficulty, falling back to
// Intermediate for anything outside the enumeration.
func ParseDifficulty(s string) Difficulty {
	d := Difficulty(s)
	if d.IsValid() {
		return d
	}
	return DifficultyIntermediate
}
