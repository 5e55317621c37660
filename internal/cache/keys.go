package cache

// Key layout of the persisted store. The two patterns below are the only
// keys the system ever writes; external tooling depends on them verbatim.
const (
	// ProfileKey holds the JSON-serialized user profile. Read once at
	// startup, rewritten on every mutation, removed on reset.
	ProfileKey = "sql_arena_profile"

	theoryKeyPrefix = "sql_arena_theory_"
)

// TheoryKey returns the cache key for a topic's generated study content.
func TheoryKey(topicID string) string {
	return theoryKeyPrefix + topicID
}
