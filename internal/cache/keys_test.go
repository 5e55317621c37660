package cache

import "testing"

func TestTheoryKey(t *testing.T) {
	tests := []struct {
		name        string
		topicID     string
		expectedKey string
	}{
		{
			name:        "catalog topic",
			topicID:     "window_functions",
			expectedKey: "sql_arena_theory_window_functions",
		},
		{
			name:        "another catalog topic",
			topicID:     "data_modeling",
			expectedKey: "sql_arena_theory_data_modeling",
		},
		{
			name:        "unknown topic still keys deterministically",
			topicID:     "recursive_ctes",
			expectedKey: "sql_arena_theory_recursive_ctes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TheoryKey(tt.topicID); got != tt.expectedKey {
				t.Errorf("TheoryKey(%q) = %v, want %v", tt.topicID, got, tt.expectedKey)
			}
		})
	}
}

func TestProfileKey(t *testing.T) {
	if ProfileKey != "sql_arena_profile" {
		t.Errorf("ProfileKey = %q, want sql_arena_profile", ProfileKey)
	}
}
