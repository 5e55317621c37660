package curriculum

import (
	"strings"
	"testing"
)

func TestContextForTopic(t *testing.T) {
	tests := []struct {
		name          string
		topicTitle    string
		wantSubstring string
	}{
		{
			name:          "window anchor",
			topicTitle:    "Window Functions",
			wantSubstring: "DENSE_RANK",
		},
		{
			name:          "window anchor is case-insensitive",
			topicTitle:    "ADVANCED WINDOW TRICKS",
			wantSubstring: "DENSE_RANK",
		},
		{
			name:          "subquery anchor matches truncated stem",
			topicTitle:    "Subqueries & CTEs",
			wantSubstring: "Outer References",
		},
		{
			name:          "normalization anchor",
			topicTitle:    "Normalization (1NF - 4NF)",
			wantSubstring: "Partial Dependency",
		},
		{
			name:          "modeling anchor",
			topicTitle:    "Advanced Data Modeling (EER)",
			wantSubstring: "Supertypes & Subtypes",
		},
		{
			name:          "unknown title falls back",
			topicTitle:    "Joins & Set Operations",
			wantSubstring: GenericContext,
		},
		{
			name:          "empty title falls back",
			topicTitle:    "",
			wantSubstring: GenericContext,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContextForTopic(tt.topicTitle)
			if !strings.Contains(got, tt.wantSubstring) {
				t.Errorf("ContextForTopic(%q) does not contain %q", tt.topicTitle, tt.wantSubstring)
			}
		})
	}
}

func TestContextAnchorPriority(t *testing.T) {
	// A title matching several anchors resolves to the first in priority
	// order: window beats subquer.
	got := ContextForTopic("Window functions inside subqueries")
	if !strings.Contains(got, "DENSE_RANK") {
		t.Errorf("expected window context to win, got: %.60s", got)
	}
}

func TestTopicByID(t *testing.T) {
	topic := TopicByID("window_functions")
	if topic == nil {
		t.Fatal("expected window_functions topic")
	}
	if topic.Title != "Window Functions" {
		t.Errorf("unexpected title %q", topic.Title)
	}

	if TopicByID("recursive_ctes") != nil {
		t.Error("unknown id should return nil")
	}
}

func TestStaticTheoryCoversAllTopics(t *testing.T) {
	for _, topic := range Topics {
		if _, ok := StaticTheory(topic.Title); !ok {
			t.Errorf("topic %q has no static theory page", topic.Title)
		}
	}
}

func TestBankQuestions(t *testing.T) {
	if qs := BankQuestions("window_functions"); len(qs) != 2 {
		t.Errorf("window_functions bank size = %d, want 2", len(qs))
	}
	if qs := BankQuestions("data_modeling"); len(qs) != 0 {
		t.Errorf("data_modeling should have no bank entries, got %d", len(qs))
	}
}
