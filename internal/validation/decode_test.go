package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		wantErr  bool
	}{
		{
			name:     "bare object",
			raw:      `{"a":1}`,
			expected: `{"a":1}`,
		},
		{
			name:     "object wrapped in prose",
			raw:      "Here is your question:\n{\"a\":1}\nHope that helps!",
			expected: `{"a":1}`,
		},
		{
			name:     "object in code fence",
			raw:      "```json\n{\"a\":1}\n```",
			expected: `{"a":1}`,
		},
		{
			name:     "think block stripped",
			raw:      "<think>chain of thought</think>{\"a\":1}",
			expected: `{"a":1}`,
		},
		{
			name:    "no object at all",
			raw:     "I cannot answer that.",
			wantErr: true,
		},
		{
			name:    "empty response",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDecodeStrictQuestion(t *testing.T) {
	type questionPayload struct {
		QuestionText  string   `json:"questionText"`
		SchemaContext string   `json:"schemaContext"`
		Hints         []string `json:"hints"`
	}

	t.Run("conforming payload", func(t *testing.T) {
		raw := `{"questionText":"Rank the employees.","schemaContext":"Table: EMPLOYEES","hints":["h1","h2"]}`
		var p questionPayload
		require.NoError(t, DecodeStrict(raw, QuestionSchema, &p))
		assert.Equal(t, "Rank the employees.", p.QuestionText)
		assert.Len(t, p.Hints, 2)
	})

	t.Run("missing required field", func(t *testing.T) {
		raw := `{"questionText":"Rank the employees.","hints":[]}`
		var p questionPayload
		assert.Error(t, DecodeStrict(raw, QuestionSchema, &p))
	})

	t.Run("wrong type", func(t *testing.T) {
		raw := `{"questionText":"q","schemaContext":"s","hints":"not an array"}`
		var p questionPayload
		assert.Error(t, DecodeStrict(raw, QuestionSchema, &p))
	})
}

func TestDecodeStrictEvaluation(t *testing.T) {
	t.Run("conforming verdict", func(t *testing.T) {
		raw := `{"isCorrect":true,"scoreAwarded":85,"explanation":"e","correctQuery":"SELECT 1;","optimizationTip":"t","userFeedback":"f","suggestDifficultyIncrease":false}`
		var v map[string]any
		require.NoError(t, DecodeStrict(raw, EvaluationSchema, &v))
		assert.Equal(t, true, v["isCorrect"])
	})

	t.Run("semantically odd values still pass", func(t *testing.T) {
		// The schema enforces shape, not sense; a negative score is the
		// provider's problem, not a decode failure.
		raw := `{"isCorrect":false,"scoreAwarded":-10,"explanation":"e","correctQuery":"q","optimizationTip":"t","userFeedback":"f","suggestDifficultyIncrease":false}`
		var v map[string]any
		assert.NoError(t, DecodeStrict(raw, EvaluationSchema, &v))
	})

	t.Run("missing verdict flag fails", func(t *testing.T) {
		raw := `{"scoreAwarded":50,"explanation":"e","correctQuery":"q","optimizationTip":"t","userFeedback":"f","suggestDifficultyIncrease":false}`
		var v map[string]any
		assert.Error(t, DecodeStrict(raw, EvaluationSchema, &v))
	})
}
