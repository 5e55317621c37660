// Package validation turns raw provider output into validated JSON payloads.
// Every structured completion passes through here before it is trusted: the
// JSON object is extracted from whatever the model wrapped it in, checked
// against an explicit schema, and only then unmarshalled. A document that
// fails any step is treated exactly like a network failure by callers.
package validation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// JSON Schemas for the two structured completions the system requests.
// Required fields mirror what the grading and generation prompts ask for;
// anything missing fails the decode and routes to the fallback path.
const (
	// QuestionSchema constrains generated quiz questions.
	QuestionSchema = `{
		"type": "object",
		"properties": {
			"questionText": {"type": "string", "minLength": 1},
			"schemaContext": {"type": "string", "minLength": 1},
			"hints": {"type": "array", "items": {"type": "string"}}
		},
		"required": ["questionText", "schemaContext", "hints"]
	}`

	// EvaluationSchema constrains grading verdicts. scoreAwarded is not
	// range-checked here; out-of-range values pass through unchanged.
	EvaluationSchema = `{
		"type": "object",
		"properties": {
			"isCorrect": {"type": "boolean"},
			"scoreAwarded": {"type": "number"},
			"explanation": {"type": "string"},
			"correctQuery": {"type": "string"},
			"optimizationTip": {"type": "string"},
			"userFeedback": {"type": "string"},
			"suggestDifficultyIncrease": {"type": "boolean"}
		},
		"required": ["isCorrect", "scoreAwarded", "explanation", "correctQuery", "optimizationTip", "userFeedback", "suggestDifficultyIncrease"]
	}`
)

// ExtractJSON pulls the JSON object out of a raw completion. Models wrap
// their output in prose, code fences, or reasoning tags; the document is
// taken to span the first '{' through the last '}'.
func ExtractJSON(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)

	// Strip a <think>...</think> block if present.
	if thinkStart := strings.Index(cleaned, "<think>"); thinkStart != -1 {
		if thinkEnd := strings.Index(cleaned, "</think>"); thinkEnd != -1 && thinkEnd > thinkStart {
			cleaned = cleaned[:thinkStart] + cleaned[thinkEnd+len("</think>"):]
			cleaned = strings.TrimSpace(cleaned)
		}
	}

	jsonStart := strings.Index(cleaned, "{")
	jsonEnd := strings.LastIndex(cleaned, "}")
	if jsonStart == -1 || jsonEnd == -1 || jsonEnd <= jsonStart {
		return "", fmt.Errorf("no JSON object found in response: %s", cleaned)
	}
	return cleaned[jsonStart : jsonEnd+1], nil
}

// DecodeStrict extracts, schema-validates, and unmarshals a provider
// response into v. The document must satisfy the given schema in full; a
// partially-populated object never escapes this function.
func DecodeStrict(raw string, schema string, v any) error {
	doc, err := ExtractJSON(raw)
	if err != nil {
		return err
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewStringLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("schema validation failed to run: %w", err)
	}
	if !result.Valid() {
		var reasons []string
		for _, desc := range result.Errors() {
			reasons = append(reasons, desc.String())
		}
		return fmt.Errorf("response does not conform to schema: %s", strings.Join(reasons, "; "))
	}

	if err := json.Unmarshal([]byte(doc), v); err != nil {
		return fmt.Errorf("failed to unmarshal validated response: %w", err)
	}
	return nil
}
