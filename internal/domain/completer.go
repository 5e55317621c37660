package domain

import "context"

// Completer is the port for the external generative-AI provider, reduced to
// the single capability the system consumes: turn a prompt into text. JSON
// mode asks the provider to emit a bare JSON document; callers still run the
// response through a schema-validating decode before trusting it.
type Completer interface {
	Complete(ctx context.Context, prompt string, jsonMode bool) (string, error)
}
