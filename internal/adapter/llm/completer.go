// Package llm adapts the langchaingo model clients to the domain.Completer
// port. Two backends are supported: Google AI (Gemini, the default) and a
// local Ollama server.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"sql-arena/internal/config"
	"sql-arena/internal/domain"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
)

const defaultTimeout = 30 * time.Second

// Completer wraps a langchaingo model behind the domain port.
type Completer struct {
	model   llms.Model
	timeout time.Duration
}

// NewCompleter builds the provider selected by cfg.Provider.
func NewCompleter(ctx context.Context, cfg config.LLMConfig) (domain.Completer, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var model llms.Model
	var err error
	switch cfg.Provider {
	case "googleai", "":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("googleai provider requires an API key")
		}
		model, err = googleai.New(ctx,
			googleai.WithAPIKey(cfg.APIKey),
			googleai.WithDefaultModel(cfg.Model),
		)
	case "ollama":
		httpClient := &http.Client{Timeout: timeout}
		model, err = ollama.New(
			ollama.WithServerURL(cfg.ServerURL),
			ollama.WithModel(cfg.Model),
			ollama.WithHTTPClient(httpClient),
		)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return &Completer{model: model, timeout: timeout}, nil
}

// Complete sends a single prompt and returns the raw completion text.
func (c *Completer) Complete(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	opts := []llms.CallOption{llms.WithTemperature(0.2)}
	if jsonMode {
		opts = append(opts, llms.WithJSONMode())
	}

	response, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt, opts...)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("LLM request timed out: %w", err)
		}
		return "", fmt.Errorf("LLM call failed: %w", err)
	}
	return response, nil
}

var _ domain.Completer = (*Completer)(nil)
