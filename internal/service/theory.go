package service

import (
	"context"
	"fmt"

	"sql-arena/internal/cache"
	"sql-arena/internal/config"
	"sql-arena/internal/curriculum"
	"sql-arena/internal/domain"
	"sql-arena/internal/logger"

	"go.uber.org/zap"
)

// TheoryErrorContent is returned in place of study material when generation
// fails. It renders as a markdown heading; it is never cached.
const TheoryErrorContent = "## Error loading content."

// TheoryProvider serves explanatory study text per topic: the persisted
// per-topic cache first, then static pages, then fresh generation. A forced
// refresh bypasses both read paths but still writes the cache, shadowing any
// static page until the cache entry is cleared externally.
type TheoryProvider interface {
	GetTheory(ctx context.Context, topicID string, forceRefresh bool) string
}

type theoryProvider struct {
	completer domain.Completer
	store     domain.Store
	cfg       config.TheoryConfig
}

// NewTheoryProvider creates a new TheoryProvider.
func NewTheoryProvider(completer domain.Completer, store domain.Store, cfg config.TheoryConfig) TheoryProvider {
	return &theoryProvider{
		completer: completer,
		store:     store,
		cfg:       cfg,
	}
}

// GetTheory implements TheoryProvider.
func (t *theoryProvider) GetTheory(ctx context.Context, topicID string, forceRefresh bool) string {
	title := topicID
	if topic := curriculum.TopicByID(topicID); topic != nil {
		title = topic.Title
	}

	if !forceRefresh {
		cached, err := t.store.Get(ctx, cache.TheoryKey(topicID))
		if err == nil {
			return cached
		}
		if err != domain.ErrKeyNotFound {
			logger.Get().Warn("Theory cache read failed",
				zap.Error(err),
				zap.String("topic_id", topicID),
			)
		}
		if content, ok := curriculum.StaticTheory(title); ok {
			return content
		}
	}

	content, err := t.generate(ctx, title)
	if err != nil {
		logger.Get().Warn("Theory generation failed",
			zap.Error(err),
			zap.String("topic", title),
		)
		return TheoryErrorContent
	}

	// Best-effort write-through; a failed cache write only costs the next
	// reader a regeneration.
	if err := t.store.Set(ctx, cache.TheoryKey(topicID), content, t.cfg.CacheTTL); err != nil {
		logger.Get().Warn("Failed to cache theory content",
			zap.Error(err),
			zap.String("topic_id", topicID),
		)
	}

	return content
}

func (t *theoryProvider) generate(ctx context.Context, topicTitle string) (string, error) {
	curriculumContext := curriculum.ContextForTopic(topicTitle)

	prompt := fmt.Sprintf(`Write a comprehensive, textbook-quality tutorial on %s in SQL.

CRITICAL: The content MUST be strictly based on these curriculum notes and rules:
%s

Structure the response using standard Markdown:
1. **Title**: Use an H1 (#) for the main title.
2. **Introduction**: Brief summary of the concept.
3. **Key Concepts**: Use H2 (##) for sections. Use bolding (**text**) for key terms defined in the curriculum.
4. **Syntax & Examples**: Use code blocks for ALL SQL examples. Use Markdown Tables for comparing concepts (e.g. RANK vs DENSE_RANK).
5. **Common Pitfalls**: Use a blockquote (>) to highlight traps mentioned in the slides (e.g. "Fan Traps").
6. **Real-world Scenario**: Provide a concrete example (e.g. "Class of '26 Database").

Keep it educational, formal, and visually structured. Ensure headers are clearly marked with #.`, topicTitle, curriculumContext)

	// Long-form markdown, not a structured completion.
	content, err := t.completer.Complete(ctx, prompt, false)
	if err != nil {
		return "", domain.NewProviderError(err)
	}
	if content == "" {
		content = "Content unavailable."
	}
	return content, nil
}
