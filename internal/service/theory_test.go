package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"sql-arena/internal/cache"
	"sql-arena/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetTheoryStaticContent(t *testing.T) {
	completer := new(MockCompleter)
	store := newMemStore()
	provider := NewTheoryProvider(completer, store, config.TheoryConfig{})
	ctx := context.Background()

	content := provider.GetTheory(ctx, "window_functions", false)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(content), "# Window Functions"))

	// Static content never costs a provider call or a cache write.
	completer.AssertNotCalled(t, "Complete")
	_, cached := store.get(cache.TheoryKey("window_functions"))
	assert.False(t, cached)
}

func TestGetTheoryUnknownTopicGeneratesAndCaches(t *testing.T) {
	completer := new(MockCompleter)
	store := newMemStore()
	provider := NewTheoryProvider(completer, store, config.TheoryConfig{})
	ctx := context.Background()

	generated := "# Recursive CTEs\nA recursive CTE references itself."
	completer.On("Complete", mock.Anything, mock.Anything, false).Return(generated, nil).Once()

	content := provider.GetTheory(ctx, "recursive_ctes", false)
	assert.Equal(t, generated, content)

	stored, ok := store.get("sql_arena_theory_recursive_ctes")
	require.True(t, ok)
	assert.Equal(t, generated, stored)

	// Second read is served from the cache with zero provider calls.
	again := provider.GetTheory(ctx, "recursive_ctes", false)
	assert.Equal(t, generated, again)
	completer.AssertNumberOfCalls(t, "Complete", 1)
}

func TestGetTheoryForceRefreshShadowsStaticContent(t *testing.T) {
	completer := new(MockCompleter)
	store := newMemStore()
	provider := NewTheoryProvider(completer, store, config.TheoryConfig{})
	ctx := context.Background()

	regenerated := "# Window Functions, revised edition"
	completer.On("Complete", mock.Anything, mock.Anything, false).Return(regenerated, nil).Once()

	content := provider.GetTheory(ctx, "window_functions", true)
	assert.Equal(t, regenerated, content)

	// The refresh wrote the cache even though a static page exists; the
	// cached copy now shadows it until cleared externally.
	stored, ok := store.get(cache.TheoryKey("window_functions"))
	require.True(t, ok)
	assert.Equal(t, regenerated, stored)

	cached := provider.GetTheory(ctx, "window_functions", false)
	assert.Equal(t, content, cached)
	completer.AssertNumberOfCalls(t, "Complete", 1)
}

func TestGetTheoryProviderFailure(t *testing.T) {
	completer := new(MockCompleter)
	store := newMemStore()
	provider := NewTheoryProvider(completer, store, config.TheoryConfig{})
	ctx := context.Background()

	completer.On("Complete", mock.Anything, mock.Anything, false).
		Return("", errors.New("quota exhausted")).Once()

	content := provider.GetTheory(ctx, "recursive_ctes", false)
	assert.Equal(t, TheoryErrorContent, content)

	// Failures are never cached.
	_, ok := store.get(cache.TheoryKey("recursive_ctes"))
	assert.False(t, ok)
}

func TestGetTheoryGenerationPromptIsGrounded(t *testing.T) {
	completer := new(MockCompleter)
	store := newMemStore()
	provider := NewTheoryProvider(completer, store, config.TheoryConfig{})

	completer.On("Complete", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		// The prompt must embed the EER curriculum rules, resolved via the
		// topic's display title rather than its identifier.
		return strings.Contains(prompt, "Advanced Modeling") &&
			strings.Contains(prompt, "Supertypes & Subtypes")
	}), false).Return("# EER", nil).Once()

	provider.GetTheory(context.Background(), "data_modeling", true)
	completer.AssertExpectations(t)
}
