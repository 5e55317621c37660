package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"sql-arena/internal/domain"
	"sql-arena/internal/logger"
	"sql-arena/internal/middleware"
	"sql-arena/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(nil); err != nil {
		panic(err)
	}
	code := m.Run()
	logger.Sync()
	os.Exit(code)
}

type memStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (s *memStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return "", domain.ErrKeyNotFound
	}
	return v, nil
}

func (s *memStore) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *memStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *memStore) Ping(ctx context.Context) error {
	return nil
}

func newGuardedApp(t *testing.T) (*fiber.App, *service.ProfileService) {
	t.Helper()
	profiles := service.NewProfileService(context.Background(), newMemStore())

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Get("/guarded", middleware.RequireProfile(profiles), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app, profiles
}

func TestRequireProfileRejectsAnonymous(t *testing.T) {
	app, _ := newGuardedApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body middleware.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, string(domain.ErrProfileRequired), body.Code)
}

func TestRequireProfilePassesOnboardedLearner(t *testing.T) {
	app, profiles := newGuardedApp(t)
	profiles.SetIdentity(context.Background(), "Riley", domain.DifficultyBeginner)

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestErrorHandlerMapsDomainCodes(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return domain.NewTopicNotFoundError("quantum_sql")
	})
	app.Get("/bad", func(c *fiber.Ctx) error {
		return domain.NewInvalidInputError("nope")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})

	cases := []struct {
		path   string
		status int
		code   string
	}{
		{"/missing", fiber.StatusNotFound, string(domain.ErrTopicNotFound)},
		{"/bad", fiber.StatusBadRequest, string(domain.ErrInvalidInput)},
		{"/boom", fiber.StatusInternalServerError, string(domain.ErrInternal)},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", tc.path, nil))
		require.NoError(t, err)
		assert.Equal(t, tc.status, resp.StatusCode, tc.path)

		var body middleware.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, tc.code, body.Code, tc.path)
	}
}
