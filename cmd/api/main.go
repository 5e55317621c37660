// @title SQL Arena API
// @version 1.0
// @description Practice arena for SQL: curriculum theory, quiz questions, and graded free-form submissions.
// @host localhost:8080
// @BasePath /api
// @schemes http
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"sql-arena/internal/adapter"
	"sql-arena/internal/adapter/llm"
	"sql-arena/internal/cache"
	"sql-arena/internal/config"
	"sql-arena/internal/handler"
	"sql-arena/internal/logger"
	"sql-arena/internal/middleware"
	"sql-arena/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	// LLM backend
	completer, err := llm.NewCompleter(ctx, cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}
	appLogger.Info("LLM client initialized",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model),
	)

	// Redis-backed storage
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	store := adapter.NewRedisStoreAdapter(redisClient)

	// Initialize services
	profileService := service.NewProfileService(ctx, store)
	questionProvider := service.NewQuestionProvider(completer)
	evaluator := service.NewSubmissionEvaluator(completer)
	theoryProvider := service.NewTheoryProvider(completer, store, cfg.Theory)
	leaderboardService := service.NewLeaderboardService()
	quizService := service.NewQuizService(questionProvider, evaluator, profileService)

	// Initialize handlers
	profileHandler := handler.NewProfileHandler(profileService)
	topicHandler := handler.NewTopicHandler(theoryProvider)
	quizHandler := handler.NewQuizHandler(quizService)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService, profileService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")

	// Profile routes stay open: onboarding is how a session begins.
	apiGroup.Get("/profile", profileHandler.GetProfile)
	apiGroup.Post("/profile", profileHandler.Onboard)
	apiGroup.Delete("/profile", profileHandler.ResetProfile)

	// Everything else requires a completed onboarding.
	requireProfile := middleware.RequireProfile(profileService)

	apiGroup.Get("/topics", requireProfile, topicHandler.ListTopics)
	apiGroup.Get("/topics/:topicID/theory", requireProfile, topicHandler.GetTheory)

	apiGroup.Get("/quiz/question", requireProfile, quizHandler.GetQuestion)
	apiGroup.Post("/quiz/submit", requireProfile, quizHandler.SubmitAnswer)
	apiGroup.Post("/quiz/level-up", requireProfile, quizHandler.LevelUp)

	apiGroup.Get("/leaderboard", requireProfile, leaderboardHandler.GetLeaderboard)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
