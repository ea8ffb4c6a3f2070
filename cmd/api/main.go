// @title EduGenie API
// @version 1.0
// @description Generates quizzes and flashcards from a topic or an uploaded document and stores study results.
// @host localhost:8000
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"edugenie/internal/adapter"
	"edugenie/internal/adapter/quizgen"
	"edugenie/internal/cache"
	"edugenie/internal/config"
	"edugenie/internal/database"
	"edugenie/internal/handler"
	"edugenie/internal/logger"
	"edugenie/internal/middleware"
	"edugenie/internal/port"
	"edugenie/internal/repository"
	"edugenie/internal/service"

	_ "edugenie/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// newContentGenerator picks the model adapter for cfg.LLM.Provider. The returned closer
// releases provider resources and is never nil.
func newContentGenerator(ctx context.Context, cfg config.LLMConfig) (port.ContentGenerator, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Provider {
	case config.ProviderGemini:
		gen, err := quizgen.NewGeminiContentGenerator(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, noop, err
		}
		return gen, gen.Close, nil
	case config.ProviderOllama:
		gen, err := quizgen.NewOllamaContentGenerator(cfg.ServerURL, cfg.Model)
		return gen, noop, err
	case config.ProviderOpenAI:
		gen, err := quizgen.NewOpenAIContentGenerator(cfg.APIKey, cfg.Model)
		return gen, noop, err
	default:
		return nil, noop, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgresDB(ctx, cfg.DB)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db.DB, database.Up); err != nil {
		appLogger.Fatal("Failed to apply migrations", zap.Error(err))
	}

	generator, closeGenerator, err := newContentGenerator(ctx, cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create content generator", zap.String("provider", cfg.LLM.Provider), zap.Error(err))
	}
	defer closeGenerator()
	appLogger.Info("Content generator initialized", zap.String("provider", cfg.LLM.Provider), zap.String("model", cfg.LLM.Model))

	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		generator = service.NewCachedContentGenerator(generator, adapter.NewRedisCacheAdapter(redisClient),
			cfg.LLM.Provider+"/"+cfg.LLM.Model, cfg.Cache.TTL)
		appLogger.Info("Generation cache enabled", zap.Duration("ttl", cfg.Cache.TTL))
	}

	studyRepository := repository.NewSQLXStudyRepository(db)
	generationService := service.NewGenerationService(generator)
	studyService := service.NewStudyService(studyRepository)

	healthHandler := handler.NewHealthHandler(cfg.App.Name)
	generationHandler := handler.NewGenerationHandler(generationService)
	studyHandler := handler.NewStudyHandler(studyService)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    cfg.Server.BodyLimitMB * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(middleware.CORS(cfg.CORS.AllowOrigin))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")
	apiGroup.Get("/ping", healthHandler.Ping)
	apiGroup.Post("/submit-flashcard-session", studyHandler.SubmitFlashcardSession)
	apiGroup.Post("/generate-quiz", generationHandler.GenerateContent)
	apiGroup.Post("/submit-result", studyHandler.SubmitResult)
	apiGroup.Get("/dashboard/:user_id", studyHandler.GetDashboard)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Starting server", zap.String("addr", cfg.Addr()), zap.String("env", os.Getenv("ENV")))
		return app.Listen(cfg.Addr())
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("Server stopped with error", zap.Error(err))
		return
	}
	appLogger.Info("Server exited gracefully")
}
