package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"intent-chatbot/internal/api"
	"intent-chatbot/internal/api/handlers"
	"intent-chatbot/internal/matcher"
	"intent-chatbot/internal/repository"
	"intent-chatbot/internal/service"
	"intent-chatbot/internal/source"
	"intent-chatbot/pkg/auth"
	"intent-chatbot/pkg/config"
	"intent-chatbot/pkg/logger"
	"intent-chatbot/pkg/postgres"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// @title Intent Chatbot API
// @version 1.0
// @description Intent-matching chat responder

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting intent chatbot")

	strategy, err := matcher.ParseStrategy(cfg.Matcher.Scorer)
	if err != nil {
		appLogger.Fatal("Invalid matcher configuration", zap.Error(err))
	}
	engine := matcher.New(
		matcher.WithStrategy(strategy),
		matcher.WithStemming(cfg.Matcher.Stemming),
	)

	ctx := context.Background()
	catalogSource, closeSource, err := buildCatalogSource(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize catalog source", zap.Error(err))
	}
	defer closeSource()

	// Services
	chatService := service.NewChatService(engine, logger.Named("chat"))
	trainingService := service.NewTrainingService(engine, catalogSource, logger.Named("training"))

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration)
	authService := service.NewAuthService(jwtManager, cfg.JWT.AdminPasswordHash, logger.Named("auth"))

	loadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	if _, err := trainingService.Retrain(loadCtx); err != nil {
		appLogger.Error("Initial training failed, chatbot starts untrained", zap.Error(err))
	}
	cancel()

	// Handlers
	h := api.Handlers{
		Chat:   handlers.NewChatHandler(chatService, appLogger),
		Train:  handlers.NewTrainHandler(trainingService, appLogger),
		System: handlers.NewSystemHandler(chatService, string(engine.Strategy())),
		Auth:   handlers.NewAuthHandler(authService, validator.New(), appLogger),
	}

	app := api.SetupRouter(h, jwtManager, cfg, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting",
			zap.String("address", addr),
			zap.String("scorer", string(engine.Strategy())),
			zap.Bool("stemming", cfg.Matcher.Stemming),
			zap.Bool("auth", cfg.JWT.Enabled),
		)
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}

// buildCatalogSource wires the configured catalog source. File and Postgres
// sources fall back to the built-in catalog when they hold nothing.
func buildCatalogSource(ctx context.Context, cfg *config.Config, appLogger *zap.Logger) (source.CatalogSource, func(), error) {
	noop := func() {}

	switch cfg.Catalog.Source {
	case config.CatalogSourceBuiltin:
		return source.Builtin{}, noop, nil

	case config.CatalogSourceFile:
		return &source.Fallback{
			Primary:   &source.File{Path: cfg.Catalog.File},
			Secondary: source.Builtin{},
			Logger:    appLogger,
		}, noop, nil

	case config.CatalogSourcePostgres:
		db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
		if err != nil {
			return nil, noop, err
		}
		repo := repository.NewIntentRepository(db, logger.Named("repository"))
		if err := repo.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, noop, err
		}
		return &source.Fallback{
			Primary:   &source.Postgres{Repo: repo},
			Secondary: source.Builtin{},
			Logger:    appLogger,
		}, db.Close, nil

	default:
		return nil, noop, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}
