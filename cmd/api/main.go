// @title Learnpath API
// @version 1.0
// @description Learning-path quiz and e-learning recommendations.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:5001
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "learnpath/cmd/api/docs"
	"learnpath/internal/adapter"
	"learnpath/internal/cache"
	"learnpath/internal/config"
	"learnpath/internal/database"
	"learnpath/internal/domain"
	"learnpath/internal/handler"
	"learnpath/internal/logger"
	"learnpath/internal/middleware"
	"learnpath/internal/render"
	"learnpath/internal/repository"
	"learnpath/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := database.RunMigrations(ctx, cfg); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	db, err := database.NewSQLXDB(cfg)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	questionRepository := repository.NewQuestionDatabaseAdapter(db)
	elearningRepository := repository.NewElearningDatabaseAdapter(db)

	var cacheAdapter domain.Cache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Redis cache enabled", zap.String("address", cfg.Redis.Address))
	} else {
		appLogger.Warn("Redis cache is disabled. Running without cache.")
	}

	resultsTTL := cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Results, 10*time.Minute)
	resultsCache := service.NewResultsCacheService(cacheAdapter, resultsTTL)

	quizService := service.NewQuizService(questionRepository)
	elearningService := service.NewElearningService(elearningRepository, resultsCache, cfg.Recommendations)

	renderer, err := render.New()
	if err != nil {
		appLogger.Fatal("Failed to parse templates", zap.Error(err))
	}

	handlers := handler.Handlers{
		Quiz:       handler.NewQuizHandler(quizService, renderer),
		Elearning:  handler.NewElearningHandler(elearningService, renderer, cfg.Recommendations.MaxCards, cfg.Recommendations.Categories),
		Health:     handler.NewHealthHandler(db, cacheAdapter, quizService),
		Validation: middleware.NewValidationMiddleware(cfg.Recommendations.Categories),
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.SetupRoutes(app, handlers, cfg.Server.ResultsPath)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("driver", cfg.DB.Driver))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
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
