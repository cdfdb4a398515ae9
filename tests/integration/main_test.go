package integration

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"learnpath/internal/catalog"
	"learnpath/internal/config"
	"learnpath/internal/database"
	"learnpath/internal/handler"
	"learnpath/internal/middleware"
	"learnpath/internal/render"
	"learnpath/internal/repository"
	"learnpath/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
)

var (
	app     *fiber.App
	db      *sqlx.DB
	baseURL string
	cfg     *config.Config
)

const catalogCSV = `Titel;Niveau;Onderwerp;Type;Tijdsinvestering;Taal;Organisatie;Beschrijving;Link
Prompting basics;1;GENAI;E-Learning;1,5;NL;Academy;Write better prompts;https://example.org/prompting
Fine-tuning LLMs;3;GENAI;Workshop;8;EN;Lab;Adapt a model;https://example.org/finetune
ML for everyone;1;MLAI;E-Learning;3;NL;Academy;First steps;https://example.org/ml
Ethics primer;0;AIETHIC;Guide;0,5;NL;Council;Why it matters;https://example.org/ethics
Spreadsheets to SQL;2;Data (basis);Workshop;4;NL;Academy;Query your own data;https://example.org/sql
`

func TestMain(m *testing.M) {
	code, err := run(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "integration setup failed: %v\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}

func run(m *testing.M) (int, error) {
	dir, err := os.MkdirTemp("", "learnpath-integration")
	if err != nil {
		return 0, err
	}
	defer os.RemoveAll(dir)

	cfg = &config.Config{
		DB: config.DBConfig{Driver: database.DriverSQLite, Path: filepath.Join(dir, "learnpath.db")},
		Recommendations: config.RecommendationConfig{
			LevelThresholds: []int{5, 10, 18, 26},
			MaxCards:        6,
			Categories:      []string{"all", "Workshop", "E-Learning", "Guide"},
		},
	}

	ctx := context.Background()
	if err := database.RunMigrations(ctx, cfg); err != nil {
		return 0, err
	}
	db, err = database.NewSQLXDB(cfg)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	elearningService := service.NewElearningService(
		repository.NewElearningDatabaseAdapter(db),
		service.NewResultsCacheService(nil, time.Minute),
		cfg.Recommendations,
	)
	items, err := catalog.Parse(strings.NewReader(catalogCSV))
	if err != nil {
		return 0, err
	}
	if err := elearningService.ReplaceCatalog(ctx, items); err != nil {
		return 0, err
	}

	quizService := service.NewQuizService(repository.NewQuestionDatabaseAdapter(db))
	renderer, err := render.New()
	if err != nil {
		return 0, err
	}
	app = fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.RequestLogger())
	handler.SetupRoutes(app, handler.Handlers{
		Quiz:       handler.NewQuizHandler(quizService, renderer),
		Elearning:  handler.NewElearningHandler(elearningService, renderer, cfg.Recommendations.MaxCards, cfg.Recommendations.Categories),
		Health:     handler.NewHealthHandler(db, nil, quizService),
		Validation: middleware.NewValidationMiddleware(cfg.Recommendations.Categories),
	}, "/elearning")

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, err
	}
	go func() { _ = app.Listener(ln) }()
	defer app.Shutdown()
	baseURL = "http://" + ln.Addr().String()

	return m.Run(), nil
}
