package router

import (
	"context"

	activitysvc "impulseshield-backend/internal/application/activity"
	leadersvc "impulseshield-backend/internal/application/leaderboard"
	simsvc "impulseshield-backend/internal/application/simulator"
	"impulseshield-backend/internal/blobstore"
	"impulseshield-backend/internal/config"
	"impulseshield-backend/internal/infrastructure/database"
	"impulseshield-backend/internal/interfaces/handlers/activity"
	"impulseshield-backend/internal/interfaces/handlers/dashboard"
	"impulseshield-backend/internal/interfaces/handlers/goals"
	"impulseshield-backend/internal/interfaces/handlers/health"
	"impulseshield-backend/internal/interfaces/handlers/leaderboard"
	"impulseshield-backend/internal/interfaces/handlers/learn"
	"impulseshield-backend/internal/interfaces/handlers/markets"
	"impulseshield-backend/internal/interfaces/handlers/portfolio"
	"impulseshield-backend/internal/interfaces/handlers/simulator"
	"impulseshield-backend/internal/ledger"
	"impulseshield-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Deps holds what CreateApp wired up, for startup checks and shutdown.
type Deps struct {
	Store    blobstore.Store
	Ledger   *ledger.Ledger
	Activity *activitysvc.Service
	Rdb      *redis.Client
	DB       *gorm.DB
}

// CreateApp builds the Fiber app: storage backend, ledger, services, global
// middleware, and route registration. There is exactly one ledger per
// process, created here and passed by reference to every handler.
func CreateApp(ctx context.Context, cfg *config.Config) (*fiber.App, *Deps, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	deps := &Deps{}
	switch cfg.StorageBackend {
	case config.StorageRedis:
		store, err := blobstore.NewRedisStore(cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		deps.Store = store
		deps.Rdb = store.Rdb
	case config.StorageDatabase:
		db, err := database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		store, err := blobstore.NewDatabaseStore(db)
		if err != nil {
			return nil, nil, err
		}
		deps.Store = store
		deps.DB = db
	default:
		deps.Store = blobstore.NewMemoryStore()
	}

	deps.Ledger = ledger.New(ctx, deps.Store)
	deps.Activity = activitysvc.New(ctx, deps.Ledger, deps.Store)

	// Health
	healthHandlers := &health.Handlers{Storage: cfg.StorageBackend, Rdb: deps.Rdb}
	if deps.DB != nil {
		if sqlDB, err := deps.DB.DB(); err == nil {
			healthHandlers.DB = sqlDB
		}
	}
	app.Get("/health/json", healthHandlers.JSON)

	// Goals
	goalHandlers := &goals.Handlers{Ledger: deps.Ledger}
	goalGroup := app.Group("/api/v1/goals")
	goalGroup.Get("/", goalHandlers.List)
	goalGroup.Post("/", goalHandlers.Create)
	goalGroup.Post("/:id/contribute", goalHandlers.Contribute)

	// Portfolio
	portfolioHandlers := &portfolio.Handlers{Ledger: deps.Ledger}
	portfolioGroup := app.Group("/api/v1/portfolio")
	portfolioGroup.Get("/", portfolioHandlers.List)
	portfolioGroup.Post("/buy", portfolioHandlers.Buy)
	portfolioGroup.Get("/performance", portfolioHandlers.Performance)
	portfolioGroup.Get("/allocation", portfolioHandlers.Allocation)

	// Dashboard
	dashboardHandlers := &dashboard.Handlers{Ledger: deps.Ledger, Activity: deps.Activity}
	app.Get("/api/v1/dashboard", dashboardHandlers.Get)

	// Activity
	activityHandlers := &activity.Handlers{Service: deps.Activity, Ledger: deps.Ledger}
	activityGroup := app.Group("/api/v1/activity")
	activityGroup.Get("/transactions", activityHandlers.Transactions)
	activityGroup.Post("/nudge", activityHandlers.Nudge)
	activityGroup.Get("/recommendation/:goalId", activityHandlers.Recommendation)

	// Leaderboard
	leaderService := &leadersvc.Service{Ledger: deps.Ledger, Activity: deps.Activity}
	leaderHandlers := &leaderboard.Handlers{Service: leaderService}
	app.Get("/api/v1/leaderboard", leaderHandlers.Get)

	// Learn
	learnHandlers := &learn.Handlers{}
	app.Get("/api/v1/learn/lessons", learnHandlers.Lessons)

	// Simulator
	simService := &simsvc.Service{Ledger: deps.Ledger}
	simHandlers := &simulator.Handlers{Service: simService}
	simGroup := app.Group("/api/v1/simulator")
	simGroup.Get("/scenarios", simHandlers.Scenarios)
	simGroup.Post("/impact", simHandlers.Impact)
	simGroup.Post("/projection", simHandlers.Projection)
	simGroup.Post("/divert", simHandlers.Divert)

	// Markets
	marketHandlers := &markets.Handlers{}
	marketGroup := app.Group("/api/v1/markets")
	marketGroup.Get("/stocks", marketHandlers.Search)
	marketGroup.Get("/stocks/:ticker", marketHandlers.Get)

	return app, deps, nil
}
