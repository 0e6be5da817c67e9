package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/config"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/database"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/logging"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/ratelimit"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/routes"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/services"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/store"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/telemetry"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	cfg := config.Load()

	// Structured logging (JSON to stdout)
	logging.Setup(cfg.IsDevelopment())

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(database.DB); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
	if err := database.MigrateSystemLogs(database.DB); err != nil {
		slog.Error("system log migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(database.DB, 5*time.Second)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		logging.NewStdoutHandler(os.Stdout, logging.Level(cfg.IsDevelopment())),
		pgLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	// Tracing
	shutdownTracing, err := telemetry.Setup(context.Background(), telemetry.Config{
		Endpoint:    cfg.OTelEndpoint,
		Insecure:    cfg.OTelInsecure,
		Environment: cfg.AppEnv,
	})
	if err != nil {
		slog.Error("tracing init failed", "error", err)
		os.Exit(1)
	}

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Services
	st := store.New(database.DB)
	activityLogger := services.NewActivityLogger(st.Activity)
	identityService := services.NewIdentityService(st.Users)
	authService := services.NewAuthService(st, activityLogger, cfg)
	demoService := services.NewDemoService(st, authService, cfg)
	projectService := services.NewProjectService(st.Projects, st.Users, activityLogger)
	userService := services.NewUserService(st.Users, activityLogger)
	dashboardService := services.NewDashboardService(st, cfg.SummaryLocation())

	anthropic := services.NewAnthropicClient(cfg)
	if !anthropic.IsAvailable() {
		slog.Warn("ANTHROPIC_API_KEY not set, activity summaries will fail")
	}
	summaryService := services.NewSummaryService(anthropic, cfg.SummaryMaxTokens, cfg.SummaryLocation())

	if err := services.NewSeedService(st).ApplyFile(context.Background(), cfg.SeedFile); err != nil {
		slog.Error("seeding failed", "path", cfg.SeedFile, "error", err)
		os.Exit(1)
	}

	// Rate limiter state: Redis when configured, in-memory otherwise
	var limiterStorage fiber.Storage
	var redisStorage *ratelimit.RedisStorage
	if cfg.RedisAddr != "" {
		redisStorage = ratelimit.NewRedisStorage(ratelimit.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := redisStorage.Ping(ctx)
		cancel()
		if err != nil {
			slog.Warn("redis unavailable, rate limits kept in memory", "addr", cfg.RedisAddr, "error", err)
			_ = redisStorage.Close()
			redisStorage = nil
		} else {
			limiterStorage = redisStorage
			slog.Info("rate limits stored in redis", "addr", cfg.RedisAddr)
		}
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, demoService)
	healthHandler := handlers.NewHealthHandler(database.Ping)
	activityHandler := handlers.NewActivityHandler(activityLogger, services.NewActivityFeed(st.Activity, st.Users), summaryService)
	projectHandler := handlers.NewProjectHandler(projectService)
	userHandler := handlers.NewUserHandler(userService, dashboardService)

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: handlers.ErrorHandler(cfg.IsDevelopment()),
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})
	app.Use(middleware.Metrics())

	// Routes
	routes.Setup(app, cfg, limiterStorage, identityService,
		authHandler, healthHandler, activityHandler, projectHandler, userHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := shutdownTracing(ctx); err != nil {
		slog.Error("tracing shutdown error", "error", err)
	}
	cancel()

	if redisStorage != nil {
		if err := redisStorage.Close(); err != nil {
			slog.Error("redis close error", "error", err)
		}
	}

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	// Close database connections
	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}
