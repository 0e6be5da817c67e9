package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/config"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/tenant-dashboard/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Setup registers every route. A nil storage keeps limiter state in memory.
func Setup(
	app *fiber.App,
	cfg *config.Config,
	storage fiber.Storage,
	identity middleware.CallerResolver,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	activityHandler *handlers.ActivityHandler,
	projectHandler *handlers.ProjectHandler,
	userHandler *handlers.UserHandler,
) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
		Storage:           storage,
	}))

	api.Get("/health", healthHandler.Check)

	// Auth: stricter 10 req/min per IP
	authLimit := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return "auth:" + c.IP() },
		Storage:           storage,
	})
	auth := api.Group("/auth", authLimit)
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Post("/demo", authLimit, authHandler.Demo)

	// Mutation APIs: 401 without a token, 404 when the user row is gone
	jwt := middleware.JWTProtected(cfg)
	caller := middleware.ResolveCaller(identity)

	api.Post("/activity", jwt, caller, activityHandler.Record)
	api.Post("/summarize-activity", jwt, activityHandler.Summarize)

	api.Get("/projects", jwt, caller, projectHandler.List)
	api.Post("/projects", jwt, caller, projectHandler.Create)
	api.Put("/projects/:id", jwt, caller, projectHandler.Update)
	api.Delete("/projects/:id", jwt, caller, projectHandler.Delete)

	api.Put("/users/profile", jwt, caller, userHandler.UpdateProfile)

	// Page loads: every failure answers with a login redirect
	pageJWT := middleware.JWTProtectedPage(cfg)
	pageCaller := middleware.ResolvePageCaller(identity)

	api.Get("/activity", pageJWT, pageCaller, activityHandler.List)
	api.Get("/dashboard", pageJWT, pageCaller, userHandler.Dashboard)
	api.Get("/users", pageJWT, pageCaller, userHandler.List)
	api.Get("/settings", pageJWT, pageCaller, userHandler.Settings)
}
