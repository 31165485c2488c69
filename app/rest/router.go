package rest

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"cajachica-service/app/config"
	"cajachica-service/app/port"
	"cajachica-service/app/rest/handlers"
	custommw "cajachica-service/app/rest/middleware"
	"cajachica-service/app/utils/validator"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger          *slog.Logger
	Resolver        port.SessionResolver
	Credentials     port.CredentialStore
	Cashbox         port.CashboxUsecase
	Catalog         *config.CategoryCatalog
	DBCheck         func(ctx context.Context) error
	KratosCheck     func(ctx context.Context) error
	EnableDebug     bool
	EnableRateLimit bool
}

// NewRouter creates and configures the Echo router
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.EnableDebug

	v := validator.New()

	// Create handlers
	authHandler := handlers.NewAuthHandler(cfg.Resolver, v, cfg.Logger)
	teamHandler := handlers.NewTeamHandler(cfg.Resolver, v, cfg.Logger)
	cashboxHandler := handlers.NewCashboxHandler(cfg.Cashbox, cfg.Catalog, v, cfg.Logger)
	healthHandler := handlers.NewHealthHandler(cfg.Logger, map[string]handlers.CheckFunc{
		"database": cfg.DBCheck,
		"kratos":   cfg.KratosCheck,
	})

	// Create middleware
	authMiddleware := custommw.NewAuthMiddleware(cfg.Credentials, cfg.Resolver, cfg.Logger)

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	if cfg.EnableRateLimit {
		rateLimiter := custommw.NewRateLimiter()
		e.Use(rateLimiter.RateLimit())
	}
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints (no auth required)
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Authentication endpoints
	auth := v1.Group("/auth")

	// Public auth endpoints
	auth.POST("/login/manager", authHandler.LoginManager)
	auth.POST("/login/employee", authHandler.LoginEmployee)
	auth.POST("/register/manager", authHandler.RegisterManager)
	auth.POST("/recover", authHandler.RecoverPassword(cfg.Credentials))
	auth.POST("/logout", authHandler.Logout(cfg.Credentials))

	// Protected auth endpoints
	authProtected := auth.Group("")
	authProtected.Use(authMiddleware.RequireAuth())
	authProtected.GET("/session", authHandler.Session)

	// Team management (manager only)
	team := v1.Group("/team")
	team.Use(authMiddleware.RequireAuth(), authMiddleware.RequireManager())
	team.POST("", teamHandler.Authorize)
	team.DELETE("/:email", teamHandler.Deauthorize)
	team.GET("", teamHandler.List)

	// Registries
	registries := v1.Group("/registries")
	registries.Use(authMiddleware.RequireAuth())
	registries.POST("", cashboxHandler.CreateRegistry, authMiddleware.RequireManager())
	registries.GET("", cashboxHandler.ListRegistries)
	registries.GET("/:id/balance", cashboxHandler.Balance)

	// Movements
	movements := v1.Group("/movements")
	movements.Use(authMiddleware.RequireAuth())
	movements.POST("", cashboxHandler.RecordMovement)
	movements.GET("", cashboxHandler.ListMovements)
	movements.DELETE("/:id", cashboxHandler.DeleteMovement, authMiddleware.RequireManager())

	// Category catalog (authenticated, role-agnostic)
	v1.GET("/categories", cashboxHandler.Categories, authMiddleware.RequireAuth())

	return e
}
