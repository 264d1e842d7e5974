package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pharmatrack/inventory-system/internal/api/handler"
	"github.com/pharmatrack/inventory-system/internal/api/middleware"
	"github.com/pharmatrack/inventory-system/internal/core/domain"
	"github.com/pharmatrack/inventory-system/internal/core/service"
	"github.com/pharmatrack/inventory-system/internal/infrastructure/config"
	"github.com/pharmatrack/inventory-system/internal/infrastructure/db/postgres"
	redisdb "github.com/pharmatrack/inventory-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes
// registered. rdb may be nil; sales then run without idempotency
// protection.
func NewRouter(pool *pgxpool.Pool, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("pharmacy"))

	// --- Dependencies ---
	accountRepo := postgres.NewAccountRepository(pool)
	drugRepo := postgres.NewDrugRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)

	var dedup service.SaleDedup
	if rdb != nil {
		dedup = redisdb.NewSaleDedup(rdb)
	}

	activityService := service.NewActivityService(activityRepo, log, 50)
	authService := service.NewAuthService(accountRepo, activityService, cfg.JWTSecret, cfg.TokenTTL, cfg.BcryptCost)
	inventoryService := service.NewInventoryService(drugRepo, activityService, dedup, log)

	authHandler := handler.NewAuthHandler(authService)
	drugHandler := handler.NewDrugHandler(inventoryService)
	activityHandler := handler.NewActivityHandler(activityService)

	authRequired := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	anyRole := middleware.RBAC(domain.RoleAdmin, domain.RoleCashier)

	// --- API routes ---
	apiGroup := e.Group("/api")

	apiGroup.POST("/auth/login", authHandler.Login)
	apiGroup.POST("/auth/register", authHandler.Register, authRequired, adminOnly)

	drugs := apiGroup.Group("/drugs", authRequired)
	drugs.GET("", drugHandler.List)
	drugs.POST("", drugHandler.Create, adminOnly)
	drugs.PUT("/sell/:id", drugHandler.Sell, anyRole)
	drugs.PUT("/:id", drugHandler.Update, adminOnly)
	drugs.DELETE("/:id", drugHandler.Delete, adminOnly)

	admin := apiGroup.Group("/admin", authRequired, adminOnly)
	admin.GET("/logs", activityHandler.Logs)
	admin.GET("/audit-report", activityHandler.Report)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
