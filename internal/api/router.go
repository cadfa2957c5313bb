package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/careerhub/job-board-api/internal/api/handler"
	"github.com/careerhub/job-board-api/internal/api/middleware"
	"github.com/careerhub/job-board-api/internal/core/domain"
	"github.com/careerhub/job-board-api/internal/core/service"
	mongodb "github.com/careerhub/job-board-api/internal/infrastructure/db/mongo"
	redisdb "github.com/careerhub/job-board-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("jobboard"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	jobRepo := mongodb.NewJobRepository(db)
	appRepo := mongodb.NewApplicationRepository(db)
	views := redisdb.NewViewCounter(rdb)

	authService := service.NewAuthService(userRepo, jwtSecret, 0, log)
	jobService := service.NewJobService(jobRepo, views, log)
	appService := service.NewApplicationService(appRepo, jobRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService)
	appHandler := handler.NewApplicationHandler(appService)

	auth := middleware.Auth(jwtSecret)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Job routes (reads public, mutations admin-gated) ---
	e.GET("/jobs", jobHandler.List)
	e.GET("/jobs/:id", jobHandler.Get)
	e.POST("/jobs", jobHandler.Create, auth, adminOnly)
	e.PUT("/jobs/:id", jobHandler.Update, auth, adminOnly)
	e.DELETE("/jobs/:id", jobHandler.Delete, auth, adminOnly)

	// --- Application routes (token required) ---
	e.GET("/applications", appHandler.List, auth)
	e.POST("/applications", appHandler.Apply, auth)
	e.PATCH("/applications/:id/status", appHandler.UpdateStatus, auth, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
