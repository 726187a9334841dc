package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/sweetshop/sweetshop-api/docs"
	"github.com/sweetshop/sweetshop-api/internal/api/handler"
	"github.com/sweetshop/sweetshop-api/internal/api/middleware"
	"github.com/sweetshop/sweetshop-api/internal/core/service"
	"github.com/sweetshop/sweetshop-api/internal/infrastructure/config"
	mongodb "github.com/sweetshop/sweetshop-api/internal/infrastructure/db/mongo"
	redisdb "github.com/sweetshop/sweetshop-api/internal/infrastructure/db/redis"
)

const (
	tokenTTL = 7 * 24 * time.Hour

	// Auth endpoints allow this many requests per client IP per window.
	authRateLimit  = 10
	authRateWindow = time.Minute
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, log zerolog.Logger, db *mongo.Database, rdb *redis.Client) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Env == "development")

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("sweetshop"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	sweetRepo := mongodb.NewSweetRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, tokenTTL, log)
	sweetService := service.NewSweetService(sweetRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	sweetHandler := handler.NewSweetHandler(sweetService)

	authMW := middleware.Auth(cfg.JWTSecret, userRepo)
	adminMW := middleware.RequireAdmin()
	rateMW := middleware.RateLimit(redisdb.NewFixedWindowCounter(rdb), authRateLimit, authRateWindow, log)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register, rateMW)
	auth.POST("/login", authHandler.Login, rateMW)
	auth.GET("/profile", authHandler.Profile, authMW)
	auth.POST("/users", authHandler.CreateUser, authMW, adminMW)

	// --- Sweet routes (all authenticated) ---
	sweets := e.Group("/api/sweets", authMW)
	sweets.POST("", sweetHandler.Create)
	sweets.GET("", sweetHandler.List)
	sweets.GET("/search", sweetHandler.Search)
	sweets.GET("/:id", sweetHandler.Get)
	sweets.PUT("/:id", sweetHandler.Update)
	sweets.DELETE("/:id", sweetHandler.Delete, adminMW)
	sweets.POST("/:id/purchase", sweetHandler.Purchase)
	sweets.POST("/:id/restock", sweetHandler.Restock, adminMW)

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
