package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/userhub/identity-api/internal/api/handler"
	"github.com/userhub/identity-api/internal/api/middleware"
	"github.com/userhub/identity-api/internal/core/ports"
	"github.com/userhub/identity-api/internal/core/service"
	"github.com/userhub/identity-api/internal/infrastructure/config"
	redisdb "github.com/userhub/identity-api/internal/infrastructure/db/redis"
	"github.com/userhub/identity-api/internal/infrastructure/db/sqlite"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the login throttle is then disabled and the readiness
// probe reports the database only.
func NewRouter(db *sql.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Development())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("identity"))

	// --- Dependencies ---
	repo := sqlite.NewUserRepository(db)

	var limiter ports.LoginLimiter
	if rdb != nil {
		limiter = redisdb.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.AttemptWindow)
	}

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(repo, tokens, limiter, log)
	userService := service.NewUserService(repo)

	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	authenticate := middleware.Auth(tokens)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/me", authHandler.Me, authenticate)

	// --- User management ---
	users := e.Group("/users", authenticate)
	users.GET("", userHandler.List, middleware.RBAC("admin"))
	users.GET("/:id", userHandler.GetByID) // self-or-admin, enforced in handler
	users.PATCH("/:id", userHandler.Update, middleware.RBAC("admin"))
	users.DELETE("/:id", userHandler.Delete, middleware.RBAC("admin"))

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
