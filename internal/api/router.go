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

	_ "github.com/soufianez0uhair/shopsmart-api/docs"
	"github.com/soufianez0uhair/shopsmart-api/internal/api/handler"
	"github.com/soufianez0uhair/shopsmart-api/internal/api/middleware"
	"github.com/soufianez0uhair/shopsmart-api/internal/core/domain"
	"github.com/soufianez0uhair/shopsmart-api/internal/core/service"
	mongodb "github.com/soufianez0uhair/shopsmart-api/internal/infrastructure/db/mongo"
	redisdb "github.com/soufianez0uhair/shopsmart-api/internal/infrastructure/db/redis"
	"github.com/soufianez0uhair/shopsmart-api/internal/infrastructure/http/handlers"
	"github.com/soufianez0uhair/shopsmart-api/internal/infrastructure/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("shopsmart"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := redisdb.NewRoleCache(rdb, mongodb.NewRoleRepository(db))
	issuer := token.NewJWTIssuer(jwtSecret, tokenTTL)
	userService := service.NewUserService(userRepo, roleRepo, issuer, log)
	userHandler := handler.NewUserHandler(userService)

	// --- User routes ---
	users := e.Group("/api/v1/users")
	users.POST("/register", userHandler.Register)
	users.POST("/login", userHandler.Login)
	users.GET("/me", userHandler.Me, middleware.Auth(jwtSecret), middleware.RBAC(domain.RoleCustomer))

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
