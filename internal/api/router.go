package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/userdesk/user-api/docs"
	"github.com/userdesk/user-api/internal/api/handler"
	"github.com/userdesk/user-api/internal/api/middleware"
	"github.com/userdesk/user-api/internal/core/domain"
	"github.com/userdesk/user-api/internal/core/ports"
	redisdb "github.com/userdesk/user-api/internal/infrastructure/db/redis"
)

const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
	tokenTTL        = 24 * time.Hour
)

// RouterDeps carries the collaborators the router wires into handlers. The
// user service and hasher are constructed by the caller so bootstrap can run
// through the same instances before the server accepts traffic.
type RouterDeps struct {
	UserService ports.UserService
	Hasher      ports.PasswordHasher
	Mongo       *mongo.Database
	Redis       *goredis.Client
	JWTSecret   string
	Logger      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("userapi"))

	// --- Handlers & guards ---
	userHandler := handler.NewUserHandler(deps.UserService)
	authHandler := handler.NewAuthHandler(deps.UserService, deps.Hasher, deps.JWTSecret, tokenTTL)
	authMiddleware := middleware.Auth(deps.JWTSecret)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	loginLimiter := redisdb.NewFixedWindowLimiter(deps.Redis, loginRateLimit, loginRateWindow)

	// --- Auth ---
	e.POST("/api/auth/login", authHandler.Login, middleware.RateLimit(loginLimiter, deps.Logger))

	// --- Current caller ---
	e.GET("/api/user", userHandler.Me, authMiddleware)

	// --- User management (mutations restricted to admins) ---
	users := e.Group("/api/users", authMiddleware)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.POST("", userHandler.Create, adminOnly)
	users.PUT("/:id", userHandler.Update, adminOnly)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
