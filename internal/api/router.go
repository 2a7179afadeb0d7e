package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gaugeworks/gauge-registry/internal/api/handler"
	"github.com/gaugeworks/gauge-registry/internal/api/middleware"
	"github.com/gaugeworks/gauge-registry/internal/core/ports"
	"github.com/gaugeworks/gauge-registry/internal/core/service"
	"github.com/gaugeworks/gauge-registry/internal/infrastructure/config"
	mongodb "github.com/gaugeworks/gauge-registry/internal/infrastructure/db/mongo"
	redisdb "github.com/gaugeworks/gauge-registry/internal/infrastructure/db/redis"
	"github.com/gaugeworks/gauge-registry/internal/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the login throttle is then disabled and readiness skips the
// Redis probe.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := NewTemplateRenderer(cfg.Templates)
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("gauge_registry"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	gaugeRepo := mongodb.NewGaugeRepository(db)

	authService := service.NewAuthService(userRepo, log)
	userService := service.NewUserService(userRepo, log)
	gaugeService := service.NewGaugeService(gaugeRepo, userRepo, log)

	codec := token.NewCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	resolver := middleware.NewResolver(codec, userRepo, cfg.Auth.CookieName, log)

	var limiter ports.LoginLimiter
	if rdb != nil && cfg.Auth.MaxLoginAttempts > 0 {
		limiter = redisdb.NewLoginLimiter(rdb, cfg.Auth.MaxLoginAttempts, cfg.Auth.LoginWindow)
	}

	authHandler := handler.NewAuthHandler(authService, limiter, codec, handler.CookieSettings{
		Name:   cfg.Auth.CookieName,
		MaxAge: int(cfg.Auth.TokenTTL.Seconds()),
		Secure: cfg.Auth.CookieSecure,
	}, log)
	gaugeHandler := handler.NewGaugeHandler(gaugeService)
	userHandler := handler.NewUserHandler(userService, authService)

	// --- Auth routes ---
	e.GET("/login", authHandler.ShowLogin)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)

	// --- Gauge pages ---
	e.GET("/", gaugeHandler.Index, resolver.RequireUser())
	e.GET("/gauges/new", gaugeHandler.NewForm, resolver.RequireKip())
	e.POST("/gauges", gaugeHandler.Create, resolver.RequireKip())
	e.GET("/gauges/:id/edit", gaugeHandler.EditForm, resolver.RequireMaster())
	e.POST("/gauges/:id", gaugeHandler.Update, resolver.RequireMaster())
	e.GET("/gauges/:id/delete", gaugeHandler.DeleteForm, resolver.RequireMaster())
	e.POST("/gauges/:id/delete", gaugeHandler.Delete, resolver.RequireMaster())

	// --- User administration ---
	e.GET("/users", userHandler.List, resolver.RequireMaster())
	e.GET("/users/new", userHandler.NewForm, resolver.RequireMaster())
	e.POST("/users", userHandler.Create, resolver.RequireMaster())
	e.GET("/users/:id/edit", userHandler.EditForm, resolver.RequireMaster())
	e.POST("/users/:id", userHandler.Update, resolver.RequireMaster())

	// --- Operations endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
