package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shrigondanews/news-api/internal/api/handler"
	"github.com/shrigondanews/news-api/internal/api/middleware"
	"github.com/shrigondanews/news-api/internal/core/domain"
	"github.com/shrigondanews/news-api/internal/core/service"
	"github.com/shrigondanews/news-api/internal/infrastructure/config"
	mongodb "github.com/shrigondanews/news-api/internal/infrastructure/db/mongo"
	redisdb "github.com/shrigondanews/news-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Routes are registered in a fixed order; literal routes are matched before
// the parameterized /news/:id by Echo's router.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("news"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	articleRepo := mongodb.NewArticleRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)

	tokens := service.NewTokenService(cfg.JWTSecret, 0, log)
	authService := service.NewAuthService(userRepo, tokens, service.AdminSeed{
		Username: cfg.Admin.Username,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	}, log)
	notificationService := service.NewNotificationService(notificationRepo, redisdb.NewNotificationDedup(rdb), log)
	articleService := service.NewArticleService(articleRepo, notificationService, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	articleHandler := handler.NewArticleHandler(articleService)
	categoryHandler := handler.NewCategoryHandler()
	notificationHandler := handler.NewNotificationHandler(notificationService)

	requireAuth := middleware.Auth(tokens)
	requireEditor := middleware.RequireRole(domain.RoleEditor)
	requireAdmin := middleware.RequireRole(domain.RoleAdmin)

	// Seed the default admin before the first request is routed.
	e.Use(middleware.Bootstrap(authService, log))

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Shrigonda News API"})
	})
	e.GET("/news", articleHandler.List)
	e.GET("/news/:id", articleHandler.Get)
	e.GET("/categories", categoryHandler.List)
	e.GET("/notifications", notificationHandler.List)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/verify", authHandler.Verify, requireAuth)

	// --- Protected routes ---
	e.POST("/users", userHandler.Create, requireAuth, requireAdmin)
	e.POST("/news", articleHandler.Create, requireAuth, requireEditor)
	e.PUT("/news/:id", articleHandler.Update, requireAuth, requireEditor)
	e.DELETE("/news/:id", articleHandler.Delete, requireAuth, requireAdmin)
	e.GET("/admin/articles", articleHandler.ListAll, requireAuth, requireEditor)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
