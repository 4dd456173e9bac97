package api

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/sellora/storefront-admin/internal/api/handler"
	"github.com/sellora/storefront-admin/internal/api/middleware"
	"github.com/sellora/storefront-admin/internal/core/ports"
	"github.com/sellora/storefront-admin/internal/core/service"
	"github.com/sellora/storefront-admin/internal/infrastructure/config"
	"github.com/sellora/storefront-admin/internal/infrastructure/db/sqlite"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb is nil when sessions are kept in memory.
func NewRouter(db *sql.DB, rdb *redis.Client, sessions ports.SessionStore, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("admin"))

	// --- Dependencies ---
	userRepo := sqlite.NewUserRepository(db)
	productRepo := sqlite.NewProductRepository(db)
	announcementRepo := sqlite.NewAnnouncementRepository(db)

	authService := service.NewAuthService(userRepo, log)
	sessionManager := service.NewSessionManager(sessions, userRepo, cfg.Session.TTL, log)
	catalogService := service.NewCatalogService(productRepo, log)
	announcementService := service.NewAnnouncementService(announcementRepo, log)
	userService := service.NewUserService(userRepo, log)

	secureCookie := !cfg.Development()
	authHandler := handler.NewAuthHandler(authService, sessionManager, secureCookie)
	productHandler := handler.NewProductHandler(catalogService)
	announcementHandler := handler.NewAnnouncementHandler(announcementService)
	userHandler := handler.NewUserHandler(userService)
	gate := middleware.RequireSession(sessionManager)

	// --- API routes ---
	apiGroup := e.Group("/api")

	apiGroup.POST("/login", authHandler.Login)
	apiGroup.POST("/logout", authHandler.Logout)
	apiGroup.GET("/user", authHandler.Me, gate)

	apiGroup.GET("/products", productHandler.List)
	apiGroup.POST("/products", productHandler.Create, gate)
	apiGroup.PATCH("/products/:id", productHandler.Update, gate)
	apiGroup.DELETE("/products/:id", productHandler.Delete, gate)

	apiGroup.GET("/announcements", announcementHandler.Active)
	apiGroup.POST("/announcements", announcementHandler.Publish, gate)

	apiGroup.GET("/users", userHandler.List, gate)
	apiGroup.DELETE("/users/:id", userHandler.Delete, gate)

	// Legacy endpoint the UI still polls; chat was never built out.
	apiGroup.GET("/chat-sessions", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []any{})
	})

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
