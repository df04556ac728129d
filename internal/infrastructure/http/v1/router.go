// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"simorgh/internal/domain/auth"
	"simorgh/internal/domain/company"
	"simorgh/internal/domain/holding"
	"simorgh/internal/domain/orgchart"
	"simorgh/internal/domain/training"
	"simorgh/internal/infrastructure/http/v1/handlers"
	"simorgh/internal/infrastructure/http/v1/middleware"
	"simorgh/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Store owns the document every endpoint reads and edits
	Store *holding.Store

	// AuthService checks admin credentials for POST /api/login
	AuthService *auth.Service

	// Logger for request logging
	Logger *logger.Logger

	// StorageDriver is reported by /health/info
	StorageDriver string

	// StaticDir, when set, holds the built front-end served for non-API paths
	StaticDir string

	// MaxBodyBytes caps request bodies; zero disables the cap
	MaxBodyBytes int64

	// Release switches gin to release mode
	Release bool
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Release {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	healthHandler := handlers.NewHealthHandler(cfg.Store, cfg.StorageDriver)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	api := router.Group("/api")
	{
		base := handlers.NewBaseHandler()
		registerDataRoutes(api, base, cfg)
		registerAuthRoutes(api, base, cfg)

		admin := api.Group("/admin")
		admin.Use(middleware.Admin())

		registerHoldingRoutes(admin, base, cfg)
		registerCompanyRoutes(api, admin, base, cfg)
		registerTrainingRoutes(api, admin, base, cfg)
	}

	if cfg.StaticDir != "" {
		serveStatic(router, cfg.StaticDir)
	}

	return router
}

// registerDataRoutes registers the whole-document endpoints used by the site and the
// single-page admin panel.
func registerDataRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	h := handlers.NewDataHandler(base, cfg.Store)
	rg.GET("/data", h.Get)
	rg.POST("/data", h.Replace)
	rg.PUT("/data", h.Replace)
	rg.GET("/icons", h.Icons)
}

// registerAuthRoutes registers the login check.
func registerAuthRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	if cfg.AuthService == nil {
		return
	}
	h := handlers.NewAuthHandler(base, cfg.AuthService)
	rg.POST("/login", h.Login)
}

// registerHoldingRoutes registers holding settings endpoints.
func registerHoldingRoutes(admin *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	h := handlers.NewHoldingHandler(base, cfg.Store)
	admin.GET("/holding", h.Get)
	admin.PUT("/holding", h.Update)
}

// registerCompanyRoutes registers subsidiary endpoints and the chart endpoints of the
// holding and of every subsidiary.
func registerCompanyRoutes(public, admin *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	companies := handlers.NewCompanyHandler(base, company.NewService(cfg.Store))
	charts := handlers.NewOrgChartHandler(base, orgchart.NewService(cfg.Store))

	public.GET("/companies", companies.List)
	public.GET("/companies/:slug", companies.Get)
	public.GET("/orgchart", charts.Get)
	public.GET("/companies/:slug/orgchart", charts.Get)

	RegisterAdminRoutes(admin.Group("/companies"), companies, "/:slug")
	RegisterChartRoutes(admin.Group("/orgchart"), charts)
	RegisterChartRoutes(admin.Group("/companies/:slug/orgchart"), charts)
}

// registerTrainingRoutes registers training module endpoints.
func registerTrainingRoutes(public, admin *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	h := handlers.NewTrainingHandler(base, training.NewService(cfg.Store))

	public.GET("/training", h.Public)

	group := admin.Group("/training")
	RegisterAdminRoutes(group, h, "/:id")
	group.GET("", h.List)
	group.GET("/:id", h.Get)
}
