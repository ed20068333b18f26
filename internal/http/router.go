package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/container-quote/internal/domain/model"
	"github.com/guttosm/container-quote/internal/metrics"
	"github.com/guttosm/container-quote/internal/middleware"
	"github.com/guttosm/container-quote/internal/service"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string

	// AuthService enables seller tokens. When nil every caller is treated as
	// the local seller.
	AuthService     service.AuthService
	CatalogService  service.CatalogService
	ScenarioService service.ScenarioService
	Calculator      service.QuoteCalculator

	// PersistenceEnabled exposes catalog writes and the scenario routes.
	PersistenceEnabled bool
	DefaultContainer   model.ContainerType
	CatalogCacheTTL    time.Duration
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:        100,
		RateWindow:       time.Minute,
		RequestTimeout:   10 * time.Second,
		Calculator:       service.NewQuoteCalculatorService(),
		DefaultContainer: model.ContainerFortyHighCube,
	}
}

// NewRouter creates and configures the Gin router for the quote service.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	if cfg.Calculator == nil {
		cfg.Calculator = service.NewQuoteCalculatorService()
	}

	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	api.Use(middleware.TimeoutWithDuration(cfg.RequestTimeout))

	sellerAuth, optionalAuth := authMiddleware(&cfg)
	protected := api.Group("", sellerAuth)
	if cfg.RateLimit > 0 {
		userLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		protected.Use(userLimiter.UserRateLimit())
	}

	for _, group := range routeGroups(&cfg, optionalAuth) {
		group.RegisterPublicRoutes(api)
		group.RegisterProtectedRoutes(protected)
	}

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "Authorization", "Accept", "Cache-Control", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "Location"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
	)

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// authMiddleware returns the middleware guarding seller routes and the one
// identifying optional sellers on the quote route.
func authMiddleware(cfg *RouterConfig) (sellerAuth, optionalAuth gin.HandlerFunc) {
	if cfg.AuthService == nil {
		local := middleware.LocalSeller()
		return local, local
	}
	return middleware.SellerAuth(cfg.AuthService), middleware.OptionalSellerAuth(cfg.AuthService)
}

// routeGroups builds the API areas enabled by cfg.
func routeGroups(cfg *RouterConfig, optionalAuth gin.HandlerFunc) []RouteGroup {
	quotes := NewQuoteHandler(cfg.Calculator, cfg.CatalogService,
		WithCatalogCacheTTL(cfg.CatalogCacheTTL),
		WithDefaultContainer(cfg.DefaultContainer),
	)

	groups := []RouteGroup{
		NewQuoteRoutes(quotes, optionalAuth),
		NewCatalogRoutes(NewCatalogHandler(cfg.CatalogService, quotes), cfg.PersistenceEnabled && cfg.CatalogService != nil),
	}
	if cfg.AuthService != nil {
		groups = append(groups, NewAuthRoutes(cfg.AuthService))
	}
	if cfg.PersistenceEnabled && cfg.ScenarioService != nil {
		groups = append(groups, NewScenarioRoutes(NewScenarioHandler(cfg.ScenarioService, cfg.Calculator)))
	}
	return groups
}
