package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup registers the routes of one API area. Public routes are open to
// anonymous callers; protected routes sit behind seller authentication.
type RouteGroup interface {
	RegisterPublicRoutes(public *gin.RouterGroup)
	RegisterProtectedRoutes(protected *gin.RouterGroup)
}

// QuoteRoutes registers the quote endpoints.
type QuoteRoutes struct {
	handler      *QuoteHandler
	optionalAuth gin.HandlerFunc
}

// NewQuoteRoutes creates QuoteRoutes. optionalAuth resolves the caller of
// POST /quotes so sellers receive the seller view.
func NewQuoteRoutes(handler *QuoteHandler, optionalAuth gin.HandlerFunc) *QuoteRoutes {
	return &QuoteRoutes{handler: handler, optionalAuth: optionalAuth}
}

func (r *QuoteRoutes) RegisterPublicRoutes(public *gin.RouterGroup) {
	public.GET("/containers", r.handler.Containers)
	public.POST("/quotes", r.optionalAuth, r.handler.Quote)
	public.POST("/quotes/allocation-mode", r.handler.SwitchAllocationMode)
}

func (r *QuoteRoutes) RegisterProtectedRoutes(*gin.RouterGroup) {}

// CatalogRoutes registers the catalog endpoints. Writes are only exposed
// when the catalog can be persisted.
type CatalogRoutes struct {
	handler  *CatalogHandler
	writable bool
}

// NewCatalogRoutes creates CatalogRoutes.
func NewCatalogRoutes(handler *CatalogHandler, writable bool) *CatalogRoutes {
	return &CatalogRoutes{handler: handler, writable: writable}
}

func (r *CatalogRoutes) RegisterPublicRoutes(public *gin.RouterGroup) {
	public.GET("/catalog", r.handler.GetCatalog)
}

func (r *CatalogRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	if !r.writable {
		return
	}
	protected.PUT("/catalog", r.handler.UpdateCatalog)
	protected.GET("/catalog/history", r.handler.ListCatalogHistory)
}

// ScenarioRoutes registers the scenario endpoints, all of them seller only.
type ScenarioRoutes struct {
	handler *ScenarioHandler
}

// NewScenarioRoutes creates ScenarioRoutes.
func NewScenarioRoutes(handler *ScenarioHandler) *ScenarioRoutes {
	return &ScenarioRoutes{handler: handler}
}

func (r *ScenarioRoutes) RegisterPublicRoutes(*gin.RouterGroup) {}

func (r *ScenarioRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	scenarios := protected.Group("/scenarios")
	{
		scenarios.GET("", r.handler.ListScenarios)
		scenarios.POST("", r.handler.CreateScenario)
		scenarios.GET("/:id", r.handler.GetScenario)
		scenarios.PUT("/:id", r.handler.UpdateScenario)
		scenarios.DELETE("/:id", r.handler.DeleteScenario)
		scenarios.POST("/:id/quote", r.handler.QuoteScenario)
	}
}
