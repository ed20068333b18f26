package app

import (
	"github.com/guttosm/container-quote/config"
	"github.com/guttosm/container-quote/internal/domain/model"
	"github.com/guttosm/container-quote/internal/http"
	"github.com/guttosm/container-quote/internal/repository"
	"github.com/guttosm/container-quote/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter builds the storage-backed services and the router configuration.
func InitializeRouter(services *ServiceComponents, dbComponents *DatabaseComponents, cfg config.Config) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	var catalogRepo repository.CatalogRepositoryInterface
	var scenarioService service.ScenarioService
	if dbComponents != nil {
		catalogRepo = dbComponents.CatalogRepo
		scenarioService = service.NewScenarioService(dbComponents.ScenarioRepo, cfg.Pricing.ScenarioListLimit)

		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", dbComponents.DB)
		}
		if dbComponents.CatalogCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_catalogs", dbComponents.CatalogCircuitBreaker)
		}
		if dbComponents.ScenarioCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_scenarios", dbComponents.ScenarioCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:          cfg.Server.RateLimit,
		RateWindow:         cfg.Server.RateWindow,
		RequestTimeout:     cfg.Server.RequestTimeout,
		CORSOrigins:        cfg.Server.CORSOrigins,
		SwaggerUser:        cfg.Server.SwaggerUser,
		SwaggerPass:        cfg.Server.SwaggerPass,
		AuthService:        services.AuthService,
		CatalogService:     service.NewCatalogService(catalogRepo),
		ScenarioService:    scenarioService,
		Calculator:         services.Calculator,
		PersistenceEnabled: dbComponents != nil,
		DefaultContainer:   model.ContainerType(cfg.Pricing.DefaultContainer),
		CatalogCacheTTL:    cfg.Pricing.CatalogCacheTTL,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
