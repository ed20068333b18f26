package app

import (
	"github.com/guttosm/container-quote/config"
	"github.com/guttosm/container-quote/internal/domain/model"
	"github.com/guttosm/container-quote/internal/logger"
	"github.com/guttosm/container-quote/internal/service"
)

// ServiceComponents holds the services that need no storage.
type ServiceComponents struct {
	Calculator service.QuoteCalculator
	// AuthService is nil when authentication is disabled.
	AuthService service.AuthService
}

// InitializeServices initializes the quote calculator and seller authentication.
func InitializeServices(cfg config.Config) *ServiceComponents {
	var opts []service.Option
	if containers := containerCatalog(cfg.Pricing.Containers); len(containers) > 0 {
		opts = append(opts, service.WithContainers(containers))
	}

	components := &ServiceComponents{
		Calculator: service.NewQuoteCalculatorService(opts...),
	}

	if cfg.Auth.Enabled {
		components.AuthService = service.NewAuthService(cfg.Auth)
	} else {
		logger.For("auth").Warn().Msg("authentication disabled, every caller is treated as the seller")
	}

	return components
}

func containerCatalog(capacities map[string]float64) model.ContainerCatalog {
	if len(capacities) == 0 {
		return nil
	}
	catalog := make(model.ContainerCatalog, len(capacities))
	for name, capacity := range capacities {
		catalog[model.ContainerType(name)] = capacity
	}
	return catalog
}
