//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/container-quote/config"
	"github.com/guttosm/container-quote/internal/circuitbreaker"
	"github.com/guttosm/container-quote/internal/domain/model"
	"github.com/guttosm/container-quote/internal/mocks"
)

func TestInitializeRouter(t *testing.T) {
	baseCfg := config.Config{
		Server: config.ServerConfig{
			RateLimit:      50,
			RateWindow:     30 * time.Second,
			RequestTimeout: 5 * time.Second,
		},
		Pricing: config.PricingConfig{
			DefaultContainer:  "20ft",
			CatalogCacheTTL:   time.Minute,
			ScenarioListLimit: 20,
		},
	}

	tests := []struct {
		name         string
		services     *ServiceComponents
		dbComponents *DatabaseComponents
		validate     func(*testing.T, *RouterComponents)
	}{
		{
			name:     "without database",
			services: InitializeServices(config.Config{}),
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components.HealthHandler)
				assert.False(t, components.Config.PersistenceEnabled)
				assert.NotNil(t, components.Config.CatalogService)
				assert.Nil(t, components.Config.ScenarioService)
				assert.Nil(t, components.Config.AuthService)
				assert.Equal(t, 50, components.Config.RateLimit)
				assert.Equal(t, 5*time.Second, components.Config.RequestTimeout)
				assert.Equal(t, model.ContainerTwentyFoot, components.Config.DefaultContainer)
				assert.Equal(t, time.Minute, components.Config.CatalogCacheTTL)
			},
		},
		{
			name:     "with database components",
			services: InitializeServices(config.Config{}),
			dbComponents: &DatabaseComponents{
				CatalogRepo:            new(mocks.MockCatalogRepositoryInterface),
				ScenarioRepo:           new(mocks.MockScenarioRepositoryInterface),
				CatalogCircuitBreaker:  circuitbreaker.New(circuitbreaker.DefaultConfig()),
				ScenarioCircuitBreaker: circuitbreaker.New(circuitbreaker.DefaultConfig()),
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.True(t, components.Config.PersistenceEnabled)
				assert.NotNil(t, components.Config.ScenarioService)
			},
		},
		{
			name: "with auth service",
			services: InitializeServices(config.Config{
				Auth: config.AuthConfig{Enabled: true, SellerUsername: "seller", JWTSecretKey: "test-secret"},
			}),
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components.Config.AuthService)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, InitializeRouter(tt.services, tt.dbComponents, baseCfg))
		})
	}
}
