package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/container-quote/config"
	"github.com/guttosm/container-quote/internal/circuitbreaker"
	"github.com/guttosm/container-quote/internal/repository"
)

// DatabaseComponents holds the MongoDB connection and the breaker-guarded repositories.
type DatabaseComponents struct {
	DB                     *repository.MongoDB
	CatalogRepo            repository.CatalogRepositoryInterface
	ScenarioRepo           repository.ScenarioRepositoryInterface
	CatalogCircuitBreaker  *circuitbreaker.CircuitBreaker
	ScenarioCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the repositories.
// Returns nil if the database is disabled or the connection fails; the
// service then quotes against the default catalog without scenarios.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without persistence")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	catalogCB := circuitbreaker.New(breakerConfig(cfg, "mongodb-catalogs"))
	scenarioCB := circuitbreaker.New(breakerConfig(cfg, "mongodb-scenarios"))

	return &DatabaseComponents{
		DB:                     db,
		CatalogRepo:            repository.NewCatalogRepositoryWithCircuitBreaker(repository.NewCatalogRepository(db), catalogCB),
		ScenarioRepo:           repository.NewScenarioRepositoryWithCircuitBreaker(repository.NewScenarioRepository(db), scenarioCB),
		CatalogCircuitBreaker:  catalogCB,
		ScenarioCircuitBreaker: scenarioCB,
	}
}

// breakerConfig builds a repository breaker. Scenario lookups that miss do
// not count as store failures.
func breakerConfig(cfg config.DatabaseConfig, name string) circuitbreaker.Config {
	defaults := circuitbreaker.DefaultConfig()
	c := circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		IsFailure:        repository.IsStoreFailure,
	}
	if c.FailureThreshold <= 0 {
		c.FailureThreshold = defaults.FailureThreshold
	}
	if c.SuccessThreshold <= 0 {
		c.SuccessThreshold = defaults.SuccessThreshold
	}
	if c.Timeout <= 0 {
		c.Timeout = defaults.Timeout
	}
	return c
}

// Close disconnects from MongoDB. It is safe on a nil receiver.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}
