// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/container-quote/internal/circuitbreaker"
	"github.com/guttosm/container-quote/internal/domain/model"
)

// IsStoreFailure reports whether err signals an unhealthy store rather than
// an expected lookup miss. It is the IsFailure policy for repository breakers.
func IsStoreFailure(err error) bool {
	return !errors.Is(err, ErrScenarioNotFound) && !errors.Is(err, context.Canceled)
}

// CatalogRepositoryWithCircuitBreaker wraps CatalogRepository with circuit breaker protection.
type CatalogRepositoryWithCircuitBreaker struct {
	repo           CatalogRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCatalogRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewCatalogRepositoryWithCircuitBreaker(repo CatalogRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *CatalogRepositoryWithCircuitBreaker {
	return &CatalogRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active catalog. While the circuit is open it reports
// no saved catalog so callers fall back to the default one.
func (r *CatalogRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*CatalogDocument, error) {
	var result *CatalogDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx)
		return cbErr
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil, nil
	}
	return result, err
}

// Save stores a new catalog revision with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) Save(ctx context.Context, products []model.Product, createdBy string) (*CatalogDocument, error) {
	var result *CatalogDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Save(ctx, products, createdBy)
		return cbErr
	})
	return result, err
}

// List returns catalog revisions with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]CatalogDocument, error) {
	var result []CatalogDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CatalogRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// ScenarioRepositoryWithCircuitBreaker wraps ScenarioRepository with circuit breaker protection.
type ScenarioRepositoryWithCircuitBreaker struct {
	repo           ScenarioRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewScenarioRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewScenarioRepositoryWithCircuitBreaker(repo ScenarioRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *ScenarioRepositoryWithCircuitBreaker {
	return &ScenarioRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a new scenario with circuit breaker protection.
func (r *ScenarioRepositoryWithCircuitBreaker) Create(ctx context.Context, name string, snapshot model.Snapshot, createdBy string) (*ScenarioDocument, error) {
	var result *ScenarioDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, name, snapshot, createdBy)
		return cbErr
	})
	return result, err
}

// Update overwrites a scenario with circuit breaker protection.
func (r *ScenarioRepositoryWithCircuitBreaker) Update(ctx context.Context, id primitive.ObjectID, name string, snapshot model.Snapshot, updatedBy string) (*ScenarioDocument, error) {
	var result *ScenarioDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Update(ctx, id, name, snapshot, updatedBy)
		return cbErr
	})
	return result, err
}

// Get returns a scenario with circuit breaker protection.
func (r *ScenarioRepositoryWithCircuitBreaker) Get(ctx context.Context, id primitive.ObjectID) (*ScenarioDocument, error) {
	var result *ScenarioDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Get(ctx, id)
		return cbErr
	})
	return result, err
}

// List returns scenarios with circuit breaker protection.
func (r *ScenarioRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]ScenarioDocument, error) {
	var result []ScenarioDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// Delete removes a scenario with circuit breaker protection.
func (r *ScenarioRepositoryWithCircuitBreaker) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, id)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ScenarioRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
