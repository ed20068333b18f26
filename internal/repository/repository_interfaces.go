// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/container-quote/internal/domain/model"
)

// CatalogRepositoryInterface defines the interface for catalog repository operations.
type CatalogRepositoryInterface interface {
	GetActive(ctx context.Context) (*CatalogDocument, error)
	Save(ctx context.Context, products []model.Product, createdBy string) (*CatalogDocument, error)
	List(ctx context.Context, limit int) ([]CatalogDocument, error)
}

// ScenarioRepositoryInterface defines the interface for scenario repository operations.
type ScenarioRepositoryInterface interface {
	Create(ctx context.Context, name string, snapshot model.Snapshot, createdBy string) (*ScenarioDocument, error)
	Update(ctx context.Context, id primitive.ObjectID, name string, snapshot model.Snapshot, updatedBy string) (*ScenarioDocument, error)
	Get(ctx context.Context, id primitive.ObjectID) (*ScenarioDocument, error)
	List(ctx context.Context, limit int) ([]ScenarioDocument, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
