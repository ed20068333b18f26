//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/guttosm/container-quote/internal/circuitbreaker"
	"github.com/guttosm/container-quote/internal/domain/model"
)

func sampleProducts() []model.Product {
	return []model.Product{
		{ID: "mug", Name: "Ceramic mug", MasterCartonCBM: 0.11, UnitsPerCarton: 6, FactoryPriceUSD: 5.51, ProfitMargin: 40, Allocation: model.MixAllocation(70), Active: true},
		{ID: "vase", Name: "Glass vase", MasterCartonCBM: 0.31, UnitsPerCarton: 4, FactoryPriceUSD: 17.2, ProfitMargin: 35, Allocation: model.QuantityAllocation(400), Active: false},
	}
}

func TestCatalogRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewCatalogRepository(db)

	t.Run("get active when none exists", func(t *testing.T) {
		active, err := repo.GetActive(ctx)
		assert.NoError(t, err)
		assert.Nil(t, active)
	})

	t.Run("save first revision", func(t *testing.T) {
		doc, err := repo.Save(ctx, sampleProducts(), "seller")
		require.NoError(t, err)
		assert.True(t, doc.Active)
		assert.Equal(t, 1, doc.Version)
		assert.Equal(t, "seller", doc.CreatedBy)
		assert.False(t, doc.ID.IsZero())
	})

	t.Run("round trip preserves products", func(t *testing.T) {
		active, err := repo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)

		assert.Equal(t, sampleProducts(), active.ToModel().Products)
	})

	t.Run("new revision retires the old one", func(t *testing.T) {
		previous, err := repo.GetActive(ctx)
		require.NoError(t, err)

		updated := sampleProducts()[:1]
		doc, err := repo.Save(ctx, updated, "seller-2")
		require.NoError(t, err)
		assert.Equal(t, 2, doc.Version)

		active, err := repo.GetActive(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, previous.ID, active.ID)
		assert.Len(t, active.Products, 1)

		count, err := db.Catalogs.CountDocuments(ctx, bson.M{"active": true})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("list newest first", func(t *testing.T) {
		docs, err := repo.List(ctx, 10)
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, 2, docs[0].Version)
		assert.Equal(t, 1, docs[1].Version)

		limited, err := repo.List(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, limited, 1)
	})
}

func TestCatalogRepository_LegacyDocument_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	_, err := db.Catalogs.InsertOne(ctx, bson.M{
		"active":  true,
		"version": 1,
		"products": bson.A{
			bson.M{"product_id": "old-mix", "name": "Old", "master_carton_cbm": 0.2, "units_per_carton": 10, "factory_price_usd": 3.0, "profit_margin": 30.0, "mix_percent": 55.0},
			bson.M{"product_id": "old-qty", "name": "Older", "master_carton_cbm": 0.2, "units_per_carton": 10, "factory_price_usd": 3.0, "profit_margin": 30.0, "mix_percent": 10.0, "quantity": 250},
		},
	})
	require.NoError(t, err)

	active, err := NewCatalogRepository(db).GetActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)

	products := active.ToModel().Products
	require.Len(t, products, 2)
	assert.True(t, products[0].Active, "missing active flag defaults to true")
	assert.Equal(t, model.MixAllocation(55), products[0].Allocation)
	assert.Equal(t, model.QuantityAllocation(250), products[1].Allocation)
}

func TestCatalogRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "catalog-integration",
		IsFailure:        IsStoreFailure,
	})
	repo := NewCatalogRepositoryWithCircuitBreaker(NewCatalogRepository(db), cb)

	_, err := repo.Save(ctx, sampleProducts(), "seller")
	require.NoError(t, err)

	require.NoError(t, db.Close(ctx))

	_, err = repo.Save(ctx, sampleProducts(), "seller")
	require.Error(t, err)
	assert.True(t, cb.IsOpen())

	active, err := repo.GetActive(ctx)
	assert.NoError(t, err, "open circuit falls back to no catalog")
	assert.Nil(t, active)
}
