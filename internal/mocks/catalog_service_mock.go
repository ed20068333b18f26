// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/container-quote/internal/domain/model"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Load(ctx context.Context) (model.CatalogVersion, string, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.CatalogVersion), args.String(1), args.Error(2)
}

func (m *MockCatalogService) Save(ctx context.Context, products []model.Product, savedBy string) (model.CatalogVersion, error) {
	args := m.Called(ctx, products, savedBy)
	return args.Get(0).(model.CatalogVersion), args.Error(1)
}

func (m *MockCatalogService) History(ctx context.Context, limit int) ([]model.CatalogVersion, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CatalogVersion), args.Error(1)
}
