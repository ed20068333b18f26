// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/container-quote/internal/domain/model"
	"github.com/guttosm/container-quote/internal/repository"
)

type MockCatalogRepositoryInterface struct {
	mock.Mock
}

func (m *MockCatalogRepositoryInterface) GetActive(ctx context.Context) (*repository.CatalogDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CatalogDocument), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) Save(ctx context.Context, products []model.Product, createdBy string) (*repository.CatalogDocument, error) {
	args := m.Called(ctx, products, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CatalogDocument), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) List(ctx context.Context, limit int) ([]repository.CatalogDocument, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CatalogDocument), args.Error(1)
}
