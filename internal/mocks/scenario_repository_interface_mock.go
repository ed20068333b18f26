// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/container-quote/internal/domain/model"
	"github.com/guttosm/container-quote/internal/repository"
)

type MockScenarioRepositoryInterface struct {
	mock.Mock
}

func (m *MockScenarioRepositoryInterface) Create(ctx context.Context, name string, snapshot model.Snapshot, createdBy string) (*repository.ScenarioDocument, error) {
	args := m.Called(ctx, name, snapshot, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ScenarioDocument), args.Error(1)
}

func (m *MockScenarioRepositoryInterface) Update(ctx context.Context, id primitive.ObjectID, name string, snapshot model.Snapshot, updatedBy string) (*repository.ScenarioDocument, error) {
	args := m.Called(ctx, id, name, snapshot, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ScenarioDocument), args.Error(1)
}

func (m *MockScenarioRepositoryInterface) Get(ctx context.Context, id primitive.ObjectID) (*repository.ScenarioDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ScenarioDocument), args.Error(1)
}

func (m *MockScenarioRepositoryInterface) List(ctx context.Context, limit int) ([]repository.ScenarioDocument, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ScenarioDocument), args.Error(1)
}

func (m *MockScenarioRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
