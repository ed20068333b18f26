// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/container-quote/internal/domain/model"
)

type MockScenarioService struct {
	mock.Mock
}

func (m *MockScenarioService) Save(ctx context.Context, name string, snapshot model.Snapshot, savedBy string) (*model.Scenario, error) {
	args := m.Called(ctx, name, snapshot, savedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Scenario), args.Error(1)
}

func (m *MockScenarioService) Update(ctx context.Context, id, name string, snapshot model.Snapshot, savedBy string) (*model.Scenario, error) {
	args := m.Called(ctx, id, name, snapshot, savedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Scenario), args.Error(1)
}

func (m *MockScenarioService) Get(ctx context.Context, id string) (*model.Scenario, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Scenario), args.Error(1)
}

func (m *MockScenarioService) List(ctx context.Context, limit int) ([]model.Scenario, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Scenario), args.Error(1)
}

func (m *MockScenarioService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
