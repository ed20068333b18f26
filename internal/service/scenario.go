package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/container-quote/internal/domain/dto"
	"github.com/guttosm/container-quote/internal/domain/model"
	"github.com/guttosm/container-quote/internal/logger"
	"github.com/guttosm/container-quote/internal/metrics"
	"github.com/guttosm/container-quote/internal/repository"
)

// ErrScenarioNotFound is returned when no scenario matches the given id.
var ErrScenarioNotFound = repository.ErrScenarioNotFound

// ScenarioService persists named snapshots of a container, catalog and pricing inputs.
type ScenarioService interface {
	// Save stores a new scenario. A blank name is rejected before anything is written.
	Save(ctx context.Context, name string, snapshot model.Snapshot, savedBy string) (*model.Scenario, error)
	// Update overwrites an existing scenario.
	Update(ctx context.Context, id, name string, snapshot model.Snapshot, savedBy string) (*model.Scenario, error)
	Get(ctx context.Context, id string) (*model.Scenario, error)
	// List returns scenarios, most recently updated first.
	List(ctx context.Context, limit int) ([]model.Scenario, error)
	Delete(ctx context.Context, id string) error
}

// ScenarioServiceImpl implements ScenarioService.
type ScenarioServiceImpl struct {
	scenarioRepo repository.ScenarioRepositoryInterface
	maxList      int
}

// NewScenarioService creates a new scenario service. maxList caps List; zero means 100.
func NewScenarioService(scenarioRepo repository.ScenarioRepositoryInterface, maxList int) ScenarioService {
	if maxList <= 0 {
		maxList = 100
	}
	return &ScenarioServiceImpl{
		scenarioRepo: scenarioRepo,
		maxList:      maxList,
	}
}

func (s *ScenarioServiceImpl) Save(ctx context.Context, name string, snapshot model.Snapshot, savedBy string) (*model.Scenario, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		metrics.RecordScenarioOperation("save", "invalid")
		return nil, dto.ErrBlankScenarioName
	}
	if s.scenarioRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	doc, err := s.scenarioRepo.Create(ctx, name, normalizeSnapshot(snapshot), savedBy)
	if err != nil {
		metrics.RecordScenarioOperation("save", "error")
		logger.For("scenario").Error().Err(err).Str("name", name).Msg("failed to save scenario")
		return nil, fmt.Errorf("save scenario: %w", err)
	}

	metrics.RecordScenarioOperation("save", "success")
	scenario := doc.ToModel()
	return &scenario, nil
}

func (s *ScenarioServiceImpl) Update(ctx context.Context, id, name string, snapshot model.Snapshot, savedBy string) (*model.Scenario, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		metrics.RecordScenarioOperation("update", "invalid")
		return nil, dto.ErrBlankScenarioName
	}
	if s.scenarioRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	oid, err := parseScenarioID(id)
	if err != nil {
		metrics.RecordScenarioOperation("update", "not_found")
		return nil, err
	}

	doc, err := s.scenarioRepo.Update(ctx, oid, name, normalizeSnapshot(snapshot), savedBy)
	if err != nil {
		return nil, s.fail("update", id, err)
	}

	metrics.RecordScenarioOperation("update", "success")
	scenario := doc.ToModel()
	return &scenario, nil
}

func (s *ScenarioServiceImpl) Get(ctx context.Context, id string) (*model.Scenario, error) {
	if s.scenarioRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	oid, err := parseScenarioID(id)
	if err != nil {
		return nil, err
	}

	doc, err := s.scenarioRepo.Get(ctx, oid)
	if err != nil {
		return nil, s.fail("get", id, err)
	}

	scenario := doc.ToModel()
	return &scenario, nil
}

func (s *ScenarioServiceImpl) List(ctx context.Context, limit int) ([]model.Scenario, error) {
	if s.scenarioRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if limit <= 0 || limit > s.maxList {
		limit = s.maxList
	}

	docs, err := s.scenarioRepo.List(ctx, limit)
	if err != nil {
		return nil, s.fail("list", "", err)
	}

	scenarios := make([]model.Scenario, len(docs))
	for i, d := range docs {
		scenarios[i] = d.ToModel()
	}
	return scenarios, nil
}

// Delete removes a scenario. Unknown ids report ErrScenarioNotFound.
func (s *ScenarioServiceImpl) Delete(ctx context.Context, id string) error {
	if s.scenarioRepo == nil {
		return ErrRepositoryNotConfigured
	}
	oid, err := parseScenarioID(id)
	if err != nil {
		metrics.RecordScenarioOperation("delete", "not_found")
		return err
	}

	if err := s.scenarioRepo.Delete(ctx, oid); err != nil {
		return s.fail("delete", id, err)
	}

	metrics.RecordScenarioOperation("delete", "success")
	return nil
}

func (s *ScenarioServiceImpl) fail(operation, id string, err error) error {
	if errors.Is(err, ErrScenarioNotFound) {
		metrics.RecordScenarioOperation(operation, "not_found")
		return err
	}
	metrics.RecordScenarioOperation(operation, "error")
	logger.For("scenario").Error().Err(err).Str("operation", operation).Str("id", id).Msg("scenario store failure")
	return fmt.Errorf("%s scenario: %w", operation, err)
}

// parseScenarioID maps malformed ids to ErrScenarioNotFound; no stored scenario can match them.
func parseScenarioID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrScenarioNotFound
	}
	return oid, nil
}

func normalizeSnapshot(snapshot model.Snapshot) model.Snapshot {
	snapshot.Pricing = snapshot.Pricing.Normalize()
	return snapshot
}
