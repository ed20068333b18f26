package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/guttosm/container-quote/internal/domain/model"
	"github.com/guttosm/container-quote/internal/logger"
	"github.com/guttosm/container-quote/internal/metrics"
	"github.com/guttosm/container-quote/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// Catalog sources reported by Load.
const (
	CatalogSourceStore   = "store"
	CatalogSourceDefault = "default"
)

// DefaultCatalog is served until a catalog has been saved.
func DefaultCatalog() []model.Product {
	return []model.Product{
		{
			ID:              "mug-ceramic-350",
			Name:            "Ceramic mug 350ml",
			Dimensions:      "9x9x10 cm",
			Description:     "Glazed stoneware mug, gift box",
			MasterCartonCBM: 0.11,
			UnitsPerCarton:  6,
			FactoryPriceUSD: 5.51,
			ProfitMargin:    40,
			Allocation:      model.MixAllocation(60),
			Active:          true,
		},
		{
			ID:              "vase-glass-30",
			Name:            "Glass vase 30cm",
			Dimensions:      "14x14x30 cm",
			MasterCartonCBM: 0.096,
			UnitsPerCarton:  8,
			FactoryPriceUSD: 7.8,
			ProfitMargin:    45,
			Allocation:      model.MixAllocation(40),
			Active:          true,
		},
		{
			ID:              "tray-bamboo-40",
			Name:            "Bamboo serving tray",
			Dimensions:      "40x28x3 cm",
			MasterCartonCBM: 0.052,
			UnitsPerCarton:  20,
			FactoryPriceUSD: 3.2,
			ProfitMargin:    50,
			Allocation:      model.QuantityAllocation(400),
			Active:          false,
		},
	}
}

// CatalogService loads and saves the shared product catalog.
type CatalogService interface {
	// Load returns the last saved catalog, or the default catalog when none was saved.
	Load(ctx context.Context) (model.CatalogVersion, string, error)
	Save(ctx context.Context, products []model.Product, savedBy string) (model.CatalogVersion, error)
	History(ctx context.Context, limit int) ([]model.CatalogVersion, error)
}

// CatalogServiceImpl implements CatalogService.
type CatalogServiceImpl struct {
	catalogRepo repository.CatalogRepositoryInterface
}

// NewCatalogService creates a new catalog service. A nil repository serves
// the default catalog and refuses writes.
func NewCatalogService(catalogRepo repository.CatalogRepositoryInterface) CatalogService {
	return &CatalogServiceImpl{
		catalogRepo: catalogRepo,
	}
}

func (s *CatalogServiceImpl) Load(ctx context.Context) (model.CatalogVersion, string, error) {
	if s.catalogRepo == nil {
		metrics.RecordCatalogLoad(CatalogSourceDefault)
		return defaultCatalogVersion(), CatalogSourceDefault, nil
	}

	doc, err := s.catalogRepo.GetActive(ctx)
	if err != nil {
		logger.For("catalog").Error().Err(err).Msg("failed to load catalog")
		return model.CatalogVersion{}, "", fmt.Errorf("load catalog: %w", err)
	}
	if doc == nil {
		metrics.RecordCatalogLoad(CatalogSourceDefault)
		return defaultCatalogVersion(), CatalogSourceDefault, nil
	}

	metrics.RecordCatalogLoad(CatalogSourceStore)
	return doc.ToModel(), CatalogSourceStore, nil
}

// Save stores the products as a new catalog revision. Products without an id get a fresh one.
func (s *CatalogServiceImpl) Save(ctx context.Context, products []model.Product, savedBy string) (model.CatalogVersion, error) {
	if s.catalogRepo == nil {
		return model.CatalogVersion{}, ErrRepositoryNotConfigured
	}

	withIDs := make([]model.Product, len(products))
	for i, p := range products {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		withIDs[i] = p
	}

	doc, err := s.catalogRepo.Save(ctx, withIDs, savedBy)
	if err != nil {
		logger.For("catalog").Error().Err(err).Str("saved_by", savedBy).Msg("failed to save catalog")
		return model.CatalogVersion{}, fmt.Errorf("save catalog: %w", err)
	}

	logger.For("catalog").Info().
		Int("version", doc.Version).
		Int("products", len(withIDs)).
		Str("saved_by", savedBy).
		Msg("catalog saved")
	return doc.ToModel(), nil
}

func (s *CatalogServiceImpl) History(ctx context.Context, limit int) ([]model.CatalogVersion, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	docs, err := s.catalogRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list catalog versions: %w", err)
	}

	versions := make([]model.CatalogVersion, len(docs))
	for i, d := range docs {
		versions[i] = d.ToModel()
	}
	return versions, nil
}

func defaultCatalogVersion() model.CatalogVersion {
	return model.CatalogVersion{Products: DefaultCatalog()}
}
