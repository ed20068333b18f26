package service

import (
	"fmt"

	"github.com/guttosm/container-quote/internal/domain/model"
)

// QuoteCalculator defines the interface for container quote operations.
type QuoteCalculator interface {
	Quote(container model.ContainerType, products []model.Product, pricing model.PricingContext) (model.Quote, error)
	// SwitchAllocationMode converts one product of a session draft to the given mode.
	SwitchAllocationMode(session model.Session, productID string, mode model.AllocationMode) (model.Session, error)
	Containers() model.ContainerCatalog
}

// Option configures a QuoteCalculatorService.
type Option func(*QuoteCalculatorService)

// QuoteCalculatorService runs allocation, pricing and aggregation over a
// product list. It holds no state besides the container capacities, so a
// single instance is safe for concurrent use.
type QuoteCalculatorService struct {
	containers model.ContainerCatalog
}

// NewQuoteCalculatorService creates a new QuoteCalculatorService with the given options.
func NewQuoteCalculatorService(opts ...Option) *QuoteCalculatorService {
	s := &QuoteCalculatorService{
		containers: model.DefaultContainerCatalog(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithContainers replaces the supported container capacities.
func WithContainers(containers model.ContainerCatalog) Option {
	return func(s *QuoteCalculatorService) {
		if len(containers) == 0 {
			return
		}
		s.containers = make(model.ContainerCatalog, len(containers))
		for t, capacity := range containers {
			s.containers[t] = capacity
		}
	}
}

// Containers returns a copy of the supported container capacities.
func (s *QuoteCalculatorService) Containers() model.ContainerCatalog {
	out := make(model.ContainerCatalog, len(s.containers))
	for t, capacity := range s.containers {
		out[t] = capacity
	}
	return out
}

// Quote computes a complete quote for the active products of the catalog.
// Inactive products are ignored; an active product with broken carton
// geometry fails the whole quote.
func (s *QuoteCalculatorService) Quote(container model.ContainerType, products []model.Product, pricing model.PricingContext) (model.Quote, error) {
	capacity, err := s.containers.Capacity(container)
	if err != nil {
		return model.Quote{}, err
	}

	active := model.ActiveProducts(products)
	for _, p := range active {
		if err := p.Validate(); err != nil {
			return model.Quote{}, err
		}
	}

	allocations := AllocateAll(active, capacity)
	priced, err := Price(allocations, active, pricing)
	if err != nil {
		return model.Quote{}, err
	}
	summary := Summarize(priced)

	return model.Quote{
		Container:          model.ContainerSpec{Type: container, CapacityCBM: capacity},
		Pricing:            pricing.Normalize(),
		Products:           active,
		Lines:              priced.Lines,
		Summary:            summary,
		UtilizationPercent: summary.TotalAllocatedCBM / capacity * 100,
		MixPercentTotal:    model.MixPercentTotal(active),
	}, nil
}

// SwitchAllocationMode converts a product between mix and quantity mode using
// the capacity of the session's container.
func (s *QuoteCalculatorService) SwitchAllocationMode(session model.Session, productID string, mode model.AllocationMode) (model.Session, error) {
	capacity, err := s.containers.Capacity(session.ContainerType)
	if err != nil {
		return session, err
	}

	switch mode {
	case model.AllocationByMix:
		return session.SwitchAllocationMode(productID, ToMixMode(capacity))
	case model.AllocationByQuantity:
		return session.SwitchAllocationMode(productID, ToQuantityMode(capacity))
	default:
		return session, &model.ContractError{ProductID: productID, Field: "mode", Message: fmt.Sprintf("unknown allocation mode %q", mode)}
	}
}
