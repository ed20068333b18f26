// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"fmt"

	"github.com/guttosm/container-quote/internal/domain/model"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrBlankScenarioName is returned when a scenario is saved without a name.
	ErrBlankScenarioName = &ValidationError{
		Field:   "name",
		Message: "must not be blank",
	}
	// ErrEmptyCatalog is returned when a catalog update carries no products.
	ErrEmptyCatalog = &ValidationError{
		Field:   "products",
		Message: "at least one product is required",
	}
)

// ProductPayload is a catalog product as sent by clients.
//
// The allocation may be given either as an allocation object or through the
// flat mix_percent/quantity fields; a positive quantity selects quantity mode.
// Active defaults to true when omitted.
//
// @Description Catalog product with its requested share of the container
type ProductPayload struct {
	ID              string                   `json:"id,omitempty" example:"mug-01"`
	Name            string                   `json:"name" example:"Ceramic mug"`
	Dimensions      string                   `json:"dimensions,omitempty" example:"9x9x10 cm"`
	Description     string                   `json:"description,omitempty"`
	MasterCartonCBM float64                  `json:"master_carton_cbm" example:"0.11"`
	UnitsPerCarton  int                      `json:"units_per_carton" example:"6"`
	FactoryPriceUSD float64                  `json:"factory_price_usd" example:"5.51"`
	ProfitMargin    float64                  `json:"profit_margin" example:"40"`
	MixPercent      float64                  `json:"mix_percent,omitempty" example:"100"`
	Quantity        *int                     `json:"quantity,omitempty" example:"1200"`
	Allocation      *model.AllocationRequest `json:"allocation,omitempty"`
	Active          *bool                    `json:"active,omitempty" example:"true"`
} // @name ProductPayload

// ToModel converts the payload into a domain product.
func (p ProductPayload) ToModel() model.Product {
	active := true
	if p.Active != nil {
		active = *p.Active
	}

	allocation := model.RequestFromFields(p.MixPercent, p.Quantity)
	if p.Allocation != nil && p.Allocation.Mode != "" {
		allocation = *p.Allocation
	}

	return model.Product{
		ID:              p.ID,
		Name:            p.Name,
		Dimensions:      p.Dimensions,
		Description:     p.Description,
		MasterCartonCBM: p.MasterCartonCBM,
		UnitsPerCarton:  p.UnitsPerCarton,
		FactoryPriceUSD: p.FactoryPriceUSD,
		ProfitMargin:    p.ProfitMargin,
		Allocation:      allocation,
		Active:          active,
	}
}

// Validate checks the payload fields clients control. Carton geometry is
// left to the pricing engine, which reports it as a contract violation.
func (p ProductPayload) Validate(index int) error {
	field := func(name string) string { return fmt.Sprintf("products[%d].%s", index, name) }

	if p.Name == "" {
		return &ValidationError{Field: field("name"), Message: "is required"}
	}
	if p.FactoryPriceUSD < 0 {
		return &ValidationError{Field: field("factory_price_usd"), Message: "must not be negative"}
	}
	if p.ProfitMargin < 0 {
		return &ValidationError{Field: field("profit_margin"), Message: "must not be negative"}
	}
	if p.MixPercent < 0 || p.MixPercent > 100 {
		return &ValidationError{Field: field("mix_percent"), Message: "must be between 0 and 100"}
	}
	if p.Quantity != nil && *p.Quantity < 0 {
		return &ValidationError{Field: field("quantity"), Message: "must not be negative"}
	}
	if p.Allocation != nil {
		switch p.Allocation.Mode {
		case "", model.AllocationByMix, model.AllocationByQuantity:
		default:
			return &ValidationError{Field: field("allocation.mode"), Message: "must be mix or quantity"}
		}
		if p.Allocation.MixPercent < 0 || p.Allocation.MixPercent > 100 {
			return &ValidationError{Field: field("allocation.mix_percent"), Message: "must be between 0 and 100"}
		}
		if p.Allocation.Quantity < 0 {
			return &ValidationError{Field: field("allocation.quantity"), Message: "must not be negative"}
		}
	}
	return nil
}

// ProductsToModel validates and converts a list of payloads, rejecting duplicate ids.
func ProductsToModel(payloads []ProductPayload) ([]model.Product, error) {
	products := make([]model.Product, 0, len(payloads))
	seen := make(map[string]bool, len(payloads))
	for i, p := range payloads {
		if err := p.Validate(i); err != nil {
			return nil, err
		}
		if p.ID != "" {
			if seen[p.ID] {
				return nil, &ValidationError{Field: fmt.Sprintf("products[%d].id", i), Message: "duplicate product id " + p.ID}
			}
			seen[p.ID] = true
		}
		products = append(products, p.ToModel())
	}
	return products, nil
}

// NewProductPayloads converts domain products to their wire form.
func NewProductPayloads(products []model.Product) []ProductPayload {
	payloads := make([]ProductPayload, len(products))
	for i, p := range products {
		active := p.Active
		allocation := p.Allocation
		payloads[i] = ProductPayload{
			ID:              p.ID,
			Name:            p.Name,
			Dimensions:      p.Dimensions,
			Description:     p.Description,
			MasterCartonCBM: p.MasterCartonCBM,
			UnitsPerCarton:  p.UnitsPerCarton,
			FactoryPriceUSD: p.FactoryPriceUSD,
			ProfitMargin:    p.ProfitMargin,
			Allocation:      &allocation,
			Active:          &active,
		}
	}
	return payloads
}

// QuoteRequest represents the JSON request body for the quote endpoint.
//
// Products is optional; when omitted the active catalog is quoted.
//
// @Description Request to price a container
type QuoteRequest struct {
	ContainerType model.ContainerType  `json:"container_type" example:"40hc"`
	Products      []ProductPayload     `json:"products,omitempty"`
	Pricing       model.PricingContext `json:"pricing"`
} // @name QuoteRequest

// Validate performs custom validation on the request.
func (r *QuoteRequest) Validate() error {
	if r.Pricing.ExchangeRate <= 0 {
		return &ValidationError{Field: "pricing.exchange_rate", Message: "must be positive"}
	}
	if r.Pricing.ShippingCostUSD < 0 {
		return &ValidationError{Field: "pricing.shipping_cost_usd", Message: "must not be negative"}
	}
	if r.Pricing.Expense.Value < 0 {
		return &ValidationError{Field: "pricing.expense.value", Message: "must not be negative"}
	}
	return nil
}

// UpdateCatalogRequest represents the JSON request body for saving the catalog.
//
// @Description Full replacement of the shared product catalog
type UpdateCatalogRequest struct {
	Products []ProductPayload `json:"products"`
} // @name UpdateCatalogRequest

// Validate performs custom validation on the request.
func (r *UpdateCatalogRequest) Validate() error {
	if len(r.Products) == 0 {
		return ErrEmptyCatalog
	}
	return nil
}

// ScenarioRequest represents the JSON request body for saving a scenario.
//
// @Description Named snapshot of a container, catalog and pricing inputs
type ScenarioRequest struct {
	Name          string               `json:"name" example:"Spring order"`
	ContainerType model.ContainerType  `json:"container_type" example:"40hc"`
	Products      []ProductPayload     `json:"products"`
	Pricing       model.PricingContext `json:"pricing"`
} // @name ScenarioRequest

// Snapshot validates the products and returns the snapshot to persist.
func (r *ScenarioRequest) Snapshot() (model.Snapshot, error) {
	products, err := ProductsToModel(r.Products)
	if err != nil {
		return model.Snapshot{}, err
	}
	return model.Snapshot{
		ContainerType: r.ContainerType,
		Catalog:       products,
		Pricing:       r.Pricing.Normalize(),
	}, nil
}

// SessionPayload is a draft session as sent by clients. Its catalog uses the
// same product form as quote requests.
//
// @Description In-progress draft edited before quoting or saving
type SessionPayload struct {
	ContainerType model.ContainerType  `json:"container_type" example:"40hc"`
	Catalog       []ProductPayload     `json:"catalog"`
	Pricing       model.PricingContext `json:"pricing"`
	ScenarioName  string               `json:"scenario_name,omitempty"`
	Dirty         bool                 `json:"dirty"`
} // @name SessionPayload

// ToModel validates the catalog and returns the domain session.
func (s SessionPayload) ToModel() (model.Session, error) {
	products, err := ProductsToModel(s.Catalog)
	if err != nil {
		return model.Session{}, err
	}
	return model.Session{
		ContainerType: s.ContainerType,
		Catalog:       products,
		Pricing:       s.Pricing,
		ScenarioName:  s.ScenarioName,
		Dirty:         s.Dirty,
	}, nil
}

// AllocationModeRequest asks to switch one product of a draft session between modes.
//
// @Description Draft session plus the product and the target allocation mode
type AllocationModeRequest struct {
	Session   SessionPayload       `json:"session"`
	ProductID string               `json:"product_id" example:"mug-01"`
	Mode      model.AllocationMode `json:"mode" example:"quantity"`
} // @name AllocationModeRequest

// Validate performs custom validation on the request.
func (r *AllocationModeRequest) Validate() error {
	if r.ProductID == "" {
		return &ValidationError{Field: "product_id", Message: "is required"}
	}
	if r.Mode != model.AllocationByMix && r.Mode != model.AllocationByQuantity {
		return &ValidationError{Field: "mode", Message: "must be mix or quantity"}
	}
	return nil
}
