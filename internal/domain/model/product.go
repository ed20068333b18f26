// Package model defines the core domain entities for the container quote service.
package model

import "fmt"

// AllocationMode selects how a product claims space in the container.
type AllocationMode string

const (
	// AllocationByMix allocates a percentage of the container volume.
	AllocationByMix AllocationMode = "mix"
	// AllocationByQuantity allocates enough cartons to cover an explicit unit count.
	AllocationByQuantity AllocationMode = "quantity"
)

// AllocationRequest is the per-product allocation variant. Only the field that
// matches Mode is meaningful; the other one is ignored by the engine.
//
// @Description Requested share of the container, either a volume percentage or a unit count
type AllocationRequest struct {
	Mode       AllocationMode `json:"mode" bson:"mode" example:"mix"`
	MixPercent float64        `json:"mix_percent,omitempty" bson:"mix_percent,omitempty" example:"50"`
	Quantity   int            `json:"quantity,omitempty" bson:"quantity,omitempty" example:"1200"`
}

// MixAllocation builds a percentage-driven request.
func MixAllocation(percent float64) AllocationRequest {
	return AllocationRequest{Mode: AllocationByMix, MixPercent: percent}
}

// QuantityAllocation builds a quantity-driven request.
func QuantityAllocation(quantity int) AllocationRequest {
	return AllocationRequest{Mode: AllocationByQuantity, Quantity: quantity}
}

// RequestFromFields converts the flat wire fields into a request.
// A positive quantity always wins over the mix percentage.
func RequestFromFields(mixPercent float64, quantity *int) AllocationRequest {
	if quantity != nil && *quantity > 0 {
		return QuantityAllocation(*quantity)
	}
	return MixAllocation(mixPercent)
}

// Product is a sellable item definition in the catalog.
//
// @Description Catalog entry describing one packaged good
type Product struct {
	ID              string            `json:"id" example:"p-100"`
	Name            string            `json:"name" example:"Ceramic mug"`
	Dimensions      string            `json:"dimensions,omitempty" example:"12x9x10 cm"`
	Description     string            `json:"description,omitempty"`
	MasterCartonCBM float64           `json:"master_carton_cbm" example:"0.11"`
	UnitsPerCarton  int               `json:"units_per_carton" example:"6"`
	FactoryPriceUSD float64           `json:"factory_price_usd" example:"5.51"`
	ProfitMargin    float64           `json:"profit_margin" example:"40"`
	Allocation      AllocationRequest `json:"allocation"`
	Active          bool              `json:"active" example:"true"`
}

// Validate reports carton geometry that makes allocation meaningless.
func (p Product) Validate() error {
	if p.UnitsPerCarton <= 0 {
		return &ContractError{ProductID: p.ID, Field: "units_per_carton", Message: fmt.Sprintf("must be positive, got %d", p.UnitsPerCarton)}
	}
	if p.MasterCartonCBM <= 0 {
		return &ContractError{ProductID: p.ID, Field: "master_carton_cbm", Message: fmt.Sprintf("must be positive, got %g", p.MasterCartonCBM)}
	}
	return nil
}

// ActiveProducts returns the active products in catalog order.
func ActiveProducts(products []Product) []Product {
	active := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Active {
			active = append(active, p)
		}
	}
	return active
}

// MixPercentTotal sums the requested mix percentage of active, mix-driven products.
// Upstream callers use it as a validation hint; it is expected to be 100.
func MixPercentTotal(products []Product) float64 {
	var total float64
	for _, p := range products {
		if p.Active && p.Allocation.Mode == AllocationByMix {
			total += p.Allocation.MixPercent
		}
	}
	return total
}

// ContractError reports a catalog entry or pricing input the engine refuses to price.
type ContractError struct {
	ProductID string
	Field     string
	Message   string
}

// Error implements error.
func (e *ContractError) Error() string {
	if e.ProductID == "" {
		return e.Field + ": " + e.Message
	}
	return "product " + e.ProductID + ": " + e.Field + ": " + e.Message
}
