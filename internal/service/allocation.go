package service

import (
	"math"

	"github.com/guttosm/container-quote/internal/domain/model"
)

// floorEpsilon absorbs binary representation error so that an exact carton
// multiple such as 14.1/0.47 is not floored to one carton less.
const floorEpsilon = 1e-9

// Allocate converts a product's allocation request into whole cartons.
//
// Quantity mode rounds cartons up so the requested units are always covered;
// mix mode rounds down so the product never exceeds its share of the
// container. Unusable requests or carton geometry allocate nothing.
func Allocate(p model.Product, capacityCBM float64) model.AllocationResult {
	if p.MasterCartonCBM <= 0 || p.UnitsPerCarton <= 0 {
		return model.AllocationResult{}
	}

	switch p.Allocation.Mode {
	case model.AllocationByQuantity:
		if p.Allocation.Quantity <= 0 {
			return model.AllocationResult{}
		}
		cartons := cartonsForQuantity(p.Allocation.Quantity, p.UnitsPerCarton)
		return model.AllocationResult{
			Cartons:      cartons,
			TotalUnits:   p.Allocation.Quantity,
			AllocatedCBM: float64(cartons) * p.MasterCartonCBM,
		}
	case model.AllocationByMix:
		if p.Allocation.MixPercent <= 0 || capacityCBM <= 0 {
			return model.AllocationResult{}
		}
		requested := capacityCBM * (p.Allocation.MixPercent / 100)
		cartons := int(math.Floor(requested/p.MasterCartonCBM + floorEpsilon))
		return model.AllocationResult{
			Cartons:      cartons,
			TotalUnits:   cartons * p.UnitsPerCarton,
			AllocatedCBM: float64(cartons) * p.MasterCartonCBM,
		}
	default:
		return model.AllocationResult{}
	}
}

// AllocateAll allocates every product in order.
func AllocateAll(products []model.Product, capacityCBM float64) []model.AllocationResult {
	results := make([]model.AllocationResult, len(products))
	for i, p := range products {
		results[i] = Allocate(p, capacityCBM)
	}
	return results
}

// DeriveMixPercent is the container share an explicit quantity occupies,
// counted in whole cartons.
func DeriveMixPercent(p model.Product, capacityCBM float64) float64 {
	if capacityCBM <= 0 || p.UnitsPerCarton <= 0 || p.MasterCartonCBM <= 0 || p.Allocation.Quantity <= 0 {
		return 0
	}
	cartons := cartonsForQuantity(p.Allocation.Quantity, p.UnitsPerCarton)
	return 100 * float64(cartons) * p.MasterCartonCBM / capacityCBM
}

// ToMixMode returns a converter that rewrites a quantity-driven product as
// the mix percentage its quantity occupies.
func ToMixMode(capacityCBM float64) func(model.Product) model.Product {
	return func(p model.Product) model.Product {
		if p.Allocation.Mode == model.AllocationByMix {
			return p
		}
		p.Allocation = model.MixAllocation(DeriveMixPercent(p, capacityCBM))
		return p
	}
}

// ToQuantityMode returns a converter that rewrites a mix-driven product as
// the unit count its share currently allocates.
func ToQuantityMode(capacityCBM float64) func(model.Product) model.Product {
	return func(p model.Product) model.Product {
		if p.Allocation.Mode == model.AllocationByQuantity {
			return p
		}
		p.Allocation = model.QuantityAllocation(Allocate(p, capacityCBM).TotalUnits)
		return p
	}
}

func cartonsForQuantity(quantity, unitsPerCarton int) int {
	return (quantity + unitsPerCarton - 1) / unitsPerCarton
}
