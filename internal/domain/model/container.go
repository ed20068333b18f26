package model

import (
	"fmt"
	"sort"
)

// ContainerType identifies a supported container size.
type ContainerType string

const (
	// ContainerTwentyFoot is the standard 20ft dry container.
	ContainerTwentyFoot ContainerType = "20ft"
	// ContainerFortyHighCube is the 40ft high cube container.
	ContainerFortyHighCube ContainerType = "40hc"
)

// DefaultContainerCatalog returns the usable capacities of the reference deployment.
func DefaultContainerCatalog() ContainerCatalog {
	return ContainerCatalog{
		ContainerTwentyFoot:    28.2,
		ContainerFortyHighCube: 67.2,
	}
}

// ContainerCatalog maps container types to their usable volume in cubic meters.
type ContainerCatalog map[ContainerType]float64

// Capacity resolves the capacity of a container type.
func (c ContainerCatalog) Capacity(t ContainerType) (float64, error) {
	capacity, ok := c[t]
	if !ok || capacity <= 0 {
		return 0, &ContractError{Field: "container_type", Message: fmt.Sprintf("unsupported container type %q", t)}
	}
	return capacity, nil
}

// Types returns the supported container types in a stable order.
func (c ContainerCatalog) Types() []ContainerType {
	types := make([]ContainerType, 0, len(c))
	for t := range c {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// ContainerSpec is the container a quote is computed for.
//
// @Description Container type and its resolved capacity
type ContainerSpec struct {
	Type        ContainerType `json:"container_type" example:"40hc"`
	CapacityCBM float64       `json:"capacity_cbm" example:"67.2"`
}
