package model

import "time"

// Snapshot bundles everything needed to recompute a quote.
type Snapshot struct {
	ContainerType ContainerType  `json:"container_type" example:"40hc"`
	Catalog       []Product      `json:"catalog"`
	Pricing       PricingContext `json:"pricing"`
}

// Scenario is a named snapshot persisted in the scenario store.
type Scenario struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Snapshot  Snapshot  `json:"snapshot"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by,omitempty"`
}

// CatalogVersion is one saved revision of the shared product catalog.
type CatalogVersion struct {
	ID        string    `json:"id"`
	Products  []Product `json:"products"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by,omitempty"`
}
