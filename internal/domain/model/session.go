package model

import (
	"errors"
	"strings"
)

// ErrProductNotFound is returned when a session update names an unknown product.
var ErrProductNotFound = errors.New("product not found in session")

// Session is the in-progress draft a user edits before quoting or saving.
// Every update returns a new Session; the receiver is never modified.
type Session struct {
	ContainerType ContainerType  `json:"container_type"`
	Catalog       []Product      `json:"catalog"`
	Pricing       PricingContext `json:"pricing"`
	ScenarioName  string         `json:"scenario_name,omitempty"`
	Dirty         bool           `json:"dirty"`
}

// NewSession starts a clean draft from a loaded catalog.
func NewSession(container ContainerType, catalog []Product, pricing PricingContext) Session {
	return Session{
		ContainerType: container,
		Catalog:       cloneProducts(catalog),
		Pricing:       pricing,
	}
}

// SetContainer switches the container type.
func (s Session) SetContainer(t ContainerType) Session {
	next := s.clone()
	next.ContainerType = t
	next.Dirty = true
	return next
}

// SetPricing replaces the pricing context.
func (s Session) SetPricing(p PricingContext) Session {
	next := s.clone()
	next.Pricing = p
	next.Dirty = true
	return next
}

// SetScenarioName records the name the draft will be saved under.
func (s Session) SetScenarioName(name string) Session {
	next := s.clone()
	next.ScenarioName = strings.TrimSpace(name)
	return next
}

// UpsertProduct replaces the product with the same ID or appends it.
func (s Session) UpsertProduct(p Product) Session {
	next := s.clone()
	for i := range next.Catalog {
		if next.Catalog[i].ID == p.ID {
			next.Catalog[i] = p
			next.Dirty = true
			return next
		}
	}
	next.Catalog = append(next.Catalog, p)
	next.Dirty = true
	return next
}

// RemoveProduct drops a product from the draft catalog.
func (s Session) RemoveProduct(id string) (Session, error) {
	next := s.clone()
	for i := range next.Catalog {
		if next.Catalog[i].ID == id {
			next.Catalog = append(next.Catalog[:i], next.Catalog[i+1:]...)
			next.Dirty = true
			return next, nil
		}
	}
	return s, ErrProductNotFound
}

// SetProductActive includes or excludes a product from calculations.
func (s Session) SetProductActive(id string, active bool) (Session, error) {
	return s.updateProduct(id, func(p Product) Product {
		p.Active = active
		return p
	})
}

// SwitchAllocationMode rewrites one product's allocation with convert, which
// must translate between the mix and quantity variants.
func (s Session) SwitchAllocationMode(id string, convert func(Product) Product) (Session, error) {
	return s.updateProduct(id, convert)
}

// Snapshot returns the persistable part of the draft.
func (s Session) Snapshot() Snapshot {
	return Snapshot{
		ContainerType: s.ContainerType,
		Catalog:       cloneProducts(s.Catalog),
		Pricing:       s.Pricing,
	}
}

// MarkSaved clears the dirty flag after a successful save.
func (s Session) MarkSaved() Session {
	next := s.clone()
	next.Dirty = false
	return next
}

func (s Session) updateProduct(id string, fn func(Product) Product) (Session, error) {
	next := s.clone()
	for i := range next.Catalog {
		if next.Catalog[i].ID == id {
			next.Catalog[i] = fn(next.Catalog[i])
			next.Dirty = true
			return next, nil
		}
	}
	return s, ErrProductNotFound
}

func (s Session) clone() Session {
	s.Catalog = cloneProducts(s.Catalog)
	return s
}

func cloneProducts(products []Product) []Product {
	if products == nil {
		return nil
	}
	out := make([]Product, len(products))
	copy(out, products)
	return out
}
