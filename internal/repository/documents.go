package repository

import "github.com/guttosm/container-quote/internal/domain/model"

// ProductDocument is the stored form of a catalog product.
//
// Older documents carry flat mix_percent/quantity fields instead of an
// allocation object and may lack the active flag; both are resolved when
// converting to the domain model.
type ProductDocument struct {
	ProductID       string                   `bson:"product_id"`
	Name            string                   `bson:"name"`
	Dimensions      string                   `bson:"dimensions,omitempty"`
	Description     string                   `bson:"description,omitempty"`
	MasterCartonCBM float64                  `bson:"master_carton_cbm"`
	UnitsPerCarton  int                      `bson:"units_per_carton"`
	FactoryPriceUSD float64                  `bson:"factory_price_usd"`
	ProfitMargin    float64                  `bson:"profit_margin"`
	Allocation      *model.AllocationRequest `bson:"allocation,omitempty"`
	MixPercent      float64                  `bson:"mix_percent,omitempty"`
	Quantity        *int                     `bson:"quantity,omitempty"`
	Active          *bool                    `bson:"active,omitempty"`
}

// ToModel converts the document into a domain product.
func (d ProductDocument) ToModel() model.Product {
	active := true
	if d.Active != nil {
		active = *d.Active
	}

	allocation := model.RequestFromFields(d.MixPercent, d.Quantity)
	if d.Allocation != nil && d.Allocation.Mode != "" {
		allocation = *d.Allocation
	}

	return model.Product{
		ID:              d.ProductID,
		Name:            d.Name,
		Dimensions:      d.Dimensions,
		Description:     d.Description,
		MasterCartonCBM: d.MasterCartonCBM,
		UnitsPerCarton:  d.UnitsPerCarton,
		FactoryPriceUSD: d.FactoryPriceUSD,
		ProfitMargin:    d.ProfitMargin,
		Allocation:      allocation,
		Active:          active,
	}
}

// NewProductDocument converts a domain product for storage.
func NewProductDocument(p model.Product) ProductDocument {
	active := p.Active
	allocation := p.Allocation
	return ProductDocument{
		ProductID:       p.ID,
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

// ProductsToModel converts stored products, keeping their order.
func ProductsToModel(docs []ProductDocument) []model.Product {
	products := make([]model.Product, len(docs))
	for i, d := range docs {
		products[i] = d.ToModel()
	}
	return products
}

// NewProductDocuments converts domain products for storage, keeping their order.
func NewProductDocuments(products []model.Product) []ProductDocument {
	docs := make([]ProductDocument, len(products))
	for i, p := range products {
		docs[i] = NewProductDocument(p)
	}
	return docs
}
