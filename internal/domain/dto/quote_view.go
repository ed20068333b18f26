package dto

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/guttosm/container-quote/internal/domain/model"
)

// ViewMode selects which figures a quote response exposes.
type ViewMode string

const (
	// ViewSeller exposes factory cost, expenses and profit.
	ViewSeller ViewMode = "seller"
	// ViewCustomer exposes only what the customer pays.
	ViewCustomer ViewMode = "customer"
)

// WarningMixNotFull is reported when active mix-mode products do not add up to 100%.
const WarningMixNotFull = "mix_percent_total_not_100"

const mixTotalTolerance = 0.01

// ContainerView describes the container a quote was computed for.
//
// @Description Container type, capacity and how much of it the quote uses
type ContainerView struct {
	Type               model.ContainerType `json:"container_type" example:"40hc"`
	CapacityCBM        float64             `json:"capacity_cbm" example:"67.2"`
	UsedCBM            float64             `json:"used_cbm" example:"67.1"`
	UtilizationPercent float64             `json:"utilization_percent" example:"99.85"`
	MixPercentTotal    float64             `json:"mix_percent_total" example:"100"`
} // @name ContainerView

// SellerLineView is one priced product as the seller sees it.
//
// @Description Priced product with cost, expense and profit breakdown
type SellerLineView struct {
	ProductID                string  `json:"product_id" example:"mug-01"`
	Name                     string  `json:"name" example:"Ceramic mug"`
	Cartons                  int     `json:"cartons" example:"610"`
	TotalUnits               int     `json:"total_units" example:"3660"`
	AllocatedCBM             float64 `json:"allocated_cbm" example:"67.1"`
	ProfitMargin             float64 `json:"profit_margin" example:"40"`
	UnitFactoryPriceUSD      float64 `json:"unit_factory_price_usd" example:"5.51"`
	TotalFactoryPriceUSD     float64 `json:"total_factory_price_usd" example:"20166.6"`
	ProportionalExpenseUSD   float64 `json:"proportional_expense_usd" example:"0"`
	TotalExpensesUSD         float64 `json:"total_expenses_usd" example:"20166.6"`
	UnitPriceUSD             float64 `json:"unit_price_usd" example:"9.18"`
	UnitPriceLocal           float64 `json:"unit_price_local" example:"29.39"`
	ShippingPerUnitUSD       float64 `json:"shipping_per_unit_usd" example:"0"`
	PriceWithShippingUSD     float64 `json:"price_with_shipping_usd" example:"9.18"`
	PriceWithShippingLocal   float64 `json:"price_with_shipping_local" example:"29.39"`
	CustomerTransactionLocal float64 `json:"customer_transaction_local" example:"107555.2"`
	TotalProfitUSD           float64 `json:"total_profit_usd" example:"13444.4"`
	TotalProfitLocal         float64 `json:"total_profit_local" example:"43022.08"`
} // @name SellerLineView

// CustomerLineView is one priced product as the customer sees it.
//
// @Description Priced product without internal cost figures
type CustomerLineView struct {
	ProductID              string  `json:"product_id" example:"mug-01"`
	Name                   string  `json:"name" example:"Ceramic mug"`
	Dimensions             string  `json:"dimensions,omitempty" example:"9x9x10 cm"`
	Description            string  `json:"description,omitempty"`
	Cartons                int     `json:"cartons" example:"610"`
	TotalUnits             int     `json:"total_units" example:"3660"`
	AllocatedCBM           float64 `json:"allocated_cbm" example:"67.1"`
	UnitPriceUSD           float64 `json:"unit_price_usd" example:"9.18"`
	UnitPriceLocal         float64 `json:"unit_price_local" example:"29.39"`
	PriceWithShippingUSD   float64 `json:"price_with_shipping_usd" example:"9.18"`
	PriceWithShippingLocal float64 `json:"price_with_shipping_local" example:"29.39"`
	LineTotalLocal         float64 `json:"line_total_local" example:"107555.2"`
} // @name CustomerLineView

// SellerSummaryView holds the container totals shown to the seller.
//
// @Description Container-wide totals including investment and profit
type SellerSummaryView struct {
	TotalUnits                    int     `json:"total_units" example:"3660"`
	TotalAllocatedCBM             float64 `json:"total_allocated_cbm" example:"67.1"`
	TotalFactoryPriceUSD          float64 `json:"total_factory_price_usd" example:"20166.6"`
	TotalExpensesUSD              float64 `json:"total_expenses_usd" example:"20166.6"`
	TotalInvestmentUSD            float64 `json:"total_investment_usd" example:"20166.6"`
	ShippingCostUSD               float64 `json:"shipping_cost_usd" example:"0"`
	TotalUndocumentedExpenseUSD   float64 `json:"total_undocumented_expense_usd" example:"0"`
	TotalUndocumentedExpenseLocal float64 `json:"total_undocumented_expense_local" example:"0"`
	TotalCustomerTransactionLocal float64 `json:"total_customer_transaction_local" example:"107555.2"`
	TotalProfitUSD                float64 `json:"total_profit_usd" example:"13444.4"`
	TotalProfitLocal              float64 `json:"total_profit_local" example:"43022.08"`
} // @name SellerSummaryView

// CustomerSummaryView holds the container totals shown to the customer.
//
// @Description Container-wide totals the customer pays
type CustomerSummaryView struct {
	TotalUnits        int     `json:"total_units" example:"3660"`
	TotalAllocatedCBM float64 `json:"total_allocated_cbm" example:"67.1"`
	ShippingCostUSD   float64 `json:"shipping_cost_usd" example:"0"`
	TotalLocal        float64 `json:"total_local" example:"107555.2"`
} // @name CustomerSummaryView

// SellerQuoteView is the full quote response for authenticated sellers.
//
// @Description Quote with the seller breakdown
type SellerQuoteView struct {
	View      ViewMode             `json:"view" example:"seller"`
	Container ContainerView        `json:"container"`
	Pricing   model.PricingContext `json:"pricing"`
	Lines     []SellerLineView     `json:"lines"`
	Summary   SellerSummaryView    `json:"summary"`
	Warnings  []string             `json:"warnings,omitempty"`
} // @name SellerQuoteView

// CustomerQuoteView is the quote response for anonymous or customer requests.
//
// @Description Quote restricted to customer-facing figures
type CustomerQuoteView struct {
	View         ViewMode            `json:"view" example:"customer"`
	Container    ContainerView       `json:"container"`
	ExchangeRate float64             `json:"exchange_rate" example:"3.2"`
	Lines        []CustomerLineView  `json:"lines"`
	Summary      CustomerSummaryView `json:"summary"`
} // @name CustomerQuoteView

// NewQuoteView renders a quote for the given view mode.
func NewQuoteView(q model.Quote, mode ViewMode) interface{} {
	if mode == ViewSeller {
		return NewSellerQuoteView(q)
	}
	return NewCustomerQuoteView(q)
}

// NewSellerQuoteView renders the seller breakdown of a quote.
func NewSellerQuoteView(q model.Quote) SellerQuoteView {
	names := productNames(q.Products)
	lines := make([]SellerLineView, len(q.Lines))
	for i, l := range q.Lines {
		lines[i] = SellerLineView{
			ProductID:                l.ProductID,
			Name:                     names[l.ProductID].Name,
			Cartons:                  l.Cartons,
			TotalUnits:               l.TotalUnits,
			AllocatedCBM:             volume(l.AllocatedCBM),
			ProfitMargin:             money(names[l.ProductID].ProfitMargin),
			UnitFactoryPriceUSD:      money(l.UnitFactoryPriceUSD),
			TotalFactoryPriceUSD:     money(l.TotalFactoryPriceUSD),
			ProportionalExpenseUSD:   money(l.ProportionalExpenseUSD),
			TotalExpensesUSD:         money(l.TotalExpensesUSD),
			UnitPriceUSD:             money(l.UnitPriceUSD),
			UnitPriceLocal:           money(l.UnitPriceLocal),
			ShippingPerUnitUSD:       money(l.ShippingPerUnitUSD),
			PriceWithShippingUSD:     money(l.PriceWithShippingUSD),
			PriceWithShippingLocal:   money(l.PriceWithShippingLocal),
			CustomerTransactionLocal: money(l.CustomerTransactionLocal),
			TotalProfitUSD:           money(l.TotalProfitUSD),
			TotalProfitLocal:         money(l.TotalProfitLocal),
		}
	}

	s := q.Summary
	view := SellerQuoteView{
		View:      ViewSeller,
		Container: newContainerView(q),
		Pricing:   q.Pricing,
		Lines:     lines,
		Summary: SellerSummaryView{
			TotalUnits:                    s.TotalUnits,
			TotalAllocatedCBM:             volume(s.TotalAllocatedCBM),
			TotalFactoryPriceUSD:          money(s.TotalFactoryPriceUSD),
			TotalExpensesUSD:              money(s.TotalExpensesUSD),
			TotalInvestmentUSD:            money(s.TotalInvestmentUSD),
			ShippingCostUSD:               money(s.ShippingCostUSD),
			TotalUndocumentedExpenseUSD:   money(s.TotalUndocumentedExpenseUSD),
			TotalUndocumentedExpenseLocal: money(s.TotalUndocumentedExpenseLocal),
			TotalCustomerTransactionLocal: money(s.TotalCustomerTransactionLocal),
			TotalProfitUSD:                money(s.TotalProfitUSD),
			TotalProfitLocal:              money(s.TotalProfitLocal),
		},
	}
	if hasMixProducts(q.Products) && math.Abs(q.MixPercentTotal-100) > mixTotalTolerance {
		view.Warnings = append(view.Warnings, WarningMixNotFull)
	}
	return view
}

// NewCustomerQuoteView renders the customer-facing part of a quote.
func NewCustomerQuoteView(q model.Quote) CustomerQuoteView {
	names := productNames(q.Products)
	lines := make([]CustomerLineView, len(q.Lines))
	for i, l := range q.Lines {
		p := names[l.ProductID]
		lines[i] = CustomerLineView{
			ProductID:              l.ProductID,
			Name:                   p.Name,
			Dimensions:             p.Dimensions,
			Description:            p.Description,
			Cartons:                l.Cartons,
			TotalUnits:             l.TotalUnits,
			AllocatedCBM:           volume(l.AllocatedCBM),
			UnitPriceUSD:           money(l.UnitPriceUSD),
			UnitPriceLocal:         money(l.UnitPriceLocal),
			PriceWithShippingUSD:   money(l.PriceWithShippingUSD),
			PriceWithShippingLocal: money(l.PriceWithShippingLocal),
			LineTotalLocal:         money(l.CustomerTransactionLocal),
		}
	}

	return CustomerQuoteView{
		View:         ViewCustomer,
		Container:    newContainerView(q),
		ExchangeRate: q.Pricing.ExchangeRate,
		Lines:        lines,
		Summary: CustomerSummaryView{
			TotalUnits:        q.Summary.TotalUnits,
			TotalAllocatedCBM: volume(q.Summary.TotalAllocatedCBM),
			ShippingCostUSD:   money(q.Summary.ShippingCostUSD),
			TotalLocal:        money(q.Summary.TotalCustomerTransactionLocal),
		},
	}
}

func newContainerView(q model.Quote) ContainerView {
	return ContainerView{
		Type:               q.Container.Type,
		CapacityCBM:        q.Container.CapacityCBM,
		UsedCBM:            volume(q.Summary.TotalAllocatedCBM),
		UtilizationPercent: money(q.UtilizationPercent),
		MixPercentTotal:    money(q.MixPercentTotal),
	}
}

func productNames(products []model.Product) map[string]model.Product {
	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID
}

func hasMixProducts(products []model.Product) bool {
	for _, p := range products {
		if p.Active && p.Allocation.Mode == model.AllocationByMix {
			return true
		}
	}
	return false
}

// money rounds half away from zero to cents for display. The engine keeps full precision.
func money(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func volume(v float64) float64 {
	return decimal.NewFromFloat(v).Round(3).InexactFloat64()
}
