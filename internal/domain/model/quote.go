package model

// AllocationResult is the concrete space a product takes in the container.
type AllocationResult struct {
	Cartons      int     `json:"cartons"`
	TotalUnits   int     `json:"total_units"`
	AllocatedCBM float64 `json:"allocated_cbm"`
}

// PricedResult is the fully priced line of one active product.
type PricedResult struct {
	AllocationResult
	ProductID                string  `json:"product_id"`
	UnitFactoryPriceUSD      float64 `json:"unit_factory_price_usd"`
	TotalFactoryPriceUSD     float64 `json:"total_factory_price_usd"`
	ProportionalExpenseUSD   float64 `json:"proportional_expense_usd"`
	TotalExpensesUSD         float64 `json:"total_expenses_usd"`
	UnitPriceUSD             float64 `json:"unit_price_usd"`
	UnitPriceLocal           float64 `json:"unit_price_local"`
	CustomerTransactionLocal float64 `json:"customer_transaction_local"`
	ShippingPerUnitUSD       float64 `json:"shipping_per_unit_usd"`
	PriceWithShippingUSD     float64 `json:"price_with_shipping_usd"`
	PriceWithShippingLocal   float64 `json:"price_with_shipping_local"`
	TotalProfitUSD           float64 `json:"total_profit_usd"`
	TotalProfitLocal         float64 `json:"total_profit_local"`
}

// Pricing is the output of the pricing engine: the priced lines plus the
// container-wide figures they were derived from.
type Pricing struct {
	Lines                         []PricedResult
	ExchangeRate                  float64
	ShippingCostUSD               float64
	TotalCustomerTransactionLocal float64
	TotalUndocumentedExpenseLocal float64
	TotalUndocumentedExpenseUSD   float64
}

// ContainerSummary aggregates all priced lines of a container.
type ContainerSummary struct {
	TotalUnits                    int     `json:"total_units"`
	TotalAllocatedCBM             float64 `json:"total_allocated_cbm"`
	TotalFactoryPriceUSD          float64 `json:"total_factory_price_usd"`
	TotalExpensesUSD              float64 `json:"total_expenses_usd"`
	TotalInvestmentUSD            float64 `json:"total_investment_usd"`
	TotalProfitUSD                float64 `json:"total_profit_usd"`
	TotalProfitLocal              float64 `json:"total_profit_local"`
	TotalCustomerTransactionLocal float64 `json:"total_customer_transaction_local"`
	TotalUndocumentedExpenseLocal float64 `json:"total_undocumented_expense_local"`
	TotalUndocumentedExpenseUSD   float64 `json:"total_undocumented_expense_usd"`
	ShippingCostUSD               float64 `json:"shipping_cost_usd"`
}

// Quote is a complete computation for one container.
type Quote struct {
	Container          ContainerSpec
	Pricing            PricingContext
	Products           []Product
	Lines              []PricedResult
	Summary            ContainerSummary
	UtilizationPercent float64
	MixPercentTotal    float64
}
