package service

import (
	"testing"

	"github.com/guttosm/container-quote/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

// TestSummarize tests container totals over priced lines.
func TestSummarize(t *testing.T) {
	pricing := model.Pricing{
		Lines: []model.PricedResult{
			{
				AllocationResult:     model.AllocationResult{Cartons: 10, TotalUnits: 60, AllocatedCBM: 1.1},
				TotalFactoryPriceUSD: 300,
				TotalExpensesUSD:     330,
				TotalProfitUSD:       200,
				TotalProfitLocal:     640,
			},
			{
				AllocationResult:     model.AllocationResult{Cartons: 5, TotalUnits: 20, AllocatedCBM: 1.5},
				TotalFactoryPriceUSD: 100,
				TotalExpensesUSD:     110,
				TotalProfitUSD:       50,
				TotalProfitLocal:     160,
			},
		},
		ExchangeRate:                  3.2,
		ShippingCostUSD:               900,
		TotalCustomerTransactionLocal: 2560,
		TotalUndocumentedExpenseLocal: 128,
		TotalUndocumentedExpenseUSD:   40,
	}

	got := Summarize(pricing)

	assert.Equal(t, 80, got.TotalUnits)
	assert.InDelta(t, 2.6, got.TotalAllocatedCBM, 1e-9)
	assert.Equal(t, 400.0, got.TotalFactoryPriceUSD)
	assert.Equal(t, 440.0, got.TotalExpensesUSD)
	assert.Equal(t, 400.0, got.TotalInvestmentUSD, "investment excludes freight")
	assert.Equal(t, 250.0, got.TotalProfitUSD)
	assert.Equal(t, 800.0, got.TotalProfitLocal)
	assert.Equal(t, 2560.0, got.TotalCustomerTransactionLocal)
	assert.Equal(t, 128.0, got.TotalUndocumentedExpenseLocal)
	assert.Equal(t, 40.0, got.TotalUndocumentedExpenseUSD)
	assert.Equal(t, 900.0, got.ShippingCostUSD)
}

// TestSummarize_Empty checks that an empty container summarizes to zero.
func TestSummarize_Empty(t *testing.T) {
	ctx := model.PricingContext{
		ExchangeRate:    3.2,
		ShippingCostUSD: 1500,
		Expense:         model.ExpensePolicy{Type: model.ExpenseFixed, Value: 200},
	}

	pricing, err := Price(nil, nil, ctx)
	assert.NoError(t, err)
	assert.Equal(t, model.ContainerSummary{}, Summarize(pricing))
}
