package service

import (
	"fmt"

	"github.com/guttosm/container-quote/internal/domain/model"
)

// Price turns allocated unit counts into priced lines.
//
// allocations[i] must belong to products[i]. The undocumented expense depends
// on the sum of every line's transaction value, so lines are priced together:
// per-line prices first, then container totals, then the distribution of
// expense and freight back onto the lines.
func Price(allocations []model.AllocationResult, products []model.Product, ctx model.PricingContext) (model.Pricing, error) {
	if len(allocations) != len(products) {
		return model.Pricing{}, fmt.Errorf("price: %d allocations for %d products", len(allocations), len(products))
	}

	ctx = ctx.Normalize()
	if err := ctx.Validate(); err != nil {
		return model.Pricing{}, err
	}

	rate := ctx.ExchangeRate
	lines := make([]model.PricedResult, len(products))
	factoryTotals := make([]float64, len(products))
	units := make([]int, len(products))

	var totalTransactionLocal float64
	for i, p := range products {
		alloc := allocations[i]
		unitFactory := p.FactoryPriceUSD * (1 + ctx.FactorySurchargePercent/100)
		unitPrice := unitPriceWithMargin(unitFactory, p.ProfitMargin)
		unitPriceLocal := unitPrice * rate

		line := model.PricedResult{
			AllocationResult:         alloc,
			ProductID:                p.ID,
			UnitFactoryPriceUSD:      unitFactory,
			TotalFactoryPriceUSD:     unitFactory * float64(alloc.TotalUnits),
			UnitPriceUSD:             unitPrice,
			UnitPriceLocal:           unitPriceLocal,
			CustomerTransactionLocal: unitPriceLocal * float64(alloc.TotalUnits),
		}
		lines[i] = line
		factoryTotals[i] = line.TotalFactoryPriceUSD
		units[i] = alloc.TotalUnits
		totalTransactionLocal += line.CustomerTransactionLocal
	}

	expenseLocal := undocumentedExpenseLocal(ctx.Expense, totalTransactionLocal)
	expenseUSD := expenseLocal / rate

	expenseShares := distributeExpenseByFactoryCost(factoryTotals, expenseUSD)
	shippingPerUnit := distributeShippingByUnits(units, ctx.ShippingCostUSD)

	for i := range lines {
		line := &lines[i]
		line.ProportionalExpenseUSD = expenseShares[i]
		line.TotalExpensesUSD = line.TotalFactoryPriceUSD + line.ProportionalExpenseUSD
		line.ShippingPerUnitUSD = shippingPerUnit
		line.PriceWithShippingUSD = line.UnitPriceUSD + shippingPerUnit
		line.PriceWithShippingLocal = line.UnitPriceLocal + shippingPerUnit*rate

		unitFactoryLocal := line.UnitFactoryPriceUSD * rate
		line.TotalProfitLocal = (line.UnitPriceLocal - unitFactoryLocal) * float64(line.TotalUnits)
		line.TotalProfitUSD = line.TotalProfitLocal / rate
	}

	return model.Pricing{
		Lines:                         lines,
		ExchangeRate:                  rate,
		ShippingCostUSD:               ctx.ShippingCostUSD,
		TotalCustomerTransactionLocal: totalTransactionLocal,
		TotalUndocumentedExpenseLocal: expenseLocal,
		TotalUndocumentedExpenseUSD:   expenseUSD,
	}, nil
}

// unitPriceWithMargin recovers the margin on the selling price. A margin of
// 100% or more has no finite price and yields 0.
func unitPriceWithMargin(unitFactoryUSD, marginPercent float64) float64 {
	if marginPercent >= 100 {
		return 0
	}
	return unitFactoryUSD / (1 - marginPercent/100)
}

// undocumentedExpenseLocal is computed against the transaction value
// excluding freight.
func undocumentedExpenseLocal(policy model.ExpensePolicy, totalTransactionLocal float64) float64 {
	if policy.Type == model.ExpenseFixed {
		return policy.Value
	}
	return totalTransactionLocal * policy.Value / 100
}
