package service

import "github.com/guttosm/container-quote/internal/domain/model"

// Summarize reduces priced lines into container totals, in line order.
// Investment is factory cost only; freight is reported on its own.
// A container with no priced lines summarizes to all zeros.
func Summarize(pricing model.Pricing) model.ContainerSummary {
	if len(pricing.Lines) == 0 {
		return model.ContainerSummary{}
	}

	summary := model.ContainerSummary{
		TotalCustomerTransactionLocal: pricing.TotalCustomerTransactionLocal,
		TotalUndocumentedExpenseLocal: pricing.TotalUndocumentedExpenseLocal,
		TotalUndocumentedExpenseUSD:   pricing.TotalUndocumentedExpenseUSD,
		ShippingCostUSD:               pricing.ShippingCostUSD,
	}

	for _, line := range pricing.Lines {
		summary.TotalUnits += line.TotalUnits
		summary.TotalAllocatedCBM += line.AllocatedCBM
		summary.TotalFactoryPriceUSD += line.TotalFactoryPriceUSD
		summary.TotalExpensesUSD += line.TotalExpensesUSD
		summary.TotalProfitUSD += line.TotalProfitUSD
		summary.TotalProfitLocal += line.TotalProfitLocal
	}
	summary.TotalInvestmentUSD = summary.TotalFactoryPriceUSD

	return summary
}
