package service

// The two container-wide costs are spread over product lines with different
// keys. Keep them separate: swapping the keys produces plausible numbers that
// are wrong.

// distributeExpenseByFactoryCost assigns each line its share of the
// undocumented expense, keyed by the line's share of total factory cost.
func distributeExpenseByFactoryCost(lineFactoryUSD []float64, totalExpenseUSD float64) []float64 {
	shares := make([]float64, len(lineFactoryUSD))

	var totalFactory float64
	for _, v := range lineFactoryUSD {
		totalFactory += v
	}
	if totalFactory == 0 {
		return shares
	}

	for i, v := range lineFactoryUSD {
		shares[i] = v / totalFactory * totalExpenseUSD
	}
	return shares
}

// distributeShippingByUnits splits freight equally per unit across every
// line, independent of volume or cost. It returns the per-unit amount.
func distributeShippingByUnits(lineUnits []int, shippingUSD float64) float64 {
	var totalUnits int
	for _, u := range lineUnits {
		totalUnits += u
	}
	if totalUnits == 0 {
		return 0
	}
	return shippingUSD / float64(totalUnits)
}
