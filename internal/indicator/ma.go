package indicator

// SMA calculates Simple Moving Average
// Returns slice of length: len(prices) - period + 1
func SMA(prices []float64, period int) []float64 {
	if period <= 0 || len(prices) < period {
		return []float64{}
	}

	result := make([]float64, 0, len(prices)-period+1)

	// Calculate first SMA
	var sum float64
	for i := 0; i < period; i++ {
		sum += prices[i]
	}
	result = append(result, sum/float64(period))

	// Rolling calculation
	for i := period; i < len(prices); i++ {
		sum = sum - prices[i-period] + prices[i]
		result = append(result, sum/float64(period))
	}

	return result
}

// EMA calculates Exponential Moving Average with smoothing k = 2/(period+1).
// The series is seeded with the first price, so the result has the same
// length as the input and is defined for any non-empty series.
func EMA(prices []float64, period int) []float64 {
	if len(prices) == 0 {
		return []float64{}
	}

	k := 2.0 / float64(period+1)
	result := make([]float64, len(prices))
	result[0] = prices[0]

	for i := 1; i < len(prices); i++ {
		result[i] = prices[i]*k + result[i-1]*(1-k)
	}

	return result
}
