package indicator

// MACD windows, standard 12/26/9 configuration.
const (
	macdFastWindow   = 12
	macdSlowWindow   = 26
	macdSignalWindow = 9
)

// MACD returns the most recent values of the convergence line (fast EMA minus
// slow EMA) and its signal line (EMA of the convergence line).
func MACD(prices []float64) (macd, signal float64) {
	if len(prices) == 0 {
		return 0, 0
	}

	fast := EMA(prices, macdFastWindow)
	slow := EMA(prices, macdSlowWindow)

	diff := make([]float64, len(prices))
	for i := range prices {
		diff[i] = fast[i] - slow[i]
	}

	sig := EMA(diff, macdSignalWindow)
	return diff[len(diff)-1], sig[len(sig)-1]
}
