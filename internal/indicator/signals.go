// Package indicator derives trend and momentum signals from a chronologically
// ordered series of closing prices. All functions are pure: no I/O, no state.
package indicator

import "github.com/dwhitmore/finlens/internal/core"

const (
	// Moving-average crossover windows
	trendShortWindow = 50
	trendLongWindow  = 200

	// Oscillator window and classification bands
	rsiWindow           = 14
	overboughtThreshold = 70.0
	oversoldThreshold   = 30.0
)

// Trend classifies the 50/200 simple moving average crossover. A series
// shorter than the long window is classified explicitly as insufficient
// instead of comparing undefined averages.
func Trend(prices []float64) core.TrendLabel {
	if len(prices) < trendLongWindow {
		return core.TrendInsufficient
	}

	short := SMA(prices, trendShortWindow)
	long := SMA(prices, trendLongWindow)

	if short[len(short)-1] > long[len(long)-1] {
		return core.TrendBullish
	}
	return core.TrendBearish
}

// Momentum classifies a relative-strength oscillator value.
func Momentum(rsi float64) core.MomentumLabel {
	switch {
	case rsi > overboughtThreshold:
		return core.MomentumOverbought
	case rsi < oversoldThreshold:
		return core.MomentumOversold
	default:
		return core.MomentumNeutral
	}
}

// Convergence compares the MACD line against its signal line.
func Convergence(prices []float64) core.ConvergenceLabel {
	macd, signal := MACD(prices)
	if macd > signal {
		return core.ConvergenceBullish
	}
	return core.ConvergenceBearish
}

// Derive computes all three signal classifications plus the raw oscillator
// value. Defined for any series of length >= 1; a length-1 series produces
// degenerate but valid values.
func Derive(prices []float64) core.TechnicalSignals {
	rsi := RSI(prices, rsiWindow)
	return core.TechnicalSignals{
		Trend:       Trend(prices),
		Momentum:    Momentum(rsi),
		Convergence: Convergence(prices),
		RSI:         rsi,
	}
}
