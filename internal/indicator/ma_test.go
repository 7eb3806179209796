package indicator

import (
	"math"
	"testing"
)

func TestSMA_Calculate(t *testing.T) {
	prices := []float64{10, 11, 12, 13, 14, 15}

	sma := SMA(prices, 3)

	// SMA(3) for [10,11,12,13,14,15]:
	// [0] = (10+11+12)/3 = 11
	// [1] = (11+12+13)/3 = 12
	// [2] = (12+13+14)/3 = 13
	// [3] = (13+14+15)/3 = 14

	expected := []float64{11, 12, 13, 14}

	if len(sma) != len(expected) {
		t.Fatalf("expected %d values, got %d", len(expected), len(sma))
	}

	for i, v := range expected {
		if sma[i] != v {
			t.Errorf("sma[%d] = %f, want %f", i, sma[i], v)
		}
	}
}

func TestSMA_NotEnoughData(t *testing.T) {
	prices := []float64{10, 11}
	sma := SMA(prices, 5)

	if len(sma) != 0 {
		t.Errorf("expected empty slice, got %d values", len(sma))
	}
}

func TestEMA_SeededWithFirstPrice(t *testing.T) {
	prices := []float64{10, 11, 12, 13, 14, 15}
	ema := EMA(prices, 3)

	if len(ema) != len(prices) {
		t.Fatalf("expected %d values, got %d", len(prices), len(ema))
	}

	if ema[0] != 10 {
		t.Errorf("first EMA should equal first price, got %f", ema[0])
	}

	// k = 2/(3+1) = 0.5
	if !almostEqual(ema[1], 10.5, 1e-9) {
		t.Errorf("ema[1] = %f, want 10.5", ema[1])
	}
	if !almostEqual(ema[2], 11.25, 1e-9) {
		t.Errorf("ema[2] = %f, want 11.25", ema[2])
	}

	// Subsequent EMAs should trend upward for an increasing series
	for i := 1; i < len(ema); i++ {
		if ema[i] <= ema[i-1] {
			t.Errorf("EMA should be increasing, ema[%d]=%f <= ema[%d]=%f", i, ema[i], i-1, ema[i-1])
		}
	}
}

func TestEMA_SinglePoint(t *testing.T) {
	ema := EMA([]float64{42}, 12)
	if len(ema) != 1 || ema[0] != 42 {
		t.Errorf("single-point EMA should be the point itself, got %v", ema)
	}
}

func TestEMA_Empty(t *testing.T) {
	ema := EMA(nil, 12)
	if len(ema) != 0 {
		t.Errorf("expected empty slice, got %d values", len(ema))
	}
}

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}
