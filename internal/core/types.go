package core

import (
	"strconv"
	"time"
)

// PricePoint is a single daily closing observation.
type PricePoint struct {
	Date  time.Time
	Close float64
}

// Closes extracts closing prices from a chronologically ascending series.
func Closes(series []PricePoint) []float64 {
	closes := make([]float64, len(series))
	for i, p := range series {
		closes[i] = p.Close
	}
	return closes
}

// Metric is a numeric fundamental attribute that may be absent.
type Metric struct {
	Value float64
	Valid bool
}

// Value creates a present metric.
func Value(v float64) Metric {
	return Metric{Value: v, Valid: true}
}

// String renders the metric, or "N/A" when the provider did not supply it.
func (m Metric) String() string {
	if !m.Valid {
		return "N/A"
	}
	return strconv.FormatFloat(m.Value, 'f', -1, 64)
}

// Fundamentals holds the company attributes shown on the analysis page.
// Numeric attributes are supplied entirely by the market data gateway;
// anything the gateway could not provide renders as "N/A".
type Fundamentals struct {
	Name     string
	Sector   string
	Industry string

	MarketCap    Metric
	Revenue      Metric
	GrossProfit  Metric
	PE           Metric
	PB           Metric
	ROE          Metric
	DebtToEquity Metric
}

// PlaceholderFundamentals returns fundamentals with every attribute absent.
func PlaceholderFundamentals() Fundamentals {
	return Fundamentals{Name: "N/A", Sector: "N/A", Industry: "N/A"}
}

// NewsItem represents a single news headline.
type NewsItem struct {
	Title       string    `json:"title"`
	Publisher   string    `json:"publisher"`
	URL         string    `json:"url,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

// TrendLabel classifies the moving-average crossover.
type TrendLabel string

const (
	TrendBullish      TrendLabel = "Bullish"
	TrendBearish      TrendLabel = "Bearish"
	TrendInsufficient TrendLabel = "Insufficient Data"
	TrendUnavailable  TrendLabel = "N/A"
)

// MomentumLabel classifies the relative-strength oscillator.
type MomentumLabel string

const (
	MomentumOverbought  MomentumLabel = "Overbought"
	MomentumOversold    MomentumLabel = "Oversold"
	MomentumNeutral     MomentumLabel = "Neutral"
	MomentumUnavailable MomentumLabel = "N/A"
)

// ConvergenceLabel classifies the MACD line against its signal line.
type ConvergenceLabel string

const (
	ConvergenceBullish     ConvergenceLabel = "Bullish Momentum"
	ConvergenceBearish     ConvergenceLabel = "Bearish Momentum"
	ConvergenceUnavailable ConvergenceLabel = "N/A"
)

// TechnicalSignals is the indicator engine output: three independent
// classifications plus the raw oscillator value.
type TechnicalSignals struct {
	Trend       TrendLabel       `json:"trend"`
	Momentum    MomentumLabel    `json:"momentum"`
	Convergence ConvergenceLabel `json:"convergence"`
	RSI         float64          `json:"rsi"`
}

// UnavailableSignals is the degraded value used when price history could not
// be fetched or indicator computation failed.
func UnavailableSignals() TechnicalSignals {
	return TechnicalSignals{
		Trend:       TrendUnavailable,
		Momentum:    MomentumUnavailable,
		Convergence: ConvergenceUnavailable,
		RSI:         0,
	}
}

// Stage identifies a pipeline stage for degradation reporting.
type Stage string

const (
	StageFundamentals Stage = "fundamentals"
	StageNews         Stage = "news"
	StageTechnicals   Stage = "technicals"
	StageNarrative    Stage = "narrative"
)

// Degradation records a pipeline stage that fell back to a placeholder value
// instead of aborting the analysis.
type Degradation struct {
	Stage  Stage  `json:"stage"`
	Code   string `json:"code"`
	Detail string `json:"detail,omitempty"`
}

// Report is the complete result of one analysis request. All fields are
// transient; nothing persists beyond the request/response cycle.
type Report struct {
	ID           string           `json:"id"`
	Symbol       string           `json:"symbol"`
	Fundamentals Fundamentals     `json:"fundamentals"`
	News         []NewsItem       `json:"news"`
	NewsText     string           `json:"news_text"`
	Signals      TechnicalSignals `json:"signals"`
	Narrative    string           `json:"narrative"`
	Degraded     []Degradation    `json:"degraded,omitempty"`
	GeneratedAt  time.Time        `json:"generated_at"`
}

// StageDegraded reports whether the given stage fell back to a placeholder.
func (r *Report) StageDegraded(stage Stage) bool {
	for _, d := range r.Degraded {
		if d.Stage == stage {
			return true
		}
	}
	return false
}
