package narrative

import (
	"strings"
	"testing"

	"github.com/dwhitmore/finlens/internal/core"
)

func TestNewsText_Empty(t *testing.T) {
	if got := NewsText(nil); got != "No major recent news available." {
		t.Errorf("unexpected placeholder: %q", got)
	}
}

func TestNewsText_JoinsTitles(t *testing.T) {
	items := []core.NewsItem{
		{Title: "First headline", Publisher: "Reuters"},
		{Title: "Second headline", Publisher: "Bloomberg"},
	}

	got := NewsText(items)
	if got != "First headline\nSecond headline" {
		t.Errorf("unexpected news text: %q", got)
	}
}

func TestNewsText_CapsAtFive(t *testing.T) {
	items := make([]core.NewsItem, 8)
	for i := range items {
		items[i] = core.NewsItem{Title: "headline"}
	}

	got := NewsText(items)
	if n := strings.Count(got, "headline"); n != 5 {
		t.Errorf("expected 5 titles, got %d", n)
	}
}

func TestBuildPrompt_Sections(t *testing.T) {
	f := core.Fundamentals{
		Name:      "Apple Inc.",
		Sector:    "Technology",
		Industry:  "Consumer Electronics",
		MarketCap: core.Value(3450000000000),
		PE:        core.Value(37.3),
	}
	s := core.TechnicalSignals{
		Trend:       core.TrendBullish,
		Momentum:    core.MomentumNeutral,
		Convergence: core.ConvergenceBullish,
		RSI:         56.789,
	}

	prompt := BuildPrompt(f, NewsText(nil), s)

	for _, want := range []string{
		"You are a professional equity research analyst.",
		"Company: Apple Inc.",
		"Sector: Technology",
		"Market Cap: 3450000000000",
		"PE: 37.3",
		"Revenue: N/A",
		"Debt to Equity: N/A",
		"No major recent news available.",
		"SMA Trend: Bullish",
		"RSI: Neutral (56.79)",
		"MACD: Bullish Momentum",
		"7. Final Verdict: Bullish / Bearish / Neutral",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q\n---\n%s", want, prompt)
		}
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	f := core.PlaceholderFundamentals()
	s := core.UnavailableSignals()

	if BuildPrompt(f, NoRecentNews, s) != BuildPrompt(f, NoRecentNews, s) {
		t.Error("prompt assembly must be deterministic")
	}
}

func TestBuildPrompt_DegradedSignals(t *testing.T) {
	prompt := BuildPrompt(core.PlaceholderFundamentals(), NoRecentNews, core.UnavailableSignals())

	if !strings.Contains(prompt, "SMA Trend: N/A") {
		t.Error("degraded trend should render N/A")
	}
	if !strings.Contains(prompt, "RSI: N/A (0.00)") {
		t.Error("degraded oscillator should render N/A with value 0")
	}
}
