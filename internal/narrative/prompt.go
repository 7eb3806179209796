// Package narrative turns a finished data-gathering pass into an analyst
// prompt and invokes the text-generation provider for the investment view.
package narrative

import (
	"fmt"
	"strings"

	"github.com/dwhitmore/finlens/internal/core"
)

// NoRecentNews is the placeholder embedded in the prompt when the news fetch
// fails or returns nothing.
const NoRecentNews = "No major recent news available."

// maxHeadlines bounds how many titles feed into the prompt.
const maxHeadlines = 5

// NewsText joins the most recent headline titles for prompt embedding.
// An empty list yields the fixed placeholder.
func NewsText(items []core.NewsItem) string {
	if len(items) == 0 {
		return NoRecentNews
	}

	var sb strings.Builder
	for i, item := range items {
		if i == maxHeadlines {
			break
		}
		sb.WriteString(item.Title)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// promptTemplate is a contract with the generator: the seven-section output
// structure is requested here and nowhere enforced. The generator may ignore
// it; its output is rendered verbatim.
const promptTemplate = `You are a professional equity research analyst.
Analyze this stock fundamentally and technically and give a final investment view.

Company: %s
Sector: %s
Industry: %s
Market Cap: %s
Revenue: %s
Profit: %s
PE: %s
PB: %s
ROE: %s
Debt to Equity: %s

News Headlines:
%s

Technicals:
SMA Trend: %s
RSI: %s (%.2f)
MACD: %s

Provide output in this structure:
1. Company Overview
2. Financial Health
3. Growth Outlook
4. Key Risks
5. News Sentiment
6. Technical Trend Summary
7. Final Verdict: Bullish / Bearish / Neutral`

// BuildPrompt deterministically formats the analyst prompt from the gathered
// fundamentals, the news block, and the derived technical signals.
func BuildPrompt(f core.Fundamentals, newsText string, s core.TechnicalSignals) string {
	return fmt.Sprintf(promptTemplate,
		f.Name,
		f.Sector,
		f.Industry,
		f.MarketCap,
		f.Revenue,
		f.GrossProfit,
		f.PE,
		f.PB,
		f.ROE,
		f.DebtToEquity,
		newsText,
		s.Trend,
		s.Momentum,
		s.RSI,
		s.Convergence,
	)
}
