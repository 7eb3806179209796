// Package yahoo implements the market data gateway against Yahoo Finance:
// quote and chart data through the finance-go client, fundamentals through
// the quoteSummary endpoint, and headlines through the RSS feed.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/dwhitmore/finlens/internal/core"
	"github.com/go-resty/resty/v2"
	"github.com/piquette/finance-go/equity"
)

const (
	summaryBaseURL = "https://query1.finance.yahoo.com/v10/finance/quoteSummary"
	feedBaseURL    = "https://feeds.finance.yahoo.com/rss/2.0/headline"

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
)

// validSymbol matches stock symbols like AAPL, MSFT, RELIANCE.NS, 0700.HK
var validSymbol = regexp.MustCompile(`^[A-Za-z0-9\-]{1,10}(\.[A-Za-z]{1,4})?$`)

// validateSymbol checks if a symbol has valid format
func validateSymbol(symbol string) error {
	if symbol == "" {
		return core.ErrEmptyTicker
	}
	if len(symbol) > 20 || !validSymbol.MatchString(symbol) {
		return core.WrapError(core.ErrMalformedData, fmt.Errorf("invalid symbol format: %s", symbol))
	}
	return nil
}

// Yahoo implements gateway.Provider against Yahoo Finance.
type Yahoo struct {
	client     *http.Client
	rest       *resty.Client
	summaryURL string
	feedURL    string
}

// New creates a new Yahoo gateway.
func New() *Yahoo {
	rest := resty.New()
	rest.SetTimeout(30 * time.Second)
	rest.SetHeader("User-Agent", userAgent)

	return &Yahoo{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		rest:       rest,
		summaryURL: summaryBaseURL,
		feedURL:    feedBaseURL,
	}
}

func (y *Yahoo) Name() string {
	return "yahoo"
}

// Info fetches company metadata and fundamental metrics. Name, market cap,
// PE and PB come from the quote endpoint; sector, industry and the financial
// ratios from quoteSummary. A quoteSummary failure degrades those fields to
// absent rather than failing the whole call.
func (y *Yahoo) Info(ctx context.Context, symbol string) (*core.Fundamentals, error) {
	if err := validateSymbol(symbol); err != nil {
		return nil, err
	}

	q, err := equity.Get(symbol)
	if err != nil {
		return nil, core.WrapError(core.ErrFundamentalsUnavailable, err)
	}
	if q == nil {
		return nil, core.ErrFundamentalsUnavailable
	}

	f := &core.Fundamentals{
		Name:   q.LongName,
		Sector: "N/A", Industry: "N/A",
	}
	if f.Name == "" {
		f.Name = q.ShortName
	}
	if f.Name == "" {
		f.Name = "N/A"
	}
	if q.MarketCap > 0 {
		f.MarketCap = core.Value(float64(q.MarketCap))
	}
	if q.TrailingPE != 0 {
		f.PE = core.Value(q.TrailingPE)
	}
	if q.PriceToBook != 0 {
		f.PB = core.Value(q.PriceToBook)
	}

	if err := y.fillSummary(ctx, symbol, f); err != nil {
		// Profile and ratios stay absent; the quote fields above are enough
		// to proceed with a partially populated report.
		return f, nil
	}

	return f, nil
}

// quoteSummary response types. Numeric fields arrive as {raw, fmt} objects.
type rawValue struct {
	Raw *float64 `json:"raw"`
}

func (r rawValue) metric() core.Metric {
	if r.Raw == nil {
		return core.Metric{}
	}
	return core.Value(*r.Raw)
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []summaryResult `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

type summaryResult struct {
	AssetProfile struct {
		Sector   string `json:"sector"`
		Industry string `json:"industry"`
	} `json:"assetProfile"`
	FinancialData struct {
		TotalRevenue   rawValue `json:"totalRevenue"`
		GrossProfits   rawValue `json:"grossProfits"`
		ReturnOnEquity rawValue `json:"returnOnEquity"`
		DebtToEquity   rawValue `json:"debtToEquity"`
	} `json:"financialData"`
	DefaultKeyStatistics struct {
		PriceToBook rawValue `json:"priceToBook"`
	} `json:"defaultKeyStatistics"`
	SummaryDetail struct {
		TrailingPE rawValue `json:"trailingPE"`
		MarketCap  rawValue `json:"marketCap"`
	} `json:"summaryDetail"`
}

func (y *Yahoo) fillSummary(ctx context.Context, symbol string, f *core.Fundamentals) error {
	url := fmt.Sprintf("%s/%s?modules=assetProfile,summaryDetail,financialData,defaultKeyStatistics",
		y.summaryURL, symbol)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := y.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching quote summary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result quoteSummaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	if result.QuoteSummary.Error != nil {
		return fmt.Errorf("yahoo error: %s", result.QuoteSummary.Error.Description)
	}
	if len(result.QuoteSummary.Result) == 0 {
		return fmt.Errorf("no summary data for symbol: %s", symbol)
	}

	r := result.QuoteSummary.Result[0]
	if r.AssetProfile.Sector != "" {
		f.Sector = r.AssetProfile.Sector
	}
	if r.AssetProfile.Industry != "" {
		f.Industry = r.AssetProfile.Industry
	}
	f.Revenue = r.FinancialData.TotalRevenue.metric()
	f.GrossProfit = r.FinancialData.GrossProfits.metric()
	f.ROE = r.FinancialData.ReturnOnEquity.metric()
	f.DebtToEquity = r.FinancialData.DebtToEquity.metric()

	// Prefer summary values when the quote endpoint left these out
	if !f.PE.Valid {
		f.PE = r.SummaryDetail.TrailingPE.metric()
	}
	if !f.PB.Valid {
		f.PB = r.DefaultKeyStatistics.PriceToBook.metric()
	}
	if !f.MarketCap.Valid {
		f.MarketCap = r.SummaryDetail.MarketCap.metric()
	}

	return nil
}
