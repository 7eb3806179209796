package main

import (
	"context"
	"fmt"
	"time"

	"github.com/dwhitmore/finlens/internal/analyst"
	"github.com/dwhitmore/finlens/internal/core"
	"github.com/dwhitmore/finlens/internal/gateway/yahoo"
	"github.com/dwhitmore/finlens/internal/llm/factory"
	"github.com/dwhitmore/finlens/internal/logger"
	"github.com/dwhitmore/finlens/internal/narrative"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var analyzeTimeout time.Duration

var analyzeCmd = &cobra.Command{
	Use:   "analyze [ticker]",
	Short: "Run a one-shot analysis for a ticker",
	Long:  "Fetch fundamentals, news and price history for a ticker, derive technical signals and print the generated analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 5*time.Minute, "overall analysis timeout")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	log := logger.Must(debug)
	defer log.Sync()

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	provider, err := factory.New(cfg.LLM)
	if err != nil {
		return fmt.Errorf("creating LLM provider: %w", err)
	}

	pipeline := analyst.New(
		yahoo.New(),
		narrative.NewGenerator(provider, log),
		log,
		nil,
		analyst.Config{
			HistoryPeriod: time.Duration(cfg.Gateway.HistoryDays) * 24 * time.Hour,
			NewsLimit:     cfg.Gateway.NewsLimit,
		},
	)

	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	report, err := pipeline.Analyze(ctx, args[0])
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	printReport(report)
	return nil
}

func printReport(r *core.Report) {
	f := r.Fundamentals

	fmt.Printf("=== %s (%s) ===\n\n", f.Name, r.Symbol)

	fmt.Println("Fundamentals")
	fmt.Printf("  Sector:           %s\n", f.Sector)
	fmt.Printf("  Industry:         %s\n", f.Industry)
	fmt.Printf("  Market Cap:       %s\n", f.MarketCap)
	fmt.Printf("  Revenue:          %s\n", f.Revenue)
	fmt.Printf("  Gross Profit:     %s\n", f.GrossProfit)
	fmt.Printf("  P/E Ratio:        %s\n", f.PE)
	fmt.Printf("  P/B Ratio:        %s\n", f.PB)
	fmt.Printf("  Return on Equity: %s\n", f.ROE)
	fmt.Printf("  Debt to Equity:   %s\n", f.DebtToEquity)
	fmt.Println()

	fmt.Println("Technical Signals")
	fmt.Printf("  Trend (SMA 50/200): %s\n", r.Signals.Trend)
	fmt.Printf("  Momentum (RSI 14):  %s (%.2f)\n", r.Signals.Momentum, r.Signals.RSI)
	fmt.Printf("  MACD:               %s\n", r.Signals.Convergence)
	fmt.Println()

	fmt.Println("Recent News")
	if len(r.News) == 0 {
		fmt.Println("  " + narrative.NoRecentNews)
	} else {
		for _, item := range r.News {
			fmt.Printf("  - %s (%s)\n", item.Title, item.Publisher)
		}
	}
	fmt.Println()

	fmt.Println("AI Analysis")
	if r.StageDegraded(core.StageNarrative) {
		fmt.Println("  The analysis narrative could not be generated.")
	} else {
		fmt.Println(r.Narrative)
	}

	if len(r.Degraded) > 0 {
		fmt.Println()
		fmt.Println("Warnings")
		for _, d := range r.Degraded {
			fmt.Printf("  - %s: %s\n", d.Stage, d.Code)
		}
	}
}
