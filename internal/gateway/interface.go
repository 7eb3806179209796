// Package gateway defines the market data boundary. Providers supply company
// fundamentals, recent news headlines, and historical prices for a ticker;
// any call may fail and callers are expected to degrade, not abort.
package gateway

import (
	"context"
	"time"

	"github.com/dwhitmore/finlens/internal/core"
)

// Provider is the external market data collaborator.
type Provider interface {
	Name() string

	// Info returns company metadata and fundamental metrics. Attributes the
	// provider cannot supply are left absent, not zeroed.
	Info(ctx context.Context, symbol string) (*core.Fundamentals, error)

	// News returns up to limit headlines, most recent first.
	News(ctx context.Context, symbol string, limit int) ([]core.NewsItem, error)

	// History returns daily closes covering the trailing period,
	// chronologically ascending.
	History(ctx context.Context, symbol string, period time.Duration) ([]core.PricePoint, error)
}
