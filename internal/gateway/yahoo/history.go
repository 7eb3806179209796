package yahoo

import (
	"context"
	"time"

	"github.com/dwhitmore/finlens/internal/core"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/shopspring/decimal"
)

// History fetches daily closes for the trailing period. The chart iterator
// yields bars oldest-first, matching the ascending-order contract.
func (y *Yahoo) History(ctx context.Context, symbol string, period time.Duration) ([]core.PricePoint, error) {
	if err := validateSymbol(symbol); err != nil {
		return nil, err
	}

	end := time.Now()
	start := end.Add(-period)

	params := &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}

	iter := chart.Get(params)

	var series []core.PricePoint
	for iter.Next() {
		bar := iter.Bar()

		// Prefer the adjusted close so splits and dividends don't distort
		// the long moving averages.
		price := bar.AdjClose
		if price.Equal(decimal.Zero) {
			price = bar.Close
		}

		close, _ := price.Float64()
		series = append(series, core.PricePoint{
			Date:  time.Unix(int64(bar.Timestamp), 0),
			Close: close,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, core.WrapError(core.ErrGatewayFailed, err)
	}

	if len(series) == 0 {
		return nil, core.ErrNoPriceData
	}

	return series, nil
}
