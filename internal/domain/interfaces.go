package domain

import (
	"context"
	"time"
)

// MarketDataSource is the provider port implemented by the transport adapter.
type MarketDataSource interface {
	FetchMarketInstruments(ctx context.Context, market Market) ([]Instrument, error)
	FetchPriceHistory(ctx context.Context, instrumentID string, from, to time.Time) (*PriceSeries, error)
}
