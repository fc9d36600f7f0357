package tests

import (
	"context"
	"time"

	"github.com/vitos/nordic_stock_data/internal/domain"
)

// MockSource stands in for the provider across the integration tests.
type MockSource struct {
	Instruments     map[domain.Market][]domain.Instrument
	InstrumentCalls int
	HistoryCalls    int
	Err             error
}

func (m *MockSource) FetchMarketInstruments(ctx context.Context, market domain.Market) ([]domain.Instrument, error) {
	m.InstrumentCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Instruments[market], nil
}

func (m *MockSource) FetchPriceHistory(ctx context.Context, instrumentID string, from, to time.Time) (*domain.PriceSeries, error) {
	m.HistoryCalls++
	if m.Err != nil {
		return nil, m.Err
	}

	series := &domain.PriceSeries{Stock: instrumentID, Company: instrumentID + " Oyj"}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		series.Observations = append(series.Observations, domain.PriceObservation{
			Time:  time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.UTC),
			Value: 3.40 + float64(d.Day())/100,
		})
	}
	return series, nil
}
