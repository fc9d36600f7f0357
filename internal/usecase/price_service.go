package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/vitos/nordic_stock_data/internal/domain"
	"go.uber.org/zap"
)

type cachedSeries struct {
	Range  domain.DateRange
	Series *domain.PriceSeries
}

// PriceService serves historical price queries. It keeps one fetched range
// per instrument and answers any request contained in that range from
// memory; a request outside it replaces the entry wholesale. Ranges are
// never merged.
type PriceService struct {
	source domain.MarketDataSource
	logger *zap.Logger
	cache  map[string]cachedSeries
	mu     sync.Mutex
}

func NewPriceService(source domain.MarketDataSource, logger *zap.Logger) *PriceService {
	return &PriceService{
		source: source,
		logger: logger,
		cache:  make(map[string]cachedSeries),
	}
}

// GetPriceSeries returns the price observations of an instrument within
// [from, to], ordered ascending. The range is validated before any I/O.
func (s *PriceService) GetPriceSeries(ctx context.Context, instrumentID string, from, to time.Time) (*domain.PriceSeries, error) {
	requested, err := domain.NewDateRange(from, to)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.cache[instrumentID]; ok && entry.Range.Covers(requested) {
		return entry.Series.Slice(from, to), nil
	}

	series, err := s.source.FetchPriceHistory(ctx, instrumentID, from, to)
	if err != nil {
		// The previous entry, if any, stays valid for its own range.
		return nil, &domain.FetchError{Op: "fetch price history for " + instrumentID, Err: err}
	}

	s.logger.Info("Fetched price history",
		zap.String("instrument", instrumentID),
		zap.Int("observations", len(series.Observations)))

	s.cache[instrumentID] = cachedSeries{Range: requested, Series: series}

	return series.Slice(from, to), nil
}
