package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/vitos/nordic_stock_data/internal/domain"
	"go.uber.org/zap"
)

type cachedListing struct {
	Day         time.Time
	Instruments []domain.Instrument
}

// MarketService answers instrument listing queries, fetching each market from
// the provider at most once per calendar day. Listings are cached per single
// market so a request for new markets never refetches already covered ones.
type MarketService struct {
	source  domain.MarketDataSource
	logger  *zap.Logger
	cache   map[domain.Market]cachedListing
	mu      sync.Mutex
	timeNow func() time.Time // For testing
}

func NewMarketService(source domain.MarketDataSource, logger *zap.Logger) *MarketService {
	return &MarketService{
		source:  source,
		logger:  logger,
		cache:   make(map[domain.Market]cachedListing),
		timeNow: time.Now,
	}
}

// GetMarketInstruments returns the union of instruments listed on the
// requested markets, deduplicated by ID. An empty market set yields an empty
// result without touching the network.
func (s *MarketService) GetMarketInstruments(ctx context.Context, markets []domain.Market) ([]domain.Instrument, error) {
	if len(markets) == 0 {
		return nil, nil
	}

	// Check-fetch-store runs under the lock so concurrent callers cannot
	// fetch the same market twice.
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timeNow()

	for _, m := range markets {
		if entry, ok := s.cache[m]; ok && domain.SameDay(entry.Day, now) {
			continue
		}

		instruments, err := s.source.FetchMarketInstruments(ctx, m)
		if err != nil {
			return nil, &domain.FetchError{Op: "fetch instruments for " + m.Label(), Err: err}
		}

		s.logger.Info("Fetched market listing",
			zap.String("market", m.Label()),
			zap.Int("instruments", len(instruments)))

		s.cache[m] = cachedListing{Day: now, Instruments: instruments}
	}

	seen := make(map[string]bool)
	var result []domain.Instrument
	for _, m := range markets {
		for _, in := range s.cache[m].Instruments {
			if seen[in.ID] {
				continue
			}
			seen[in.ID] = true
			result = append(result, in)
		}
	}

	return result, nil
}
