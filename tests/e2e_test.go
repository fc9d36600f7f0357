package tests

import (
	"context"
	"testing"
	"time"

	"github.com/vitos/nordic_stock_data/internal/domain"
	"github.com/vitos/nordic_stock_data/internal/usecase"
	"go.uber.org/zap"
)

// TestCatalogToSeriesFlow walks the full query path: catalog lookup,
// instrument listing, name filter, price history.
func TestCatalogToSeriesFlow(t *testing.T) {
	mockSrc := &MockSource{
		Instruments: map[domain.Market][]domain.Instrument{
			domain.HelsinkiLarge: {
				{ID: "HEX24311", Name: "NOKIA", FullName: "Nokia Oyj", LastPrice: 3.41},
				{ID: "HEX24312", Name: "OUT1V", FullName: "Outokumpu Oyj", LastPrice: 4.90},
			},
			domain.HelsinkiMid: {
				{ID: "HEX24401", Name: "MARAS", FullName: "Marimekko Oyj", LastPrice: 9.20},
			},
		},
	}

	marketService := usecase.NewMarketService(mockSrc, zap.NewNop())
	priceService := usecase.NewPriceService(mockSrc, zap.NewNop())
	ctx := context.Background()

	// 1. Resolve markets from the catalog
	large, ok := domain.MarketByLabel("HELSINKI_LARGE")
	if !ok {
		t.Fatal("HELSINKI_LARGE missing from catalog")
	}
	mid, ok := domain.MarketByLabel("HELSINKI_MID")
	if !ok {
		t.Fatal("HELSINKI_MID missing from catalog")
	}

	// 2. List instruments across both markets
	instruments, err := marketService.GetMarketInstruments(ctx, []domain.Market{large, mid})
	if err != nil {
		t.Fatalf("GetMarketInstruments failed: %v", err)
	}
	if len(instruments) != 3 {
		t.Fatalf("Expected 3 instruments, got %d", len(instruments))
	}

	// 3. Narrow down by name
	matches := usecase.FilterInstruments(instruments, "nokia")
	if len(matches) != 1 || matches[0].ID != "HEX24311" {
		t.Fatalf("Expected Nokia match, got %v", matches)
	}

	// 4. Fetch the price history for the match
	from := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2018, 1, 31, 0, 0, 0, 0, time.UTC)
	series, err := priceService.GetPriceSeries(ctx, matches[0].ID, from, to)
	if err != nil {
		t.Fatalf("GetPriceSeries failed: %v", err)
	}
	if len(series.Observations) != 31 {
		t.Fatalf("Expected 31 observations, got %d", len(series.Observations))
	}

	rows := series.Rows()
	if len(rows) != 31 {
		t.Fatalf("Expected 31 rows, got %d", len(rows))
	}
	if rows[0][0] >= rows[1][0] {
		t.Error("Expected rows ordered by timestamp ascending")
	}

	// 5. Repeat everything: all answers come from cache
	instrumentCalls, historyCalls := mockSrc.InstrumentCalls, mockSrc.HistoryCalls

	if _, err := marketService.GetMarketInstruments(ctx, []domain.Market{large, mid}); err != nil {
		t.Fatalf("GetMarketInstruments failed: %v", err)
	}
	if _, err := priceService.GetPriceSeries(ctx, matches[0].ID, from.AddDate(0, 0, 5), to.AddDate(0, 0, -5)); err != nil {
		t.Fatalf("GetPriceSeries failed: %v", err)
	}

	if mockSrc.InstrumentCalls != instrumentCalls || mockSrc.HistoryCalls != historyCalls {
		t.Errorf("Expected cache-only second pass, got %d/%d extra calls",
			mockSrc.InstrumentCalls-instrumentCalls, mockSrc.HistoryCalls-historyCalls)
	}
}
