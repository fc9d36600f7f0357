package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/vitos/nordic_stock_data/internal/domain"
	"github.com/vitos/nordic_stock_data/internal/usecase"
	"go.uber.org/zap"
)

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to encode response", zap.Error(err))
	}
}

type marketJSON struct {
	Label string `json:"label"`
	Code  string `json:"code"`
}

func (s *Server) handleListMarkets(w http.ResponseWriter, r *http.Request) {
	var markets []marketJSON
	for _, m := range domain.AllMarkets() {
		markets = append(markets, marketJSON{Label: m.Label(), Code: m.Code()})
	}
	s.writeJSON(w, markets)
}

// parseMarkets resolves a comma-separated list of segment labels or raw
// provider codes.
func parseMarkets(raw string) ([]domain.Market, error) {
	if raw == "" {
		return nil, errors.New("missing markets parameter")
	}

	var markets []domain.Market
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)

		if m, ok := domain.MarketByLabel(part); ok {
			markets = append(markets, m)
			continue
		}

		found := false
		for _, m := range domain.AllMarkets() {
			if m.Code() == part {
				markets = append(markets, m)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown market %q", part)
		}
	}

	return markets, nil
}

func (s *Server) handleListInstruments(w http.ResponseWriter, r *http.Request) {
	markets, err := parseMarkets(r.URL.Query().Get("markets"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	instruments, err := s.markets.GetMarketInstruments(r.Context(), markets)
	if err != nil {
		s.logger.Error("Failed to list instruments", zap.Error(err))
		http.Error(w, "upstream fetch failed", http.StatusBadGateway)
		return
	}

	if filter := r.URL.Query().Get("filter"); filter != "" {
		instruments = usecase.FilterInstruments(instruments, filter)
	}

	if instruments == nil {
		instruments = []domain.Instrument{}
	}
	s.writeJSON(w, instruments)
}

func (s *Server) handleGetSeries(w http.ResponseWriter, r *http.Request) {
	instrumentID := r.URL.Query().Get("instrument")
	if instrumentID == "" {
		http.Error(w, "missing instrument parameter", http.StatusBadRequest)
		return
	}

	rng, err := domain.ParseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	series, err := s.prices.GetPriceSeries(r.Context(), instrumentID, rng.From, rng.To)
	if err != nil {
		var fetchErr *domain.FetchError
		if errors.As(err, &fetchErr) {
			s.logger.Error("Failed to fetch price history", zap.Error(err))
			http.Error(w, "upstream fetch failed", http.StatusBadGateway)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, series)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}
