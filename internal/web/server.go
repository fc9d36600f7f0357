package web

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vitos/nordic_stock_data/internal/usecase"
	"go.uber.org/zap"
)

type Server struct {
	router  *http.ServeMux
	server  *http.Server
	markets *usecase.MarketService
	prices  *usecase.PriceService
	logger  *zap.Logger
}

func NewServer(
	port int,
	markets *usecase.MarketService,
	prices *usecase.PriceService,
	logger *zap.Logger,
) *Server {
	s := &Server{
		router:  http.NewServeMux(),
		markets: markets,
		prices:  prices,
		logger:  logger,
	}
	s.routes()
	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.router,
	}
	return s
}

func (s *Server) routes() {
	// Market catalog
	s.router.HandleFunc("GET /api/markets", s.handleListMarkets)

	// Instrument listing (with optional name filter)
	s.router.HandleFunc("GET /api/instruments", s.handleListInstruments)

	// Price history
	s.router.HandleFunc("GET /api/series", s.handleGetSeries)

	// Status
	s.router.HandleFunc("GET /status", s.handleStatus)
}

func (s *Server) Start() error {
	s.logger.Info("Starting web server", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
