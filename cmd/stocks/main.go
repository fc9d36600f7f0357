package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vitos/nordic_stock_data/internal/infrastructure/logger"
	"github.com/vitos/nordic_stock_data/internal/infrastructure/nasdaq"
	"github.com/vitos/nordic_stock_data/internal/usecase"
	"github.com/vitos/nordic_stock_data/internal/web"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Source struct {
		Endpoint  string `yaml:"endpoint"`
		TimeoutMs int    `yaml:"timeout_ms"`
	} `yaml:"source"`
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
}

func loadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func main() {
	// 1. Load Config
	cfg, err := loadConfig("config/config.yaml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Init Logger
	log, err := logger.NewLogger(cfg.Logging.Level)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// 3. Init Source Adapter
	adapter := nasdaq.NewAdapter(cfg.Source.Endpoint, time.Duration(cfg.Source.TimeoutMs)*time.Millisecond)

	// 4. Init Services
	marketService := usecase.NewMarketService(adapter, log)
	priceService := usecase.NewPriceService(adapter, log)

	// 5. Init Web Server
	port := cfg.Server.Port
	if port == 0 {
		port = 8080 // Default
	}
	server := web.NewServer(port, marketService, priceService, log)

	// 6. Start Server
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// 7. Wait for Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down...")
	server.Shutdown(context.Background())
}
