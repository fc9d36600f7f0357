package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/vitos/nordic_stock_data/internal/domain"
	"github.com/vitos/nordic_stock_data/internal/infrastructure/nasdaq"
	"github.com/vitos/nordic_stock_data/internal/usecase"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Source struct {
		Endpoint  string `yaml:"endpoint"`
		TimeoutMs int    `yaml:"timeout_ms"`
	} `yaml:"source"`
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

	fmt.Printf("Testing DataFeedProxy Interaction...\n")
	fmt.Printf("Endpoint: %s\n", cfg.Source.Endpoint)

	adapter := nasdaq.NewAdapter(cfg.Source.Endpoint, time.Duration(cfg.Source.TimeoutMs)*time.Millisecond)
	ctx := context.Background()

	// 2. Check Instrument Listing
	instruments, err := adapter.FetchMarketInstruments(ctx, domain.HelsinkiLarge)
	if err != nil {
		fmt.Printf("❌ Failed to list instruments: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Instruments (HELSINKI_LARGE): %d\n", len(instruments))

	// 3. Check Name Filter
	matches := usecase.FilterInstruments(instruments, "nokia")
	if len(matches) == 0 {
		fmt.Printf("❌ No instrument matched 'nokia'\n")
		os.Exit(1)
	}
	fmt.Printf("✅ Filter 'nokia': %s (%s)\n", matches[0].FullName, matches[0].ID)

	// 4. Check Price History (last 30 days)
	to := time.Now()
	from := to.AddDate(0, 0, -30)
	series, err := adapter.FetchPriceHistory(ctx, matches[0].ID, from, to)
	if err != nil {
		fmt.Printf("❌ Failed to fetch price history: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Price History (%s): %d observations\n", series.Stock, len(series.Observations))
	if len(series.Observations) > 0 {
		first := series.Observations[0]
		last := series.Observations[len(series.Observations)-1]
		fmt.Printf("   First: %s = %.2f\n", first.Time.Format(domain.DateLayout), first.Value)
		fmt.Printf("   Last:  %s = %.2f\n", last.Time.Format(domain.DateLayout), last.Value)
	}
}
