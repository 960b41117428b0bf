package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"nseQuantBot/config"
	"nseQuantBot/internal/adapters/binanceclient"
	"nseQuantBot/internal/adapters/logger"
	"nseQuantBot/internal/adapters/yahoo"
	"nseQuantBot/internal/ports"
	"nseQuantBot/internal/utils"
)

// Fetches historical bars for the configured symbol and writes them to a
// CSV file under data/, for offline use by the backtest runner.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	appLogger := logger.NewStdLogger(cfg.LogLevel)
	ctx := context.Background()

	var feed ports.MarketDataClient
	if cfg.DataSource == "binance" {
		feed, err = binanceclient.New(binanceclient.Config{
			APIKey:     cfg.BinanceAPIKey,
			SecretKey:  cfg.BinanceSecretKey,
			UseTestnet: cfg.BinanceTestnet,
			Logger:     appLogger,
		})
	} else {
		feed, err = yahoo.New(yahoo.Config{Logger: appLogger})
	}
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize market data client: %v", err)
	}

	bars, err := feed.GetBars(ctx, cfg.Symbol, cfg.Period, cfg.Interval)
	if err != nil {
		log.Fatalf("FATAL: Failed to fetch bars: %v", err)
	}
	appLogger.Info(ctx, "Fetched bars", map[string]interface{}{
		"symbol": cfg.Symbol, "count": len(bars),
	})

	symbolSlug := strings.NewReplacer("^", "", ".", "_").Replace(cfg.Symbol)
	filename := fmt.Sprintf("data/%s_%s_%s_%s.csv",
		symbolSlug, cfg.Interval, cfg.Period, time.Now().Format("20060102"))
	if err := utils.WriteBarsToCSV(bars, filename); err != nil {
		log.Fatalf("FATAL: Failed to write CSV: %v", err)
	}
	appLogger.Info(ctx, "Saved bars", map[string]interface{}{"filename": filename})
}
