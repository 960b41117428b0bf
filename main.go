package main

import (
	"context"
	"fmt"
	"log" // Use standard log only for initial fatal errors before logger is set up

	"nseQuantBot/config"
	"nseQuantBot/internal/adapters/binanceclient"
	"nseQuantBot/internal/adapters/logger"
	"nseQuantBot/internal/adapters/sqlite"
	"nseQuantBot/internal/adapters/yahoo"
	"nseQuantBot/internal/backtest"
	"nseQuantBot/internal/domain"
	"nseQuantBot/internal/ports"
	"nseQuantBot/internal/sentiment"
	"nseQuantBot/internal/strategy/strategies"
)

func main() {
	ctx := context.Background()

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	// 2. Initialize Logger
	appLogger := logger.NewStdLogger(cfg.LogLevel)
	appLogger.Info(ctx, "Logger initialized", map[string]interface{}{"level": cfg.LogLevel.String()})

	// 3. Initialize Repository (Database Adapter)
	repo, err := sqlite.NewRepository(sqlite.Config{
		DBPath: cfg.DBPath,
		Logger: appLogger,
	})
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize database repository: %v", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			appLogger.Error(ctx, err, "Error closing database repository")
		}
	}()

	// 4. Initialize Market Data Client
	yahooClient, err := yahoo.New(yahoo.Config{Logger: appLogger})
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Yahoo client: %v", err)
	}

	var feed ports.MarketDataClient = yahooClient
	if cfg.DataSource == "binance" {
		feed, err = binanceclient.New(binanceclient.Config{
			APIKey:     cfg.BinanceAPIKey,
			SecretKey:  cfg.BinanceSecretKey,
			UseTestnet: cfg.BinanceTestnet,
			Logger:     appLogger,
		})
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize Binance client: %v", err)
		}
	}

	// 5. Fetch historical bars
	bars, err := feed.GetBars(ctx, cfg.Symbol, cfg.Period, cfg.Interval)
	if err != nil {
		appLogger.Error(ctx, err, "FATAL: Failed to fetch historical bars",
			map[string]interface{}{"symbol": cfg.Symbol})
		log.Fatalf("FATAL: Failed to fetch historical bars: %v", err)
	}
	appLogger.Info(ctx, "Fetched historical bars", map[string]interface{}{
		"symbol": cfg.Symbol, "period": cfg.Period, "interval": cfg.Interval, "count": len(bars),
	})

	// 6. News sentiment hint (best effort; never aborts the run)
	strategyName := cfg.Strategy
	if cfg.NewsEnabled {
		report := newsReport(ctx, appLogger, yahooClient, cfg.Symbol, cfg.NewsMaxHeadlines)
		if strategyName == "auto" {
			strategyName = pickStrategy(report.Label)
			appLogger.Info(ctx, "Strategy selected from news sentiment", map[string]interface{}{
				"label": report.Label, "score": report.Score, "strategy": strategyName,
			})
		}
	} else if strategyName == "auto" {
		strategyName = "moving_average"
	}

	// 7. Build signal generator and annotate the series
	generator, err := strategies.New(strategyName, strategies.Config{
		ShortMAPeriod:       cfg.ShortMAPeriod,
		LongMAPeriod:        cfg.LongMAPeriod,
		RSIPeriod:           cfg.RSIPeriod,
		RSIOversold:         cfg.RSIOversold,
		RSIOverbought:       cfg.RSIOverbought,
		MACDFastSpan:        cfg.MACDFastSpan,
		MACDSlowSpan:        cfg.MACDSlowSpan,
		MACDSignalSpan:      cfg.MACDSignalSpan,
		MomentumWindow:      cfg.MomentumWindow,
		BreakoutLookback:    cfg.BreakoutLookback,
		MeanReversionPeriod: cfg.MeanReversionPeriod,
		MeanReversionWidth:  cfg.MeanReversionWidth,
	})
	if err != nil {
		log.Fatalf("FATAL: Failed to build strategy: %v", err)
	}
	if len(bars) < generator.RequiredBars() {
		log.Fatalf("FATAL: Only %d bars fetched; strategy %q needs at least %d",
			len(bars), generator.Name(), generator.RequiredBars())
	}

	rows, err := generator.Annotate(ctx, bars)
	if err != nil {
		log.Fatalf("FATAL: Failed to annotate series: %v", err)
	}

	// 8. Run the backtest
	pf, finalValue, err := backtest.Run(rows, cfg.InitialCapital)
	if err != nil {
		appLogger.Error(ctx, err, "FATAL: Backtest failed")
		log.Fatalf("FATAL: Backtest failed: %v", err)
	}

	result := backtest.Analyze(pf.TradeLog(), cfg.InitialCapital, finalValue)
	appLogger.Info(ctx, "Backtest complete", map[string]interface{}{
		"strategy":    generator.Name(),
		"trades":      result.TotalTrades,
		"roundTrips":  result.RoundTrips,
		"winRate":     fmt.Sprintf("%.2f%%", result.WinRate*100),
		"maxDrawdown": fmt.Sprintf("%.2f%%", result.MaxDrawdown*100),
		"finalValue":  fmt.Sprintf("%.2f", result.FinalValue),
		"roi":         fmt.Sprintf("%.2f%%", result.ReturnOnInvestment*100),
		"open":        result.OpenPosition,
	})
	for _, trade := range result.Trades {
		appLogger.Info(ctx, "Trade", map[string]interface{}{
			"time": trade.Time, "action": trade.Action, "price": trade.Price,
		})
	}

	// 9. Persist the run
	runID, err := repo.SaveRun(ctx, &domain.BacktestRun{
		Symbol:         cfg.Symbol,
		Strategy:       generator.Name(),
		Interval:       cfg.Interval,
		InitialCapital: cfg.InitialCapital,
		FinalValue:     finalValue,
		Trades:         pf.TradeLog(),
	})
	if err != nil {
		appLogger.Error(ctx, err, "Failed to persist backtest run")
		return
	}
	appLogger.Info(ctx, "Run persisted", map[string]interface{}{"runID": runID})
}

// newsReport fetches headlines and scores them. Headline failures degrade to
// a neutral report.
func newsReport(ctx context.Context, appLogger ports.Logger, news ports.NewsClient, symbol string, limit int) sentiment.Report {
	headlines, err := news.Headlines(ctx, symbol, limit)
	if err != nil {
		appLogger.Warn(ctx, "Headline fetch failed, assuming neutral sentiment",
			map[string]interface{}{"symbol": symbol, "error": err.Error()})
		return sentiment.Analyze(nil)
	}
	report := sentiment.Analyze(headlines)
	appLogger.Info(ctx, "News sentiment", map[string]interface{}{
		"symbol": symbol, "headlines": len(report.Headlines),
		"score": report.Score, "label": report.Label,
	})
	return report
}

// pickStrategy maps a sentiment label to a generator: trend-following on
// positive news, reversion on negative, crossover otherwise.
func pickStrategy(label sentiment.Label) string {
	switch label {
	case sentiment.Positive:
		return "momentum"
	case sentiment.Negative:
		return "mean_reversion"
	default:
		return "moving_average"
	}
}
