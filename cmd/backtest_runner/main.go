package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"

	"nseQuantBot/config"
	"nseQuantBot/internal/adapters/logger"
	"nseQuantBot/internal/backtest"
	"nseQuantBot/internal/strategy/strategies"
	"nseQuantBot/internal/utils"
)

// Runs every registered signal generator against a CSV bar file (written by
// cmd/fetch_bars) and prints a comparison table, best performer first.
func main() {
	csvPath := flag.String("csv", "", "Path to a bar CSV file (required)")
	flag.Parse()
	if *csvPath == "" {
		log.Fatal("FATAL: -csv flag is required")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	appLogger := logger.NewStdLogger(cfg.LogLevel)
	ctx := context.Background()

	bars, err := utils.ReadBarsFromCSV(*csvPath)
	if err != nil {
		log.Fatalf("FATAL: Failed to read bars from %s: %v", *csvPath, err)
	}
	appLogger.Info(ctx, "Loaded bars", map[string]interface{}{
		"file": *csvPath, "count": len(bars),
	})

	strategyCfg := strategies.Config{
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
	}

	type row struct {
		name   string
		result *backtest.Result
	}
	var rows []row

	for _, name := range strategies.Names() {
		generator, err := strategies.New(name, strategyCfg)
		if err != nil {
			log.Fatalf("FATAL: Failed to build strategy %s: %v", name, err)
		}
		if len(bars) < generator.RequiredBars() {
			appLogger.Warn(ctx, "Skipping strategy: not enough bars", map[string]interface{}{
				"strategy": name, "bars": len(bars), "required": generator.RequiredBars(),
			})
			continue
		}

		signalRows, err := generator.Annotate(ctx, bars)
		if err != nil {
			appLogger.Error(ctx, err, "Annotation failed", map[string]interface{}{"strategy": name})
			continue
		}

		pf, finalValue, err := backtest.Run(signalRows, cfg.InitialCapital)
		if err != nil {
			appLogger.Error(ctx, err, "Backtest failed", map[string]interface{}{"strategy": name})
			continue
		}
		rows = append(rows, row{name: name, result: backtest.Analyze(pf.TradeLog(), cfg.InitialCapital, finalValue)})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].result.FinalValue > rows[j].result.FinalValue
	})

	fmt.Printf("%-16s %10s %6s %8s %10s %12s\n",
		"STRATEGY", "TRADES", "RT", "WINRATE", "MAXDD", "FINAL")
	for _, r := range rows {
		fmt.Printf("%-16s %10d %6d %7.1f%% %9.2f%% %12.2f\n",
			r.name,
			r.result.TotalTrades,
			r.result.RoundTrips,
			r.result.WinRate*100,
			r.result.MaxDrawdown*100,
			r.result.FinalValue)
	}
}
