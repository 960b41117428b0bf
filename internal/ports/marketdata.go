package ports

import (
	"context"

	"nseQuantBot/internal/domain"
)

// MarketDataClient defines the read-only interface for retrieving price data.
// This abstraction decouples the backtester from specific feed implementations
// (Yahoo Finance for NSE equities, Binance for crypto pairs).
type MarketDataClient interface {
	// GetBars retrieves historical OHLCV bars for the given symbol, in
	// chronological order. period is a lookback window (e.g., "3mo") and
	// interval the bar width (e.g., "1h", "1d").
	GetBars(ctx context.Context, symbol, period, interval string) ([]*domain.Bar, error)

	// GetLivePrice retrieves the most recent traded price for a symbol.
	GetLivePrice(ctx context.Context, symbol string) (float64, error)
}

// NewsClient supplies recent headlines for a symbol. Used only as a strategy
// selection hint; headline retrieval failures should not abort a backtest.
type NewsClient interface {
	// Headlines returns up to limit recent headlines for the symbol,
	// newest first.
	Headlines(ctx context.Context, symbol string, limit int) ([]string, error)
}
