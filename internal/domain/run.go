package domain

import "time"

// BacktestRun is the persisted record of one completed backtest.
type BacktestRun struct {
	ID             string    // UUID assigned when the run is saved
	Symbol         string    // Instrument the run was executed against
	Strategy       string    // Name of the signal generator used
	Interval       string    // Bar interval of the input series
	InitialCapital float64   // Starting cash
	FinalValue     float64   // Terminal valuation at the last close
	TotalTrades    int       // Number of executed transitions
	CreatedAt      time.Time // Time the run was saved
	Trades         []Trade   // Full trade log, in execution order
}
