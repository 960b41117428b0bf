package backtest

import (
	"time"

	"nseQuantBot/internal/domain"
)

// Result holds the summary statistics of a completed run.
type Result struct {
	InitialCapital     float64
	FinalValue         float64
	TotalTrades        int     // Executed transitions (BUY and SELL each count)
	RoundTrips         int     // Completed BUY→SELL pairs
	WinningTrades      int
	LosingTrades       int
	WinRate            float64
	TotalProfit        float64 // Realized profit over completed round trips
	MaxDrawdown        float64 // Deepest peak-to-trough drop of realized equity
	ReturnOnInvestment float64
	OpenPosition       bool // Whether the run ended still invested
	Trades             []domain.Trade
}

// RoundTrip is one completed BUY→SELL pair extracted from a trade log.
type RoundTrip struct {
	EntryTime  time.Time
	ExitTime   time.Time
	EntryPrice float64
	ExitPrice  float64
	Return     float64 // Fractional return, (exit-entry)/entry
}

// Analyze computes summary statistics from a run's trade log and terminal
// valuation. The all-in/all-out model makes pairing trivial: trades strictly
// alternate BUY, SELL, BUY, ... with at most one unmatched BUY at the end.
func Analyze(trades []domain.Trade, initialCapital, finalValue float64) *Result {
	result := &Result{
		InitialCapital: initialCapital,
		FinalValue:     finalValue,
		TotalTrades:    len(trades),
		Trades:         trades,
	}

	equity := initialCapital
	peak := initialCapital

	for _, rt := range RoundTrips(trades) {
		result.RoundTrips++
		if rt.Return > 0 {
			result.WinningTrades++
		} else {
			result.LosingTrades++
		}

		equity *= 1 + rt.Return
		if equity > peak {
			peak = equity
		}
		if peak > 0 {
			if dd := (peak - equity) / peak; dd > result.MaxDrawdown {
				result.MaxDrawdown = dd
			}
		}
	}

	result.TotalProfit = equity - initialCapital
	if result.RoundTrips > 0 {
		result.WinRate = float64(result.WinningTrades) / float64(result.RoundTrips)
	}
	if initialCapital > 0 {
		result.ReturnOnInvestment = (finalValue - initialCapital) / initialCapital
	}
	result.OpenPosition = len(trades)%2 == 1

	return result
}

// RoundTrips pairs a trade log into completed BUY→SELL round trips,
// dropping a trailing unmatched BUY.
func RoundTrips(trades []domain.Trade) []RoundTrip {
	var out []RoundTrip
	for i := 0; i+1 < len(trades); i += 2 {
		entry, exit := trades[i], trades[i+1]
		if entry.Action != domain.Buy || exit.Action != domain.Sell {
			continue
		}
		out = append(out, RoundTrip{
			EntryTime:  entry.Time,
			ExitTime:   exit.Time,
			EntryPrice: entry.Price,
			ExitPrice:  exit.Price,
			Return:     (exit.Price - entry.Price) / entry.Price,
		})
	}
	return out
}
