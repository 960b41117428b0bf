package domain

import "time"

// Trade represents a single executed portfolio transition. Trades are
// append-only history: once recorded they are never mutated or removed.
type Trade struct {
	Time   time.Time // Timestamp of the signal row that triggered the fill
	Action Action    // BUY or SELL
	Price  float64   // Fill price (the row's close, no slippage model)
}
