package domain

import "time"

// Signal codes emitted by signal generators.
const (
	SignalBuy  = 1  // buy bias
	SignalSell = -1 // sell bias
	SignalHold = 0  // no action
)

// SignalRow is one timestamped row of an annotated price series: the input
// unit consumed by the backtest driver. Rows must already be in
// chronological order; the driver performs no sorting or deduplication.
//
// Signal is deliberately untyped: upstream generators may deliver an int, a
// float (possibly NaN during indicator warmup), or a one-element slice
// depending on call site. The driver normalizes it with the same scalar
// coercion rule the portfolio applies to prices, treating anything that does
// not resolve to a usable number as hold.
type SignalRow struct {
	Time   time.Time // Opaque ordering label, copied onto trade records
	Close  float64   // Close price used for fills and terminal valuation
	Signal any       // +1, -1, 0, NaN or a length-1 container thereof
}
