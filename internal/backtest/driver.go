package backtest

import (
	"fmt"
	"time"

	"nseQuantBot/internal/domain"
	"nseQuantBot/internal/portfolio"
	"nseQuantBot/internal/ports"
)

// Run feeds a pre-signaled price series through a fresh portfolio and
// returns the portfolio (exposing the trade log) together with the terminal
// valuation at the final row's close.
//
// Rows are consumed in their given order, which is the authoritative time
// order; no sorting or deduplication happens here. Consecutive identical
// signals are debounced so a run of duplicates produces at most one
// transaction. A position left open by the last row stays open (unrealized,
// not force-closed).
//
// An uncoercible price at the moment of an attempted transition aborts the
// run; the returned portfolio still carries the trades executed up to the
// point of failure.
func Run(rows []domain.SignalRow, initialCapital float64) (*portfolio.Portfolio, float64, error) {
	if initialCapital < 0 {
		return nil, 0, fmt.Errorf("%w: %v", ports.ErrInvalidCapital, initialCapital)
	}
	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("%w: no terminal valuation is definable", ports.ErrEmptyInput)
	}

	pf := portfolio.New(initialCapital)
	lastSignal := domain.SignalHold

	for i, row := range rows {
		s := normalizeSignal(row.Signal)

		switch {
		case s == domain.SignalBuy && lastSignal != domain.SignalBuy:
			if err := pf.Buy(row.Close, row.Time); err != nil {
				return pf, 0, fmt.Errorf("buy at row %d (%s): %w", i, fmtTime(row.Time), err)
			}
			lastSignal = domain.SignalBuy
		case s == domain.SignalSell && lastSignal != domain.SignalSell:
			if err := pf.Sell(row.Close, row.Time); err != nil {
				return pf, 0, fmt.Errorf("sell at row %d (%s): %w", i, fmtTime(row.Time), err)
			}
			lastSignal = domain.SignalSell
		}
		// hold, or a repeat of the last acted-upon signal: no transition,
		// lastSignal unchanged
	}

	final, err := pf.Value(rows[len(rows)-1].Close)
	if err != nil {
		return pf, 0, fmt.Errorf("terminal valuation: %w", err)
	}
	return pf, final, nil
}

// normalizeSignal resolves a raw signal value to +1, -1 or 0. Anything that
// does not coerce to a usable scalar (NaN from indicator warmup, a
// multi-element container, an unexpected type) counts as hold rather than an
// error: a bad signal means "no action", only a bad price is fatal.
func normalizeSignal(v any) int {
	s, err := portfolio.ToScalar(v)
	if err != nil {
		return domain.SignalHold
	}
	switch s {
	case domain.SignalBuy:
		return domain.SignalBuy
	case domain.SignalSell:
		return domain.SignalSell
	default:
		return domain.SignalHold
	}
}

func fmtTime(t time.Time) string {
	return t.Format(time.RFC3339)
}
