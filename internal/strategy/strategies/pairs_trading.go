package strategies

import (
	"context"
	"fmt"
	"math"

	"nseQuantBot/internal/domain"
	"nseQuantBot/internal/strategy/indicators"
)

// PairsTrading implements the spread reversion strategy over two instruments.
// The close spread between the traded series and a reference series is
// normalized to a rolling z-score: buy bias when the spread is stretched low
// (z < -1, traded leg cheap), sell bias when stretched high (z > 1).
//
// Only the traded leg is executed; the reference series is a benchmark, not
// a second position (the portfolio models a single instrument).
type PairsTrading struct {
	lookback int
	refBars  []*domain.Bar
}

// NewPairsTrading creates a pairs generator against a fixed reference series.
// The reference must align bar-for-bar with the traded series handed to
// Annotate.
func NewPairsTrading(cfg Config, refBars []*domain.Bar) (*PairsTrading, error) {
	lookback := defaultInt(cfg.PairsLookback, DefaultPairsLookback)
	if lookback <= 1 {
		return nil, fmt.Errorf("pairs lookback must be greater than 1, got %d", lookback)
	}
	if len(refBars) == 0 {
		return nil, fmt.Errorf("pairs trading requires a non-empty reference series")
	}
	return &PairsTrading{lookback: lookback, refBars: refBars}, nil
}

func (s *PairsTrading) Name() string { return "pairs_trading" }

func (s *PairsTrading) RequiredBars() int { return s.lookback }

func (s *PairsTrading) Annotate(ctx context.Context, bars []*domain.Bar) ([]domain.SignalRow, error) {
	if len(bars) != len(s.refBars) {
		return nil, fmt.Errorf("pairs_trading: traded series has %d bars, reference has %d", len(bars), len(s.refBars))
	}

	spread := make([]float64, len(bars))
	for i := range bars {
		spread[i] = bars[i].Close - s.refBars[i].Close
	}
	mean, err := indicators.SMA(spread, s.lookback)
	if err != nil {
		return nil, fmt.Errorf("pairs_trading: %w", err)
	}
	std, err := indicators.RollingStd(spread, s.lookback)
	if err != nil {
		return nil, fmt.Errorf("pairs_trading: %w", err)
	}

	signals := make([]int, len(bars))
	for i := range bars {
		if math.IsNaN(mean[i]) || math.IsNaN(std[i]) || std[i] == 0 {
			continue
		}
		z := (spread[i] - mean[i]) / std[i]
		switch {
		case z > 1:
			signals[i] = domain.SignalSell
		case z < -1:
			signals[i] = domain.SignalBuy
		}
	}
	return annotate(bars, signals), nil
}
