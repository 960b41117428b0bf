package strategies

import (
	"context"
	"fmt"
	"math"

	"nseQuantBot/internal/domain"
	"nseQuantBot/internal/strategy/indicators"
)

// Breakout implements the channel breakout strategy: buy bias when the close
// breaks above the prior lookback-bar high, sell bias when it breaks below
// the prior lookback-bar low. The channel is shifted by one bar so the
// current bar never breaks its own extreme.
type Breakout struct {
	lookback int
}

// NewBreakout creates a channel breakout generator.
func NewBreakout(cfg Config) (*Breakout, error) {
	lookback := defaultInt(cfg.BreakoutLookback, DefaultBreakoutLookback)
	if lookback <= 0 {
		return nil, fmt.Errorf("breakout lookback must be positive, got %d", lookback)
	}
	return &Breakout{lookback: lookback}, nil
}

func (s *Breakout) Name() string { return "breakout" }

func (s *Breakout) RequiredBars() int { return s.lookback + 1 }

func (s *Breakout) Annotate(ctx context.Context, bars []*domain.Bar) ([]domain.SignalRow, error) {
	highs := make([]float64, len(bars))
	lows := make([]float64, len(bars))
	for i, b := range bars {
		highs[i] = b.High
		lows[i] = b.Low
	}

	highMax, err := indicators.RollingMax(highs, s.lookback)
	if err != nil {
		return nil, fmt.Errorf("breakout: %w", err)
	}
	lowMin, err := indicators.RollingMin(lows, s.lookback)
	if err != nil {
		return nil, fmt.Errorf("breakout: %w", err)
	}
	priorHigh := indicators.Shift(highMax)
	priorLow := indicators.Shift(lowMin)

	signals := make([]int, len(bars))
	for i, b := range bars {
		switch {
		case math.IsNaN(priorHigh[i]) || math.IsNaN(priorLow[i]):
		case b.Close > priorHigh[i]:
			signals[i] = domain.SignalBuy
		case b.Close < priorLow[i]:
			signals[i] = domain.SignalSell
		}
	}
	return annotate(bars, signals), nil
}
