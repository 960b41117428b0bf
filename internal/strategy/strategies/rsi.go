package strategies

import (
	"context"
	"fmt"
	"math"

	"nseQuantBot/internal/domain"
	"nseQuantBot/internal/strategy/indicators"
)

// RSI implements the oscillator strategy: buy bias when the index drops
// below the oversold threshold, sell bias when it rises above overbought.
type RSI struct {
	period     int
	oversold   float64
	overbought float64
}

// NewRSI creates an RSI threshold generator.
func NewRSI(cfg Config) (*RSI, error) {
	period := defaultInt(cfg.RSIPeriod, DefaultRSIPeriod)
	oversold := defaultFloat(cfg.RSIOversold, DefaultRSIOversold)
	overbought := defaultFloat(cfg.RSIOverbought, DefaultRSIOverbought)
	if period <= 0 {
		return nil, fmt.Errorf("RSI period must be positive, got %d", period)
	}
	if overbought <= oversold || oversold < 0 || overbought > 100 {
		return nil, fmt.Errorf("invalid RSI thresholds (oversold=%v, overbought=%v)", oversold, overbought)
	}
	return &RSI{period: period, oversold: oversold, overbought: overbought}, nil
}

func (s *RSI) Name() string { return "rsi" }

func (s *RSI) RequiredBars() int { return s.period + 1 }

func (s *RSI) Annotate(ctx context.Context, bars []*domain.Bar) ([]domain.SignalRow, error) {
	values, err := indicators.RSI(domain.Closes(bars), s.period)
	if err != nil {
		return nil, fmt.Errorf("rsi: %w", err)
	}
	signals := make([]int, len(bars))
	for i, v := range values {
		switch {
		case math.IsNaN(v):
		case v < s.oversold:
			signals[i] = domain.SignalBuy
		case v > s.overbought:
			signals[i] = domain.SignalSell
		}
	}
	return annotate(bars, signals), nil
}
