package strategies

import (
	"context"
	"fmt"

	"nseQuantBot/internal/domain"
	"nseQuantBot/internal/strategy/indicators"
)

// MovingAverage implements the SMA crossover strategy: buy bias while the
// short average sits above the long average, sell bias while below.
type MovingAverage struct {
	shortPeriod int
	longPeriod  int
}

// NewMovingAverage creates a moving-average crossover generator.
func NewMovingAverage(cfg Config) (*MovingAverage, error) {
	short := defaultInt(cfg.ShortMAPeriod, DefaultShortMAPeriod)
	long := defaultInt(cfg.LongMAPeriod, DefaultLongMAPeriod)
	if short <= 0 || long <= 0 {
		return nil, fmt.Errorf("moving average periods must be positive (short=%d, long=%d)", short, long)
	}
	if short >= long {
		return nil, fmt.Errorf("short MA period (%d) must be less than long MA period (%d)", short, long)
	}
	return &MovingAverage{shortPeriod: short, longPeriod: long}, nil
}

func (s *MovingAverage) Name() string { return "moving_average" }

func (s *MovingAverage) RequiredBars() int { return s.longPeriod }

func (s *MovingAverage) Annotate(ctx context.Context, bars []*domain.Bar) ([]domain.SignalRow, error) {
	closes := domain.Closes(bars)
	short, err := indicators.SMA(closes, s.shortPeriod)
	if err != nil {
		return nil, fmt.Errorf("moving_average: %w", err)
	}
	long, err := indicators.SMA(closes, s.longPeriod)
	if err != nil {
		return nil, fmt.Errorf("moving_average: %w", err)
	}
	return annotate(bars, compare(short, long)), nil
}
