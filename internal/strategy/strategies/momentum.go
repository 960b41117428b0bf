package strategies

import (
	"context"
	"fmt"
	"math"

	"nseQuantBot/internal/domain"
	"nseQuantBot/internal/strategy/indicators"
)

// Momentum implements the rate-of-change strategy: buy bias while the close
// exceeds the close of window bars ago, sell bias while below it.
type Momentum struct {
	window int
}

// NewMomentum creates a momentum sign generator.
func NewMomentum(cfg Config) (*Momentum, error) {
	window := defaultInt(cfg.MomentumWindow, DefaultMomentumWindow)
	if window <= 0 {
		return nil, fmt.Errorf("momentum window must be positive, got %d", window)
	}
	return &Momentum{window: window}, nil
}

func (s *Momentum) Name() string { return "momentum" }

func (s *Momentum) RequiredBars() int { return s.window + 1 }

func (s *Momentum) Annotate(ctx context.Context, bars []*domain.Bar) ([]domain.SignalRow, error) {
	momentum, err := indicators.Momentum(domain.Closes(bars), s.window)
	if err != nil {
		return nil, fmt.Errorf("momentum: %w", err)
	}
	signals := make([]int, len(bars))
	for i, m := range momentum {
		switch {
		case math.IsNaN(m):
		case m > 0:
			signals[i] = domain.SignalBuy
		case m < 0:
			signals[i] = domain.SignalSell
		}
	}
	return annotate(bars, signals), nil
}
