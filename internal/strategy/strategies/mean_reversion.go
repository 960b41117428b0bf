package strategies

import (
	"context"
	"fmt"
	"math"

	"nseQuantBot/internal/domain"
	"nseQuantBot/internal/strategy/indicators"
)

// MeanReversion implements the Bollinger band strategy: buy bias when the
// close drops below the lower band, sell bias when it rises above the upper
// band. Bands are a rolling mean plus/minus width standard deviations.
type MeanReversion struct {
	period int
	width  float64
}

// NewMeanReversion creates a Bollinger band reversion generator.
func NewMeanReversion(cfg Config) (*MeanReversion, error) {
	period := defaultInt(cfg.MeanReversionPeriod, DefaultMeanReversionPeriod)
	width := defaultFloat(cfg.MeanReversionWidth, DefaultMeanReversionWidth)
	if period <= 1 {
		return nil, fmt.Errorf("mean reversion period must be greater than 1, got %d", period)
	}
	if width <= 0 {
		return nil, fmt.Errorf("mean reversion band width must be positive, got %v", width)
	}
	return &MeanReversion{period: period, width: width}, nil
}

func (s *MeanReversion) Name() string { return "mean_reversion" }

func (s *MeanReversion) RequiredBars() int { return s.period }

func (s *MeanReversion) Annotate(ctx context.Context, bars []*domain.Bar) ([]domain.SignalRow, error) {
	closes := domain.Closes(bars)
	mean, err := indicators.SMA(closes, s.period)
	if err != nil {
		return nil, fmt.Errorf("mean_reversion: %w", err)
	}
	std, err := indicators.RollingStd(closes, s.period)
	if err != nil {
		return nil, fmt.Errorf("mean_reversion: %w", err)
	}

	signals := make([]int, len(bars))
	for i, c := range closes {
		if math.IsNaN(mean[i]) || math.IsNaN(std[i]) {
			continue
		}
		upper := mean[i] + s.width*std[i]
		lower := mean[i] - s.width*std[i]
		switch {
		case c < lower:
			signals[i] = domain.SignalBuy
		case c > upper:
			signals[i] = domain.SignalSell
		}
	}
	return annotate(bars, signals), nil
}
