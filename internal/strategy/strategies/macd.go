package strategies

import (
	"context"
	"fmt"

	"nseQuantBot/internal/domain"
	"nseQuantBot/internal/strategy/indicators"
)

// MACD implements the moving average convergence/divergence strategy: buy
// bias while the MACD line sits above its signal line, sell bias while below.
type MACD struct {
	fastSpan   int
	slowSpan   int
	signalSpan int
}

// NewMACD creates a MACD crossover generator.
func NewMACD(cfg Config) (*MACD, error) {
	fast := defaultInt(cfg.MACDFastSpan, DefaultMACDFastSpan)
	slow := defaultInt(cfg.MACDSlowSpan, DefaultMACDSlowSpan)
	signal := defaultInt(cfg.MACDSignalSpan, DefaultMACDSignalSpan)
	if fast <= 0 || slow <= 0 || signal <= 0 {
		return nil, fmt.Errorf("MACD spans must be positive (fast=%d, slow=%d, signal=%d)", fast, slow, signal)
	}
	if fast >= slow {
		return nil, fmt.Errorf("MACD fast span (%d) must be less than slow span (%d)", fast, slow)
	}
	return &MACD{fastSpan: fast, slowSpan: slow, signalSpan: signal}, nil
}

func (s *MACD) Name() string { return "macd" }

func (s *MACD) RequiredBars() int { return s.slowSpan }

func (s *MACD) Annotate(ctx context.Context, bars []*domain.Bar) ([]domain.SignalRow, error) {
	closes := domain.Closes(bars)
	fast, err := indicators.EMA(closes, s.fastSpan)
	if err != nil {
		return nil, fmt.Errorf("macd: %w", err)
	}
	slow, err := indicators.EMA(closes, s.slowSpan)
	if err != nil {
		return nil, fmt.Errorf("macd: %w", err)
	}
	macd := make([]float64, len(closes))
	for i := range closes {
		macd[i] = fast[i] - slow[i]
	}
	signalLine, err := indicators.EMA(macd, s.signalSpan)
	if err != nil {
		return nil, fmt.Errorf("macd: %w", err)
	}
	return annotate(bars, compare(macd, signalLine)), nil
}
