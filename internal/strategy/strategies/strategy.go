package strategies

import (
	"fmt"
	"math"

	"nseQuantBot/internal/domain"
	"nseQuantBot/internal/ports"
)

// Config holds the tunable parameters for all built-in signal generators.
// Zero values fall back to the conventional defaults via the Default*
// constants, so a partially filled Config is usable.
type Config struct {
	ShortMAPeriod int // moving_average fast SMA (default 20)
	LongMAPeriod  int // moving_average slow SMA (default 50)

	RSIPeriod     int     // rsi lookback (default 14)
	RSIOversold   float64 // rsi buy threshold (default 30)
	RSIOverbought float64 // rsi sell threshold (default 70)

	MACDFastSpan   int // macd fast EMA span (default 12)
	MACDSlowSpan   int // macd slow EMA span (default 26)
	MACDSignalSpan int // macd signal line span (default 9)

	MomentumWindow int // momentum lookback (default 10)

	BreakoutLookback int // breakout channel lookback (default 20)

	MeanReversionPeriod int     // mean_reversion band period (default 20)
	MeanReversionWidth  float64 // band width in standard deviations (default 2)

	PairsLookback int // pairs_trading z-score lookback (default 20)
}

// Conventional defaults, matching the generators' published parameterizations.
const (
	DefaultShortMAPeriod       = 20
	DefaultLongMAPeriod        = 50
	DefaultRSIPeriod           = 14
	DefaultRSIOversold         = 30.0
	DefaultRSIOverbought       = 70.0
	DefaultMACDFastSpan        = 12
	DefaultMACDSlowSpan        = 26
	DefaultMACDSignalSpan      = 9
	DefaultMomentumWindow      = 10
	DefaultBreakoutLookback    = 20
	DefaultMeanReversionPeriod = 20
	DefaultMeanReversionWidth  = 2.0
	DefaultPairsLookback       = 20
)

// New constructs a registered signal generator by name. pairs_trading is
// not constructible here because it needs a reference bar series; use
// NewPairsTrading directly.
func New(name string, cfg Config) (ports.SignalGenerator, error) {
	switch name {
	case "moving_average":
		return NewMovingAverage(cfg)
	case "rsi":
		return NewRSI(cfg)
	case "macd":
		return NewMACD(cfg)
	case "momentum":
		return NewMomentum(cfg)
	case "breakout":
		return NewBreakout(cfg)
	case "mean_reversion":
		return NewMeanReversion(cfg)
	default:
		return nil, fmt.Errorf("unknown strategy %q (available: %v)", name, Names())
	}
}

// Names lists the generators constructible via New, in registry order.
func Names() []string {
	return []string{"moving_average", "rsi", "macd", "momentum", "breakout", "mean_reversion"}
}

// annotate zips bars and their per-bar signals into driver rows.
func annotate(bars []*domain.Bar, signals []int) []domain.SignalRow {
	rows := make([]domain.SignalRow, len(bars))
	for i, b := range bars {
		rows[i] = domain.SignalRow{Time: b.Time, Close: b.Close, Signal: signals[i]}
	}
	return rows
}

// compare emits +1 where a > b and -1 where a < b. Positions where either
// side is NaN (indicator warmup) or the sides are equal emit hold.
func compare(a, b []float64) []int {
	out := make([]int, len(a))
	for i := range a {
		switch {
		case math.IsNaN(a[i]) || math.IsNaN(b[i]):
		case a[i] > b[i]:
			out[i] = domain.SignalBuy
		case a[i] < b[i]:
			out[i] = domain.SignalSell
		}
	}
	return out
}

func defaultInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func defaultFloat(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
