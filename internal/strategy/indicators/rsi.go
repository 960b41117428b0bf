package indicators

import (
	"fmt"
	"math"
)

// RSI computes the Relative Strength Index over the given period using
// rolling-mean average gain/loss. Warmup positions (fewer than period+1
// values) hold NaN. A window with no losses yields 100, no gains yields 0,
// and a completely flat window is neutral at 50.
func RSI(values []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("RSI period must be positive, got %d", period)
	}
	out := warmup(len(values), period+1)
	if len(values) <= period {
		return out, nil
	}

	gains := make([]float64, len(values))
	losses := make([]float64, len(values))
	for i := 1; i < len(values); i++ {
		change := values[i] - values[i-1]
		if change > 0 {
			gains[i] = change
		} else {
			losses[i] = -change
		}
	}

	var gainSum, lossSum float64
	for i := 1; i < len(values); i++ {
		gainSum += gains[i]
		lossSum += losses[i]
		if i > period {
			gainSum -= gains[i-period]
			lossSum -= losses[i-period]
		}
		if i < period {
			continue
		}
		avgGain := gainSum / float64(period)
		avgLoss := lossSum / float64(period)
		switch {
		case avgLoss == 0 && avgGain == 0:
			out[i] = 50
		case avgLoss == 0:
			out[i] = 100
		default:
			rs := avgGain / avgLoss
			out[i] = 100 - (100 / (1 + rs))
		}
	}

	// keep values inside bounds against float drift
	for i := range out {
		if !math.IsNaN(out[i]) {
			if out[i] > 100 {
				out[i] = 100
			} else if out[i] < 0 {
				out[i] = 0
			}
		}
	}
	return out, nil
}
