package indicators

import "fmt"

// EMA computes the exponential moving average with the given span, using
// the standard multiplier 2/(span+1). The series is seeded with the first
// value, so every position carries a value (no warmup NaNs); early values
// are simply less smoothed.
func EMA(values []float64, span int) ([]float64, error) {
	if span <= 0 {
		return nil, fmt.Errorf("EMA span must be positive, got %d", span)
	}
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out, nil
	}
	multiplier := 2.0 / float64(span+1)
	ema := values[0]
	out[0] = ema
	for i := 1; i < len(values); i++ {
		ema = (values[i]-ema)*multiplier + ema
		out[i] = ema
	}
	return out, nil
}
