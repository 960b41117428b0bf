package indicators

import (
	"fmt"
	"math"
)

// Rolling-window helpers shared by the signal generators. Each function
// returns a series aligned with its input: positions inside the warmup
// window (fewer than period values available) hold NaN. NaN warmup values
// flow through strategy comparisons as "no signal", mirroring how the
// generators treat incomplete lookbacks.

// SMA computes the simple moving average over the given period.
func SMA(values []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("SMA period must be positive, got %d", period)
	}
	out := warmup(len(values), period)
	var sum float64
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		}
	}
	return out, nil
}

// RollingStd computes the rolling sample standard deviation over the given
// period.
func RollingStd(values []float64, period int) ([]float64, error) {
	if period <= 1 {
		return nil, fmt.Errorf("rolling std period must be greater than 1, got %d", period)
	}
	out := warmup(len(values), period)
	for i := period - 1; i < len(values); i++ {
		window := values[i-period+1 : i+1]
		var sum float64
		for _, v := range window {
			sum += v
		}
		mean := sum / float64(period)
		var variance float64
		for _, v := range window {
			variance += (v - mean) * (v - mean)
		}
		out[i] = math.Sqrt(variance / float64(period-1))
	}
	return out, nil
}

// RollingMax computes the rolling maximum over the given period.
func RollingMax(values []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("rolling max period must be positive, got %d", period)
	}
	out := warmup(len(values), period)
	for i := period - 1; i < len(values); i++ {
		max := values[i-period+1]
		for _, v := range values[i-period+2 : i+1] {
			if v > max {
				max = v
			}
		}
		out[i] = max
	}
	return out, nil
}

// RollingMin computes the rolling minimum over the given period.
func RollingMin(values []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("rolling min period must be positive, got %d", period)
	}
	out := warmup(len(values), period)
	for i := period - 1; i < len(values); i++ {
		min := values[i-period+1]
		for _, v := range values[i-period+2 : i+1] {
			if v < min {
				min = v
			}
		}
		out[i] = min
	}
	return out, nil
}

// Momentum computes the price change over the given window:
// values[i] - values[i-window].
func Momentum(values []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, fmt.Errorf("momentum window must be positive, got %d", window)
	}
	out := warmup(len(values), window+1)
	for i := window; i < len(values); i++ {
		out[i] = values[i] - values[i-window]
	}
	return out, nil
}

// Shift returns the series delayed by one position; out[0] is NaN.
func Shift(values []float64) []float64 {
	out := warmup(len(values), 2)
	if len(values) > 1 {
		copy(out[1:], values[:len(values)-1])
	}
	return out
}

// warmup allocates a series of length n with the first period-1 positions
// set to NaN.
func warmup(n, period int) []float64 {
	out := make([]float64, n)
	for i := 0; i < period-1 && i < n; i++ {
		out[i] = math.NaN()
	}
	return out
}
