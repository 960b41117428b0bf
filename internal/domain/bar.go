package domain

import "time"

// Bar represents a single OHLCV data point for one instrument.
type Bar struct {
	Time     time.Time // Start time of the interval
	Symbol   string    // Instrument symbol (e.g., "RELIANCE.NS")
	Interval string    // Bar interval (e.g., "1h", "1d")
	Open     float64   // Opening price
	High     float64   // Highest price
	Low      float64   // Lowest price
	Close    float64   // Closing price
	Volume   float64   // Traded volume
}

// Series is a time-labeled sequence of scalar values. A one-point Series is
// accepted anywhere a scalar price is expected (see portfolio.ToScalar).
type Series []Point

// Point is a single labeled value in a Series.
type Point struct {
	Time  time.Time
	Value float64
}

// Closes extracts the close prices of a bar slice, preserving order.
func Closes(bars []*Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}
	return out
}
