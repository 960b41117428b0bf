package indicators

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSMA(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	got, err := SMA(values, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{math.NaN(), 1.5, 2.5, 3.5}
	for i := range want {
		if math.IsNaN(want[i]) != math.IsNaN(got[i]) {
			t.Errorf("index %d: want NaN=%v, got %v", i, math.IsNaN(want[i]), got[i])
			continue
		}
		if !math.IsNaN(want[i]) && !almostEqual(got[i], want[i]) {
			t.Errorf("index %d: want %v, got %v", i, want[i], got[i])
		}
	}

	if _, err := SMA(values, 0); err == nil {
		t.Error("expected error for non-positive period")
	}
}

func TestSMA_ShorterThanPeriod(t *testing.T) {
	got, err := SMA([]float64{1, 2}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range got {
		if !math.IsNaN(v) {
			t.Errorf("index %d: want NaN inside warmup, got %v", i, v)
		}
	}
}

func TestEMA(t *testing.T) {
	// span 3 gives multiplier 0.5
	got, err := EMA([]float64{2, 4, 4}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{2, 3, 3.5}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("index %d: want %v, got %v", i, want[i], got[i])
		}
	}
}

func TestRollingStd(t *testing.T) {
	got, err := RollingStd([]float64{1, 2, 3, 4}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(got[0]) {
		t.Errorf("index 0: want NaN, got %v", got[0])
	}
	// sample std of any adjacent pair differing by 1 is sqrt(0.5)
	want := math.Sqrt(0.5)
	for i := 1; i < len(got); i++ {
		if !almostEqual(got[i], want) {
			t.Errorf("index %d: want %v, got %v", i, want, got[i])
		}
	}
}

func TestRollingMaxMin(t *testing.T) {
	values := []float64{1, 3, 2, 5}

	maxs, err := RollingMax(values, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(maxs[0]) || maxs[1] != 3 || maxs[2] != 3 || maxs[3] != 5 {
		t.Errorf("unexpected rolling max: %v", maxs)
	}

	mins, err := RollingMin(values, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(mins[0]) || mins[1] != 1 || mins[2] != 2 || mins[3] != 2 {
		t.Errorf("unexpected rolling min: %v", mins)
	}
}

func TestMomentum(t *testing.T) {
	got, err := Momentum([]float64{1, 2, 4, 8}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(got[0]) || !math.IsNaN(got[1]) {
		t.Errorf("want NaN warmup, got %v", got[:2])
	}
	if got[2] != 3 || got[3] != 6 {
		t.Errorf("unexpected momentum: %v", got)
	}
}

func TestShift(t *testing.T) {
	got := Shift([]float64{1, 2, 3})
	if !math.IsNaN(got[0]) || got[1] != 1 || got[2] != 2 {
		t.Errorf("unexpected shift: %v", got)
	}
}

func TestRSI(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		period int
		// expectations on the last value
		want float64
	}{
		{name: "only gains", values: []float64{1, 2, 3}, period: 2, want: 100},
		{name: "only losses", values: []float64{3, 2, 1}, period: 2, want: 0},
		{name: "balanced", values: []float64{1, 2, 1}, period: 2, want: 50},
		{name: "flat", values: []float64{5, 5, 5}, period: 2, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RSI(tt.values, tt.period)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			last := got[len(got)-1]
			if !almostEqual(last, tt.want) {
				t.Errorf("want %v, got %v", tt.want, last)
			}
			for i := 0; i < tt.period; i++ {
				if !math.IsNaN(got[i]) {
					t.Errorf("index %d: want NaN warmup, got %v", i, got[i])
				}
			}
		})
	}

	if _, err := RSI([]float64{1, 2, 3}, 0); err == nil {
		t.Error("expected error for non-positive period")
	}
}
