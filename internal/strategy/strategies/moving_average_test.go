package strategies

import (
	"context"
	"testing"
	"time"

	"nseQuantBot/internal/backtest"
	"nseQuantBot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func barsFromCloses(closes ...float64) []*domain.Bar {
	base := time.Date(2025, 1, 6, 9, 15, 0, 0, time.UTC)
	bars := make([]*domain.Bar, len(closes))
	for i, c := range closes {
		bars[i] = &domain.Bar{
			Time:     base.Add(time.Duration(i) * time.Hour),
			Symbol:   "TEST.NS",
			Interval: "1h",
			Open:     c,
			High:     c,
			Low:      c,
			Close:    c,
			Volume:   1000,
		}
	}
	return bars
}

func TestNewMovingAverage_Validation(t *testing.T) {
	_, err := NewMovingAverage(Config{ShortMAPeriod: 50, LongMAPeriod: 20})
	require.Error(t, err)

	_, err = NewMovingAverage(Config{ShortMAPeriod: -1, LongMAPeriod: 20})
	require.Error(t, err)

	s, err := NewMovingAverage(Config{})
	require.NoError(t, err)
	assert.Equal(t, DefaultLongMAPeriod, s.RequiredBars())
}

func TestMovingAverage_Annotate(t *testing.T) {
	s, err := NewMovingAverage(Config{ShortMAPeriod: 2, LongMAPeriod: 3})
	require.NoError(t, err)

	// flat then rising: the short average overtakes the long one
	bars := barsFromCloses(10, 10, 10, 20, 30)
	rows, err := s.Annotate(context.Background(), bars)
	require.NoError(t, err)
	require.Len(t, rows, len(bars))

	signals := make([]int, len(rows))
	for i, r := range rows {
		signals[i] = r.Signal.(int)
		assert.Equal(t, bars[i].Close, rows[i].Close)
		assert.Equal(t, bars[i].Time, rows[i].Time)
	}
	assert.Equal(t, []int{0, 0, 0, 1, 1}, signals)
}

func TestMovingAverage_EndToEnd(t *testing.T) {
	s, err := NewMovingAverage(Config{ShortMAPeriod: 2, LongMAPeriod: 3})
	require.NoError(t, err)

	// rally then slide: one full round trip through the driver
	bars := barsFromCloses(10, 10, 10, 20, 30, 30, 10, 5, 5)
	rows, err := s.Annotate(context.Background(), bars)
	require.NoError(t, err)

	pf, finalValue, err := backtest.Run(rows, 100000)
	require.NoError(t, err)

	log := pf.TradeLog()
	require.NotEmpty(t, log)
	assert.Equal(t, domain.Buy, log[0].Action)
	assert.Equal(t, 20.0, log[0].Price)
	require.Len(t, log, 2)
	assert.Equal(t, domain.Sell, log[1].Action)
	assert.Greater(t, finalValue, 0.0)
}
