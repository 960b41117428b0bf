package backtest

import (
	"testing"
	"time"

	"nseQuantBot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tradeLog(prices ...float64) []domain.Trade {
	base := time.Date(2025, 1, 6, 9, 15, 0, 0, time.UTC)
	trades := make([]domain.Trade, len(prices))
	for i, p := range prices {
		action := domain.Buy
		if i%2 == 1 {
			action = domain.Sell
		}
		trades[i] = domain.Trade{Time: base.Add(time.Duration(i) * time.Hour), Action: action, Price: p}
	}
	return trades
}

func TestAnalyze(t *testing.T) {
	// two round trips: +10% then -10%
	trades := tradeLog(100, 110, 100, 90)
	result := Analyze(trades, 100000, 99000)

	assert.Equal(t, 4, result.TotalTrades)
	assert.Equal(t, 2, result.RoundTrips)
	assert.Equal(t, 1, result.WinningTrades)
	assert.Equal(t, 1, result.LosingTrades)
	assert.Equal(t, 0.5, result.WinRate)
	assert.False(t, result.OpenPosition)

	// realized equity: 100000 -> 110000 -> 99000
	assert.InDelta(t, -1000, result.TotalProfit, 1e-9)
	assert.InDelta(t, 0.1, result.MaxDrawdown, 1e-9)
	assert.InDelta(t, -0.01, result.ReturnOnInvestment, 1e-9)
}

func TestAnalyze_OpenPosition(t *testing.T) {
	trades := tradeLog(100, 110, 105)
	result := Analyze(trades, 100000, 120000)

	assert.Equal(t, 3, result.TotalTrades)
	assert.Equal(t, 1, result.RoundTrips)
	assert.True(t, result.OpenPosition)
}

func TestAnalyze_EmptyLog(t *testing.T) {
	result := Analyze(nil, 100000, 100000)

	assert.Zero(t, result.TotalTrades)
	assert.Zero(t, result.RoundTrips)
	assert.Zero(t, result.WinRate)
	assert.Zero(t, result.MaxDrawdown)
	assert.Zero(t, result.ReturnOnInvestment)
	assert.False(t, result.OpenPosition)
}

func TestRoundTrips(t *testing.T) {
	trades := tradeLog(100, 120, 80, 100, 50)
	rts := RoundTrips(trades)

	require.Len(t, rts, 2)
	assert.InDelta(t, 0.2, rts[0].Return, 1e-9)
	assert.InDelta(t, 0.25, rts[1].Return, 1e-9)
	assert.Equal(t, 100.0, rts[0].EntryPrice)
	assert.Equal(t, 120.0, rts[0].ExitPrice)
}
