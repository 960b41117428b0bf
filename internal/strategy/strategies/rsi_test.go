package strategies

import (
	"context"
	"testing"

	"nseQuantBot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRSI_Validation(t *testing.T) {
	_, err := NewRSI(Config{RSIPeriod: 14, RSIOversold: 70, RSIOverbought: 30})
	require.Error(t, err)

	_, err = NewRSI(Config{RSIPeriod: 14, RSIOversold: 30, RSIOverbought: 101})
	require.Error(t, err)

	s, err := NewRSI(Config{})
	require.NoError(t, err)
	assert.Equal(t, DefaultRSIPeriod+1, s.RequiredBars())
}

func TestRSI_Annotate(t *testing.T) {
	s, err := NewRSI(Config{RSIPeriod: 2, RSIOversold: 30, RSIOverbought: 70})
	require.NoError(t, err)

	// steady gains push RSI to 100 (sell bias), steady losses to 0 (buy bias)
	bars := barsFromCloses(10, 11, 12, 11, 10, 9)
	rows, err := s.Annotate(context.Background(), bars)
	require.NoError(t, err)
	require.Len(t, rows, len(bars))

	// warmup rows hold
	assert.Equal(t, 0, rows[0].Signal.(int))
	assert.Equal(t, 0, rows[1].Signal.(int))
	// index 2: two consecutive gains, RSI 100 -> sell
	assert.Equal(t, domain.SignalSell, rows[2].Signal.(int))
	// index 5: two consecutive losses, RSI 0 -> buy
	assert.Equal(t, domain.SignalBuy, rows[5].Signal.(int))
}
