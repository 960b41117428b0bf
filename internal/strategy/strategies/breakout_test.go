package strategies

import (
	"context"
	"testing"
	"time"

	"nseQuantBot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakout_Annotate(t *testing.T) {
	s, err := NewBreakout(Config{BreakoutLookback: 2})
	require.NoError(t, err)

	base := time.Date(2025, 1, 6, 9, 15, 0, 0, time.UTC)
	mkBar := func(i int, high, low, close float64) *domain.Bar {
		return &domain.Bar{
			Time: base.Add(time.Duration(i) * time.Hour),
			High: high, Low: low, Close: close,
		}
	}

	bars := []*domain.Bar{
		mkBar(0, 10, 9, 9.5),
		mkBar(1, 11, 9, 10),
		mkBar(2, 12, 10, 12), // close 12 > prior 2-bar high 11: breakout up
		mkBar(3, 12, 8, 8),   // close 8 < prior 2-bar low 9: breakout down
	}

	rows, err := s.Annotate(context.Background(), bars)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, 0, rows[0].Signal.(int))
	assert.Equal(t, 0, rows[1].Signal.(int))
	assert.Equal(t, domain.SignalBuy, rows[2].Signal.(int))
	assert.Equal(t, domain.SignalSell, rows[3].Signal.(int))
}

func TestRegistry(t *testing.T) {
	for _, name := range Names() {
		s, err := New(name, Config{})
		require.NoError(t, err, name)
		assert.Equal(t, name, s.Name())
		assert.Greater(t, s.RequiredBars(), 0, name)
	}

	_, err := New("does_not_exist", Config{})
	require.Error(t, err)

	_, err = New("pairs_trading", Config{})
	require.Error(t, err)
}
