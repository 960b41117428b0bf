package strategies

import (
	"context"
	"testing"

	"nseQuantBot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPairsTrading_Validation(t *testing.T) {
	_, err := NewPairsTrading(Config{}, nil)
	require.Error(t, err)

	_, err = NewPairsTrading(Config{PairsLookback: 1}, barsFromCloses(1, 2))
	require.Error(t, err)
}

func TestPairsTrading_Annotate(t *testing.T) {
	ref := barsFromCloses(100, 100, 100, 100, 100, 100)
	s, err := NewPairsTrading(Config{PairsLookback: 3}, ref)
	require.NoError(t, err)

	// spread oscillates around zero, then stretches high on the last bar
	bars := barsFromCloses(99, 101, 100, 99, 101, 110)
	rows, err := s.Annotate(context.Background(), bars)
	require.NoError(t, err)
	require.Len(t, rows, len(bars))

	// stretched spread means the traded leg is rich: sell bias
	assert.Equal(t, domain.SignalSell, rows[5].Signal.(int))
	// warmup rows hold
	assert.Equal(t, 0, rows[0].Signal.(int))
	assert.Equal(t, 0, rows[1].Signal.(int))
}

func TestPairsTrading_LengthMismatch(t *testing.T) {
	s, err := NewPairsTrading(Config{}, barsFromCloses(1, 2, 3))
	require.NoError(t, err)

	_, err = s.Annotate(context.Background(), barsFromCloses(1, 2))
	require.Error(t, err)
}
