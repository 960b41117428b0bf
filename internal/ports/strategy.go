package ports

import (
	"context"

	"nseQuantBot/internal/domain"
)

// SignalGenerator defines the interface for strategy modules. A generator
// annotates a historical bar series with one directional signal per
// timestamp; it never mutates the input bars.
type SignalGenerator interface {
	// Name returns the strategy's registry name (e.g., "moving_average").
	Name() string

	// RequiredBars returns the minimum number of bars needed before the
	// generator can emit a non-hold signal.
	RequiredBars() int

	// Annotate produces one SignalRow per input bar, in the same order.
	// Rows inside the warmup window carry a hold signal.
	Annotate(ctx context.Context, bars []*domain.Bar) ([]domain.SignalRow, error)
}
