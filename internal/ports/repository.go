package ports

import (
	"context"

	"nseQuantBot/internal/domain"
)

// RunRepository defines the interface for storing and retrieving completed
// backtest runs and their trade logs.
type RunRepository interface {
	// SaveRun persists a run together with its trade log and returns the
	// assigned run ID.
	SaveRun(ctx context.Context, run *domain.BacktestRun) (string, error)
	// FindRuns retrieves the most recent runs for a symbol, up to a limit.
	// An empty symbol matches all runs.
	FindRuns(ctx context.Context, symbol string, limit int) ([]*domain.BacktestRun, error)
	// FindTrades retrieves the trade log of a run in execution order.
	FindTrades(ctx context.Context, runID string) ([]domain.Trade, error)
}
