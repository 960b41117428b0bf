package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"nseQuantBot/internal/domain"
	"nseQuantBot/internal/ports"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Repository implements the ports.RunRepository interface using SQLite.
type Repository struct {
	db     *sql.DB
	logger ports.Logger
}

// Config holds configuration for the SQLite repository.
type Config struct {
	DBPath string
	Logger ports.Logger
}

// NewRepository creates a new SQLite repository instance.
func NewRepository(cfg Config) (*Repository, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required for SQLite repository")
	}
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = "./data/backtests.db" // Default path
	}

	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			err = fmt.Errorf("failed to create data directory '%s': %w", filepath.Dir(dbPath), err)
			cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
			return nil, err
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		err = fmt.Errorf("%w: failed to open database at '%s': %v", ports.ErrDBConnection, dbPath, err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		err = fmt.Errorf("%w: failed to ping database at '%s': %v", ports.ErrDBConnection, dbPath, err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}

	// SQLite handles concurrency internally; the Go driver benefits from a
	// single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	repo := &Repository{db: db, logger: cfg.Logger}

	if err := repo.initializeSchema(context.Background()); err != nil {
		db.Close()
		err = fmt.Errorf("failed to initialize database schema: %w", err)
		cfg.Logger.Error(context.Background(), err, "SQLite repository initialization failed")
		return nil, err
	}
	cfg.Logger.Info(context.Background(), "SQLite repository ready", map[string]interface{}{"path": dbPath})

	return repo, nil
}

// initializeSchema creates tables if they don't exist.
func (r *Repository) initializeSchema(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS backtest_runs (
		id TEXT PRIMARY KEY,
		symbol TEXT NOT NULL,
		strategy TEXT NOT NULL,
		interval TEXT NOT NULL,
		initial_capital REAL NOT NULL,
		final_value REAL NOT NULL,
		total_trades INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS backtest_trades (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL REFERENCES backtest_runs(id),
		ts TIMESTAMP NOT NULL,
		action TEXT NOT NULL,
		price REAL NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_backtest_runs_symbol_created ON backtest_runs (symbol, created_at);
	CREATE INDEX IF NOT EXISTS idx_backtest_trades_run ON backtest_trades (run_id);
	`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: %v", ports.ErrQueryFailed, err)
	}
	return nil
}

// SaveRun persists a run and its trade log in one transaction, returning
// the assigned run ID.
func (r *Repository) SaveRun(ctx context.Context, run *domain.BacktestRun) (string, error) {
	id := run.ID
	if id == "" {
		id = uuid.NewString()
	}
	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("%w: beginning transaction: %v", ports.ErrQueryFailed, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO backtest_runs (id, symbol, strategy, interval, initial_capital, final_value, total_trades, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, run.Symbol, run.Strategy, run.Interval, run.InitialCapital, run.FinalValue, len(run.Trades), createdAt)
	if err != nil {
		r.logger.Error(ctx, err, "Failed to insert backtest run", map[string]interface{}{"runID": id})
		return "", fmt.Errorf("%w: inserting run: %v", ports.ErrQueryFailed, err)
	}

	for _, trade := range run.Trades {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO backtest_trades (run_id, ts, action, price) VALUES (?, ?, ?, ?)`,
			id, trade.Time, string(trade.Action), trade.Price)
		if err != nil {
			r.logger.Error(ctx, err, "Failed to insert trade", map[string]interface{}{"runID": id})
			return "", fmt.Errorf("%w: inserting trade: %v", ports.ErrQueryFailed, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("%w: committing run: %v", ports.ErrQueryFailed, err)
	}

	r.logger.Info(ctx, "Backtest run saved", map[string]interface{}{
		"runID": id, "symbol": run.Symbol, "strategy": run.Strategy, "trades": len(run.Trades),
	})
	return id, nil
}

// FindRuns retrieves the most recent runs for a symbol, newest first. An
// empty symbol matches all runs.
func (r *Repository) FindRuns(ctx context.Context, symbol string, limit int) ([]*domain.BacktestRun, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, symbol, strategy, interval, initial_capital, final_value, total_trades, created_at
		  FROM backtest_runs`
	args := []any{}
	if symbol != "" {
		query += ` WHERE symbol = ?`
		args = append(args, symbol)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying runs: %v", ports.ErrQueryFailed, err)
	}
	defer rows.Close()

	var runs []*domain.BacktestRun
	for rows.Next() {
		run := &domain.BacktestRun{}
		if err := rows.Scan(&run.ID, &run.Symbol, &run.Strategy, &run.Interval,
			&run.InitialCapital, &run.FinalValue, &run.TotalTrades, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning run: %v", ports.ErrQueryFailed, err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating runs: %v", ports.ErrQueryFailed, err)
	}
	return runs, nil
}

// FindTrades retrieves the trade log of a run in execution order.
func (r *Repository) FindTrades(ctx context.Context, runID string) ([]domain.Trade, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT ts, action, price FROM backtest_trades WHERE run_id = ? ORDER BY id ASC`, runID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying trades: %v", ports.ErrQueryFailed, err)
	}
	defer rows.Close()

	var trades []domain.Trade
	for rows.Next() {
		var trade domain.Trade
		var action string
		if err := rows.Scan(&trade.Time, &action, &trade.Price); err != nil {
			return nil, fmt.Errorf("%w: scanning trade: %v", ports.ErrQueryFailed, err)
		}
		trade.Action = domain.Action(action)
		trades = append(trades, trade)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating trades: %v", ports.ErrQueryFailed, err)
	}
	return trades, nil
}

// Close closes the underlying database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}
