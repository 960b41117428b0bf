package ports

import "errors"

// Standard application-level errors.
// Adapters and the core wrap underlying failures with these standard errors
// so callers can branch with errors.Is.
var (
	// Core backtest errors
	ErrCoercion       = errors.New("value could not be coerced to a single scalar")
	ErrEmptyInput     = errors.New("signal row sequence is empty")
	ErrInvalidCapital = errors.New("initial capital cannot be negative")

	// General Errors
	ErrUnknown            = errors.New("unknown error occurred")
	ErrInvalidRequest     = errors.New("invalid request parameters or format")
	ErrNotFound           = errors.New("resource not found")
	ErrTimeout            = errors.New("operation timed out")
	ErrContextCanceled    = errors.New("operation canceled via context")
	ErrConfigurationError = errors.New("invalid or missing configuration")

	// Market Data Specific Errors
	ErrFeedUnavailable  = errors.New("market data feed is unavailable")
	ErrConnectionFailed = errors.New("failed to connect to the market data feed")
	ErrRateLimited      = errors.New("API rate limit exceeded")
	ErrNoData           = errors.New("feed returned no data for the requested range")
	ErrUnknownSymbol    = errors.New("symbol not recognized by the feed")

	// Database Specific Errors
	ErrDuplicateEntry = errors.New("database record already exists")
	ErrDBConnection   = errors.New("database connection error")
	ErrQueryFailed    = errors.New("database query failed")
)
