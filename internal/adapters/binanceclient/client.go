package binanceclient

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"nseQuantBot/internal/domain"
	"nseQuantBot/internal/ports"

	"github.com/adshao/go-binance/v2"
	"github.com/adshao/go-binance/v2/common"
)

// Client implements the ports.MarketDataClient interface for crypto pairs
// using the go-binance library. Only public market-data endpoints are used,
// so API keys are optional.
type Client struct {
	spotClient *binance.Client
	logger     ports.Logger
}

// Config holds configuration specific to the Binance client adapter.
type Config struct {
	APIKey     string
	SecretKey  string
	UseTestnet bool
	Logger     ports.Logger
}

// New creates a new Binance client adapter.
func New(cfg Config) (*Client, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required for Binance client")
	}

	binance.UseTestnet = cfg.UseTestnet
	client := binance.NewClient(cfg.APIKey, cfg.SecretKey)

	cfg.Logger.Info(context.Background(), "Binance client configured",
		map[string]interface{}{"testnet": cfg.UseTestnet})

	return &Client{spotClient: client, logger: cfg.Logger}, nil
}

// handleError translates common Binance API errors into standardized ports
// errors.
func (c *Client) handleError(ctx context.Context, err error, operation string) error {
	if err == nil {
		return nil
	}

	fields := map[string]interface{}{"operation": operation, "originalError": err.Error()}

	var apiErr *common.APIError
	if errors.As(err, &apiErr) {
		fields["apiErrorCode"] = apiErr.Code
		fields["apiErrorMessage"] = apiErr.Message

		var mappedErr error
		switch apiErr.Code {
		case -1003: // Too many requests
			mappedErr = ports.ErrRateLimited
		case -1121: // Invalid symbol
			mappedErr = ports.ErrUnknownSymbol
		case -1100, -1101, -1102, -1103, -1104, -1105, -1106: // Parameter errors
			mappedErr = ports.ErrInvalidRequest
		default:
			mappedErr = ports.ErrFeedUnavailable
		}
		c.logger.Error(ctx, err, "Binance API error", fields)
		return fmt.Errorf("%w: %s", mappedErr, apiErr.Message)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ports.ErrContextCanceled, err)
	}

	c.logger.Error(ctx, err, "Binance request failed", fields)
	return fmt.Errorf("%w: %v", ports.ErrConnectionFailed, err)
}

// GetBars retrieves historical klines for the given symbol, mapped to
// domain bars in chronological order. period is a lookback window like
// "3mo" or "7d"; interval a Binance kline interval like "1h".
func (c *Client) GetBars(ctx context.Context, symbol, period, interval string) ([]*domain.Bar, error) {
	start, err := periodStart(period)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrInvalidRequest, err)
	}

	klines, err := c.spotClient.NewKlinesService().
		Symbol(strings.ToUpper(symbol)).
		Interval(interval).
		StartTime(start.UnixMilli()).
		Limit(1000).
		Do(ctx)
	if err != nil {
		return nil, c.handleError(ctx, err, "GetBars")
	}
	if len(klines) == 0 {
		return nil, fmt.Errorf("%w: %s %s", ports.ErrNoData, symbol, interval)
	}

	bars := make([]*domain.Bar, 0, len(klines))
	for _, k := range klines {
		bar, err := toBar(k, symbol, interval)
		if err != nil {
			c.logger.Warn(ctx, "Skipping unparsable kline", map[string]interface{}{
				"symbol": symbol, "openTime": k.OpenTime, "error": err.Error(),
			})
			continue
		}
		bars = append(bars, bar)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w: %s returned no usable klines", ports.ErrNoData, symbol)
	}

	c.logger.Debug(ctx, "Fetched klines", map[string]interface{}{
		"symbol": symbol, "interval": interval, "count": len(bars),
	})
	return bars, nil
}

// GetLivePrice retrieves the last ticker price for a symbol.
func (c *Client) GetLivePrice(ctx context.Context, symbol string) (float64, error) {
	prices, err := c.spotClient.NewListPricesService().
		Symbol(strings.ToUpper(symbol)).
		Do(ctx)
	if err != nil {
		return 0, c.handleError(ctx, err, "GetLivePrice")
	}
	if len(prices) == 0 {
		return 0, fmt.Errorf("%w: no ticker price for %s", ports.ErrNoData, symbol)
	}
	price, err := strconv.ParseFloat(prices[0].Price, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: parsing ticker price %q: %v", ports.ErrUnknown, prices[0].Price, err)
	}
	return price, nil
}

// toBar converts a raw Binance kline (string-encoded prices) to a domain bar.
func toBar(k *binance.Kline, symbol, interval string) (*domain.Bar, error) {
	open, err := strconv.ParseFloat(k.Open, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing open %q: %w", k.Open, err)
	}
	high, err := strconv.ParseFloat(k.High, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing high %q: %w", k.High, err)
	}
	low, err := strconv.ParseFloat(k.Low, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing low %q: %w", k.Low, err)
	}
	closePrice, err := strconv.ParseFloat(k.Close, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing close %q: %w", k.Close, err)
	}
	volume, err := strconv.ParseFloat(k.Volume, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing volume %q: %w", k.Volume, err)
	}
	return &domain.Bar{
		Time:     time.UnixMilli(k.OpenTime).UTC(),
		Symbol:   strings.ToUpper(symbol),
		Interval: interval,
		Open:     open,
		High:     high,
		Low:      low,
		Close:    closePrice,
		Volume:   volume,
	}, nil
}

// periodStart resolves a lookback period string ("7d", "3mo", "1y", "12h")
// to the corresponding start time relative to now.
func periodStart(period string) (time.Time, error) {
	p := strings.ToLower(strings.TrimSpace(period))
	now := time.Now()

	parse := func(suffix string) (int, bool) {
		if !strings.HasSuffix(p, suffix) {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSuffix(p, suffix))
		if err != nil || n <= 0 {
			return 0, false
		}
		return n, true
	}

	// "mo" before "o"-less suffixes so "3mo" is not read as minutes
	if n, ok := parse("mo"); ok {
		return now.AddDate(0, -n, 0), nil
	}
	if n, ok := parse("y"); ok {
		return now.AddDate(-n, 0, 0), nil
	}
	if n, ok := parse("d"); ok {
		return now.AddDate(0, 0, -n), nil
	}
	if n, ok := parse("h"); ok {
		return now.Add(-time.Duration(n) * time.Hour), nil
	}
	return time.Time{}, fmt.Errorf("unsupported period %q (want e.g. \"7d\", \"3mo\", \"1y\")", period)
}
