package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"nseQuantBot/internal/domain"
	"nseQuantBot/internal/ports"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// indexMap maps common index names to the Yahoo index symbols, so users can
// ask for "NIFTY" instead of "^NSEI".
var indexMap = map[string]string{
	"NIFTY":     "^NSEI",
	"NIFTY50":   "^NSEI",
	"NSEI":      "^NSEI",
	"NIFTYBANK": "^NSEBANK",
	"BANKNIFTY": "^NSEBANK",
	"SENSEX":    "^BSESN",
}

// Client implements ports.MarketDataClient and ports.NewsClient against the
// Yahoo Finance chart and search endpoints. NSE equity tickers are
// normalized with the ".NS" suffix.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     ports.Logger
}

// Config holds configuration specific to the Yahoo client adapter.
type Config struct {
	Logger  ports.Logger
	BaseURL string        // Override for tests; defaults to the public endpoint
	Timeout time.Duration // HTTP timeout (default 10s)
}

// New creates a new Yahoo Finance client adapter.
func New(cfg Config) (*Client, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required for Yahoo client")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     cfg.Logger,
	}, nil
}

// NormalizeTicker returns a ticker string the Yahoo endpoints understand.
// Index names map through indexMap; anything already carrying a '^' prefix
// or a '.' suffix passes through unchanged; plain equity symbols get ".NS".
func NormalizeTicker(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if mapped, ok := indexMap[s]; ok {
		return mapped
	}
	if strings.HasPrefix(s, "^") || strings.Contains(s, ".") {
		return s
	}
	return s + ".NS"
}

// chartResponse mirrors the subset of the chart endpoint payload we consume.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string  `json:"symbol"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// searchResponse mirrors the subset of the search endpoint payload we consume.
type searchResponse struct {
	News []struct {
		Title string `json:"title"`
	} `json:"news"`
}

// GetBars retrieves historical OHLCV bars in chronological order. Rows with
// a null close (market holidays, partial intervals) are skipped.
func (c *Client) GetBars(ctx context.Context, symbol, period, interval string) ([]*domain.Bar, error) {
	ticker := NormalizeTicker(symbol)
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=%s",
		c.baseURL, url.PathEscape(ticker), url.QueryEscape(period), url.QueryEscape(interval))

	var payload chartResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("fetching bars for %s: %w", ticker, err)
	}
	if payload.Chart.Error != nil {
		return nil, fmt.Errorf("%w: %s (%s)", ports.ErrUnknownSymbol, ticker, payload.Chart.Error.Description)
	}
	if len(payload.Chart.Result) == 0 {
		return nil, fmt.Errorf("%w: %s", ports.ErrNoData, ticker)
	}

	result := payload.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("%w: %s returned an empty series", ports.ErrNoData, ticker)
	}
	quote := result.Indicators.Quote[0]

	bars := make([]*domain.Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue
		}
		bar := &domain.Bar{
			Time:     time.Unix(ts, 0).UTC(),
			Symbol:   ticker,
			Interval: interval,
			Close:    *quote.Close[i],
		}
		if i < len(quote.Open) && quote.Open[i] != nil {
			bar.Open = *quote.Open[i]
		}
		if i < len(quote.High) && quote.High[i] != nil {
			bar.High = *quote.High[i]
		}
		if i < len(quote.Low) && quote.Low[i] != nil {
			bar.Low = *quote.Low[i]
		}
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			bar.Volume = *quote.Volume[i]
		}
		bars = append(bars, bar)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w: %s returned no usable rows", ports.ErrNoData, ticker)
	}

	c.logger.Debug(ctx, "Fetched bars", map[string]interface{}{
		"symbol": ticker, "period": period, "interval": interval, "count": len(bars),
	})
	return bars, nil
}

// GetLivePrice retrieves the most recent traded price from the chart
// endpoint's market metadata.
func (c *Client) GetLivePrice(ctx context.Context, symbol string) (float64, error) {
	ticker := NormalizeTicker(symbol)
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?range=1d&interval=1m",
		c.baseURL, url.PathEscape(ticker))

	var payload chartResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return 0, fmt.Errorf("fetching live price for %s: %w", ticker, err)
	}
	if payload.Chart.Error != nil || len(payload.Chart.Result) == 0 {
		return 0, fmt.Errorf("%w: %s", ports.ErrUnknownSymbol, ticker)
	}
	price := payload.Chart.Result[0].Meta.RegularMarketPrice
	if price <= 0 {
		return 0, fmt.Errorf("%w: no market price for %s", ports.ErrNoData, ticker)
	}
	return price, nil
}

// Headlines retrieves up to limit recent news headlines for the symbol.
func (c *Client) Headlines(ctx context.Context, symbol string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 5
	}
	ticker := NormalizeTicker(symbol)
	endpoint := fmt.Sprintf("%s/v1/finance/search?q=%s&newsCount=%d&quotesCount=0",
		c.baseURL, url.QueryEscape(ticker), limit)

	var payload searchResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("fetching headlines for %s: %w", ticker, err)
	}

	headlines := make([]string, 0, len(payload.News))
	for _, item := range payload.News {
		if item.Title == "" {
			continue
		}
		headlines = append(headlines, item.Title)
		if len(headlines) == limit {
			break
		}
	}
	return headlines, nil
}

// getJSON performs a GET request and decodes the JSON body, translating
// transport and HTTP status failures into standard ports errors.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ports.ErrInvalidRequest, err)
	}
	req.Header.Set("User-Agent", "nseQuantBot/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %v", ports.ErrContextCanceled, err)
		}
		return fmt.Errorf("%w: %v", ports.ErrConnectionFailed, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d", ports.ErrRateLimited, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: status %d", ports.ErrUnknownSymbol, resp.StatusCode)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ports.ErrFeedUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: unexpected status %d", ports.ErrUnknown, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ports.ErrUnknown, err)
	}
	return nil
}
