package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"nseQuantBot/internal/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, msg string, fields ...map[string]interface{}) {}
func (m *mockLogger) Info(ctx context.Context, msg string, fields ...map[string]interface{})  {}
func (m *mockLogger) Warn(ctx context.Context, msg string, fields ...map[string]interface{})  {}
func (m *mockLogger) Error(ctx context.Context, err error, msg string, fields ...map[string]interface{}) {
}

func TestNormalizeTicker(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "NIFTY", want: "^NSEI"},
		{in: "nifty50", want: "^NSEI"},
		{in: "BANKNIFTY", want: "^NSEBANK"},
		{in: "SENSEX", want: "^BSESN"},
		{in: "^NSEI", want: "^NSEI"},
		{in: "RELIANCE", want: "RELIANCE.NS"},
		{in: " tcs ", want: "TCS.NS"},
		{in: "RELIANCE.NS", want: "RELIANCE.NS"},
		{in: "AAPL.MX", want: "AAPL.MX"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTicker(tt.in))
		})
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(Config{Logger: &mockLogger{}, BaseURL: server.URL})
	require.NoError(t, err)
	return client
}

func TestGetBars(t *testing.T) {
	const payload = `{
		"chart": {
			"result": [{
				"meta": {"symbol": "RELIANCE.NS", "regularMarketPrice": 2950.5},
				"timestamp": [1736150400, 1736154000, 1736157600],
				"indicators": {"quote": [{
					"open":   [2900.0, 2910.0, null],
					"high":   [2920.0, 2930.0, null],
					"low":    [2890.0, 2900.0, null],
					"close":  [2910.0, 2925.0, null],
					"volume": [100000, 120000, null]
				}]}
			}],
			"error": null
		}
	}`

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/v8/finance/chart/RELIANCE.NS")
		assert.Equal(t, "3mo", r.URL.Query().Get("range"))
		assert.Equal(t, "1h", r.URL.Query().Get("interval"))
		w.Write([]byte(payload))
	})

	bars, err := client.GetBars(context.Background(), "RELIANCE", "3mo", "1h")
	require.NoError(t, err)

	// the null row is skipped
	require.Len(t, bars, 2)
	assert.Equal(t, "RELIANCE.NS", bars[0].Symbol)
	assert.Equal(t, "1h", bars[0].Interval)
	assert.Equal(t, 2910.0, bars[0].Close)
	assert.Equal(t, 2925.0, bars[1].Close)
	assert.Equal(t, 120000.0, bars[1].Volume)
	assert.True(t, bars[0].Time.Before(bars[1].Time))
}

func TestGetBars_UnknownSymbol(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`))
	})

	_, err := client.GetBars(context.Background(), "NOPE", "1mo", "1d")
	require.Error(t, err)
	assert.ErrorIs(t, err, ports.ErrUnknownSymbol)
}

func TestGetBars_RateLimited(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.GetBars(context.Background(), "RELIANCE", "1mo", "1d")
	require.Error(t, err)
	assert.ErrorIs(t, err, ports.ErrRateLimited)
}

func TestGetLivePrice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":[{"meta":{"symbol":"^NSEI","regularMarketPrice":24500.25}}],"error":null}}`))
	})

	price, err := client.GetLivePrice(context.Background(), "NIFTY")
	require.NoError(t, err)
	assert.Equal(t, 24500.25, price)
}

func TestHeadlines(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/v1/finance/search")
		w.Write([]byte(`{"news":[{"title":"Reliance shares surge"},{"title":""},{"title":"Q3 results beat estimates"}]}`))
	})

	headlines, err := client.Headlines(context.Background(), "RELIANCE", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"Reliance shares surge", "Q3 results beat estimates"}, headlines)
}
