package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"nseQuantBot/internal/adapters/logger" // Import the logger package for LogLevel
)

// Config holds all application configuration.
type Config struct {
	// Instrument / data feed
	Symbol     string // User-friendly symbol ("RELIANCE", "NIFTY", "BTCUSDT")
	Period     string // Lookback window for historical bars (e.g., "3mo")
	Interval   string // Bar interval (e.g., "1h", "1d")
	DataSource string // "yahoo" or "binance"

	// Backtest Parameters
	InitialCapital float64 // Starting cash for the backtest
	Strategy       string  // Signal generator name (e.g., "moving_average")

	// Strategy Parameters
	ShortMAPeriod       int
	LongMAPeriod        int
	RSIPeriod           int
	RSIOversold         float64
	RSIOverbought       float64
	MACDFastSpan        int
	MACDSlowSpan        int
	MACDSignalSpan      int
	MomentumWindow      int
	BreakoutLookback    int
	MeanReversionPeriod int
	MeanReversionWidth  float64

	// News sentiment
	NewsEnabled      bool
	NewsMaxHeadlines int

	// Binance API (optional; public endpoints only need no keys)
	BinanceAPIKey    string
	BinanceSecretKey string
	BinanceTestnet   bool

	// Database
	DBPath string

	// Logging
	LogLevel logger.LogLevel
}

// LoadConfig loads configuration from environment variables (.env file).
func LoadConfig() (*Config, error) {
	// Load .env file, but don't fail if it doesn't exist (allow pure env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	var err error
	var errs []string // Collect validation errors

	// Instrument / data feed
	cfg.Symbol = getEnv("SYMBOL", "RELIANCE")
	if cfg.Symbol == "" {
		errs = append(errs, "SYMBOL must be set")
	}
	cfg.Period = getEnv("PERIOD", "3mo")
	cfg.Interval = getEnv("INTERVAL", "1h")

	cfg.DataSource = strings.ToLower(getEnv("DATA_SOURCE", "yahoo"))
	if cfg.DataSource != "yahoo" && cfg.DataSource != "binance" {
		errs = append(errs, fmt.Sprintf("DATA_SOURCE must be 'yahoo' or 'binance', got %q", cfg.DataSource))
	}

	// Backtest Parameters
	cfg.InitialCapital, err = getEnvAsFloatRequired("INITIAL_CAPITAL", 100000.0)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid INITIAL_CAPITAL: %v", err))
	} else if cfg.InitialCapital < 0 {
		errs = append(errs, "INITIAL_CAPITAL cannot be negative")
	}

	cfg.Strategy = getEnv("STRATEGY", "moving_average")

	// Strategy Parameters (using defaults if not set)
	cfg.ShortMAPeriod = getEnvAsInt("STRATEGY_SHORT_MA_PERIOD", 20)
	cfg.LongMAPeriod = getEnvAsInt("STRATEGY_LONG_MA_PERIOD", 50)
	cfg.RSIPeriod = getEnvAsInt("STRATEGY_RSI_PERIOD", 14)
	cfg.RSIOversold = getEnvAsFloat("STRATEGY_RSI_OVERSOLD", 30.0)
	cfg.RSIOverbought = getEnvAsFloat("STRATEGY_RSI_OVERBOUGHT", 70.0)
	cfg.MACDFastSpan = getEnvAsInt("STRATEGY_MACD_FAST_SPAN", 12)
	cfg.MACDSlowSpan = getEnvAsInt("STRATEGY_MACD_SLOW_SPAN", 26)
	cfg.MACDSignalSpan = getEnvAsInt("STRATEGY_MACD_SIGNAL_SPAN", 9)
	cfg.MomentumWindow = getEnvAsInt("STRATEGY_MOMENTUM_WINDOW", 10)
	cfg.BreakoutLookback = getEnvAsInt("STRATEGY_BREAKOUT_LOOKBACK", 20)
	cfg.MeanReversionPeriod = getEnvAsInt("STRATEGY_MEAN_REVERSION_PERIOD", 20)
	cfg.MeanReversionWidth = getEnvAsFloat("STRATEGY_MEAN_REVERSION_WIDTH", 2.0)

	// Validate strategy periods
	if cfg.ShortMAPeriod <= 0 || cfg.LongMAPeriod <= 0 || cfg.RSIPeriod <= 0 {
		errs = append(errs, "strategy periods (MA, RSI) must be positive")
	}
	if cfg.ShortMAPeriod >= cfg.LongMAPeriod {
		errs = append(errs, "STRATEGY_SHORT_MA_PERIOD must be less than STRATEGY_LONG_MA_PERIOD")
	}
	if cfg.RSIOverbought <= cfg.RSIOversold || cfg.RSIOverbought > 100 || cfg.RSIOversold < 0 {
		errs = append(errs, "invalid RSI thresholds (Overbought must be > Oversold, between 0-100)")
	}
	if cfg.MACDFastSpan >= cfg.MACDSlowSpan {
		errs = append(errs, "STRATEGY_MACD_FAST_SPAN must be less than STRATEGY_MACD_SLOW_SPAN")
	}

	// News sentiment
	cfg.NewsEnabled = getEnvAsBool("NEWS_ENABLED", true)
	cfg.NewsMaxHeadlines = getEnvAsInt("NEWS_MAX_HEADLINES", 5)
	if cfg.NewsMaxHeadlines <= 0 {
		errs = append(errs, "NEWS_MAX_HEADLINES must be positive")
	}

	// Binance API (only needed when DATA_SOURCE=binance; public data works without keys)
	cfg.BinanceAPIKey = getEnv("BINANCE_API_KEY", "")
	cfg.BinanceSecretKey = getEnv("BINANCE_API_SECRET", "")
	cfg.BinanceTestnet = getEnvAsBool("BINANCE_TESTNET", false)

	// Database
	cfg.DBPath = getEnv("DB_PATH", "./data/backtests.db")
	if cfg.DBPath == "" {
		errs = append(errs, "DB_PATH must be set")
	}

	// Logging
	logLevelStr := getEnv("LOG_LEVEL", "INFO")
	cfg.LogLevel = logger.ParseLevel(logLevelStr)

	// Combine validation errors
	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return cfg, nil
}

// --- Env Var Helpers ---

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloatRequired(key string, defaultValue float64) (float64, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float value '%s' for key %s: %w", valueStr, key, err)
	}
	return value, nil
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
