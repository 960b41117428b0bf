package utils

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"nseQuantBot/internal/domain"
)

// WriteBarsToCSV writes bars to a CSV file with an RFC3339 time column.
func WriteBarsToCSV(bars []*domain.Bar, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write([]string{"time", "symbol", "interval", "open", "high", "low", "close", "volume"})

	for _, b := range bars {
		writer.Write([]string{
			b.Time.Format(time.RFC3339),
			b.Symbol,
			b.Interval,
			strconv.FormatFloat(b.Open, 'f', -1, 64),
			strconv.FormatFloat(b.High, 'f', -1, 64),
			strconv.FormatFloat(b.Low, 'f', -1, 64),
			strconv.FormatFloat(b.Close, 'f', -1, 64),
			strconv.FormatFloat(b.Volume, 'f', -1, 64),
		})
	}
	return writer.Error()
}

// ReadBarsFromCSV reads bars from a CSV file written by WriteBarsToCSV.
func ReadBarsFromCSV(filename string) ([]*domain.Bar, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("csv file %s has no data rows", filename)
	}

	bars := make([]*domain.Bar, 0, len(records)-1)
	for i, rec := range records[1:] { // skip header
		if len(rec) != 8 {
			return nil, fmt.Errorf("csv row %d: expected 8 fields, got %d", i+2, len(rec))
		}
		t, err := time.Parse(time.RFC3339, rec[0])
		if err != nil {
			return nil, fmt.Errorf("csv row %d: parsing time %q: %w", i+2, rec[0], err)
		}
		vals := make([]float64, 5)
		for j, raw := range rec[3:8] {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("csv row %d: parsing %q: %w", i+2, raw, err)
			}
			vals[j] = v
		}
		bars = append(bars, &domain.Bar{
			Time:     t,
			Symbol:   rec[1],
			Interval: rec[2],
			Open:     vals[0],
			High:     vals[1],
			Low:      vals[2],
			Close:    vals[3],
			Volume:   vals[4],
		})
	}
	return bars, nil
}

// WriteTradeLogToCSV exports a trade log for reporting consumers.
func WriteTradeLogToCSV(trades []domain.Trade, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write([]string{"time", "action", "price"})
	for _, trade := range trades {
		writer.Write([]string{
			trade.Time.Format(time.RFC3339),
			string(trade.Action),
			strconv.FormatFloat(trade.Price, 'f', -1, 64),
		})
	}
	return writer.Error()
}
