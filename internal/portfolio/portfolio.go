package portfolio

import (
	"time"

	"nseQuantBot/internal/domain"
)

// Portfolio holds the cash/position state for exactly one instrument over
// one backtest run. The model is fully-invested or fully-out: after any
// completed transition exactly one of cash or position is positive, never
// both, never short.
//
// A Portfolio is owned exclusively by a single driver run and is not safe
// for concurrent use.
type Portfolio struct {
	cash     float64
	position float64
	tradeLog []domain.Trade
}

// New creates a portfolio seeded with the given starting cash.
// Capital validation is the driver's responsibility.
func New(cash float64) *Portfolio {
	return &Portfolio{cash: cash}
}

// Buy converts all cash into position units at the given price. If a
// position is already open the call is a no-op: repeated buy signals are
// idempotent. Returns an error only when price cannot be coerced to a
// usable scalar.
func (p *Portfolio) Buy(price any, ts time.Time) error {
	fill, err := toPrice(price)
	if err != nil {
		return err
	}
	if p.position == 0 {
		p.position = p.cash / fill
		p.cash = 0
		p.tradeLog = append(p.tradeLog, domain.Trade{Time: ts, Action: domain.Buy, Price: fill})
	}
	return nil
}

// Sell converts all position units back to cash at the given price. No-op
// if the portfolio is already flat.
func (p *Portfolio) Sell(price any, ts time.Time) error {
	fill, err := toPrice(price)
	if err != nil {
		return err
	}
	if p.position > 0 {
		p.cash = p.position * fill
		p.position = 0
		p.tradeLog = append(p.tradeLog, domain.Trade{Time: ts, Action: domain.Sell, Price: fill})
	}
	return nil
}

// Value returns cash + position*price. Pure, no side effects.
func (p *Portfolio) Value(price any) (float64, error) {
	cur, err := ToScalar(price)
	if err != nil {
		return 0, err
	}
	return p.cash + p.position*cur, nil
}

// Cash returns the uninvested balance.
func (p *Portfolio) Cash() float64 { return p.cash }

// Position returns the units of the instrument currently held.
func (p *Portfolio) Position() float64 { return p.position }

// IsFlat reports whether no position is open.
func (p *Portfolio) IsFlat() bool { return p.position == 0 }

// TradeLog returns the executed trades in execution order. Callers must
// treat the returned slice as read-only history.
func (p *Portfolio) TradeLog() []domain.Trade { return p.tradeLog }
