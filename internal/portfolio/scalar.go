package portfolio

import (
	"fmt"
	"math"

	"nseQuantBot/internal/domain"
	"nseQuantBot/internal/ports"
)

// ToScalar coerces a price-like value to a float64.
//
// The upstream feed may hand the ledger either a bare number or a one-row
// series slice depending on call site, so the contract accepts plain numeric
// scalars and single-element numeric containers, unwrapping to their sole
// element. Multi-element containers are rejected rather than averaged or
// truncated: an instrument must resolve to exactly one price per timestamp.
// NaN and infinities are rejected as unusable.
//
// All failures wrap ports.ErrCoercion.
func ToScalar(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return checkFinite(x)
	case float32:
		return checkFinite(float64(x))
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case []float64:
		if len(x) != 1 {
			return 0, fmt.Errorf("%w: expected scalar, got []float64 with length %d", ports.ErrCoercion, len(x))
		}
		return checkFinite(x[0])
	case []int:
		if len(x) != 1 {
			return 0, fmt.Errorf("%w: expected scalar, got []int with length %d", ports.ErrCoercion, len(x))
		}
		return float64(x[0]), nil
	case domain.Series:
		if len(x) != 1 {
			return 0, fmt.Errorf("%w: expected scalar, got series with length %d", ports.ErrCoercion, len(x))
		}
		return checkFinite(x[0].Value)
	case nil:
		return 0, fmt.Errorf("%w: got nil", ports.ErrCoercion)
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ports.ErrCoercion, v)
	}
}

func checkFinite(f float64) (float64, error) {
	if math.IsNaN(f) {
		return 0, fmt.Errorf("%w: got NaN", ports.ErrCoercion)
	}
	if math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: got infinity", ports.ErrCoercion)
	}
	return f, nil
}

// toPrice applies ToScalar and additionally requires a positive value; a
// fill price must be strictly greater than zero.
func toPrice(v any) (float64, error) {
	p, err := ToScalar(v)
	if err != nil {
		return 0, err
	}
	if p <= 0 {
		return 0, fmt.Errorf("%w: price must be positive, got %v", ports.ErrCoercion, p)
	}
	return p, nil
}
