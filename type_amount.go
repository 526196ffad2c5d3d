package goodmoney

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount represents a monetary value in a currency-agnostic unit.
//
// Sums over stored values are exact decimal additions; no rounding is
// applied anywhere in the query layer.
type Amount struct {
	value decimal.Decimal
}

// A builds an Amount from any common numeric type.
func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic(fmt.Sprintf("unsupported amount type %T", value))
	}
}

// ParseAmount parses a decimal string into an Amount.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{value: d}, nil
}

func (a Amount) Equal(b Amount) bool          { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool                 { return a.value.IsZero() }
func (a Amount) IsPositive() bool             { return a.value.IsPositive() }
func (a Amount) IsNegative() bool             { return a.value.IsNegative() }
func (a Amount) LessThan(b Amount) bool       { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool    { return a.value.GreaterThan(b.value) }
func (a Amount) Neg() Amount                  { return Amount{value: a.value.Neg()} }
func (a Amount) Add(b Amount) Amount          { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount          { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) MulInt(n int) Amount          { return Amount{value: a.value.Mul(decimal.NewFromInt(int64(n)))} }

// InexactFloat64 converts to float64 for the projection engine, which works
// in floating point on purpose.
func (a Amount) InexactFloat64() float64 { return a.value.InexactFloat64() }

// String returns the plain decimal representation.
func (a Amount) String() string { return a.value.String() }

// Format renders the amount in the given ISO currency for display, rounded
// to that currency's fraction. Display only: stored values keep all digits.
func (a Amount) Format(code string) string {
	cur := *money.New(0, code).Currency()
	minor := a.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.Round(0).IntPart())
}

// SignedFormat is like Format but always carries a sign, and renders zero as "-".
func (a Amount) SignedFormat(code string) string {
	if a.value.IsZero() {
		return "-"
	}
	if a.value.IsPositive() {
		return "+" + a.Format(code)
	}
	return a.Format(code)
}

func (a Amount) MarshalJSON() ([]byte, error) { return a.value.MarshalJSON() }

func (a *Amount) UnmarshalJSON(data []byte) error { return a.value.UnmarshalJSON(data) }
