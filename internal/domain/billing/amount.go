package billing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary or quantity value. It wraps decimal.Decimal so
// arithmetic is exact, but marshals as a bare JSON number to match the
// wire format the frontend produces and consumes (qty/price/subtotal are
// plain numbers, never quoted strings).
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps a decimal value
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// AmountFromFloat creates an amount from a float64
func AmountFromFloat(f float64) Amount {
	return Amount{Decimal: decimal.NewFromFloat(f)}
}

// AmountFromString parses an amount from its decimal string form
func AmountFromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{Decimal: d}, nil
}

// ZeroAmount returns the zero value
func ZeroAmount() Amount {
	return Amount{Decimal: decimal.Zero}
}

// Add returns a + b
func (a Amount) Add(b Amount) Amount {
	return Amount{Decimal: a.Decimal.Add(b.Decimal)}
}

// Mul returns a × b
func (a Amount) Mul(b Amount) Amount {
	return Amount{Decimal: a.Decimal.Mul(b.Decimal)}
}

// Round2 rounds to two decimal places (rappen precision)
func (a Amount) Round2() Amount {
	return Amount{Decimal: a.Decimal.Round(2)}
}

// Equal reports whether two amounts represent the same value
func (a Amount) Equal(b Amount) bool {
	return a.Decimal.Equal(b.Decimal)
}

// MarshalJSON renders the amount as an unquoted JSON number
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// UnmarshalJSON accepts both JSON numbers and quoted decimal strings
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		a.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	a.Decimal = d
	return nil
}
