package portfolio

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
)

// Money is a display amount in a known currency. The engine itself computes
// in decimals and floats; Money exists so reports format values with the
// right symbol and fraction for the reporting currency.
type Money struct {
	value float64
	cur   string
}

// M wraps a major-unit amount in a currency.
func M(value float64, currency string) Money { return Money{value: value, cur: currency} }

// Currency returns the money's currency code.
func (m Money) Currency() string { return m.cur }

// AsFloat returns the major-unit amount.
func (m Money) AsFloat() float64 { return m.value }

// String formats the amount with the currency's symbol and fraction digits.
// An unknown currency code falls back to "CODE 1.23" rather than borrowing
// another currency's symbol.
func (m Money) String() string {
	cur := money.GetCurrency(m.cur)
	if cur == nil {
		return fmt.Sprintf("%s %.2f", m.cur, m.value)
	}
	minor := int64(math.Round(m.value * math.Pow10(cur.Fraction)))
	return money.New(minor, cur.Code).Display()
}

// SignedString formats the amount with an explicit sign; zero renders as "-".
func (m Money) SignedString() string {
	switch {
	case m.value == 0:
		return "-"
	case m.value > 0:
		return "+" + m.String()
	default:
		return m.String()
	}
}
