package portfolio

import (
	"slices"

	"github.com/MaiqTheHonest/Trading212-PnL/date"
	"github.com/shopspring/decimal"
)

// OrderStatus is the broker's execution status of an order.
type OrderStatus string

// Filled is the only status that affects the ledger. Cancelled and rejected
// orders pass through normalization untouched and are skipped on replay.
const Filled OrderStatus = "FILLED"

// Order is a single brokerage fill, expressed in the reporting currency by the
// time it reaches the accounting engine.
type Order struct {
	ID       uint64
	Ticker   string
	Date     date.Date
	Quantity decimal.Decimal // signed: positive buys, negative sells
	Price    decimal.Decimal
	Value    decimal.Decimal
	Status   OrderStatus

	// PenceQuoted marks orders on exchanges quoting in minor currency units
	// (LSE quotes in pence); quantity derivation for value orders must divide
	// by 100·price instead of price.
	PenceQuoted bool
}

// Filled reports whether the order was executed.
func (o Order) Filled() bool { return o.Status == Filled }

// NormalizeOrders prepares a raw order export for ledger replay. Brokers hand
// history back newest-first, so the slice is reversed into chronological
// order. Partial fills show up as duplicated ids and are deduplicated keeping
// the first (earliest) occurrence. Value-denominated orders (quantity zero,
// e.g. "buy £100 of AAPL") get their quantity derived from value and price.
//
// The input slice is not modified.
func NormalizeOrders(orders []Order) []Order {
	out := make([]Order, len(orders))
	copy(out, orders)
	slices.Reverse(out)

	seen := make(map[uint64]struct{}, len(out))
	out = slices.DeleteFunc(out, func(o Order) bool {
		if _, dup := seen[o.ID]; dup {
			return true
		}
		seen[o.ID] = struct{}{}
		return false
	})

	for i, o := range out {
		if o.Quantity.IsZero() && !o.Price.IsZero() {
			out[i].Quantity = o.deriveQuantity()
		}
	}
	return out
}

// deriveQuantity turns a value-denominated order into a quantity.
func (o Order) deriveQuantity() decimal.Decimal {
	price := o.Price
	if o.PenceQuoted {
		price = price.Mul(decimal.NewFromInt(100))
	}
	return o.Value.Div(price)
}
