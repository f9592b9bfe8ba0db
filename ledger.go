package portfolio

import (
	"github.com/MaiqTheHonest/Trading212-PnL/date"
	"github.com/shopspring/decimal"
)

// Position is the live holding in one ticker: how many units are held and at
// what weighted-average cost per unit. The average cost is recomputed on every
// buy and left untouched by sells.
type Position struct {
	Quantity decimal.Decimal
	AvgCost  decimal.Decimal
}

// CostBasis is the total purchase cost of the position at average cost.
func (p Position) CostBasis() decimal.Decimal { return p.Quantity.Mul(p.AvgCost) }

// Lifetime is the window a ticker was (or still is) held, used to bound
// price-history fetches. Last stays open-ended at "today" while the position
// is live and is pinned to the exit date on a full exit.
type Lifetime struct {
	First, Last date.Date
}

// RealizedEvent is the gain or loss locked in by reducing a position, dated at
// the exit order. CostBasis is the average cost of the exited units at the
// time of exit, Proceeds what the sale brought in. Same-day events accumulate.
type RealizedEvent struct {
	Date      date.Date
	CostBasis decimal.Decimal
	Proceeds  decimal.Decimal
}

// Gain is the locked-in profit or loss of the event.
func (e RealizedEvent) Gain() decimal.Decimal { return e.Proceeds.Sub(e.CostBasis) }

// transition classifies how one order changes the ticker's position. Making
// the dispatch explicit keeps the state machine exhaustive and testable.
type transition int

const (
	openPosition     transition = iota // no position held yet
	closePosition                      // sell brings quantity to exactly zero
	increasePosition                   // buy on top of an existing position
	reducePosition                     // sell part of an existing position
)

func classify(held bool, q0, q1 decimal.Decimal) transition {
	switch {
	case !held:
		return openPosition
	case q0.Add(q1).IsZero():
		return closePosition
	case !q1.IsNegative():
		return increasePosition
	default:
		return reducePosition
	}
}

// Ledger folds filled orders, in strict chronological order, into per-ticker
// positions at weighted-average cost. It is the single writer of the position
// map: callers must feed it sorted input, unsorted or reversed order input
// silently corrupts the average cost.
//
// As a side product of replay it accumulates the per-date cash-flow series
// (consumed only by the MWRR solver), the realized gain/loss events, and the
// held-lifetime window per ticker.
type Ledger struct {
	positions map[string]Position
	lifetimes map[string]Lifetime
	cashFlows date.History[float64]
	realized  []RealizedEvent
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		positions: make(map[string]Position),
		lifetimes: make(map[string]Lifetime),
	}
}

// Apply folds one order into the ledger. 'last' is the final day of the
// calendar ("today"): live positions keep their lifetime open until then.
// It returns the realized event emitted by a full or partial exit, if any.
//
// Non-filled orders are ignored entirely.
func (l *Ledger) Apply(o Order, last date.Date) (RealizedEvent, bool) {
	if !o.Filled() {
		return RealizedEvent{}, false
	}

	q1, p1 := o.Quantity, o.Price

	// Every applied order is a cash flow: money out on a buy, in on a sell.
	l.cashFlows.AppendAdd(o.Date, q1.Mul(p1).Neg().InexactFloat64())

	pos, held := l.positions[o.Ticker]
	switch classify(held, pos.Quantity, q1) {
	case openPosition:
		l.positions[o.Ticker] = Position{Quantity: q1, AvgCost: p1}
		l.lifetimes[o.Ticker] = Lifetime{First: o.Date, Last: last}
		return RealizedEvent{}, false

	case closePosition:
		ev := l.realize(o.Date, pos.AvgCost, p1, q1)
		lt := l.lifetimes[o.Ticker]
		lt.Last = o.Date
		l.lifetimes[o.Ticker] = lt
		delete(l.positions, o.Ticker)
		return ev, true

	case increasePosition:
		// New average cost is the quantity-weighted mean of the old cost and
		// this fill's price.
		total := pos.Quantity.Add(q1)
		pos.AvgCost = pos.Quantity.Mul(pos.AvgCost).Add(q1.Mul(p1)).Div(total)
		pos.Quantity = total
		l.positions[o.Ticker] = pos
		l.extendLifetime(o.Ticker, o.Date, last)
		return RealizedEvent{}, false

	default: // reducePosition
		pos.Quantity = pos.Quantity.Add(q1)
		l.positions[o.Ticker] = pos // average cost unchanged on a sell
		l.extendLifetime(o.Ticker, o.Date, last)
		ev := l.realize(o.Date, pos.AvgCost, p1, q1)
		return ev, true
	}
}

// realize records the exit of -q1 units (q1 is negative on a sell) against the
// current average cost. This is deliberate: realized P&L is measured against
// the running average, not the original lot price.
func (l *Ledger) realize(on date.Date, avgCost, price, q1 decimal.Decimal) RealizedEvent {
	exited := q1.Neg()
	ev := RealizedEvent{
		Date:      on,
		CostBasis: avgCost.Mul(exited),
		Proceeds:  price.Mul(exited),
	}
	l.realized = append(l.realized, ev)
	return ev
}

func (l *Ledger) extendLifetime(ticker string, on, last date.Date) {
	if lt, ok := l.lifetimes[ticker]; ok {
		lt.Last = last
		l.lifetimes[ticker] = lt
		return
	}
	l.lifetimes[ticker] = Lifetime{First: on, Last: last}
}

// Position returns the live position for a ticker, if held.
func (l *Ledger) Position(ticker string) (Position, bool) {
	pos, ok := l.positions[ticker]
	return pos, ok
}

// Positions returns a copy of the live position map.
func (l *Ledger) Positions() map[string]Position {
	out := make(map[string]Position, len(l.positions))
	for ticker, pos := range l.positions {
		out[ticker] = pos
	}
	return out
}

// Lifetimes returns a copy of the held-lifetime window per ticker, covering
// closed positions too.
func (l *Ledger) Lifetimes() map[string]Lifetime {
	out := make(map[string]Lifetime, len(l.lifetimes))
	for ticker, lt := range l.lifetimes {
		out[ticker] = lt
	}
	return out
}

// CashFlows returns the per-date net cash-flow series accumulated so far.
// The caller may add further flows (dividends) to the returned copy.
func (l *Ledger) CashFlows() *date.History[float64] {
	out := new(date.History[float64])
	for on, amount := range l.cashFlows.Values() {
		out.Append(on, amount)
	}
	return out
}

// RealizedEvents returns the realized gain/loss events in the order they
// were emitted.
func (l *Ledger) RealizedEvents() []RealizedEvent {
	out := make([]RealizedEvent, len(l.realized))
	copy(out, l.realized)
	return out
}
