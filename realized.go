package portfolio

import "github.com/MaiqTheHonest/Trading212-PnL/date"

// realizedAnchor is the synthetic near-zero value seeding the realized series
// at inception, so the relative-return ratio never divides by zero.
const realizedAnchor = 0.0001

// RealizedSeries folds realized gain/loss events into a cumulative daily
// valuation over the whole calendar: events are grouped by date, the
// (cost basis, proceeds) pairs are summed component-wise as a running fold,
// and the resulting sparse series is anchored at rng.From, stretched to
// rng.To and forward-filled so every calendar day carries a value.
//
// Absolute realized return for a day is MarketValue−CostBasis; relative is
// 100×(MarketValue/CostBasis−1).
func RealizedSeries(events []RealizedEvent, rng date.Range) *Valuation {
	// Group same-day events additively.
	perDay := NewValuation()
	for _, ev := range events {
		perDay.CostBasis.AppendAdd(ev.Date, ev.CostBasis.InexactFloat64())
		perDay.MarketValue.AppendAdd(ev.Date, ev.Proceeds.InexactFloat64())
	}

	// Cumulative fold in calendar order.
	out := NewValuation()
	var cb, mv float64
	for on, v := range perDay.CostBasis.Values() {
		cb += v
		p, _ := perDay.MarketValue.Get(on)
		mv += p
		out.CostBasis.Append(on, cb)
		out.MarketValue.Append(on, mv)
	}

	// Anchor the series at inception unless something was realized that very
	// day, and stretch the last value out to today.
	if _, ok := out.CostBasis.Get(rng.From); !ok {
		out.CostBasis.Append(rng.From, realizedAnchor)
		out.MarketValue.Append(rng.From, realizedAnchor)
	}
	out.CostBasis.FillForwardUntil(rng.To)
	out.MarketValue.FillForwardUntil(rng.To)
	return out
}
