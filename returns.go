package portfolio

import (
	"fmt"

	"github.com/MaiqTheHonest/Trading212-PnL/date"
)

// Valuation pairs the daily cost-basis series with the daily market-value
// series of the same dates.
type Valuation struct {
	CostBasis   *date.History[float64]
	MarketValue *date.History[float64]
}

// NewValuation creates an empty valuation pair.
func NewValuation() *Valuation {
	return &Valuation{
		CostBasis:   new(date.History[float64]),
		MarketValue: new(date.History[float64]),
	}
}

// Absolute is the day-by-day gain: market value minus cost basis.
func (v *Valuation) Absolute() *date.History[float64] {
	out := new(date.History[float64])
	for on, cb := range v.CostBasis.Values() {
		if mv, ok := v.MarketValue.Get(on); ok {
			out.Append(on, mv-cb)
		}
	}
	return out
}

// Relative is the day-by-day gain in percent of cost basis. Days with a zero
// cost basis are a lifecycle-ordering bug upstream and are skipped rather
// than coerced to NaN.
func (v *Valuation) Relative() *date.History[float64] {
	out := new(date.History[float64])
	for on, cb := range v.CostBasis.Values() {
		mv, ok := v.MarketValue.Get(on)
		if !ok || cb == 0 {
			continue
		}
		out.Append(on, 100*(mv/cb-1))
	}
	return out
}

// UnrealizedReturns walks the calendar-aligned snapshots and produces the
// daily unrealized-return series (percent of cost basis) alongside the
// cost-basis/market-value valuation series.
//
// Dividend income is folded in proportionally to how much of the lifetime
// cost-basis exposure has been seen by each date, so a payment does not spike
// the series on its payment day: on a given day the dividend contribution is
// dividendTotal × (volume covered so far ÷ lifetime volume).
//
// Prices must be in the reporting currency. A held ticker with no price
// series at all is fatal: the engine will not guess a price. A ticker merely
// missing a quote on one day (weekend, holiday) makes the whole day reuse the
// last successfully computed totals.
func UnrealizedReturns(snapshots []Snapshot, prices map[string]*date.History[float64], dividendTotal float64) (*date.History[float64], *Valuation, error) {
	if len(snapshots) == 0 {
		return nil, nil, fmt.Errorf("cannot compute returns without snapshots")
	}

	// First pass: lifetime sum of daily cost-basis exposure (the weighting
	// denominator for the dividend contribution), and the one place the
	// series-existence precondition is enforced, so the error does not
	// depend on map iteration order below.
	var volumeTotal float64
	portfolio := map[string]Position{}
	for _, snap := range snapshots {
		if snap.Positions != nil {
			portfolio = snap.Positions
		}
		for ticker, pos := range portfolio {
			if _, ok := prices[ticker]; !ok {
				return nil, nil, fmt.Errorf("no price series for held ticker %q", ticker)
			}
			volumeTotal += pos.CostBasis().InexactFloat64()
		}
	}
	if volumeTotal == 0 {
		return nil, nil, fmt.Errorf("portfolio has no cost-basis exposure over its lifetime")
	}

	returns := new(date.History[float64])
	valuation := NewValuation()

	var volumeCovered float64
	var lastValue, lastSum float64 // totals of the last fully priced day

	portfolio = map[string]Position{}
	for _, snap := range snapshots {
		if snap.Positions != nil {
			portfolio = snap.Positions
		}

		var valueTotal, sumMidReturns float64
		priced := true
		for ticker, pos := range portfolio {
			price, ok := prices[ticker].Get(snap.Date)
			if !ok {
				// Weekend or gap: the day as a whole falls back to the last
				// computed totals, partial sums would skew the ratio.
				priced = false
				break
			}
			cost := pos.CostBasis().InexactFloat64()
			valueTotal += cost
			sumMidReturns += cost * (price/pos.AvgCost.InexactFloat64() - 1)
		}
		if !priced {
			valueTotal, sumMidReturns = lastValue, lastSum
		} else {
			lastValue, lastSum = valueTotal, sumMidReturns
		}

		volumeCovered += valueTotal

		if valueTotal == 0 {
			// No priced position yet (unpriced inception day): the return is
			// undefined, not zero.
			continue
		}

		daily := 100 * (sumMidReturns + dividendTotal*(volumeCovered/volumeTotal)) / valueTotal
		returns.Append(snap.Date, daily)
		valuation.CostBasis.Append(snap.Date, valueTotal)
		valuation.MarketValue.Append(snap.Date, valueTotal+sumMidReturns)
	}
	return returns, valuation, nil
}
