package portfolio

import (
	"math"

	"github.com/MaiqTheHonest/Trading212-PnL/date"
	"github.com/rs/zerolog/log"
)

const (
	mwrrMaxIterations   = 1000
	mwrrTolerance       = 0.01  // absolute, in rate units (1 = 100%)
	mwrrDerivativeFloor = 1e-10 // below this the region is flat, Newton cannot proceed
	mwrrDefaultGuess    = 0.5
)

// CashFlow is one dated amount of an irregular schedule: outflows (buys) are
// negative, inflows (sells, dividends, the terminal valuation) positive.
type CashFlow struct {
	Date   date.Date
	Amount float64
}

// MWRR finds the money-weighted rate of return of a chronologically sorted
// cash-flow schedule: the rate r that zeroes
//
//	Σ amountᵢ / (1+r)^(daysᵢ/totalDays)
//
// where daysᵢ is the offset from the first flow and totalDays the full span
// of the schedule. The exponent is normalized, so r is a rate per
// totalDays-period; annualize it against the span if needed.
//
// The root is searched with Newton-Raphson seeded at guess. Newton is
// guess-sign-sensitive near the (1+r)=0 asymptote, so a failed first attempt
// is retried once with the negated guess before giving up. An empty schedule,
// or one spanning a single day, has no rate: ok is false.
func MWRR(flows []CashFlow, guess float64) (rate float64, ok bool) {
	if len(flows) < 2 {
		return 0, false
	}
	first := flows[0].Date
	totalDays := float64(flows[len(flows)-1].Date.Sub(first))
	if totalDays <= 0 {
		return 0, false
	}

	exponents := make([]float64, len(flows))
	for i, cf := range flows {
		exponents[i] = float64(cf.Date.Sub(first)) / totalDays
	}

	if rate, ok = newton(flows, exponents, guess); ok {
		return rate, true
	}
	return newton(flows, exponents, -guess)
}

func newton(flows []CashFlow, exponents []float64, guess float64) (float64, bool) {
	rate := guess
	for range mwrrMaxIterations {
		var npv, derivative float64
		for i, cf := range flows {
			t := exponents[i]
			discount := math.Pow(1+rate, t)
			npv += cf.Amount / discount
			derivative -= t * cf.Amount / math.Pow(1+rate, t+1)
		}
		if math.IsNaN(npv) || math.IsNaN(derivative) || math.Abs(derivative) < mwrrDerivativeFloor {
			return 0, false
		}
		next := rate - npv/derivative
		if math.Abs(next-rate) < mwrrTolerance {
			return next, true
		}
		rate = next
	}
	return 0, false
}

// MWRRSeries solves the money-weighted rate for every valuation day: the
// schedule is every cash flow up to and including the day, with the day's
// market value added onto the last flow as the terminal inflow (adding rather
// than appending keeps a same-day sale from being counted twice, once as cash
// and once as value).
//
// The series is in percent. When the solver fails to converge for a day the
// previous day's rate is carried instead, so an awkward schedule degrades to
// a stale rate, never a gap.
func MWRRSeries(cashFlows, marketValue *date.History[float64]) *date.History[float64] {
	out := new(date.History[float64])
	var fallback float64 // previous day's solved rate, in rate units

	for on, mv := range marketValue.Values() {
		flows := make([]CashFlow, 0, cashFlows.Len())
		for day, amount := range cashFlows.Values() {
			if day.After(on) {
				break
			}
			flows = append(flows, CashFlow{Date: day, Amount: amount})
		}
		if len(flows) > 0 {
			flows[len(flows)-1].Amount += mv
		}

		rate, ok := MWRR(flows, mwrrDefaultGuess)
		if !ok {
			log.Debug().Stringer("date", on).Float64("fallback", fallback).
				Msg("mwrr did not converge, carrying previous day's rate")
			rate = fallback
		}
		out.Append(on, rate*100)
		fallback = rate
	}
	return out
}
