package portfolio

import (
	"fmt"

	"github.com/MaiqTheHonest/Trading212-PnL/date"
)

// Report holds every daily series the accounting engine produces for one
// portfolio, all expressed in the reporting currency.
type Report struct {
	Range             date.Range
	ReportingCurrency string

	Unrealized *date.History[float64] // daily unrealized return, percent
	Valuation  *Valuation             // daily cost basis and market value of priced holdings
	Realized   *Valuation             // cumulative realized cost basis and proceeds
	MWRR       *date.History[float64] // daily money-weighted rate of return, percent
	Dividends  *DividendBook
	Ledger     *Ledger
}

// NewReport runs the full accounting pipeline over fully materialized inputs:
// a replayed ledger with its calendar-aligned snapshots, the dividend
// payments, and a per-ticker price series already converted to the reporting
// currency and forward-filled over market gaps.
//
// Everything is synchronous and single-threaded on purpose: the dividend
// weighting and MWRR series depend on lifetime totals, so no pass can start
// before all inputs exist.
func NewReport(ledger *Ledger, snapshots []Snapshot, rng date.Range, dividends []Dividend, prices map[string]*date.History[float64], reportingCurrency string) (*Report, error) {
	book := NewDividendBook(dividends)

	unrealized, valuation, err := UnrealizedReturns(snapshots, prices, book.Total().InexactFloat64())
	if err != nil {
		return nil, fmt.Errorf("unrealized returns: %w", err)
	}

	flows := ledger.CashFlows()
	PostCashFlows(flows, dividends)

	return &Report{
		Range:             rng,
		ReportingCurrency: reportingCurrency,
		Unrealized:        unrealized,
		Valuation:         valuation,
		Realized:          RealizedSeries(ledger.RealizedEvents(), rng),
		MWRR:              MWRRSeries(flows, valuation.MarketValue),
		Dividends:         book,
		Ledger:            ledger,
	}, nil
}

// DaysHeld is the calendar span of the portfolio in days.
func (r *Report) DaysHeld() int { return r.Range.To.Sub(r.Range.From) }

// YearsHeld is the calendar span of the portfolio in (fractional) years.
func (r *Report) YearsHeld() float64 { return float64(r.DaysHeld()) / 365 }

// CurrentReturn is the latest unrealized return in percent.
func (r *Report) CurrentReturn() float64 {
	_, current := r.Unrealized.Latest()
	return current
}

// Age spells the portfolio's span out as years, months and days.
func (r *Report) Age() string {
	days := r.DaysHeld()
	years := days / 365
	months := days % 365 / 30
	return fmt.Sprintf("%d years, %d months, and %d days", years, months, days%365-30*months)
}

// Stats summarizes the daily unrealized returns.
func (r *Report) Stats() SeriesStats {
	cumulative := make([]float64, 0, r.Unrealized.Len())
	for _, v := range r.Unrealized.Values() {
		cumulative = append(cumulative, v)
	}
	return NewSeriesStats(DailyReturns(cumulative))
}

// AnnualReturn is the compound annual growth rate implied by the current
// unrealized return over the holding period, percent.
func (r *Report) AnnualReturn() float64 {
	return AnnualizedReturn(r.CurrentReturn(), r.YearsHeld())
}

// DividendYield is the annualized dividend yield on average cost, percent.
func (r *Report) DividendYield() float64 {
	return DividendYieldOnCost(r.Dividends.Total().InexactFloat64(), r.Valuation.CostBasis,
		float64(r.DaysHeld()), r.YearsHeld())
}
