package portfolio

import (
	"github.com/MaiqTheHonest/Trading212-PnL/date"
	"github.com/shopspring/decimal"
)

// Dividend is one cash dividend payment, already in the reporting currency.
type Dividend struct {
	Ticker string
	Amount decimal.Decimal
	PaidOn date.Date
}

// DividendBook aggregates dividend payments for the engine. Inside the return
// calculation dividends are fungible cash: only the running total matters.
// The per-ticker attribution is informational, kept for the dividend report.
type DividendBook struct {
	total      decimal.Decimal
	byTicker   map[string]decimal.Decimal
	cumulative date.History[float64]
}

// NewDividendBook aggregates chronologically sorted dividend payments.
func NewDividendBook(dividends []Dividend) *DividendBook {
	b := &DividendBook{byTicker: make(map[string]decimal.Decimal)}
	for _, d := range dividends {
		b.total = b.total.Add(d.Amount)
		b.byTicker[d.Ticker] = b.byTicker[d.Ticker].Add(d.Amount)
		b.cumulative.Append(d.PaidOn, b.total.InexactFloat64())
	}
	return b
}

// Total is the sum of all dividends received.
func (b *DividendBook) Total() decimal.Decimal { return b.total }

// ByTicker returns a copy of the per-ticker dividend totals.
func (b *DividendBook) ByTicker() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(b.byTicker))
	for ticker, amount := range b.byTicker {
		out[ticker] = amount
	}
	return out
}

// Cumulative returns the running-total series, forward-filled to every
// calendar day up to 'last'.
func (b *DividendBook) Cumulative(last date.Date) *date.History[float64] {
	out := new(date.History[float64])
	for on, v := range b.cumulative.Values() {
		out.Append(on, v)
	}
	return out.FillForwardUntil(last)
}

// PostCashFlows adds every dividend payment as a cash inflow on its paid
// date, so the MWRR schedule sees dividend income.
func PostCashFlows(flows *date.History[float64], dividends []Dividend) {
	for _, d := range dividends {
		flows.AppendAdd(d.PaidOn, d.Amount.InexactFloat64())
	}
}
