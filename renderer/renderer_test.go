package renderer

import (
	"strings"
	"testing"

	portfolio "github.com/MaiqTheHonest/Trading212-PnL"
	"github.com/MaiqTheHonest/Trading212-PnL/date"
	"github.com/shopspring/decimal"
)

func testReport(t *testing.T) *portfolio.Report {
	t.Helper()
	rng, _ := date.NewRange(date.New(2024, 1, 1), date.New(2024, 1, 5))
	orders := []portfolio.Order{{
		ID: 1, Ticker: "AAPL", Date: rng.From,
		Quantity: decimal.NewFromInt(10), Price: decimal.NewFromInt(100),
		Status: portfolio.Filled,
	}}
	ledger, snaps, err := portfolio.Replay(orders, rng)
	if err != nil {
		t.Fatal(err)
	}

	prices := new(date.History[float64])
	for i := range 5 {
		prices.Append(rng.From.Add(i), 110)
	}
	dividends := []portfolio.Dividend{{
		Ticker: "AAPL", Amount: decimal.NewFromInt(20), PaidOn: date.New(2024, 1, 3),
	}}

	r, err := portfolio.NewReport(ledger, snaps, rng, dividends,
		map[string]*date.History[float64]{"AAPL": prices}, "GBP")
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestSummaryMarkdown(t *testing.T) {
	doc := SummaryMarkdown(testReport(t))
	for _, want := range []string{
		"# Portfolio Summary from 2024-01-01 to 2024-01-05",
		"| Cost Basis | £1,000.00 |",
		"| Market Value | £1,100.00 |",
		"Total dividends received: £20.00",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("summary missing %q:\n%s", want, doc)
		}
	}
}

func TestSeriesMarkdown(t *testing.T) {
	r := testReport(t)
	doc := SeriesMarkdown("Unrealized Returns", r.Unrealized, 3)
	if !strings.Contains(doc, "Last 3 of 5 days.") {
		t.Errorf("missing truncation note:\n%s", doc)
	}
	if strings.Contains(doc, "2024-01-02") || !strings.Contains(doc, "2024-01-05") {
		t.Errorf("tail selection wrong:\n%s", doc)
	}

	full := SeriesMarkdown("Unrealized Returns", r.Unrealized, 0)
	if !strings.Contains(full, "2024-01-01") {
		t.Errorf("unlimited render dropped days:\n%s", full)
	}
}

func TestDividendsMarkdown(t *testing.T) {
	doc := DividendsMarkdown(testReport(t))
	for _, want := range []string{
		"| AAPL | £20.00 |",
		"| **Total** | **£20.00** |",
		"## Running Total",
		"| 2024-01-03 | £20.00 |",
		"| 2024-01-05 | £20.00 |",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("dividends missing %q:\n%s", want, doc)
		}
	}
}
