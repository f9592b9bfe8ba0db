package renderer

import (
	"fmt"
	"sort"
	"strings"

	portfolio "github.com/MaiqTheHonest/Trading212-PnL"
)

// DividendsMarkdown renders the per-ticker dividend totals and the annual
// yield on cost.
func DividendsMarkdown(r *portfolio.Report) string {
	var b strings.Builder
	cur := r.ReportingCurrency

	fmt.Fprint(&b, "# Dividends\n\n")
	fmt.Fprintln(&b, "| Ticker | Total Dividends |")
	fmt.Fprintln(&b, "|:---|---:|")

	byTicker := r.Dividends.ByTicker()
	tickers := make([]string, 0, len(byTicker))
	for ticker := range byTicker {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)
	for _, ticker := range tickers {
		fmt.Fprintf(&b, "| %s | %s |\n", ticker, portfolio.M(byTicker[ticker].InexactFloat64(), cur))
	}
	fmt.Fprintf(&b, "| **Total** | **%s** |\n\n", portfolio.M(r.Dividends.Total().InexactFloat64(), cur))

	if cumulative := r.Dividends.Cumulative(r.Range.To); cumulative.Len() > 0 {
		fmt.Fprint(&b, "## Running Total\n\n")
		skip := 0
		if cumulative.Len() > cumulativeDays {
			skip = cumulative.Len() - cumulativeDays
			fmt.Fprintf(&b, "Last %d of %d days.\n\n", cumulativeDays, cumulative.Len())
		}
		fmt.Fprintln(&b, "| Date | Cumulative |")
		fmt.Fprintln(&b, "|:---|---:|")
		i := 0
		for on, v := range cumulative.Values() {
			if i < skip {
				i++
				continue
			}
			fmt.Fprintf(&b, "| %s | %s |\n", on, portfolio.M(v, cur))
		}
		fmt.Fprintln(&b, "")
	}

	fmt.Fprintf(&b, "Dividend yield on cost (annual): %s\n", percent(r.DividendYield()))
	return b.String()
}

// cumulativeDays bounds the running-total table to its recent tail.
const cumulativeDays = 14
