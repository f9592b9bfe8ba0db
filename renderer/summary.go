package renderer

import (
	"fmt"
	"strings"

	portfolio "github.com/MaiqTheHonest/Trading212-PnL"
)

// SummaryMarkdown renders the headline figures of a report.
func SummaryMarkdown(r *portfolio.Report) string {
	var b strings.Builder
	cur := r.ReportingCurrency

	fmt.Fprintf(&b, "# Portfolio Summary from %s to %s\n\n", r.Range.From, r.Range.To)
	fmt.Fprintf(&b, "Portfolio age: %s\n\n", r.Age())

	_, costBasis := r.Valuation.CostBasis.Latest()
	_, marketValue := r.Valuation.MarketValue.Latest()
	_, mwrr := r.MWRR.Latest()
	_, realized := r.Realized.Relative().Latest()
	stats := r.Stats()

	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Cost Basis | %s |\n", portfolio.M(costBasis, cur))
	fmt.Fprintf(&b, "| Market Value | %s |\n", portfolio.M(marketValue, cur))
	fmt.Fprintf(&b, "| Unrealized Return | %s |\n", signedPercent(r.CurrentReturn()))
	fmt.Fprintf(&b, "| Realized Return | %s |\n", signedPercent(realized))
	fmt.Fprintf(&b, "| Money-Weighted Return | %s |\n", signedPercent(mwrr))
	fmt.Fprintf(&b, "| Annualized Return | %s |\n", signedPercent(r.AnnualReturn()))
	fmt.Fprintln(&b, "")

	fmt.Fprint(&b, "## Daily Return Statistics\n\n")
	fmt.Fprintln(&b, "| Mean | Std. Dev. | Sharpe |")
	fmt.Fprintln(&b, "|---:|---:|---:|")
	fmt.Fprintf(&b, "| %s | %s | %.3f |\n\n", percent(stats.Mean), percent(stats.StdDev), stats.Sharpe)

	fmt.Fprintf(&b, "Total dividends received: %s (yield on cost %s a year)\n",
		portfolio.M(r.Dividends.Total().InexactFloat64(), cur), percent(r.DividendYield()))
	return b.String()
}
