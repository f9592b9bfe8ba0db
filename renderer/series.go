package renderer

import (
	"fmt"
	"strings"

	portfolio "github.com/MaiqTheHonest/Trading212-PnL"
	"github.com/MaiqTheHonest/Trading212-PnL/date"
)

// SeriesMarkdown renders the tail of a daily percent series as a table, most
// recent day last. A non-positive limit renders the whole series.
func SeriesMarkdown(title string, h *date.History[float64], limit int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)

	skip := 0
	if limit > 0 && h.Len() > limit {
		skip = h.Len() - limit
		fmt.Fprintf(&b, "Last %d of %d days.\n\n", limit, h.Len())
	}

	fmt.Fprintln(&b, "| Date | Return |")
	fmt.Fprintln(&b, "|:---|---:|")
	i := 0
	for on, v := range h.Values() {
		if i < skip {
			i++
			continue
		}
		fmt.Fprintf(&b, "| %s | %s |\n", on, signedPercent(v))
	}
	return b.String()
}

// MoneySeriesMarkdown renders the tail of a daily monetary series as a
// table, formatted in the given currency.
func MoneySeriesMarkdown(title string, h *date.History[float64], currency string, limit int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)

	skip := 0
	if limit > 0 && h.Len() > limit {
		skip = h.Len() - limit
		fmt.Fprintf(&b, "Last %d of %d days.\n\n", limit, h.Len())
	}

	fmt.Fprintln(&b, "| Date | Gain |")
	fmt.Fprintln(&b, "|:---|---:|")
	i := 0
	for on, v := range h.Values() {
		if i < skip {
			i++
			continue
		}
		fmt.Fprintf(&b, "| %s | %s |\n", on, portfolio.M(v, currency).SignedString())
	}
	return b.String()
}
