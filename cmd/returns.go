package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MaiqTheHonest/Trading212-PnL/renderer"
	"github.com/google/subcommands"
)

type unrealizedCmd struct {
	days int
}

func (*unrealizedCmd) Name() string     { return "unrealized" }
func (*unrealizedCmd) Synopsis() string { return "display the daily unrealized return series" }
func (*unrealizedCmd) Usage() string {
	return `t212pnl unrealized [-n <days>]

  Displays the daily unrealized return of the portfolio against its cost
  basis, dividends included.
`
}

func (c *unrealizedCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "n", 30, "Number of most recent days to show, 0 for all.")
}

func (c *unrealizedCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := buildReport(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building report: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SeriesMarkdown("Unrealized Returns", report.Unrealized, c.days))
	return subcommands.ExitSuccess
}

type realizedCmd struct {
	days     int
	absolute bool
}

func (*realizedCmd) Name() string     { return "realized" }
func (*realizedCmd) Synopsis() string { return "display the cumulative realized return series" }
func (*realizedCmd) Usage() string {
	return `t212pnl realized [-n <days>] [-abs]

  Displays the cumulative realized gain locked in by sells, relative to the
  cost basis of the exited positions, or absolute with -abs.
`
}

func (c *realizedCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "n", 30, "Number of most recent days to show, 0 for all.")
	f.BoolVar(&c.absolute, "abs", false, "Show absolute gain instead of percent.")
}

func (c *realizedCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := buildReport(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building report: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.absolute {
		printMarkdown(renderer.MoneySeriesMarkdown("Absolute Realized Returns",
			report.Realized.Absolute(), report.ReportingCurrency, c.days))
	} else {
		printMarkdown(renderer.SeriesMarkdown("Realized Returns", report.Realized.Relative(), c.days))
	}
	return subcommands.ExitSuccess
}

type mwrrCmd struct {
	days int
}

func (*mwrrCmd) Name() string     { return "mwrr" }
func (*mwrrCmd) Synopsis() string { return "display the daily money-weighted rate of return" }
func (*mwrrCmd) Usage() string {
	return `t212pnl mwrr [-n <days>]

  Displays the money-weighted rate of return solved for each day's cash-flow
  schedule and closing market value.
`
}

func (c *mwrrCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "n", 30, "Number of most recent days to show, 0 for all.")
}

func (c *mwrrCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := buildReport(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building report: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SeriesMarkdown("Money-Weighted Returns", report.MWRR, c.days))
	return subcommands.ExitSuccess
}
