package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MaiqTheHonest/Trading212-PnL/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio performance summary" }
func (*summaryCmd) Usage() string {
	return `t212pnl summary

  Displays the headline figures: cost basis, market value, unrealized and
  realized returns, money-weighted return, daily return statistics and
  dividend totals.
`
}

func (c *summaryCmd) SetFlags(*flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := buildReport(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building report: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SummaryMarkdown(report))
	return subcommands.ExitSuccess
}
