package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MaiqTheHonest/Trading212-PnL/renderer"
	"github.com/google/subcommands"
)

type dividendsCmd struct{}

func (*dividendsCmd) Name() string     { return "dividends" }
func (*dividendsCmd) Synopsis() string { return "display dividend totals per ticker" }
func (*dividendsCmd) Usage() string {
	return `t212pnl dividends

  Displays every ticker's total dividends received and the annual yield on
  cost.
`
}

func (c *dividendsCmd) SetFlags(*flag.FlagSet) {}

func (c *dividendsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := buildReport(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building report: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.DividendsMarkdown(report))
	return subcommands.ExitSuccess
}
