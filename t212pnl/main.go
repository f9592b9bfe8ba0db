// Command t212pnl reports performance of a Trading212 portfolio: position
// accounting from the order history, daily unrealized and realized returns,
// money-weighted rate of return and dividend income.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/MaiqTheHonest/Trading212-PnL/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
