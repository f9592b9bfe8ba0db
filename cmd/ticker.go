package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/MaiqTheHonest/Trading212-PnL/yahoo"
	"github.com/google/subcommands"
)

// tickerCmd manages the broker-to-Yahoo symbol overrides, for instruments
// the built-in mapping cannot resolve.
type tickerCmd struct {
	set    string
	remove string
}

func (*tickerCmd) Name() string     { return "ticker" }
func (*tickerCmd) Synopsis() string { return "list or edit custom ticker overrides" }
func (*tickerCmd) Usage() string {
	return `t212pnl ticker [-set <broker>=<symbol>] [-rm <broker>]

  Without flags, lists the current overrides. -set maps a broker instrument
  code to the Yahoo symbol to use instead, e.g. -set VUAAm_EQ=VUAA.L.
`
}

func (c *tickerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "Add an override as <broker>=<symbol>.")
	f.StringVar(&c.remove, "rm", "", "Remove the override for a broker code.")
}

func (c *tickerCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}
	overrides, err := yahoo.LoadOverrides(cfg.TickerOverrides)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading overrides: %v\n", err)
		return subcommands.ExitFailure
	}

	changed := false
	if c.set != "" {
		broker, symbol, ok := strings.Cut(c.set, "=")
		if !ok || broker == "" || symbol == "" {
			fmt.Fprintln(os.Stderr, "Error: -set expects <broker>=<symbol>")
			return subcommands.ExitUsageError
		}
		overrides[broker] = symbol
		changed = true
	}
	if c.remove != "" {
		delete(overrides, c.remove)
		changed = true
	}
	if changed {
		if err := overrides.Save(cfg.TickerOverrides); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving overrides: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Saved %d overrides to %s\n", len(overrides), cfg.TickerOverrides)
		return subcommands.ExitSuccess
	}

	if len(overrides) == 0 {
		fmt.Println("No ticker overrides defined.")
		return subcommands.ExitSuccess
	}
	brokers := make([]string, 0, len(overrides))
	for broker := range overrides {
		brokers = append(brokers, broker)
	}
	sort.Strings(brokers)
	for _, broker := range brokers {
		fmt.Printf("%s -> %s\n", broker, overrides[broker])
	}
	return subcommands.ExitSuccess
}
