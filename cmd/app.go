// Package cmd implements the CLI application reporting on a Trading212
// portfolio.
package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() to install them, and Execute() on the
// user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&unrealizedCmd{}, "reports")
	c.Register(&realizedCmd{}, "reports")
	c.Register(&mwrrCmd{}, "reports")
	c.Register(&dividendsCmd{}, "reports")

	c.Register(&tickerCmd{}, "configuration")
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer is unavailable (dumb terminals, pipes).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
