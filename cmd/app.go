// Package cmd implements the rkpi command line, that computes the KPIs of a
// real-estate portfolio from rent rolls, ledgers, lease lists and P&L
// statements.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	_ "modernc.org/sqlite" // "sqlite:" sources
)

var (
	currency = flag.String("currency", config.Currency, "Currency of the amounts, used to format reports")
	Verbose  = flag.Bool("v", config.Verbose, "Log the sources loaded and the files written")
)

// commands lists every rkpi subcommand, by group.
var commands = []struct {
	group string
	cmd   subcommands.Command
}{
	{"kpi", &occupancyCmd{}},
	{"kpi", &agingCmd{}},
	{"kpi", &expiryCmd{}},
	{"kpi", &bridgeCmd{}},
	{"reports", &reportCmd{}},
	{"reports", &commentaryCmd{}},
	{"help", &topicCmd{}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, e := range commands {
		c.Register(e.cmd, e.group)
	}
}

// Setup applies the global flags. It must be called after flag.Parse.
func Setup() {
	if !*Verbose {
		log.SetOutput(io.Discard)
	}
}

// printMarkdown renders md for the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// usageError prints a command line error and the usage of the command.
func usageError(f *flag.FlagSet, format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	f.Usage()
	return subcommands.ExitUsageError
}
