package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/realty"
	"github.com/google/subcommands"
)

type bridgeCmd struct {
	schemes schemeFlags
	out     outputFlags
}

func (*bridgeCmd) Name() string     { return "bridge" }
func (*bridgeCmd) Synopsis() string { return "explain the NOI change between two periods, account by account" }
func (*bridgeCmd) Usage() string {
	return `rkpi bridge [-d <date> -period <period>] [-format <format>] [-o <file>] <previous> <current>

  Computes, for every account of two P&L statements, the change from the
  previous period to the current one. Accounts present in only one period
  count as zero in the other. Accounts are sorted by decreasing change.

  Both statements need the columns account and amount.

Usage Examples:
# June compared with May.
$ rkpi bridge -d 2025-06-30 -period monthly pnl-2025-05.csv pnl-2025-06.csv

`
}

func (c *bridgeCmd) SetFlags(f *flag.FlagSet) {
	c.schemes.setDateFlag(f, "Date within the current period.")
	c.schemes.setPeriodFlag(f)
	c.out.SetFlags(f)
}

func (c *bridgeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		return usageError(f, "bridge takes the previous and the current P&L")
	}
	if err := c.out.validate(); err != nil {
		return usageError(f, "%v", err)
	}
	opts, err := c.schemes.options()
	if err != nil {
		return usageError(f, "%v", err)
	}

	in := sourceFlags{previous: f.Arg(0), current: f.Arg(1)}
	inputs, err := in.load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := realty.NewReport(inputs, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing the NOI bridge: %v\n", err)
		return subcommands.ExitFailure
	}
	return c.out.write(report)
}
