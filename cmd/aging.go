package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/realty"
	"github.com/etnz/realty/source"
	"github.com/google/subcommands"
)

type agingCmd struct {
	schemes schemeFlags
	out     outputFlags
}

func (*agingCmd) Name() string     { return "aging" }
func (*agingCmd) Synopsis() string { return "group arrears by days past due" }
func (*agingCmd) Usage() string {
	return `rkpi aging [-aging <bands>] [-format <format>] [-o <file>] <ledger>

  Sums the outstanding balances of a receivables ledger per aging band.
  Every band is listed, with a zero amount when nothing is due in it.

  The ledger needs the columns days_past_due and balance (or amount).

Usage Examples:
# Five bands, up to 120+ days.
$ rkpi aging -aging 5 ledger.csv

`
}

func (c *agingCmd) SetFlags(f *flag.FlagSet) {
	c.schemes.setAgingFlag(f)
	c.out.SetFlags(f)
}

func (c *agingCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError(f, "aging takes exactly one ledger")
	}
	if err := c.out.validate(); err != nil {
		return usageError(f, "%v", err)
	}
	opts, err := c.schemes.options()
	if err != nil {
		return usageError(f, "%v", err)
	}

	ledger, err := source.Load(ctx, f.Arg(0), realty.LedgerSchema)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := realty.NewReport(realty.Inputs{Ledger: ledger}, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing aging: %v\n", err)
		return subcommands.ExitFailure
	}
	return c.out.write(report)
}
